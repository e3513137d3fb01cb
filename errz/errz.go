// Package errz implements the compiler's diagnostic reporting: a sticky
// failure flag plus one rendered line per error, in the wire format
// "[Line L] Error on 'LEXEME': MESSAGE". Errors never unwind compilation;
// the compiler keeps going so a single run can surface multiple diagnostics,
// and the entry point consults Sink.HasError at the very end.
package errz

import (
	"fmt"
	"io"
	"os"
)

// Category groups diagnostics by the phase that raised them, mirroring the
// lexical/syntactic/semantic/numeric kinds enumerated in the compiler's
// error-handling design.
type Category string

const (
	Lexical  Category = "lexical"
	Syntax   Category = "syntax"
	Semantic Category = "semantic"
	Numeric  Category = "numeric"
)

// Error is a single compiler diagnostic.
type Error struct {
	Category Category
	Line     int // 1-indexed
	Lexeme   string
	Message  string
}

// Error implements the error interface using the wire format required by
// the compiler's diagnostics contract.
func (e *Error) Error() string {
	return fmt.Sprintf("[Line %d] Error on '%s': %s", e.Line, e.Lexeme, e.Message)
}

// Sink accumulates diagnostics and writes each one, as it is reported, to an
// underlying writer (stderr by default). The sticky flag it exposes never
// clears once set: once HasError reports true, it remains true for the life
// of a single compile() call.
type Sink struct {
	w      io.Writer
	errors []*Error
}

// NewSink returns a Sink that writes to os.Stderr. Use WithWriter to direct
// diagnostics elsewhere (e.g. a buffer, for testing).
func NewSink() *Sink {
	return &Sink{w: os.Stderr}
}

// WithWriter redirects where diagnostics are written.
func (s *Sink) WithWriter(w io.Writer) *Sink {
	s.w = w
	return s
}

// Report records one diagnostic and writes its rendered form immediately.
func (s *Sink) Report(category Category, line int, lexeme, message string) {
	err := &Error{Category: category, Line: line, Lexeme: lexeme, Message: message}
	s.errors = append(s.errors, err)
	if s.w != nil {
		fmt.Fprintln(s.w, err.Error())
	}
}

// HasError reports the sticky failure flag: true iff Report has ever been
// called on this sink.
func (s *Sink) HasError() bool {
	return len(s.errors) > 0
}

// Errors returns every diagnostic reported so far, in report order. The
// returned slice is owned by the caller.
func (s *Sink) Errors() []*Error {
	out := make([]*Error, len(s.errors))
	copy(out, s.errors)
	return out
}
