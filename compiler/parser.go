// Package compiler implements the single-pass lexer-to-bytecode compiler:
// newline filtering, a Pratt expression parser driven by a per-token rule
// table, scope-frame-based local/global resolution, and arity-mangled method
// selector synthesis shared between call sites and method definitions.
package compiler

import (
	"fmt"

	"github.com/emberlang/emberc/bytecode"
	"github.com/emberlang/emberc/errz"
	"github.com/emberlang/emberc/internal/lexer"
	"github.com/emberlang/emberc/internal/token"
	"github.com/emberlang/emberc/op"
	"github.com/emberlang/emberc/vm"
)

// Parser tracks current/previous tokens over a newline-filtered stream and
// accumulates diagnostics in sink. It never unwinds on error: every parse
// function is written to keep consuming tokens so a single run can surface
// more than one diagnostic.
type Parser struct {
	source   string
	filt     *lexer.Filter
	sink     *errz.Sink
	vm       vm.VM
	current  token.Token
	previous token.Token
}

// Compile runs the entire pipeline over source and returns the top-level
// function object, or an error if any diagnostic was reported. Diagnostics
// themselves are written to sink's writer (stderr by default) as they occur;
// the returned error only reports that compilation failed and how many
// diagnostics were produced.
func Compile(machine vm.VM, source string) (*bytecode.Function, error) {
	return CompileWithSink(machine, source, errz.NewSink())
}

// CompileWithSink is Compile with an explicit diagnostic sink, so callers
// (tests, the CLI) can redirect or inspect reported errors.
func CompileWithSink(machine vm.VM, source string, sink *errz.Sink) (*bytecode.Function, error) {
	p := &Parser{
		source: source,
		filt:   lexer.NewFilter(lexer.New(source)),
		sink:   sink,
		vm:     machine,
	}
	p.advance()

	top := newTopFrame(p)
	machine.Pin(top.fn)
	for {
		for p.match(token.LINE) {
		}
		if p.check(token.EOF) {
			break
		}
		p.parseDefinition(top)
		if !p.check(token.EOF) && !p.match(token.LINE) {
			p.errorAtCurrent("expect newline after statement")
		}
	}
	top.fn.EmitOp(op.END)
	machine.Unpin(top.fn)

	if sink.HasError() {
		return nil, fmt.Errorf("compilation failed with %d error(s)", len(sink.Errors()))
	}
	return top.fn, nil
}

// advance shifts current into previous and pulls the next filtered token,
// reporting and skipping any lexical error tokens along the way.
func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.filt.Next()
		if p.current.Type != token.ERROR {
			break
		}
		p.sink.Report(errz.Lexical, p.current.Line+1, p.current.Lexeme(p.source), "unexpected character")
	}
}

// check reports whether the current token has type t, without consuming it.
func (p *Parser) check(t token.Type) bool {
	return p.current.Type == t
}

// match advances and returns true iff the current token has type t.
func (p *Parser) match(t token.Type) bool {
	if !p.check(t) {
		return false
	}
	p.advance()
	return true
}

// consume always advances, reporting msg if the token just consumed was not
// of type t. Advancing past a mismatch is deliberate: it bounds how far a
// single bad token can cascade through the rest of the file.
func (p *Parser) consume(t token.Type, msg string) {
	if !p.check(t) {
		p.errorAtCurrent(msg)
	}
	p.advance()
}

func (p *Parser) errorAtCurrent(msg string) {
	p.errorAt(p.current, msg)
}

// error reports msg against the token just consumed (previous), the usual
// case once a parse step has already advanced past the offending token.
func (p *Parser) error(msg string) {
	p.errorAt(p.previous, msg)
}

func (p *Parser) errorAt(tok token.Token, msg string) {
	p.sink.Report(errz.Syntax, tok.Line+1, tok.Lexeme(p.source), msg)
}

// semanticError reports msg against previous under the semantic category:
// undefined variables, duplicate declarations, invalid assignment targets,
// and 'this' outside a method.
func (p *Parser) semanticError(msg string) {
	tok := p.previous
	p.sink.Report(errz.Semantic, tok.Line+1, tok.Lexeme(p.source), msg)
}

// parseExpression compiles a single Pratt expression at the lowest
// precedence, the "assignment()" entry point from the component design: an
// ordinary expression that, when allowAssignment is true, may also be a bare
// "name = value".
func (p *Parser) parseExpression(fr *Frame, allowAssignment bool) {
	p.parsePrecedence(fr, allowAssignment, PREC_LOWEST)
}

// parsePrecedence is the Pratt core: compile one prefix expression, then
// fold in infix operators whose precedence meets minPrec.
func (p *Parser) parsePrecedence(fr *Frame, allowAssignment bool, minPrec int) {
	p.advance()
	prefix := ruleFor(p.previous.Type).prefix
	if prefix == nil {
		p.error("no prefix parser")
		return
	}
	prefix(fr, allowAssignment)

	for ruleFor(p.current.Type).precedence >= minPrec {
		p.advance()
		infix := ruleFor(p.previous.Type).infix
		if infix == nil {
			return
		}
		infix(fr)
	}
}
