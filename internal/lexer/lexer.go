// Package lexer implements the byte-stream scanner described in the
// compiler's lexer component, plus the newline-significance filter that
// wraps it. The filter is the only token producer the compiler's parser
// ever sees; see Filter and its Next method.
package lexer

import "github.com/emberlang/emberc/internal/token"

const eof = 0

// Lexer scans an immutable source buffer into raw tokens. It performs no
// newline-significance decisions itself — every newline becomes a raw LINE
// token; deciding whether that LINE survives into the parser's view of the
// world is the Filter's job.
type Lexer struct {
	source string
	pos    int // offset of the next unread byte
	line   int // 0-indexed line of the next unread byte

	tokenStart int // latched at the start of the token currently being scanned
	startLine  int // line at tokenStart
}

// New returns a Lexer scanning source from the beginning.
func New(source string) *Lexer {
	return &Lexer{source: source}
}

// peekChar returns the next unread byte without advancing, or 0 at EOF.
func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.source) {
		return eof
	}
	return l.source[l.pos]
}

// peekNextChar returns the byte after the next unread byte, or 0 past EOF.
func (l *Lexer) peekNextChar() byte {
	if l.pos+1 >= len(l.source) {
		return eof
	}
	return l.source[l.pos+1]
}

// nextChar consumes and returns the next byte, or 0 at EOF. Consuming a
// newline advances the line counter.
func (l *Lexer) nextChar() byte {
	if l.pos >= len(l.source) {
		return eof
	}
	c := l.source[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
	}
	return c
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func (l *Lexer) make(t token.Type) token.Token {
	return token.Token{
		Type:        t,
		StartOffset: l.tokenStart,
		EndOffset:   l.pos,
		Line:        l.startLine,
	}
}

func (l *Lexer) makeTwo(one, two token.Type, second byte) token.Token {
	if l.peekChar() == second {
		l.nextChar()
		return l.make(two)
	}
	return l.make(one)
}

// skipWhitespaceAndComments absorbs spaces and tabs silently, and consumes
// line and nestable block comments. Newlines, including bare '\r' and
// '\r\n', are left in place: they are scanned as LINE tokens by Next.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.peekChar() {
		case ' ', '\t':
			l.nextChar()
		case '/':
			if l.peekNextChar() == '/' {
				for l.peekChar() != '\n' && l.peekChar() != eof {
					l.nextChar()
				}
			} else if l.peekNextChar() == '*' {
				l.nextChar() // consume '/'
				l.nextChar() // consume '*'
				depth := 1
				for depth > 0 && l.peekChar() != eof {
					if l.peekChar() == '/' && l.peekNextChar() == '*' {
						l.nextChar()
						l.nextChar()
						depth++
					} else if l.peekChar() == '*' && l.peekNextChar() == '/' {
						l.nextChar()
						l.nextChar()
						depth--
					} else {
						l.nextChar()
					}
				}
				// Unterminated block comments silently stop at EOF.
			} else {
				return
			}
		default:
			return
		}
	}
}

// Next scans and returns the next raw token. At EOF it repeatedly returns a
// token.EOF token.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()
	l.tokenStart = l.pos
	l.startLine = l.line

	c := l.peekChar()
	if c == eof {
		return l.make(token.EOF)
	}

	if c == '\n' {
		l.nextChar()
		return l.make(token.LINE)
	}
	if c == '\r' {
		return l.scanNewlineCR()
	}

	if isDigit(c) {
		return l.scanNumber()
	}
	// Unary minus fuses into the literal when immediately followed by a
	// digit, so that "-5" lexes as one NUMBER token rather than MINUS NUMBER;
	// this keeps "3.foo" parsing as dot-access rather than a malformed float
	// working symmetrically for negative literals.
	if c == '-' && isDigit(l.peekNextChar()) {
		return l.scanNumber()
	}
	if isAlpha(c) {
		return l.scanIdentifier()
	}
	if c == '"' {
		return l.scanString()
	}

	l.nextChar()
	switch c {
	case '(':
		return l.make(token.LPAREN)
	case ')':
		return l.make(token.RPAREN)
	case '{':
		return l.make(token.LBRACE)
	case '}':
		return l.make(token.RBRACE)
	case '[':
		return l.make(token.LBRACKET)
	case ']':
		return l.make(token.RBRACKET)
	case ':':
		return l.make(token.COLON)
	case ',':
		return l.make(token.COMMA)
	case '.':
		return l.make(token.PERIOD)
	case '-':
		return l.make(token.MINUS)
	case '+':
		return l.make(token.PLUS)
	case '/':
		return l.make(token.SLASH)
	case '*':
		return l.make(token.STAR)
	case '%':
		return l.make(token.PERCENT)
	case '|':
		return l.make(token.PIPE)
	case '&':
		return l.make(token.AMP)
	case '~':
		return l.make(token.TILDE)
	case '!':
		return l.makeTwo(token.BANG, token.BANG_EQ, '=')
	case '=':
		return l.makeTwo(token.EQ, token.EQ_EQ, '=')
	case '<':
		return l.makeTwo(token.LT, token.LT_EQ, '=')
	case '>':
		return l.makeTwo(token.GT, token.GT_EQ, '=')
	default:
		return l.make(token.ERROR)
	}
}

// scanNewlineCR consumes a bare '\r' or a '\r\n' pair as a single LINE
// token. It advances pos directly rather than through nextChar, since
// nextChar only bumps the line counter on '\n' and a lone '\r' still ends a
// line.
func (l *Lexer) scanNewlineCR() token.Token {
	l.pos++ // consume '\r'
	if l.peekChar() == '\n' {
		l.pos++ // consume the paired '\n' as part of the same newline
	}
	l.line++
	return l.make(token.LINE)
}

// scanNumber scans a run of digits, optionally preceded by a fused unary
// minus, optionally followed by a fractional part iff the character after
// the '.' is itself a digit (so that "3.foo" lexes as NUMBER PERIOD NAME,
// a method call on an integer literal, rather than a malformed float).
func (l *Lexer) scanNumber() token.Token {
	if l.peekChar() == '-' {
		l.nextChar()
	}
	for isDigit(l.peekChar()) {
		l.nextChar()
	}
	if l.peekChar() == '.' && isDigit(l.peekNextChar()) {
		l.nextChar() // consume '.'
		for isDigit(l.peekChar()) {
			l.nextChar()
		}
	}
	return l.make(token.NUMBER)
}

func (l *Lexer) scanIdentifier() token.Token {
	for isAlphaNumeric(l.peekChar()) {
		l.nextChar()
	}
	text := l.source[l.tokenStart:l.pos]
	return l.make(token.LookupIdentifier(text))
}

// scanString consumes bytes up to the next '"'. Escapes and embedded
// newlines are not interpreted: this is a deliberate simplification, not a
// feature to add.
func (l *Lexer) scanString() token.Token {
	l.nextChar() // consume opening quote
	for l.peekChar() != '"' && l.peekChar() != eof {
		l.nextChar()
	}
	if l.peekChar() == eof {
		// Unterminated strings silently stop at EOF, matching unterminated
		// block comments: a known limitation, not a reported error.
		return l.make(token.STRING)
	}
	l.nextChar() // consume closing quote
	return l.make(token.STRING)
}

// StringValue returns the text between the surrounding quotes of a STRING
// token previously produced by this lexer's source.
func StringValue(source string, tok token.Token) string {
	lex := tok.Lexeme(source)
	if len(lex) >= 2 && lex[0] == '"' && lex[len(lex)-1] == '"' {
		return lex[1 : len(lex)-1]
	}
	if len(lex) >= 1 && lex[0] == '"' {
		return lex[1:]
	}
	return lex
}

// State is an opaque snapshot of scanning position, usable with
// RestoreState to rewind the lexer. It is a plain value, safe to copy.
type State struct {
	pos       int
	line      int
	tokStart  int
	startLine int
}

// SaveState captures the lexer's current scanning position.
func (l *Lexer) SaveState() State {
	return State{pos: l.pos, line: l.line, tokStart: l.tokenStart, startLine: l.startLine}
}

// RestoreState rewinds the lexer to a previously saved position.
func (l *Lexer) RestoreState(s State) {
	l.pos = s.pos
	l.line = s.line
	l.tokenStart = s.tokStart
	l.startLine = s.startLine
}

// GetLineText returns the full source line containing tok, for diagnostic
// rendering by CLI tooling. It does not affect what the compiler itself
// reports, which only ever names a line number, per the compiler's
// diagnostics contract.
func GetLineText(source string, tok token.Token) string {
	start := tok.StartOffset
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := tok.StartOffset
	for end < len(source) && source[end] != '\n' {
		end++
	}
	if start > end {
		return ""
	}
	return source[start:end]
}
