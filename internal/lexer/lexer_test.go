package lexer

import (
	"testing"

	"github.com/emberlang/emberc/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestNextToken(t *testing.T) {
	input := `+-*/%(){}[],:.!=<=>=== !`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.PLUS, "+"},
		{token.MINUS, "-"},
		{token.STAR, "*"},
		{token.SLASH, "/"},
		{token.PERCENT, "%"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.LBRACKET, "["},
		{token.RBRACKET, "]"},
		{token.COMMA, ","},
		{token.COLON, ":"},
		{token.PERIOD, "."},
		{token.BANG_EQ, "!="},
		{token.LT_EQ, "<="},
		{token.GT_EQ, ">="},
		{token.EQ_EQ, "=="},
		{token.BANG, "!"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		assert.Equal(t, tt.expectedType, tok.Type, "test %d", i)
		assert.Equal(t, tt.expectedLiteral, tok.Lexeme(input), "test %d", i)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := `class else false fn if is null static this true var foo Bar_1`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.CLASS, "class"},
		{token.ELSE, "else"},
		{token.FALSE, "false"},
		{token.FN, "fn"},
		{token.IF, "if"},
		{token.IS, "is"},
		{token.NULL, "null"},
		{token.STATIC, "static"},
		{token.THIS, "this"},
		{token.TRUE, "true"},
		{token.VAR, "var"},
		{token.NAME, "foo"},
		{token.NAME, "Bar_1"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		assert.Equal(t, tt.expectedType, tok.Type, "test %d", i)
		assert.Equal(t, tt.expectedLiteral, tok.Lexeme(input), "test %d", i)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"1.5", "1.5"},
		{"0", "0"},
		{"-5", "-5"},
		{"-5.5", "-5.5"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.Next()
		assert.Equal(t, token.NUMBER, tok.Type)
		assert.Equal(t, tt.expected, tok.Lexeme(tt.input))
	}
}

// TestDotMethodOnIntegerLiteral ensures "3.foo" lexes as a number followed
// by dot-access, not a malformed float.
func TestDotMethodOnIntegerLiteral(t *testing.T) {
	input := "3.foo"
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.NUMBER, "3"},
		{token.PERIOD, "."},
		{token.NAME, "foo"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		assert.Equal(t, tt.expectedType, tok.Type, "test %d", i)
		assert.Equal(t, tt.expectedLiteral, tok.Lexeme(input), "test %d", i)
	}
}

func TestStringLiteral(t *testing.T) {
	input := `"hello world"`
	l := New(input)
	tok := l.Next()
	assert.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "hello world", StringValue(input, tok))
}

func TestUnterminatedStringStopsAtEOF(t *testing.T) {
	input := `"hello`
	l := New(input)
	tok := l.Next()
	assert.Equal(t, token.STRING, tok.Type)
	next := l.Next()
	assert.Equal(t, token.EOF, next.Type)
}

func TestLineComment(t *testing.T) {
	input := "1 // a comment\n2"
	l := New(input)
	tok := l.Next()
	assert.Equal(t, token.NUMBER, tok.Type)
	assert.Equal(t, "1", tok.Lexeme(input))
	tok = l.Next()
	assert.Equal(t, token.LINE, tok.Type)
	tok = l.Next()
	assert.Equal(t, token.NUMBER, tok.Type)
	assert.Equal(t, "2", tok.Lexeme(input))
}

func TestNestedBlockComment(t *testing.T) {
	input := "1 /* outer /* inner */ still outer */ 2"
	l := New(input)
	tok := l.Next()
	assert.Equal(t, "1", tok.Lexeme(input))
	tok = l.Next()
	assert.Equal(t, "2", tok.Lexeme(input))
	assert.Equal(t, token.NUMBER, tok.Type)
}

func TestUnterminatedBlockCommentStopsAtEOF(t *testing.T) {
	input := "1 /* unterminated"
	l := New(input)
	tok := l.Next()
	assert.Equal(t, "1", tok.Lexeme(input))
	tok = l.Next()
	assert.Equal(t, token.EOF, tok.Type)
}

func TestUnknownByteIsError(t *testing.T) {
	l := New("`")
	tok := l.Next()
	assert.Equal(t, token.ERROR, tok.Type)
}

func TestLineNumbers(t *testing.T) {
	input := "a\nb\n\nc"
	l := New(input)
	tok := l.Next() // a
	assert.Equal(t, 0, tok.Line)
	tok = l.Next() // LINE
	assert.Equal(t, token.LINE, tok.Type)
	tok = l.Next() // b
	assert.Equal(t, 1, tok.Line)
	l.Next() // LINE
	l.Next() // LINE
	tok = l.Next() // c
	assert.Equal(t, 3, tok.Line)
}

func TestCRLFNewlines(t *testing.T) {
	input := "a\r\nb\rc"
	l := New(input)
	tok := l.Next() // a
	assert.Equal(t, 0, tok.Line)
	tok = l.Next() // \r\n as one LINE
	assert.Equal(t, token.LINE, tok.Type)
	tok = l.Next() // b
	assert.Equal(t, token.NAME, tok.Type)
	assert.Equal(t, 1, tok.Line)
	tok = l.Next() // bare \r as one LINE
	assert.Equal(t, token.LINE, tok.Type)
	tok = l.Next() // c
	assert.Equal(t, token.NAME, tok.Type)
	assert.Equal(t, 2, tok.Line)
}

func TestSaveRestoreState(t *testing.T) {
	l := New("a b c")
	l.Next() // a
	state := l.SaveState()
	b := l.Next()
	assert.Equal(t, "b", b.Lexeme("a b c"))

	l.RestoreState(state)
	bAgain := l.Next()
	assert.Equal(t, "b", bAgain.Lexeme("a b c"))
	c := l.Next()
	assert.Equal(t, "c", c.Lexeme("a b c"))
}

func TestMultipleEOFReads(t *testing.T) {
	l := New("x")
	l.Next()
	for i := 0; i < 3; i++ {
		tok := l.Next()
		assert.Equal(t, token.EOF, tok.Type)
	}
}

func TestGetLineText(t *testing.T) {
	input := "first\nsecond line\nthird"
	l := New(input)
	l.Next() // first
	l.Next() // LINE
	tok := l.Next()
	assert.Equal(t, "second", tok.Lexeme(input))
	assert.Equal(t, "second line", GetLineText(input, tok))
}
