package lexer

import "github.com/emberlang/emberc/internal/token"

// continuationTokens is the set of token types after which a following
// LINE is not a statement terminator: openers, separators, binary
// operators, and keywords that cannot end an expression. "!" and "-" are
// continuation tokens in both their prefix and infix roles, which the
// grammar tolerates.
var continuationTokens = map[token.Type]bool{
	token.LPAREN:   true,
	token.LBRACKET: true,
	token.LBRACE:   true,
	token.PERIOD:   true,
	token.COMMA:    true,
	token.STAR:     true,
	token.SLASH:    true,
	token.PERCENT:  true,
	token.PLUS:     true,
	token.MINUS:    true,
	token.PIPE:     true,
	token.AMP:      true,
	token.BANG:     true,
	token.EQ:       true,
	token.LT:       true,
	token.GT:       true,
	token.LT_EQ:    true,
	token.GT_EQ:    true,
	token.EQ_EQ:    true,
	token.BANG_EQ:  true,
	token.CLASS:    true,
	token.ELSE:     true,
	token.IF:       true,
	token.IS:       true,
	token.STATIC:   true,
	token.VAR:      true,
}

// Filter wraps a Lexer and is the only token producer the parser ever sees.
// It post-processes the raw token stream so that newlines after a
// "continuation" token are elided, and runs of consecutive newlines collapse
// into a single significant LINE.
type Filter struct {
	lex          *Lexer
	skipNewlines bool
}

// NewFilter wraps lex behind newline-significance filtering.
func NewFilter(lex *Lexer) *Filter {
	return &Filter{lex: lex}
}

// Next returns the next token the parser should see: raw LINE tokens are
// either passed through or swallowed depending on what preceded them, and
// every other raw token updates whether a following LINE would terminate a
// statement.
func (f *Filter) Next() token.Token {
	for {
		tok := f.lex.Next()
		if tok.Type == token.LINE {
			if f.skipNewlines {
				// Consecutive newlines collapse into the one already
				// decided on (or already swallowed).
				continue
			}
			f.skipNewlines = true
			return tok
		}
		f.skipNewlines = continuationTokens[tok.Type]
		return tok
	}
}
