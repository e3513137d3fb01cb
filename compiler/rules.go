package compiler

import "github.com/emberlang/emberc/internal/token"

// prefixFn compiles an expression that starts with the just-consumed token.
// allowAssignment is threaded through from parsePrecedence and is only ever
// consulted by the name handler, which is the sole place "x = ..." can
// legally appear.
type prefixFn func(fr *Frame, allowAssignment bool)

// infixFn compiles the rest of an expression given that a left-hand operand
// has already been compiled and the operator token has just been consumed.
type infixFn func(fr *Frame)

// signatureFn parses how a method or function parameter list looks at a
// class-body definition site, appending one space per declared parameter to
// selector and declaring each parameter as a local in fr. The exact same
// arity-in-selector convention drives call-site selector construction in
// parseCall, so definition and call sites always agree.
type signatureFn func(fr *Frame, selector *[]byte)

// rule is one row of the token-type-indexed dispatch table that drives both
// the Pratt expression parser and method-signature synthesis.
type rule struct {
	prefix       prefixFn
	infix        infixFn
	signature    signatureFn
	precedence   int
	operatorName string // bare operator symbol, arity spaces appended at use
}

var rules map[token.Type]*rule

func init() {
	rules = map[token.Type]*rule{
		token.LPAREN: {prefix: parseGrouping},
		token.FN:     {prefix: parseFunction},
		token.NAME:   {prefix: parseName, signature: parameterListSignature},
		token.NUMBER: {prefix: parseNumber},
		token.STRING: {prefix: parseString},
		token.TRUE:   {prefix: parseBoolean},
		token.FALSE:  {prefix: parseBoolean},
		token.NULL:   {prefix: parseNull},
		token.THIS:   {prefix: parseThis},

		token.BANG: {prefix: parseUnary, signature: unarySignature, operatorName: "!"},
		token.TILDE: {prefix: parseUnary, signature: unarySignature, operatorName: "~"},
		token.MINUS: {
			prefix: parseUnary, infix: parseInfix, signature: mixedSignature,
			precedence: PREC_TERM, operatorName: "-",
		},

		token.PLUS: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_TERM, operatorName: "+",
		},
		token.STAR: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_FACTOR, operatorName: "*",
		},
		token.SLASH: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_FACTOR, operatorName: "/",
		},
		token.PERCENT: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_FACTOR, operatorName: "%",
		},
		token.LT: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_COMPARISON, operatorName: "<",
		},
		token.GT: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_COMPARISON, operatorName: ">",
		},
		token.LT_EQ: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_COMPARISON, operatorName: "<=",
		},
		token.GT_EQ: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_COMPARISON, operatorName: ">=",
		},
		token.EQ_EQ: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_EQUALITY, operatorName: "==",
		},
		token.BANG_EQ: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_EQUALITY, operatorName: "!=",
		},
		token.PIPE: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_BITWISE, operatorName: "|",
		},
		token.AMP: {
			infix: parseInfix, signature: infixSignature,
			precedence: PREC_BITWISE, operatorName: "&",
		},

		token.IS:     {infix: parseIs, precedence: PREC_IS},
		token.PERIOD: {infix: parseCall, precedence: PREC_CALL},
	}
}

// ruleFor returns the dispatch row for t, or an empty rule (all nils, lowest
// precedence) if t has no registered behavior.
func ruleFor(t token.Type) *rule {
	if r, ok := rules[t]; ok {
		return r
	}
	return &rule{precedence: PREC_NONE}
}
