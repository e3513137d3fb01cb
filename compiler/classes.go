package compiler

import (
	"github.com/emberlang/emberc/internal/token"
	"github.com/emberlang/emberc/op"
)

// parseClassDecl compiles "class NAME [is SUPER] { ... }". The class value
// stays on top of the stack through the whole body so each method
// definition's METHOD opcode installs directly onto it; only once the body
// closes is the class stored into its variable, same as any other
// initializer.
func parseClassDecl(p *Parser, fr *Frame) {
	p.consume(token.NAME, "expect class name")
	name := p.previous.Lexeme(p.source)
	idx, isGlobal := declareVariable(fr, name)

	if p.match(token.IS) {
		p.parsePrecedence(fr, false, PREC_CALL)
		fr.fn.EmitOp(op.SUBCLASS)
	} else {
		fr.fn.EmitOp(op.CLASS)
	}

	p.consume(token.LBRACE, "expect '{' before class body")
	parseClassBody(p, fr)

	defineVariable(fr, idx, isGlobal)
}

// parseClassBody compiles method definitions until the closing '}',
// skipping any significant newlines between methods (a newline after a
// method body's '}' is significant, since '}' is not a newline-continuation
// token). A newline between methods is not required.
func parseClassBody(p *Parser, fr *Frame) {
	for {
		for p.match(token.LINE) {
		}
		if p.check(token.RBRACE) || p.check(token.EOF) {
			break
		}
		parseMethod(p, fr)
	}
	p.consume(token.RBRACE, "expect '}' after class body")
}

// parseMethod compiles one method definition: an optional "static", the
// name or operator token (whose rule must carry a signature function, or
// this is not a legal method-definition token), a nested method frame, the
// arity-mangled selector, and the body.
func parseMethod(p *Parser, fr *Frame) {
	isStatic := p.match(token.STATIC)

	r := ruleFor(p.current.Type)
	if r.signature == nil {
		p.errorAtCurrent("expect method definition")
		p.advance()
		return
	}
	p.advance()
	nameTok := p.previous

	child := newChildFrame(p, fr, true)
	p.vm.Pin(child.fn)

	selector := []byte(nameTok.Lexeme(p.source))
	r.signature(child, &selector)
	child.fn.Name = string(selector)
	child.fn.Arity = child.locals.Count() - 1

	p.consume(token.LBRACE, "expect '{' before method body")
	parseBlockStatements(p, child)
	child.fn.EmitOp(op.END)

	constIdx := fr.fn.AddConstant(child.fn)
	p.vm.Unpin(child.fn)
	selIdx := p.vm.Methods().Ensure(string(selector))

	if isStatic {
		fr.fn.EmitOp(op.METACLASS)
	}
	fr.fn.EmitOp(op.METHOD)
	fr.fn.EmitByte(byte(selIdx))
	fr.fn.EmitByte(byte(constIdx))
	if isStatic {
		fr.fn.EmitOp(op.POP)
	}
}

// unarySignature is the signature cell for operators that are only ever
// unary ("!", "~"): no parameter, selector arity stays zero.
func unarySignature(fr *Frame, selector *[]byte) {}

// infixSignature is the signature cell for operators that always take
// exactly one parameter (+ * / % < > <= >= == !=). Unlike ordinary named
// methods, the parameter name follows the operator bare, with no
// surrounding parentheses.
func infixSignature(fr *Frame, selector *[]byte) {
	fr.p.consume(token.NAME, "expect parameter name")
	name := fr.p.previous.Lexeme(fr.p.source)
	if idx := fr.locals.Add(name); idx == -1 {
		fr.p.semanticError("variable is already defined")
	}
	*selector = append(*selector, ' ')
}

// mixedSignature is the signature cell for "-", which is legal both as a
// unary negation (no parameter) and as binary subtraction (one bare
// parameter, same convention as infixSignature).
func mixedSignature(fr *Frame, selector *[]byte) {
	if fr.p.check(token.NAME) {
		infixSignature(fr, selector)
	}
}

// parameterListSignature is the signature cell for an ordinary NAME used as
// a method name: an optional, parenthesized, comma-separated parameter
// list. No '(' at all means a zero-argument method (a getter).
func parameterListSignature(fr *Frame, selector *[]byte) {
	if !fr.p.match(token.LPAREN) {
		return
	}
	parseParamList(fr.p, fr, selector)
}
