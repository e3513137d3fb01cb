package compiler

import (
	"strconv"

	"github.com/emberlang/emberc/errz"
	"github.com/emberlang/emberc/internal/lexer"
	"github.com/emberlang/emberc/internal/token"
	"github.com/emberlang/emberc/op"
)

// parseNumber compiles a NUMBER literal into a constant-pool entry. A
// literal that fails to parse (should not happen given the lexer's own
// digit-run scanning, but kept as a defensive numeric diagnostic) reports an
// error and substitutes zero so compilation can continue.
func parseNumber(fr *Frame, allowAssignment bool) {
	lexeme := fr.p.previous.Lexeme(fr.p.source)
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		fr.p.sink.Report(errz.Numeric, fr.p.previous.Line+1, lexeme, "invalid number literal")
		value = 0
	}
	idx := fr.fn.AddConstant(value)
	fr.fn.EmitOp(op.CONSTANT)
	fr.fn.EmitByte(byte(idx))
}

// parseString compiles a STRING literal by asking the VM to intern its text
// and recording the resulting value in the constant pool.
func parseString(fr *Frame, allowAssignment bool) {
	text := lexer.StringValue(fr.p.source, fr.p.previous)
	v := fr.p.vm.NewString(text)
	idx := fr.fn.AddConstant(v)
	fr.fn.EmitOp(op.CONSTANT)
	fr.fn.EmitByte(byte(idx))
}

func parseBoolean(fr *Frame, allowAssignment bool) {
	if fr.p.previous.Type == token.TRUE {
		fr.fn.EmitOp(op.TRUE)
	} else {
		fr.fn.EmitOp(op.FALSE)
	}
}

func parseNull(fr *Frame, allowAssignment bool) {
	fr.fn.EmitOp(op.NULL)
}

// parseThis is only legal in the frame being compiled: there is no upvalue
// mechanism to reach an enclosing method's receiver slot from a nested "fn"
// literal, whose own slot 0 is reserved for itself, not a receiver. A
// reference to "this" inside a function literal nested in a method is
// therefore an error, the same as at the top level.
func parseThis(fr *Frame, allowAssignment bool) {
	if !fr.isMethod {
		fr.p.semanticError("cannot use 'this' outside of a method")
		return
	}
	fr.fn.EmitOp(op.LOAD_LOCAL)
	fr.fn.EmitByte(0)
}

// parseName resolves an identifier against locals then globals, compiling
// either a load or, when followed by '=' with assignment allowed, a store
// of a freshly compiled right-hand side.
func parseName(fr *Frame, allowAssignment bool) {
	p := fr.p
	name := p.previous.Lexeme(p.source)
	loadOp, storeOp, idx, found := resolveName(fr, name)
	if !found {
		p.semanticError("undefined variable")
	}

	if p.match(token.EQ) {
		if !allowAssignment {
			p.semanticError("invalid assignment target")
		}
		p.parseStatement(fr)
		if found {
			fr.fn.EmitOp(storeOp)
			fr.fn.EmitByte(byte(idx))
		}
		return
	}

	if found {
		fr.fn.EmitOp(loadOp)
		fr.fn.EmitByte(byte(idx))
	}
}

// parseGrouping compiles "(" expr ")", contributing no bytecode of its own.
func parseGrouping(fr *Frame, allowAssignment bool) {
	fr.p.parseExpression(fr, false)
	fr.p.consume(token.RPAREN, "expect ')' after expression")
}

// parseUnary compiles a prefix operator: the operand, then a zero-argument
// dispatch to the operator's method selector (no trailing space — arity 0).
func parseUnary(fr *Frame, allowAssignment bool) {
	r := ruleFor(fr.p.previous.Type)
	fr.p.parsePrecedence(fr, false, PREC_UNARY)
	selIdx := fr.p.vm.Methods().Ensure(r.operatorName)
	fr.fn.EmitOp(op.CALL_0)
	fr.fn.EmitByte(byte(selIdx))
}

// parseInfix compiles a binary operator: the right-hand operand parsed at
// one precedence tighter than the operator (left-associative), then a
// one-argument dispatch to the operator's method selector (one trailing
// space — arity 1), the same encoding an ordinary one-argument method call
// produces.
func parseInfix(fr *Frame) {
	r := ruleFor(fr.p.previous.Type)
	fr.p.parsePrecedence(fr, false, r.precedence+1)
	selIdx := fr.p.vm.Methods().Ensure(r.operatorName + " ")
	fr.fn.EmitOp(op.CALL_1)
	fr.fn.EmitByte(byte(selIdx))
}

// parseIs compiles the "is" type test: the class expression at one
// precedence tighter than IS, then the IS opcode itself, which is not a
// method dispatch (no selector involved).
func parseIs(fr *Frame) {
	fr.p.parsePrecedence(fr, false, PREC_IS+1)
	fr.fn.EmitOp(op.IS)
}

// parseCall compiles a "." method call: the method name, an optional
// parenthesized argument list (each argument a full statement, so that
// if-expressions and assignments can appear as arguments), and the
// arity-mangled selector dispatch. The receiver is already on the stack,
// compiled by the left-hand side of the period before this infix handler
// ran.
func parseCall(fr *Frame) {
	p := fr.p
	p.consume(token.NAME, "expect method name after '.'")
	selector := []byte(p.previous.Lexeme(p.source))

	argc := 0
	if p.match(token.LPAREN) {
		if !p.check(token.RPAREN) {
			for {
				p.parseStatement(fr)
				selector = append(selector, ' ')
				argc++
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		p.consume(token.RPAREN, "expect ')' after arguments")
	}

	if argc > op.MaxCallArity {
		p.semanticError("too many arguments")
		argc = op.MaxCallArity
	}
	selIdx := p.vm.Methods().Ensure(string(selector))
	fr.fn.EmitOp(op.CallOp(argc))
	fr.fn.EmitByte(byte(selIdx))
}

// parseFunction compiles a "fn" literal: a nested non-method frame, an
// ordinary parenthesized parameter list, a block or single-expression body,
// and installation of the resulting function object as a constant in the
// enclosing function.
func parseFunction(fr *Frame, allowAssignment bool) {
	p := fr.p
	child := newChildFrame(p, fr, false)
	p.vm.Pin(child.fn)

	p.consume(token.LPAREN, "expect '(' after 'fn'")
	parseParamList(p, child, nil)
	child.fn.Arity = child.locals.Count() - 1

	if p.match(token.LBRACE) {
		parseBlockStatements(p, child)
	} else {
		p.parseStatement(child)
	}
	child.fn.EmitOp(op.END)

	idx := fr.fn.AddConstant(child.fn)
	p.vm.Unpin(child.fn)
	fr.fn.EmitOp(op.CONSTANT)
	fr.fn.EmitByte(byte(idx))
}
