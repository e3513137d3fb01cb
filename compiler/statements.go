package compiler

import (
	"github.com/emberlang/emberc/internal/token"
	"github.com/emberlang/emberc/op"
)

// parseDefinition is the entry point for every position a declaration is
// legal: the top level, and the start of every block. Anything that is not
// a declaration falls through to parseStatement.
func (p *Parser) parseDefinition(fr *Frame) {
	switch {
	case p.match(token.CLASS):
		parseClassDecl(p, fr)
	case p.match(token.VAR):
		parseVarDecl(p, fr)
	default:
		p.parseStatement(fr)
	}
}

// parseStatement is "statement()": an if-expression, a brace-delimited
// block, or an ordinary expression that is itself allowed to be a bare
// assignment.
func (p *Parser) parseStatement(fr *Frame) {
	switch {
	case p.match(token.IF):
		parseIfExpr(p, fr)
	case p.match(token.LBRACE):
		parseBlockStatements(p, fr)
	default:
		p.parseExpression(fr, true)
	}
}

// parseVarDecl compiles "var NAME = STATEMENT".
func parseVarDecl(p *Parser, fr *Frame) {
	p.consume(token.NAME, "expect variable name")
	name := p.previous.Lexeme(p.source)
	idx, isGlobal := declareVariable(fr, name)
	p.consume(token.EQ, "expect '=' after variable name")
	p.parseStatement(fr)
	defineVariable(fr, idx, isGlobal)
}

// parseIfExpr compiles "if (COND) THEN [else ELSE]" as an expression: both
// branches always leave a value on the stack, a literal NULL standing in
// for a missing else so the construct can be used anywhere an expression
// can.
func parseIfExpr(p *Parser, fr *Frame) {
	p.consume(token.LPAREN, "expect '(' after 'if'")
	p.parseExpression(fr, true)
	p.consume(token.RPAREN, "expect ')' after condition")

	thenJump := fr.emitJump(op.JUMP_IF)
	p.parseStatement(fr)
	elseJump := fr.emitJump(op.JUMP)
	fr.patchJump(thenJump)

	if p.match(token.ELSE) {
		p.parseStatement(fr)
	} else {
		fr.fn.EmitOp(op.NULL)
	}
	fr.patchJump(elseJump)
}

// parseBlockStatements compiles the body of a "{ ... }" block, assuming the
// opening brace has already been consumed: repeated definitions separated by
// significant newlines, with a POP between statements whose value is
// discarded and no POP before the closing brace, so a block's last
// expression is its value.
func parseBlockStatements(p *Parser, fr *Frame) {
	for {
		if p.check(token.RBRACE) {
			break
		}
		p.parseDefinition(fr)
		if !p.match(token.LINE) {
			break
		}
		if p.check(token.RBRACE) {
			break
		}
		fr.fn.EmitOp(op.POP)
	}
	p.consume(token.RBRACE, "expect '}' after block")
}

// parseParamList parses "NAME (, NAME)*" up to a closing ')', assuming the
// opening '(' has already been consumed. Each parameter is declared as a
// local in fr; when selector is non-nil (method-definition sites), one
// space is appended per parameter, the same arity encoding call sites use.
func parseParamList(p *Parser, fr *Frame, selector *[]byte) {
	if !p.check(token.RPAREN) {
		for {
			p.consume(token.NAME, "expect parameter name")
			name := p.previous.Lexeme(p.source)
			if idx := fr.locals.Add(name); idx == -1 {
				p.semanticError("variable is already defined")
			}
			if selector != nil {
				*selector = append(*selector, ' ')
			}
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expect ')' after parameters")
}
