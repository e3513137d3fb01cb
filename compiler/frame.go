package compiler

import (
	"github.com/emberlang/emberc/bytecode"
	"github.com/emberlang/emberc/internal/symtable"
	"github.com/emberlang/emberc/op"
)

// Frame is one nested scope: one per function or method body, plus one for
// the top-level script. Frames chain to their lexical parent so that
// this-legality can be searched upward without a separate call stack.
type Frame struct {
	p        *Parser
	parent   *Frame
	fn       *bytecode.Function
	locals   *symtable.Table
	isMethod bool
}

// newTopFrame returns the frame compiling the outermost script. It has no
// parent and reserves no receiver slot: top-level declarations go to the
// VM's global table instead of locals.
func newTopFrame(p *Parser) *Frame {
	return &Frame{p: p, fn: p.vm.NewFunction(), locals: symtable.New()}
}

// newChildFrame returns a nested frame for a method or function literal body.
// Slot 0 of its locals table is reserved for the receiver under the name
// "(this)", whether or not the frame is actually a method.
func newChildFrame(p *Parser, parent *Frame, isMethod bool) *Frame {
	fr := &Frame{p: p, parent: parent, fn: p.vm.NewFunction(), locals: symtable.New(), isMethod: isMethod}
	fr.locals.Add("(this)")
	return fr
}

func (fr *Frame) isTopLevel() bool {
	return fr.parent == nil
}

// resolveName searches fr's own locals, then the VM-wide globals. Enclosing
// non-top-level frames are never searched: nested closures over outer locals
// are not supported.
func resolveName(fr *Frame, name string) (loadOp, storeOp op.Code, idx int, found bool) {
	if idx := fr.locals.Find(name); idx != -1 {
		return op.LOAD_LOCAL, op.STORE_LOCAL, idx, true
	}
	if idx := fr.p.vm.Globals().Find(name); idx != -1 {
		return op.LOAD_GLOBAL, op.STORE_GLOBAL, idx, true
	}
	return 0, 0, 0, false
}

// declareVariable registers name in fr's locals, or in the VM-wide globals
// if fr is the top-level frame, reporting a duplicate-variable error if the
// name is already taken in that scope.
func declareVariable(fr *Frame, name string) (idx int, isGlobal bool) {
	if fr.isTopLevel() {
		idx = fr.p.vm.Globals().Add(name)
		isGlobal = true
	} else {
		idx = fr.locals.Add(name)
		isGlobal = false
	}
	if idx == -1 {
		fr.p.semanticError("variable is already defined")
	}
	return idx, isGlobal
}

// defineVariable emits the store for a just-declared variable's initializer,
// which is already on top of the stack. Globals are popped into the global
// slot outright; locals stay in place (their stack position is the slot) and
// only need a DUP so that the enclosing block's inter-statement POP does not
// consume the value a local declaration is supposed to keep.
func defineVariable(fr *Frame, idx int, isGlobal bool) {
	if isGlobal {
		fr.fn.EmitOp(op.STORE_GLOBAL)
		fr.fn.EmitByte(byte(idx))
	} else {
		fr.fn.EmitOp(op.DUP)
	}
}

// emitJump emits c followed by a one-byte placeholder and returns the
// placeholder's offset, to be patched later by patchJump.
func (fr *Frame) emitJump(c op.Code) int {
	fr.fn.EmitOp(c)
	return fr.fn.EmitByte(0xFF)
}

// patchJump overwrites the placeholder at offset with the forward distance
// from the byte after it to the current end of the code buffer.
func (fr *Frame) patchJump(offset int) {
	dist := fr.fn.Len() - offset - 1
	if dist < 0 || dist > 255 {
		fr.p.error("jump distance out of range")
		dist = 0
	}
	fr.fn.PatchByte(offset, byte(dist))
}
