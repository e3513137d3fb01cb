// Package bytecode defines the compiled artifact the compiler produces: a
// flat instruction buffer plus a constant pool, as described by the
// compiler's function-object collaborator. The virtual machine that
// executes this is an external collaborator, referenced only through the
// vm.VM interface (see the vm package) — this package owns only the static
// shape of a compiled function, not its execution.
package bytecode

import (
	"fmt"

	"github.com/emberlang/emberc/op"
)

// Value is an element of a function's constant pool. The object system that
// gives these values runtime meaning (numbers, strings, classes) lives
// outside this module's scope; here a Value is opaque data the compiler
// only ever pushes onto the stack or passes to METHOD/CLASS, never inspects.
type Value = any

// Function is the bytecode buffer and constant pool for one compiled
// function or method body. It is built incrementally during compilation via
// EmitByte/PatchByte/AddConstant, then handed off complete: once a Compiler
// frame finishes, its Function is either returned to the caller (top level)
// or installed into the parent's constant pool, at which point this struct
// is treated as immutable.
type Function struct {
	// Name is the arity-mangled selector for methods, the bare name for
	// named functions, or "" for anonymous function literals and the
	// top-level script function.
	Name string

	// Arity is the declared parameter count (0 for the top-level script).
	Arity int

	Code      []byte
	Constants []Value
}

// NewFunction returns an empty function object ready for code generation.
func NewFunction() *Function {
	return &Function{}
}

// EmitByte appends one byte to the code stream and returns its offset.
func (f *Function) EmitByte(b byte) int {
	f.Code = append(f.Code, b)
	return len(f.Code) - 1
}

// EmitOp appends an opcode byte and returns its offset.
func (f *Function) EmitOp(c op.Code) int {
	return f.EmitByte(byte(c))
}

// PatchByte overwrites a single previously emitted byte. Used for jump
// offset patching: a placeholder byte emitted during `if` compilation is
// overwritten once the jump target is known.
func (f *Function) PatchByte(offset int, b byte) {
	f.Code[offset] = b
}

// Len returns the current length of the code buffer.
func (f *Function) Len() int {
	return len(f.Code)
}

// AddConstant appends v to the constant pool and returns its index. Once
// emitted, a constant's index never changes: callers must not attempt to
// deduplicate or reorder after the fact.
func (f *Function) AddConstant(v Value) int {
	f.Constants = append(f.Constants, v)
	return len(f.Constants) - 1
}

// ConstantCount returns the number of constants in the pool.
func (f *Function) ConstantCount() int {
	return len(f.Constants)
}

// String renders a short identifying label, used in disassembly headers and
// error messages.
func (f *Function) String() string {
	if f.Name == "" {
		return "<script>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}
