// Package vm declares the external collaborators the compiler depends on
// but does not implement: the virtual machine that will eventually execute
// emitted bytecode, and the object system's function/string constructors and
// garbage-collector roots. Per the compiler's scope, only these interfaces
// are in scope here — not an execution engine. Machine is a minimal
// reference implementation sufficient to drive and test the compiler end to
// end without a real VM.
package vm

import (
	"github.com/emberlang/emberc/bytecode"
	"github.com/emberlang/emberc/internal/symtable"
)

// Value is anything that can live in a function's constant pool or in a
// global/local slot at runtime. The concrete value types (numbers, strings,
// class instances) belong to the object system, out of this module's scope.
type Value = bytecode.Value

// VM is the set of services the compiler needs from its host virtual
// machine: fresh function objects, interned strings, GC roots, and the two
// symbol tables shared between compile time and run time (module-level
// globals, and method selectors).
type VM interface {
	// NewFunction returns a fresh function object with an empty bytecode
	// buffer and empty constant pool.
	NewFunction() *bytecode.Function

	// NewString constructs a runtime string value from the given Go string.
	NewString(s string) Value

	// Pin adds fn to the garbage collector's root set for the duration of
	// compilation, so that intermediate allocations triggered by compiling
	// the rest of the program cannot reclaim it.
	Pin(fn *bytecode.Function)

	// Unpin removes fn from the root set once it is safely referenced from
	// its final home (returned to the caller, or installed in a parent's
	// constant pool).
	Unpin(fn *bytecode.Function)

	// Globals returns the VM-wide table of top-level variable names.
	Globals() *symtable.Table

	// Methods returns the VM-wide table of method selectors.
	Methods() *symtable.Table
}

// Machine is a minimal, dependency-free VM implementation: enough to drive
// the compiler standalone (in tests and in the CLI's --disassemble mode)
// without a real bytecode interpreter, which remains an external
// collaborator per the compiler's scope.
type Machine struct {
	globals *symtable.Table
	methods *symtable.Table
	pinned  map[*bytecode.Function]bool
}

// NewMachine returns a Machine with empty global and method tables.
func NewMachine() *Machine {
	return &Machine{
		globals: symtable.New(),
		methods: symtable.New(),
		pinned:  make(map[*bytecode.Function]bool),
	}
}

func (m *Machine) NewFunction() *bytecode.Function {
	return bytecode.NewFunction()
}

func (m *Machine) NewString(s string) Value {
	return s
}

func (m *Machine) Pin(fn *bytecode.Function) {
	m.pinned[fn] = true
}

func (m *Machine) Unpin(fn *bytecode.Function) {
	delete(m.pinned, fn)
}

func (m *Machine) Globals() *symtable.Table {
	return m.globals
}

func (m *Machine) Methods() *symtable.Table {
	return m.methods
}

// Pinned reports whether fn is currently in the GC root set. Exposed for
// tests that assert on pin/unpin discipline around compilation.
func (m *Machine) Pinned(fn *bytecode.Function) bool {
	return m.pinned[fn]
}
