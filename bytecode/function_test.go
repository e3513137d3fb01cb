package bytecode

import (
	"bytes"
	"testing"

	"github.com/emberlang/emberc/op"
	"github.com/stretchr/testify/assert"
)

func TestEmitAndPatch(t *testing.T) {
	f := NewFunction()
	f.EmitOp(op.TRUE)
	jumpOffset := f.EmitOp(op.JUMP_IF)
	placeholder := f.EmitByte(0xFF)
	f.EmitOp(op.NULL)
	f.EmitOp(op.END)

	assert.Equal(t, 5, f.Len())
	f.PatchByte(placeholder, byte(f.Len()-placeholder-1))
	assert.Equal(t, byte(op.JUMP_IF), f.Code[jumpOffset])
	assert.Equal(t, byte(2), f.Code[placeholder])
}

func TestAddConstant(t *testing.T) {
	f := NewFunction()
	a := f.AddConstant(1.0)
	b := f.AddConstant("hi")
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, f.ConstantCount())
}

func TestDisassemble(t *testing.T) {
	f := NewFunction()
	idx := f.AddConstant(42.0)
	f.EmitOp(op.CONSTANT)
	f.EmitByte(byte(idx))
	f.EmitOp(op.END)

	instructions := Disassemble(f)
	assert.Len(t, instructions, 2)
	assert.Equal(t, op.CONSTANT, instructions[0].Op)
	assert.Equal(t, []byte{byte(idx)}, instructions[0].Operands)
	assert.Equal(t, op.END, instructions[1].Op)

	var buf bytes.Buffer
	Print(f, instructions, &buf)
	assert.Contains(t, buf.String(), "CONSTANT")
	assert.Contains(t, buf.String(), "42")
}
