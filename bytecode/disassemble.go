package bytecode

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/emberlang/emberc/op"
)

// Instruction is one decoded opcode plus its operand bytes, as produced by
// Disassemble. It exists purely for tooling (the CLI's --disassemble flag);
// the compiler itself never constructs one.
type Instruction struct {
	Offset   int
	Op       op.Code
	Operands []byte
}

// Disassemble decodes f's code buffer into a sequence of instructions. It
// does not attempt to interpret jump targets or resolve constant indices
// into values; Print resolves the constant indices of CONSTANT and METHOD at
// render time, and jump operands stay raw distances.
func Disassemble(f *Function) []Instruction {
	var out []Instruction
	code := f.Code
	i := 0
	for i < len(code) {
		c := op.Code(code[i])
		n := op.OperandCount(c)
		inst := Instruction{Offset: i, Op: c}
		i++
		for k := 0; k < n && i < len(code); k++ {
			inst.Operands = append(inst.Operands, code[i])
			i++
		}
		out = append(out, inst)
	}
	return out
}

// Print renders instructions as a tab-aligned table: offset, mnemonic,
// operand bytes, and (for CONSTANT/METHOD) the constant pool value at that
// index, for human inspection.
func Print(f *Function, instructions []Instruction, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tOPCODE\tOPERANDS\tINFO")
	for _, inst := range instructions {
		info := ""
		switch inst.Op {
		case op.CONSTANT:
			if len(inst.Operands) == 1 {
				idx := int(inst.Operands[0])
				if idx < len(f.Constants) {
					info = fmt.Sprintf("%v", f.Constants[idx])
				}
			}
		case op.METHOD:
			if len(inst.Operands) == 2 {
				constIdx := int(inst.Operands[1])
				if constIdx < len(f.Constants) {
					info = fmt.Sprintf("%v", f.Constants[constIdx])
				}
			}
		}
		operandStrs := ""
		for i, b := range inst.Operands {
			if i > 0 {
				operandStrs += ","
			}
			operandStrs += fmt.Sprintf("%d", b)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", inst.Offset, op.Name(inst.Op), operandStrs, info)
	}
	tw.Flush()
}
