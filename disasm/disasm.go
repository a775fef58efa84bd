// Package disasm renders a ZFX code stream as a human-readable
// instruction listing, offset by offset. Grounded on the teacher's
// pkg/bytecode/disasm.go: an explicit offset cursor walked by each
// instruction's own length, with a switch on opcode shape rather than
// a uniform decode, because AddrSymbol's two-word shape breaks the
// otherwise-uniform [opcode, dest, operands...] layout the teacher's
// table-driven version can rely on with a per-opcode OperandLen.
package disasm

import (
	"fmt"
	"math"
	"strings"

	"github.com/sonicyouth98/poczfx/bytecode"
)

// Disassemble renders codes (with syms as the symbol table AddrSymbol
// entries index into) as one line per instruction, prefixed with its
// word offset.
func Disassemble(codes []uint32, syms []string) string {
	var sb strings.Builder
	offset := 0
	for offset < len(codes) {
		line, wordLen := disassembleInstruction(codes, syms, offset)
		fmt.Fprintf(&sb, "%04X  %s\n", offset, line)
		if wordLen <= 0 {
			break
		}
		offset += wordLen
	}
	return sb.String()
}

// DisassembleToLines is Disassemble without the offset prefix, one
// instruction per slice entry.
func DisassembleToLines(codes []uint32, syms []string) []string {
	var lines []string
	offset := 0
	for offset < len(codes) {
		line, wordLen := disassembleInstruction(codes, syms, offset)
		lines = append(lines, line)
		if wordLen <= 0 {
			break
		}
		offset += wordLen
	}
	return lines
}

func disassembleInstruction(codes []uint32, syms []string, offset int) (string, int) {
	bc := bytecode.Bc(codes[offset])

	switch bc {
	case bytecode.BcLoadConstInt:
		reg, imm := operand(codes, offset, 1), operand(codes, offset, 2)
		return fmt.Sprintf("%s r%d, %d", bc, reg, int32(imm)), 3

	case bytecode.BcLoadConstFloat:
		reg, bits := operand(codes, offset, 1), operand(codes, offset, 2)
		return fmt.Sprintf("%s r%d, %s", bc, reg, formatFloatBits(bits)), 3

	case bytecode.BcAddrSymbol:
		// No destination register word: this opcode is two words wide,
		// not three.
		symID := operand(codes, offset, 1)
		name := ""
		if int(symID) < len(syms) {
			name = syms[symID]
		}
		return fmt.Sprintf("%s %d ; %s", bc, symID, name), 2

	case bytecode.BcBitInverse, bytecode.BcLogicNot:
		reg, src := operand(codes, offset, 1), operand(codes, offset, 2)
		return fmt.Sprintf("%s r%d, r%d", bc, reg, src), 3

	default:
		if arity, ok := bytecode.Arity[bc]; ok && arity == 2 {
			reg := operand(codes, offset, 1)
			lhs := operand(codes, offset, 2)
			rhs := operand(codes, offset, 3)
			return fmt.Sprintf("%s r%d, r%d, r%d", bc, reg, lhs, rhs), 4
		}
		return fmt.Sprintf("<unknown opcode %d>", codes[offset]), 1
	}
}

func operand(codes []uint32, offset, i int) uint32 {
	idx := offset + i
	if idx >= len(codes) {
		return 0
	}
	return codes[idx]
}

func formatFloatBits(bits uint32) string {
	return fmt.Sprintf("%g", math.Float32frombits(bits))
}
