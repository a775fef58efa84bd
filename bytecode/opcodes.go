// Package bytecode translates ZFX IR into a linear 32-bit-word code
// stream and interns the symbol table alongside it. The Bc enumeration
// stands in for the downstream VM's opcode assignment table, treated as
// an opaque external contract, so its numeric values here are this
// package's own, not a borrowed VM's.
package bytecode

import "fmt"

// Bc is the bytecode opcode enumeration the emitter targets. Numeric
// values are local to this package and form a contiguous set containing
// at least these members.
type Bc uint32

const (
	BcLoadConstInt Bc = iota
	BcLoadConstFloat
	BcAddrSymbol

	BcPlus
	BcMinus
	BcMultiply
	BcDivide
	BcModulus

	BcBitInverse
	BcBitAnd
	BcBitOr
	BcBitXor
	BcBitShl
	BcBitShr

	BcLogicNot
	BcLogicAnd
	BcLogicOr

	BcCmpEqual
	BcCmpNotEqual
	BcCmpLessThan
	BcCmpLessEqual
	BcCmpGreaterThan
	BcCmpGreaterEqual
)

var bcNames = map[Bc]string{
	BcLoadConstInt:    "LoadConstInt",
	BcLoadConstFloat:  "LoadConstFloat",
	BcAddrSymbol:      "AddrSymbol",
	BcPlus:            "Plus",
	BcMinus:           "Minus",
	BcMultiply:        "Multiply",
	BcDivide:          "Divide",
	BcModulus:         "Modulus",
	BcBitInverse:      "BitInverse",
	BcBitAnd:          "BitAnd",
	BcBitOr:           "BitOr",
	BcBitXor:          "BitXor",
	BcBitShl:          "BitShl",
	BcBitShr:          "BitShr",
	BcLogicNot:        "LogicNot",
	BcLogicAnd:        "LogicAnd",
	BcLogicOr:         "LogicOr",
	BcCmpEqual:        "CmpEqual",
	BcCmpNotEqual:     "CmpNotEqual",
	BcCmpLessThan:     "CmpLessThan",
	BcCmpLessEqual:    "CmpLessEqual",
	BcCmpGreaterThan:  "CmpGreaterThan",
	BcCmpGreaterEqual: "CmpGreaterEqual",
}

func (b Bc) String() string {
	if name, ok := bcNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Bc(%d)", uint32(b))
}

// Arity is the number of source-register operand words a Bc instruction
// takes after its destination register word. AddrSymbol is not listed
// here: it has no destination register at all and is handled as a
// special case by every reader of the code stream (the emitter, and
// disasm.Disassemble).
var Arity = map[Bc]int{
	BcPlus:            2,
	BcMinus:           2,
	BcMultiply:        2,
	BcDivide:          2,
	BcModulus:         2,
	BcBitAnd:          2,
	BcBitOr:           2,
	BcBitXor:          2,
	BcBitShl:          2,
	BcBitShr:          2,
	BcLogicAnd:        2,
	BcLogicOr:         2,
	BcCmpEqual:        2,
	BcCmpNotEqual:     2,
	BcCmpLessThan:     2,
	BcCmpLessEqual:    2,
	BcCmpGreaterThan:  2,
	BcCmpGreaterEqual: 2,
	BcBitInverse:      1,
	BcLogicNot:        1,
}
