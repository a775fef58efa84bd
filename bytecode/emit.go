package bytecode

import (
	"math"

	"github.com/sonicyouth98/poczfx/ir"
	"github.com/sonicyouth98/poczfx/scanner"
	"github.com/sonicyouth98/poczfx/token"
)

// op2bc is the fixed Op -> Bc translation. Assignment and
// compound-assignment operators have no entry: an assignment IR node
// emits no code of its own (its operand subtrees still emit theirs).
var op2bc = map[token.Op]Bc{
	token.OpPlus:            BcPlus,
	token.OpMinus:           BcMinus,
	token.OpMultiply:        BcMultiply,
	token.OpDivide:          BcDivide,
	token.OpModulus:         BcModulus,
	token.OpBitInverse:      BcBitInverse,
	token.OpBitAnd:          BcBitAnd,
	token.OpBitOr:           BcBitOr,
	token.OpBitXor:          BcBitXor,
	token.OpBitShl:          BcBitShl,
	token.OpBitShr:          BcBitShr,
	token.OpLogicNot:        BcLogicNot,
	token.OpLogicAnd:        BcLogicAnd,
	token.OpLogicOr:         BcLogicOr,
	token.OpCmpEqual:        BcCmpEqual,
	token.OpCmpNotEqual:     BcCmpNotEqual,
	token.OpCmpLessThan:     BcCmpLessThan,
	token.OpCmpLessEqual:    BcCmpLessEqual,
	token.OpCmpGreaterThan:  BcCmpGreaterThan,
	token.OpCmpGreaterEqual: BcCmpGreaterEqual,
}

// SymTab is the first-seen-wins identifier interner: a bijection between
// identifier strings and contiguous SymId integers starting at 0, built
// incrementally as AddrSymbol instructions are emitted.
type SymTab struct {
	ids   map[string]uint32
	names []string
}

// Intern returns name's SymId, assigning the next available one on first
// occurrence.
func (s *SymTab) Intern(name string) uint32 {
	if s.ids == nil {
		s.ids = make(map[string]uint32)
	}
	if id, ok := s.ids[name]; ok {
		return id
	}
	id := uint32(len(s.names))
	s.ids[name] = id
	s.names = append(s.names, name)
	return id
}

// Names returns the inverse map: Names()[id] is the identifier for SymId
// id. This is the symbol table artifact the driver returns.
func (s *SymTab) Names() []string {
	if s.names == nil {
		return []string{}
	}
	return s.names
}

// Emit walks p's nodes in index order and produces the code stream and
// symbol table per the per-node emission table. Code words are appended
// strictly in IR-index order, so the stream's structure mirrors the
// post-order traversal of the source program.
func Emit(p ir.Program, regs []scanner.RegID) (codes []uint32, syms []string) {
	var symtab SymTab
	for i, n := range p.Nodes {
		reg := uint32(regs[i])
		switch n.Kind {
		case ir.KindConstInt:
			codes = append(codes, uint32(BcLoadConstInt), reg, uint32(n.ConstInt))
		case ir.KindConstFloat:
			codes = append(codes, uint32(BcLoadConstFloat), reg, math.Float32bits(n.Float))
		case ir.KindSym:
			codes = append(codes, uint32(BcAddrSymbol), symtab.Intern(n.Sym))
		case ir.KindOp:
			bc, ok := op2bc[n.Op]
			if !ok {
				// Assignment family and the `;` statement-sequence node:
				// no bytecode mapping, nothing emitted.
				continue
			}
			codes = append(codes, uint32(bc), reg)
			for _, arg := range n.Args {
				codes = append(codes, uint32(regs[arg]))
			}
		case ir.KindEmpty:
			// nothing emitted
		}
	}
	return codes, symtab.Names()
}
