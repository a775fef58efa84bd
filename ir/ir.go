// Package ir lowers a ZFX AST into a flat, append-only, post-order IR
// array.
package ir

import (
	"github.com/sonicyouth98/poczfx/ast"
	"github.com/sonicyouth98/poczfx/token"
)

// Kind distinguishes the five IR node variants.
type Kind int

const (
	KindEmpty Kind = iota
	KindConstInt
	KindConstFloat
	KindOp
	KindSym
)

// ID is a dense 32-bit index into a Program's Nodes array.
type ID uint32

// Node is one entry of the flat IR array. Only the fields matching Kind
// are meaningful. Op nodes carry Args — the IDs of their operand nodes —
// which by construction (post-order emission) are all strictly less than
// the Op node's own index.
type Node struct {
	Kind     Kind
	ConstInt int32
	Float    float32
	Op       token.Op
	Args     []ID
	Sym      string
}

// Program is the flat IR array plus the root node's ID, the lowerer's
// entire output.
type Program struct {
	Nodes []Node
	Root  ID
}

// Lower runs a single recursive post-order traversal of root, appending
// one IR node per AST node, and returns the resulting Program. Lower
// never fails — every AST shape the parser can produce maps onto one of
// the five IR variants, with IREmpty as the catch-all.
func Lower(root *ast.Node) Program {
	var p Program
	p.Root = lowerNode(&p, root)
	return p
}

func lowerNode(p *Program, n *ast.Node) ID {
	switch n.Tok.Kind {
	case token.KindIdent:
		return appendNode(p, Node{Kind: KindSym, Sym: n.Tok.Ident})
	case token.KindInt:
		return appendNode(p, Node{Kind: KindConstInt, ConstInt: n.Tok.Int})
	case token.KindFloat:
		return appendNode(p, Node{Kind: KindConstFloat, Float: n.Tok.Float})
	case token.KindOp:
		args := make([]ID, len(n.Children))
		for i, ch := range n.Children {
			args[i] = lowerNode(p, ch)
		}
		return appendNode(p, Node{Kind: KindOp, Op: n.Tok.Op, Args: args})
	default:
		return appendNode(p, Node{Kind: KindEmpty})
	}
}

func appendNode(p *Program, n Node) ID {
	id := ID(len(p.Nodes))
	p.Nodes = append(p.Nodes, n)
	return id
}
