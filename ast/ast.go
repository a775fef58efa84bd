// Package ast defines the ZFX abstract syntax tree: a single node shape
// carrying one Token label and an ordered slice of children.
package ast

import "github.com/sonicyouth98/poczfx/token"

// Node is a tree node labelled with a Token. Leaf nodes (identifier, int
// literal, float literal) have no children. Internal nodes are labelled
// with an Op and have one child per operand; the top-level statement
// sequence node is labelled OpSemicolon and has one child per statement.
type Node struct {
	Tok      token.Token
	Children []*Node
}

// Leaf builds a childless Node from an atom token.
func Leaf(tok token.Token) *Node {
	return &Node{Tok: tok}
}

// Binary builds an Op node with exactly two children, the shape every
// binary-operator production in the parser produces.
func Binary(op token.Token, lhs, rhs *Node) *Node {
	return &Node{Tok: op, Children: []*Node{lhs, rhs}}
}

// Seq builds the top-level OpSemicolon statement-sequence node.
func Seq(stmts []*Node) *Node {
	return &Node{Tok: token.Token{Kind: token.KindOp, Op: token.OpSemicolon}, Children: stmts}
}
