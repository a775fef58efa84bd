package parser

import (
	"errors"
	"testing"

	"github.com/sonicyouth98/poczfx/ast"
	"github.com/sonicyouth98/poczfx/token"
	"github.com/sonicyouth98/poczfx/tokenizer"
)

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	toks, tok := tokenizer.Scan(src)
	if tok.LiteralErr != nil {
		t.Fatalf("Scan(%q): unexpected LiteralErr: %v", src, tok.LiteralErr)
	}
	root, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	return root
}

func TestParseEmpty(t *testing.T) {
	root := parse(t, "")
	if root.Tok.Op != token.OpSemicolon || len(root.Children) != 0 {
		t.Errorf("root = %+v, want empty OpSemicolon", root)
	}
}

func TestParseSingleStatement(t *testing.T) {
	root := parse(t, "42;")
	if len(root.Children) != 1 {
		t.Fatalf("got %d statements, want 1", len(root.Children))
	}
	if root.Children[0].Tok.Kind != token.KindInt || root.Children[0].Tok.Int != 42 {
		t.Errorf("statement = %+v, want int literal 42", root.Children[0].Tok)
	}
}

func TestParseTwoStatements(t *testing.T) {
	root := parse(t, "1; 2;")
	if len(root.Children) != 2 {
		t.Fatalf("got %d statements, want 2", len(root.Children))
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	root := parse(t, "a + b + c;")
	stmt := root.Children[0]
	if stmt.Tok.Op != token.OpPlus {
		t.Fatalf("top = %v, want OpPlus", stmt.Tok.Op)
	}
	lhs := stmt.Children[0]
	if lhs.Tok.Op != token.OpPlus {
		t.Fatalf("lhs = %v, want OpPlus (a+b), got %+v", lhs.Tok.Op, lhs)
	}
	if lhs.Children[0].Tok.Ident != "a" || lhs.Children[1].Tok.Ident != "b" {
		t.Errorf("inner operands = %+v, %+v, want a, b", lhs.Children[0].Tok, lhs.Children[1].Tok)
	}
	if stmt.Children[1].Tok.Ident != "c" {
		t.Errorf("rhs = %+v, want c", stmt.Children[1].Tok)
	}
}

func TestParsePrecedence(t *testing.T) {
	root := parse(t, "a + b * c;")
	stmt := root.Children[0]
	if stmt.Tok.Op != token.OpPlus {
		t.Fatalf("top = %v, want OpPlus", stmt.Tok.Op)
	}
	rhs := stmt.Children[1]
	if rhs.Tok.Op != token.OpMultiply {
		t.Fatalf("rhs = %v, want OpMultiply (b*c)", rhs.Tok.Op)
	}
}

func TestParseFailureIncompleteExpr(t *testing.T) {
	toks, tok := tokenizer.Scan("1 +")
	if tok.LiteralErr != nil {
		t.Fatalf("unexpected LiteralErr: %v", tok.LiteralErr)
	}
	_, err := Parse(toks)
	if err == nil {
		t.Fatal("Parse(\"1 +\") succeeded, want failure")
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Errorf("err = %v, want ErrParseFailure", err)
	}
}

func TestParseFailureMissingSemicolon(t *testing.T) {
	toks, _ := tokenizer.Scan("1 + 2")
	_, err := Parse(toks)
	if !errors.Is(err, ErrParseFailure) {
		t.Errorf("Parse(\"1 + 2\") err = %v, want ErrParseFailure", err)
	}
}

func TestParseAssignmentBindsTighterThanArithmetic(t *testing.T) {
	// Assignment sits at a tighter level than `+`, so `a = b + c` groups
	// as `(a = b) + c`.
	mixed := parse(t, "a = b + c;").Children[0]
	if mixed.Tok.Kind != token.KindOp || mixed.Tok.Op != token.OpPlus {
		t.Fatalf("top = %+v, want OpPlus", mixed.Tok)
	}
	if lhs := mixed.Children[0]; lhs.Tok.Kind != token.KindOp || lhs.Tok.Op != token.OpAssign {
		t.Errorf("lhs = %+v, want OpAssign (a = b)", lhs.Tok)
	}

	// A pure assignment chain associates left-to-right: `(a = b) = c`.
	root := parse(t, "a = b = c;")
	stmt := root.Children[0]
	if stmt.Tok.Op != token.OpAssign {
		t.Fatalf("top = %v, want OpAssign", stmt.Tok.Op)
	}
	if lhs := stmt.Children[0]; lhs.Tok.Kind != token.KindOp || lhs.Tok.Op != token.OpAssign {
		t.Errorf("lhs = %+v, want OpAssign (a = b)", lhs.Tok)
	}
}

func TestParseComma(t *testing.T) {
	root := parse(t, "a, b;")
	stmt := root.Children[0]
	if stmt.Tok.Op != token.OpComma {
		t.Fatalf("top = %v, want OpComma", stmt.Tok.Op)
	}
}
