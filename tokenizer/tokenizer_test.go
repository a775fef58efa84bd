package tokenizer

import (
	"errors"
	"testing"

	"github.com/sonicyouth98/poczfx/token"
)

func TestScanBasic(t *testing.T) {
	toks, tok := Scan("a + 1 * 2.5;")
	if tok.LiteralErr != nil {
		t.Fatalf("unexpected LiteralErr: %v", tok.LiteralErr)
	}
	want := []token.Token{
		{Kind: token.KindIdent, Ident: "a"},
		{Kind: token.KindOp, Op: token.OpPlus},
		{Kind: token.KindInt, Int: 1},
		{Kind: token.KindOp, Op: token.OpMultiply},
		{Kind: token.KindFloat, Float: 2.5},
		{Kind: token.KindOp, Op: token.OpSemicolon},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("token[%d] = %+v, want %+v", i, toks[i], w)
		}
	}
}

func TestScanWhitespaceSkipped(t *testing.T) {
	toks, _ := Scan("  \t a\n\r  b  ")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	tests := []struct {
		src string
		op  token.Op
	}{
		{"&&", token.OpLogicAnd},
		{"||", token.OpLogicOr},
		{"==", token.OpCmpEqual},
		{"!=", token.OpCmpNotEqual},
		{"<=", token.OpCmpLessEqual},
		{">=", token.OpCmpGreaterEqual},
		{"<<", token.OpBitShl},
		{">>", token.OpBitShr},
		{"+=", token.OpPlusAssign},
		{"-=", token.OpMinusAssign},
	}
	for _, tc := range tests {
		toks, tok := Scan(tc.src)
		if tok.LiteralErr != nil {
			t.Fatalf("Scan(%q): unexpected LiteralErr: %v", tc.src, tok.LiteralErr)
		}
		if len(toks) != 1 || toks[0].Op != tc.op {
			t.Errorf("Scan(%q) = %v, want single op %v", tc.src, toks, tc.op)
		}
	}
}

func TestScanMaximalMunch(t *testing.T) {
	// "<<" must not tokenize as two "<" tokens.
	toks, _ := Scan("<<")
	if len(toks) != 1 || toks[0].Op != token.OpBitShl {
		t.Fatalf("got %v, want single BitShl", toks)
	}
}

func TestScanKeyword(t *testing.T) {
	toks, _ := Scan("if")
	if len(toks) != 1 || toks[0].Kind != token.KindOp || toks[0].Op != token.OpKeywordIf {
		t.Fatalf("got %v, want single KeywordIf", toks)
	}
}

func TestScanIdentWithPrefixChars(t *testing.T) {
	toks, _ := Scan("$self @attr foo_bar")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	for i, want := range []string{"$self", "@attr", "foo_bar"} {
		if toks[i].Ident != want {
			t.Errorf("token[%d].Ident = %q, want %q", i, toks[i].Ident, want)
		}
	}
}

func TestScanLeadingDotNumber(t *testing.T) {
	toks, tok := Scan(".5")
	if tok.LiteralErr != nil {
		t.Fatalf("unexpected LiteralErr: %v", tok.LiteralErr)
	}
	if len(toks) != 1 || toks[0].Kind != token.KindFloat || toks[0].Float != 0.5 {
		t.Fatalf("got %v, want single float 0.5", toks)
	}
}

func TestScanMalformedLiteral(t *testing.T) {
	_, tok := Scan("1.2.3")
	if tok.LiteralErr == nil {
		t.Fatal("expected LiteralErr for 1.2.3, got nil")
	}
	var le *LiteralError
	if !errors.As(tok.LiteralErr, &le) {
		t.Fatalf("LiteralErr is not a *LiteralError: %v", tok.LiteralErr)
	}
	if le.Run != "1.2.3" {
		t.Errorf("LiteralError.Run = %q, want %q", le.Run, "1.2.3")
	}
}

func TestScanStopsOnUnrecognizedByte(t *testing.T) {
	toks, tok := Scan("a + #")
	if tok.LiteralErr != nil {
		t.Fatalf("unexpected LiteralErr: %v", tok.LiteralErr)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	if tok.Remainder() != "#" {
		t.Errorf("Remainder() = %q, want %q", tok.Remainder(), "#")
	}
}
