// Package compiler is the ZFX driver: it runs the tokenizer, parser,
// lowerer, scanner, and emitter in sequence and assembles their outputs
// into a Result.
package compiler

import (
	"errors"
	"fmt"

	"github.com/sonicyouth98/poczfx/bytecode"
	"github.com/sonicyouth98/poczfx/ir"
	"github.com/sonicyouth98/poczfx/parser"
	"github.com/sonicyouth98/poczfx/scanner"
	"github.com/sonicyouth98/poczfx/tokenizer"
)

// Result is the driver's success output: Codes is the bytecode stream,
// Syms is the symbol table indexed by SymId, and NRegs is the register
// count (equal to the IR array length).
type Result struct {
	Codes []uint32
	Syms  []string
	NRegs uint32

	// deps is kept for future liveness-based allocator work; the
	// emitter never reads it.
	deps scanner.Result
}

// Deps exposes the scanner's dependency edges for tooling that wants
// them; the driver itself never consumes them.
func (r *Result) Deps() scanner.Result {
	return r.deps
}

// ParseErrorKind distinguishes the three failure kinds the driver
// recognizes.
type ParseErrorKind int

const (
	// KindSyntax covers both "an expression failed to parse where one was
	// required" and "an expression parsed but no `;` followed".
	KindSyntax ParseErrorKind = iota
	// KindLiteral covers a numeric run that did not convert to an int or
	// float (e.g. "1.2.3").
	KindLiteral
	// KindTrailingGarbage covers tokenization stopping before end of
	// input on an unrecognized byte.
	KindTrailingGarbage
)

// ParseError is the single distinguished failure the driver returns.
// Callers that want to branch on the failure kind can compare Kind;
// errors.Is(err, parser.ErrParseFailure) also holds for KindSyntax.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zfx: compile failed: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrTrailingGarbage is wrapped into a ParseError when the tokenizer
// halts before consuming the whole source.
var ErrTrailingGarbage = errors.New("zfx: trailing garbage after last recognized token")

// Compile runs the full pipeline over src and returns the assembled
// Result, or a ParseError. Compile has no state shared across calls and
// is safe to call concurrently from multiple goroutines.
func Compile(src string) (*Result, error) {
	toks, tok := tokenizer.Scan(src)
	if tok.LiteralErr != nil {
		return nil, &ParseError{Kind: KindLiteral, Err: tok.LiteralErr}
	}
	if rest := tok.Remainder(); hasNonWhitespace(rest) {
		return nil, &ParseError{Kind: KindTrailingGarbage, Err: fmt.Errorf("%w: %q", ErrTrailingGarbage, rest)}
	}

	root, err := parser.Parse(toks)
	if err != nil {
		return nil, &ParseError{Kind: KindSyntax, Err: err}
	}

	prog := ir.Lower(root)
	scan := scanner.Scan(prog)
	codes, syms := bytecode.Emit(prog, scan.RegLUT)

	return &Result{
		Codes: codes,
		Syms:  syms,
		NRegs: uint32(len(prog.Nodes)),
		deps:  scan,
	}, nil
}

func hasNonWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return true
		}
	}
	return false
}
