// Package tokenizer implements the ZFX maximal-munch lexer: it turns a
// source string into an ordered token sequence, stopping silently at the
// first byte no rule matches.
package tokenizer

import (
	"strconv"

	"github.com/sonicyouth98/poczfx/token"
)

// Tokenizer scans a ZFX source string one rule-match at a time. It never
// errors: LiteralErr records a malformed numeric run (e.g. "1.2.3") so the
// driver can surface it as a parse failure, but scanning itself always
// terminates, either at end of input or at the first unrecognized byte.
type Tokenizer struct {
	src        string
	pos        int
	LiteralErr error
}

// New creates a Tokenizer over src.
func New(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Scan runs the tokenizer to completion and returns every token it could
// produce. It never fails; trailing unconsumed input (t.pos < len(src))
// after Scan returns is the caller's signal to treat this as a parse
// failure ("trailing garbage").
func Scan(src string) ([]token.Token, *Tokenizer) {
	t := New(src)
	var toks []token.Token
	for {
		tok, ok := t.next()
		if !ok {
			break
		}
		toks = append(toks, tok)
		if t.LiteralErr != nil {
			break
		}
	}
	return toks, t
}

// Pos returns the current byte offset into the source. Any non-whitespace
// remaining at this offset after scanning stops means tokenization halted
// on an unrecognized byte.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// Remainder returns whatever of the source is left unconsumed.
func (t *Tokenizer) Remainder() string {
	return t.src[t.pos:]
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.src) {
		switch t.src[t.pos] {
		case ' ', '\t', '\r', '\n':
			t.pos++
		default:
			return
		}
	}
}

// next applies the maximal-munch rule once at the current position and
// reports whether a token was produced.
func (t *Tokenizer) next() (token.Token, bool) {
	t.skipWhitespace()
	if t.pos >= len(t.src) {
		return token.Token{}, false
	}
	c := t.src[t.pos]

	// Rule 1: numeric literal run, including a leading '.' followed by a digit.
	if token.IsDigit(c) || (c == '.' && t.pos+1 < len(t.src) && token.IsDigit(t.src[t.pos+1])) {
		return t.takeNumber()
	}

	// Rule 2: identifier run (includes keyword recognition).
	if token.IsIdentChar(c) {
		return t.takeIdent()
	}

	// Rule 3: two-character operator.
	if t.pos+1 < len(t.src) {
		key := [2]byte{c, t.src[t.pos+1]}
		if op, ok := token.LUT2[key]; ok {
			t.pos += 2
			return token.Token{Kind: token.KindOp, Op: op}, true
		}
	}

	// Rule 4: single-character operator.
	if op, ok := token.LUT1[c]; ok {
		t.pos++
		return token.Token{Kind: token.KindOp, Op: op}, true
	}

	// Rule 5: no rule matches; stop.
	return token.Token{}, false
}

func (t *Tokenizer) takeNumber() (token.Token, bool) {
	start := t.pos
	t.pos++
	for t.pos < len(t.src) && (token.IsDigit(t.src[t.pos]) || t.src[t.pos] == '.') {
		t.pos++
	}
	run := t.src[start:t.pos]

	if hasDot(run) {
		v, err := strconv.ParseFloat(run, 32)
		if err != nil {
			t.LiteralErr = &LiteralError{Run: run, Err: err}
			return token.Token{}, false
		}
		return token.Token{Kind: token.KindFloat, Float: float32(v)}, true
	}

	v, err := strconv.ParseInt(run, 10, 32)
	if err != nil {
		t.LiteralErr = &LiteralError{Run: run, Err: err}
		return token.Token{}, false
	}
	return token.Token{Kind: token.KindInt, Int: int32(v)}, true
}

func hasDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}

func (t *Tokenizer) takeIdent() (token.Token, bool) {
	start := t.pos
	t.pos++
	for t.pos < len(t.src) && token.IsIdentChar(t.src[t.pos]) {
		t.pos++
	}
	text := t.src[start:t.pos]
	if op, ok := token.LUTKwd[text]; ok {
		return token.Token{Kind: token.KindOp, Op: op}, true
	}
	return token.Token{Kind: token.KindIdent, Ident: text}, true
}

// LiteralError reports that a numeric run could not be converted to an
// integer or float ("literal parse failure"), e.g. a run containing more
// than one '.'.
type LiteralError struct {
	Run string
	Err error
}

func (e *LiteralError) Error() string {
	return "zfx: malformed numeric literal " + strconv.Quote(e.Run) + ": " + e.Err.Error()
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}
