// Package parser implements the ZFX precedence-climbing expression parser:
// tokens in, an AST whose root is a `;`-labelled statement sequence out,
// or ErrParseFailure.
package parser

import (
	"errors"

	"github.com/sonicyouth98/poczfx/ast"
	"github.com/sonicyouth98/poczfx/token"
)

// levels holds the twelve binary-operator precedence classes, ordered
// from loosest/outermost binding (index 0: `||`) to tightest/innermost
// binding (index 11: `,`). This order — and in particular that the
// assignment family binds *tighter* than arithmetic and only slightly
// looser than comma — is taken verbatim from original_source/zfx/parser.cpp's
// `lvs` array.
var levels = [][]token.Op{
	{token.OpLogicOr},
	{token.OpLogicAnd},
	{token.OpBitOr},
	{token.OpBitXor},
	{token.OpBitAnd},
	{token.OpCmpEqual, token.OpCmpNotEqual},
	{token.OpCmpLessThan, token.OpCmpLessEqual, token.OpCmpGreaterThan, token.OpCmpGreaterEqual},
	{token.OpBitShl, token.OpBitShr},
	{token.OpPlus, token.OpMinus},
	{token.OpMultiply, token.OpDivide, token.OpModulus},
	{
		token.OpAssign, token.OpPlusAssign, token.OpMinusAssign, token.OpMultiplyAssign,
		token.OpDivideAssign, token.OpModulusAssign, token.OpBitAndAssign, token.OpBitOrAssign,
		token.OpBitXorAssign,
	},
	{token.OpComma},
}

// ErrParseFailure is the single distinguished failure the driver surfaces:
// either an expression failed to parse where one was required, or an
// expression parsed but no terminating `;` followed, or tokens remained
// unconsumed after the last recognized statement.
var ErrParseFailure = errors.New("zfx: parse failure")

// Parser walks a fixed token slice with a transactional cursor: every
// production that may fail marks its entry position and restores it on
// failure, so a failed speculative parse never consumes tokens.
type Parser struct {
	toks []token.Token
	pos  int
}

// New creates a Parser over toks.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse runs the grammar `program := statement*` over toks and returns the
// root statement-sequence node, or ErrParseFailure.
func Parse(toks []token.Token) (*ast.Node, error) {
	p := New(toks)
	var stmts []*ast.Node
	for {
		mark := p.mark()
		expr, ok := p.parseLevel(0)
		if !ok {
			p.reset(mark)
			break
		}
		if !p.expectOp(token.OpSemicolon) {
			p.reset(mark)
			return nil, ErrParseFailure
		}
		stmts = append(stmts, expr)
	}
	if p.pos != len(p.toks) {
		return nil, ErrParseFailure
	}
	return ast.Seq(stmts), nil
}

func (p *Parser) mark() int {
	return p.pos
}

func (p *Parser) reset(m int) {
	p.pos = m
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *Parser) advance() (token.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// expectOp consumes the next token if it is the given Op.
func (p *Parser) expectOp(op token.Op) bool {
	mark := p.mark()
	tok, ok := p.advance()
	if ok && tok.Kind == token.KindOp && tok.Op == op {
		return true
	}
	p.reset(mark)
	return false
}

// matchLevelOp consumes the next token if it is an Op in ops, returning
// the matched token. This is the "peek without consuming on non-match"
// step the precedence loop depends on.
func (p *Parser) matchLevelOp(ops []token.Op) (token.Token, bool) {
	mark := p.mark()
	tok, ok := p.advance()
	if !ok || tok.Kind != token.KindOp {
		p.reset(mark)
		return token.Token{}, false
	}
	for _, op := range ops {
		if tok.Op == op {
			return tok, true
		}
	}
	p.reset(mark)
	return token.Token{}, false
}

// parseLevel implements `exprLevel(n)`: at n == len(levels) it parses a
// single atom; otherwise it parses one parseLevel(n+1), then folds in as
// many same-level operators as match, left-associatively.
func (p *Parser) parseLevel(n int) (*ast.Node, bool) {
	if n == len(levels) {
		return p.parseAtom()
	}

	mark := p.mark()
	lhs, ok := p.parseLevel(n + 1)
	if !ok {
		p.reset(mark)
		return nil, false
	}

	for {
		opTok, ok := p.matchLevelOp(levels[n])
		if !ok {
			break
		}
		rhs, ok := p.parseLevel(n + 1)
		if !ok {
			// The operator matched but no right-hand operand did; per the
			// transactional rule this whole level's progress is invalid, so
			// it resets to mark and fails, and each enclosing level does the
			// same in turn.
			p.reset(mark)
			return nil, false
		}
		lhs = ast.Binary(opTok, lhs, rhs)
	}
	return lhs, true
}

// parseAtom parses a single identifier, int literal, or float literal.
func (p *Parser) parseAtom() (*ast.Node, bool) {
	mark := p.mark()
	tok, ok := p.advance()
	if !ok {
		return nil, false
	}
	switch tok.Kind {
	case token.KindIdent, token.KindInt, token.KindFloat:
		return ast.Leaf(tok), true
	default:
		p.reset(mark)
		return nil, false
	}
}
