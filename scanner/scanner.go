// Package scanner implements the ZFX register-allocation pass: it walks
// the flat IR array and produces a register map and a dependency edge
// set. The allocation policy is deliberately non-optimizing — one
// register per IR node, numerically equal to the node's own index —
// leaving liveness-based reuse to a future allocator that would consume
// the dependency set this pass also produces but does not itself use.
package scanner

import "github.com/sonicyouth98/poczfx/ir"

// RegID is a 32-bit virtual register identifier, 1:1 with an IR index
// under the current allocation policy.
type RegID uint32

// Edge records that the Op IR node at index From depends on (has as an
// argument) the IR node at index To.
type Edge struct {
	From ir.ID
	To   ir.ID
}

// Result holds the scanner's two outputs: RegLUT, indexed by ir.ID, and
// Deps, the Op-node argument edges.
type Result struct {
	RegLUT []RegID
	Deps   []Edge
}

// Scan never fails: every IR node variant maps to exactly one register,
// and only Op nodes contribute dependency edges.
func Scan(p ir.Program) Result {
	res := Result{RegLUT: make([]RegID, len(p.Nodes))}
	for i, n := range p.Nodes {
		res.RegLUT[i] = RegID(i)
		if n.Kind != ir.KindOp {
			continue
		}
		for _, arg := range n.Args {
			res.Deps = append(res.Deps, Edge{From: ir.ID(i), To: arg})
		}
	}
	return res
}

// DepsOf returns every node Result.Deps records as a dependency of node,
// in insertion order. This is the multimap lookup a future liveness-based
// allocator would use; the emitter does not call it.
func (r Result) DepsOf(node ir.ID) []ir.ID {
	var out []ir.ID
	for _, e := range r.Deps {
		if e.From == node {
			out = append(out, e.To)
		}
	}
	return out
}
