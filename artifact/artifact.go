// Package artifact defines the on-disk/interchange encoding of a
// compiled ZFX program: the bytecode stream, the symbol table, and the
// register count, serialized with CBOR so artifacts are compact,
// self-describing, and stable across the module's evolution. Grounded
// on the teacher's own serialization conventions (content-addressed
// binary blobs in vm/content_store.go) generalized from a hashing-only
// concern to a full roundtrip encoding.
package artifact

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/sonicyouth98/poczfx/compiler"
)

// Artifact is the durable form of a compiler.Result.
type Artifact struct {
	Codes []uint32 `cbor:"codes"`
	Syms  []string `cbor:"syms"`
	NRegs uint32   `cbor:"nregs"`
}

var encMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("artifact: building canonical CBOR encoder: %v", err))
	}
	return mode
}()

// FromResult converts a driver Result into its durable Artifact form.
func FromResult(r *compiler.Result) *Artifact {
	return &Artifact{Codes: r.Codes, Syms: r.Syms, NRegs: r.NRegs}
}

// Encode serializes a into canonical CBOR, so byte-identical artifacts
// always produce byte-identical encodings, extending the compiler's
// determinism to the interchange format.
func Encode(a *Artifact) ([]byte, error) {
	b, err := encMode.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encoding artifact: %w", err)
	}
	return b, nil
}

// Decode parses a CBOR-encoded Artifact previously produced by Encode.
func Decode(b []byte) (*Artifact, error) {
	var a Artifact
	if err := cbor.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}
	return &a, nil
}
