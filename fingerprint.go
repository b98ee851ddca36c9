// fingerprint.go: stable content digests for indices
//
// Callers that cache per-index results (chunk planners, lazy evaluators)
// need a key that is stable across processes and equal exactly when two
// indices are structurally equal. Fingerprint provides it: the canonical
// variant tree is encoded with deterministic (core-canonical) CBOR and
// hashed with BLAKE3. Equal indices produce equal digests by construction,
// because the encoding is derived from the same canonical fields Equal
// compares.
package ndindex

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// fingerprint encoding kind tags; part of the digest format, do not reorder.
const (
	fpInteger = iota
	fpSlice
	fpEllipsis
	fpNewaxis
	fpTuple
	fpIntArray
	fpBoolArray
)

var fpEncMode cbor.EncMode

func init() {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("ndindex: cbor encoder init: %v", err))
	}
	fpEncMode = m
}

// Fingerprint returns a 32-byte stable digest of the index's canonical form.
// Two indices have the same fingerprint iff Equal reports them equal.
func Fingerprint(idx Index) [32]byte {
	enc, err := fpEncMode.Marshal(fpTree(idx))
	if err != nil {
		// the tree below only contains ints, bools and arrays of them
		panic(fmt.Sprintf("ndindex: fingerprint encoding: %v", err))
	}
	return blake3.Sum256(enc)
}

// FingerprintHex returns the digest as a lowercase hex string.
func FingerprintHex(idx Index) string {
	sum := Fingerprint(idx)
	return fmt.Sprintf("%x", sum)
}

// fpTree lowers an index to a CBOR-encodable tagged tree.
func fpTree(idx Index) []any {
	switch v := idx.(type) {
	case Integer:
		return []any{fpInteger, v.i}
	case Slice:
		return []any{fpSlice, fpOpt(v.start), fpOpt(v.stop), v.step}
	case Ellipsis:
		return []any{fpEllipsis}
	case Newaxis:
		return []any{fpNewaxis}
	case Tuple:
		kids := make([]any, len(v.elems))
		for i, e := range v.elems {
			kids[i] = fpTree(e)
		}
		return []any{fpTuple, kids}
	case IntegerArray:
		return []any{fpIntArray, v.shape, v.data}
	case BooleanArray:
		return []any{fpBoolArray, v.shape, v.data}
	default:
		panic(fmt.Sprintf("ndindex: fingerprint: unknown variant %T", idx))
	}
}

func fpOpt(o OptInt) []any {
	if o.IsNone() {
		return []any{false, 0}
	}
	return []any{true, o.Value()}
}
