// types.go
//
// Core index model: the closed set of index variants and the raw-value
// vocabulary they round-trip through.
//
// An Index is the typed, canonical, immutable representation of anything that
// can appear inside an array indexing expression `a[...]`: integers, slice
// triples, the ellipsis and newaxis tokens, position tuples of these, and
// integer/boolean index arrays. The variant set is closed: every
// shape-dependent operation (NewShape, Reduce, Expand, IsEmpty) dispatches
// exhaustively over exactly these seven kinds:
//
//	Integer       a single signed offset, not yet bounds-checked
//	Slice         start:stop:step with optionally-unspecified bounds
//	Ellipsis      consumes as many axes as needed to fill out the rank
//	Newaxis       inserts a length-1 axis, consumes none
//	Tuple         ordered sequence of the above (at most one Ellipsis)
//	IntegerArray  an n-d array of offsets ("fancy" indexing)
//	BooleanArray  an n-d mask selecting positions where true
//
// Values are immutable after construction: every transform returns a new
// value, array payloads are copied at the construction boundary, and the same
// Index may be shared across goroutines without synchronization.
//
// The Raw() projection returns the original-shaped raw value (int, RawSlice,
// []any, RawIntArray, ...). Feeding Raw() back through New reproduces an
// equal Index; canonicalization changes how an index is spelled, never what
// it does.
package ndindex

import "fmt"

/* ===========================
   PUBLIC API: the Index interface
   =========================== */

// Index is the sealed interface implemented by the seven index variants.
//
// Shapes are plain []int slices of non-negative dimension lengths; nil and
// []int{} both denote the 0-d shape (). Shape-dependent methods never mutate
// the receiver; they either return a fresh value or an error from the
// taxonomy in errors.go.
type Index interface {
	fmt.Stringer

	// Raw returns the raw-value projection of this index: the value that,
	// fed to an array library's indexing operator (or back through New),
	// reproduces identical behavior.
	Raw() any

	// NewShape computes the shape produced by indexing an array of the
	// given shape, without any array data. See newshape.go.
	NewShape(shape []int) ([]int, error)

	// Reduce resolves the index against a concrete shape: negatives become
	// non-negative, ellipses expand, slice bounds clamp, redundant trailing
	// full slices drop. The result is equivalent to the receiver on exactly
	// this shape. See reduce.go.
	Reduce(shape []int) (Index, error)

	// Expand is the maximally-explicit counterpart of Reduce: a Tuple
	// covering every axis of the shape, with ellipses and omitted trailing
	// axes turned into concrete slices. See expand.go.
	Expand(shape []int) (Tuple, error)

	// IsEmpty reports whether indexing an array of the given shape would
	// select zero elements.
	IsEmpty(shape []int) (bool, error)

	// Equal reports structural equality over canonical form.
	Equal(other Index) bool

	// isIndex seals the interface to the variants in this package.
	isIndex()
}

/* ===========================
   PUBLIC API: optional integers
   =========================== */

// OptInt is an integer that may be unspecified, used for slice bounds.
// The zero value is unspecified; None is provided for readability:
//
//	NewSlice(None, Opt(-1), None)   // like a[:-1]
type OptInt struct {
	v  int
	ok bool
}

// None is the unspecified OptInt.
var None OptInt

// Opt wraps a concrete integer.
func Opt(v int) OptInt { return OptInt{v: v, ok: true} }

// IsNone reports whether the value is unspecified.
func (o OptInt) IsNone() bool { return !o.ok }

// Value returns the concrete integer; it is only meaningful when !IsNone().
func (o OptInt) Value() int { return o.v }

func (o OptInt) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("%d", o.v)
}

/* ===========================
   PUBLIC API: raw-value vocabulary
   =========================== */

// RawSlice is the raw form of a slice triple. Unspecified fields are None.
// It is what Slice.Raw returns and one of the values New accepts.
type RawSlice struct {
	Start, Stop, Step OptInt
}

// RawEllipsis is the raw ellipsis token (`...`).
type RawEllipsis struct{}

// RawNewaxis is the raw newaxis token (`None` in the reference library).
type RawNewaxis struct{}

// RawIntArray is the raw form of an n-d integer index array: row-major Data
// with its Shape. A 0-d array has an empty Shape and exactly one element.
type RawIntArray struct {
	Data  []int
	Shape []int
}

// RawBoolArray is the raw form of an n-d boolean mask.
type RawBoolArray struct {
	Data  []bool
	Shape []int
}

/* ===========================
   PRIVATE: shared small helpers
   =========================== */

// copyInts is the copy-on-construct / copy-on-return boundary for int slices.
func copyInts(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func copyBools(s []bool) []bool {
	if len(s) == 0 {
		return nil
	}
	out := make([]bool, len(s))
	copy(out, s)
	return out
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func boolsEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
