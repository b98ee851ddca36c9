// tuple.go: the Tuple index variant
//
// Tuple is an ordered sequence of non-tuple index variants, the typed form of
// a multi-axis index `a[i, j, k]`. Construction enforces the structural
// rules: no nested tuples (only the outermost container is a position tuple)
// and at most one ellipsis. A trailing ellipsis is dropped at construction:
// it is implied by omission on every shape, so keeping it would give two
// spellings for one equivalence class. Trailing full slices are NOT dropped
// here; without a shape there is no way to know how many are implied.
package ndindex

import "strings"

// Tuple is an ordered sequence of index elements applied across consecutive
// axes. The empty Tuple indexes nothing (selects the whole array) and is
// distinct from any single-element tuple.
type Tuple struct {
	elems []Index
}

// NewTuple builds a Tuple from the given elements. It fails with a
// *ParseError if an element is itself a Tuple or if more than one element is
// an Ellipsis. A single trailing Ellipsis is dropped.
func NewTuple(elems ...Index) (Tuple, error) {
	ellipses := 0
	for _, e := range elems {
		switch e.(type) {
		case Tuple:
			return Tuple{}, errNestedTuple()
		case Ellipsis:
			ellipses++
		case nil:
			return Tuple{}, errInvalidIndexType()
		}
	}
	if ellipses > 1 {
		return Tuple{}, errMultipleEllipsis()
	}
	n := len(elems)
	if n > 0 {
		if _, ok := elems[n-1].(Ellipsis); ok {
			n--
		}
	}
	out := make([]Index, n)
	copy(out, elems[:n])
	return Tuple{elems: out}, nil
}

// Len returns the number of elements.
func (t Tuple) Len() int { return len(t.elems) }

// Elem returns the i-th element.
func (t Tuple) Elem(i int) Index { return t.elems[i] }

// Elems returns a copy of the element sequence.
func (t Tuple) Elems() []Index {
	out := make([]Index, len(t.elems))
	copy(out, t.elems)
	return out
}

// Raw returns the []any form holding each element's raw projection.
func (t Tuple) Raw() any {
	out := make([]any, len(t.elems))
	for i, e := range t.elems {
		out[i] = e.Raw()
	}
	return out
}

// String renders tuple syntax: "()", "(1,)", "(1, :, ..., None)".
func (t Tuple) String() string {
	if len(t.elems) == 0 {
		return "()"
	}
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = e.String()
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Equal reports elementwise structural equality.
func (t Tuple) Equal(other Index) bool {
	o, ok := other.(Tuple)
	if !ok || len(o.elems) != len(t.elems) {
		return false
	}
	for i, e := range t.elems {
		if !e.Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (Tuple) isIndex() {}

/* ===========================
   PRIVATE
   =========================== */

// asElems views any index as the element sequence of an equivalent tuple.
func asElems(idx Index) []Index {
	if t, ok := idx.(Tuple); ok {
		return t.elems
	}
	return []Index{idx}
}
