// integer.go: the Integer index variant
//
// Integer is a single signed offset along one axis. Its sign is meaningful
// only relative to a shape (negative offsets count from the end of the axis),
// so construction never bounds-checks; NewShape and Reduce do, once a shape
// is known. Canonical form is the identity: two Integers are equal iff their
// offsets are equal.
package ndindex

import "strconv"

// Integer indexes a single position along one axis. It consumes one axis and
// contributes no output dimension.
type Integer struct {
	i int
}

// NewInteger returns the Integer index for the given offset.
func NewInteger(i int) Integer { return Integer{i: i} }

// Value returns the offset as constructed, possibly negative.
func (n Integer) Value() int { return n.i }

// Raw returns the plain int form.
func (n Integer) Raw() any { return n.i }

func (n Integer) String() string { return strconv.Itoa(n.i) }

// Equal reports whether other is an Integer with the same offset.
func (n Integer) Equal(other Index) bool {
	o, ok := other.(Integer)
	return ok && o.i == n.i
}

func (Integer) isIndex() {}
