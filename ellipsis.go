// ellipsis.go: the Ellipsis and Newaxis singleton variants
//
// Ellipsis stands for as many full slices as are needed to make a tuple
// cover the indexed array's rank; Newaxis inserts a length-1 axis and
// consumes none. Both are stateless singletons: every Ellipsis equals every
// other Ellipsis, and likewise for Newaxis.
package ndindex

// Ellipsis consumes as many axes as needed to fill the tuple out to the
// array's rank. A Tuple may contain at most one.
type Ellipsis struct{}

// NewEllipsis returns the Ellipsis singleton.
func NewEllipsis() Ellipsis { return Ellipsis{} }

// Raw returns the RawEllipsis token.
func (Ellipsis) Raw() any { return RawEllipsis{} }

func (Ellipsis) String() string { return "..." }

// Equal reports whether other is also Ellipsis.
func (Ellipsis) Equal(other Index) bool {
	_, ok := other.(Ellipsis)
	return ok
}

func (Ellipsis) isIndex() {}

// Newaxis inserts an output dimension of length 1 and consumes no axis.
type Newaxis struct{}

// NewNewaxis returns the Newaxis singleton.
func NewNewaxis() Newaxis { return Newaxis{} }

// Raw returns the RawNewaxis token.
func (Newaxis) Raw() any { return RawNewaxis{} }

func (Newaxis) String() string { return "None" }

// Equal reports whether other is also Newaxis.
func (Newaxis) Equal(other Index) bool {
	_, ok := other.(Newaxis)
	return ok
}

func (Newaxis) isIndex() {}
