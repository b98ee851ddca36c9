// array.go: the IntegerArray and BooleanArray index variants
//
// These are the advanced ("fancy") index kinds: an n-d array of integer
// offsets, and an n-d boolean mask. Payloads are stored row-major as a flat
// data slice plus a shape, are copied at the construction boundary (a caller
// mutating the slice it passed in cannot change an existing Index), and are
// copied again on the way out of accessors. Either may be 0-dimensional: a
// 0-d IntegerArray is a scalar advanced index, and a 0-d BooleanArray is the
// scalar mask `True`/`False`, which consumes no axis and contributes an axis
// of length 1 or 0.
//
// Equality and hashing are value-based over the (data, shape) pair, never
// identity-based. Negative integer entries stay negative here; resolving
// them needs a shape and happens in Reduce.
package ndindex

import (
	"fmt"
	"strings"
)

/* ===========================
   IntegerArray
   =========================== */

// IntegerArray is an array of integer offsets used as an index. It consumes
// one axis and contributes its own shape to the output (subject to
// broadcasting against other array-type indices).
type IntegerArray struct {
	data  []int
	shape []int
}

// NewIntegerArray builds an IntegerArray from row-major data and its shape.
// The data length must equal the shape's size (one element for a 0-d shape).
func NewIntegerArray(data []int, shape []int) (IntegerArray, error) {
	if err := checkShape(shape); err != nil {
		return IntegerArray{}, parseErrorf("invalid integer array: %v", err)
	}
	if len(data) != ShapeSize(shape) {
		return IntegerArray{}, parseErrorf(
			"integer array data of length %d does not fit shape %s",
			len(data), formatShape(shape))
	}
	return IntegerArray{data: copyInts(data), shape: copyInts(shape)}, nil
}

// NewIntegerScalar returns the 0-d IntegerArray holding a single offset.
// It is the typed form of a scalar advanced index, distinct from Integer.
func NewIntegerScalar(v int) IntegerArray {
	return IntegerArray{data: []int{v}}
}

// Shape returns a copy of the array's shape.
func (a IntegerArray) Shape() []int { return copyInts(a.shape) }

// Data returns a copy of the row-major payload.
func (a IntegerArray) Data() []int { return copyInts(a.data) }

// NDim returns the number of dimensions (0 for a scalar advanced index).
func (a IntegerArray) NDim() int { return len(a.shape) }

// Size returns the number of entries.
func (a IntegerArray) Size() int { return len(a.data) }

// Raw returns the RawIntArray form (with copied payload).
func (a IntegerArray) Raw() any {
	return RawIntArray{Data: copyInts(a.data), Shape: copyInts(a.shape)}
}

func (a IntegerArray) String() string {
	return renderArray(a.shape, len(a.data), func(i int) string {
		return fmt.Sprintf("%d", a.data[i])
	})
}

// Equal reports value equality of (data, shape).
func (a IntegerArray) Equal(other Index) bool {
	o, ok := other.(IntegerArray)
	return ok && intsEqual(o.shape, a.shape) && intsEqual(o.data, a.data)
}

func (IntegerArray) isIndex() {}

/* ===========================
   BooleanArray
   =========================== */

// BooleanArray is a boolean mask used as an index. It consumes exactly
// NDim() axes of the indexed array (which must match its shape exactly) and
// contributes one output axis whose length is the number of true entries.
type BooleanArray struct {
	data  []bool
	shape []int
}

// NewBooleanArray builds a BooleanArray from row-major data and its shape.
func NewBooleanArray(data []bool, shape []int) (BooleanArray, error) {
	if err := checkShape(shape); err != nil {
		return BooleanArray{}, parseErrorf("invalid boolean array: %v", err)
	}
	if len(data) != ShapeSize(shape) {
		return BooleanArray{}, parseErrorf(
			"boolean array data of length %d does not fit shape %s",
			len(data), formatShape(shape))
	}
	return BooleanArray{data: copyBools(data), shape: copyInts(shape)}, nil
}

// NewBooleanScalar returns the 0-d BooleanArray for a bare true/false index.
func NewBooleanScalar(v bool) BooleanArray {
	return BooleanArray{data: []bool{v}}
}

// Shape returns a copy of the mask's shape.
func (a BooleanArray) Shape() []int { return copyInts(a.shape) }

// Data returns a copy of the row-major payload.
func (a BooleanArray) Data() []bool { return copyBools(a.data) }

// NDim returns the number of dimensions (0 for a scalar mask).
func (a BooleanArray) NDim() int { return len(a.shape) }

// Size returns the number of entries.
func (a BooleanArray) Size() int { return len(a.data) }

// CountTrue returns the number of true entries: the length of the output
// axis the mask contributes.
func (a BooleanArray) CountTrue() int {
	n := 0
	for _, v := range a.data {
		if v {
			n++
		}
	}
	return n
}

// Raw returns the RawBoolArray form (with copied payload).
func (a BooleanArray) Raw() any {
	return RawBoolArray{Data: copyBools(a.data), Shape: copyInts(a.shape)}
}

func (a BooleanArray) String() string {
	return renderArray(a.shape, len(a.data), func(i int) string {
		if a.data[i] {
			return "True"
		}
		return "False"
	})
}

// Equal reports value equality of (data, shape).
func (a BooleanArray) Equal(other Index) bool {
	o, ok := other.(BooleanArray)
	return ok && intsEqual(o.shape, a.shape) && boolsEqual(o.data, a.data)
}

func (BooleanArray) isIndex() {}

// nonzero returns, for each dimension of the mask, a 1-d IntegerArray of the
// coordinates of the true entries, in row-major order. This is the unrolling
// used when a mask participates in mixed advanced indexing and by Expand.
func (a BooleanArray) nonzero() []IntegerArray {
	ndim := len(a.shape)
	coords := make([][]int, ndim)
	idx := make([]int, ndim)
	for i := 0; i < len(a.data); i++ {
		if a.data[i] {
			for d := 0; d < ndim; d++ {
				coords[d] = append(coords[d], idx[d])
			}
		}
		// row-major odometer increment
		for d := ndim - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < a.shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	out := make([]IntegerArray, ndim)
	for d := 0; d < ndim; d++ {
		out[d] = IntegerArray{data: coords[d], shape: []int{len(coords[d])}}
	}
	return out
}

/* ===========================
   PRIVATE: rendering
   =========================== */

// renderArray renders a row-major array as nested bracket lists, or
// "array(x)" for a 0-d array.
func renderArray(shape []int, size int, elem func(int) string) string {
	if len(shape) == 0 {
		if size == 0 {
			return "array()"
		}
		return "array(" + elem(0) + ")"
	}
	var render func(dim, off, stride int) string
	render = func(dim, off, stride int) string {
		n := shape[dim]
		parts := make([]string, n)
		if dim == len(shape)-1 {
			for i := 0; i < n; i++ {
				parts[i] = elem(off + i)
			}
		} else if n > 0 {
			inner := stride / n
			for i := 0; i < n; i++ {
				parts[i] = render(dim+1, off+i*inner, inner)
			}
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return render(0, 0, size)
}
