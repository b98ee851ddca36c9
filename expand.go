// expand.go: the maximally-explicit form of an index
//
// Expand is the counterpart of Reduce: instead of the smallest equivalent
// index it produces the most explicit one. The result is always a Tuple that
//
//   - covers every axis: the ellipsis and any omitted trailing axes become
//     concrete clamped slices;
//   - carries only non-negative integers and slice bounds, bounds-validated
//     exactly like Reduce;
//   - unrolls boolean masks of rank >= 1 into their per-dimension integer
//     coordinate arrays (the nonzero unrolling), so every advanced element
//     is an integer array (0-d scalar masks stay as they are);
//   - broadcasts all integer arrays to their common shape, materializing the
//     broadcast payloads.
//
// The explicit form is what chunked-storage planners want: one element per
// axis, nothing implied, all arrays congruent.
package ndindex

/* ===========================
   PUBLIC API: per-variant Expand
   =========================== */

func (n Integer) Expand(shape []int) (Tuple, error)      { return elemsExpand(asElems(n), shape) }
func (s Slice) Expand(shape []int) (Tuple, error)        { return elemsExpand(asElems(s), shape) }
func (e Ellipsis) Expand(shape []int) (Tuple, error)     { return elemsExpand(asElems(e), shape) }
func (w Newaxis) Expand(shape []int) (Tuple, error)      { return elemsExpand(asElems(w), shape) }
func (a IntegerArray) Expand(shape []int) (Tuple, error) { return elemsExpand(asElems(a), shape) }
func (a BooleanArray) Expand(shape []int) (Tuple, error) { return elemsExpand(asElems(a), shape) }
func (t Tuple) Expand(shape []int) (Tuple, error)        { return elemsExpand(t.elems, shape) }

/* ===========================
   PRIVATE
   =========================== */

func elemsExpand(elems []Index, shape []int) (Tuple, error) {
	if err := checkShape(shape); err != nil {
		return Tuple{}, err
	}
	expanded, err := expandToRank(elems, len(shape))
	if err != nil {
		return Tuple{}, err
	}
	reduced, _, err := reduceExpanded(expanded, shape)
	if err != nil {
		return Tuple{}, err
	}
	// unroll masks into per-dimension coordinate arrays
	unrolled := make([]Index, 0, len(reduced))
	for _, e := range reduced {
		if m, ok := e.(BooleanArray); ok && m.NDim() > 0 {
			for _, arr := range m.nonzero() {
				unrolled = append(unrolled, arr)
			}
			continue
		}
		unrolled = append(unrolled, e)
	}
	// broadcast all integer arrays to their common shape
	var shapes [][]int
	for _, e := range unrolled {
		if a, ok := e.(IntegerArray); ok {
			shapes = append(shapes, a.shape)
		}
	}
	if len(shapes) > 1 {
		bc, err := BroadcastShapes(shapes...)
		if err != nil {
			return Tuple{}, err
		}
		for i, e := range unrolled {
			if a, ok := e.(IntegerArray); ok {
				unrolled[i] = a.broadcastTo(bc)
			}
		}
	}
	return Tuple{elems: unrolled}, nil
}

// broadcastTo materializes the array broadcast to a compatible target shape:
// trailing-aligned, with length-1 source dimensions repeated. The target
// must come from BroadcastShapes, so no compatibility check is repeated.
func (a IntegerArray) broadcastTo(target []int) IntegerArray {
	if intsEqual(a.shape, target) {
		return a
	}
	size := ShapeSize(target)
	var data []int
	if size > 0 {
		data = make([]int, size)
		srcStrides := rowMajorStrides(a.shape)
		off := len(target) - len(a.shape)
		idx := make([]int, len(target))
		for i := 0; i < size; i++ {
			src := 0
			for d, c := range idx {
				sd := d - off
				if sd >= 0 && a.shape[sd] > 1 {
					src += c * srcStrides[sd]
				}
			}
			data[i] = a.data[src]
			for d := len(target) - 1; d >= 0; d-- {
				idx[d]++
				if idx[d] < target[d] {
					break
				}
				idx[d] = 0
			}
		}
	}
	return IntegerArray{data: data, shape: copyInts(target)}
}

// rowMajorStrides returns the flat-offset stride of each dimension.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}
