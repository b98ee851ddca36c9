// newshape.go: the shape engine
//
// What this file does
// -------------------
// NewShape computes, for every variant, the shape that indexing an array of
// a given shape would produce, as a pure function of (index, shape). No
// array data is ever consulted; the only "data" read is the index's own
// payload (an integer array's shape, a mask's true-count), which is part of
// the index value itself.
//
// The tuple algorithm:
//
//  1. Expand the ellipsis (explicit, or implied at the tail) into the run of
//     full slices needed so axis-consuming elements cover the rank exactly.
//     Too many consumers is a *RankError.
//  2. Walk the expanded elements against the shape with an axis cursor:
//     integers bounds-check and contribute nothing; slices contribute their
//     resolved length; newaxis contributes 1; an integer array contributes
//     its own shape; a boolean mask must match its run of axes exactly and
//     contributes its true-count.
//  3. If any array-type element is present, all advanced elements (arrays,
//     and bare integers, which count as 0-d arrays once an array is present)
//     broadcast together. When the advanced elements form one contiguous
//     run, the broadcast shape lands at the run's position; when they are
//     separated by a slice or newaxis, it lands at the FRONT of the result.
//     The front-insertion rule is a load-bearing quirk of the reference
//     semantics; broadcastAdvanced below is its single home.
//
// An all-integer index consuming the whole rank yields the scalar shape ().
package ndindex

/* ===========================
   PUBLIC API: per-variant NewShape
   =========================== */

// NewShape for a non-tuple index behaves as the one-element tuple.
func (n Integer) NewShape(shape []int) ([]int, error)      { return elemsNewShape(asElems(n), shape) }
func (s Slice) NewShape(shape []int) ([]int, error)        { return elemsNewShape(asElems(s), shape) }
func (e Ellipsis) NewShape(shape []int) ([]int, error)     { return elemsNewShape(asElems(e), shape) }
func (w Newaxis) NewShape(shape []int) ([]int, error)      { return elemsNewShape(asElems(w), shape) }
func (a IntegerArray) NewShape(shape []int) ([]int, error) { return elemsNewShape(asElems(a), shape) }
func (a BooleanArray) NewShape(shape []int) ([]int, error) { return elemsNewShape(asElems(a), shape) }
func (t Tuple) NewShape(shape []int) ([]int, error)        { return elemsNewShape(t.elems, shape) }

// IsEmpty reports whether the index selects zero elements from an array of
// the given shape.
func (n Integer) IsEmpty(shape []int) (bool, error)      { return elemsIsEmpty(asElems(n), shape) }
func (s Slice) IsEmpty(shape []int) (bool, error)        { return elemsIsEmpty(asElems(s), shape) }
func (e Ellipsis) IsEmpty(shape []int) (bool, error)     { return elemsIsEmpty(asElems(e), shape) }
func (w Newaxis) IsEmpty(shape []int) (bool, error)      { return elemsIsEmpty(asElems(w), shape) }
func (a IntegerArray) IsEmpty(shape []int) (bool, error) { return elemsIsEmpty(asElems(a), shape) }
func (a BooleanArray) IsEmpty(shape []int) (bool, error) { return elemsIsEmpty(asElems(a), shape) }
func (t Tuple) IsEmpty(shape []int) (bool, error)        { return elemsIsEmpty(t.elems, shape) }

/* ===========================
   PRIVATE: the engine
   =========================== */

func elemsIsEmpty(elems []Index, shape []int) (bool, error) {
	out, err := elemsNewShape(elems, shape)
	if err != nil {
		return false, err
	}
	return ShapeSize(out) == 0, nil
}

// consumedAxes counts the axes of the indexed array the elements consume.
// Newaxis and Ellipsis consume none; a mask consumes its full rank.
func consumedAxes(elems []Index) int {
	n := 0
	for _, e := range elems {
		switch v := e.(type) {
		case Integer, Slice, IntegerArray:
			n++
		case BooleanArray:
			n += v.NDim()
		case Newaxis, Ellipsis:
			// no axis consumed
		}
	}
	return n
}

// expandToRank replaces the (single) ellipsis with the run of full slices
// needed to make the elements consume the rank exactly; with no ellipsis the
// run is appended at the tail, matching the implicit trailing ellipsis of
// the reference semantics. Fails with *RankError when the elements consume
// more axes than the shape has.
func expandToRank(elems []Index, ndim int) ([]Index, error) {
	consumed := consumedAxes(elems)
	if consumed > ndim {
		return nil, errTooManyIndices(ndim, consumed)
	}
	fill := ndim - consumed
	ellipsisAt := -1
	for i, e := range elems {
		if _, ok := e.(Ellipsis); ok {
			ellipsisAt = i
			break
		}
	}
	out := make([]Index, 0, len(elems)+fill)
	if ellipsisAt < 0 {
		out = append(out, elems...)
		for i := 0; i < fill; i++ {
			out = append(out, FullSlice())
		}
		return out, nil
	}
	out = append(out, elems[:ellipsisAt]...)
	for i := 0; i < fill; i++ {
		out = append(out, FullSlice())
	}
	out = append(out, elems[ellipsisAt+1:]...)
	return out, nil
}

// piece is one expanded element's contribution to the output shape.
type piece struct {
	dims   []int // output dims for basic elements (slice, newaxis)
	adv    bool  // member of the advanced-index group
	bshape []int // broadcast contribution for array elements (nil for ints)
}

// walkPieces resolves the expanded elements against the shape: bounds-checks
// integers, resolves slice lengths, validates masks, and records each
// element's contribution. hasArray reports whether any array-type element is
// present (which pulls bare integers into the advanced group).
func walkPieces(expanded []Index, shape []int) (pieces []piece, hasArray bool, err error) {
	for _, e := range expanded {
		if _, ok := e.(IntegerArray); ok {
			hasArray = true
		} else if _, ok := e.(BooleanArray); ok {
			hasArray = true
		}
	}
	pieces = make([]piece, 0, len(expanded))
	cursor := 0
	for _, e := range expanded {
		switch v := e.(type) {
		case Integer:
			size := shape[cursor]
			if v.i < -size || v.i >= size {
				return nil, false, &BoundsError{Value: v.i, Axis: cursor, Size: size}
			}
			pieces = append(pieces, piece{adv: hasArray})
			cursor++
		case Slice:
			pieces = append(pieces, piece{dims: []int{v.lengthFor(shape[cursor])}})
			cursor++
		case Newaxis:
			pieces = append(pieces, piece{dims: []int{1}})
		case IntegerArray:
			pieces = append(pieces, piece{adv: true, bshape: v.shape})
			cursor++
		case BooleanArray:
			for d := 0; d < v.NDim(); d++ {
				if v.shape[d] != shape[cursor+d] {
					return nil, false, errMaskMismatch(cursor+d, shape[cursor+d], v.shape[d])
				}
			}
			pieces = append(pieces, piece{adv: true, bshape: []int{v.CountTrue()}})
			cursor += v.NDim()
		case Tuple:
			// unreachable: tuples never nest
			return nil, false, errNestedTuple()
		}
	}
	return pieces, hasArray, nil
}

// broadcastAdvanced combines the advanced pieces' shapes and decides where
// the broadcast result lands: at the position of the (single, contiguous)
// advanced run, or at the front when the run is broken by a basic element.
func broadcastAdvanced(pieces []piece) (bc []int, front bool, err error) {
	shapes := make([][]int, 0, len(pieces))
	first, last, count := -1, -1, 0
	for i, p := range pieces {
		if !p.adv {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
		count++
		if p.bshape != nil {
			shapes = append(shapes, p.bshape)
		}
	}
	bc, err = BroadcastShapes(shapes...)
	if err != nil {
		return nil, false, err
	}
	front = last-first+1 != count
	return bc, front, nil
}

func elemsNewShape(elems []Index, shape []int) ([]int, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	expanded, err := expandToRank(elems, len(shape))
	if err != nil {
		return nil, err
	}
	pieces, hasArray, err := walkPieces(expanded, shape)
	if err != nil {
		return nil, err
	}
	if !hasArray {
		out := []int{}
		for _, p := range pieces {
			out = append(out, p.dims...)
		}
		return out, nil
	}
	bc, front, err := broadcastAdvanced(pieces)
	if err != nil {
		return nil, err
	}
	out := []int{}
	if front {
		out = append(out, bc...)
		for _, p := range pieces {
			out = append(out, p.dims...)
		}
		return out, nil
	}
	inserted := false
	for _, p := range pieces {
		if p.adv {
			if !inserted {
				out = append(out, bc...)
				inserted = true
			}
			continue
		}
		out = append(out, p.dims...)
	}
	return out, nil
}
