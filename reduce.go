// reduce.go: resolving an index against a concrete shape
//
// What this file does
// -------------------
// Reduce produces a new canonical Index that is bounds-validated and minimal
// for one concrete shape: equivalent to the original on exactly that shape,
// not necessarily on others. The transform
//
//   - resolves every negative integer (bare, or an integer-array entry) to
//     its non-negative equivalent, failing with *BoundsError outside
//     [-size, size);
//   - expands the explicit or implied ellipsis as in newshape.go;
//   - clamps slice bounds to the axis (a negative-step slice that runs
//     through the front keeps an unspecified stop, and an empty slice
//     canonicalizes to 0:0);
//   - validates mask alignment and array broadcast-compatibility, so Reduce
//     fails exactly when the shape engine would;
//   - drops trailing full slices (omission reproduces them) and unwraps a
//     single-element tuple to its element.
//
// Dropped elements only ever come off the tail, so they can never separate
// two advanced indices; the front-insertion behavior of the result is
// identical to the original's by construction. Reduce is idempotent.
package ndindex

/* ===========================
   PUBLIC API: per-variant Reduce
   =========================== */

// Reduce for Integer resolves the offset against the first axis.
func (n Integer) Reduce(shape []int) (Index, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		return nil, errTooManyIndices(0, 1)
	}
	return n.reduceFor(shape[0], 0)
}

// Reduce for Slice clamps the bounds to the first axis.
func (s Slice) Reduce(shape []int) (Index, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		return nil, errTooManyIndices(0, 1)
	}
	return s.reduceFor(shape[0]), nil
}

// Reduce for Ellipsis yields the empty Tuple: on a known shape the ellipsis
// selects everything, which omission expresses canonically.
func (e Ellipsis) Reduce(shape []int) (Index, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	return Tuple{}, nil
}

// Reduce for Newaxis is the identity: the inserted axis is never redundant.
func (w Newaxis) Reduce(shape []int) (Index, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	return w, nil
}

// Reduce for IntegerArray resolves every entry against the first axis.
func (a IntegerArray) Reduce(shape []int) (Index, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		return nil, errTooManyIndices(0, 1)
	}
	return a.reduceFor(shape[0], 0)
}

// Reduce for BooleanArray validates the mask against its run of axes; the
// payload is already canonical.
func (a BooleanArray) Reduce(shape []int) (Index, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	if a.NDim() > len(shape) {
		return nil, errTooManyIndices(len(shape), a.NDim())
	}
	for d := 0; d < a.NDim(); d++ {
		if a.shape[d] != shape[d] {
			return nil, errMaskMismatch(d, shape[d], a.shape[d])
		}
	}
	return a, nil
}

// Reduce for Tuple runs the full algorithm described in the file comment.
func (t Tuple) Reduce(shape []int) (Index, error) {
	if err := checkShape(shape); err != nil {
		return nil, err
	}
	expanded, err := expandToRank(t.elems, len(shape))
	if err != nil {
		return nil, err
	}
	reduced, sizes, err := reduceExpanded(expanded, shape)
	if err != nil {
		return nil, err
	}
	// fail exactly where the shape engine would: mutually incompatible
	// advanced indices are an error even though Reduce keeps them separate
	if err := checkAdvancedBroadcast(reduced); err != nil {
		return nil, err
	}
	// drop redundant trailing full slices
	n := len(reduced)
	for n > 0 {
		s, ok := reduced[n-1].(Slice)
		if !ok || !s.isFullFor(sizes[n-1]) {
			break
		}
		n--
	}
	reduced = reduced[:n]
	if len(reduced) == 1 {
		return reduced[0], nil
	}
	return Tuple{elems: reduced}, nil
}

// IsValid reports whether the index is usable on the given shape, i.e.
// whether Reduce succeeds.
func IsValid(idx Index, shape []int) bool {
	_, err := idx.Reduce(shape)
	return err == nil
}

/* ===========================
   PRIVATE: per-axis reduction
   =========================== */

func (n Integer) reduceFor(size, axis int) (Integer, error) {
	if n.i < -size || n.i >= size {
		return Integer{}, &BoundsError{Value: n.i, Axis: axis, Size: size}
	}
	if n.i < 0 {
		return Integer{i: n.i + size}, nil
	}
	return n, nil
}

// reduceFor clamps the slice to the axis. Nonempty slices keep their step and
// get concrete clamped bounds (stop stays unspecified when a negative step
// runs through position 0); empty slices canonicalize to 0:0.
func (s Slice) reduceFor(size int) Slice {
	start, stop, n := s.resolve(size)
	if n == 0 {
		return Slice{start: Opt(0), stop: Opt(0), step: 1}
	}
	if stop < 0 {
		return Slice{start: Opt(start), stop: None, step: s.step}
	}
	return Slice{start: Opt(start), stop: Opt(stop), step: s.step}
}

func (a IntegerArray) reduceFor(size, axis int) (IntegerArray, error) {
	data := copyInts(a.data)
	for i, v := range data {
		if v < -size || v >= size {
			return IntegerArray{}, &BoundsError{Value: v, Axis: axis, Size: size}
		}
		if v < 0 {
			data[i] = v + size
		}
	}
	return IntegerArray{data: data, shape: a.shape}, nil
}

// reduceExpanded reduces every element of an ellipsis-free, rank-covering
// sequence against its axes, returning the reduced elements and the axis
// size each one was reduced against (newaxes record 0; masks record their
// first axis).
func reduceExpanded(expanded []Index, shape []int) ([]Index, []int, error) {
	out := make([]Index, 0, len(expanded))
	sizes := make([]int, 0, len(expanded))
	cursor := 0
	for _, e := range expanded {
		switch v := e.(type) {
		case Integer:
			r, err := v.reduceFor(shape[cursor], cursor)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, r)
			sizes = append(sizes, shape[cursor])
			cursor++
		case Slice:
			out = append(out, v.reduceFor(shape[cursor]))
			sizes = append(sizes, shape[cursor])
			cursor++
		case Newaxis:
			out = append(out, v)
			sizes = append(sizes, 0)
		case IntegerArray:
			r, err := v.reduceFor(shape[cursor], cursor)
			if err != nil {
				return nil, nil, err
			}
			out = append(out, r)
			sizes = append(sizes, shape[cursor])
			cursor++
		case BooleanArray:
			for d := 0; d < v.NDim(); d++ {
				if v.shape[d] != shape[cursor+d] {
					return nil, nil, errMaskMismatch(cursor+d, shape[cursor+d], v.shape[d])
				}
			}
			out = append(out, v)
			if v.NDim() > 0 {
				sizes = append(sizes, shape[cursor])
			} else {
				sizes = append(sizes, 0)
			}
			cursor += v.NDim()
		case Tuple, Ellipsis:
			// unreachable after expansion
			return nil, nil, errInvalidIndexType()
		}
	}
	return out, sizes, nil
}

// checkAdvancedBroadcast validates that all array-type elements broadcast
// together, mirroring the combination step of the shape engine.
func checkAdvancedBroadcast(elems []Index) error {
	var shapes [][]int
	for _, e := range elems {
		switch v := e.(type) {
		case IntegerArray:
			shapes = append(shapes, v.shape)
		case BooleanArray:
			shapes = append(shapes, []int{v.CountTrue()})
		}
	}
	if len(shapes) < 2 {
		return nil
	}
	_, err := BroadcastShapes(shapes...)
	return err
}
