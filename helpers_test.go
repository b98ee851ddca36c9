// helpers_test.go
//
// Shared test machinery, in two parts:
//
//   - a naive dense-array indexer (applyOracle) that materializes indexing
//     over a synthetic arange array by brute-force coordinate mapping. It is
//     written independently of the shape engine's bookkeeping (its own slice
//     simulation, its own broadcasting walk) and serves as the differential
//     oracle: an index and its Reduce/Raw transforms must select identical
//     elements, and NewShape must agree with the oracle's result shape.
//   - randomized raw-index and shape generators mirroring the search space
//     the engine has to survive: offsets in [-10, 10), ranks up to 4, mixed
//     tuples with arrays, masks generated against the target shape so they
//     can actually match.
package ndindex

import (
	"math/rand"
	"testing"
)

/* ===========================
   dense arange arrays
   =========================== */

type tarr struct {
	shape []int
	data  []int
}

func arangeArr(shape ...int) *tarr {
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return &tarr{shape: shape, data: data}
}

func (a *tarr) at(coord []int) int {
	flat := 0
	for d, c := range coord {
		flat = flat*a.shape[d] + c
	}
	return a.data[flat]
}

func sameArr(x, y *tarr) bool {
	return intsEqual(x.shape, y.shape) && intsEqual(x.data, y.data)
}

/* ===========================
   the naive oracle
   =========================== */

// sliceIndicesNaive simulates reference slicing over range(n) directly:
// normalize, then walk candidate positions until the stop condition.
func sliceIndicesNaive(n int, s Slice) []int {
	step := s.Step()
	var idxs []int
	if step > 0 {
		start := 0
		if !s.Start().IsNone() {
			start = s.Start().Value()
			if start < 0 {
				start += n
				if start < 0 {
					start = 0
				}
			}
		}
		stop := n
		if !s.Stop().IsNone() {
			stop = s.Stop().Value()
			if stop < 0 {
				stop += n
			}
		}
		for k := start; k < stop; k += step {
			if k >= n {
				break
			}
			idxs = append(idxs, k)
		}
		return idxs
	}
	start := n - 1
	if !s.Start().IsNone() {
		start = s.Start().Value()
		if start < 0 {
			start += n
		}
		// clamping discards step parity, as the reference does
		if start >= n {
			start = n - 1
		}
	}
	stop := -n - 1 // past the front
	if !s.Stop().IsNone() {
		stop = s.Stop().Value()
		if stop < 0 {
			stop += n
		}
	}
	for k := start; k > stop; k += step {
		if k < 0 {
			break
		}
		idxs = append(idxs, k)
	}
	return idxs
}

func naiveBroadcast(shapes [][]int) ([]int, bool) {
	rank := 0
	for _, s := range shapes {
		if len(s) > rank {
			rank = len(s)
		}
	}
	out := make([]int, rank)
	for i := range out {
		out[i] = 1
	}
	for _, s := range shapes {
		for j, d := range s {
			k := rank - len(s) + j
			if d == out[k] || d == 1 {
				continue
			}
			if out[k] == 1 {
				out[k] = d
				continue
			}
			return nil, false
		}
	}
	return out, true
}

// oracle element kinds after mask unrolling
const (
	oInt = iota
	oSlice
	oNewaxis
	oArr
	oMask0
)

type oelem struct {
	kind int
	axis int // first source axis; -1 when none is consumed
	ival int
	sl   Slice
	arr  IntegerArray
	m0   bool
}

// applyOracle indexes the arange array with idx, returning the selected
// elements, or an error when the reference semantics would raise.
func applyOracle(a *tarr, idx Index) (*tarr, error) {
	elems := asElems(idx)
	ndim := len(a.shape)

	consumed := 0
	for _, e := range elems {
		switch v := e.(type) {
		case Integer, Slice, IntegerArray:
			consumed++
		case BooleanArray:
			consumed += v.NDim()
		}
	}
	if consumed > ndim {
		return nil, errTooManyIndices(ndim, consumed)
	}
	var expanded []Index
	placedFill := false
	for _, e := range elems {
		if _, ok := e.(Ellipsis); ok {
			for i := 0; i < ndim-consumed; i++ {
				expanded = append(expanded, FullSlice())
			}
			placedFill = true
			continue
		}
		expanded = append(expanded, e)
	}
	if !placedFill {
		for i := 0; i < ndim-consumed; i++ {
			expanded = append(expanded, FullSlice())
		}
	}

	// unroll to oracle elements, converting rank>=1 masks to coordinate
	// arrays with its own walk
	var oes []oelem
	cursor := 0
	for _, e := range expanded {
		switch v := e.(type) {
		case Integer:
			oes = append(oes, oelem{kind: oInt, axis: cursor, ival: v.Value()})
			cursor++
		case Slice:
			oes = append(oes, oelem{kind: oSlice, axis: cursor, sl: v})
			cursor++
		case Newaxis:
			oes = append(oes, oelem{kind: oNewaxis, axis: -1})
		case IntegerArray:
			oes = append(oes, oelem{kind: oArr, axis: cursor, arr: v})
			cursor++
		case BooleanArray:
			if v.NDim() == 0 {
				oes = append(oes, oelem{kind: oMask0, axis: -1, m0: v.Data()[0]})
				continue
			}
			mshape := v.Shape()
			for d := 0; d < len(mshape); d++ {
				if mshape[d] != a.shape[cursor+d] {
					return nil, errMaskMismatch(cursor+d, a.shape[cursor+d], mshape[d])
				}
			}
			coords := maskCoords(v)
			for d, c := range coords {
				arr, err := NewIntegerArray(c, []int{len(c)})
				if err != nil {
					return nil, err
				}
				oes = append(oes, oelem{kind: oArr, axis: cursor + d, arr: arr})
			}
			cursor += len(mshape)
		}
	}

	hasAdv := false
	for _, oe := range oes {
		if oe.kind == oArr || oe.kind == oMask0 {
			hasAdv = true
		}
	}

	// bounds pre-pass: bare integers and every array entry
	for _, oe := range oes {
		switch oe.kind {
		case oInt:
			size := a.shape[oe.axis]
			if oe.ival < -size || oe.ival >= size {
				return nil, &BoundsError{Value: oe.ival, Axis: oe.axis, Size: size}
			}
		case oArr:
			size := a.shape[oe.axis]
			for _, v := range oe.arr.Data() {
				if v < -size || v >= size {
					return nil, &BoundsError{Value: v, Axis: oe.axis, Size: size}
				}
			}
		}
	}

	// broadcast the advanced group
	var bshapes [][]int
	for _, oe := range oes {
		switch oe.kind {
		case oArr:
			bshapes = append(bshapes, oe.arr.Shape())
		case oMask0:
			if oe.m0 {
				bshapes = append(bshapes, []int{1})
			} else {
				bshapes = append(bshapes, []int{0})
			}
		}
	}
	bc, ok := naiveBroadcast(bshapes)
	if !ok {
		return nil, &BroadcastError{ShapeA: bshapes[0], ShapeB: bshapes[len(bshapes)-1]}
	}

	// adjacency of the advanced group (integers included once arrays exist)
	first, last, count := -1, -1, 0
	for i, oe := range oes {
		isAdv := oe.kind == oArr || oe.kind == oMask0 || (hasAdv && oe.kind == oInt)
		if !isAdv {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
		count++
	}
	frontInsert := hasAdv && last-first+1 != count

	// assemble the output shape and per-slot coordinate mapping
	slicePos := make(map[int][]int) // oes index -> visited source positions
	var outShape []int
	advAt := -1 // position of the advanced block in outShape
	appendBasic := func(i int, oe oelem) {
		switch oe.kind {
		case oSlice:
			pos := sliceIndicesNaive(a.shape[oe.axis], oe.sl)
			slicePos[i] = pos
			outShape = append(outShape, len(pos))
		case oNewaxis:
			outShape = append(outShape, 1)
		}
	}
	if frontInsert {
		advAt = 0
		outShape = append(outShape, bc...)
		for i, oe := range oes {
			appendBasic(i, oe)
		}
	} else {
		for i, oe := range oes {
			if hasAdv && (oe.kind == oArr || oe.kind == oMask0 || oe.kind == oInt) {
				if advAt < 0 {
					advAt = len(outShape)
					outShape = append(outShape, bc...)
				}
				continue
			}
			appendBasic(i, oe)
		}
	}

	out := &tarr{shape: outShape}
	total := 1
	for _, d := range outShape {
		total *= d
	}
	if total == 0 {
		return out, nil
	}
	out.data = make([]int, total)

	outCoord := make([]int, len(outShape))
	srcCoord := make([]int, ndim)
	for flat := 0; flat < total; flat++ {
		// decompose flat into outCoord (row-major)
		rem := flat
		for d := len(outShape) - 1; d >= 0; d-- {
			outCoord[d] = rem % outShape[d]
			rem /= outShape[d]
		}
		var advCoord []int
		if hasAdv {
			advCoord = outCoord[advAt : advAt+len(bc)]
		}
		// walk basic slots in the same order they were appended
		basicDim := 0
		nextBasic := func() int {
			// skip over the advanced block's dims
			if advAt >= 0 && basicDim == advAt {
				basicDim += len(bc)
			}
			v := outCoord[basicDim]
			basicDim++
			return v
		}
		for i, oe := range oes {
			switch oe.kind {
			case oInt:
				v := oe.ival
				if v < 0 {
					v += a.shape[oe.axis]
				}
				srcCoord[oe.axis] = v
			case oSlice:
				srcCoord[oe.axis] = slicePos[i][nextBasic()]
			case oNewaxis:
				nextBasic()
			case oArr:
				v := broadcastPick(oe.arr, bc, advCoord)
				if v < 0 {
					v += a.shape[oe.axis]
				}
				srcCoord[oe.axis] = v
			case oMask0:
				// contributes only to the advanced block
			}
		}
		out.data[flat] = a.at(srcCoord)
	}
	return out, nil
}

// maskCoords lists the coordinates of true entries, one slice per mask
// dimension, in row-major order (the oracle's own unrolling).
func maskCoords(m BooleanArray) [][]int {
	shape := m.Shape()
	data := m.Data()
	out := make([][]int, len(shape))
	coord := make([]int, len(shape))
	for i := 0; i < len(data); i++ {
		if data[i] {
			for d := range coord {
				out[d] = append(out[d], coord[d])
			}
		}
		for d := len(coord) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < shape[d] {
				break
			}
			coord[d] = 0
		}
	}
	return out
}

// broadcastPick reads the array entry addressed by a coordinate of the
// common broadcast shape, right-aligned, stretching length-1 dimensions.
func broadcastPick(arr IntegerArray, bc, coord []int) int {
	shape := arr.Shape()
	data := arr.Data()
	off := len(bc) - len(shape)
	flat := 0
	for d := 0; d < len(shape); d++ {
		c := coord[off+d]
		if shape[d] == 1 {
			c = 0
		}
		flat = flat*shape[d] + c
	}
	return data[flat]
}

/* ===========================
   differential check
   =========================== */

// checkSame asserts that idx and its transforms select identical elements
// from an arange of the given shape, mirroring the reference library's
// check-same harness: raw and parsed forms must agree, and so must the
// reduced form whenever Reduce succeeds.
func checkSame(t *testing.T, shape []int, raw any) {
	t.Helper()
	idx, err := New(raw)
	if err != nil {
		// construction failures are covered by the parser tests
		return
	}
	a := arangeArr(shape...)

	want, wantErr := applyOracle(a, idx)

	// NewShape must agree with the oracle (or both must fail)
	got, err := idx.NewShape(shape)
	if wantErr != nil {
		if err == nil {
			// NewShape never reads array entries, so an entry-dependent
			// bounds failure still has a well-defined shape. Reduce does
			// read them and must reject.
			if IsBoundsError(wantErr) && hasIntArrayElem(idx) {
				if _, rerr := idx.Reduce(shape); rerr == nil {
					t.Fatalf("oracle failed (%v) but Reduce(%v, %s) succeeded", wantErr, idx, formatShape(shape))
				}
				return
			}
			t.Fatalf("oracle failed (%v) but NewShape(%v, %s) = %v", wantErr, idx, formatShape(shape), got)
		}
		return
	}
	if err != nil {
		t.Fatalf("NewShape(%v, %s) error: %v (oracle shape %v)", idx, formatShape(shape), err, want.shape)
	}
	if !intsEqual(got, want.shape) && !(len(got) == 0 && len(want.shape) == 0) {
		t.Fatalf("NewShape(%v, %s) = %v, oracle shape %v", idx, formatShape(shape), got, want.shape)
	}

	// emptiness must match the materialized result
	empty, err := idx.IsEmpty(shape)
	if err != nil {
		t.Fatalf("IsEmpty(%v, %s) error: %v", idx, formatShape(shape), err)
	}
	if empty != (len(want.data) == 0) {
		t.Fatalf("IsEmpty(%v, %s) = %v, oracle selected %d elements", idx, formatShape(shape), empty, len(want.data))
	}

	// the raw projection must select the same elements
	back, err := New(idx.Raw())
	if err != nil {
		t.Fatalf("New(%v.Raw()) error: %v", idx, err)
	}
	viaRaw, rerr := applyOracle(a, back)
	if rerr != nil {
		t.Fatalf("oracle(%v.Raw()) error: %v", idx, rerr)
	}
	if !sameArr(want, viaRaw) {
		t.Fatalf("raw round trip of %v selects different elements", idx)
	}

	// reduce must be behavior-preserving on this shape
	red, err := idx.Reduce(shape)
	if err != nil {
		t.Fatalf("Reduce(%v, %s) error: %v (oracle succeeded)", idx, formatShape(shape), err)
	}
	viaRed, rerr := applyOracle(a, red)
	if rerr != nil {
		t.Fatalf("oracle(Reduce(%v)) = %v error: %v", idx, red, rerr)
	}
	if !sameArr(want, viaRed) {
		t.Fatalf("Reduce(%v, %s) = %v selects different elements", idx, formatShape(shape), red)
	}

	// and idempotent
	red2, err := red.Reduce(shape)
	if err != nil {
		t.Fatalf("Reduce(Reduce(%v)) error: %v", idx, err)
	}
	if !Equal(red, red2) {
		t.Fatalf("Reduce not idempotent: %v -> %v -> %v", idx, red, red2)
	}
}

/* ===========================
   randomized generators
   =========================== */

func randShape(r *rand.Rand, maxRank int) []int {
	rank := r.Intn(maxRank + 1)
	shape := make([]int, rank)
	for i := range shape {
		shape[i] = r.Intn(6)
	}
	// cap the element count so exhaustive gathering stays cheap
	for ShapeSize(shape) > 600 {
		shape[r.Intn(rank)] = 1 + r.Intn(2)
	}
	return shape
}

func randOpt(r *rand.Rand) OptInt {
	if r.Intn(3) == 0 {
		return None
	}
	return Opt(r.Intn(21) - 10)
}

func randRawSlice(r *rand.Rand) RawSlice {
	step := randOpt(r)
	if !step.IsNone() && step.Value() == 0 {
		step = Opt(1)
	}
	return RawSlice{Start: randOpt(r), Stop: randOpt(r), Step: step}
}

func randIntArray(r *rand.Rand, size int) RawIntArray {
	rank := r.Intn(3)
	shape := make([]int, rank)
	n := 1
	for i := range shape {
		shape[i] = r.Intn(4)
		n *= shape[i]
	}
	data := make([]int, n)
	for i := range data {
		if size > 0 {
			data[i] = r.Intn(2*size) - size
		}
	}
	return RawIntArray{Data: data, Shape: shape}
}

// randBoolArray generates a mask over a prefix of the remaining axes so that
// it has a chance of matching, with occasional deliberate mismatches.
func randBoolArray(r *rand.Rand, axes []int) RawBoolArray {
	rank := 0
	if len(axes) > 0 {
		rank = r.Intn(len(axes) + 1)
	}
	shape := make([]int, rank)
	n := 1
	for i := range shape {
		shape[i] = axes[i]
		if r.Intn(8) == 0 {
			shape[i] = r.Intn(4)
		}
		n *= shape[i]
	}
	data := make([]bool, n)
	for i := range data {
		data[i] = r.Intn(2) == 0
	}
	return RawBoolArray{Data: data, Shape: shape}
}

// randRawIndex draws one raw index for the given target shape: sometimes a
// bare element, sometimes a tuple mixing every kind.
func randRawIndex(r *rand.Rand, shape []int) any {
	size := 5
	if len(shape) > 0 {
		size = shape[0] + 1
	}
	switch r.Intn(7) {
	case 0:
		return r.Intn(2*size+4) - size - 2
	case 1:
		return randRawSlice(r)
	case 2:
		return RawEllipsis{}
	case 3:
		return RawNewaxis{}
	case 4:
		return randIntArray(r, size)
	case 5:
		return randBoolArray(r, shape)
	default:
		n := r.Intn(4)
		items := make([]any, 0, n)
		remaining := shape
		usedEllipsis := false
		for i := 0; i < n; i++ {
			axSize := 5
			if len(remaining) > 0 {
				axSize = remaining[0] + 1
			}
			switch r.Intn(6) {
			case 0:
				items = append(items, r.Intn(2*axSize+4)-axSize-2)
				remaining = tailShape(remaining, 1)
			case 1:
				items = append(items, randRawSlice(r))
				remaining = tailShape(remaining, 1)
			case 2:
				if !usedEllipsis {
					items = append(items, RawEllipsis{})
					usedEllipsis = true
				}
			case 3:
				items = append(items, RawNewaxis{})
			case 4:
				items = append(items, randIntArray(r, axSize))
				remaining = tailShape(remaining, 1)
			default:
				ba := randBoolArray(r, remaining)
				items = append(items, ba)
				remaining = tailShape(remaining, len(ba.Shape))
			}
		}
		return items
	}
}

func hasIntArrayElem(idx Index) bool {
	for _, e := range asElems(idx) {
		if _, ok := e.(IntegerArray); ok {
			return true
		}
	}
	return false
}

func tailShape(shape []int, n int) []int {
	if n >= len(shape) {
		return nil
	}
	return shape[n:]
}
