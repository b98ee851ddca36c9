// slice.go: the Slice index variant
//
// Slice is a start:stop:step triple where start and stop may be unspecified
// and step is a nonzero integer. Canonical form fills an unspecified step to
// 1 at construction; start and stop stay symbolic, because resolving them to
// concrete bounds needs a shape. The shape-relative resolution (resolve,
// lengthFor) implements the reference clamp-and-direction rule exactly:
// negative bounds offset from the axis size, out-of-range bounds clamp, and a
// negative step reverses the traversal direction with an exclusive stop that
// may sit just past the front of the axis.
package ndindex

import "fmt"

// Slice selects a strided range of one axis. It consumes one axis and
// contributes one output dimension (possibly of length 0).
type Slice struct {
	start, stop OptInt
	step        int // canonical: never 0; 1 when unspecified
}

// NewSlice builds a Slice from optionally-unspecified bounds. A step of 0
// fails with a *ParseError; an unspecified step canonicalizes to 1.
func NewSlice(start, stop, step OptInt) (Slice, error) {
	st := 1
	if !step.IsNone() {
		if step.Value() == 0 {
			return Slice{}, errZeroStep()
		}
		st = step.Value()
	}
	return Slice{start: start, stop: stop, step: st}, nil
}

// FullSlice is the slice selecting every position of an axis (a bare `:`).
func FullSlice() Slice { return Slice{step: 1} }

// Start returns the start bound (None if unspecified).
func (s Slice) Start() OptInt { return s.start }

// Stop returns the stop bound (None if unspecified).
func (s Slice) Stop() OptInt { return s.stop }

// Step returns the canonical step (never 0).
func (s Slice) Step() int { return s.step }

// Raw returns the RawSlice form. The step is always concrete in the raw
// projection; a canonical step of 1 behaves identically to an unspecified one.
func (s Slice) Raw() any {
	return RawSlice{Start: s.start, Stop: s.stop, Step: Opt(s.step)}
}

// String renders colon syntax: ":", "5:", ":-1", "1:10:2", "::-1".
func (s Slice) String() string {
	start, stop := "", ""
	if !s.start.IsNone() {
		start = fmt.Sprintf("%d", s.start.Value())
	}
	if !s.stop.IsNone() {
		stop = fmt.Sprintf("%d", s.stop.Value())
	}
	if s.step == 1 {
		return start + ":" + stop
	}
	return fmt.Sprintf("%s:%s:%d", start, stop, s.step)
}

// Equal reports structural equality of the canonical triples.
func (s Slice) Equal(other Index) bool {
	o, ok := other.(Slice)
	return ok && o.start == s.start && o.stop == s.stop && o.step == s.step
}

func (Slice) isIndex() {}

/* ===========================
   PRIVATE: shape-relative resolution
   =========================== */

// resolve computes the concrete traversal bounds of the slice against an axis
// of the given size. The returned start is in [0, size] for a positive step
// and [-1, size-1] for a negative one; stop is exclusive in the traversal
// direction and may be -1 ("just past the front") for a negative step.
// length is the number of positions visited, possibly 0. Slices never raise
// bounds errors.
func (s Slice) resolve(size int) (start, stop, length int) {
	step := s.step
	if step > 0 {
		start = 0
		if !s.start.IsNone() {
			start = adjustBound(s.start.Value(), size, false)
		}
		stop = size
		if !s.stop.IsNone() {
			stop = adjustBound(s.stop.Value(), size, false)
		}
		if start < stop {
			length = (stop-start-1)/step + 1
		}
		return start, stop, length
	}
	start = size - 1
	if !s.start.IsNone() {
		start = adjustBound(s.start.Value(), size, true)
	}
	stop = -1
	if !s.stop.IsNone() {
		stop = adjustBound(s.stop.Value(), size, true)
	}
	if stop < start {
		length = (start-stop-1)/(-step) + 1
	}
	return start, stop, length
}

// adjustBound normalizes one slice bound against an axis size: negative
// values offset from size, then clamp to the valid traversal range for the
// step direction.
func adjustBound(v, size int, negStep bool) int {
	if v < 0 {
		v += size
		if v < 0 {
			if negStep {
				return -1
			}
			return 0
		}
		return v
	}
	if v >= size {
		if negStep {
			return size - 1
		}
		return size
	}
	return v
}

// lengthFor returns the number of positions the slice visits on an axis of
// the given size.
func (s Slice) lengthFor(size int) int {
	_, _, n := s.resolve(size)
	return n
}

// isFullFor reports whether the slice visits all of an axis of the given
// size, in order, with step 1 (the "no-op slice" dropped by Reduce when it
// trails the tuple).
func (s Slice) isFullFor(size int) bool {
	if s.step != 1 {
		return false
	}
	start, stop, n := s.resolve(size)
	return start == 0 && stop == size && n == size
}
