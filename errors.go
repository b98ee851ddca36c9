// errors.go: the error taxonomy for index construction and shape-bound queries
//
// What this file does
// -------------------
// Four error kinds cover every failure the engine can report:
//
//	*ParseError      the raw value is not a recognizable index (wrong type,
//	                 zero slice step, more than one ellipsis, nested tuple).
//	                 Raised only at construction time; a failed New never
//	                 returns a partial Index.
//	*BoundsError     a concrete integer offset (bare or inside an integer
//	                 array) falls outside [-size, size) for its axis. Raised
//	                 only by shape-bound operations (NewShape, Reduce, Expand,
//	                 IsEmpty), never by construction.
//	*RankError       the index does not fit the array's rank: too many
//	                 axis-consuming elements, or a boolean mask whose shape
//	                 does not match the run of axes it covers.
//	*BroadcastError  two array-type index positions have incompatible shapes.
//
// Message content mirrors the reference array library's wording wherever the
// engine promises exact compatibility (bounds, rank, and broadcast errors are
// the differential-testing surface); parse errors promise only the kind.
//
// Classification is by errors.As, with IsParseError/IsBoundsError/IsRankError/
// IsBroadcastError shorthands for callers that only branch on the kind.
package ndindex

import (
	"errors"
	"fmt"
)

/* ===========================
   PUBLIC API: error kinds
   =========================== */

// ParseError reports a raw value that cannot be turned into an Index.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// BoundsError reports an integer offset outside [-Size, Size) for its axis.
type BoundsError struct {
	Value int // the offending offset, as given (possibly negative)
	Axis  int // the axis it was applied to
	Size  int // the length of that axis
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("index %d is out of bounds for axis %d with size %d",
		e.Value, e.Axis, e.Size)
}

// RankError reports an index that does not fit the rank of the indexed shape.
type RankError struct {
	Msg string
}

func (e *RankError) Error() string { return e.Msg }

// BroadcastError reports the first mutually-incompatible pair of array-type
// index shapes.
type BroadcastError struct {
	ShapeA, ShapeB []int
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf(
		"shape mismatch: indexing arrays could not be broadcast together with shapes %s %s",
		formatShape(e.ShapeA), formatShape(e.ShapeB))
}

/* ===========================
   PUBLIC API: classification helpers
   =========================== */

// IsParseError reports whether err is (or wraps) a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsBoundsError reports whether err is (or wraps) a *BoundsError.
func IsBoundsError(err error) bool {
	var be *BoundsError
	return errors.As(err, &be)
}

// IsRankError reports whether err is (or wraps) a *RankError.
func IsRankError(err error) bool {
	var re *RankError
	return errors.As(err, &re)
}

// IsBroadcastError reports whether err is (or wraps) a *BroadcastError.
func IsBroadcastError(err error) bool {
	var be *BroadcastError
	return errors.As(err, &be)
}

/* ===========================
   PRIVATE: constructors with pinned wording
   =========================== */

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// errInvalidIndexType is the reference library's catch-all wording for raw
// values that are not indices at all.
func errInvalidIndexType() *ParseError {
	return &ParseError{Msg: "only integers, slices (`:`), ellipsis (`...`), " +
		"newaxis (`None`) and integer or boolean arrays are valid indices"}
}

func errZeroStep() *ParseError {
	return &ParseError{Msg: "slice step cannot be zero"}
}

func errMultipleEllipsis() *ParseError {
	return &ParseError{Msg: "an index can only have a single ellipsis ('...')"}
}

func errNestedTuple() *ParseError {
	return &ParseError{Msg: "tuples inside of tuple indices are not supported"}
}

func errTooManyIndices(ndim, indexed int) *RankError {
	return &RankError{Msg: fmt.Sprintf(
		"too many indices for array: array is %d-dimensional, but %d were indexed",
		ndim, indexed)}
}

func errMaskMismatch(axis, size, maskSize int) *RankError {
	return &RankError{Msg: fmt.Sprintf(
		"boolean index did not match indexed array along dimension %d; "+
			"dimension is %d but corresponding boolean dimension is %d",
		axis, size, maskSize)}
}
