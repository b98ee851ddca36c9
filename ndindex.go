// ndindex.go: New, the single construction entry point
//
// What this file does
// -------------------
// New turns an arbitrary raw value into its typed Index variant, or fails
// with a *ParseError. The accepted raw union:
//
//	Index                        returned as-is (construction is idempotent)
//	int/int8..int64/uint..uint64 -> Integer
//	bool                         -> 0-d BooleanArray (the scalar mask)
//	RawSlice                     -> Slice (step 0 fails)
//	RawEllipsis / RawNewaxis     -> Ellipsis / Newaxis
//	[]any                        -> Tuple, elements parsed recursively;
//	                                a []any inside a []any is an error (only
//	                                the outermost container is the tuple)
//	RawIntArray / RawBoolArray   -> IntegerArray / BooleanArray
//	[]int, []bool, and nested    -> IntegerArray / BooleanArray, shape
//	[][]... slices (reflection)     inferred, ragged nesting fails
//
// Anything else fails with the reference library's catch-all wording. Float
// kinds fail with the dtype wording: floats are never valid indices.
//
// Parse errors are local and immediate: a failed New returns no partial
// Index. Everything shape-dependent (bounds, rank, broadcast) is deferred to
// NewShape/Reduce/Expand/IsEmpty, which is what keeps construction
// shape-agnostic.
package ndindex

import (
	"math"
	"reflect"
)

/* ===========================
   PUBLIC API
   =========================== */

// New parses a raw value into its Index variant. See the file comment for
// the accepted union.
func New(raw any) (Index, error) {
	switch v := raw.(type) {
	case nil:
		return nil, errInvalidIndexType()
	case Index:
		return v, nil
	case bool:
		return NewBooleanScalar(v), nil
	case int:
		return NewInteger(v), nil
	case int8:
		return NewInteger(int(v)), nil
	case int16:
		return NewInteger(int(v)), nil
	case int32:
		return NewInteger(int(v)), nil
	case int64:
		return NewInteger(int(v)), nil
	case uint8:
		return NewInteger(int(v)), nil
	case uint16:
		return NewInteger(int(v)), nil
	case uint32:
		return NewInteger(int(v)), nil
	case uint:
		if uint64(v) > math.MaxInt {
			return nil, parseErrorf("integer index %d overflows", v)
		}
		return NewInteger(int(v)), nil
	case uint64:
		if v > math.MaxInt {
			return nil, parseErrorf("integer index %d overflows", v)
		}
		return NewInteger(int(v)), nil
	case RawSlice:
		return NewSlice(v.Start, v.Stop, v.Step)
	case RawEllipsis:
		return Ellipsis{}, nil
	case RawNewaxis:
		return Newaxis{}, nil
	case RawIntArray:
		return NewIntegerArray(v.Data, v.Shape)
	case RawBoolArray:
		return NewBooleanArray(v.Data, v.Shape)
	case []any:
		return parseTuple(v)
	case []int:
		return NewIntegerArray(v, []int{len(v)})
	case []bool:
		return NewBooleanArray(v, []int{len(v)})
	default:
		if idx, ok, err := parseArrayLike(raw); ok || err != nil {
			return idx, err
		}
		return nil, errInvalidIndexType()
	}
}

// Equal reports structural equality of two indices over canonical form.
// Both arguments may be nil; nil equals only nil.
func Equal(a, b Index) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

/* ===========================
   PRIVATE: tuple and array-like parsing
   =========================== */

func parseTuple(items []any) (Index, error) {
	elems := make([]Index, 0, len(items))
	for _, it := range items {
		if _, ok := it.([]any); ok {
			return nil, errNestedTuple()
		}
		e, err := New(it)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return NewTuple(elems...)
}

// parseArrayLike handles nested slices like [][]int or [][][]bool via
// reflection. ok is false when the value is not a slice at all; a slice with
// a non-index leaf kind is an error, matching the reference library's
// rejection of non-integer, non-boolean array dtypes.
func parseArrayLike(raw any) (Index, bool, error) {
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, false, nil
	}
	leaf := rv.Type()
	depth := 0
	for leaf.Kind() == reflect.Slice {
		leaf = leaf.Elem()
		depth++
	}
	switch leaf.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		shape, data, err := flattenInts(rv, depth)
		if err != nil {
			return nil, true, err
		}
		idx, err := NewIntegerArray(data, shape)
		return idx, true, err
	case reflect.Bool:
		shape, data, err := flattenBools(rv, depth)
		if err != nil {
			return nil, true, err
		}
		idx, err := NewBooleanArray(data, shape)
		return idx, true, err
	case reflect.Float32, reflect.Float64:
		return nil, true, parseErrorf(
			"arrays used as indices must be of integer (or boolean) type")
	default:
		return nil, true, errInvalidIndexType()
	}
}

// flattenInts walks a nested slice value of the given depth, inferring the
// shape from the first element at each level and failing on ragged nesting.
func flattenInts(rv reflect.Value, depth int) ([]int, []int, error) {
	shape := make([]int, 0, depth)
	var data []int
	var walk func(v reflect.Value, dim int) error
	walk = func(v reflect.Value, dim int) error {
		n := v.Len()
		if dim == len(shape) {
			shape = append(shape, n)
		} else if shape[dim] != n {
			return parseErrorf(
				"ragged nested sequence: expected length %d at depth %d, got %d",
				shape[dim], dim, n)
		}
		if dim == depth-1 {
			for i := 0; i < n; i++ {
				data = append(data, int(v.Index(i).Int()))
			}
			return nil
		}
		for i := 0; i < n; i++ {
			if err := walk(v.Index(i), dim+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(rv, 0); err != nil {
		return nil, nil, err
	}
	// a zero-length outer level leaves inner dims unseen; fill them with 0
	for len(shape) < depth {
		shape = append(shape, 0)
	}
	return shape, data, nil
}

func flattenBools(rv reflect.Value, depth int) ([]int, []bool, error) {
	shape := make([]int, 0, depth)
	var data []bool
	var walk func(v reflect.Value, dim int) error
	walk = func(v reflect.Value, dim int) error {
		n := v.Len()
		if dim == len(shape) {
			shape = append(shape, n)
		} else if shape[dim] != n {
			return parseErrorf(
				"ragged nested sequence: expected length %d at depth %d, got %d",
				shape[dim], dim, n)
		}
		if dim == depth-1 {
			for i := 0; i < n; i++ {
				data = append(data, v.Index(i).Bool())
			}
			return nil
		}
		for i := 0; i < n; i++ {
			if err := walk(v.Index(i), dim+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(rv, 0); err != nil {
		return nil, nil, err
	}
	for len(shape) < depth {
		shape = append(shape, 0)
	}
	return shape, data, nil
}
