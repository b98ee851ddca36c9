// shape.go: shape values, sizes, and the broadcasting rule
//
// Shapes are plain []int slices of non-negative dimension lengths; () is the
// 0-d shape of a scalar array. This file holds the shape-level utilities the
// engine is built on, most importantly BroadcastShapes: the standard
// trailing-alignment broadcasting rule (align shapes at their last dimension,
// dimensions of length 1 stretch to match, missing leading dimensions count
// as 1). It is deliberately a standalone, separately-tested helper because
// the advanced-indexing combination rules in newshape.go lean on it.
package ndindex

import (
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// ShapeSize returns the number of elements in an array of the given shape:
// the product of its dimensions, 0 if any dimension is 0, and 1 for ().
func ShapeSize(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// BroadcastShapes computes the common broadcast shape of the given shapes, or
// fails with a *BroadcastError identifying the first incompatible pair.
// BroadcastShapes() returns the 0-d shape.
func BroadcastShapes(shapes ...[]int) ([]int, error) {
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
	// owner[i] remembers which shape fixed out[i] to a value > 1, so a
	// conflict can report the original incompatible pair.
	owner := make([]int, rank)
	for i := range owner {
		owner[i] = -1
	}
	for si, s := range shapes {
		off := rank - len(s)
		for j, d := range s {
			k := off + j
			switch {
			case d == out[k] || d == 1:
				// compatible, nothing to do
			case out[k] == 1:
				out[k] = d
				owner[k] = si
			default:
				return nil, &BroadcastError{
					ShapeA: copyInts(shapes[owner[k]]),
					ShapeB: copyInts(s),
				}
			}
		}
	}
	if rank == 0 {
		return nil, nil
	}
	return out, nil
}

/* ===========================
   PRIVATE
   =========================== */

// checkShape validates that every dimension is non-negative.
func checkShape(shape []int) error {
	for i, d := range shape {
		if d < 0 {
			return fmt.Errorf("invalid shape %s: dimension %d is negative", formatShape(shape), i)
		}
	}
	return nil
}

// formatShape renders a shape the way the reference library prints tuples:
// (3, 4, 5), (2,) and ().
func formatShape(shape []int) string {
	if len(shape) == 0 {
		return "()"
	}
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
