// text.go: the textual index notation
//
// ParseText reads the bracket notation the String methods print, so the two
// round-trip. It exists for the CLI and REPL surfaces; programs use the
// typed raw union with New. The notation mirrors what would appear between
// the brackets of a[...]:
//
//	1                  integer
//	0:10:2  :  ::-1    slice (colon syntax, empty parts unspecified)
//	...                ellipsis
//	None               newaxis
//	True  False        scalar masks
//	[1, -2, 3]         integer array (nesting gives more dimensions)
//	[[True, False]]    boolean mask
//	array(5)           0-d integer array (scalar advanced index)
//	1, :, ..., None    position tuple; "()" is the empty tuple
//
// A single item parses to its bare variant; a trailing comma forces a
// one-element tuple, as in Python. One pair of outer parentheses is allowed.
package ndindex

import (
	"strconv"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// ParseText parses the textual index notation. All failures are
// *ParseError.
func ParseText(s string) (Index, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, parseErrorf("empty index expression")
	}
	if wrappedInParens(s) {
		s = strings.TrimSpace(s[1 : len(s)-1])
		if s == "" {
			return Tuple{}, nil
		}
	}
	items, trailing, err := splitTopLevel(s)
	if err != nil {
		return nil, err
	}
	if len(items) == 1 && !trailing {
		return parseItem(items[0])
	}
	elems := make([]Index, len(items))
	for i, it := range items {
		e, err := parseItem(it)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return NewTuple(elems...)
}

/* ===========================
   PRIVATE: scanning
   =========================== */

// wrappedInParens reports whether s is one paren pair enclosing the whole
// expression (not e.g. "(1), (2)").
func wrappedInParens(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

// splitTopLevel splits on commas outside any bracket or paren nesting.
// trailing reports a dangling final comma ("1,").
func splitTopLevel(s string) (items []string, trailing bool, err error) {
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, false, parseErrorf("unbalanced brackets in index %q", s)
			}
		case ',':
			if depth == 0 {
				items = append(items, strings.TrimSpace(s[last:i]))
				last = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, false, parseErrorf("unbalanced brackets in index %q", s)
	}
	tail := strings.TrimSpace(s[last:])
	if tail == "" {
		if len(items) == 0 {
			return nil, false, parseErrorf("cannot parse index %q", s)
		}
		trailing = true
	} else {
		items = append(items, tail)
	}
	for _, it := range items {
		if it == "" {
			return nil, false, parseErrorf("empty element in index %q", s)
		}
	}
	return items, trailing, nil
}

func parseItem(s string) (Index, error) {
	switch s {
	case "...":
		return Ellipsis{}, nil
	case "None":
		return Newaxis{}, nil
	case "True":
		return NewBooleanScalar(true), nil
	case "False":
		return NewBooleanScalar(false), nil
	}
	if inner, ok := strings.CutPrefix(s, "array("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return nil, parseErrorf("cannot parse index item %q", s)
		}
		inner = strings.TrimSpace(inner)
		switch inner {
		case "True":
			return NewBooleanScalar(true), nil
		case "False":
			return NewBooleanScalar(false), nil
		}
		v, err := strconv.Atoi(inner)
		if err != nil {
			return nil, parseErrorf("cannot parse index item %q", s)
		}
		return NewIntegerScalar(v), nil
	}
	if strings.HasPrefix(s, "[") {
		return parseListLiteral(s)
	}
	if strings.Contains(s, ":") {
		return parseSliceLiteral(s)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, parseErrorf("cannot parse index item %q", s)
	}
	return NewInteger(v), nil
}

func parseSliceLiteral(s string) (Index, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return nil, parseErrorf("too many colons in slice %q", s)
	}
	opts := make([]OptInt, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "None" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, parseErrorf("slice indices must be integers or None, got %q", p)
		}
		opts[i] = Opt(v)
	}
	return NewSlice(opts[0], opts[1], opts[2])
}

// parseListLiteral parses nested bracket lists into an integer array or a
// boolean mask, inferring the shape and rejecting ragged nesting.
func parseListLiteral(s string) (Index, error) {
	var shape []int
	var ints []int
	var bools []bool
	sawInt, sawBool := false, false

	var walk func(s string, dim int) error
	walk = func(s string, dim int) error {
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return parseErrorf("cannot parse array literal %q", s)
		}
		body := strings.TrimSpace(s[1 : len(s)-1])
		var items []string
		if body != "" {
			var err error
			items, _, err = splitTopLevel(body)
			if err != nil {
				return err
			}
		}
		if dim == len(shape) {
			shape = append(shape, len(items))
		} else if shape[dim] != len(items) {
			return parseErrorf("ragged nested sequence in array literal %q", s)
		}
		hasList, hasScalar := false, false
		for _, it := range items {
			if strings.HasPrefix(it, "[") {
				hasList = true
			} else {
				hasScalar = true
			}
		}
		if hasList && hasScalar {
			return parseErrorf("ragged nested sequence in array literal %q", s)
		}
		for _, it := range items {
			if hasList {
				if err := walk(it, dim+1); err != nil {
					return err
				}
				continue
			}
			switch it {
			case "True", "False":
				sawBool = true
				bools = append(bools, it == "True")
			default:
				v, err := strconv.Atoi(it)
				if err != nil {
					return parseErrorf("cannot parse array element %q", it)
				}
				sawInt = true
				ints = append(ints, v)
			}
		}
		return nil
	}
	if err := walk(s, 0); err != nil {
		return nil, err
	}
	if sawInt && sawBool {
		return nil, parseErrorf("mixed integer and boolean array literal %q", s)
	}
	if sawBool {
		return NewBooleanArray(bools, shape)
	}
	// an all-empty literal like "[]" or "[[]]" parses as an integer array
	return NewIntegerArray(ints, shape)
}
