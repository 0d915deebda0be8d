package weekly

import "strings"

// Reducers for collapsing a week's daily values into one cell. All of them
// are total over empty or all-null input: absence degrades to a zero value
// or an empty string, never an error.

// Sum adds all values. Empty input sums to 0.
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Mean is the arithmetic mean, 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// AnyFlag reports whether any value is true (the "max" reducer for
// boolean flags).
func AnyFlag(values []bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}

// CountNonNull counts non-nil entries.
func CountNonNull[T any](values []*T) int {
	n := 0
	for _, v := range values {
		if v != nil {
			n++
		}
	}
	return n
}

// JoinUniqueNonNull joins the distinct non-nil, non-empty strings in first
// appearance order with ", ". All-null input yields "".
func JoinUniqueNonNull(values []*string) string {
	seen := make(map[string]struct{})
	var ordered []string
	for _, v := range values {
		if v == nil || *v == "" {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		ordered = append(ordered, *v)
	}
	return strings.Join(ordered, ", ")
}
