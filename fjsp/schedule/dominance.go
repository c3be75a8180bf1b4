package schedule

import (
	"strconv"
	"strings"
)

// GroupKey returns the dominance grouping key for s: the intersection
// vector V. Two states
// with different V are incomparable and never checked against each other.
func GroupKey(s State) string {
	var b strings.Builder
	for i, v := range s.V {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// Dominates reports whether a dominates b within their shared group: a
// dominates b iff a.F[m] <= b.F[m] for every machine m. The relation does
// not compare accumulated path value because path value is -max(F) and is
// therefore implied by the F coordinates.
//
// Dominates is reflexive (a dominates itself) and transitive, making it a
// partial order within a fixed group.
func Dominates(a, b State) bool {
	for m := range a.F {
		if a.F[m] > b.F[m] {
			return false
		}
	}
	return true
}
