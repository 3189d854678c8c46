package domain

import (
	"strconv"
	"strings"
)

// Comparator defines a total order over chain tags. It returns a negative
// number when a sorts before b, zero when they are equal, and a positive
// number when a sorts after b.
type Comparator func(a, b string) int

// CompareVersions is the default chain ordering. It splits tags on dots and
// compares segment by segment: numerically when both segments parse as
// unsigned integers, lexically otherwise. A missing segment counts as "0", so
// "1.0" == "1" and "1.0.1" > "1".
//
// This is ordering only. Pre-release or build metadata semantics (semver) are
// out of scope; callers needing them should supply their own Comparator.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		sa, sb := "0", "0"
		if i < len(as) {
			sa = as[i]
		}
		if i < len(bs) {
			sb = bs[i]
		}
		if c := compareSegment(sa, sb); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegment(a, b string) int {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
