package models

import (
	"strconv"
	"strings"
)

// FixedSet is one line of the user's "my numbers". It is not validated: length and
// uniqueness are whatever the user typed.
type FixedSet []int

// String renders the set as [6, 12, 23]
func (f FixedSet) String() string {
	parts := make([]string, len(f))
	for i, n := range f {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Contains reports whether n appears in the set
func (f FixedSet) Contains(n int) bool {
	for _, v := range f {
		if v == n {
			return true
		}
	}
	return false
}
