package category

var defaultCategories = []string{"Food", "Transport", "Shopping", "Bills", "Other"}

// Defaults returns a fresh copy of the seed category set.
func Defaults() []string {
	return append([]string(nil), defaultCategories...)
}

// Contains reports whether name is in set. Matching is exact and case-sensitive.
func Contains(set []string, name string) bool {
	for _, c := range set {
		if c == name {
			return true
		}
	}
	return false
}

// Append returns set with name appended, or set unchanged when already present.
// The input slice is never modified.
func Append(set []string, name string) ([]string, bool) {
	if Contains(set, name) {
		return set, false
	}
	next := make([]string, len(set), len(set)+1)
	copy(next, set)
	return append(next, name), true
}
