package pofile

import (
	"sort"
	"strconv"
	"strings"
)

// CompareReferences orders two "path:line" reference strings. Paths compare
// bytewise; equal paths compare by line number. A line that does not parse
// as an integer counts as 0.
func CompareReferences(a, b string) int {
	aPath, aLine := splitReference(a)
	bPath, bLine := splitReference(b)
	if c := strings.Compare(aPath, bPath); c != 0 {
		return c
	}
	switch {
	case aLine < bLine:
		return -1
	case aLine > bLine:
		return 1
	}
	return 0
}

// SortReferences sorts refs in place with CompareReferences. References
// that compare equal keep their original relative order.
func SortReferences(refs []string) {
	sort.SliceStable(refs, func(i, j int) bool {
		return CompareReferences(refs[i], refs[j]) < 0
	})
}

// splitReference splits a reference on the first colon into its path and
// line number.
func splitReference(ref string) (string, int) {
	idx := strings.Index(ref, ":")
	if idx < 0 {
		return ref, 0
	}
	line, err := strconv.Atoi(ref[idx+1:])
	if err != nil {
		line = 0
	}
	return ref[:idx], line
}

// referencePath returns the source-file path of a reference, the substring
// before the first colon. A reference with no colon is all path.
func referencePath(ref string) string {
	if idx := strings.Index(ref, ":"); idx >= 0 {
		return ref[:idx]
	}
	return ref
}
