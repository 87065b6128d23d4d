package rewrite

import (
	"strings"

	tt "github.com/gnoswap-labs/v2n/internal/types"
)

const assignKeyword = "assign"

// Assignment is the decomposition of `assign dest = left OP right;`.
type Assignment struct {
	Dest  string
	Left  string
	Right string
}

// ExtractAssignment splits line at the first `assign`, `=`, op and `;`, in
// that order. ok is false when any of them is missing. Text after `;` is
// dropped and every part is trimmed.
func ExtractAssignment(line string, op tt.Operator) (a Assignment, ok bool) {
	_, stmt, found := strings.Cut(line, assignKeyword)
	if !found {
		return Assignment{}, false
	}
	dest, src, found := strings.Cut(stmt, "=")
	if !found {
		return Assignment{}, false
	}
	left, rest, found := strings.Cut(src, string(op))
	if !found {
		return Assignment{}, false
	}
	right, _, found := strings.Cut(rest, ";")
	if !found {
		return Assignment{}, false
	}

	return Assignment{
		Dest:  strings.TrimSpace(dest),
		Left:  strings.TrimSpace(left),
		Right: strings.TrimSpace(right),
	}, true
}

// Indent returns the leading spaces and tabs of line.
func Indent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
