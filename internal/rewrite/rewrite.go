package rewrite

import (
	"slices"
	"strings"

	tt "github.com/gnoswap-labs/v2n/internal/types"
)

// Result is the output of one Rewrite call.
type Result struct {
	Lines   []string
	Stats   tt.Stats
	Changes []tt.Change
}

// String joins the converted lines back into a document.
func (r *Result) String() string {
	return strings.Join(r.Lines, "\n")
}

// SplitLines splits source on '\n' without normalising line endings.
func SplitLines(source string) []string {
	return strings.Split(source, "\n")
}

// Rewrite runs the enabled passes over src: AND, then OR, then NOT.
// src is not modified. Counters and the set of declared inverters are
// fresh for every call.
func Rewrite(src []string, features tt.Features) *Result {
	doc := slices.Clone(src)
	args, withArgs := features.ConstantArgsSuffix()

	var stats tt.Stats
	if features.ConvertAnds {
		stats.Ands = ConvertBinary(doc, tt.OpAnd, AndGate, args, withArgs)
	}
	if features.ConvertOrs {
		stats.Ors = ConvertBinary(doc, tt.OpOr, OrGate, args, withArgs)
	}

	groups := make([][]string, len(doc))
	if features.ConvertNots {
		nc := newNotConverter()
		for i, line := range doc {
			groups[i] = nc.convertLine(line)
		}
		stats.Inverters = nc.inverters
		stats.NegatedLines = nc.counter
	} else {
		for i, line := range doc {
			groups[i] = []string{line}
		}
	}

	res := &Result{Stats: stats, Lines: make([]string, 0, len(doc))}
	for i, group := range groups {
		res.Lines = append(res.Lines, group...)
		if len(group) == 1 && group[0] == src[i] {
			continue
		}
		res.Changes = append(res.Changes, tt.Change{
			Line:   i + 1,
			Before: src[i],
			After:  group,
		})
	}
	return res
}

// RewriteSource is Rewrite over a whole document held in a string.
func RewriteSource(source string, features tt.Features) *Result {
	return Rewrite(SplitLines(source), features)
}
