package rewrite

import (
	"strconv"
	"strings"

	tt "github.com/gnoswap-labs/v2n/internal/types"
)

// Gate labels placed before the instance number.
const (
	AndGate = "AN2 AND"
	OrGate  = "OR2 OR"
)

// GateFor returns the gate label used for op.
func GateFor(op tt.Operator) string {
	if op == tt.OpOr {
		return OrGate
	}
	return AndGate
}

// ConvertBinary rewrites, in place, every line of doc that holds an
// assignment using op into `<gate>_<n> (dest, left, right[, args]);`,
// keeping the line's indentation. Numbering starts at 1 for each call.
// Lines that do not match are left untouched. It returns the number of
// gates emitted.
func ConvertBinary(doc []string, op tt.Operator, gate string, args string, withArgs bool) int {
	counter := 0
	for i, line := range doc {
		a, ok := ExtractAssignment(line, op)
		if !ok {
			continue
		}
		counter++
		doc[i] = gateLine(Indent(line), gate, counter, a, args, withArgs)
	}
	return counter
}

func gateLine(indent, gate string, n int, a Assignment, args string, withArgs bool) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(gate)
	b.WriteByte('_')
	b.WriteString(strconv.Itoa(n))
	b.WriteString(" (")
	b.WriteString(a.Dest)
	b.WriteString(", ")
	b.WriteString(a.Left)
	b.WriteString(", ")
	b.WriteString(a.Right)
	if withArgs {
		b.WriteString(", ")
		b.WriteString(args)
	}
	b.WriteString(");")
	return b.String()
}
