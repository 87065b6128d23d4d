package rewrite

import (
	"testing"

	tt "github.com/gnoswap-labs/v2n/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractAssignment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		line     string
		op       tt.Operator
		expected Assignment
		ok       bool
	}{
		{
			name:     "spaced or",
			line:     " assign x = a | b ; ",
			op:       tt.OpOr,
			expected: Assignment{Dest: "x", Left: "a", Right: "b"},
			ok:       true,
		},
		{
			name:     "carriage return after semicolon",
			line:     " assign x = a | b ; \r",
			op:       tt.OpOr,
			expected: Assignment{Dest: "x", Left: "a", Right: "b"},
			ok:       true,
		},
		{
			name:     "no spaces",
			line:     "assign x=a|b ;",
			op:       tt.OpOr,
			expected: Assignment{Dest: "x", Left: "a", Right: "b"},
			ok:       true,
		},
		{
			name: "wrong operator",
			line: " assign x = a | b ; \r",
			op:   tt.OpAnd,
		},
		{
			name:     "and with bus operands",
			line:     "\tassign y[0] = a[1] & b[2]; // lsb",
			op:       tt.OpAnd,
			expected: Assignment{Dest: "y[0]", Left: "a[1]", Right: "b[2]"},
			ok:       true,
		},
		{
			name: "no assign keyword",
			line: "wire x = a & b;",
			op:   tt.OpAnd,
		},
		{
			name: "no equals sign",
			line: "assign x a & b;",
			op:   tt.OpAnd,
		},
		{
			name: "no semicolon",
			line: "assign x = a & b",
			op:   tt.OpAnd,
		},
		{
			name:     "keyword inside identifier still splits",
			line:     "reassign_x = a & b;",
			op:       tt.OpAnd,
			expected: Assignment{Dest: "_x", Left: "a", Right: "b"},
			ok:       true,
		},
		{
			name:     "first operator wins",
			line:     "assign x = a & b & c;",
			op:       tt.OpAnd,
			expected: Assignment{Dest: "x", Left: "a", Right: "b & c"},
			ok:       true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractAssignment(tc.line, tc.op)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestExtractAssignmentWithoutKeyword(t *testing.T) {
	t.Parallel()
	lines := []string{
		"",
		"module top(a, b, y);",
		"  wire y = a | b;",
		"  x = a & b;",
		"endmodule",
	}
	for _, line := range lines {
		for _, op := range []tt.Operator{tt.OpAnd, tt.OpOr} {
			_, ok := ExtractAssignment(line, op)
			assert.False(t, ok, "line %q op %q", line, op)
		}
	}
}

func TestIndent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", Indent("assign x = a;"))
	assert.Equal(t, "\t  ", Indent("\t  assign x = a;"))
	assert.Equal(t, "   ", Indent("   "))
	assert.Equal(t, " ", Indent(" \rx"))
}
