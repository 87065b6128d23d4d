package rewrite

import (
	"testing"

	tt "github.com/gnoswap-labs/v2n/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestConvertBinary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    []string
		op       tt.Operator
		args     string
		withArgs bool
		expected []string
		count    int
	}{
		{
			name:     "single and",
			input:    []string{"  assign out = in1 & in2;"},
			op:       tt.OpAnd,
			expected: []string{"  AN2 AND_1 (out, in1, in2);"},
			count:    1,
		},
		{
			name:     "constant arguments",
			input:    []string{"  assign out = in1 & in2;"},
			op:       tt.OpAnd,
			args:     "WE, RE, CK",
			withArgs: true,
			expected: []string{"  AN2 AND_1 (out, in1, in2, WE, RE, CK);"},
			count:    1,
		},
		{
			name: "numbering skips non matching lines",
			input: []string{
				"module m;",
				"assign a = b | c;",
				"// nothing here",
				"assign d = e & f;",
				"assign g = h | i;",
				"endmodule",
			},
			op: tt.OpOr,
			expected: []string{
				"module m;",
				"OR2 OR_1 (a, b, c);",
				"// nothing here",
				"assign d = e & f;",
				"OR2 OR_2 (g, h, i);",
				"endmodule",
			},
			count: 2,
		},
		{
			name:     "indentation preserved verbatim",
			input:    []string{"\t  assign x = a | b;"},
			op:       tt.OpOr,
			expected: []string{"\t  OR2 OR_1 (x, a, b);"},
			count:    1,
		},
		{
			name:     "no matches",
			input:    []string{"  wire w;  ", "\tassign x = a;"},
			op:       tt.OpAnd,
			expected: []string{"  wire w;  ", "\tassign x = a;"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := append([]string(nil), tc.input...)
			n := ConvertBinary(doc, tc.op, GateFor(tc.op), tc.args, tc.withArgs)
			assert.Equal(t, tc.expected, doc)
			assert.Equal(t, tc.count, n)
		})
	}
}

func TestConvertBinaryIdempotent(t *testing.T) {
	t.Parallel()
	doc := []string{
		"assign a = b & c;",
		"  assign d = e & f;",
	}
	ConvertBinary(doc, tt.OpAnd, AndGate, "", false)
	once := append([]string(nil), doc...)

	n := ConvertBinary(doc, tt.OpAnd, AndGate, "", false)
	assert.Zero(t, n)
	assert.Equal(t, once, doc)
}

func TestConvertBinaryIndependentCounters(t *testing.T) {
	t.Parallel()
	doc := []string{
		"assign a = b & c;",
		"assign d = e | f;",
		"assign g = h & i;",
		"assign j = k | l;",
	}
	ConvertBinary(doc, tt.OpAnd, AndGate, "", false)
	ConvertBinary(doc, tt.OpOr, OrGate, "", false)

	assert.Equal(t, []string{
		"AN2 AND_1 (a, b, c);",
		"OR2 OR_1 (d, e, f);",
		"AN2 AND_2 (g, h, i);",
		"OR2 OR_2 (j, k, l);",
	}, doc)
}

func TestGateFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, AndGate, GateFor(tt.OpAnd))
	assert.Equal(t, OrGate, GateFor(tt.OpOr))
}
