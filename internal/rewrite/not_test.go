package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegatedSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{name: "none", line: "assign y = a & b;"},
		{name: "single", line: "assign y = ~a;", expected: []string{"a"}},
		{name: "bus index", line: "y = ~data[3] | b;", expected: []string{"data[3]"}},
		{name: "escaped identifier", line: `y = ~\bus.x ;`, expected: []string{`\bus`}},
		{name: "stops at operator", line: "y = ~a&~b;", expected: []string{"a", "b"}},
		{name: "repeated", line: "y = ~a | ~a;", expected: []string{"a", "a"}},
		{name: "end of line", line: "~clk_n", expected: []string{"clk_n"}},
		{name: "double marker", line: "y = ~~x;", expected: []string{"x"}},
		{name: "marker without symbol", line: "y = ~(a & b);"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, negatedSymbols(tc.line))
		})
	}
}

func TestConvertNots(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:  "single negation",
			input: []string{"assign q = ~d;"},
			expected: []string{
				"IV INVL_1 (Nd, d);",
				"assign q = Nd;",
			},
		},
		{
			name:  "declared once across lines",
			input: []string{"y = ~x;", "z = ~x & 1;"},
			expected: []string{
				"IV INVL_1 (Nx, x);",
				"y = Nx;",
				"z = Nx & 1;",
			},
		},
		{
			name:  "one counter value per line in discovery order",
			input: []string{"  assign y = ~a | ~b;"},
			expected: []string{
				"  IV INVL_1 (Na, a);",
				"  IV INVL_1 (Nb, b);",
				"  assign y = Na | Nb;",
			},
		},
		{
			name: "counter advances on lines without new symbols",
			input: []string{
				"a = ~x;",
				"b = ~x;",
				"plain line",
				"\tc = ~y & ~x;",
			},
			expected: []string{
				"IV INVL_1 (Nx, x);",
				"a = Nx;",
				"b = Nx;",
				"plain line",
				"\tIV INVL_3 (Ny, y);",
				"\tc = Ny & Nx;",
			},
		},
		{
			name:     "repeated symbol on one line",
			input:    []string{"y = ~a ^ ~a;"},
			expected: []string{"IV INVL_1 (Na, a);", "y = Na ^ Na;"},
		},
		{
			name:     "marker without symbol still rewritten",
			input:    []string{"y = ~(a & b);"},
			expected: []string{"y = N(a & b);"},
		},
		{
			name:     "symbolless line does not advance counter",
			input:    []string{"y = ~(a & b);", "z = ~c;"},
			expected: []string{"y = N(a & b);", "IV INVL_1 (Nc, c);", "z = Nc;"},
		},
		{
			name:     "symbolless marker next to a symbol",
			input:    []string{"y = ~a & ~(b);"},
			expected: []string{"IV INVL_1 (Na, a);", "y = Na & N(b);"},
		},
		{
			name:     "no negations",
			input:    []string{"", "module m;", "endmodule"},
			expected: []string{"", "module m;", "endmodule"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ConvertNots(tc.input))
		})
	}
}

func TestConvertNotsFreshStatePerCall(t *testing.T) {
	t.Parallel()
	doc := []string{"y = ~x;"}
	first := ConvertNots(doc)
	second := ConvertNots(doc)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"y = ~x;"}, doc)
}
