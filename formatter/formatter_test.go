package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	tt "github.com/gnoswap-labs/v2n/internal/types"
)

func init() {
	color.NoColor = true
}

func TestGenerateFormattedReport(t *testing.T) {
	t.Parallel()
	reports := []tt.Report{
		{
			Filename: "top.v",
			Output:   "top.v.new",
			Stats:    tt.Stats{Ands: 1, Ors: 1, Inverters: 1, NegatedLines: 1},
			Changes: []tt.Change{
				{
					Line:   2,
					Before: "assign y = ~a & b;",
					After:  []string{"IV INVL_1 (Na, a);", "AN2 AND_1 (y, Na, b);"},
				},
				{
					Line:   10,
					Before: "assign z = c | d;",
					After:  []string{"OR2 OR_1 (z, c, d);"},
				},
			},
		},
		{
			Filename: "empty.v",
			Output:   "empty.v.new",
			DryRun:   true,
		},
	}

	expected := `converted: top.v
  --> top.v.new
   |
 2 | - assign y = ~a & b;
   | + IV INVL_1 (Na, a);
   | + AN2 AND_1 (y, Na, b);
10 | - assign z = c | d;
   | + OR2 OR_1 (z, c, d);
   |
   = and: 1, or: 1, inverters: 1

dry-run: empty.v
 --> empty.v.new
  |
  = no changes

`

	result := GenerateFormattedReport(reports)
	assert.Equal(t, expected, result, "Formatted output does not match expected")
}

func TestGenerateFormattedReportCached(t *testing.T) {
	t.Parallel()
	result := GenerateFormattedReport([]tt.Report{{Filename: "a.v", Output: "a.v.new", Cached: true}})
	assert.Contains(t, result, "cached: a.v\n")
}

func TestCalculateMaxLineNumWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, calculateMaxLineNumWidth(nil))
	assert.Equal(t, 1, calculateMaxLineNumWidth([]tt.Change{{Line: 9}}))
	assert.Equal(t, 3, calculateMaxLineNumWidth([]tt.Change{{Line: 9}, {Line: 120}}))
}

func TestSummary(t *testing.T) {
	t.Parallel()
	reports := []tt.Report{
		{
			Filename: "a.v",
			Output:   "a.v.new",
			Stats:    tt.Stats{Ands: 2, Ors: 1},
			Changes:  []tt.Change{{Line: 1}, {Line: 2}, {Line: 3}},
		},
		{
			Filename: "b.v",
			Output:   "b.v.new",
			Stats:    tt.Stats{Inverters: 4},
			Changes:  []tt.Change{{Line: 7}},
			Cached:   true,
		},
	}

	out := Summary(reports)
	assert.Contains(t, out, "Conversion summary")
	assert.Contains(t, out, "a.v.new")
	assert.Contains(t, out, "cached")
	assert.Contains(t, out, "written")
	assert.Contains(t, out, "TOTAL")
}
