package formatter

import (
	"github.com/jedib0t/go-pretty/v6/table"

	tt "github.com/gnoswap-labs/v2n/internal/types"
)

// Summary renders one table row per report plus a totals footer.
func Summary(reports []tt.Report) string {
	w := table.NewWriter()
	w.SetTitle("Conversion summary")
	w.AppendHeader(table.Row{"File", "Output", "AND", "OR", "INV", "Changed", "Status"})

	var total tt.Stats
	changed := 0
	for _, r := range reports {
		state := "written"
		switch {
		case r.Cached:
			state = "cached"
		case r.DryRun:
			state = "dry-run"
		}
		w.AppendRow(table.Row{r.Filename, r.Output, r.Stats.Ands, r.Stats.Ors, r.Stats.Inverters, len(r.Changes), state})

		total.Ands += r.Stats.Ands
		total.Ors += r.Stats.Ors
		total.Inverters += r.Stats.Inverters
		changed += len(r.Changes)
	}

	w.AppendFooter(table.Row{"Total", len(reports), total.Ands, total.Ors, total.Inverters, changed, ""})
	return w.Render()
}
