package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	tt "github.com/gnoswap-labs/v2n/internal/types"
)

var (
	statusStyle  = color.New(color.FgGreen, color.Bold)
	cachedStyle  = color.New(color.FgHiYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	removedStyle = color.New(color.FgRed)
	addedStyle   = color.New(color.FgGreen)
	noStyle      = color.New(color.FgWhite)
)

const reportTemplate = `{{header .Report .Padding}}{{range .Report.Changes}}{{change . $.Width $.Padding}}{{end}}{{footer .Report.Stats .Report.Changes .Padding}}`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"header": header,
	"change": change,
	"footer": footer,
}).Parse(reportTemplate))

type reportData struct {
	Report  tt.Report
	Width   int
	Padding string
}

// GenerateFormattedReport renders the changes of every report, one block
// per file, showing each rewritten line next to the lines it became.
func GenerateFormattedReport(reports []tt.Report) string {
	var builder strings.Builder
	for _, report := range reports {
		builder.WriteString(buildReport(report))
	}
	return builder.String()
}

func buildReport(report tt.Report) string {
	width := calculateMaxLineNumWidth(report.Changes)
	data := reportData{
		Report:  report,
		Width:   width,
		Padding: strings.Repeat(" ", width),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

func status(report tt.Report) string {
	switch {
	case report.Cached:
		return cachedStyle.Sprint("cached")
	case report.DryRun:
		return cachedStyle.Sprint("dry-run")
	default:
		return statusStyle.Sprint("converted")
	}
}

func header(report tt.Report, padding string) string {
	var endString string
	endString = status(report) + noStyle.Sprint(": ")
	endString += fileStyle.Sprintf("%s\n", report.Filename)
	endString += lineStyle.Sprintf("%s--> ", padding)
	endString += fileStyle.Sprintf("%s\n", report.Output)
	endString += lineStyle.Sprintf("%s |\n", padding)
	return endString
}

func change(c tt.Change, width int, padding string) string {
	var endString string
	lineNum := fmt.Sprintf("%*d", width, c.Line)
	endString += lineStyle.Sprintf("%s | ", lineNum)
	endString += removedStyle.Sprintf("- %s\n", c.Before)
	for _, line := range c.After {
		endString += lineStyle.Sprintf("%s | ", padding)
		endString += addedStyle.Sprintf("+ %s\n", line)
	}
	return endString
}

func footer(stats tt.Stats, changes []tt.Change, padding string) string {
	var endString string
	if len(changes) == 0 {
		endString += lineStyle.Sprintf("%s = ", padding)
		endString += noStyle.Sprint("no changes\n\n")
		return endString
	}
	endString += lineStyle.Sprintf("%s |\n", padding)
	endString += lineStyle.Sprintf("%s = ", padding)
	endString += noStyle.Sprintf("%s\n\n", describeStats(stats))
	return endString
}

func describeStats(stats tt.Stats) string {
	return fmt.Sprintf("and: %d, or: %d, inverters: %d", stats.Ands, stats.Ors, stats.Inverters)
}

func calculateMaxLineNumWidth(changes []tt.Change) int {
	maxLine := 1
	for _, c := range changes {
		if c.Line > maxLine {
			maxLine = c.Line
		}
	}
	return len(fmt.Sprintf("%d", maxLine))
}
