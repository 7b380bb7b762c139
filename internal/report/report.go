// Package report renders ranked screening results. It is a pure consumer
// of the pipeline's record schema: nothing here feeds back into scoring.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/screening-cli/internal/model"
)

// maxDescriptionChars bounds the description block per company.
const maxDescriptionChars = 1000

var printer = message.NewPrinter(language.AmericanEnglish)

// Markdown renders the ranked records as a human-readable report. Estimated
// fields are marked so a reader never mistakes a benchmark-derived number
// for an extracted one.
func Markdown(records []model.CompanyRecord, w model.Weights) string {
	var b strings.Builder

	b.WriteString("# Top Companies\n\n")
	fmt.Fprintf(&b, "Weights: revenue=%.2g growth=%.2g profitability=%.2g industry=%.2g size=%.2g\n",
		w.Revenue, w.Growth, w.Profitability, w.Industry, w.Size)
	if len(w.SelectedIndustries) > 0 {
		fmt.Fprintf(&b, "Selected industries: %s\n", strings.Join(w.SelectedIndustries, ", "))
	}
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString("No companies found in the document.\n")
		return b.String()
	}

	for i, rec := range records {
		fmt.Fprintf(&b, "## %d. %s\n", i+1, rec.Name)
		fmt.Fprintf(&b, "Score: %.2f | Industry: %s\n", rec.Score, strings.Join(rec.Industries, ", "))

		fmt.Fprintf(&b, "- Revenue: %s%s\n", dollars(rec.Revenue), estimatedMark(rec.RevenueEstimated))
		fmt.Fprintf(&b, "- EBITDA: %s%s\n", dollars(rec.EBITDA), estimatedMark(rec.EBITDAEstimated))
		fmt.Fprintf(&b, "- Growth Rate: %s%s\n", percent(rec.GrowthRate), estimatedMark(rec.GrowthEstimated))
		fmt.Fprintf(&b, "- Employees: %s%s\n", count(rec.Employees), estimatedMark(rec.EmployeesEstimated))

		if rec.Description != "" {
			desc := rec.Description
			if len(desc) > maxDescriptionChars {
				desc = desc[:maxDescriptionChars] + "..."
			}
			fmt.Fprintf(&b, "\n%s\n", desc)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func estimatedMark(estimated bool) string {
	if estimated {
		return " (estimated)"
	}
	return ""
}

func dollars(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return printer.Sprintf("$%d", *v)
}

func percent(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d%%", *v)
}

func count(v *int) string {
	if v == nil {
		return "N/A"
	}
	return printer.Sprintf("%d", *v)
}

// FormatRevenue formats a revenue amount in abbreviated human-readable
// form, for log lines and table cells where full precision is noise.
func FormatRevenue(amount int64) string {
	switch {
	case amount >= 1_000_000_000 || amount <= -1_000_000_000:
		return fmt.Sprintf("$%.1fB", float64(amount)/1_000_000_000)
	case amount >= 1_000_000 || amount <= -1_000_000:
		return fmt.Sprintf("$%.1fM", float64(amount)/1_000_000)
	case amount >= 1_000 || amount <= -1_000:
		return fmt.Sprintf("$%.0fK", float64(amount)/1_000)
	default:
		return fmt.Sprintf("$%d", amount)
	}
}
