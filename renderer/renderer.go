package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// templates holds every markdown template. Files named after another one plus
// a "_suffix" are partials of it (report_balances.md is a partial of report.md).
//
//go:embed *.md
var templates embed.FS

// RenderReport renders the full report: the expense log, the balances and the
// settlement.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"report_title":      "report_title.md",
		"report_expenses":   "report_expenses.md",
		"report_balances":   "report_balances.md",
		"report_settlement": "report_settlement.md",
	}
	return renderTemplate("report", "report.md", partials, r)
}

// RenderExpenses renders the expense log only.
func RenderExpenses(r *Report) string {
	return renderTemplate("report_expenses", "report_expenses.md", nil, r)
}

// RenderBalances renders the balances table only.
func RenderBalances(r *Report) string {
	return renderTemplate("report_balances", "report_balances.md", nil, r)
}

// RenderSettlement renders the list of transfers that settles the debts.
func RenderSettlement(r *Report) string {
	return renderTemplate("report_settlement", "report_settlement.md", nil, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
