// Package renderer turns calculator results into markdown reports for the
// command line.
package renderer

import (
	"strings"

	"github.com/etnz/fundcalc"
	md "github.com/nao1215/markdown"
)

// validationBlock appends the validation failures carried by err, if any,
// as a bullet list under title. Other errors are printed as plain text.
func validationBlock(doc *md.Markdown, title string, err error) {
	if err == nil {
		return
	}
	doc.H2(title)
	errs, ok := fundcalc.AsValidationErrors(err)
	if !ok {
		doc.PlainText(err.Error())
		return
	}
	items := make([]string, len(errs))
	for i, e := range errs {
		items[i] = md.Bold(string(e.Field)) + ": " + e.Reason
	}
	doc.BulletList(items...)
}

// fieldList renders required fields for a table cell.
func fieldList(fields []fundcalc.Field) string {
	if len(fields) == 0 {
		return "-"
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
