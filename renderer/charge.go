package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundcalc"
	md "github.com/nao1215/markdown"
)

// ChargePreview is a single charge computed for a transaction.
type ChargePreview struct {
	ChargeType fundcalc.ChargeType
	Method     fundcalc.CalculationMethod
	Turnover   fundcalc.Money
	Amount     fundcalc.Optional[fundcalc.Money]
	Formula    string
	Err        error
}

// MethodsMarkdown lists every calculation method with its required fields.
func MethodsMarkdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Calculation Methods")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Method", "Description", "Required", "Formula"},
	}
	for _, m := range fundcalc.CalculationMethods {
		_, formula, _ := fundcalc.ComputeCharge(m, fundcalc.Money{}, fundcalc.ChargeParams{})
		table.Rows = append(table.Rows, []string{
			m.String(),
			m.Label(),
			fieldList(fundcalc.RequiredFields(m)),
			formula,
		})
	}
	doc.Table(table)

	return doc.String()
}

// ChargeMarkdown renders a charge preview. An incomplete preview still shows
// its formula, and the fields left to fill.
func ChargeMarkdown(p *ChargePreview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Charge", p.ChargeType))

	amount := p.Amount.Render(fundcalc.Money.String, fundcalc.Placeholder)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Charge"), md.Bold(amount)},
		Rows: [][]string{
			{"Method", p.Method.String()},
			{"Formula", p.Formula},
			{"Turnover", p.Turnover.String()},
		},
	})

	validationBlock(doc, "Missing or Invalid Inputs", p.Err)

	return doc.String()
}

// ChargeSheetMarkdown renders every charge applied to a transaction.
func ChargeSheetMarkdown(s *fundcalc.ChargeSheet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Charges on a %s of %s", s.Side, s.Turnover))
	if s.Scrips > 1 {
		doc.PlainText(fmt.Sprintf("Scrips: %d", s.Scrips))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Charge", "Formula", "Amount"},
	}
	for _, l := range s.Lines {
		table.Rows = append(table.Rows, []string{l.ChargeType.String(), l.Formula, l.Amount.String()})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", md.Bold(s.Total.String())})
	doc.Table(table)

	return doc.String()
}
