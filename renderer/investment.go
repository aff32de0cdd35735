package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundcalc"
	md "github.com/nao1215/markdown"
)

func InvestmentMarkdown(p *fundcalc.FeeImpactPreview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Preview")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Investment"), md.Bold(p.InvestmentAmount.String())},
		Rows: [][]string{
			{"NAV", p.NavValue.String()},
			{"Management Fee", p.FeeAmount.String()},
			{"Net Investment", p.NetInvestment.String()},
			{"Units Allocated", p.UnitsAllocated.StringFixed(4)},
		},
	})

	if fee := p.ActiveFee; fee.Charges() {
		doc.H2("Active Fee")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Period", fmt.Sprintf("%s to %s", fee.FromDate, fee.ToDate)},
			Rows: [][]string{
				{"Daily Fee", fee.DailyFeeAmount.String()},
				{"Remaining Days", fmt.Sprintf("%d of %d", fee.RemainingDays, fee.TotalDays)},
				{"Existing Investors", fmt.Sprintf("%d", p.CurrentUserCount)},
			},
		})
	}

	if len(p.ExistingUsersImpact) > 0 {
		doc.H2("Credits to Existing Investors")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Investor", "Credit", "Units"},
		}
		for i, u := range p.ExistingUsersImpact {
			who := u.UserID
			if who == "" {
				who = fmt.Sprintf("#%d", i+1)
			}
			table.Rows = append(table.Rows, []string{who, u.CreditAmount.String(), u.CreditUnits.StringFixed(4)})
		}
		table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(p.TotalCredits().String()), ""})
		doc.Table(table)
	}

	if len(p.Warnings) > 0 {
		validationBlock(doc, "Warnings", p.Warnings)
	}

	if p.RequiresConfirmation() {
		doc.PlainText(md.Bold("Confirmation required before submitting."))
	}

	return doc.String()
}
