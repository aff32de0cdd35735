package renderer

import (
	"bytes"

	"github.com/etnz/fundcalc"
	md "github.com/nao1215/markdown"
)

func WithdrawalMarkdown(w *fundcalc.WithdrawalImpact) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Withdrawal Preview"
	if w.IsFull() {
		title = "Full Withdrawal Preview"
	}
	doc.H1(title)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Withdrawal Amount"), md.Bold(w.WithdrawalAmount.String())},
		Rows: [][]string{
			{"Units", w.UnitsToWithdraw.StringFixed(4)},
			{"NAV", w.NavValue.String()},
			{"Share of Position", w.WithdrawalPercentage.String()},
			{"Remaining Units", w.RemainingUnits.StringFixed(4)},
			{"Remaining Value", w.RemainingValue.String()},
		},
	})

	return doc.String()
}
