package renderer

import (
	"bytes"
	"fmt"

	"github.com/jpcaulfield/rentfolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio summary as a markdown table, one row
// per property plus the portfolio totals.
func SummaryMarkdown(s *rentfolio.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Date))

	rows := make([][]string, 0, len(s.Rows)+1)
	for _, r := range s.Rows {
		name := r.Name
		if name == "" {
			name = r.ID
		}
		rows = append(rows, []string{
			name,
			r.MarketValue.String(),
			r.NOI.String(),
			r.AnnualCashFlow.SignedString(),
			r.Equity.String(),
			r.CapRate.String(),
			fmt.Sprintf("%.2f", r.DSCR),
		})
	}
	rows = append(rows, []string{
		"**Total**",
		s.TotalValue.String(),
		s.TotalNOI.String(),
		s.TotalCashFlow.SignedString(),
		s.TotalEquity.String(),
		"",
		"",
	})

	doc.Table(md.TableSet{
		Header: []string{"Property", "Value", "NOI", "Cash Flow", "Equity", "Cap Rate", "DSCR"},
		Rows:   rows,
	})

	return doc.String()
}
