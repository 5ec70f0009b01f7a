package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpcaulfield/rentfolio"
)

// LogMarkdown renders the ledger history of one property: its leases and its
// expense records, in the order they apply.
func LogMarkdown(p *rentfolio.Property) string {
	var b strings.Builder

	name := p.Name
	if name == "" {
		name = p.ID
	}
	fmt.Fprintf(&b, "# History of %s\n\n", name)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Leases\n\n")
		fmt.Fprintln(w, "| Tenant | Rent | From | To |")
		fmt.Fprintln(w, "|:---|---:|:---|:---|")
		for _, lease := range p.Tenants {
			end := "Active"
			if !lease.Active() {
				end = lease.LeaseEnd.String()
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
				lease.Tenant, lease.Rent, lease.LeaseStart, end)
		}
		fmt.Fprintln(w)
		return len(p.Tenants) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Expenses\n\n")
		fmt.Fprintln(w, "| Date | Category | Amount | Booking |")
		fmt.Fprintln(w, "|:---|:---|---:|:---|")
		for _, e := range p.Expenses {
			booking := "monthly"
			if e.Annual() {
				booking = "annual"
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", e.Date, e.Category, e.Amount, booking)
		}
		fmt.Fprintln(w)
		return len(p.Expenses) > 0
	})

	return b.String()
}
