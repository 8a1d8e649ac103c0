package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tabsplit/tabsplit/internal/bill"
)

// RenderReport renders the final bill report: service charge, each diner
// with tip rate and personal items priced, the shared item pool, and a
// totals table sorted by total descending. All money values carry exactly
// two decimal places.
func RenderReport(s *bill.Splitter) (string, error) {
	totals, err := s.Totals()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(RenderTitle("THE DAMAGE"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Service charge: %s\n\n", FormatPercent(s.ServicePercent())))

	for _, d := range s.Diners() {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			headerStyle.Render(d.Name()),
			mutedStyle.Render("tip "+FormatPercent(d.TipPercent()))))
		personal := d.PersonalItems()
		if len(personal) == 0 {
			b.WriteString(mutedStyle.Render("    no personal items"))
			b.WriteString("\n")
		}
		for _, it := range personal {
			b.WriteString(fmt.Sprintf("    %-20s %s\n", it.Name(), FormatMoney(it.Price())))
		}
		b.WriteString("\n")
	}

	shared := s.SharedItems()
	if len(shared) > 0 {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render("Shared"))
		b.WriteString("\n")
		var pool float64
		for _, it := range shared {
			pool += it.Price()
			b.WriteString(fmt.Sprintf("    %-20s %s\n", it.Name(), FormatMoney(it.Price())))
		}
		b.WriteString(fmt.Sprintf("    %-20s %s\n", "pooled", FormatMoney(pool)))
		b.WriteString("\n")
	}

	b.WriteString(RenderTable(totalsTable(totals)))
	return b.String(), nil
}

// totalsTable builds the per-diner totals table, sorted by total descending.
func totalsTable(totals []bill.DinerTotal) Table {
	sorted := make([]bill.DinerTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})

	rows := make([][]string, 0, len(sorted)+2)
	var grand float64
	for _, dt := range sorted {
		grand += dt.Total
		rows = append(rows, []string{
			dt.Name,
			FormatMoney(dt.Subtotal),
			FormatMoney(dt.ServiceCharge),
			FormatMoney(dt.Tip),
			FormatMoney(dt.Total),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", "", FormatMoney(grand)})

	return Table{
		Title:   "Totals",
		Headers: []string{"Diner", "Subtotal", "Service", "Tip", "Total"},
		Rows:    rows,
	}
}
