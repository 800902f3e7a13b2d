package ui

import (
	"fmt"

	"github.com/piwi3910/LightLine/internal/model"
)

// totalsRow is one line of the totals panel.
type totalsRow struct {
	Label string
	Value string
	Bold  bool
}

// totalsRows formats per-side lengths, light counts and the quote for display.
// Sides with nothing measured are still listed so the panel keeps its shape.
func totalsRows(plan model.LightPlan, quote model.Quote) []totalsRow {
	rows := make([]totalsRow, 0, 10)
	for _, s := range model.AllSides() {
		rows = append(rows, totalsRow{Label: s.Label(), Value: formatFeet(plan.Totals.Get(s))})
	}
	rows = append(rows,
		totalsRow{Label: "Total", Value: formatFeet(plan.Totals.Grand()), Bold: true},
		totalsRow{Label: "Lights Placed", Value: fmt.Sprintf("%d", plan.PlacedLights)},
		totalsRow{Label: "Lights to Order", Value: fmt.Sprintf("%d (+%.0f%% waste)", plan.Estimate.LightsWithWaste, plan.Estimate.WastePercent), Bold: true},
		totalsRow{Label: "Retail", Value: formatMoney(quote.RetailTotal)},
		totalsRow{Label: "Sale", Value: formatMoney(quote.SaleTotal), Bold: true},
		totalsRow{Label: "Savings", Value: formatMoney(quote.TotalSavings)},
	)
	return rows
}

func formatFeet(ft float64) string {
	return fmt.Sprintf("%.1f ft", ft)
}

func formatMoney(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}
