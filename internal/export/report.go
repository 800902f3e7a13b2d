// Package export writes measurement reports and workbooks for a job.
package export

import (
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/LightLine/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	qrSize       = 40.0
)

// ExportReport generates a two page PDF: a scaled drawing of every traced
// path with its lights and fixtures, then a summary with per-side
// lengths, the light estimate, the quote and a QR-coded job summary.
func ExportReport(path string, job model.Job, plan model.LightPlan, quote model.Quote) error {
	if len(job.Paths) == 0 {
		return fmt.Errorf("no paths to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(job.Name, false)

	pdf.AddPage()
	renderDrawingPage(pdf, job, plan)

	pdf.AddPage()
	if err := renderSummaryPage(pdf, job, plan, quote); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}

	return pdf.OutputFileAndClose(path)
}

// bounds is an axis-aligned box in drawing pixels.
type bounds struct {
	minX, minY, maxX, maxY float64
}

func (b bounds) width() float64  { return b.maxX - b.minX }
func (b bounds) height() float64 { return b.maxY - b.minY }

// jobBounds returns the box enclosing every path point and fixture.
func jobBounds(job model.Job) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	grow := func(p model.Point) {
		b.minX = math.Min(b.minX, p.X)
		b.minY = math.Min(b.minY, p.Y)
		b.maxX = math.Max(b.maxX, p.X)
		b.maxY = math.Max(b.maxY, p.Y)
	}
	for _, p := range job.Paths {
		for _, pt := range p.Points {
			grow(pt)
		}
	}
	for _, f := range job.Fixtures {
		grow(f.Point)
	}
	return b
}

// fitScale returns the mm-per-pixel factor that fits b into w x h.
// Degenerate extents (a single vertical or horizontal line) fall back to
// the other axis.
func fitScale(b bounds, w, h float64) float64 {
	sx, sy := math.Inf(1), math.Inf(1)
	if b.width() > 0 {
		sx = w / b.width()
	}
	if b.height() > 0 {
		sy = h / b.height()
	}
	s := math.Min(sx, sy)
	if math.IsInf(s, 1) {
		return 1
	}
	return s
}

// renderDrawingPage draws every path colored by side, with light dots
// colored by the job's color scheme and fixture markers.
func renderDrawingPage(pdf *fpdf.Fpdf, job model.Job, plan model.LightPlan) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s - Roofline Layout", job.Name)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Paths: %d | Total: %.1f ft | Lights drawn: %d | Spacing: %g in",
		len(job.Paths), plan.Totals.Grand(), plan.PlacedLights, job.Lights.SpacingInches)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	b := jobBounds(job)
	scale := fitScale(b, drawWidth, drawHeight)
	offsetX := marginLeft + (drawWidth-b.width()*scale)/2
	offsetY := drawAreaTop
	toPage := func(p model.Point) (float64, float64) {
		return offsetX + (p.X-b.minX)*scale, offsetY + (p.Y-b.minY)*scale
	}

	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.2)
	pdf.Rect(marginLeft, drawAreaTop, drawWidth, drawHeight, "D")

	pdf.SetLineWidth(0.8)
	for _, p := range job.Paths {
		c := p.Side.Color()
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		for i := 1; i < len(p.Points); i++ {
			x1, y1 := toPage(p.Points[i-1])
			x2, y2 := toPage(p.Points[i])
			pdf.Line(x1, y1, x2, y2)
		}
	}

	scheme, _ := model.FindColorScheme(job.Lights.ColorScheme)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.1)
	bulb := 0
	for _, pp := range plan.Paths {
		for _, l := range pp.Lights {
			c := scheme.BulbColor(bulb)
			bulb++
			pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
			x, y := toPage(l)
			pdf.Circle(x, y, 0.9, "FD")
		}
	}

	for _, f := range job.Fixtures {
		x, y := toPage(f.Point)
		renderFixture(pdf, f.Kind, x, y)
	}

	drawSideLegend(pdf, pageHeight-marginBottom-legendHeight+4)
}

// renderFixture draws a labeled square marker for a controller or power supply.
func renderFixture(pdf *fpdf.Fpdf, kind model.FixtureKind, x, y float64) {
	label := "PS"
	pdf.SetFillColor(244, 67, 54)
	if kind == model.FixtureController {
		label = "C"
		pdf.SetFillColor(33, 33, 33)
	}
	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(0.3)
	pdf.Rect(x-3, y-3, 6, 6, "FD")

	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(x-3, y-1.5)
	pdf.CellFormat(6, 3, label, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawSideLegend draws a color swatch for each side.
func drawSideLegend(pdf *fpdf.Fpdf, y float64) {
	pdf.SetFont("Helvetica", "", 8)
	x := marginLeft
	for _, s := range model.AllSides() {
		c := s.Color()
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.Rect(x, y, 4, 4, "F")
		pdf.SetXY(x+5, y)
		pdf.CellFormat(30, 4, s.Label(), "", 0, "L", false, 0, "")
		x += 40
	}
}

// renderSummaryPage renders the measurement table, light estimate and quote.
func renderSummaryPage(pdf *fpdf.Fpdf, job model.Job, plan model.LightPlan, quote model.Quote) error {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Lighting Estimate", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + 12
	header := []string{job.Name, job.Address, time.Now().Format("January 2, 2006")}
	for _, line := range header {
		if line == "" {
			continue
		}
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(180, 5, line, "", 0, "L", false, 0, "")
		y += 5
	}
	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Measurements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{50, 25, 35}
	headers := []string{"Side", "Paths", "Length (ft)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, h := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pathCounts := map[model.Side]int{}
	for _, p := range job.Paths {
		pathCounts[p.Side]++
	}

	pdf.SetFont("Helvetica", "", 9)
	rows := make([][]string, 0, 5)
	for _, s := range model.AllSides() {
		rows = append(rows, []string{s.Label(), fmt.Sprintf("%d", pathCounts[s]), fmt.Sprintf("%.1f", plan.Totals.Get(s))})
	}
	rows = append(rows, []string{"Total", fmt.Sprintf("%d", len(job.Paths)), fmt.Sprintf("%.1f", plan.Totals.Grand())})

	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		if i == len(rows)-1 {
			pdf.SetFont("Helvetica", "B", 9)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}
	y += 8

	est := plan.Estimate
	renderKeyValues(pdf, marginLeft, y, "Lights", []keyValue{
		{"Spacing", fmt.Sprintf("%g in", job.Lights.SpacingInches)},
		{"Lights needed", fmt.Sprintf("%d", est.TotalLights)},
		{"Waste factor", fmt.Sprintf("%g%%", est.WastePercent)},
		{"Lights to order", fmt.Sprintf("%d", est.LightsWithWaste)},
		{"Color scheme", job.Lights.ColorScheme},
		{"Animation", job.Lights.Animation},
	})

	renderKeyValues(pdf, marginLeft+130, marginTop+12, "Quote", []keyValue{
		{"Retail", fmt.Sprintf("$%.2f", quote.RetailTotal)},
		{"Your price", fmt.Sprintf("$%.2f", quote.SaleTotal)},
		{"You save", fmt.Sprintf("$%.2f", quote.TotalSavings)},
		{"Controller", fmt.Sprintf("$%.2f", job.Pricing.ControllerCost)},
	})

	summary := BuildSummary(job, plan, quote)
	if err := renderSummaryQR(pdf, pageWidth-marginRight-qrSize, marginTop+12, qrSize, summary); err != nil {
		return err
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by LightLine - Roofline Lighting Estimator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}

type keyValue struct {
	label string
	value string
}

func renderKeyValues(pdf *fpdf.Fpdf, x, y float64, title string, items []keyValue) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(100, 7, title, "", 0, "L", false, 0, "")
	y += 9

	for _, item := range items {
		pdf.SetXY(x+5, y)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(45, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		y += 7
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
