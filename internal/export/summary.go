package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/LightLine/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// JobSummary is the compact job record encoded into the report's QR code.
type JobSummary struct {
	JobID           string           `json:"job"`
	Name            string           `json:"name"`
	Address         string           `json:"address,omitempty"`
	Totals          model.SideTotals `json:"totals_ft"`
	TotalFeet       float64          `json:"total_ft"`
	SpacingInches   float64          `json:"spacing_in"`
	Lights          int              `json:"lights"`
	LightsWithWaste int              `json:"lights_with_waste"`
	ColorScheme     string           `json:"scheme"`
	SaleTotal       float64          `json:"sale_total"`
	Generated       string           `json:"generated"`
}

// BuildSummary collects the figures shown on the report into a JobSummary.
// Lengths are rounded to 0.1 ft and money to cents.
func BuildSummary(job model.Job, plan model.LightPlan, quote model.Quote) JobSummary {
	t := plan.Totals
	return JobSummary{
		JobID:   job.ID,
		Name:    job.Name,
		Address: job.Address,
		Totals: model.SideTotals{
			Front: round(t.Front, 1),
			Left:  round(t.Left, 1),
			Right: round(t.Right, 1),
			Back:  round(t.Back, 1),
		},
		TotalFeet:       round(t.Grand(), 1),
		SpacingInches:   job.Lights.SpacingInches,
		Lights:          plan.Estimate.TotalLights,
		LightsWithWaste: plan.Estimate.LightsWithWaste,
		ColorScheme:     job.Lights.ColorScheme,
		SaleTotal:       round(quote.SaleTotal, 2),
		Generated:       time.Now().UTC().Format("2006-01-02"),
	}
}

// SummaryQR encodes the summary as JSON in a PNG QR code of size pixels.
func SummaryQR(summary JobSummary, size int) ([]byte, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job summary: %w", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}

// renderSummaryQR places the summary QR code with a caption at (x, y).
func renderSummaryQR(pdf *fpdf.Fpdf, x, y, size float64, summary JobSummary) error {
	png, err := SummaryQR(summary, 256)
	if err != nil {
		return err
	}

	imgName := "qr_summary_" + summary.JobID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x, y, size, size, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x, y+size+1)
	pdf.CellFormat(size, 3, "Scan for job summary", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}
