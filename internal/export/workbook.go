package export

import (
	"fmt"

	"github.com/piwi3910/LightLine/internal/model"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SheetSummary = "Summary"
	SheetPaths   = "Paths"
	SheetLights  = "Lights"
)

// ExportWorkbook writes the job's measurements to an xlsx file with a
// summary sheet, one row per traced point and one row per placed light.
// The Paths sheet uses the same side, path, x, y columns the importer reads.
func ExportWorkbook(path string, job model.Job, plan model.LightPlan) error {
	if len(job.Paths) == 0 {
		return fmt.Errorf("no paths to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	for _, name := range []string{SheetPaths, SheetLights} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	summary := [][]interface{}{
		{"Job", job.Name},
		{"Address", job.Address},
		{"Spacing (in)", job.Lights.SpacingInches},
	}
	for _, s := range model.AllSides() {
		summary = append(summary, []interface{}{s.Label() + " (ft)", round(plan.Totals.Get(s), 2)})
	}
	summary = append(summary,
		[]interface{}{"Total (ft)", round(plan.Totals.Grand(), 2)},
		[]interface{}{"Lights needed", plan.Estimate.TotalLights},
		[]interface{}{"Waste (%)", plan.Estimate.WastePercent},
		[]interface{}{"Lights to order", plan.Estimate.LightsWithWaste},
	)
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return fmt.Errorf("failed to style summary: %w", err)
	}

	pathRows := [][]interface{}{{"Side", "Path", "X", "Y"}}
	for _, p := range job.Paths {
		for _, pt := range p.Points {
			pathRows = append(pathRows, []interface{}{string(p.Side), p.ID, pt.X, pt.Y})
		}
	}
	if err := writeRows(f, SheetPaths, pathRows); err != nil {
		return err
	}

	lightRows := [][]interface{}{{"Side", "Path", "Light", "X", "Y"}}
	for _, pp := range plan.Paths {
		for i, l := range pp.Lights {
			lightRows = append(lightRows, []interface{}{string(pp.Side), pp.PathID, i + 1, l.X, l.Y})
		}
	}
	if err := writeRows(f, SheetLights, lightRows); err != nil {
		return err
	}

	for _, sheet := range []string{SheetPaths, SheetLights} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return fmt.Errorf("failed to style %s header: %w", sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to create cell reference: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
