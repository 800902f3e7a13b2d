package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/LightLine/internal/engine"
	"github.com/piwi3910/LightLine/internal/importer"
	"github.com/piwi3910/LightLine/internal/model"
	"github.com/xuri/excelize/v2"
)

// buildTestJob creates a small two-sided job with fixtures.
func buildTestJob() model.Job {
	job := model.NewJob()
	job.Name = "Test House"
	job.Address = "12 Elm Street"
	job.Lights.SpacingInches = 12
	job.Paths = []model.Path{
		model.NewPath(model.SideFront, []model.Point{{X: 0, Y: 0}, {X: 0, Y: 40}}),
		model.NewPath(model.SideFront, []model.Point{{X: 0, Y: 40}, {X: 80, Y: 40}}),
		model.NewPath(model.SideBack, []model.Point{{X: 100, Y: 0}, {X: 100, Y: 32}}),
	}
	job.Fixtures = []model.Fixture{
		{Kind: model.FixtureController, Point: model.Point{X: 10, Y: 10}},
		{Kind: model.FixturePowerSupply, Point: model.Point{X: 90, Y: 10}},
	}
	return job
}

func buildTestPlan(job model.Job) model.LightPlan {
	return engine.New(job.Lights).Plan(job.Paths, 0.5)
}

// ─── Report Tests ─────────────────────────────────────────

func TestExportReport_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	job := buildTestJob()
	plan := buildTestPlan(job)
	quote := model.CalculateQuote(plan.Totals.Grand(), job.Pricing)

	if err := ExportReport(path, job, plan, quote); err != nil {
		t.Fatalf("ExportReport returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not created: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not look like a PDF")
	}
}

func TestExportReport_NoPaths(t *testing.T) {
	job := model.NewJob()
	err := ExportReport(filepath.Join(t.TempDir(), "empty.pdf"), job, model.LightPlan{}, model.Quote{})
	if err == nil {
		t.Error("expected error for job without paths")
	}
}

func TestExportReport_SingleVerticalLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.pdf")
	job := model.NewJob()
	job.Paths = []model.Path{model.NewPath(model.SideLeft, []model.Point{{X: 5, Y: 0}, {X: 5, Y: 50}})}
	plan := buildTestPlan(job)

	if err := ExportReport(path, job, plan, model.CalculateQuote(plan.Totals.Grand(), job.Pricing)); err != nil {
		t.Fatalf("ExportReport returned error: %v", err)
	}
}

func TestFitScale(t *testing.T) {
	if s := fitScale(bounds{0, 0, 100, 50}, 200, 200); s != 2 {
		t.Errorf("expected scale 2, got %f", s)
	}
	if s := fitScale(bounds{0, 0, 0, 50}, 200, 100); s != 2 {
		t.Errorf("expected scale 2 for vertical line, got %f", s)
	}
	if s := fitScale(bounds{3, 3, 3, 3}, 200, 100); s != 1 {
		t.Errorf("expected fallback scale 1, got %f", s)
	}
}

// ─── Summary Tests ────────────────────────────────────────

func TestBuildSummary(t *testing.T) {
	job := buildTestJob()
	plan := buildTestPlan(job)
	quote := model.CalculateQuote(plan.Totals.Grand(), job.Pricing)

	s := BuildSummary(job, plan, quote)

	if s.JobID != job.ID || s.Name != "Test House" {
		t.Errorf("unexpected identity %+v", s)
	}
	// Front: (40 + 80) px * 0.5 = 60 ft, back: 32 * 0.5 = 16 ft
	if s.Totals.Front != 60 || s.Totals.Back != 16 {
		t.Errorf("unexpected totals %+v", s.Totals)
	}
	if s.TotalFeet != 76 {
		t.Errorf("expected 76 ft, got %f", s.TotalFeet)
	}
	if s.Lights != 76 || s.LightsWithWaste != 84 {
		t.Errorf("expected 76/84 lights, got %d/%d", s.Lights, s.LightsWithWaste)
	}
}

func TestSummaryQR(t *testing.T) {
	s := JobSummary{JobID: "abc", Name: "House"}
	png, err := SummaryQR(s, 128)
	if err != nil {
		t.Fatalf("SummaryQR returned error: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("expected PNG data")
	}

	raw, _ := json.Marshal(s)
	if !strings.Contains(string(raw), `"job":"abc"`) {
		t.Errorf("unexpected summary JSON %s", raw)
	}
}

// ─── Workbook Tests ───────────────────────────────────────

func TestExportWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.xlsx")
	job := buildTestJob()
	plan := buildTestPlan(job)

	if err := ExportWorkbook(path, job, plan); err != nil {
		t.Fatalf("ExportWorkbook returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != SheetSummary {
		t.Errorf("unexpected sheets %v", sheets)
	}

	rows, err := f.GetRows(SheetPaths)
	if err != nil {
		t.Fatalf("cannot read paths: %v", err)
	}
	// Header plus two points per path
	if len(rows) != 7 {
		t.Errorf("expected 7 rows, got %d", len(rows))
	}

	lights, err := f.GetRows(SheetLights)
	if err != nil {
		t.Fatalf("cannot read lights: %v", err)
	}
	if len(lights) != plan.PlacedLights+1 {
		t.Errorf("expected %d light rows, got %d", plan.PlacedLights+1, len(lights))
	}
}

func TestExportWorkbook_ReimportsPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.xlsx")
	job := buildTestJob()

	if err := ExportWorkbook(path, job, buildTestPlan(job)); err != nil {
		t.Fatalf("ExportWorkbook returned error: %v", err)
	}

	// The importer reads the first sheet, so check the Paths sheet layout
	// through a CSV rendering of it instead.
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open workbook: %v", err)
	}
	rows, _ := f.GetRows(SheetPaths)
	f.Close()

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(strings.Join(r, ",") + "\n")
	}
	result := importer.ImportCSVFromReader(strings.NewReader(sb.String()), ',', model.SideFront)

	if len(result.Paths) != len(job.Paths) {
		t.Fatalf("expected %d paths, got %d (errors: %v)", len(job.Paths), len(result.Paths), result.Errors)
	}
	if result.Paths[2].Side != model.SideBack {
		t.Errorf("expected back side on third path, got %s", result.Paths[2].Side)
	}
}

func TestExportWorkbook_NoPaths(t *testing.T) {
	if err := ExportWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), model.NewJob(), model.LightPlan{}); err == nil {
		t.Error("expected error for job without paths")
	}
}
