package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/LightLine/internal/engine"
	"github.com/piwi3910/LightLine/internal/export"
	pathimporter "github.com/piwi3910/LightLine/internal/importer"
	"github.com/piwi3910/LightLine/internal/model"
	"github.com/piwi3910/LightLine/internal/project"
	"github.com/piwi3910/LightLine/internal/recorder"
	"github.com/piwi3910/LightLine/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string

	job     model.Job
	jobPath string
	store   *recorder.Store
	rec     *recorder.Recorder

	// Reference calibration captures clicks instead of the recorder.
	calibrating bool
	calPoints   []model.Point

	// UI references for dynamic updates
	canvas          *widgets.RoofCanvas
	sidebar         *fyne.Container
	totalsContainer *fyne.Container
	scaleLabel      *widget.Label
	status          *widget.Label
}

func NewApp(fyneApp fyne.App, window fyne.Window, config model.AppConfig) *App {
	a := &App{
		fyneApp:    fyneApp,
		window:     window,
		config:     config,
		configPath: project.DefaultConfigPath(),
		store:      recorder.NewStore(),
	}
	a.rec = recorder.New(a.store, recorder.WithCommitHandler(a.onCommit))
	a.job = a.newJob()
	a.applyTheme()
	return a
}

// SetConfigPath changes where settings and the recent-jobs list are saved.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// OpenJob loads a saved job file, reporting failures in a dialog.
func (a *App) OpenJob(path string) {
	a.openJobFile(path)
}

func (a *App) newJob() model.Job {
	job := model.NewJob()
	a.config.ApplyToJob(&job)
	return job
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := fyne.NewMenuItem("Open Recent", nil)
	recent.ChildMenu = a.recentJobsMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Job", a.resetJob),
		fyne.NewMenuItem("Open Job...", a.openJob),
		recent,
		fyne.NewMenuItem("Save Job...", a.saveJob),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Load Background Image...", a.loadBackground),
		fyne.NewMenuItem("Import Paths from CSV...", a.importCSV),
		fyne.NewMenuItem("Import Paths from Excel...", a.importExcel),
		fyne.NewMenuItem("Import Paths from DXF...", a.importDXF),
		fyne.NewMenuItem("Import SVG Path Data...", a.importSVG),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", a.exportPDF),
		fyne.NewMenuItem("Export Excel Workbook...", a.exportWorkbook),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Clear All Paths", a.clearAll),
		fyne.NewMenuItem("Cancel Current Action", a.cancelAction),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Calibrate Scale from Reference...", a.startCalibration),
		fyne.NewMenuItem("Compare Spacings...", a.showCompareDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) recentJobsMenu() *fyne.Menu {
	if len(a.config.RecentJobs) == 0 {
		item := fyne.NewMenuItem("(none)", nil)
		item.Disabled = true
		return fyne.NewMenu("", item)
	}
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentJobs))
	for _, p := range a.config.RecentJobs {
		path := p
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			a.openJobFile(path)
		}))
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About LightLine",
		"LightLine - Roofline Light Planner\n\n"+
			"Trace rooflines over an aerial photo, measure each side\n"+
			"of the building and lay out permanent lights along them.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.canvas = widgets.NewRoofCanvas(a, a.scene, 800, 600)
	a.canvas.OnChanged = a.refreshTotals
	a.status = widget.NewLabel("Click two points to measure a straight run.")
	a.scaleLabel = widget.NewLabel("")
	a.totalsContainer = container.NewVBox()
	a.sidebar = container.NewStack()

	a.rebuildSidebar()
	a.applyScale()

	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.DocumentCreateIcon(), "New job", a.resetJob),
		newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open job", a.openJob),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save job", a.saveJob),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.FileImageIcon(), "Load background image", a.loadBackground),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export PDF report", a.exportPDF),
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.ListIcon(), "Compare spacings", a.showCompareDialog),
		newIconButtonWithTooltip(theme.ContentClearIcon(), "Clear all paths", a.clearAll),
		layout.NewSpacer(),
		a.scaleLabel,
	)

	split := container.NewHSplit(
		container.NewVScroll(a.sidebar),
		container.NewScroll(a.canvas),
	)
	split.Offset = 0.28

	content := container.NewBorder(toolbar, a.status, nil, nil, split)
	return fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas())
}

// ─── Sidebar ───────────────────────────────────────────────

func (a *App) rebuildSidebar() {
	a.sidebar.RemoveAll()
	a.sidebar.Add(container.NewVBox(
		a.buildDrawingCard(),
		a.buildScaleCard(),
		a.buildLightsCard(),
		a.buildPricingCard(),
		widget.NewCard("Totals", "", a.totalsContainer),
	))
	a.refreshTotals()
}

func (a *App) buildDrawingCard() fyne.CanvasObject {
	sideLabels := make([]string, 0, len(model.AllSides()))
	for _, s := range model.AllSides() {
		sideLabels = append(sideLabels, s.Label())
	}
	sideSelect := widget.NewSelect(sideLabels, func(selected string) {
		for _, s := range model.AllSides() {
			if s.Label() == selected {
				a.rec.SetSide(s)
			}
		}
	})
	sideSelect.SetSelected(a.rec.Side().Label())

	modeRadio := widget.NewRadioGroup([]string{"Straight", "Freehand"}, func(selected string) {
		mode := model.DrawingStraight
		hint := "Click two points to measure a straight run."
		if selected == "Freehand" {
			mode = model.DrawingFreehand
			hint = "Press and drag to trace a curved run."
		}
		a.job.DrawingMode = mode
		a.rec.SetDrawingMode(mode)
		a.setStatus(hint)
		a.canvas.Refresh()
	})
	modeRadio.Horizontal = true
	if a.job.DrawingMode == model.DrawingFreehand {
		modeRadio.SetSelected("Freehand")
	} else {
		modeRadio.SetSelected("Straight")
	}

	controllerBtn := widget.NewButton("Place Controller", func() {
		a.rec.BeginControllerPlacement()
		a.setStatus("Click where the controller will be mounted.")
	})
	powerBtn := widget.NewButton("Place Power Supply", func() {
		a.rec.BeginPowerSupplyPlacement()
		a.setStatus("Click where the power supply will be mounted.")
	})

	return widget.NewCard("Drawing", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Side"), sideSelect,
			widget.NewLabel("Mode"), modeRadio,
		),
		container.NewGridWithColumns(2, controllerBtn, powerBtn),
	))
}

func (a *App) buildScaleCard() fyne.CanvasObject {
	s := &a.job.Scale

	zoomLabels := make([]string, len(model.ZoomLevels))
	for i, z := range model.ZoomLevels {
		zoomLabels[i] = z.Label
	}
	zoomSelect := widget.NewSelect(zoomLabels, nil)
	for _, z := range model.ZoomLevels {
		if z.Value == s.Zoom {
			zoomSelect.SetSelected(z.Label)
		}
	}
	// Set after the initial selection so a reference-calibrated job keeps its source.
	zoomSelect.OnChanged = func(selected string) {
		for _, z := range model.ZoomLevels {
			if z.Label == selected {
				s.Zoom = z.Value
				s.Source = model.ScaleFromMap
				a.applyScale()
			}
		}
	}

	latEntry := widget.NewEntry()
	latEntry.SetText(fmt.Sprintf("%.5f", s.Latitude))
	latEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v >= -85 && v <= 85 {
			s.Latitude = v
			a.job.Location.Lat = v
			if s.Source == model.ScaleFromMap {
				a.applyScale()
			}
		}
	}

	addressEntry := widget.NewEntry()
	addressEntry.SetPlaceHolder("Property address")
	addressEntry.SetText(a.job.Address)
	addressEntry.OnChanged = func(text string) { a.job.Address = text }

	return widget.NewCard("Scale", "", container.NewVBox(
		container.NewGridWithColumns(2,
			widget.NewLabel("Address"), addressEntry,
			widget.NewLabel("Map Zoom"), zoomSelect,
			widget.NewLabel("Latitude"), latEntry,
		),
		widget.NewButton("Calibrate from Reference...", a.startCalibration),
	))
}

func (a *App) buildLightsCard() fyne.CanvasObject {
	ls := &a.job.Lights

	spacingSelect := widget.NewSelect(model.SpacingLabels(), func(selected string) {
		if v, ok := model.SpacingFromLabel(selected); ok {
			ls.SpacingInches = v
			a.refreshTotals()
			a.canvas.Refresh()
		}
	})
	for _, o := range model.SpacingOptions {
		if float64(o.Value) == ls.SpacingInches {
			spacingSelect.SetSelected(o.Label)
		}
	}

	wasteEntry := widget.NewEntry()
	wasteEntry.SetText(fmt.Sprintf("%.0f", ls.WastePercent))
	wasteEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v >= 0 {
			ls.WastePercent = v
			a.refreshTotals()
		}
	}

	schemeSelect := widget.NewSelect(model.SchemeNames(), func(selected string) {
		scheme, _ := model.FindColorScheme(selected)
		ls.ColorScheme = scheme.Name
		a.canvas.SetColorScheme(scheme)
	})
	schemeSelect.SetSelected(ls.ColorScheme)

	animationSelect := widget.NewSelect(model.AnimationNames(), func(selected string) {
		ls.Animation = selected
	})
	animationSelect.SetSelected(ls.Animation)

	speed := widget.NewSlider(1, 10)
	speed.Step = 1
	speed.SetValue(float64(ls.AnimationSpeed))
	speed.OnChanged = func(v float64) { ls.AnimationSpeed = int(v) }

	bulbEntry := widget.NewEntry()
	bulbEntry.SetText(fmt.Sprintf("%.1f", ls.BulbSizeInches))
	bulbEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
			ls.BulbSizeInches = v
			a.canvas.SetBulbSize(v)
		}
	}

	return widget.NewCard("Lights", "", container.NewGridWithColumns(2,
		widget.NewLabel("Spacing"), spacingSelect,
		widget.NewLabel("Waste (%)"), wasteEntry,
		widget.NewLabel("Color Scheme"), schemeSelect,
		widget.NewLabel("Animation"), animationSelect,
		widget.NewLabel("Speed"), speed,
		widget.NewLabel("Bulb Size (in)"), bulbEntry,
	))
}

func (a *App) buildPricingCard() fyne.CanvasObject {
	p := &a.job.Pricing

	moneyEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.2f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil && v >= 0 {
				*val = v
				a.refreshTotals()
			}
		}
		return e
	}

	return widget.NewCard("Pricing", "", container.NewGridWithColumns(2,
		widget.NewLabel("Retail / ft"), moneyEntry(&p.RetailPerFoot),
		widget.NewLabel("Sale / ft"), moneyEntry(&p.SalePerFoot),
		widget.NewLabel("Controller"), moneyEntry(&p.ControllerCost),
		widget.NewLabel("Extra Discount"), moneyEntry(&p.ExtraDiscount),
	))
}

func (a *App) refreshTotals() {
	if a.totalsContainer == nil {
		return
	}
	plan, quote := a.plan()
	a.totalsContainer.RemoveAll()
	for _, row := range totalsRows(plan, quote) {
		value := widget.NewLabel(row.Value)
		if row.Bold {
			value.TextStyle = fyne.TextStyle{Bold: true}
		}
		a.totalsContainer.Add(container.NewGridWithColumns(2, widget.NewLabel(row.Label), value))
	}
	a.totalsContainer.Refresh()
}

func (a *App) setStatus(msg string) {
	if a.status != nil {
		a.status.SetText(msg)
	}
}

// ─── Drawing ───────────────────────────────────────────────

// PointerDown routes a click to the calibration capture or the recorder.
func (a *App) PointerDown(x, y float64) {
	if a.calibrating {
		a.calPoints = append(a.calPoints, model.Point{X: x, Y: y})
		if len(a.calPoints) == 2 {
			a.finishCalibration()
		}
		return
	}
	a.rec.PointerDown(x, y)
	if a.rec.Mode() == recorder.ModeAwaitingSecondPoint {
		a.setStatus("Click the end point of the run.")
	}
}

func (a *App) PointerMove(x, y float64) { a.rec.PointerMove(x, y) }
func (a *App) PointerUp()               { a.rec.PointerUp() }
func (a *App) PointerLeave()            { a.rec.PointerLeave() }

func (a *App) scene() recorder.Scene {
	s := recorder.BuildScene(a.store, a.rec, a.job.Lights.SpacingInches)
	if a.calibrating && len(a.calPoints) == 1 {
		p := a.calPoints[0]
		s.PendingMarker = &p
	}
	return s
}

func (a *App) onCommit(c recorder.Commit) {
	a.setStatus(fmt.Sprintf("Added %.1f ft to %s.", c.RealLength, c.Side.Label()))
}

func (a *App) cancelAction() {
	a.calibrating = false
	a.calPoints = nil
	a.rec.Cancel()
	a.setStatus("Cancelled.")
	a.canvas.Refresh()
}

func (a *App) clearAll() {
	a.rec.Clear()
	a.setStatus("All paths cleared.")
	a.canvas.Refresh()
	a.refreshTotals()
}

// ─── Scale ─────────────────────────────────────────────────

// applyScale pushes the job's scale to the recorder. An invalid scale is
// reported and the previous factor stays active.
func (a *App) applyScale() {
	s := engine.Resolve(a.job.Scale)
	if !engine.ValidScale(s) {
		log.Printf("[ui] ignoring invalid scale %v from %+v", s, a.job.Scale)
		a.setStatus("Scale could not be computed from the current settings.")
		return
	}
	a.rec.SetScale(s)
	if a.scaleLabel != nil {
		a.scaleLabel.SetText(fmt.Sprintf("%.4f ft/px (%s)", s, a.job.Scale.Source))
	}
	a.refreshTotals()
	if a.canvas != nil {
		a.canvas.Refresh()
	}
}

func (a *App) startCalibration() {
	a.calibrating = true
	a.calPoints = nil
	a.setStatus("Click both ends of an object whose length you know.")
}

func (a *App) finishCalibration() {
	points := a.calPoints
	a.calibrating = false
	a.calPoints = nil

	feetEntry := widget.NewEntry()
	feetEntry.SetPlaceHolder("Length in feet")

	form := dialog.NewForm("Reference Length", "Apply", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Real length (ft)", feetEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			feet, _ := strconv.ParseFloat(feetEntry.Text, 64)
			scale := engine.ScaleFromReferencePath(points, feet)
			if feet <= 0 || !engine.ValidScale(scale) {
				dialog.ShowError(fmt.Errorf("reference needs two distinct points and a length > 0"), a.window)
				return
			}
			a.job.Scale.Source = model.ScaleFromReference
			a.job.Scale.ReferencePixels = engine.PixelLength(points)
			a.job.Scale.ReferenceFeet = feet
			a.applyScale()
			a.setStatus(fmt.Sprintf("Scale calibrated: %.4f ft/px.", scale))
		},
		a.window,
	)
	form.Resize(fyne.NewSize(350, 180))
	form.Show()
}

// ─── Plan / Compare ────────────────────────────────────────

func (a *App) plan() (model.LightPlan, model.Quote) {
	planner := engine.New(a.job.Lights)
	plan := planner.Plan(a.store.Paths(), a.rec.Scale())
	return plan, planner.Quote(plan, a.job.Pricing)
}

func (a *App) showCompareDialog() {
	if a.store.Len() == 0 {
		dialog.ShowInformation("Nothing to compare", "Draw or import at least one path first.", a.window)
		return
	}
	results := engine.CompareSpacings(a.store.Paths(), a.rec.Scale(), a.job.Lights, engine.DefaultSpacings())
	headers := []string{"Spacing", "Placed", "Order", "With Waste"}

	table := widget.NewTable(
		func() (int, int) { return len(results) + 1, len(headers) },
		func() fyne.CanvasObject { return widget.NewLabel("With Waste (00)") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(headers[id.Col])
				return
			}
			r := results[id.Row-1]
			label.TextStyle = fyne.TextStyle{}
			switch id.Col {
			case 0:
				label.SetText(r.Name)
			case 1:
				label.SetText(strconv.Itoa(r.PlacedLights))
			case 2:
				label.SetText(strconv.Itoa(r.TotalLights))
			case 3:
				label.SetText(strconv.Itoa(r.LightsWithWaste))
			}
		},
	)

	d := dialog.NewCustom("Compare Spacings", "Close", table, a.window)
	d.Resize(fyne.NewSize(560, 260))
	d.Show()
}

// ─── Jobs ──────────────────────────────────────────────────

func (a *App) syncJob() {
	a.job.Paths = a.store.Paths()
	a.job.Fixtures = a.rec.Fixtures()
	a.job.DrawingMode = a.rec.DrawingMode()
}

func (a *App) resetJob() {
	a.job = a.newJob()
	a.jobPath = ""
	a.rec.Clear()
	a.rec.SetDrawingMode(a.job.DrawingMode)
	a.rebuildSidebar()
	a.applyScale()
	a.canvas.Refresh()
}

func (a *App) loadJob(job model.Job) {
	a.job = job
	n := a.rec.Restore(job.Paths, job.Fixtures)
	a.rec.SetDrawingMode(job.DrawingMode)
	if scheme, ok := model.FindColorScheme(job.Lights.ColorScheme); ok {
		a.canvas.SetColorScheme(scheme)
	}
	a.canvas.SetBulbSize(job.Lights.BulbSizeInches)
	a.rebuildSidebar()
	a.applyScale()
	a.canvas.Refresh()
	log.Printf("[ui] loaded job %q with %d paths", job.Name, n)
}

func (a *App) saveJob() {
	a.syncJob()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveJob(path, a.job); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.jobPath = path
		a.rememberJob(path)
		a.setStatus("Saved " + filepath.Base(path))
	}, a.window)
	d.SetFileName(project.WithJobExtension(a.job.Name))
	d.Show()
}

func (a *App) openJob() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openJobFile(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{project.JobExtension}))
	d.Show()
}

func (a *App) openJobFile(path string) {
	job, err := project.LoadJob(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.jobPath = path
	a.loadJob(job)
	a.rememberJob(path)
}

func (a *App) rememberJob(path string) {
	a.config.AddRecentJob(path)
	if err := a.saveConfig(); err != nil {
		log.Printf("[ui] failed to save recent jobs: %v", err)
	}
	a.SetupMenus()
}

func (a *App) loadBackground() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.canvas.SetBackground(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	d.Show()
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportPDF() {
	if a.store.Len() == 0 {
		dialog.ShowInformation("Nothing to export", "Draw or import at least one path first.", a.window)
		return
	}
	a.syncJob()
	plan, quote := a.plan()
	a.saveExport(a.job.Name+".pdf", func(path string) error {
		return export.ExportReport(path, a.job, plan, quote)
	})
}

func (a *App) exportWorkbook() {
	if a.store.Len() == 0 {
		dialog.ShowInformation("Nothing to export", "Draw or import at least one path first.", a.window)
		return
	}
	a.syncJob()
	plan, _ := a.plan()
	a.saveExport(a.job.Name+".xlsx", func(path string) error {
		return export.ExportWorkbook(path, a.job, plan)
	})
}

func (a *App) saveExport(defaultName string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(pathimporter.ImportCSV(reader.URI().Path(), a.rec.Side()))
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(pathimporter.ImportExcel(reader.URI().Path(), a.rec.Side()))
	}, a.window)
}

func (a *App) importDXF() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(pathimporter.ImportDXF(reader.URI().Path(), a.rec.Side()))
	}, a.window)
}

func (a *App) importSVG() {
	dataEntry := widget.NewMultiLineEntry()
	dataEntry.SetPlaceHolder("M 10 10 L 200 10 L 200 120")
	dataEntry.SetMinRowsVisible(4)

	form := dialog.NewForm("Import SVG Path", "Import", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Path data (d)", dataEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			a.handleImportResult(pathimporter.ImportSVGPath(dataEntry.Text, a.rec.Side()))
		},
		a.window,
	)
	form.Resize(fyne.NewSize(500, 250))
	form.Show()
}

func (a *App) handleImportResult(result pathimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Warnings) > 0 {
		log.Printf("[ui] import warnings: %v", result.Warnings)
	}

	if len(result.Paths) == 0 {
		return
	}

	added := 0
	for _, p := range result.Paths {
		if a.store.Commit(p) {
			added++
		}
	}
	a.canvas.Refresh()
	a.refreshTotals()

	msg := fmt.Sprintf("Successfully imported %d paths (%d points).", added, result.PointCount())
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}
