package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/LightLine/internal/model"
	"github.com/piwi3910/LightLine/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.2f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	zoomEntry := widget.NewEntry()
	zoomEntry.SetText(strconv.Itoa(cfg.DefaultZoom))
	zoomEntry.OnChanged = func(text string) {
		if v, err := strconv.Atoi(text); err == nil {
			cfg.DefaultZoom = v
		}
	}

	spacingSelect := widget.NewSelect(model.SpacingLabels(), func(selected string) {
		if v, ok := model.SpacingFromLabel(selected); ok {
			cfg.DefaultSpacingInches = v
		}
	})
	for _, o := range model.SpacingOptions {
		if float64(o.Value) == cfg.DefaultSpacingInches {
			spacingSelect.SetSelected(o.Label)
		}
	}

	schemeSelect := widget.NewSelect(model.SchemeNames(), func(selected string) {
		cfg.DefaultColorScheme = selected
	})
	schemeSelect.SetSelected(cfg.DefaultColorScheme)

	modeSelect := widget.NewSelect([]string{string(model.DrawingStraight), string(model.DrawingFreehand)}, func(selected string) {
		if m, ok := model.ParseDrawingMode(selected); ok {
			cfg.DefaultDrawingMode = m
		}
	})
	modeSelect.SetSelected(string(cfg.DefaultDrawingMode))

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Map Zoom", zoomEntry),
		widget.NewFormItem("Default Spacing", spacingSelect),
		widget.NewFormItem("Default Waste (%)", floatEntry(&cfg.DefaultWastePercent)),
		widget.NewFormItem("Default Color Scheme", schemeSelect),
		widget.NewFormItem("Default Drawing Mode", modeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Retail Price / ft", floatEntry(&cfg.DefaultPricing.RetailPerFoot)),
		widget.NewFormItem("Sale Price / ft", floatEntry(&cfg.DefaultPricing.SalePerFoot)),
		widget.NewFormItem("Controller Cost", floatEntry(&cfg.DefaultPricing.ControllerCost)),
		widget.NewFormItem("Extra Discount", floatEntry(&cfg.DefaultPricing.ExtraDiscount)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			a.applyTheme()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Defaults apply to the next new job.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 520))
	d.Show()
}

// showImportExportDialog displays the backup export/import dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		a.syncJob()
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.job); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("Settings and the current job exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("lightline-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and open the first saved job.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.applyTheme()
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					if len(backup.Jobs) > 0 {
						a.jobPath = ""
						a.loadJob(backup.Jobs[0])
					}
					a.SetupMenus()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and the current job to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(a.configPath, a.config)
}

// applyTheme installs the compact theme with the configured variant.
func (a *App) applyTheme() {
	if a.fyneApp == nil {
		return
	}
	switch a.config.Theme {
	case "light":
		a.fyneApp.Settings().SetTheme(NewLightLineThemeWithVariant(theme.VariantLight))
	case "dark":
		a.fyneApp.Settings().SetTheme(NewLightLineThemeWithVariant(theme.VariantDark))
	default:
		a.fyneApp.Settings().SetTheme(NewLightLineTheme())
	}
}
