// LightLine - Roofline Light Planner
//
// A cross-platform desktop application for tracing rooflines over an
// aerial photo, measuring each side of a building and laying out
// permanent holiday lights along the traced runs.
//
// Build:
//   go build -o lightline ./cmd/lightline
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o lightline.exe ./cmd/lightline
//   GOOS=darwin  GOARCH=amd64 go build -o lightline-darwin ./cmd/lightline
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/LightLine/internal/model"
	"github.com/piwi3910/LightLine/internal/project"
	"github.com/piwi3910/LightLine/internal/ui"
)

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "path to the JSON or YAML settings file")
	flag.Parse()

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		log.Printf("[main] failed to load config %s, using defaults: %v", *configPath, err)
		cfg = model.DefaultAppConfig()
	}

	application := app.NewWithID("com.piwi3910.lightline")
	window := application.NewWindow("LightLine - Roofline Light Planner")

	appUI := ui.NewApp(application, window, cfg)
	appUI.SetConfigPath(*configPath)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1400, 850))
	window.CenterOnScreen()

	if flag.NArg() > 0 {
		appUI.OpenJob(flag.Arg(0))
	}

	window.ShowAndRun()
}
