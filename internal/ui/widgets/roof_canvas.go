package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/LightLine/internal/model"
	"github.com/piwi3910/LightLine/internal/recorder"
)

const (
	pathStrokeWidth   = 3
	inProgressStroke  = 2
	markerRadius      = 5
	fixtureSize       = 14
	defaultBulbRadius = 3
)

var (
	canvasBackground = color.NRGBA{R: 40, G: 44, B: 52, A: 255}
	inProgressColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
	markerColor      = color.NRGBA{R: 255, G: 235, B: 59, A: 255}
	controllerColor  = color.NRGBA{R: 244, G: 67, B: 54, A: 255}
	powerSupplyColor = color.NRGBA{R: 0, G: 188, B: 212, A: 255}
)

// PointerSink receives pointer input in canvas-local pixel coordinates.
// *recorder.Recorder satisfies it.
type PointerSink interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
	PointerLeave()
}

// RoofCanvas is the drawing surface. It forwards mouse input to a
// PointerSink and paints whatever scene the provider returns.
type RoofCanvas struct {
	widget.BaseWidget

	sink       PointerSink
	scene      func() recorder.Scene
	scheme     model.ColorScheme
	bulbRadius float32
	background *canvas.Image
	minSize    fyne.Size

	// OnChanged runs after every forwarded pointer event.
	OnChanged func()
}

func NewRoofCanvas(sink PointerSink, scene func() recorder.Scene, minW, minH float32) *RoofCanvas {
	scheme, _ := model.FindColorScheme("rgbw")
	rc := &RoofCanvas{
		sink:       sink,
		scene:      scene,
		scheme:     scheme,
		bulbRadius: defaultBulbRadius,
		minSize:    fyne.NewSize(minW, minH),
	}
	rc.ExtendBaseWidget(rc)
	return rc
}

// SetColorScheme changes the bulb colors and repaints.
func (rc *RoofCanvas) SetColorScheme(scheme model.ColorScheme) {
	rc.scheme = scheme
	rc.Refresh()
}

// SetBulbSize sets the light marker size from the bulb diameter in inches.
func (rc *RoofCanvas) SetBulbSize(inches float64) {
	if inches <= 0 {
		inches = 1
	}
	rc.bulbRadius = float32(defaultBulbRadius * inches)
	rc.Refresh()
}

// SetBackground loads an aerial image drawn under the paths at 1:1 pixel
// scale. An empty path removes it.
func (rc *RoofCanvas) SetBackground(path string) {
	if path == "" {
		rc.background = nil
	} else {
		img := canvas.NewImageFromFile(path)
		img.FillMode = canvas.ImageFillOriginal
		img.ScaleMode = canvas.ImageScalePixels
		rc.background = img
	}
	rc.Refresh()
}

func (rc *RoofCanvas) changed() {
	rc.Refresh()
	if rc.OnChanged != nil {
		rc.OnChanged()
	}
}

// MouseDown implements desktop.Mouseable.
func (rc *RoofCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	rc.sink.PointerDown(float64(ev.Position.X), float64(ev.Position.Y))
	rc.changed()
}

// MouseUp implements desktop.Mouseable.
func (rc *RoofCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	rc.sink.PointerUp()
	rc.changed()
}

// Dragged implements fyne.Draggable; freehand strokes are built from these.
func (rc *RoofCanvas) Dragged(ev *fyne.DragEvent) {
	rc.sink.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
	rc.changed()
}

// DragEnd implements fyne.Draggable.
func (rc *RoofCanvas) DragEnd() {
	rc.sink.PointerUp()
	rc.changed()
}

func (rc *RoofCanvas) MouseIn(*desktop.MouseEvent)    {}
func (rc *RoofCanvas) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends a freehand stroke when the pointer leaves the surface.
func (rc *RoofCanvas) MouseOut() {
	rc.sink.PointerLeave()
	rc.changed()
}

func (rc *RoofCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newRoofCanvasRenderer(rc)
}

type roofCanvasRenderer struct {
	rc      *RoofCanvas
	bg      *canvas.Rectangle
	objects []fyne.CanvasObject
	size    fyne.Size
}

func newRoofCanvasRenderer(rc *RoofCanvas) *roofCanvasRenderer {
	r := &roofCanvasRenderer{
		rc: rc,
		bg: canvas.NewRectangle(canvasBackground),
	}
	r.rebuild()
	return r
}

func toNRGBA(c model.RGB, alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func pos(p model.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func (r *roofCanvasRenderer) rebuild() {
	r.bg.Resize(r.size)
	r.objects = []fyne.CanvasObject{r.bg}

	if img := r.rc.background; img != nil {
		img.Move(fyne.NewPos(0, 0))
		img.Resize(img.MinSize())
		r.objects = append(r.objects, img)
	}

	if r.rc.scene == nil {
		return
	}
	scene := r.rc.scene()

	bulb := 0
	for _, sp := range scene.Paths {
		col := toNRGBA(sp.Color, 255)
		r.addPolyline(sp.Points, col, pathStrokeWidth)

		for _, l := range sp.Lights {
			r.addCircle(l, r.rc.bulbRadius, toNRGBA(r.rc.scheme.BulbColor(bulb), 255))
			bulb++
		}

		// Length label next to the last vertex
		if n := len(sp.Points); n > 0 && sp.LengthFeet > 0 {
			label := canvas.NewText(fmt.Sprintf("%.1f ft", sp.LengthFeet), col)
			label.TextSize = 10
			label.Move(pos(sp.Points[n-1]).AddXY(4, 2))
			r.objects = append(r.objects, label)
		}
	}

	r.addPolyline(scene.InProgress, inProgressColor, inProgressStroke)
	if scene.PendingMarker != nil {
		r.addCircle(*scene.PendingMarker, markerRadius, markerColor)
	}

	for _, f := range scene.Fixtures {
		r.addFixture(f)
	}
}

func (r *roofCanvasRenderer) addPolyline(points []model.Point, col color.Color, width float32) {
	for i := 1; i < len(points); i++ {
		line := canvas.NewLine(col)
		line.StrokeWidth = width
		line.Position1 = pos(points[i-1])
		line.Position2 = pos(points[i])
		r.objects = append(r.objects, line)
	}
}

func (r *roofCanvasRenderer) addCircle(center model.Point, radius float32, col color.Color) {
	c := canvas.NewCircle(col)
	c.StrokeColor = color.Black
	c.StrokeWidth = 1
	c.Move(pos(center).SubtractXY(radius, radius))
	c.Resize(fyne.NewSize(radius*2, radius*2))
	r.objects = append(r.objects, c)
}

func (r *roofCanvasRenderer) addFixture(f model.Fixture) {
	col := controllerColor
	text := "C"
	if f.Kind == model.FixturePowerSupply {
		col = powerSupplyColor
		text = "P"
	}

	box := canvas.NewRectangle(col)
	box.StrokeColor = color.White
	box.StrokeWidth = 1
	box.Move(pos(f.Point).SubtractXY(fixtureSize/2, fixtureSize/2))
	box.Resize(fyne.NewSize(fixtureSize, fixtureSize))
	r.objects = append(r.objects, box)

	label := canvas.NewText(text, color.White)
	label.TextSize = 10
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Move(pos(f.Point).SubtractXY(3, fixtureSize/2))
	r.objects = append(r.objects, label)
}

func (r *roofCanvasRenderer) Layout(size fyne.Size) {
	r.size = size
	r.bg.Resize(size)
}
func (r *roofCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *roofCanvasRenderer) Destroy()                     {}
func (r *roofCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *roofCanvasRenderer) MinSize() fyne.Size {
	sz := r.rc.minSize
	if img := r.rc.background; img != nil {
		sz = sz.Max(img.MinSize())
	}
	return sz
}
