package recorder

import (
	"log"
	"time"

	"github.com/piwi3910/LightLine/internal/engine"
	"github.com/piwi3910/LightLine/internal/model"
)

// Commit is emitted every time a path is added to the store.
type Commit struct {
	Side       model.Side
	RealLength float64
	Path       model.Path
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the time source used to stamp points.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithScale sets the initial feet-per-pixel factor.
func WithScale(scaleFactor float64) Option {
	return func(r *Recorder) { r.scale = scaleFactor }
}

// WithCommitHandler registers a callback run after each commit.
func WithCommitHandler(fn func(Commit)) Option {
	return func(r *Recorder) { r.onCommit = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(r *Recorder) { r.logger = l }
}

// Recorder turns pointer input into committed paths.
// It is not safe for concurrent use; feed it from the UI event loop.
type Recorder struct {
	store       *Store
	mode        Mode
	drawingMode model.DrawingMode
	side        model.Side
	scale       float64

	inProgress []model.Point
	fixtures   []model.Fixture

	now      func() time.Time
	onCommit func(Commit)
	logger   *log.Logger
}

func New(store *Store, opts ...Option) *Recorder {
	r := &Recorder{
		store:       store,
		mode:        ModeIdle,
		drawingMode: model.DrawingStraight,
		side:        model.SideFront,
		now:         time.Now,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) Store() *Store                  { return r.store }
func (r *Recorder) Mode() Mode                     { return r.mode }
func (r *Recorder) DrawingMode() model.DrawingMode { return r.drawingMode }
func (r *Recorder) Side() model.Side               { return r.side }
func (r *Recorder) Scale() float64                 { return r.scale }

// SetDrawingMode switches between straight and freehand drawing.
// A stroke in progress is dropped.
func (r *Recorder) SetDrawingMode(m model.DrawingMode) {
	if m == r.drawingMode {
		return
	}
	if r.mode.Drawing() {
		r.logger.Printf("[recorder] drawing mode changed mid-stroke, dropping %d points", len(r.inProgress))
		r.reset()
	}
	r.drawingMode = m
}

// SetSide selects the side tagged on the next commit.
func (r *Recorder) SetSide(s model.Side) {
	r.side = s
}

// SetScale updates the factor used for emitted lengths.
func (r *Recorder) SetScale(scaleFactor float64) {
	r.scale = scaleFactor
}

// InProgress returns a copy of the points of the stroke being drawn.
func (r *Recorder) InProgress() []model.Point {
	out := make([]model.Point, len(r.inProgress))
	copy(out, r.inProgress)
	return out
}

// Fixtures returns a copy of the placed controller and power supply markers.
func (r *Recorder) Fixtures() []model.Fixture {
	out := make([]model.Fixture, len(r.fixtures))
	copy(out, r.fixtures)
	return out
}

func (r *Recorder) point(x, y float64) model.Point {
	return model.Point{X: x, Y: y, Timestamp: r.now().UnixMilli()}
}

// PointerDown handles a press or click on the drawing surface.
func (r *Recorder) PointerDown(x, y float64) {
	p := r.point(x, y)

	switch r.mode {
	case ModePlacingController:
		r.placeFixture(model.FixtureController, p)
	case ModePlacingPowerSupply:
		r.placeFixture(model.FixturePowerSupply, p)
	case ModeAwaitingSecondPoint:
		r.inProgress = append(r.inProgress, p)
		r.commit()
	case ModeFreehand:
		// A press without a release restarts the stroke.
		r.inProgress = []model.Point{p}
	default:
		r.inProgress = []model.Point{p}
		if r.drawingMode == model.DrawingFreehand {
			r.mode = ModeFreehand
		} else {
			r.mode = ModeAwaitingSecondPoint
		}
	}
}

// PointerMove extends a freehand stroke. Every event becomes a point.
func (r *Recorder) PointerMove(x, y float64) {
	if r.mode != ModeFreehand {
		return
	}
	r.inProgress = append(r.inProgress, r.point(x, y))
}

// PointerUp ends a freehand stroke.
func (r *Recorder) PointerUp() {
	if r.mode == ModeFreehand {
		r.finishFreehand()
	}
}

// PointerLeave ends a freehand stroke when the pointer exits the surface.
func (r *Recorder) PointerLeave() {
	if r.mode == ModeFreehand {
		r.finishFreehand()
	}
}

func (r *Recorder) finishFreehand() {
	if len(r.inProgress) < 2 {
		r.reset()
		return
	}
	r.commit()
}

func (r *Recorder) commit() {
	path := model.NewPath(r.side, r.inProgress)
	r.reset()

	if !r.store.Commit(path) {
		return
	}
	length := engine.PathLength(path.Points, r.scale)
	r.logger.Printf("[recorder] committed %s path %s: %d points, %.2f ft", r.side, path.ID, len(path.Points), length)

	if r.onCommit != nil {
		r.onCommit(Commit{Side: path.Side, RealLength: length, Path: path})
	}
}

func (r *Recorder) reset() {
	r.inProgress = nil
	r.mode = ModeIdle
}

// BeginControllerPlacement makes the next pointer-down place the controller.
func (r *Recorder) BeginControllerPlacement() {
	r.reset()
	r.mode = ModePlacingController
}

// BeginPowerSupplyPlacement makes the next pointer-down place the power supply.
func (r *Recorder) BeginPowerSupplyPlacement() {
	r.reset()
	r.mode = ModePlacingPowerSupply
}

// CancelPlacement leaves fixture placement without placing anything.
func (r *Recorder) CancelPlacement() {
	if r.mode.Placing() {
		r.mode = ModeIdle
	}
}

// Cancel drops a stroke in progress or leaves placement mode. Committed
// paths and placed fixtures are untouched.
func (r *Recorder) Cancel() {
	if r.mode != ModeIdle {
		r.logger.Printf("[recorder] cancelled %s, dropping %d points", r.mode, len(r.inProgress))
	}
	r.reset()
}

// placeFixture replaces any existing fixture of the same kind.
func (r *Recorder) placeFixture(kind model.FixtureKind, p model.Point) {
	f := model.Fixture{Kind: kind, Point: p}
	replaced := false
	for i := range r.fixtures {
		if r.fixtures[i].Kind == kind {
			r.fixtures[i] = f
			replaced = true
		}
	}
	if !replaced {
		r.fixtures = append(r.fixtures, f)
	}
	r.logger.Printf("[recorder] placed %s at (%.1f, %.1f)", kind, p.X, p.Y)
	r.mode = ModeIdle
}

// Clear empties the store, drops any stroke in progress and removes fixtures.
func (r *Recorder) Clear() {
	r.store.Clear()
	r.fixtures = nil
	r.reset()
}

// Restore replaces the recorder's content with a saved job's paths and
// fixtures. It returns the number of paths accepted by the store.
func (r *Recorder) Restore(paths []model.Path, fixtures []model.Fixture) int {
	r.Clear()
	n := 0
	for _, p := range paths {
		if r.store.Commit(p) {
			n++
		}
	}
	for _, f := range fixtures {
		r.placeFixture(f.Kind, f.Point)
	}
	if n != len(paths) {
		r.logger.Printf("[recorder] restore skipped %d degenerate paths", len(paths)-n)
	}
	return n
}
