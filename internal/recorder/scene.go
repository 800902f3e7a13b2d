package recorder

import (
	"github.com/piwi3910/LightLine/internal/engine"
	"github.com/piwi3910/LightLine/internal/model"
)

// ScenePath is one committed path ready to draw.
type ScenePath struct {
	PathID     string
	Side       model.Side
	Color      model.RGB
	Points     []model.Point
	Lights     []model.Point
	LengthFeet float64
}

// Scene is everything the canvas needs for one repaint.
type Scene struct {
	Paths         []ScenePath
	InProgress    []model.Point
	PendingMarker *model.Point // First point of a straight segment awaiting its second click
	Fixtures      []model.Fixture
	Totals        model.SideTotals
}

// BuildScene derives a render list from the committed paths and the
// recorder's transient state. It does not modify either.
func BuildScene(store *Store, rec *Recorder, spacingInches float64) Scene {
	scale := rec.Scale()
	paths := store.Paths()

	scene := Scene{
		Paths:      make([]ScenePath, 0, len(paths)),
		InProgress: rec.InProgress(),
		Fixtures:   rec.Fixtures(),
		Totals:     store.Totals(scale),
	}

	for _, p := range paths {
		scene.Paths = append(scene.Paths, ScenePath{
			PathID:     p.ID,
			Side:       p.Side,
			Color:      p.Side.Color(),
			Points:     p.Points,
			Lights:     engine.PlaceLights(p.Points, spacingInches, scale),
			LengthFeet: engine.PathLength(p.Points, scale),
		})
	}

	if rec.Mode() == ModeAwaitingSecondPoint && len(scene.InProgress) > 0 {
		marker := scene.InProgress[0]
		scene.PendingMarker = &marker
	}
	return scene
}

// LightCount returns the number of lights drawn in the scene.
func (s Scene) LightCount() int {
	n := 0
	for _, p := range s.Paths {
		n += len(p.Lights)
	}
	return n
}
