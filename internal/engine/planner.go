package engine

import (
	"github.com/piwi3910/LightLine/internal/model"
)

// Planner lays out lights for every committed path of a job.
type Planner struct {
	Settings model.LightSettings
}

func New(settings model.LightSettings) *Planner {
	return &Planner{Settings: settings}
}

// Plan computes per-path lengths and light positions, per-side totals and
// the waste-adjusted order estimate. Nothing is cached between calls.
func (p *Planner) Plan(paths []model.Path, scaleFactor float64) model.LightPlan {
	plan := model.LightPlan{Paths: make([]model.PathPlan, 0, len(paths))}

	for _, path := range paths {
		length := PathLength(path.Points, scaleFactor)
		lights := PlaceLights(path.Points, p.Settings.SpacingInches, scaleFactor)

		plan.Paths = append(plan.Paths, model.PathPlan{
			PathID:     path.ID,
			Side:       path.Side,
			LengthFeet: length,
			Lights:     lights,
		})
		plan.Totals.Add(path.Side, length)
		plan.PlacedLights += len(lights)
	}

	plan.Estimate = EstimateLights(plan.Totals.Grand(), p.Settings.SpacingFeet(), p.Settings.WastePercent)
	return plan
}

// Quote prices the plan's grand total.
func (p *Planner) Quote(plan model.LightPlan, pricing model.Pricing) model.Quote {
	return model.CalculateQuote(plan.Totals.Grand(), pricing)
}
