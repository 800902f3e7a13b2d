package engine

import (
	"fmt"

	"github.com/piwi3910/LightLine/internal/model"
)

// SpacingComparison holds the plan and order figures for one candidate spacing.
type SpacingComparison struct {
	Name            string
	SpacingInches   float64
	Plan            model.LightPlan
	PlacedLights    int
	TotalLights     int
	LightsWithWaste int
}

// CompareSpacings plans the same paths at each spacing so the user can see
// how the bulb count changes. Results keep the order of spacingsInches.
func CompareSpacings(paths []model.Path, scaleFactor float64, settings model.LightSettings, spacingsInches []float64) []SpacingComparison {
	results := make([]SpacingComparison, 0, len(spacingsInches))

	for _, sp := range spacingsInches {
		s := settings
		s.SpacingInches = sp
		plan := New(s).Plan(paths, scaleFactor)

		name := fmt.Sprintf("%g in", sp)
		if sp == settings.SpacingInches {
			name += " (current)"
		}

		results = append(results, SpacingComparison{
			Name:            name,
			SpacingInches:   sp,
			Plan:            plan,
			PlacedLights:    plan.PlacedLights,
			TotalLights:     plan.Estimate.TotalLights,
			LightsWithWaste: plan.Estimate.LightsWithWaste,
		})
	}

	return results
}

// DefaultSpacings returns the catalog spacing options in inches.
func DefaultSpacings() []float64 {
	out := make([]float64, len(model.SpacingOptions))
	for i, o := range model.SpacingOptions {
		out[i] = float64(o.Value)
	}
	return out
}
