package engine

import (
	"testing"
	"time"

	"github.com/piwi3910/LightLine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateCount(t *testing.T) {
	assert.Equal(t, 4, CandidateCount(3, 1))
	assert.Equal(t, 1, CandidateCount(0.5, 1))
	assert.Equal(t, 0, CandidateCount(0, 1))
	assert.Equal(t, 0, CandidateCount(3, 0))
	assert.Equal(t, 1<<53, CandidateCount(1e300, 1))
}

func TestPlaceLights_ThreeSpacingsGivesFourLights(t *testing.T) {
	// 24 px at 0.125 ft/px = 3 ft; 12 in spacing puts lights 8 px apart.
	// Collinear vertices every 8 px keep the interpolation exact.
	lights := PlaceLights(pts(0, 0, 8, 0, 16, 0, 24, 0), 12, 0.125)

	require.Len(t, lights, 4)
	assert.Equal(t, model.Point{X: 0, Y: 0}, lights[0])
	assert.Equal(t, model.Point{X: 8, Y: 0}, lights[1])
	assert.Equal(t, model.Point{X: 24, Y: 0}, lights[3])
}

func TestPlaceLights_ShorterThanSpacing(t *testing.T) {
	lights := PlaceLights(pts(0, 0, 4, 0), 12, 0.125)
	assert.Empty(t, lights)
	assert.NotNil(t, lights)
}

func TestPlaceLights_FirstLightIsFirstPoint(t *testing.T) {
	p := pts(5, 7, 5, 107, 45, 107)
	lights := PlaceLights(p, 8, 0.125)

	require.NotEmpty(t, lights)
	assert.Equal(t, model.Point{X: 5, Y: 7}, lights[0])
}

func TestPlaceLights_MinimumPixelSpacing(t *testing.T) {
	// Scale 1 and 12 in spacing put candidates 1 px apart
	lights := PlaceLights(pts(0, 0, 16, 0), 12, 1)

	require.Len(t, lights, 3)
	assert.Equal(t, 0.0, lights[0].X)
	assert.Equal(t, 8.0, lights[1].X)
	assert.Equal(t, 16.0, lights[2].X)
	for i := 1; i < len(lights); i++ {
		assert.GreaterOrEqual(t, Distance(lights[i-1], lights[i]), MinLightPixelSpacing)
	}
}

func TestPlaceLights_LargeScaleStaysFast(t *testing.T) {
	// 400 px at 4096 ft/px with 12 in spacing is over 1.6 million
	// candidates, of which only every 8th pixel can hold a light.
	p := make([]model.Point, 0, 401)
	for x := 0; x <= 400; x++ {
		p = append(p, model.Point{X: float64(x)})
	}

	start := time.Now()
	lights := PlaceLights(p, 12, 4096)
	elapsed := time.Since(start)

	require.Len(t, lights, 51)
	for k, l := range lights {
		assert.Equal(t, model.Point{X: float64(8 * k)}, l)
	}
	assert.LessOrEqual(t, cap(lights), 52)
	assert.Less(t, elapsed, time.Second)
}

// placeLightsByScan resolves every candidate independently from the start
// of the path.
func placeLightsByScan(points []model.Point, spacingInches, scale float64) []model.Point {
	spacingFeet := spacingInches / 12
	out := []model.Point{}
	n := CandidateCount(PathLength(points, scale), spacingFeet)
	if n < 2 {
		return out
	}
	for i := 0; i < n; i++ {
		pos, _ := PositionAlongPath(points, float64(i)*spacingFeet, scale)
		if len(out) > 0 && Distance(out[len(out)-1], pos) < MinLightPixelSpacing {
			continue
		}
		out = append(out, pos)
	}
	return out
}

func TestPlaceLights_MatchesCandidateScan(t *testing.T) {
	paths := map[string][]model.Point{
		"zigzag":         pts(0, 0, 40, 0, 40, 0, 10, 0, 10, 30, 50, 30, 12, 31, 60, 90),
		"back and forth": pts(0, 0, 9, 0, 0, 0, 9, 0, 0, 0, 30, 4),
		"diagonal":       pts(3.5, 1.25, 17.75, 44.5, 80.125, 12),
		"duplicates":     pts(5, 5, 5, 5, 25, 5, 25, 5, 25, 45),
	}
	scales := []float64{0.05, 0.125, 1, 3}
	spacings := []float64{6, 8, 12}

	for name, p := range paths {
		for _, scale := range scales {
			for _, spacing := range spacings {
				want := placeLightsByScan(p, spacing, scale)
				got := PlaceLights(p, spacing, scale)
				assert.Equal(t, want, got, "%s at %v ft/px, %v in", name, scale, spacing)
			}
		}
	}
}

func TestPlaceLights_DegenerateInput(t *testing.T) {
	assert.Empty(t, PlaceLights(nil, 8, 1))
	assert.Empty(t, PlaceLights(pts(0, 0, 100, 0), 0, 1))
	assert.Empty(t, PlaceLights(pts(0, 0, 100, 0), 8, 0))
}

func TestEstimateLights(t *testing.T) {
	est := EstimateLights(100, 1, 10)
	assert.Equal(t, 100, est.TotalLights)
	assert.Equal(t, 111, est.LightsWithWaste) // 100 * 1.1 rounds just above 110

	est = EstimateLights(33, 0.5, 10)
	assert.Equal(t, 66, est.TotalLights)
	assert.Equal(t, 73, est.LightsWithWaste) // ceil(72.6)
}

func TestEstimateLights_WasteFactorRounding(t *testing.T) {
	tests := []struct {
		lights int
		waste  float64
		want   int
	}{
		{50, 10, 56},
		{100, 10, 111},
		{25, 10, 28},
		{40, 0, 40},
	}
	for _, tt := range tests {
		total := float64(tt.lights)
		assert.Equal(t, tt.want, LightsWithWaste(total, 1, tt.waste), "%d lights at %.0f%%", tt.lights, tt.waste)
	}
}

func TestEstimateLights_Zero(t *testing.T) {
	est := EstimateLights(0, 1, 10)
	assert.Equal(t, 0, est.TotalLights)
	assert.Equal(t, 0, est.LightsWithWaste)

	assert.Equal(t, 0, LightsWithWaste(-5, 1, 10))
}

func TestEstimateLights_NegativeWasteIgnored(t *testing.T) {
	assert.Equal(t, 10, LightsWithWaste(10, 1, -20))
}
