package engine

import (
	"math"

	"github.com/piwi3910/LightLine/internal/model"
)

// MinLightPixelSpacing is the closest two rendered lights may sit on screen.
const MinLightPixelSpacing = 8.0

// maxCandidates keeps candidate indexes exactly representable as float64.
const maxCandidates = 1 << 53

// CandidateCount returns how many evenly spaced candidate positions fit
// along a path, counting the start point.
func CandidateCount(lengthFeet, spacingFeet float64) int {
	if !(lengthFeet > 0) || !(spacingFeet > 0) || math.IsInf(lengthFeet, 0) {
		return 0
	}
	steps := math.Floor(lengthFeet / spacingFeet)
	if steps >= maxCandidates-1 {
		return maxCandidates
	}
	return int(steps) + 1
}

// PlaceLights lays out light positions along a path at the given spacing.
// The first light always sits on the first point. Candidates closer than
// MinLightPixelSpacing to the previously accepted light are dropped.
func PlaceLights(points []model.Point, spacingInches, scaleFactor float64) []model.Point {
	spacingFeet := spacingInches / 12
	if !(spacingFeet > 0) || !ValidScale(scaleFactor) {
		return []model.Point{}
	}

	n := CandidateCount(PathLength(points, scaleFactor), spacingFeet)
	if n < 2 {
		return []model.Point{}
	}

	// Accepted lights are at least MinLightPixelSpacing apart along the
	// drawn path, which bounds the count independently of n.
	capacity := n
	if c := PixelLength(points)/MinLightPixelSpacing + 2; c < float64(n) {
		capacity = int(c)
	}
	lights := make([]model.Point, 0, capacity)

	cur := pathCursor{points: points, scale: scaleFactor}
	for i := 0; i < n; {
		pos := cur.at(float64(i) * spacingFeet)
		need := MinLightPixelSpacing
		if len(lights) == 0 {
			lights = append(lights, pos)
		} else if d := Distance(lights[len(lights)-1], pos); d >= MinLightPixelSpacing {
			lights = append(lights, pos)
		} else {
			need -= d
		}
		i += candidateStride(need, spacingFeet, scaleFactor, n-i)
	}
	return lights
}

// candidateStride returns how far to advance past a candidate that sits
// needPixels short of the spacing limit. A later candidate can only clear
// the limit once the path between them covers needPixels, so the ones in
// between are skipped. One spacing of slack absorbs rounding.
func candidateStride(needPixels, spacingFeet, scaleFactor float64, remaining int) int {
	steps := math.Floor(needPixels*scaleFactor/spacingFeet) - 1
	if !(steps > 1) {
		return 1
	}
	if steps >= float64(remaining) {
		return remaining
	}
	return int(steps)
}

// EstimateLights computes the order quantity for a total run length.
// Waste is applied once over the whole run, never per path.
func EstimateLights(totalFeet, spacingFeet, wastePercent float64) model.LightEstimate {
	est := model.LightEstimate{
		TotalFeet:    totalFeet,
		SpacingFeet:  spacingFeet,
		WastePercent: wastePercent,
	}
	if !(totalFeet > 0) {
		est.TotalFeet = 0
		return est
	}
	if !(spacingFeet > 0) {
		return est
	}
	if !(wastePercent > 0) {
		wastePercent = 0
	}

	est.TotalLights = int(math.Ceil(totalFeet / spacingFeet))
	est.LightsWithWaste = int(math.Ceil(float64(est.TotalLights) * (1 + wastePercent/100)))
	return est
}

// LightsWithWaste is the single-value form of EstimateLights.
func LightsWithWaste(totalFeet, spacingFeet, wastePercent float64) int {
	return EstimateLights(totalFeet, spacingFeet, wastePercent).LightsWithWaste
}
