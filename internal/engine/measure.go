package engine

import (
	"math"

	"github.com/piwi3910/LightLine/internal/model"
)

// Web-Mercator ground resolution at the equator for zoom 0, in meters per pixel.
const metersPerPixelZoom0 = 156543.03392

const feetPerMeter = 3.28084

// Distance returns the Euclidean distance between two points in pixels.
func Distance(a, b model.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PixelLength returns the summed segment length of a polyline in pixels.
func PixelLength(points []model.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// PathLength converts a polyline to real-world feet. Fewer than two points,
// or a scale that is not a usable factor, yields 0.
func PathLength(points []model.Point, scaleFactor float64) float64 {
	if len(points) < 2 || !ValidScale(scaleFactor) {
		return 0
	}
	return PixelLength(points) * scaleFactor
}

// ScaleFromZoom returns feet per pixel for a Web-Mercator map tile at the
// given zoom and latitude in degrees.
func ScaleFromZoom(zoom int, latitude float64) float64 {
	metersPerPixel := metersPerPixelZoom0 * math.Cos(latitude*math.Pi/180) / math.Pow(2, float64(zoom))
	return metersPerPixel * feetPerMeter
}

// ScaleFromReference calibrates from a drawn object of known length.
// A zero pixel length produces Inf or NaN; check the result with ValidScale.
func ScaleFromReference(pixelLength, realFeet float64) float64 {
	return realFeet / pixelLength
}

// ScaleFromReferencePath calibrates from a drawn reference polyline.
func ScaleFromReferencePath(points []model.Point, realFeet float64) float64 {
	return ScaleFromReference(PixelLength(points), realFeet)
}

// ValidScale reports whether s is finite and positive.
func ValidScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// Resolve computes the active feet-per-pixel factor from the job's scale
// settings. The result may be invalid; callers check ValidScale.
func Resolve(s model.ScaleSettings) float64 {
	switch s.Source {
	case model.ScaleFromReference:
		return ScaleFromReference(s.ReferencePixels, s.ReferenceFeet)
	default:
		return ScaleFromZoom(s.Zoom, s.Latitude)
	}
}

// PositionAlongPath returns the point lying distanceFeet along the path,
// measured from its first point. Distances at or before the start return
// the first point, distances past the end return the last point.
func PositionAlongPath(points []model.Point, distanceFeet, scaleFactor float64) (model.Point, bool) {
	if len(points) == 0 {
		return model.Point{}, false
	}
	c := pathCursor{points: points, scale: scaleFactor}
	return c.at(distanceFeet), true
}

// pathCursor resolves positions along a non-empty polyline. Successive
// calls must pass non-decreasing distances; the cursor only moves forward,
// so a full sweep costs one pass over the segments.
type pathCursor struct {
	points      []model.Point
	scale       float64
	k           int     // segment the last position fell on
	accumulated float64 // feet covered before segment k
}

func (c *pathCursor) at(distanceFeet float64) model.Point {
	if !(distanceFeet > 0) {
		return model.Point{X: c.points[0].X, Y: c.points[0].Y}
	}
	for ; c.k+1 < len(c.points); c.k++ {
		a, b := c.points[c.k], c.points[c.k+1]
		segFeet := Distance(a, b) * c.scale
		if !(segFeet > 0) {
			continue
		}
		if c.accumulated+segFeet >= distanceFeet {
			t := (distanceFeet - c.accumulated) / segFeet
			return model.Point{
				X: a.X + t*(b.X-a.X),
				Y: a.Y + t*(b.Y-a.Y),
			}
		}
		c.accumulated += segFeet
	}

	last := c.points[len(c.points)-1]
	return model.Point{X: last.X, Y: last.Y}
}
