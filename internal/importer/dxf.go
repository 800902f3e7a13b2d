package importer

import (
	"fmt"
	"math"

	"github.com/piwi3910/LightLine/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// chainTolerance is the maximum endpoint gap for two LINEs to be joined.
const chainTolerance = 0.01

// segment is a single LINE entity, used for chaining connected lines
// into one polyline.
type segment struct {
	start model.Point
	end   model.Point
}

// ImportDXF imports rooflines from a DXF file and assigns them to side.
// LWPOLYLINEs become one path each (closed ones repeat their first vertex),
// ARCs are flattened, and connected LINEs are chained into polylines.
// Other entity types are skipped. Coordinates are flipped into screen
// space and shifted so the drawing starts at the origin.
func ImportDXF(path string, side model.Side) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var polylines [][]model.Point
	var segments []segment
	skipped := 0

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := lwPolylinePoints(e)
			if len(pts) >= 2 {
				polylines = append(polylines, pts)
			} else {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
			}

		case *entity.Arc:
			polylines = append(polylines, arcToPoints(e, 32))

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point{X: e.End[0], Y: e.End[1]},
			})

		default:
			skipped++
		}
	}
	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}

	polylines = append(polylines, chainSegments(segments, chainTolerance)...)
	if len(polylines) == 0 {
		result.Errors = append(result.Errors, "No lines found in DXF file")
		return result
	}

	for _, pts := range toScreenSpace(polylines) {
		if pixelSpan(pts) < chainTolerance {
			result.Warnings = append(result.Warnings, "Skipped zero-length line")
			continue
		}
		result.Paths = append(result.Paths, model.NewPath(side, pts))
	}

	return result
}

// lwPolylinePoints converts an LWPOLYLINE to points. Bulge values on
// vertices produce interpolated arc segments.
func lwPolylinePoints(lw *entity.LwPolyline) []model.Point {
	var pts []model.Point
	n := len(lw.Vertices)

	for i := 0; i < n; i++ {
		current := model.Point{X: lw.Vertices[i][0], Y: lw.Vertices[i][1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		last := i == n-1
		if math.Abs(bulge) > 1e-9 && (!last || lw.Closed) {
			nextIdx := (i + 1) % n
			next := model.Point{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
			arc := bulgeArcPoints(current, next, bulge, 32)
			// The next vertex is added by the following iteration
			pts = append(pts, arc[:len(arc)-1]...)
		} else {
			pts = append(pts, current)
		}
	}

	if lw.Closed && len(pts) > 0 {
		pts = append(pts, pts[0])
	}
	return pts
}

// bulgeArcPoints generates points along an arc defined by two endpoints and a
// DXF bulge factor. The bulge is the tangent of 1/4 the included angle.
func bulgeArcPoints(p1, p2 model.Point, bulge float64, numSegments int) []model.Point {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Hypot(dx, dy)
	if chordLen < 1e-9 {
		return []model.Point{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else if endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	pts := make([]model.Point, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, model.Point{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)})
	}
	return pts
}

// arcToPoints flattens a DXF ARC entity.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

// chainSegments joins segments that share endpoints into open or closed
// polylines, extending each chain from both ends. Chains keep the
// direction of their first segment.
func chainSegments(segs []segment, tolerance float64) [][]model.Point {
	used := make([]bool, len(segs))
	var chains [][]model.Point

	for startIdx := range segs {
		if used[startIdx] {
			continue
		}
		used[startIdx] = true
		chain := []model.Point{segs[startIdx].start, segs[startIdx].end}

		for changed := true; changed; {
			changed = false
			head, tail := chain[0], chain[len(chain)-1]
			if pointsClose(head, tail, tolerance) && len(chain) > 2 {
				break
			}

			for i, seg := range segs {
				if used[i] {
					continue
				}
				switch {
				case pointsClose(tail, seg.start, tolerance):
					chain = append(chain, seg.end)
				case pointsClose(tail, seg.end, tolerance):
					chain = append(chain, seg.start)
				case pointsClose(head, seg.end, tolerance):
					chain = append([]model.Point{seg.start}, chain...)
				case pointsClose(head, seg.start, tolerance):
					chain = append([]model.Point{seg.end}, chain...)
				default:
					continue
				}
				used[i] = true
				changed = true
				break
			}
		}

		chains = append(chains, chain)
	}

	return chains
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

// toScreenSpace flips the Y axis (DXF is Y-up, the canvas is Y-down) and
// translates every polyline by the same offset so the combined bounding
// box starts at (0, 0).
func toScreenSpace(polylines [][]model.Point) [][]model.Point {
	minX, minY := math.Inf(1), math.Inf(1)
	for _, pl := range polylines {
		for _, p := range pl {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, -p.Y)
		}
	}

	out := make([][]model.Point, len(polylines))
	for i, pl := range polylines {
		out[i] = make([]model.Point, len(pl))
		for j, p := range pl {
			out[i][j] = model.Point{X: p.X - minX, Y: -p.Y - minY}
		}
	}
	return out
}

// pixelSpan is the summed segment length, used to drop degenerate lines.
func pixelSpan(pts []model.Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	return total
}
