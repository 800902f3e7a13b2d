package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/piwi3910/LightLine/internal/model"
)

var (
	svgCommandRe = regexp.MustCompile(`([MmLlHhVvZzCcSsQqTtAa])([^MmLlHhVvZzCcSsQqTtAa]*)`)

	// A sign or a second decimal point starts a new number, so "10-5" and
	// ".5.5" are both two numbers.
	svgNumberRe = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
)

// ParseSVGPath parses SVG path data made of straight segments
// (M, L, H, V, Z and their relative forms) into a flat list of points.
// Curve commands are rejected.
func ParseSVGPath(d string) ([]model.Point, error) {
	subpaths, err := parseSVGSubpaths(d)
	if err != nil {
		return nil, err
	}
	var points []model.Point
	for _, sp := range subpaths {
		points = append(points, sp...)
	}
	return points, nil
}

// parseSVGSubpaths splits path data into one point list per moveto.
func parseSVGSubpaths(d string) ([][]model.Point, error) {
	d = strings.TrimSpace(d)
	if d == "" {
		return nil, fmt.Errorf("empty path")
	}

	var subpaths [][]model.Point
	var current []model.Point
	var x, y, startX, startY float64

	flush := func() {
		if len(current) > 0 {
			subpaths = append(subpaths, current)
		}
		current = nil
	}
	add := func() {
		current = append(current, model.Point{X: x, Y: y})
	}

	matches := svgCommandRe.FindAllStringSubmatch(d, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no path commands in %q", d)
	}

	for _, match := range matches {
		cmd := match[1]
		coords, err := parseCoords(match[2])
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", cmd, err)
		}

		switch cmd {
		case "M", "m":
			if len(coords) < 2 || len(coords)%2 != 0 {
				return nil, fmt.Errorf("command %s needs coordinate pairs", cmd)
			}
			flush()
			for i := 0; i < len(coords); i += 2 {
				// Pairs after the first are implicit linetos
				if cmd == "m" {
					x += coords[i]
					y += coords[i+1]
				} else {
					x, y = coords[i], coords[i+1]
				}
				add()
				if i == 0 {
					startX, startY = x, y
				}
			}

		case "L", "l":
			if len(coords) < 2 || len(coords)%2 != 0 {
				return nil, fmt.Errorf("command %s needs coordinate pairs", cmd)
			}
			for i := 0; i < len(coords); i += 2 {
				if cmd == "l" {
					x += coords[i]
					y += coords[i+1]
				} else {
					x, y = coords[i], coords[i+1]
				}
				add()
			}

		case "H", "h":
			if len(coords) == 0 {
				return nil, fmt.Errorf("command %s needs a coordinate", cmd)
			}
			for _, c := range coords {
				if cmd == "h" {
					x += c
				} else {
					x = c
				}
				add()
			}

		case "V", "v":
			if len(coords) == 0 {
				return nil, fmt.Errorf("command %s needs a coordinate", cmd)
			}
			for _, c := range coords {
				if cmd == "v" {
					y += c
				} else {
					y = c
				}
				add()
			}

		case "Z", "z":
			if len(current) > 0 {
				x, y = startX, startY
				add()
			}

		default:
			return nil, fmt.Errorf("unsupported path command %s (only straight segments are supported)", cmd)
		}
	}
	flush()

	return subpaths, nil
}

func parseCoords(s string) ([]float64, error) {
	var coords []float64
	prev := 0
	for _, loc := range svgNumberRe.FindAllStringIndex(s, -1) {
		if err := checkSeparator(s[prev:loc[0]]); err != nil {
			return nil, err
		}
		val, err := strconv.ParseFloat(s[loc[0]:loc[1]], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", s[loc[0]:loc[1]])
		}
		coords = append(coords, val)
		prev = loc[1]
	}
	if err := checkSeparator(s[prev:]); err != nil {
		return nil, err
	}
	return coords, nil
}

// checkSeparator rejects anything between numbers other than whitespace
// and commas.
func checkSeparator(gap string) error {
	if strings.Trim(gap, ", \t\r\n") != "" {
		return fmt.Errorf("invalid number %q", strings.TrimSpace(gap))
	}
	return nil
}

// ImportSVGPath converts SVG path data into paths for one side.
// Each subpath becomes its own path.
func ImportSVGPath(d string, side model.Side) ImportResult {
	result := ImportResult{}

	subpaths, err := parseSVGSubpaths(d)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse SVG path: %v", err))
		return result
	}

	for i, pts := range subpaths {
		if len(pts) < 2 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped subpath %d with fewer than 2 points", i+1))
			continue
		}
		result.Paths = append(result.Paths, model.NewPath(side, pts))
	}

	if len(result.Paths) == 0 {
		result.Errors = append(result.Errors, "No drawable segments in SVG path")
	}
	return result
}
