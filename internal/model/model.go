package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Side identifies the building elevation a path was traced for.
type Side string

const (
	SideFront Side = "front"
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBack  Side = "back"
)

// AllSides returns every side in display order.
func AllSides() []Side {
	return []Side{SideFront, SideLeft, SideRight, SideBack}
}

// ParseSide converts a user or file supplied side name into a Side.
// Matching is case-insensitive and accepts the "leftSide"/"rightSide" spellings.
func ParseSide(s string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "front", "f":
		return SideFront, true
	case "left", "leftside", "left side", "l":
		return SideLeft, true
	case "right", "rightside", "right side", "r":
		return SideRight, true
	case "back", "rear", "b":
		return SideBack, true
	default:
		return "", false
	}
}

// Label returns the human readable side name.
func (s Side) Label() string {
	switch s {
	case SideFront:
		return "Front"
	case SideLeft:
		return "Left Side"
	case SideRight:
		return "Right Side"
	case SideBack:
		return "Back"
	default:
		return string(s)
	}
}

// RGB is a plain 8-bit color shared by the canvas widget and the PDF report.
type RGB struct {
	R, G, B uint8
}

// Color returns the display color used for paths on this side.
func (s Side) Color() RGB {
	switch s {
	case SideFront:
		return RGB{R: 76, G: 175, B: 80} // green
	case SideLeft:
		return RGB{R: 33, G: 150, B: 243} // blue
	case SideRight:
		return RGB{R: 255, G: 152, B: 0} // orange
	case SideBack:
		return RGB{R: 156, G: 39, B: 176} // purple
	default:
		return RGB{R: 255, G: 106, B: 0}
	}
}

// DrawingMode selects how pointer input is turned into paths.
type DrawingMode string

const (
	DrawingStraight DrawingMode = "straight" // Two clicks per segment
	DrawingFreehand DrawingMode = "freehand" // Press, drag, release
)

// ParseDrawingMode converts a mode name into a DrawingMode.
func ParseDrawingMode(s string) (DrawingMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "straight", "line", "lines":
		return DrawingStraight, true
	case "freehand", "free":
		return DrawingFreehand, true
	default:
		return "", false
	}
}

// Point is a coordinate in drawing-surface pixels.
type Point struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Timestamp int64   `json:"timestamp,omitempty"` // Unix millis, 0 if not recorded
}

// Path is an ordered polyline traced for a single side.
// Point order defines the traversal direction used for light placement.
type Path struct {
	ID        string    `json:"id"`
	Side      Side      `json:"side"`
	Points    []Point   `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPath creates a path with a fresh ID. The points are copied so the
// path never shares a backing array with the caller.
func NewPath(side Side, points []Point) Path {
	cp := make([]Point, len(points))
	copy(cp, points)
	return Path{
		ID:        uuid.New().String()[:8],
		Side:      side,
		Points:    cp,
		CreatedAt: time.Now().UTC(),
	}
}

// SideTotals holds accumulated real-world length in feet per side.
type SideTotals struct {
	Front float64 `json:"front"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	Back  float64 `json:"back"`
}

// Get returns the total for one side.
func (t SideTotals) Get(s Side) float64 {
	switch s {
	case SideFront:
		return t.Front
	case SideLeft:
		return t.Left
	case SideRight:
		return t.Right
	case SideBack:
		return t.Back
	default:
		return 0
	}
}

// Add accumulates feet onto a side. Negative or NaN values are ignored
// so totals can never go below zero.
func (t *SideTotals) Add(s Side, feet float64) {
	if !(feet > 0) {
		return
	}
	switch s {
	case SideFront:
		t.Front += feet
	case SideLeft:
		t.Left += feet
	case SideRight:
		t.Right += feet
	case SideBack:
		t.Back += feet
	}
}

// Grand returns the sum of all sides.
func (t SideTotals) Grand() float64 {
	return t.Front + t.Left + t.Right + t.Back
}

// ScaleSource selects how the feet-per-pixel factor is derived.
type ScaleSource string

const (
	ScaleFromMap       ScaleSource = "map"       // Web-Mercator zoom + latitude
	ScaleFromReference ScaleSource = "reference" // Known-length calibration line
)

// ScaleSettings captures the inputs of the active scale factor.
type ScaleSettings struct {
	Source          ScaleSource `json:"source"`
	Zoom            int         `json:"zoom"`
	Latitude        float64     `json:"latitude"`
	ReferencePixels float64     `json:"reference_pixels"` // Pixel length of the calibration line
	ReferenceFeet   float64     `json:"reference_feet"`   // Real length entered by the user
}

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FixtureKind identifies equipment placed on the drawing.
type FixtureKind string

const (
	FixtureController  FixtureKind = "controller"
	FixturePowerSupply FixtureKind = "power_supply"
)

// Fixture is a controller or power supply marker.
type Fixture struct {
	Kind  FixtureKind `json:"kind"`
	Point Point       `json:"point"`
}

// LightSettings holds the layout options for the light run.
type LightSettings struct {
	SpacingInches  float64 `json:"spacing_inches"`   // Center-to-center spacing
	WastePercent   float64 `json:"waste_percent"`    // Extra lights ordered, e.g. 10 for 10%
	BulbSizeInches float64 `json:"bulb_size_inches"` // Marker size on the drawing
	ColorScheme    string  `json:"color_scheme"`
	Animation      string  `json:"animation"`
	AnimationSpeed int     `json:"animation_speed"` // 1 (slow) .. 10 (fast)
}

func DefaultLightSettings() LightSettings {
	return LightSettings{
		SpacingInches:  8,
		WastePercent:   10,
		BulbSizeInches: 1.0,
		ColorScheme:    "rgbw",
		Animation:      "static",
		AnimationSpeed: 5,
	}
}

// SpacingFeet converts the configured spacing to feet.
func (ls LightSettings) SpacingFeet() float64 {
	return ls.SpacingInches / 12.0
}

// PathPlan is the light layout computed for one committed path.
type PathPlan struct {
	PathID     string  `json:"path_id"`
	Side       Side    `json:"side"`
	LengthFeet float64 `json:"length_feet"`
	Lights     []Point `json:"lights"`
}

// LightPlan is the full light layout for a job.
type LightPlan struct {
	Paths        []PathPlan    `json:"paths"`
	Totals       SideTotals    `json:"totals"`
	PlacedLights int           `json:"placed_lights"` // Lights actually drawn along paths
	Estimate     LightEstimate `json:"estimate"`
}

// LightEstimate is the order quantity derived from the grand total.
type LightEstimate struct {
	TotalFeet       float64 `json:"total_feet"`
	SpacingFeet     float64 `json:"spacing_feet"`
	TotalLights     int     `json:"total_lights"`
	WastePercent    float64 `json:"waste_percent"`
	LightsWithWaste int     `json:"lights_with_waste"`
}

// Job ties everything together for save/load.
type Job struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Location    LatLng        `json:"location"`
	Scale       ScaleSettings `json:"scale"`
	DrawingMode DrawingMode   `json:"drawing_mode"`
	Paths       []Path        `json:"paths"`
	Fixtures    []Fixture     `json:"fixtures"`
	Lights      LightSettings `json:"lights"`
	Pricing     Pricing       `json:"pricing"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func NewJob() Job {
	now := time.Now().UTC()
	return Job{
		ID:          uuid.New().String()[:8],
		Name:        "Untitled",
		Scale:       ScaleSettings{Source: ScaleFromMap, Zoom: 21},
		DrawingMode: DrawingStraight,
		Paths:       []Path{},
		Fixtures:    []Fixture{},
		Lights:      DefaultLightSettings(),
		Pricing:     DefaultPricing(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
