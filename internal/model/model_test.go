package model

import (
	"math"
	"testing"
)

func TestParseSide(t *testing.T) {
	cases := map[string]Side{
		"front":     SideFront,
		"Left Side": SideLeft,
		"leftSide":  SideLeft,
		"R":         SideRight,
		"rear":      SideBack,
		" back ":    SideBack,
	}
	for in, want := range cases {
		got, ok := ParseSide(in)
		if !ok || got != want {
			t.Errorf("ParseSide(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseSide("roof"); ok {
		t.Error("expected unknown side to fail")
	}
}

func TestSideLabelsAndColors(t *testing.T) {
	seen := map[RGB]bool{}
	for _, s := range AllSides() {
		if s.Label() == "" {
			t.Errorf("empty label for %s", s)
		}
		seen[s.Color()] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct side colors, got %d", len(seen))
	}
}

func TestParseDrawingMode(t *testing.T) {
	if m, ok := ParseDrawingMode("Freehand"); !ok || m != DrawingFreehand {
		t.Errorf("expected freehand, got %q", m)
	}
	if _, ok := ParseDrawingMode("spline"); ok {
		t.Error("expected unknown mode to fail")
	}
}

func TestNewPathCopiesPoints(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	p := NewPath(SideFront, pts)
	pts[0].X = 99

	if p.Points[0].X != 0 {
		t.Error("path should not alias the caller's slice")
	}
	if p.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestSideTotalsAdd(t *testing.T) {
	var tot SideTotals
	tot.Add(SideFront, 10)
	tot.Add(SideFront, 15)
	tot.Add(SideBack, 5)
	tot.Add(SideLeft, -3)
	tot.Add(SideRight, math.NaN())

	if tot.Get(SideFront) != 25 {
		t.Errorf("expected front 25, got %f", tot.Front)
	}
	if tot.Left != 0 || tot.Right != 0 {
		t.Error("negative and NaN contributions should be ignored")
	}
	if tot.Grand() != 30 {
		t.Errorf("expected grand 30, got %f", tot.Grand())
	}
}

func TestNewJobDefaults(t *testing.T) {
	j := NewJob()
	if j.Scale.Zoom != 21 || j.Scale.Source != ScaleFromMap {
		t.Errorf("unexpected scale defaults %+v", j.Scale)
	}
	if j.DrawingMode != DrawingStraight {
		t.Errorf("expected straight mode, got %s", j.DrawingMode)
	}
	if j.Lights.SpacingFeet() != 8.0/12.0 {
		t.Errorf("unexpected spacing %f", j.Lights.SpacingFeet())
	}
	if j.Paths == nil || j.Fixtures == nil {
		t.Error("expected non-nil slices")
	}
}
