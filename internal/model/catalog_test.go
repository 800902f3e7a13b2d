package model

import "testing"

func TestFindColorScheme(t *testing.T) {
	cs, ok := FindColorScheme("Christmas")
	if !ok {
		t.Fatal("expected christmas scheme to be found")
	}
	if len(cs.Colors) != 3 {
		t.Errorf("expected 3 colors, got %d", len(cs.Colors))
	}

	cs, ok = FindColorScheme("nope")
	if ok {
		t.Error("expected unknown scheme to report false")
	}
	if cs.Name != "rgbw" {
		t.Errorf("expected fallback to rgbw, got %s", cs.Name)
	}
}

func TestSchemeNamesIncludesDefault(t *testing.T) {
	names := SchemeNames()
	if len(names) != len(ColorSchemes) {
		t.Fatalf("expected %d names, got %d", len(ColorSchemes), len(names))
	}
	if names[0] != DefaultLightSettings().ColorScheme {
		t.Errorf("expected default scheme first, got %s", names[0])
	}
}

func TestSpacingLabelsRoundTrip(t *testing.T) {
	for _, label := range SpacingLabels() {
		if _, ok := SpacingFromLabel(label); !ok {
			t.Errorf("label %q did not map back to a spacing", label)
		}
	}
	v, ok := SpacingFromLabel("12 inches")
	if !ok || v != 12 {
		t.Errorf("expected 12, got %v (ok=%v)", v, ok)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8c00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != (RGB{R: 255, G: 140, B: 0}) {
		t.Errorf("unexpected color %+v", c)
	}

	if _, err := ParseHexColor("#fff"); err == nil {
		t.Error("expected error for short color")
	}
	if _, err := ParseHexColor("#gggggg"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestBulbColorCycles(t *testing.T) {
	cs, _ := FindColorScheme("rwb")
	if cs.BulbColor(0) != cs.BulbColor(3) {
		t.Error("expected bulb colors to cycle every 3 for rwb")
	}
	if cs.BulbColor(1) != (RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("expected white second bulb, got %+v", cs.BulbColor(1))
	}
}
