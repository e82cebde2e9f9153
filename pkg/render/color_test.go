package render

import (
	"image/color"
	"testing"
)

func TestLerpColorEndpoints(t *testing.T) {
	c1 := color.RGBA{10, 20, 30, 255}
	c2 := color.RGBA{110, 120, 130, 55}

	if got := LerpColor(c1, c2, 0); got != c1 {
		t.Fatalf("t=0: %+v", got)
	}
	if got := LerpColor(c1, c2, 1); got != c2 {
		t.Fatalf("t=1: %+v", got)
	}
	mid := LerpColor(c1, c2, 0.5)
	if mid.R != 60 || mid.G != 70 || mid.B != 80 || mid.A != 155 {
		t.Fatalf("t=0.5: %+v", mid)
	}
	// Out-of-range t clamps.
	if got := LerpColor(c1, c2, -3); got != c1 {
		t.Fatalf("t=-3: %+v", got)
	}
	if got := LerpColor(c1, c2, 7); got != c2 {
		t.Fatalf("t=7: %+v", got)
	}
}

func TestDarkenColor(t *testing.T) {
	c := color.RGBA{200, 100, 50, 220}
	got := DarkenColor(c)
	if got.R != 100 || got.G != 50 || got.B != 25 {
		t.Fatalf("DarkenColor: %+v", got)
	}
	if got.A != c.A {
		t.Fatal("DarkenColor must preserve alpha")
	}
}

func TestLighten(t *testing.T) {
	c := color.RGBA{240, 10, 130, 90}
	got := Lighten(c, 40)
	if got.R != 255 || got.G != 50 || got.B != 170 {
		t.Fatalf("Lighten: %+v", got)
	}
	if got.A != 255 {
		t.Fatal("Lighten must return an opaque color")
	}
}
