package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %x", c.Grid[0][0])
	}

	c.Set(7, 7)
	if c.Grid[1][3] == 0x2800 {
		t.Error("expected bottom-right sub-pixel set")
	}

	// Out of range is a no-op.
	c.Set(-1, 0)
	c.Set(8, 0)
	c.Set(0, 8)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("clear left %x behind", r)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("line drew nothing")
	}
}

func TestHSVAToRGBACorners(t *testing.T) {
	cases := []struct {
		h          float64
		r, g, b, a uint8
	}{
		{0, 255, 0, 0, 255},
		{120, 0, 255, 0, 255},
		{240, 0, 0, 255, 255},
	}
	for _, c := range cases {
		r, g, b, a := HSVAToRGBA(c.h, 1, 1, 1)
		if r != c.r || g != c.g || b != c.b || a != c.a {
			t.Errorf("h=%v: got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				c.h, r, g, b, a, c.r, c.g, c.b, c.a)
		}
	}
}

func TestDivergenceHueEndpoints(t *testing.T) {
	if h := DivergenceHue(0); h != 270 {
		t.Errorf("hue at divergence 0 = %v, want 270", h)
	}
	if h := DivergenceHue(1); h != 0 {
		t.Errorf("hue at divergence 1 = %v, want 0", h)
	}
	// Out-of-range inputs clamp instead of escaping the wheel.
	if h := DivergenceHue(1.5); h != 0 {
		t.Errorf("hue at divergence 1.5 = %v, want 0", h)
	}
	if h := DivergenceHue(-0.5); h != 270 {
		t.Errorf("hue at divergence -0.5 = %v, want 270", h)
	}
}

func TestCanvasSVG(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)

	svg := CanvasSVG(c, 4)
	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected at least one circle for the lit pixel")
	}
	if CanvasSVG(nil, 4) != "" {
		t.Error("nil canvas should render empty")
	}
}
