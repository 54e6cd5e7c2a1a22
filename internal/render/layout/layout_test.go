package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	r := image.Rect(0, 0, 400, 400)
	if got, want := Inset(r, 8), image.Rect(8, 8, 392, 392); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got := Inset(r, 0); got != r {
		t.Errorf("Inset(0) = %v, want %v", got, r)
	}
	// Over-inset flips and is normalized rather than producing a negative rect.
	got := Inset(image.Rect(0, 0, 10, 10), 8)
	if got.Min.X > got.Max.X || got.Min.Y > got.Max.Y {
		t.Errorf("Inset not normalized: %v", got)
	}
}

func TestAnchors(t *testing.T) {
	r := image.Rect(10, 20, 110, 70)
	tests := []struct {
		name string
		got  image.Rectangle
		want image.Rectangle
	}{
		{"top-left", AnchorTopLeft(r, 30, 10), image.Rect(10, 20, 40, 30)},
		{"bottom-right", AnchorBottomRight(r, 30, 10), image.Rect(80, 60, 110, 70)},
		{"bottom-right clamped", AnchorBottomRight(r, 500, 500), r},
		{"top-left negative", AnchorTopLeft(r, -3, -3), image.Rect(10, 20, 10, 20)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestFitSquare(t *testing.T) {
	tests := []struct {
		in, want image.Rectangle
	}{
		{image.Rect(0, 0, 100, 50), image.Rect(25, 0, 75, 50)},
		{image.Rect(0, 0, 40, 100), image.Rect(0, 30, 40, 70)},
		{image.Rect(5, 5, 15, 15), image.Rect(5, 5, 15, 15)},
	}
	for _, tt := range tests {
		if got := FitSquare(tt.in); got != tt.want {
			t.Errorf("FitSquare(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
