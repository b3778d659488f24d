package core

import "testing"

func TestBoxRectangle2D(t *testing.T) {
	box := Box{{Lo: -1, Hi: 1}, {Lo: -2, Hi: 2}}

	xlo, ylo, xhi, yhi, err := box.Rectangle2D(0, 1)
	if err != nil {
		t.Fatalf("Rectangle2D failed: %v", err)
	}
	if xlo != -1 || ylo != -2 || xhi != 1 || yhi != 2 {
		t.Errorf("Rectangle2D(0, 1) = (%g, %g, %g, %g), want (-1, -2, 1, 2)", xlo, ylo, xhi, yhi)
	}
}

func TestBoxRectangle2DRejectsOutOfRange(t *testing.T) {
	box := Box{{Lo: -1, Hi: 1}}
	if _, _, _, _, err := box.Rectangle2D(0, 5); err == nil {
		t.Fatal("expected out-of-range error, got nil")
	}
}
