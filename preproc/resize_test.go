package preproc

import (
	"errors"
	"testing"
)

func TestResizeToHeight(t *testing.T) {
	cases := []struct {
		w, h   int
		target int
		wantW  int
	}{
		// the width scale truncates rather than rounds
		{2960, 2750, 1568, 1687},
		{300, 100, 50, 150},
		{55, 100, 50, 27},
		{100, 300, 1568, 522},
	}

	for _, c := range cases {
		got, err := ResizeToHeight(uniform(c.w, c.h, 127), c.target)
		if err != nil {
			t.Errorf("ResizeToHeight(%dx%d, %d): unexpected error: %v", c.w, c.h, c.target, err)
			continue
		}
		b := got.Bounds()
		if b.Dy() != c.target || b.Dx() != c.wantW {
			t.Errorf("ResizeToHeight(%dx%d, %d): got %dx%d, want %dx%d", c.w, c.h, c.target, b.Dx(), b.Dy(), c.wantW, c.target)
		}
	}
}

func TestResizeToHeightPreservesValue(t *testing.T) {
	got, err := ResizeToHeight(uniform(100, 80, 127), 40)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	r, g, b, _ := got.At(25, 20).RGBA()
	if r>>8 != 127 || g>>8 != 127 || b>>8 != 127 {
		t.Errorf("Resampling a constant image changed its value: got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestResizeToHeightErrors(t *testing.T) {
	_, err := ResizeToHeight(uniform(100, 100, 0), 0)
	if err == nil {
		t.Fatalf("Expected error for a zero target height")
	}
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Error does not wrap ErrEmptyImage: %v", err)
	}
}
