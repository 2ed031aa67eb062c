package preproc

import (
	"image"
	"image/color"
	"testing"
)

func TestSegmentNoRegions(t *testing.T) {
	g := uniform(40, 100, 127)
	got := Segment(g, 2)
	if _, ok := got.(*image.Gray); !ok {
		t.Fatalf("Expected grayscale passthrough, got %T", got)
	}
	if !imgsequal(g, got) {
		t.Errorf("Output should equal the input pixel for pixel when nothing is found")
	}
}

func TestSegmentAnnotates(t *testing.T) {
	g := textpage(200, 100)
	got := Segment(g, 2)
	rgb, ok := got.(*image.NRGBA)
	if !ok {
		t.Fatalf("Expected colour annotated output, got %T", got)
	}
	if !rgb.Bounds().Eq(g.Bounds()) {
		t.Fatalf("Annotated output dimensions %v differ from input %v", rgb.Bounds(), g.Bounds())
	}

	red := color.NRGBA{R: 255, A: 255}
	found := false
	for y := 0; y < 100 && !found; y++ {
		for x := 0; x < 200 && !found; x++ {
			if rgb.NRGBAAt(x, y) == red {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("No red outline pixels in annotated output")
	}
}

func TestLargestRegion(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 20, 10))
	// 3x3 blob at (1,1) and a larger 4x4 blob at (10,4)
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for y := 4; y < 8; y++ {
		for x := 10; x < 14; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	r, ok := largestRegion(mask)
	if !ok {
		t.Fatalf("Expected a region to be found")
	}
	want := image.Rect(10, 4, 14, 8)
	if !r.Eq(want) {
		t.Errorf("Got region %v, want %v", r, want)
	}
}

func TestLargestRegionDiagonal(t *testing.T) {
	// Diagonally touching pixels belong to the same region
	mask := image.NewGray(image.Rect(0, 0, 6, 6))
	mask.SetGray(1, 1, color.Gray{Y: 255})
	mask.SetGray(2, 2, color.Gray{Y: 255})
	mask.SetGray(3, 3, color.Gray{Y: 255})

	r, ok := largestRegion(mask)
	if !ok {
		t.Fatalf("Expected a region to be found")
	}
	want := image.Rect(1, 1, 4, 4)
	if !r.Eq(want) {
		t.Errorf("Got region %v, want %v", r, want)
	}
}

func TestLargestRegionEmpty(t *testing.T) {
	if _, ok := largestRegion(uniform(10, 10, 0)); ok {
		t.Errorf("Found a region in an empty mask")
	}
}
