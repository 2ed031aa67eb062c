// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const outlineThickness = 3

// cannyLow and cannyHigh are the hysteresis thresholds used when
// detecting edges for segmentation. The low threshold of 0 keeps
// every non flat pixel as a weak edge candidate.
const (
	cannyLow  = 0
	cannyHigh = 175
)

// blobMask blurs the page's edge map into solid blobs, one per slab
// of content, and binarises the result. The Gaussian kernel is much
// taller than it is wide so that stacked text lines merge into a
// single blob.
func blobMask(g *image.Gray) *image.Gray {
	edges := canny(g, cannyLow, cannyHigh)
	d := dilate(edges, 7)
	d = closing(d, 5)
	d = convolveSep(d, gaussKernel(19), gaussKernel(233))
	return threshold(d, otsu(d))
}

// largestRegion finds the 8-connected region of foreground pixels
// with the greatest area and returns its bounding rectangle. Ties go
// to the region encountered first in row major order. ok is false
// when the mask has no foreground at all.
func largestRegion(mask *image.Gray) (r image.Rectangle, ok bool) {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	seen := make([]bool, w*h)
	var best int

	var stack []int
	for start := 0; start < w*h; start++ {
		if seen[start] || mask.GrayAt(b.Min.X+start%w, b.Min.Y+start/w).Y == 0 {
			continue
		}
		area := 0
		minx, miny, maxx, maxy := start%w, start/w, start%w, start/w
		seen[start] = true
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%w, i/w
			area++
			if x < minx {
				minx = x
			}
			if x > maxx {
				maxx = x
			}
			if y < miny {
				miny = y
			}
			if y > maxy {
				maxy = y
			}
			for ny := y - 1; ny <= y+1; ny++ {
				for nx := x - 1; nx <= x+1; nx++ {
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					j := ny*w + nx
					if !seen[j] && mask.GrayAt(b.Min.X+nx, b.Min.Y+ny).Y != 0 {
						seen[j] = true
						stack = append(stack, j)
					}
				}
			}
		}
		if area > best {
			best = area
			r = image.Rect(minx, miny, maxx+1, maxy+1)
		}
	}
	return r, best > 0
}

// fillBand fills an inclusive coordinate range with a colour,
// clipped to the image.
func fillBand(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	b := img.Bounds()
	for y := clamp(y0, b.Min.Y, b.Max.Y-1); y <= clamp(y1, b.Min.Y, b.Max.Y-1); y++ {
		for x := clamp(x0, b.Min.X, b.Max.X-1); x <= clamp(x1, b.Min.X, b.Max.X-1); x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawRect draws an outlined rectangle with corner coordinates
// (x0,y0) and (x1,y1). The outline is centred on the rectangle's
// edges and clipped at the image borders.
func drawRect(img *image.NRGBA, x0, y0, x1, y1, thickness int, c color.NRGBA) {
	t := thickness / 2
	fillBand(img, x0-t, y0-t, x1+t, y0+t, c)
	fillBand(img, x0-t, y1-t, x1+t, y1+t, c)
	fillBand(img, x0-t, y0-t, x0+t, y1+t, c)
	fillBand(img, x1-t, y0-t, x1+t, y1+t, c)
}

// Segment locates the dominant text region of the page and outlines
// it in red on a colour copy of the image. The outline takes its
// horizontal extent from the detected region but uses fixed vertical
// bounds, inset 3*pad from the top and bottom of the page. When no
// region is detected the grayscale input is returned untouched, so
// callers must cope with either a grayscale or a colour result.
func Segment(g *image.Gray, pad int) image.Image {
	mask := blobMask(g)
	r, ok := largestRegion(mask)
	if !ok {
		return g
	}

	out := imaging.Clone(g)
	red := color.NRGBA{R: 255, A: 255}
	drawRect(out, r.Min.X, pad*3, r.Max.X, g.Bounds().Dy()-pad*3, outlineThickness, red)
	return out
}
