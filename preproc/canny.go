// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
)

// Tangents of 22.5 and 67.5 degrees, the boundaries between the four
// quantized gradient directions used for non maximum suppression.
const (
	tg22 = 0.41421356237309503
	tg67 = 2.414213562373095
)

// canny computes an edge map with the Canny algorithm: 3x3 Sobel
// gradients with an L1 magnitude, non maximum suppression along the
// gradient direction, and hysteresis keeping weak edges (above low)
// only where they connect to a strong one (above high).
func canny(g *image.Gray, low, high int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()

	at := func(x, y int) int {
		return int(g.GrayAt(b.Min.X+clamp(x, 0, w-1), b.Min.Y+clamp(y, 0, h-1)).Y)
	}

	dx := make([]int, w*h)
	dy := make([]int, w*h)
	mag := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			i := y*w + x
			dx[i] = gx
			dy[i] = gy
			mag[i] = abs(gx) + abs(gy)
		}
	}

	// 0 suppressed, 1 weak, 2 strong
	class := make([]uint8, w*h)
	magat := func(x, y int) int {
		return mag[clamp(y, 0, h-1)*w+clamp(x, 0, w-1)]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}
			ax, ay := float64(abs(dx[i])), float64(abs(dy[i]))
			var n1, n2 int
			switch {
			case ay < tg22*ax:
				n1, n2 = magat(x-1, y), magat(x+1, y)
			case ay > tg67*ax:
				n1, n2 = magat(x, y-1), magat(x, y+1)
			case (dx[i] > 0) == (dy[i] > 0):
				n1, n2 = magat(x-1, y-1), magat(x+1, y+1)
			default:
				n1, n2 = magat(x+1, y-1), magat(x-1, y+1)
			}
			if m > n1 && m >= n2 {
				if m > high {
					class[i] = 2
				} else {
					class[i] = 1
				}
			}
		}
	}

	// Flood out from the strong edges through connected weak ones
	out := image.NewGray(image.Rect(0, 0, w, h))
	var stack []int
	for i, c := range class {
		if c == 2 {
			out.Pix[i] = 255
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if class[j] == 1 && out.Pix[j] == 0 {
					out.Pix[j] = 255
					stack = append(stack, j)
				}
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
