// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"math"
)

// smallGaussTab holds the fixed coefficients customarily used for
// small Gaussian kernels when no sigma is given; they match OpenCV's
// getGaussianKernel, so images come out the same as ones blurred
// with it.
var smallGaussTab = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// gaussKernel returns a normalized one dimensional Gaussian kernel
// of the given odd size, with sigma derived from the size by the
// usual 0.3*((ksize-1)*0.5 - 1) + 0.8 rule. Callers must not modify
// the returned slice.
func gaussKernel(ksize int) []float64 {
	if k, ok := smallGaussTab[ksize]; ok {
		return k
	}
	sigma := 0.3*(float64(ksize-1)*0.5-1) + 0.8
	k := make([]float64, ksize)
	c := float64(ksize-1) / 2
	var sum float64
	for i := range k {
		d := float64(i) - c
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// convolveSep convolves a grayscale image with a separable kernel,
// kx across rows and ky down columns, replicating edge pixels at the
// borders. Results are rounded to the nearest intensity.
func convolveSep(src *image.Gray, kx, ky []float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	rx, ry := len(kx)/2, len(ky)/2

	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for i, k := range kx {
				sx := clamp(x+i-rx, 0, w-1)
				sum += k * float64(src.GrayAt(b.Min.X+sx, b.Min.Y+y).Y)
			}
			tmp[y*w+x] = sum
		}
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for j, k := range ky {
				sy := clamp(y+j-ry, 0, h-1)
				sum += k * tmp[sy*w+x]
			}
			v := math.Round(sum)
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out.Pix[y*out.Stride+x] = uint8(v)
		}
	}
	return out
}
