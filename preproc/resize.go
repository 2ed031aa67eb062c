// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package preproc

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	x *= math.Pi
	return math.Sin(x) / x
}

// lanczos4 is a 4 lobe Lanczos resampling filter. The imaging
// package only ships the 3 lobe variant, which rings slightly more
// on the hard black/white transitions a binarized page is full of.
var lanczos4 = imaging.ResampleFilter{
	Support: 4.0,
	Kernel: func(x float64) float64 {
		x = math.Abs(x)
		if x >= 4.0 {
			return 0
		}
		return sinc(x) * sinc(x/4.0)
	},
}

// ResizeToHeight scales an image to the given height, preserving the
// aspect ratio. The output width is the truncated product of the
// input width and the scale factor.
func ResizeToHeight(img image.Image, height int) (image.Image, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("resize: %w", ErrEmptyImage)
	}
	width := int(float64(b.Dx()) * float64(height) / float64(b.Dy()))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("resize to %dx%d: %w", width, height, ErrEmptyImage)
	}
	return imaging.Resize(img, width, height, lanczos4), nil
}
