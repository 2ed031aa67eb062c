// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package preproc

import (
	"image"

	"github.com/disintegration/gift"
)

// applyGray runs a gift filter list over a grayscale image.
func applyGray(g *image.Gray, filters ...gift.Filter) *image.Gray {
	f := gift.New(filters...)
	out := image.NewGray(f.Bounds(g.Bounds()))
	f.Draw(out, g)
	return out
}

// dilate and erode use a square structuring element. On grayscale
// images these are the local maximum and minimum rank filters, which
// on a 0/255 image behave exactly as binary morphology.

func dilate(g *image.Gray, ksize int) *image.Gray {
	return applyGray(g, gift.Maximum(ksize, false))
}

func erode(g *image.Gray, ksize int) *image.Gray {
	return applyGray(g, gift.Minimum(ksize, false))
}

// closing is a dilation followed by an erosion; it fills small gaps
// and holes while preserving overall shape.
func closing(g *image.Gray, ksize int) *image.Gray {
	return erode(dilate(g, ksize), ksize)
}

// medianFilter replaces each pixel with the median of its
// ksize-square neighbourhood.
func medianFilter(g *image.Gray, ksize int) *image.Gray {
	return applyGray(g, gift.Median(ksize, false))
}
