// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

// The preproc package implements the transform stages that prepare a
// scanned page photograph for OCR, and the Process function that
// runs them in their fixed order. Every stage is a pure function
// over raster images; nothing here knows about files or concurrency.
package preproc

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"scanprep.xyz/scanprep"
)

// ErrEmptyImage is returned, wrapped with the name of the stage that
// hit it, when a stage receives or would produce a zero area image.
var ErrEmptyImage = errors.New("empty image")

// Process runs the full transform sequence over one page image. The
// result is always scanprep.Settings.TargetHeight pixels tall, and is
// a colour image whenever the text region was found and annotated.
// Process is deterministic and never modifies its input.
func Process(img image.Image, s scanprep.Settings) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("grayscale: %w", ErrEmptyImage)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("grayscale: %w", ErrEmptyImage)
	}

	g := Grayscale(img)
	g, err := Crop(g, s.CropBottom, s.CropMargin)
	if err != nil {
		return nil, err
	}
	// Crop is the only stage that shrinks the image, so from here on
	// every stage input is known to be non empty.
	g = Normalize(g)
	g = Binarize(g)
	g = Denoise(g)
	CoverWatermark(g, s.Watermark)
	g = FixFont(g)
	annotated := Segment(g, s.Pad)
	return ResizeToHeight(annotated, s.TargetHeight)
}

// Grayscale converts an image to a single channel using the standard
// luma weighting. Images that are already grayscale are copied
// through unchanged.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Crop removes bottom rows of the page containing the watermark band
// along with a margin from each side. The watermark has a different
// skew to the page itself, which throws off the thresholding stages
// if it is left in.
func Crop(g *image.Gray, bottom, margin int) (*image.Gray, error) {
	b := g.Bounds()
	w := b.Dx() - 2*margin
	h := b.Dy() - bottom
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("crop to %dx%d: %w", w, h, ErrEmptyImage)
	}
	out := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), g, image.Pt(b.Min.X+margin, b.Min.Y), draw.Src)
	return out, nil
}

// Normalize stretches the pixel intensities linearly so the darkest
// pixel maps to 0 and the brightest to 255. A constant valued image
// is returned unchanged, as there is no contrast to stretch.
func Normalize(g *image.Gray) *image.Gray {
	b := g.Bounds()
	min, max := uint8(255), uint8(0)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := g.GrayAt(x, y).Y
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if min >= max {
		draw.Draw(out, out.Bounds(), g, b.Min, draw.Src)
		return out
	}
	scale := 255.0 / float64(max-min)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := g.GrayAt(x, y).Y
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: uint8(float64(v-min)*scale + 0.5)})
		}
	}
	return out
}

// adaptiveOffset is subtracted from the neighbourhood mean when
// adaptively thresholding, biasing slightly towards background.
const adaptiveOffset = 2

// Binarize smooths sensor noise with a small Gaussian blur and then
// thresholds each pixel against the Gaussian weighted mean of its
// 11x11 neighbourhood, less a small offset. Pixels above the local
// threshold become white, so ink comes out black at this point.
func Binarize(g *image.Gray) *image.Gray {
	k5 := gaussKernel(5)
	blurred := convolveSep(g, k5, k5)
	k11 := gaussKernel(11)
	mean := convolveSep(blurred, k11, k11)
	out := image.NewGray(blurred.Bounds())
	for i, v := range blurred.Pix {
		if int(v) > int(mean.Pix[i])-adaptiveOffset {
			out.Pix[i] = 255
		}
	}
	return out
}

// Denoise removes the salt and pepper speckle that scanning
// introduces with a median filter, then reconnects thin strokes the
// filter may have broken with a small closing.
func Denoise(g *image.Gray) *image.Gray {
	return closing(medianFilter(g, 5), 5)
}

// CoverWatermark paints the given area white, in place. On this scan
// layout the area covers the watermark fragments that survive the
// bottom crop. The box is clipped to the page, so smaller pages are
// safe.
func CoverWatermark(g *image.Gray, box scanprep.Box) {
	r := image.Rect(box.X0, box.Y0, box.X1+1, box.Y1+1).Intersect(g.Bounds())
	draw.Draw(g, r, image.NewUniform(color.Gray{Y: 255}), image.Point{}, draw.Src)
}

// FixFont repairs glyph shapes on a binarized page: an erode/dilate
// pass on the inverted image thins strokes and drops small noise
// blobs, and a closing reconnects fragmented glyph parts. The
// polarity is restored before returning.
func FixFont(g *image.Gray) *image.Gray {
	inv := invert(g)
	inv = erode(inv, 3)
	inv = dilate(inv, 3)
	inv = closing(inv, 7)
	return invert(inv)
}

// invert flips the polarity of a grayscale image.
func invert(g *image.Gray) *image.Gray {
	b := g.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: 255 - g.GrayAt(x, y).Y})
		}
	}
	return out
}
