// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package scanprep

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// scanDPI is the resolution the page images are assumed to have when
// sizing PDF pages (72 pts per inch).
const scanDPI = 300

// pxToPt converts a pixel value at scanDPI into a pt value
func pxToPt(i int) float64 {
	return float64(i) * 72.0 / scanDPI
}

// Fpdf assembles processed page images into a PDF, one page per
// image, with each page sized to its image.
type Fpdf struct {
	fpdf *gofpdf.Fpdf
}

// Setup creates a new PDF with appropriate settings
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddPage adds a page to the pdf filled with the image at imgpath
func (p *Fpdf) AddPage(imgpath string) error {
	f, err := os.Open(imgpath)
	if err != nil {
		return fmt.Errorf("Could not open file %s: %w", imgpath, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("Could not decode image %s: %w", imgpath, err)
	}

	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: pxToPt(cfg.Width), Ht: pxToPt(cfg.Height)})

	_ = p.fpdf.RegisterImageOptions(imgpath, gofpdf.ImageOptions{})
	p.fpdf.ImageOptions(imgpath, 0, 0, pxToPt(cfg.Width), pxToPt(cfg.Height), false, gofpdf.ImageOptions{}, 0, "")

	return p.fpdf.Error()
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
