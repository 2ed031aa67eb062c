package scanprep

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFpdf(t *testing.T) {
	dir := t.TempDir()
	imgpath := filepath.Join(dir, "page.png")
	g := image.NewGray(image.Rect(0, 0, 30, 40))
	for i := range g.Pix {
		g.Pix[i] = 255
	}
	g.SetGray(15, 20, color.Gray{Y: 0})
	f, err := os.Create(imgpath)
	if err != nil {
		t.Fatalf("Could not create file %s: %v", imgpath, err)
	}
	err = png.Encode(f, g)
	f.Close()
	if err != nil {
		t.Fatalf("Could not encode image: %v", err)
	}

	var pdf Fpdf
	err = pdf.Setup()
	if err != nil {
		t.Fatalf("Could not set up PDF: %v", err)
	}
	err = pdf.AddPage(imgpath)
	if err != nil {
		t.Fatalf("Could not add page: %v", err)
	}

	outpath := filepath.Join(dir, "out.pdf")
	err = pdf.Save(outpath)
	if err != nil {
		t.Fatalf("Could not save PDF: %v", err)
	}
	fi, err := os.Stat(outpath)
	if err != nil {
		t.Fatalf("Could not stat %s: %v", outpath, err)
	}
	if fi.Size() == 0 {
		t.Errorf("Saved PDF is empty")
	}
}

func TestFpdfMissingImage(t *testing.T) {
	var pdf Fpdf
	err := pdf.Setup()
	if err != nil {
		t.Fatalf("Could not set up PDF: %v", err)
	}
	if err = pdf.AddPage(filepath.Join(t.TempDir(), "nonexistent.png")); err == nil {
		t.Errorf("Expected an error adding a missing image")
	}
}
