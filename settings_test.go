package scanprep

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Workers != 4 {
		t.Errorf("Workers: got %d, want 4", s.Workers)
	}
	if s.TargetHeight != 1568 {
		t.Errorf("TargetHeight: got %d, want 1568", s.TargetHeight)
	}
	if s.CropBottom != 250 {
		t.Errorf("CropBottom: got %d, want 250", s.CropBottom)
	}
	if s.CropMargin != 20 {
		t.Errorf("CropMargin: got %d, want 20", s.CropMargin)
	}
	if s.Pad != 10 {
		t.Errorf("Pad: got %d, want 10", s.Pad)
	}
	if want := (Box{X0: 0, Y0: 4375, X1: 300, Y1: 4433}); s.Watermark != want {
		t.Errorf("Watermark: got %+v, want %+v", s.Watermark, want)
	}
}

func TestLoadSettings(t *testing.T) {
	yml := `workers: 2
targetheight: 800
watermark:
  x1: 150
`
	path := filepath.Join(t.TempDir(), "settings.yaml")
	err := os.WriteFile(path, []byte(yml), 0644)
	if err != nil {
		t.Fatalf("Could not write settings file: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Could not load settings: %v", err)
	}
	if s.Workers != 2 {
		t.Errorf("Workers: got %d, want 2", s.Workers)
	}
	if s.TargetHeight != 800 {
		t.Errorf("TargetHeight: got %d, want 800", s.TargetHeight)
	}
	if s.Watermark.X1 != 150 {
		t.Errorf("Watermark.X1: got %d, want 150", s.Watermark.X1)
	}
	// everything not in the file keeps its default
	if s.CropBottom != 250 {
		t.Errorf("CropBottom: got %d, want the default 250", s.CropBottom)
	}
	if s.Watermark.Y0 != 4375 {
		t.Errorf("Watermark.Y0: got %d, want the default 4375", s.Watermark.Y0)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Errorf("Expected an error for a missing settings file")
	}
}
