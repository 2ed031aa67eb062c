// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package scanprep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Box is an axis aligned rectangle in pixel coordinates. Both corners
// are inclusive, so a Box covers the columns X0 to X1 and the rows
// Y0 to Y1.
type Box struct {
	X0 int `yaml:"x0"`
	Y0 int `yaml:"y0"`
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
}

// Settings holds every tunable of a preprocessing run. The zero
// value is not useful; start from DefaultSettings, which carries the
// geometry the pipeline was calibrated with.
type Settings struct {
	// Workers is the number of pages processed in parallel.
	Workers int `yaml:"workers"`
	// TargetHeight is the height in pixels every processed page is
	// scaled to.
	TargetHeight int `yaml:"targetheight"`
	// CropBottom is the number of rows removed from the bottom of
	// each page, covering the watermark band.
	CropBottom int `yaml:"cropbottom"`
	// CropMargin is the number of columns removed from each side.
	CropMargin int `yaml:"cropmargin"`
	// Pad is the base padding unit; the text region outline is inset
	// 3*Pad from the top and bottom of the page.
	Pad int `yaml:"pad"`
	// Watermark is the area painted white after cropping, where
	// watermark fragments survive on this scan layout. It is given in
	// post-crop pixel coordinates and clipped on smaller pages.
	Watermark Box `yaml:"watermark"`
}

// DefaultSettings returns the settings for the scan source the
// pipeline was built for. Note that the crop and watermark geometry
// are only meaningful for pages of a consistent layout.
func DefaultSettings() Settings {
	return Settings{
		Workers:      4,
		TargetHeight: 1568,
		CropBottom:   250,
		CropMargin:   20,
		Pad:          10,
		Watermark:    Box{X0: 0, Y0: 4375, X1: 300, Y1: 4433},
	}
}

// LoadSettings reads settings from a YAML file. Any field not set in
// the file keeps its default value.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("Error reading settings from %s: %w", path, err)
	}
	err = yaml.Unmarshal(b, &s)
	if err != nil {
		return s, fmt.Errorf("Error parsing settings from %s: %w", path, err)
	}
	return s, nil
}
