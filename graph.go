// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package scanprep

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const maxticks = 40

type pagetime struct {
	Pgnum, Secs float64
}

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor: c,
		},
	}
}

// Graph creates a graph of the time taken to process each page of a
// batch, with a dashed guideline at the mean. Failed pages are left
// out. Page numbers are parsed from the leading digits of each file
// name; when none of the names carry one, pages are numbered in the
// order given.
func Graph(results []Result, title string, w io.Writer) error {
	// Organise the results to sort them by page
	var pages []pagetime
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		name := filepath.Base(r.Path)
		numend := strings.Index(name, "_")
		if numend == -1 {
			numend = strings.Index(name, ".")
		}
		if numend == -1 {
			continue
		}
		pgnum, err := strconv.ParseFloat(name[0:numend], 64)
		if err != nil {
			continue
		}
		pages = append(pages, pagetime{Pgnum: pgnum, Secs: r.Duration.Seconds()})
	}

	// If we failed to get any page numbers, just fake the lot
	if len(pages) == 0 {
		i := float64(1)
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			pages = append(pages, pagetime{Pgnum: i, Secs: r.Duration.Seconds()})
			i++
		}
	}

	if len(pages) < 2 {
		return errors.New("Not enough results to graph")
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Pgnum < pages[j].Pgnum })

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	var total float64
	tickevery := len(pages) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i, p := range pages {
		xvalues = append(xvalues, p.Pgnum)
		yvalues = append(yvalues, p.Secs)
		total += p.Secs
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: p.Pgnum, Label: fmt.Sprintf("%.0f", p.Pgnum)})
		}
	}
	// Make last tick the final page
	final := pages[len(pages)-1]
	ticks[len(ticks)-1] = chart.Tick{Value: final.Pgnum, Label: fmt.Sprintf("%.0f", final.Pgnum)}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	meanSeries := createLine(xvalues, total/float64(len(pages)), chart.ColorAlternateGray)
	meanSeries.Style.StrokeDashArray = []float64{5.0, 5.0}

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Page number",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Seconds",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
		},
		Series: []chart.Series{mainSeries, meanSeries},
	}
	return graph.Render(chart.PNG, w)
}
