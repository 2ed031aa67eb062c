// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

// batch is a package used by the scanprep command to drive the
// preprocessing of many pages at once. It runs a fixed pool of
// workers over the input paths and streams a Result per page as each
// one finishes. A page failing, for any reason, never interrupts the
// others. Note that it is considered an "internal" package, not
// intended for external use, and no guarantee is made of the
// stability of any interfaces provided.
package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	"scanprep.xyz/scanprep"
	"scanprep.xyz/scanprep/preproc"
)

// OutputPath returns the path the processed version of a page is
// saved to: the input path with a _preprocessed suffix and a .png
// extension, next to the input.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_preprocessed.png"
}

// processPage runs one page through decode, transform and encode,
// capturing any failure in the Result rather than returning it.
func processPage(path string, s scanprep.Settings) scanprep.Result {
	start := time.Now()

	img, err := imaging.Open(path)
	if err != nil {
		return scanprep.Result{
			Path:     path,
			Duration: time.Since(start),
			Err:      fmt.Errorf("could not read image: %w", err),
		}
	}

	processed, err := preproc.Process(img, s)
	if err != nil {
		return scanprep.Result{Path: path, Duration: time.Since(start), Err: err}
	}

	outpath := OutputPath(path)
	err = imaging.Save(processed, outpath)
	if err != nil {
		return scanprep.Result{
			Path:     path,
			Duration: time.Since(start),
			Err:      fmt.Errorf("could not save image: %w", err),
		}
	}

	return scanprep.Result{Path: path, OutPath: outpath, Duration: time.Since(start)}
}

// Run processes every path with a fixed pool of s.Workers workers,
// streaming one Result per input on the returned channel as each
// page completes. No ordering is promised between pages. The channel
// is closed once every page has been reported.
func Run(paths []string, s scanprep.Settings) <-chan scanprep.Result {
	jobs := make(chan string)
	results := make(chan scanprep.Result)

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- processPage(path, s)
			}
		}()
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	return results
}
