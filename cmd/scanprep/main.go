// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

// scanprep preprocesses scanned page photographs to improve OCR
// accuracy, saving a processed copy of each page next to the input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"scanprep.xyz/scanprep"
	"scanprep.xyz/scanprep/internal/batch"
)

const usage = `Usage: scanprep [-c settings.yaml] [-w num] [-pdf out.pdf] [-graph out.png] [-v] image.png|dir [...]

scanprep prepares scanned page photographs for OCR. Each PNG given,
or found directly inside a directory given, is cropped, contrast
stretched, binarized, denoised, annotated with its main text region
and scaled to a fixed height, with the result saved alongside the
input with a _preprocessed.png suffix. Pages are processed in
parallel, and a page that cannot be read or processed is reported
and skipped without affecting the rest.
`

func isPNG(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".png")
}

// findPNGs returns the PNG files for one command line argument. A
// directory contributes every PNG directly inside it (no recursion);
// anything else is taken only if it has a .png suffix.
func findPNGs(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		if isPNG(path) {
			return []string{path}, nil
		}
		return nil, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && isPNG(e.Name()) {
			paths = append(paths, filepath.Join(path, e.Name()))
		}
	}
	return paths, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, usage)
		flag.PrintDefaults()
	}
	conf := flag.String("c", "", "Path to a YAML settings file overriding the default geometry")
	workers := flag.Int("w", 0, "Number of pages to process in parallel (overrides the settings file; 0 means 4 or the settings file value)")
	pdfout := flag.String("pdf", "", "Path to save a PDF assembled from the successfully processed pages")
	graphout := flag.String("graph", "", "Path to save a PNG graph of per page processing times")
	verbose := flag.Bool("v", false, "Verbose")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		verboselog = log.New(io.Discard, "", 0)
	}

	settings := scanprep.DefaultSettings()
	if *conf != "" {
		var err error
		settings, err = scanprep.LoadSettings(*conf)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	if *workers > 0 {
		settings.Workers = *workers
	}

	var paths []string
	for _, arg := range flag.Args() {
		found, err := findPNGs(arg)
		if err != nil {
			log.Printf("Skipping %s: %v", arg, err)
			continue
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		log.Fatal("No PNG files found in the provided arguments.")
	}

	fmt.Printf("Processing %d PNG files\n", len(paths))
	var results []scanprep.Result
	for r := range batch.Run(paths, settings) {
		fmt.Println(r)
		if r.Err == nil {
			verboselog.Printf("%s took %v", r.Path, r.Duration)
		}
		results = append(results, r)
	}

	if *graphout != "" {
		f, err := os.Create(*graphout)
		if err != nil {
			log.Fatalf("Error creating file %s: %v", *graphout, err)
		}
		err = scanprep.Graph(results, "Processing time", f)
		f.Close()
		if err != nil {
			log.Printf("Error creating graph: %v", err)
		} else {
			fmt.Printf("Created %s\n", *graphout)
		}
	}

	if *pdfout != "" {
		sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
		var pdf scanprep.Fpdf
		err := pdf.Setup()
		if err != nil {
			log.Fatalf("Error setting up PDF: %v", err)
		}
		added := 0
		for _, r := range results {
			if r.Err != nil {
				continue
			}
			verboselog.Printf("Adding %s to PDF", r.OutPath)
			err = pdf.AddPage(r.OutPath)
			if err != nil {
				log.Printf("Error adding %s to PDF: %v", r.OutPath, err)
				continue
			}
			added++
		}
		if added == 0 {
			log.Printf("Not saving %s: no pages were processed successfully", *pdfout)
		} else {
			err = pdf.Save(*pdfout)
			if err != nil {
				log.Printf("Error saving %s: %v", *pdfout, err)
			} else {
				fmt.Printf("Created %s\n", *pdfout)
			}
		}
	}
}
