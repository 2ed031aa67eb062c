// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

/*
The scanprep package prepares scanned page photographs for OCR. It
applies a fixed sequence of enhancement transforms to each page -
cropping away the watermark band, stretching the contrast, adaptive
thresholding, despeckling, stroke repair, outlining the main text
region, and rescaling to a fixed height - and fans the work out over
a bounded pool of workers, so a directory of page scans can be
processed in one run.

The scanprep command is the usual way to use it:

	scanprep scans/

processes every PNG directly inside scans/, writing each result next
to its input with a _preprocessed.png suffix. Files and directories
can be mixed freely on the command line. Each page is reported as it
completes, and a page that cannot be read or processed never stops
the rest of the batch.

The transform stages live in the preproc package and are pure
functions over raster images; they can be used individually when only
part of the sequence is wanted. The geometry the stages use (crop
sizes, the watermark patch, the output height) is tuned for one
specific scan source, but every value can be overridden with a YAML
settings file passed via the -c flag.

Two extras are available after a batch: -pdf assembles the processed
pages into a single PDF, and -graph plots the per-page processing
time, which is a quick way to spot pages that the pipeline struggled
with.
*/
package scanprep
