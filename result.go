// Copyright 2026 P. Hughes.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file.

package scanprep

import (
	"fmt"
	"time"
)

// Result records the outcome of processing one page. Exactly one of
// OutPath and Err is meaningful: a page either produced an output
// file or failed with a cause.
type Result struct {
	Path     string
	OutPath  string
	Duration time.Duration
	Err      error
}

// String renders a Result as the one line report printed for each
// page. Failed pages include the full cause chain.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Error processing %s: %v", r.Path, r.Err)
	}
	return fmt.Sprintf("Created %s", r.OutPath)
}
