package scanprep

import (
	"errors"
	"fmt"
	"testing"
)

func TestResultString(t *testing.T) {
	cases := []struct {
		name string
		r    Result
		want string
	}{
		{
			"success",
			Result{Path: "a.png", OutPath: "a_preprocessed.png"},
			"Created a_preprocessed.png",
		},
		{
			"failure",
			Result{Path: "b.png", Err: errors.New("could not read image")},
			"Error processing b.png: could not read image",
		},
		{
			"wrapped failure",
			Result{Path: "c.png", Err: fmt.Errorf("crop to 0x-10: %w", errors.New("empty image"))},
			"Error processing c.png: crop to 0x-10: empty image",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.String(); got != c.want {
				t.Errorf("Got %q, want %q", got, c.want)
			}
		})
	}
}
