package main

import (
	"fmt"
	"io"

	"quill/internal/driver"
)

func printTimings(out io.Writer, res *driver.Result) {
	if out == nil || res == nil {
		return
	}
	for _, phase := range res.Timings.Phases {
		line := fmt.Sprintf("%-9s %8.1f ms", phase.Name, phase.DurationMS)
		if phase.Items > 0 {
			line += fmt.Sprintf("  %d items", phase.Items)
		}
		if phase.Note != "" {
			line += "  " + phase.Note
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "%-9s %8.1f ms  %d files, %d cached fragments\n", "total", res.Timings.TotalMS, res.Files, res.CacheHits)
}
