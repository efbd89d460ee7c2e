package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gurrutia/videoxt/application/extraction"
	"github.com/gurrutia/videoxt/domain/video"
)

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	io.Writer
}

// DefaultOutput is the writer used in production
var DefaultOutput OutputWriter = os.Stdout

// printJSON writes an indented JSON representation of v
func printJSON(out OutputWriter, label string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", label, err)
		return
	}
	fmt.Fprintf(out, "%s:\n%s\n", label, data)
}

// jsonReporter prints the probed video and the prepared request before an
// extraction starts
type jsonReporter struct {
	out OutputWriter
}

// Prepared implements extraction.Reporter
func (r jsonReporter) Prepared(meta *video.Metadata, request any) {
	printJSON(r.out, "video", meta)
	printJSON(r.out, "request", request)
}

// newReporter returns a reporter matching the quiet flag
func newReporter(quiet bool, out OutputWriter) extraction.Reporter {
	if quiet {
		return extraction.NopReporter{}
	}
	return jsonReporter{out: out}
}

// reportResult prints the result unless quiet and converts a failed
// extraction into an error so the process exits non-zero
func reportResult(result *video.Result, quiet bool, out OutputWriter) error {
	if !quiet {
		printJSON(out, "result", result)
	}
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}
	return nil
}
