package video

import (
	"fmt"
	"regexp"
)

// invalidFilenameChars are characters that cannot appear in an output
// filename on any supported platform.
var invalidFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// CommonOptions are the extraction request fields shared by every method.
//
// StartTime and StopTime accept a number of seconds or a playback timestamp
// (see ParseTime). Empty values default to the start and end of the video.
// FPS overrides the probed frame rate used to compute the frame range; zero
// means "use the probed value".
type CommonOptions struct {
	StartTime string  `json:"start_time,omitempty"`
	StopTime  string  `json:"stop_time,omitempty"`
	DestDir   string  `json:"destdir,omitempty"`
	Filename  string  `json:"filename,omitempty"`
	Overwrite bool    `json:"overwrite"`
	FPS       float64 `json:"fps"`

	// Range is computed by Prepare from the requested times and the video
	// metadata.
	Range Range `json:"range"`

	// DestPath is the resolved output path, set by the extraction service
	// after the request is prepared.
	DestPath string `json:"destpath,omitempty"`
}

// Common exposes the shared options through the per-method request types.
func (o *CommonOptions) Common() *CommonOptions {
	return o
}

// validateCommon checks the shared fields that can be validated without
// video metadata.
func (o *CommonOptions) validateCommon() error {
	if o.StartTime != "" {
		if _, err := ParseTime(o.StartTime); err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
	}
	if o.StopTime != "" {
		seconds, err := ParseTime(o.StopTime)
		if err != nil {
			return fmt.Errorf("invalid stop time: %w", err)
		}
		if seconds <= 0 {
			return fmt.Errorf("invalid stop time: must be greater than zero, got %q", o.StopTime)
		}
	}
	if o.FPS < 0 {
		return fmt.Errorf("invalid fps: must be a positive number, got %g", o.FPS)
	}
	if o.Filename != "" && invalidFilenameChars.MatchString(o.Filename) {
		return fmt.Errorf(`invalid filename %q: must not contain any of \/:*?"<>|`, o.Filename)
	}
	return nil
}

// prepareCommon fills shared defaults from the video metadata and computes
// the extraction range.
func (o *CommonOptions) prepareCommon(meta *Metadata) error {
	if o.FPS == 0 {
		o.FPS = meta.FPS
	}

	startSecond := 0.0
	if o.StartTime != "" {
		parsed, err := ParseTime(o.StartTime)
		if err != nil {
			return fmt.Errorf("invalid start time: %w", err)
		}
		startSecond = parsed
	}

	stopSecond := meta.DurationSeconds
	if o.StopTime != "" {
		parsed, err := ParseTime(o.StopTime)
		if err != nil {
			return fmt.Errorf("invalid stop time: %w", err)
		}
		stopSecond = parsed
	}

	rng, err := NewRange(meta, startSecond, stopSecond, o.FPS)
	if err != nil {
		return err
	}
	o.Range = rng

	return nil
}

// outputDims resolves the output dimensions from an optional explicit
// width/height and a resize factor applied on top.
func outputDims(meta *Metadata, width, height int, resize float64) (int, int) {
	w, h := meta.Width, meta.Height
	if width > 0 && height > 0 {
		w, h = width, height
	}
	if resize != 1.0 {
		w = int(float64(w) * resize)
		h = int(float64(h) * resize)
	}
	return w, h
}

// validateDims checks an optional explicit dimensions pair.
func validateDims(width, height int) error {
	if width == 0 && height == 0 {
		return nil
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d: width and height must be positive integers", width, height)
	}
	return nil
}

func validatePositive(name string, n float64) error {
	if n <= 0 {
		return fmt.Errorf("invalid %s value: must be a positive number, got %g", name, n)
	}
	return nil
}
