package video

import (
	"fmt"
	"math"
)

// Range is the validated extraction window, represented in seconds, as
// playback timestamps, and as frame numbers.
type Range struct {
	StartSecond    float64 `json:"start_second"`
	StopSecond     float64 `json:"stop_second"`
	StartTimestamp string  `json:"start_timestamp"`
	StopTimestamp  string  `json:"stop_timestamp"`
	StartFrame     int     `json:"start_frame"`
	StopFrame      int     `json:"stop_frame"`
}

// NewRange builds a Range from requested start/stop seconds and the frame
// rate used for extraction. The stop second is clamped to the video
// duration and the start second is clamped to zero before validation.
func NewRange(meta *Metadata, startSecond, stopSecond, fps float64) (Range, error) {
	if startSecond < 0 {
		startSecond = 0
	}
	if stopSecond > meta.DurationSeconds {
		stopSecond = meta.DurationSeconds
	}

	if startSecond >= meta.DurationSeconds {
		return Range{}, fmt.Errorf("%w: start second (%g) is at or past the video duration (%g)",
			ErrInvalidRange, startSecond, meta.DurationSeconds)
	}
	if stopSecond <= startSecond {
		return Range{}, fmt.Errorf("%w: stop second (%g) must be greater than start second (%g)",
			ErrInvalidRange, stopSecond, startSecond)
	}

	return Range{
		StartSecond:    startSecond,
		StopSecond:     stopSecond,
		StartTimestamp: FormatTimestamp(startSecond),
		StopTimestamp:  FormatTimestamp(stopSecond),
		StartFrame:     int(math.Floor(startSecond * fps)),
		StopFrame:      int(math.Floor(stopSecond * fps)),
	}, nil
}

// DurationSeconds returns the length of the extraction window in seconds.
func (r Range) DurationSeconds() float64 {
	return r.StopSecond - r.StartSecond
}
