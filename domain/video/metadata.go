package video

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Metadata holds the probed properties of a video file. A populated
// Metadata is required to prepare any extraction request.
type Metadata struct {
	Path            string  `json:"path"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	FPS             float64 `json:"fps"`
	FrameCount      int     `json:"frame_count"`
	DurationSeconds float64 `json:"duration_seconds"`
	HasAudio        bool    `json:"has_audio"`
	SizeBytes       int64   `json:"size_bytes"`
}

// Validate checks that the probed properties are usable for extraction.
func (m *Metadata) Validate() error {
	if m.Path == "" {
		return fmt.Errorf("video path is required")
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("video dimensions %dx%d could not be read, check the file", m.Width, m.Height)
	}
	if m.FPS <= 0 {
		return fmt.Errorf("video fps %g could not be read, check the file", m.FPS)
	}
	if m.FrameCount <= 0 {
		return fmt.Errorf("video frame count %d could not be read, check the file", m.FrameCount)
	}
	return nil
}

// MarshalJSON includes the derived timestamp and human-readable size
// alongside the probed fields.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	type alias Metadata
	return json.Marshal(struct {
		*alias
		DurationTimestamp string `json:"duration_timestamp"`
		Size              string `json:"size"`
	}{
		alias:             (*alias)(m),
		DurationTimestamp: m.DurationTimestamp(),
		Size:              m.Size(),
	})
}

// DurationTimestamp returns the video duration in H:MM:SS format.
func (m *Metadata) DurationTimestamp() string {
	return FormatTimestamp(m.DurationSeconds)
}

// Size returns the file size in a human-readable form.
func (m *Metadata) Size() string {
	n := float64(m.SizeBytes)
	for _, unit := range []string{"bytes", "KB", "MB", "GB", "TB"} {
		if n < 1024.0 {
			return fmt.Sprintf("%.2f %s", n, unit)
		}
		n /= 1024.0
	}
	return fmt.Sprintf("%.2f PB", n)
}

// Stem returns the video filename without its extension.
func (m *Metadata) Stem() string {
	base := filepath.Base(m.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Dir returns the directory containing the video file.
func (m *Metadata) Dir() string {
	return filepath.Dir(m.Path)
}
