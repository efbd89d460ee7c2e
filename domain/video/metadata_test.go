package video

import (
	"encoding/json"
	"strings"
	"testing"
)

func validMetadata() *Metadata {
	return &Metadata{
		Path:            "/videos/recording.mp4",
		Width:           1920,
		Height:          1080,
		FPS:             30,
		FrameCount:      1800,
		DurationSeconds: 60,
		HasAudio:        true,
		SizeBytes:       5 << 20,
	}
}

func TestMetadataValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(m *Metadata)
		errContains string
	}{
		{
			name:   "valid metadata",
			modify: func(m *Metadata) {},
		},
		{
			name:        "missing path",
			modify:      func(m *Metadata) { m.Path = "" },
			errContains: "path is required",
		},
		{
			name:        "unreadable dimensions",
			modify:      func(m *Metadata) { m.Width = 0 },
			errContains: "dimensions",
		},
		{
			name:        "unreadable fps",
			modify:      func(m *Metadata) { m.FPS = 0 },
			errContains: "fps",
		},
		{
			name:        "unreadable frame count",
			modify:      func(m *Metadata) { m.FrameCount = 0 },
			errContains: "frame count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validMetadata()
			tt.modify(meta)

			err := meta.Validate()
			if tt.errContains == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.errContains)
			}
		})
	}
}

func TestMetadataSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "bytes", bytes: 512, want: "512.00 bytes"},
		{name: "kilobytes", bytes: 2048, want: "2.00 KB"},
		{name: "megabytes", bytes: 5 << 20, want: "5.00 MB"},
		{name: "gigabytes", bytes: 3 << 30, want: "3.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validMetadata()
			meta.SizeBytes = tt.bytes
			if got := meta.Size(); got != tt.want {
				t.Errorf("Size() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetadataStem(t *testing.T) {
	meta := validMetadata()
	if got := meta.Stem(); got != "recording" {
		t.Errorf("Stem() = %q, want %q", got, "recording")
	}
	if got := meta.Dir(); got != "/videos" {
		t.Errorf("Dir() = %q, want %q", got, "/videos")
	}
}

func TestMetadataMarshalJSON(t *testing.T) {
	meta := validMetadata()
	meta.DurationSeconds = 3725

	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}

	if decoded["duration_timestamp"] != "1:02:05" {
		t.Errorf("duration_timestamp = %v, want %q", decoded["duration_timestamp"], "1:02:05")
	}
	if decoded["size"] != "5.00 MB" {
		t.Errorf("size = %v, want %q", decoded["size"], "5.00 MB")
	}
	if decoded["path"] != "/videos/recording.mp4" {
		t.Errorf("path = %v, want the probed path", decoded["path"])
	}
}
