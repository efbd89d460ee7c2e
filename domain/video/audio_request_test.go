package video

import (
	"errors"
	"strings"
	"testing"
)

func TestAudioRequestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*AudioRequest)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(r *AudioRequest) {},
		},
		{
			name: "negative volume clamps to zero",
			mutate: func(r *AudioRequest) {
				r.Volume = -2
			},
		},
		{
			name: "format normalized",
			mutate: func(r *AudioRequest) {
				r.AudioFormat = ".WAV"
			},
		},
		{
			name: "unsupported format",
			mutate: func(r *AudioRequest) {
				r.AudioFormat = "flac"
			},
			wantErr:     true,
			errContains: "unsupported audio format",
		},
		{
			name: "zero speed",
			mutate: func(r *AudioRequest) {
				r.Speed = 0
			},
			wantErr:     true,
			errContains: "speed",
		},
		{
			name: "negative speed",
			mutate: func(r *AudioRequest) {
				r.Speed = -1
			},
			wantErr:     true,
			errContains: "speed",
		},
		{
			name: "invalid filename characters",
			mutate: func(r *AudioRequest) {
				r.Filename = `bad:name?`
			},
			wantErr:     true,
			errContains: "invalid filename",
		},
		{
			name: "negative fps",
			mutate: func(r *AudioRequest) {
				r.FPS = -30
			},
			wantErr:     true,
			errContains: "fps",
		},
		{
			name: "unparseable start time",
			mutate: func(r *AudioRequest) {
				r.StartTime = "nope"
			},
			wantErr:     true,
			errContains: "invalid start time",
		},
		{
			name: "zero stop time",
			mutate: func(r *AudioRequest) {
				r.StopTime = "0"
			},
			wantErr:     true,
			errContains: "invalid stop time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewAudioRequest()
			tt.mutate(req)

			err := req.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
					return
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
			if req.Volume < 0 {
				t.Errorf("Validate() left negative volume %v", req.Volume)
			}
		})
	}
}

func TestAudioRequestPrepare(t *testing.T) {
	meta := &Metadata{
		Path:            "/videos/test.mp4",
		Width:           1920,
		Height:          1080,
		FPS:             30,
		FrameCount:      1800,
		DurationSeconds: 60,
		HasAudio:        true,
	}

	t.Run("fills defaults from metadata", func(t *testing.T) {
		req := NewAudioRequest()
		if err := req.Prepare(meta); err != nil {
			t.Fatalf("Prepare() unexpected error: %v", err)
		}

		if req.Filename != "test" {
			t.Errorf("Prepare() Filename = %q, want %q", req.Filename, "test")
		}
		if req.FPS != 30 {
			t.Errorf("Prepare() FPS = %v, want 30", req.FPS)
		}
		if req.Range.StopSecond != 60 {
			t.Errorf("Prepare() Range.StopSecond = %v, want 60", req.Range.StopSecond)
		}
		if req.OutputFilename() != "test.mp3" {
			t.Errorf("OutputFilename() = %q, want %q", req.OutputFilename(), "test.mp3")
		}
	})

	t.Run("keeps an explicit filename", func(t *testing.T) {
		req := NewAudioRequest()
		req.Filename = "custom"
		req.AudioFormat = "wav"
		if err := req.Prepare(meta); err != nil {
			t.Fatalf("Prepare() unexpected error: %v", err)
		}

		if req.OutputFilename() != "custom.wav" {
			t.Errorf("OutputFilename() = %q, want %q", req.OutputFilename(), "custom.wav")
		}
	})

	t.Run("computes the requested range", func(t *testing.T) {
		req := NewAudioRequest()
		req.StartTime = "0:30"
		req.StopTime = "45"
		if err := req.Prepare(meta); err != nil {
			t.Fatalf("Prepare() unexpected error: %v", err)
		}

		if req.Range.StartFrame != 900 || req.Range.StopFrame != 1350 {
			t.Errorf("Prepare() frames = %d..%d, want 900..1350", req.Range.StartFrame, req.Range.StopFrame)
		}
	})

	t.Run("rejects a video without audio", func(t *testing.T) {
		silent := *meta
		silent.HasAudio = false

		req := NewAudioRequest()
		if err := req.Prepare(&silent); !errors.Is(err, ErrNoAudio) {
			t.Errorf("Prepare() error = %v, want ErrNoAudio", err)
		}
	})

	t.Run("fps override drives frame numbers", func(t *testing.T) {
		req := NewAudioRequest()
		req.FPS = 60
		req.StopTime = "10"
		if err := req.Prepare(meta); err != nil {
			t.Fatalf("Prepare() unexpected error: %v", err)
		}

		if req.Range.StopFrame != 600 {
			t.Errorf("Prepare() StopFrame = %d, want 600", req.Range.StopFrame)
		}
	})
}
