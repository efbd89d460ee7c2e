package opencv

import (
	"context"
	"fmt"
	"os"

	"gocv.io/x/gocv"

	"github.com/gurrutia/videoxt/domain/video"
)

// Prober implements video.Prober by reading video properties with OpenCV.
// OpenCV reports nothing about audio, so an AudioDetector fills that in.
type Prober struct {
	audio video.AudioDetector
}

// NewProber creates a new OpenCV-based prober
func NewProber(audio video.AudioDetector) *Prober {
	return &Prober{audio: audio}
}

// Probe implements video.Prober
func (p *Prober) Probe(ctx context.Context, path string) (*video.Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading video file %s: %w", path, err)
	}

	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening video %s: %w", path, err)
	}
	defer capture.Close()

	fps := capture.Get(gocv.VideoCaptureFPS)
	frameCount := int(capture.Get(gocv.VideoCaptureFrameCount))

	var duration float64
	if fps > 0 {
		duration = float64(frameCount) / fps
	}

	hasAudio, err := p.audio.HasAudio(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("detecting audio in %s: %w", path, err)
	}

	meta := &video.Metadata{
		Path:            path,
		Width:           int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height:          int(capture.Get(gocv.VideoCaptureFrameHeight)),
		FPS:             fps,
		FrameCount:      frameCount,
		DurationSeconds: duration,
		HasAudio:        hasAudio,
		SizeBytes:       info.Size(),
	}

	if err := meta.Validate(); err != nil {
		return nil, err
	}

	return meta, nil
}

// Ensure Prober implements video.Prober
var _ video.Prober = (*Prober)(nil)
