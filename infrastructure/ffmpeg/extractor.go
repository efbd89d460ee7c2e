package ffmpeg

import (
	"context"
	"fmt"
	"strings"

	"github.com/gurrutia/videoxt/domain/video"
)

// Extractor implements the ffmpeg-backed extraction ports: audio, clip
// and GIF.
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExtractAudio implements video.AudioExtractor
func (e *Extractor) ExtractAudio(ctx context.Context, req *video.AudioRequest, sourcePath, destPath string) error {
	codec, ok := audioCodecs[req.AudioFormat]
	if !ok {
		return fmt.Errorf("no ffmpeg codec for audio format %q", req.AudioFormat)
	}

	args := []string{
		"-ss", formatSeconds(req.Range.StartSecond),
		"-to", formatSeconds(req.Range.StopSecond),
		"-i", sourcePath,
		"-vn",
		"-acodec", codec,
	}

	if req.Bounce {
		// reverse belongs to the bounce graph, not the post-concat chain
		chain := audioFilterChain(req.Speed, req.Volume, false, req.Normalize)
		graph, label := bounceAudioGraph(chain, req.Reverse)
		args = append(args, "-filter_complex", graph, "-map", label)
	} else if chain := audioFilterChain(req.Speed, req.Volume, req.Reverse, req.Normalize); len(chain) > 0 {
		args = append(args, "-af", strings.Join(chain, ","))
	}

	args = append(args, "-y", destPath)

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg audio extraction failed: %w", err)
	}

	return nil
}

// ExtractClip implements video.ClipExtractor
func (e *Extractor) ExtractClip(ctx context.Context, req *video.ClipRequest, sourcePath, destPath string) error {
	args := []string{
		"-ss", formatSeconds(req.Range.StartSecond),
		"-to", formatSeconds(req.Range.StopSecond),
		"-i", sourcePath,
	}

	if req.Bounce {
		// reverse belongs to the bounce graphs, not the post-concat chains
		videoChain := videoFilterChain(0, req.OutputWidth, req.OutputHeight, req.Rotate, req.Monochrome, req.Speed, false)
		graph, videoLabel := bounceVideoGraph(videoChain, req.Reverse)
		maps := []string{"-map", videoLabel}
		if req.SourceHasAudio {
			audioChain := audioFilterChain(req.Speed, req.Volume, false, req.Normalize)
			audioGraph, audioLabel := bounceAudioGraph(audioChain, req.Reverse)
			graph += ";" + audioGraph
			maps = append(maps, "-map", audioLabel)
		}
		args = append(args, "-filter_complex", graph)
		args = append(args, maps...)
	} else {
		videoChain := videoFilterChain(0, req.OutputWidth, req.OutputHeight, req.Rotate, req.Monochrome, req.Speed, req.Reverse)
		args = append(args, "-vf", strings.Join(videoChain, ","))
		if req.SourceHasAudio {
			if audioChain := audioFilterChain(req.Speed, req.Volume, req.Reverse, req.Normalize); len(audioChain) > 0 {
				args = append(args, "-af", strings.Join(audioChain, ","))
			}
		}
	}

	args = append(args,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-r", fmt.Sprintf("%g", req.FPS),
		"-y", destPath,
	)

	if err := e.runner.Run(ctx, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg clip extraction failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

func formatSeconds(seconds float64) string {
	return fmt.Sprintf("%g", seconds)
}

// Ensure Extractor implements the ffmpeg-backed extraction ports
var (
	_ video.AudioExtractor = (*Extractor)(nil)
	_ video.ClipExtractor  = (*Extractor)(nil)
	_ video.GifExtractor   = (*Extractor)(nil)
)
