package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gurrutia/videoxt/domain/video"
)

// ExtractGif implements video.GifExtractor. GIFs are written in two passes:
// the first generates a palette tuned to the selected frames, the second
// encodes the GIF against that palette. The palette lives in a uniquely
// named temp file so concurrent extractions cannot clobber each other.
func (e *Extractor) ExtractGif(ctx context.Context, req *video.GifRequest, sourcePath, destPath string) error {
	chain := videoFilterChain(req.FPS, req.OutputWidth, req.OutputHeight, req.Rotate, req.Monochrome, req.Speed, req.Reverse)

	palettePath := filepath.Join(os.TempDir(), fmt.Sprintf("videoxt-palette-%s.png", uuid.NewString()))
	defer os.Remove(palettePath)

	paletteArgs := []string{
		"-ss", formatSeconds(req.Range.StartSecond),
		"-to", formatSeconds(req.Range.StopSecond),
		"-i", sourcePath,
		"-vf", strings.Join(chain, ",") + ",palettegen",
		"-y", palettePath,
	}
	if err := e.runner.Run(ctx, e.ffmpegPath, paletteArgs...); err != nil {
		return fmt.Errorf("ffmpeg palette generation failed: %w", err)
	}

	var graph string
	if req.Bounce {
		// reverse belongs to the bounce graph, not the post-concat chain
		bounceChain := videoFilterChain(req.FPS, req.OutputWidth, req.OutputHeight, req.Rotate, req.Monochrome, req.Speed, false)
		bounced, label := bounceVideoGraph(bounceChain, req.Reverse)
		graph = bounced + ";" + label + "[1:v]paletteuse"
	} else {
		graph = "[0:v]" + strings.Join(chain, ",") + "[vchain];[vchain][1:v]paletteuse"
	}

	gifArgs := []string{
		"-ss", formatSeconds(req.Range.StartSecond),
		"-to", formatSeconds(req.Range.StopSecond),
		"-i", sourcePath,
		"-i", palettePath,
		"-filter_complex", graph,
		"-y", destPath,
	}
	if err := e.runner.Run(ctx, e.ffmpegPath, gifArgs...); err != nil {
		return fmt.Errorf("ffmpeg gif extraction failed: %w", err)
	}

	return nil
}
