package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gurrutia/videoxt/application/extraction"
	"github.com/gurrutia/videoxt/domain/video"
	"github.com/gurrutia/videoxt/infrastructure/ffmpeg"
	"github.com/gurrutia/videoxt/infrastructure/ffprobe"
	"github.com/gurrutia/videoxt/infrastructure/filesystem"
	"github.com/gurrutia/videoxt/infrastructure/opencv"

	"github.com/spf13/cobra"
)

var (
	gifCommon commonFlags
	gifVisual visualFlags
	gifMotion motionFlags
)

var gifCmd = &cobra.Command{
	Use:   "gif <filepath>",
	Short: "Extract an animated GIF from a video file",
	Long: `Extract an animated GIF from a video file.

The GIF is written next to the video unless --destdir is given. Lowering
--fps reduces the file size; --bounce plays the GIF forward then backward.

Example:
  videoxt gif recording.mp4 --start-time 1:30 --stop-time 1:35
  videoxt gif recording.mp4 --fps 10 --resize 0.5 --bounce`,
	Args: cobra.ExactArgs(1),
	RunE: runGif,
}

func init() {
	rootCmd.AddCommand(gifCmd)
	addCommonFlags(gifCmd, &gifCommon)
	addVisualFlags(gifCmd, &gifVisual)
	addMotionFlags(gifCmd, &gifMotion)
}

func runGif(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	width, height, err := parseDimensions(gifVisual.dimensions)
	if err != nil {
		return err
	}

	req := video.NewGifRequest()
	gifCommon.apply(&req.CommonOptions, cfg)
	req.Width = width
	req.Height = height
	req.Resize = gifVisual.resize
	req.Rotate = gifVisual.rotate
	req.Monochrome = gifVisual.monochrome
	req.Speed = gifMotion.speed
	req.Bounce = gifMotion.bounce
	req.Reverse = gifMotion.reverse

	extractor := ffmpeg.NewExtractor(ffmpeg.WithFFmpegPath(cfg.Tools.FFmpegPath))
	detector := ffprobe.NewClient(ffprobe.WithFFprobePath(cfg.Tools.FFprobePath))
	prober := opencv.NewProber(detector)

	return RunGifWithDependencies(
		cmd.Context(),
		prober,
		extractor,
		filesystem.NewChecker(),
		filesystem.NewResolver(),
		args[0],
		req,
		gifCommon.quiet,
		DefaultOutput,
	)
}

// RunGifWithDependencies runs the gif command with injected dependencies (for testing)
func RunGifWithDependencies(
	ctx context.Context,
	prober video.Prober,
	extractor video.GifExtractor,
	checker video.FileChecker,
	resolver video.PathResolver,
	sourcePath string,
	req *video.GifRequest,
	quiet bool,
	output OutputWriter,
) error {
	if verifiable, ok := extractor.(interface{ VerifyInstalled(context.Context) error }); ok {
		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := verifiable.VerifyInstalled(verifyCtx); err != nil {
			return fmt.Errorf("ffmpeg verification failed: %w", err)
		}
	}

	service := extraction.NewService(prober, nil, nil, nil, extractor, checker, resolver, newReporter(quiet, output))

	result, err := service.ExtractGif(ctx, sourcePath, req)
	if err != nil {
		return err
	}

	return reportResult(result, quiet, output)
}
