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
	clipCommon commonFlags
	clipVisual visualFlags
	clipMotion motionFlags
	clipAudio  audioEditFlags
)

var clipCmd = &cobra.Command{
	Use:   "clip <filepath>",
	Short: "Extract a subclip from a video file",
	Long: `Extract a subclip from a video file as mp4.

The clip is written next to the video unless --destdir is given. Visual,
motion and audio edits are applied to the clip.

Example:
  videoxt clip recording.mp4 --start-time 1:30 --stop-time 2:45
  videoxt clip recording.mp4 --resize 0.5 --monochrome --speed 2`,
	Args: cobra.ExactArgs(1),
	RunE: runClip,
}

func init() {
	rootCmd.AddCommand(clipCmd)
	addCommonFlags(clipCmd, &clipCommon)
	addVisualFlags(clipCmd, &clipVisual)
	addMotionFlags(clipCmd, &clipMotion)
	addAudioEditFlags(clipCmd, &clipAudio)
}

func runClip(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	width, height, err := parseDimensions(clipVisual.dimensions)
	if err != nil {
		return err
	}

	req := video.NewClipRequest()
	clipCommon.apply(&req.CommonOptions, cfg)
	req.Width = width
	req.Height = height
	req.Resize = clipVisual.resize
	req.Rotate = clipVisual.rotate
	req.Monochrome = clipVisual.monochrome
	req.Speed = clipMotion.speed
	req.Bounce = clipMotion.bounce
	req.Reverse = clipMotion.reverse
	req.Volume = clipAudio.volume
	req.Normalize = clipAudio.normalize

	extractor := ffmpeg.NewExtractor(ffmpeg.WithFFmpegPath(cfg.Tools.FFmpegPath))
	detector := ffprobe.NewClient(ffprobe.WithFFprobePath(cfg.Tools.FFprobePath))
	prober := opencv.NewProber(detector)

	return RunClipWithDependencies(
		cmd.Context(),
		prober,
		extractor,
		filesystem.NewChecker(),
		filesystem.NewResolver(),
		args[0],
		req,
		clipCommon.quiet,
		DefaultOutput,
	)
}

// RunClipWithDependencies runs the clip command with injected dependencies (for testing)
func RunClipWithDependencies(
	ctx context.Context,
	prober video.Prober,
	extractor video.ClipExtractor,
	checker video.FileChecker,
	resolver video.PathResolver,
	sourcePath string,
	req *video.ClipRequest,
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

	service := extraction.NewService(prober, nil, extractor, nil, nil, checker, resolver, newReporter(quiet, output))

	result, err := service.ExtractClip(ctx, sourcePath, req)
	if err != nil {
		return err
	}

	return reportResult(result, quiet, output)
}
