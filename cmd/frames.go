package cmd

import (
	"context"

	"github.com/gurrutia/videoxt/application/extraction"
	"github.com/gurrutia/videoxt/domain/video"
	"github.com/gurrutia/videoxt/infrastructure/ffprobe"
	"github.com/gurrutia/videoxt/infrastructure/filesystem"
	"github.com/gurrutia/videoxt/infrastructure/opencv"

	"github.com/spf13/cobra"
)

var (
	framesCommon      commonFlags
	framesVisual      visualFlags
	framesImageFormat string
	framesCaptureRate int
)

var framesCmd = &cobra.Command{
	Use:   "frames <filepath>",
	Short: "Extract individual frames from a video file as images",
	Long: `Extract individual frames from a video file as images.

Images are written into a new directory named after the video with a
"_frames" suffix, next to the video unless --destdir is given. The capture
rate controls how many frames are skipped between images: a rate of 30
writes every 30th frame.

Example:
  videoxt frames recording.mp4
  videoxt frames recording.mp4 --capture-rate 30 --image-format png
  videoxt frames recording.mp4 --start-time 1:30 --stop-time 2:45 --monochrome`,
	Args: cobra.ExactArgs(1),
	RunE: runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
	addCommonFlags(framesCmd, &framesCommon)
	addVisualFlags(framesCmd, &framesVisual)
	framesCmd.Flags().StringVar(&framesImageFormat, "image-format", "jpg", "Image format to write: bmp, dib, jp2, jpeg, jpg, png, tif, tiff or webp")
	framesCmd.Flags().IntVar(&framesCaptureRate, "capture-rate", 1, "Capture every Nth frame in the range")
}

func runFrames(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	width, height, err := parseDimensions(framesVisual.dimensions)
	if err != nil {
		return err
	}

	req := video.NewFramesRequest()
	framesCommon.apply(&req.CommonOptions, cfg)
	req.Width = width
	req.Height = height
	req.Resize = framesVisual.resize
	req.Rotate = framesVisual.rotate
	req.Monochrome = framesVisual.monochrome
	req.CaptureRate = framesCaptureRate

	req.ImageFormat = framesImageFormat
	if !cmd.Flags().Changed("image-format") && cfg.Defaults.ImageFormat != "" {
		req.ImageFormat = cfg.Defaults.ImageFormat
	}

	detector := ffprobe.NewClient(ffprobe.WithFFprobePath(cfg.Tools.FFprobePath))
	prober := opencv.NewProber(detector)
	extractor := opencv.NewExtractor(opencv.WithProgressBar(!framesCommon.quiet))

	return RunFramesWithDependencies(
		cmd.Context(),
		prober,
		extractor,
		filesystem.NewChecker(),
		filesystem.NewResolver(),
		args[0],
		req,
		framesCommon.quiet,
		DefaultOutput,
	)
}

// RunFramesWithDependencies runs the frames command with injected dependencies (for testing)
func RunFramesWithDependencies(
	ctx context.Context,
	prober video.Prober,
	extractor video.FramesExtractor,
	checker video.FileChecker,
	resolver video.PathResolver,
	sourcePath string,
	req *video.FramesRequest,
	quiet bool,
	output OutputWriter,
) error {
	service := extraction.NewService(prober, nil, nil, extractor, nil, checker, resolver, newReporter(quiet, output))

	result, err := service.ExtractFrames(ctx, sourcePath, req)
	if err != nil {
		return err
	}

	return reportResult(result, quiet, output)
}
