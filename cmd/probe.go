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

var probeCmd = &cobra.Command{
	Use:   "probe <filepath>",
	Short: "Print the properties of a video file",
	Long: `Print the properties of a video file as JSON: dimensions, frame
rate, frame count, duration, file size and whether it has an audio track.

Example:
  videoxt probe recording.mp4`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	detector := ffprobe.NewClient(ffprobe.WithFFprobePath(cfg.Tools.FFprobePath))
	prober := opencv.NewProber(detector)

	return RunProbeWithDependencies(
		cmd.Context(),
		prober,
		filesystem.NewChecker(),
		args[0],
		DefaultOutput,
	)
}

// RunProbeWithDependencies runs the probe command with injected dependencies (for testing)
func RunProbeWithDependencies(
	ctx context.Context,
	prober video.Prober,
	checker video.FileChecker,
	sourcePath string,
	output OutputWriter,
) error {
	service := extraction.NewService(prober, nil, nil, nil, nil, checker, nil, nil)

	meta, err := service.Probe(ctx, sourcePath)
	if err != nil {
		return err
	}

	printJSON(output, "video", meta)
	return nil
}
