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
	audioCommon    commonFlags
	audioMotion    motionFlags
	audioEdit      audioEditFlags
	audioFormatVal string
)

var audioCmd = &cobra.Command{
	Use:   "audio <filepath>",
	Short: "Extract the audio track from a video file",
	Long: `Extract the audio track from a video file.

The audio is written next to the video unless --destdir is given. Videos
without an audio track are rejected.

Example:
  videoxt audio recording.mp4
  videoxt audio recording.mp4 --start-time 1:30 --stop-time 2:45 --audio-format wav
  videoxt audio recording.mp4 --speed 1.5 --normalize`,
	Args: cobra.ExactArgs(1),
	RunE: runAudio,
}

func init() {
	rootCmd.AddCommand(audioCmd)
	addCommonFlags(audioCmd, &audioCommon)
	addMotionFlags(audioCmd, &audioMotion)
	addAudioEditFlags(audioCmd, &audioEdit)
	audioCmd.Flags().StringVar(&audioFormatVal, "audio-format", "mp3", "Audio format to write: m4a, mp3, ogg or wav")
}

func runAudio(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	req := video.NewAudioRequest()
	audioCommon.apply(&req.CommonOptions, cfg)
	req.Speed = audioMotion.speed
	req.Bounce = audioMotion.bounce
	req.Reverse = audioMotion.reverse
	req.Volume = audioEdit.volume
	req.Normalize = audioEdit.normalize

	req.AudioFormat = audioFormatVal
	if !cmd.Flags().Changed("audio-format") && cfg.Defaults.AudioFormat != "" {
		req.AudioFormat = cfg.Defaults.AudioFormat
	}

	extractor := ffmpeg.NewExtractor(ffmpeg.WithFFmpegPath(cfg.Tools.FFmpegPath))
	detector := ffprobe.NewClient(ffprobe.WithFFprobePath(cfg.Tools.FFprobePath))
	prober := opencv.NewProber(detector)

	return RunAudioWithDependencies(
		cmd.Context(),
		prober,
		extractor,
		filesystem.NewChecker(),
		filesystem.NewResolver(),
		args[0],
		req,
		audioCommon.quiet,
		DefaultOutput,
	)
}

// RunAudioWithDependencies runs the audio command with injected dependencies (for testing)
func RunAudioWithDependencies(
	ctx context.Context,
	prober video.Prober,
	extractor video.AudioExtractor,
	checker video.FileChecker,
	resolver video.PathResolver,
	sourcePath string,
	req *video.AudioRequest,
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

	service := extraction.NewService(prober, extractor, nil, nil, nil, checker, resolver, newReporter(quiet, output))

	result, err := service.ExtractAudio(ctx, sourcePath, req)
	if err != nil {
		return err
	}

	return reportResult(result, quiet, output)
}
