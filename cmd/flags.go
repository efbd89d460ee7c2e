package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gurrutia/videoxt/domain/video"
	"github.com/gurrutia/videoxt/infrastructure/config"

	"github.com/spf13/cobra"
)

// commonFlags are the flags shared by every extraction command. cobra has
// no parent parsers, so each command registers the shared groups it needs.
type commonFlags struct {
	startTime string
	stopTime  string
	destDir   string
	filename  string
	fps       float64
	overwrite bool
	quiet     bool
}

func addCommonFlags(cmd *cobra.Command, f *commonFlags) {
	cmd.Flags().StringVarP(&f.startTime, "start-time", "s", "", "Time to start extraction, in seconds or as a timestamp")
	cmd.Flags().StringVarP(&f.stopTime, "stop-time", "S", "", "Time to stop extraction, in seconds or as a timestamp")
	cmd.Flags().StringVarP(&f.destDir, "destdir", "d", "", "Directory to save the output in (default is the video's directory)")
	cmd.Flags().StringVarP(&f.filename, "filename", "n", "", "Name of the output file, without extension (default is the video's name)")
	cmd.Flags().Float64VarP(&f.fps, "fps", "f", 0, "Frame rate to use for frame calculations (default is the probed rate)")
	cmd.Flags().BoolVarP(&f.overwrite, "overwrite", "y", false, "Overwrite the output if it already exists")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Suppress extraction details")
}

// apply copies the shared flags onto a request, falling back to the
// configured destination directory when none was given.
func (f *commonFlags) apply(opts *video.CommonOptions, cfg *config.Config) {
	opts.StartTime = f.startTime
	opts.StopTime = f.stopTime
	opts.DestDir = f.destDir
	opts.Filename = f.filename
	opts.FPS = f.fps
	opts.Overwrite = f.overwrite

	if opts.DestDir == "" {
		opts.DestDir = cfg.Output.DestDir
	}
}

// visualFlags are the flags shared by the image-producing commands.
type visualFlags struct {
	dimensions string
	resize     float64
	rotate     int
	monochrome bool
}

func addVisualFlags(cmd *cobra.Command, f *visualFlags) {
	cmd.Flags().StringVar(&f.dimensions, "dimensions", "", "Output dimensions as WxH, e.g. 1920x1080 (default is the video's dimensions)")
	cmd.Flags().Float64Var(&f.resize, "resize", 1.0, "Factor to resize the output by")
	cmd.Flags().IntVar(&f.rotate, "rotate", 0, "Degrees to rotate the output: 0, 90, 180 or 270")
	cmd.Flags().BoolVar(&f.monochrome, "monochrome", false, "Convert the output to monochrome")
}

// parseDimensions returns the width and height encoded in a WxH string.
// An empty string means no explicit dimensions and parses to zeros.
func parseDimensions(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}

	widthStr, heightStr, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return 0, 0, fmt.Errorf("invalid dimensions %q: expected WxH, e.g. 1920x1080", s)
	}

	width, err := strconv.Atoi(widthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dimensions %q: width is not an integer", s)
	}
	height, err := strconv.Atoi(heightStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dimensions %q: height is not an integer", s)
	}

	return width, height, nil
}

// motionFlags are the flags shared by the commands with a time axis.
type motionFlags struct {
	speed   float64
	bounce  bool
	reverse bool
}

func addMotionFlags(cmd *cobra.Command, f *motionFlags) {
	cmd.Flags().Float64Var(&f.speed, "speed", 1.0, "Factor to speed the output up or down by")
	cmd.Flags().BoolVar(&f.bounce, "bounce", false, "Play the output forward then backward")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "Play the output backward")
}

// audioEditFlags are the flags shared by the commands that write audio.
type audioEditFlags struct {
	volume    float64
	normalize bool
}

func addAudioEditFlags(cmd *cobra.Command, f *audioEditFlags) {
	cmd.Flags().Float64Var(&f.volume, "volume", 1.0, "Factor to adjust the audio volume by")
	cmd.Flags().BoolVar(&f.normalize, "normalize", false, "Normalize the audio")
}
