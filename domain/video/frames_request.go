package video

import (
	"fmt"
	"math"
	"path/filepath"
)

// FramesRequest describes a frame image extraction from a video file. Every
// CaptureRate-th frame in the range is written as a separate image into a
// dedicated directory.
type FramesRequest struct {
	CommonOptions

	ImageFormat string  `json:"image_format"`
	CaptureRate int     `json:"capture_rate"`
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
	Resize      float64 `json:"resize"`
	Rotate      int     `json:"rotate"`
	Monochrome  bool    `json:"monochrome"`

	// OutputWidth and OutputHeight are computed by Prepare from the video
	// dimensions, the requested dimensions and the resize factor.
	OutputWidth  int `json:"output_width"`
	OutputHeight int `json:"output_height"`

	// ImagesExpected is the number of images the extraction should write,
	// computed by Prepare from the frame range and the capture rate.
	ImagesExpected int `json:"images_expected"`

	// dirname is the name of the output directory, derived from the video
	// filename by Prepare.
	dirname string
}

// NewFramesRequest returns a FramesRequest with defaults filled in.
func NewFramesRequest() *FramesRequest {
	return &FramesRequest{
		ImageFormat: "jpg",
		CaptureRate: 1,
		Resize:      1.0,
	}
}

// Validate checks the request fields that can be validated without video
// metadata.
func (r *FramesRequest) Validate() error {
	if err := r.validateCommon(); err != nil {
		return err
	}

	format, err := ValidateImageFormat(r.ImageFormat)
	if err != nil {
		return err
	}
	r.ImageFormat = format

	if r.CaptureRate <= 0 {
		return fmt.Errorf("invalid capture rate: must be a positive integer, got %d", r.CaptureRate)
	}
	if err := validateDims(r.Width, r.Height); err != nil {
		return err
	}
	if err := validatePositive("resize", r.Resize); err != nil {
		return err
	}
	if err := ValidateRotate(r.Rotate); err != nil {
		return err
	}
	return nil
}

// Prepare fills the request defaults that depend on the video metadata,
// resolves the output dimensions and computes the extraction range and the
// expected image count.
func (r *FramesRequest) Prepare(meta *Metadata) error {
	if r.Filename == "" {
		r.Filename = meta.Stem()
	}
	r.dirname = filepath.Base(meta.Path)
	r.OutputWidth, r.OutputHeight = outputDims(meta, r.Width, r.Height, r.Resize)

	if err := r.prepareCommon(meta); err != nil {
		return err
	}

	frameSpan := r.Range.StopFrame - r.Range.StartFrame
	r.ImagesExpected = int(math.Ceil(float64(frameSpan) / float64(r.CaptureRate)))

	return nil
}

// OutputDirname returns the name of the directory the images are written to.
func (r *FramesRequest) OutputDirname() string {
	return r.dirname
}

// ImageFilename returns the filename for the image captured at the given
// frame number.
func (r *FramesRequest) ImageFilename(frame int) string {
	return fmt.Sprintf("%s_%d.%s", r.Filename, frame, r.ImageFormat)
}
