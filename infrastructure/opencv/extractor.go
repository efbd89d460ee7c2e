package opencv

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"gocv.io/x/gocv"

	"github.com/gurrutia/videoxt/domain/video"
)

// rotationCodes maps rotation degrees to OpenCV rotate codes.
var rotationCodes = map[int]gocv.RotateFlag{
	90:  gocv.Rotate90Clockwise,
	180: gocv.Rotate180Clockwise,
	270: gocv.Rotate90CounterClockwise,
}

// Extractor implements video.FramesExtractor by decoding frames with OpenCV
// and writing every capture-rate-th frame as an image.
type Extractor struct {
	showProgress bool
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithProgressBar toggles the terminal progress bar shown while frames are
// written
func WithProgressBar(show bool) ExtractorOption {
	return func(e *Extractor) {
		e.showProgress = show
	}
}

// NewExtractor creates a new OpenCV-based frames extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExtractFrames implements video.FramesExtractor
func (e *Extractor) ExtractFrames(ctx context.Context, req *video.FramesRequest, sourcePath, destDir string) (int, error) {
	capture, err := gocv.VideoCaptureFile(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening video %s: %w", sourcePath, err)
	}
	defer capture.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating frames directory %s: %w", destDir, err)
	}

	var bar *progressbar.ProgressBar
	if e.showProgress {
		bar = progressbar.NewOptions(req.ImagesExpected,
			progressbar.OptionSetDescription("extracting frames"),
			progressbar.OptionShowCount(),
		)
	}

	capture.Set(gocv.VideoCapturePosFrames, float64(req.Range.StartFrame))

	frame := gocv.NewMat()
	defer frame.Close()

	written := 0
	for frameNumber := req.Range.StartFrame; frameNumber < req.Range.StopFrame; frameNumber++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		if ok := capture.Read(&frame); !ok || frame.Empty() {
			break
		}

		if (frameNumber-req.Range.StartFrame)%req.CaptureRate != 0 {
			continue
		}

		imagePath := filepath.Join(destDir, req.ImageFilename(frameNumber))
		if err := e.writeImage(&frame, req, imagePath); err != nil {
			return written, err
		}
		written++

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	return written, nil
}

// writeImage applies the requested edits to a frame and writes it to disk.
func (e *Extractor) writeImage(frame *gocv.Mat, req *video.FramesRequest, imagePath string) error {
	edited := gocv.NewMat()
	defer edited.Close()

	gocv.Resize(*frame, &edited, image.Pt(req.OutputWidth, req.OutputHeight), 0, 0, gocv.InterpolationLinear)

	if code, ok := rotationCodes[req.Rotate]; ok {
		gocv.Rotate(edited, &edited, code)
	}

	if req.Monochrome {
		gocv.CvtColor(edited, &edited, gocv.ColorBGRToGray)
	}

	if ok := gocv.IMWrite(imagePath, edited); !ok {
		return fmt.Errorf("writing image %s failed", imagePath)
	}

	return nil
}

// Ensure Extractor implements video.FramesExtractor
var _ video.FramesExtractor = (*Extractor)(nil)
