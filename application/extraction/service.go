package extraction

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gurrutia/videoxt/domain/video"
)

// Method names reported in extraction results.
const (
	MethodAudio  = "audio"
	MethodClip   = "clip"
	MethodFrames = "frames"
	MethodGif    = "gif"
)

// Reporter receives the prepared request before an extraction starts. The
// CLI uses it to show what is about to run; NopReporter silences it.
type Reporter interface {
	Prepared(meta *video.Metadata, request any)
}

// NopReporter is a Reporter that discards all notifications.
type NopReporter struct{}

// Prepared implements Reporter
func (NopReporter) Prepared(meta *video.Metadata, request any) {}

// Service coordinates extractions: it verifies the source video, validates
// and prepares the request, resolves the destination and runs the matching
// extractor. Validation and preparation failures are returned as errors;
// extractor failures are embedded in the Result so callers still get the
// elapsed time and destination.
type Service struct {
	prober   video.Prober
	audio    video.AudioExtractor
	clips    video.ClipExtractor
	frames   video.FramesExtractor
	gifs     video.GifExtractor
	checker  video.FileChecker
	resolver video.PathResolver
	reporter Reporter
}

// NewService creates a new extraction service
func NewService(
	prober video.Prober,
	audio video.AudioExtractor,
	clips video.ClipExtractor,
	frames video.FramesExtractor,
	gifs video.GifExtractor,
	checker video.FileChecker,
	resolver video.PathResolver,
	reporter Reporter,
) *Service {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Service{
		prober:   prober,
		audio:    audio,
		clips:    clips,
		frames:   frames,
		gifs:     gifs,
		checker:  checker,
		resolver: resolver,
		reporter: reporter,
	}
}

// Probe verifies the source video and returns its metadata.
func (s *Service) Probe(ctx context.Context, path string) (*video.Metadata, error) {
	if err := s.checkSource(path); err != nil {
		return nil, err
	}
	return s.prober.Probe(ctx, path)
}

// ExtractAudio extracts the audio track of the video at path.
func (s *Service) ExtractAudio(ctx context.Context, path string, req *video.AudioRequest) (*video.Result, error) {
	meta, err := s.prepare(ctx, path, req)
	if err != nil {
		return nil, err
	}

	req.DestPath = s.resolveFilePath(meta, &req.CommonOptions, req.OutputFilename())
	s.reporter.Prepared(meta, req)

	return s.run(ctx, MethodAudio, req.DestPath, func() error {
		return s.audio.ExtractAudio(ctx, req, path, req.DestPath)
	}), nil
}

// ExtractClip extracts a subclip of the video at path.
func (s *Service) ExtractClip(ctx context.Context, path string, req *video.ClipRequest) (*video.Result, error) {
	meta, err := s.prepare(ctx, path, req)
	if err != nil {
		return nil, err
	}

	req.DestPath = s.resolveFilePath(meta, &req.CommonOptions, req.OutputFilename())
	s.reporter.Prepared(meta, req)

	return s.run(ctx, MethodClip, req.DestPath, func() error {
		return s.clips.ExtractClip(ctx, req, path, req.DestPath)
	}), nil
}

// ExtractFrames extracts frame images from the video at path.
func (s *Service) ExtractFrames(ctx context.Context, path string, req *video.FramesRequest) (*video.Result, error) {
	meta, err := s.prepare(ctx, path, req)
	if err != nil {
		return nil, err
	}

	req.DestPath = s.resolveFramesDir(meta, req)
	s.reporter.Prepared(meta, req)

	result := s.run(ctx, MethodFrames, req.DestPath, func() error {
		written, err := s.frames.ExtractFrames(ctx, req, path, req.DestPath)
		if err != nil {
			return err
		}
		if written < req.ImagesExpected {
			return fmt.Errorf("wrote %d of %d expected images", written, req.ImagesExpected)
		}
		return nil
	})
	return result, nil
}

// ExtractGif extracts an animated GIF from the video at path.
func (s *Service) ExtractGif(ctx context.Context, path string, req *video.GifRequest) (*video.Result, error) {
	meta, err := s.prepare(ctx, path, req)
	if err != nil {
		return nil, err
	}

	req.DestPath = s.resolveFilePath(meta, &req.CommonOptions, req.OutputFilename())
	s.reporter.Prepared(meta, req)

	return s.run(ctx, MethodGif, req.DestPath, func() error {
		return s.gifs.ExtractGif(ctx, req, path, req.DestPath)
	}), nil
}

// request is the subset of behavior shared by all extraction requests.
type request interface {
	Validate() error
	Prepare(meta *video.Metadata) error
	Common() *video.CommonOptions
}

// prepare runs the steps shared by every extraction: source checks,
// request validation, probing and metadata-dependent preparation.
func (s *Service) prepare(ctx context.Context, path string, req request) (*video.Metadata, error) {
	if err := s.checkSource(path); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if dir := req.Common().DestDir; dir != "" && !s.checker.DirExists(dir) {
		return nil, fmt.Errorf("destination directory does not exist: %s", dir)
	}

	meta, err := s.prober.Probe(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := req.Prepare(meta); err != nil {
		return nil, err
	}

	return meta, nil
}

func (s *Service) checkSource(path string) error {
	if !s.checker.FileExists(path) {
		return fmt.Errorf("video file does not exist: %s", path)
	}
	_, err := video.ValidateVideoSuffix(filepath.Ext(path))
	return err
}

// resolveFilePath returns the output path for a file-producing extraction.
// With overwrite set the wanted path is used as long as it is not the
// source video itself; otherwise a non-colliding path is resolved.
func (s *Service) resolveFilePath(meta *video.Metadata, opts *video.CommonOptions, filename string) string {
	dir := opts.DestDir
	if dir == "" {
		dir = meta.Dir()
	}

	wanted := filepath.Join(dir, filename)
	if opts.Overwrite && wanted != meta.Path {
		return wanted
	}
	return s.resolver.UniqueFilePath(dir, filename)
}

// resolveFramesDir returns the directory a frames extraction writes into.
// An explicitly requested destination directory is used as-is. The default
// shares the video's name, so it always collides with the video file and
// resolves to a "_frames"-tagged sibling.
func (s *Service) resolveFramesDir(meta *video.Metadata, req *video.FramesRequest) string {
	if req.DestDir != "" {
		return req.DestDir
	}
	if req.Overwrite {
		return filepath.Join(meta.Dir(), req.OutputDirname()+"_frames")
	}
	return s.resolver.UniqueDirPath(meta.Dir(), req.OutputDirname())
}

// run times an extraction and converts its outcome into a Result.
func (s *Service) run(ctx context.Context, method, destPath string, extract func() error) *video.Result {
	result := &video.Result{
		Method:   method,
		DestPath: destPath,
	}

	start := time.Now()
	err := extract()
	result.ElapsedSeconds = time.Since(start).Seconds()

	switch {
	case errors.Is(err, context.Canceled):
		result.Message = "Extraction cancelled."
	case err != nil:
		result.Message = fmt.Sprintf("Extraction failed: %v", err)
	default:
		result.Success = true
		result.Message = "Extraction successful."
	}

	return result
}
