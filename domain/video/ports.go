package video

import "context"

// Prober reads the properties of a video file.
type Prober interface {
	Probe(ctx context.Context, path string) (*Metadata, error)
}

// AudioDetector reports whether a video file carries an audio track.
type AudioDetector interface {
	HasAudio(ctx context.Context, path string) (bool, error)
}

// AudioExtractor writes the audio track of a video to destPath according to
// a prepared AudioRequest.
type AudioExtractor interface {
	ExtractAudio(ctx context.Context, req *AudioRequest, sourcePath, destPath string) error
}

// ClipExtractor writes a subclip of a video to destPath according to a
// prepared ClipRequest.
type ClipExtractor interface {
	ExtractClip(ctx context.Context, req *ClipRequest, sourcePath, destPath string) error
}

// GifExtractor writes an animated GIF to destPath according to a prepared
// GifRequest.
type GifExtractor interface {
	ExtractGif(ctx context.Context, req *GifRequest, sourcePath, destPath string) error
}

// FramesExtractor writes frame images into destDir according to a prepared
// FramesRequest and returns the number of images written.
type FramesExtractor interface {
	ExtractFrames(ctx context.Context, req *FramesRequest, sourcePath, destDir string) (int, error)
}

// FileChecker verifies the existence of files and directories.
type FileChecker interface {
	FileExists(path string) bool
	DirExists(path string) bool
}

// PathResolver resolves output paths that do not collide with existing
// files or directories.
type PathResolver interface {
	// UniqueFilePath returns a path for the given filename under dir that
	// does not point at an existing file.
	UniqueFilePath(dir, filename string) string
	// UniqueDirPath returns a path for the given directory name under dir
	// that does not point at an existing directory.
	UniqueDirPath(dir, dirname string) string
}
