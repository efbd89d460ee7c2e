package video

import "errors"

var (
	// ErrNoAudio is returned when audio output is requested from a video
	// that has no audio track
	ErrNoAudio = errors.New("video does not have an audio track")

	// ErrUnsupportedVideoFormat is returned when the source file suffix is
	// not a supported video format
	ErrUnsupportedVideoFormat = errors.New("unsupported video format")

	// ErrUnsupportedAudioFormat is returned when the requested audio format
	// is not supported
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")

	// ErrUnsupportedImageFormat is returned when the requested image format
	// is not supported
	ErrUnsupportedImageFormat = errors.New("unsupported image format")

	// ErrInvalidRange is returned when the extraction range falls outside
	// the video duration
	ErrInvalidRange = errors.New("invalid extraction range")
)
