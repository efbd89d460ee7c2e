package video

import (
	"fmt"
	"sort"
	"strings"
)

// Supported container and output formats, matching what the wrapped tools
// can reliably read and write.
var (
	SupportedVideoFormats = map[string]bool{
		"3gp": true, "asf": true, "avi": true, "divx": true, "flv": true,
		"m4v": true, "mkv": true, "mov": true, "mp4": true, "mpeg": true,
		"mpg": true, "ogv": true, "rm": true, "ts": true, "vob": true,
		"webm": true, "wmv": true,
	}

	SupportedAudioFormats = map[string]bool{
		"m4a": true, "mp3": true, "ogg": true, "wav": true,
	}

	SupportedImageFormats = map[string]bool{
		"bmp": true, "dib": true, "jp2": true, "jpeg": true, "jpg": true,
		"png": true, "tif": true, "tiff": true, "webp": true,
	}
)

// ValidRotateValues are the rotation degrees accepted by the visual
// extraction requests.
var ValidRotateValues = []int{0, 90, 180, 270}

// NormalizeFormat lowercases a format string and strips any leading period,
// so ".MP3" and "Mp3" both normalize to "mp3".
func NormalizeFormat(format string) string {
	return strings.TrimPrefix(strings.ToLower(format), ".")
}

// ValidateVideoSuffix checks that a file suffix is a supported video format
// and returns the normalized suffix.
func ValidateVideoSuffix(suffix string) (string, error) {
	sfx := NormalizeFormat(suffix)
	if !SupportedVideoFormats[sfx] {
		return "", fmt.Errorf("%w %q: supported formats are %s",
			ErrUnsupportedVideoFormat, suffix, formatList(SupportedVideoFormats))
	}
	return sfx, nil
}

// ValidateAudioFormat checks that an audio format is supported and returns
// the normalized format.
func ValidateAudioFormat(format string) (string, error) {
	fmtName := NormalizeFormat(format)
	if !SupportedAudioFormats[fmtName] {
		return "", fmt.Errorf("%w %q: supported formats are %s",
			ErrUnsupportedAudioFormat, format, formatList(SupportedAudioFormats))
	}
	return fmtName, nil
}

// ValidateImageFormat checks that an image format is supported and returns
// the normalized format.
func ValidateImageFormat(format string) (string, error) {
	fmtName := NormalizeFormat(format)
	if !SupportedImageFormats[fmtName] {
		return "", fmt.Errorf("%w %q: supported formats are %s",
			ErrUnsupportedImageFormat, format, formatList(SupportedImageFormats))
	}
	return fmtName, nil
}

// ValidateRotate checks that a rotation value is 0, 90, 180 or 270.
func ValidateRotate(rotate int) error {
	for _, v := range ValidRotateValues {
		if rotate == v {
			return nil
		}
	}
	return fmt.Errorf("invalid rotate value %d: allowed values are 0, 90, 180, 270", rotate)
}

func formatList(formats map[string]bool) string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
