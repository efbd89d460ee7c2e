package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gurrutia/videoxt/domain/video"
)

// Tags appended to output names when the wanted path already exists.
// Mimics how Windows enumerates colliding names, with a marker so
// generated outputs are recognizable next to their source videos.
const (
	fileTag = "_vxt"
	dirTag  = "_frames"
)

// Resolver implements video.PathResolver using the os package
type Resolver struct{}

// NewResolver creates a new filesystem path resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// UniqueFilePath joins dir and filename and, if that path already exists,
// enumerates the filename with the "_vxt" tag until a non-existent path is
// found: "test.mp4" becomes "test_vxt.mp4", then "test_vxt (2).mp4".
func (r *Resolver) UniqueFilePath(dir, filename string) string {
	path := filepath.Join(dir, filename)
	if !exists(path) {
		return path
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for index := 1; ; index++ {
		candidate := filepath.Join(dir, stem+enumeration(index, fileTag)+ext)
		if !exists(candidate) {
			return candidate
		}
	}
}

// UniqueDirPath joins dir and dirname and, if that path already exists,
// enumerates the directory name with the "_frames" tag until a non-existent
// path is found: "test.mp4" becomes "test.mp4_frames", then
// "test.mp4_frames (2)".
func (r *Resolver) UniqueDirPath(dir, dirname string) string {
	path := filepath.Join(dir, dirname)
	if !exists(path) {
		return path
	}

	for index := 1; ; index++ {
		candidate := filepath.Join(dir, dirname+enumeration(index, dirTag))
		if !exists(candidate) {
			return candidate
		}
	}
}

// enumeration returns the string appended to a colliding name: the tag
// alone for the first collision, then the tag with an index.
func enumeration(index int, tag string) string {
	if index <= 1 {
		return tag
	}
	return fmt.Sprintf("%s (%d)", tag, index)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Ensure Resolver implements video.PathResolver
var _ video.PathResolver = (*Resolver)(nil)
