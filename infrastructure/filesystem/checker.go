package filesystem

import (
	"os"

	"github.com/gurrutia/videoxt/domain/video"
)

// Checker implements video.FileChecker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// FileExists returns true if the path exists and is a regular file
func (c *Checker) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists returns true if the path exists and is a directory
func (c *Checker) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Ensure Checker implements video.FileChecker
var _ video.FileChecker = (*Checker)(nil)
