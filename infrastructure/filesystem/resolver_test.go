package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestUniqueFilePath(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver()

	t.Run("no collision keeps the wanted name", func(t *testing.T) {
		got := r.UniqueFilePath(dir, "test.mp3")
		if got != filepath.Join(dir, "test.mp3") {
			t.Errorf("UniqueFilePath() = %q, want %q", got, filepath.Join(dir, "test.mp3"))
		}
	})

	t.Run("first collision appends the tag", func(t *testing.T) {
		touch(t, filepath.Join(dir, "test.mp3"))

		got := r.UniqueFilePath(dir, "test.mp3")
		if got != filepath.Join(dir, "test_vxt.mp3") {
			t.Errorf("UniqueFilePath() = %q, want %q", got, filepath.Join(dir, "test_vxt.mp3"))
		}
	})

	t.Run("further collisions enumerate", func(t *testing.T) {
		touch(t, filepath.Join(dir, "test_vxt.mp3"))

		got := r.UniqueFilePath(dir, "test.mp3")
		if got != filepath.Join(dir, "test_vxt (2).mp3") {
			t.Errorf("UniqueFilePath() = %q, want %q", got, filepath.Join(dir, "test_vxt (2).mp3"))
		}

		touch(t, filepath.Join(dir, "test_vxt (2).mp3"))

		got = r.UniqueFilePath(dir, "test.mp3")
		if got != filepath.Join(dir, "test_vxt (3).mp3") {
			t.Errorf("UniqueFilePath() = %q, want %q", got, filepath.Join(dir, "test_vxt (3).mp3"))
		}
	})
}

func TestUniqueDirPath(t *testing.T) {
	dir := t.TempDir()
	r := NewResolver()

	t.Run("no collision keeps the wanted name", func(t *testing.T) {
		got := r.UniqueDirPath(dir, "video.mp4")
		if got != filepath.Join(dir, "video.mp4") {
			t.Errorf("UniqueDirPath() = %q, want %q", got, filepath.Join(dir, "video.mp4"))
		}
	})

	t.Run("colliding with the video file appends the tag", func(t *testing.T) {
		touch(t, filepath.Join(dir, "video.mp4"))

		got := r.UniqueDirPath(dir, "video.mp4")
		if got != filepath.Join(dir, "video.mp4_frames") {
			t.Errorf("UniqueDirPath() = %q, want %q", got, filepath.Join(dir, "video.mp4_frames"))
		}
	})

	t.Run("further collisions enumerate", func(t *testing.T) {
		if err := os.Mkdir(filepath.Join(dir, "video.mp4_frames"), 0755); err != nil {
			t.Fatal(err)
		}

		got := r.UniqueDirPath(dir, "video.mp4")
		if got != filepath.Join(dir, "video.mp4_frames (2)") {
			t.Errorf("UniqueDirPath() = %q, want %q", got, filepath.Join(dir, "video.mp4_frames (2)"))
		}
	})
}

func TestChecker(t *testing.T) {
	dir := t.TempDir()
	c := NewChecker()

	filePath := filepath.Join(dir, "present.mp4")
	touch(t, filePath)

	if !c.FileExists(filePath) {
		t.Errorf("FileExists(%q) = false, want true", filePath)
	}
	if c.FileExists(filepath.Join(dir, "absent.mp4")) {
		t.Errorf("FileExists() = true for a missing file")
	}
	if c.FileExists(dir) {
		t.Errorf("FileExists() = true for a directory")
	}

	if !c.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if c.DirExists(filePath) {
		t.Errorf("DirExists() = true for a regular file")
	}
}
