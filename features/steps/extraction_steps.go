//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gurrutia/videoxt/cmd"
	"github.com/gurrutia/videoxt/domain/video"

	"github.com/cucumber/godog"
)

// mockProber returns canned metadata instead of decoding a real file
type mockProber struct {
	meta *video.Metadata
}

func (m *mockProber) Probe(ctx context.Context, path string) (*video.Metadata, error) {
	if m.meta == nil {
		return nil, fmt.Errorf("no video metadata staged for %s", path)
	}
	return m.meta, nil
}

// mockAudioExtractor records calls to ExtractAudio for verification
type mockAudioExtractor struct {
	calls []audioCall
}

type audioCall struct {
	req      *video.AudioRequest
	source   string
	destPath string
}

func (m *mockAudioExtractor) ExtractAudio(ctx context.Context, req *video.AudioRequest, sourcePath, destPath string) error {
	m.calls = append(m.calls, audioCall{req: req, source: sourcePath, destPath: destPath})
	return nil
}

// mockGifExtractor records calls to ExtractGif for verification
type mockGifExtractor struct {
	calls []gifCall
}

type gifCall struct {
	req      *video.GifRequest
	source   string
	destPath string
}

func (m *mockGifExtractor) ExtractGif(ctx context.Context, req *video.GifRequest, sourcePath, destPath string) error {
	m.calls = append(m.calls, gifCall{req: req, source: sourcePath, destPath: destPath})
	return nil
}

// mockFileChecker reports existence from a staged set of files
type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) FileExists(path string) bool {
	return m.existingFiles[path]
}

func (m *mockFileChecker) DirExists(path string) bool {
	return false
}

// mockResolver joins paths without checking the filesystem
type mockResolver struct{}

func (m *mockResolver) UniqueFilePath(dir, filename string) string {
	return dir + "/" + filename
}

func (m *mockResolver) UniqueDirPath(dir, dirname string) string {
	return dir + "/" + dirname + "_frames"
}

// extractionContext holds test state for extraction scenarios
type extractionContext struct {
	prober   *mockProber
	audio    *mockAudioExtractor
	gifs     *mockGifExtractor
	checker  *mockFileChecker
	resolver *mockResolver
	output   *bytes.Buffer
	err      error
}

// SharedExtractionContext is reset before each scenario via Before hook
var SharedExtractionContext *extractionContext

func getExtractionContext() *extractionContext {
	return SharedExtractionContext
}

func InitializeExtractionScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedExtractionContext = &extractionContext{
			prober:   &mockProber{},
			audio:    &mockAudioExtractor{},
			gifs:     &mockGifExtractor{},
			checker:  &mockFileChecker{existingFiles: make(map[string]bool)},
			resolver: &mockResolver{},
			output:   &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedExtractionContext = nil
		return c, nil
	})

	ctx.Step(`^a video at "([^"]*)" that is (\d+) seconds long at (\d+) fps$`, aVideoAt)
	ctx.Step(`^the video has an audio track$`, theVideoHasAnAudioTrack)
	ctx.Step(`^the video has no audio track$`, theVideoHasNoAudioTrack)
	ctx.Step(`^I (?:extract|attempt to extract) audio from "([^"]*)"$`, iExtractAudioFrom)
	ctx.Step(`^I (?:extract|attempt to extract) audio from "([^"]*)" between "([^"]*)" and "([^"]*)"$`, iExtractAudioFromBetween)
	ctx.Step(`^I extract a gif from "([^"]*)"$`, iExtractAGifFrom)
	ctx.Step(`^the extraction should succeed$`, theExtractionShouldSucceed)
	ctx.Step(`^the output should be written to "([^"]*)"$`, theOutputShouldBeWrittenTo)
	ctx.Step(`^the extraction range should cover frames (\d+) to (\d+)$`, theExtractionRangeShouldCoverFrames)
	ctx.Step(`^I should receive an error about a missing audio track$`, iShouldReceiveAMissingAudioTrackError)
	ctx.Step(`^I should receive an error about a missing video file$`, iShouldReceiveAMissingVideoFileError)
	ctx.Step(`^I should receive an error about an unsupported video format$`, iShouldReceiveAnUnsupportedFormatError)
	ctx.Step(`^I should receive an error about an invalid range$`, iShouldReceiveAnInvalidRangeError)
}

func aVideoAt(path string, seconds, fps int) error {
	e := getExtractionContext()
	e.checker.existingFiles[path] = true
	e.prober.meta = &video.Metadata{
		Path:            path,
		Width:           1920,
		Height:          1080,
		FPS:             float64(fps),
		FrameCount:      seconds * fps,
		DurationSeconds: float64(seconds),
		SizeBytes:       1 << 20,
	}
	return nil
}

func theVideoHasAnAudioTrack() error {
	getExtractionContext().prober.meta.HasAudio = true
	return nil
}

func theVideoHasNoAudioTrack() error {
	getExtractionContext().prober.meta.HasAudio = false
	return nil
}

func iExtractAudioFrom(path string) error {
	return iExtractAudioFromBetween(path, "", "")
}

func iExtractAudioFromBetween(path, start, stop string) error {
	e := getExtractionContext()
	req := video.NewAudioRequest()
	req.StartTime = start
	req.StopTime = stop
	e.err = cmd.RunAudioWithDependencies(
		context.Background(), e.prober, e.audio, e.checker, e.resolver,
		path, req, true, e.output,
	)
	return nil
}

func iExtractAGifFrom(path string) error {
	e := getExtractionContext()
	req := video.NewGifRequest()
	e.err = cmd.RunGifWithDependencies(
		context.Background(), e.prober, e.gifs, e.checker, e.resolver,
		path, req, true, e.output,
	)
	return nil
}

func theExtractionShouldSucceed() error {
	if err := getExtractionContext().err; err != nil {
		return fmt.Errorf("expected success, got error: %v", err)
	}
	return nil
}

func theOutputShouldBeWrittenTo(path string) error {
	e := getExtractionContext()
	var dest string
	switch {
	case len(e.audio.calls) > 0:
		dest = e.audio.calls[len(e.audio.calls)-1].destPath
	case len(e.gifs.calls) > 0:
		dest = e.gifs.calls[len(e.gifs.calls)-1].destPath
	default:
		return fmt.Errorf("no extraction was performed")
	}
	if dest != path {
		return fmt.Errorf("expected output at %s, got %s", path, dest)
	}
	return nil
}

func theExtractionRangeShouldCoverFrames(start, stop int) error {
	e := getExtractionContext()
	if len(e.audio.calls) == 0 {
		return fmt.Errorf("no audio extraction was performed")
	}
	rng := e.audio.calls[len(e.audio.calls)-1].req.Range
	if rng.StartFrame != start || rng.StopFrame != stop {
		return fmt.Errorf("expected frames %d to %d, got %d to %d", start, stop, rng.StartFrame, rng.StopFrame)
	}
	return nil
}

func iShouldReceiveAMissingAudioTrackError() error {
	e := getExtractionContext()
	if !errors.Is(e.err, video.ErrNoAudio) {
		return fmt.Errorf("expected a missing audio track error, got: %v", e.err)
	}
	return nil
}

func iShouldReceiveAMissingVideoFileError() error {
	e := getExtractionContext()
	if e.err == nil || !strings.Contains(e.err.Error(), "does not exist") {
		return fmt.Errorf("expected a missing video file error, got: %v", e.err)
	}
	return nil
}

func iShouldReceiveAnUnsupportedFormatError() error {
	e := getExtractionContext()
	if !errors.Is(e.err, video.ErrUnsupportedVideoFormat) {
		return fmt.Errorf("expected an unsupported video format error, got: %v", e.err)
	}
	return nil
}

func iShouldReceiveAnInvalidRangeError() error {
	e := getExtractionContext()
	if !errors.Is(e.err, video.ErrInvalidRange) {
		return fmt.Errorf("expected an invalid range error, got: %v", e.err)
	}
	return nil
}
