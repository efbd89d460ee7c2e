package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/gurrutia/videoxt/domain/video"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec
type ExecCommandRunner struct{}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// Stream is a single stream entry in ffprobe's JSON output.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
}

// probeOutput is the subset of ffprobe's JSON output the client reads.
type probeOutput struct {
	Streams []Stream `json:"streams"`
}

// Client implements video.AudioDetector by reading stream info with ffprobe
type Client struct {
	ffprobePath string
	runner      CommandRunner
}

// ClientOption is a functional option for configuring Client
type ClientOption func(*Client)

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) ClientOption {
	return func(c *Client) {
		c.ffprobePath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ClientOption {
	return func(c *Client) {
		c.runner = runner
	}
}

// NewClient creates a new ffprobe client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		ffprobePath: "ffprobe",
		runner:      &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Streams returns the streams ffprobe reports for the file.
func (c *Client) Streams(ctx context.Context, path string) ([]Stream, error) {
	out, err := c.runner.Output(ctx, c.ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	var probed probeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return nil, fmt.Errorf("parsing ffprobe output for %s: %w", path, err)
	}

	return probed.Streams, nil
}

// HasAudio implements video.AudioDetector
func (c *Client) HasAudio(ctx context.Context, path string) (bool, error) {
	streams, err := c.Streams(ctx, path)
	if err != nil {
		return false, err
	}

	for _, stream := range streams {
		if stream.CodecType == "audio" {
			return true, nil
		}
	}
	return false, nil
}

// VerifyInstalled checks that ffprobe is available
func (c *Client) VerifyInstalled(ctx context.Context) error {
	_, err := c.runner.Output(ctx, c.ffprobePath, "-version")
	if err != nil {
		return fmt.Errorf("ffprobe not found or not executable: %w", err)
	}
	return nil
}

// Ensure Client implements video.AudioDetector
var _ video.AudioDetector = (*Client)(nil)
