//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gurrutia/videoxt/cmd"
	"github.com/gurrutia/videoxt/infrastructure/config"

	"github.com/cucumber/godog"
)

// mockPrompter answers prompts from a map keyed by prompt substring,
// falling back to the default answer
type mockPrompter struct {
	inputs    map[string]string
	overwrite bool
}

func (p *mockPrompter) Input(message string, defaultValue string) (string, error) {
	for key, answer := range p.inputs {
		if strings.Contains(message, key) {
			return answer, nil
		}
	}
	return defaultValue, nil
}

func (p *mockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	return p.overwrite, nil
}

// setupContext holds test state for setup scenarios
type setupContext struct {
	dir        string
	configPath string
	output     *bytes.Buffer
	err        error
}

// SharedSetupContext is reset before each scenario via Before hook
var SharedSetupContext *setupContext

func getSetupContext() *setupContext {
	return SharedSetupContext
}

func InitializeSetupScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "videoxt-setup-")
		if err != nil {
			return c, err
		}
		SharedSetupContext = &setupContext{
			dir:        dir,
			configPath: filepath.Join(dir, "config.yaml"),
			output:     &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedSetupContext != nil {
			os.RemoveAll(SharedSetupContext.dir)
		}
		SharedSetupContext = nil
		return c, nil
	})

	ctx.Step(`^no config file exists$`, noConfigFileExists)
	ctx.Step(`^a config file already exists$`, aConfigFileAlreadyExists)
	ctx.Step(`^I run setup accepting the default answers$`, iRunSetupAcceptingDefaults)
	ctx.Step(`^I run setup with ffmpeg path "([^"]*)" and audio format "([^"]*)"$`, iRunSetupWithAnswers)
	ctx.Step(`^I run setup declining to overwrite$`, iRunSetupDecliningOverwrite)
	ctx.Step(`^the config file should set the ffmpeg path to "([^"]*)"$`, theConfigShouldSetFFmpegPath)
	ctx.Step(`^the config file should set the audio format to "([^"]*)"$`, theConfigShouldSetAudioFormat)
	ctx.Step(`^the existing config file should be unchanged$`, theExistingConfigShouldBeUnchanged)
}

func noConfigFileExists() error {
	return nil
}

func aConfigFileAlreadyExists() error {
	s := getSetupContext()
	existing := config.DefaultConfig()
	existing.Defaults.AudioFormat = "ogg"
	return config.Save(existing, s.configPath)
}

func iRunSetupAcceptingDefaults() error {
	s := getSetupContext()
	s.err = cmd.RunSetupWithPrompter(&mockPrompter{}, s.configPath, s.output)
	return s.err
}

func iRunSetupWithAnswers(ffmpegPath, audioFormat string) error {
	s := getSetupContext()
	prompter := &mockPrompter{inputs: map[string]string{
		"ffmpeg executable": ffmpegPath,
		"audio format":      audioFormat,
	}}
	s.err = cmd.RunSetupWithPrompter(prompter, s.configPath, s.output)
	return s.err
}

func iRunSetupDecliningOverwrite() error {
	s := getSetupContext()
	s.err = cmd.RunSetupWithPrompter(&mockPrompter{overwrite: false}, s.configPath, s.output)
	return s.err
}

func theConfigShouldSetFFmpegPath(want string) error {
	cfg, err := loadSetupConfig()
	if err != nil {
		return err
	}
	if cfg.Tools.FFmpegPath != want {
		return fmt.Errorf("expected ffmpeg path %q, got %q", want, cfg.Tools.FFmpegPath)
	}
	return nil
}

func theConfigShouldSetAudioFormat(want string) error {
	cfg, err := loadSetupConfig()
	if err != nil {
		return err
	}
	if cfg.Defaults.AudioFormat != want {
		return fmt.Errorf("expected audio format %q, got %q", want, cfg.Defaults.AudioFormat)
	}
	return nil
}

func theExistingConfigShouldBeUnchanged() error {
	cfg, err := loadSetupConfig()
	if err != nil {
		return err
	}
	if cfg.Defaults.AudioFormat != "ogg" {
		return fmt.Errorf("config file was modified: audio format is %q", cfg.Defaults.AudioFormat)
	}
	return nil
}

func loadSetupConfig() (*config.Config, error) {
	return config.Load(getSetupContext().configPath)
}
