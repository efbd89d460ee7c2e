package cmd

import (
	"fmt"
	"os"

	"github.com/gurrutia/videoxt/domain/video"
	"github.com/gurrutia/videoxt/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the configuration file interactively",
	Long: `Prompts for configuration values and writes them to the config file.

Covers the paths to ffmpeg and ffprobe, the default output formats and an
optional default destination directory. All values have sensible defaults,
so running setup is optional.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	return RunSetupWithPrompter(DefaultPrompter, path, DefaultOutput)
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string, out OutputWriter) error {
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("A config file already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Fprintln(out, "Setup cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	ffmpegPath, err := prompter.Input("Path to the ffmpeg executable:", cfg.Tools.FFmpegPath)
	if err != nil {
		return err
	}
	cfg.Tools.FFmpegPath = ffmpegPath

	ffprobePath, err := prompter.Input("Path to the ffprobe executable:", cfg.Tools.FFprobePath)
	if err != nil {
		return err
	}
	cfg.Tools.FFprobePath = ffprobePath

	audioFormat, err := prompter.Input("Default audio format:", cfg.Defaults.AudioFormat)
	if err != nil {
		return err
	}
	if audioFormat, err = video.ValidateAudioFormat(audioFormat); err != nil {
		return err
	}
	cfg.Defaults.AudioFormat = audioFormat

	imageFormat, err := prompter.Input("Default image format:", cfg.Defaults.ImageFormat)
	if err != nil {
		return err
	}
	if imageFormat, err = video.ValidateImageFormat(imageFormat); err != nil {
		return err
	}
	cfg.Defaults.ImageFormat = imageFormat

	destDir, err := prompter.Input("Default destination directory (empty saves next to the video):", cfg.Output.DestDir)
	if err != nil {
		return err
	}
	cfg.Output.DestDir = destDir

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Configuration saved to %s\n", configPath)
	return nil
}
