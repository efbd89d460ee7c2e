package cmd

import (
	"fmt"
	"os"

	"github.com/gurrutia/videoxt/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "videoxt",
	Short: "Extract audio, clips, frames and GIFs from video files",
	Long: `videoxt extracts content from video files:

  - audio   Extract the audio track (m4a, mp3, ogg, wav)
  - clip    Extract a subclip as mp4
  - frames  Extract individual frames as images
  - gif     Extract an animated GIF

Example:
  videoxt audio recording.mp4 --start-time 1:30 --stop-time 2:45
  videoxt frames recording.mp4 --capture-rate 30 --image-format png`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the user config directory)")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			cfg = config.DefaultConfig()
			return
		}
		path = defaultPath
	}

	loaded, err := config.LoadOrDefault(path)
	if err != nil {
		// A broken config file should not block extractions
		cfg = config.DefaultConfig()
		return
	}
	cfg = loaded
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}
