package cmd

import (
	"io"
	"os"

	"titlefix/config"
	"titlefix/title"
	"titlefix/tui"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	appConfig = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "titlefix",
	Short: "Normalize music track titles in audio file tags",
	Long: `titlefix rewrites the title tag of MP3 and FLAC files to a consistent
display convention.

Features:
- Title casing that keeps stylized names, acronyms and non-Latin titles intact
- Featured artists as "(ft. Artist & Artist)"
- Remix, dub and version notes as "(Label Remix)"
- Interactive review of proposed changes

Examples:
  titlefix format song.mp3 other.flac
  titlefix format --dir ./music/ --recursive --dry-run
  titlefix preview "Song feat. Drake and Future"
  titlefix review --dir ./music/`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.titlefix/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		logrus.Warnf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	appConfig = cfg

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

func newFormatter() *title.Formatter {
	return title.New(title.WithMinorWords(appConfig.ExtraMinorWords...))
}

func outputTheme(w io.Writer) *tui.Theme {
	if appConfig.Color && isTerminal(w) {
		return tui.DefaultTheme()
	}
	return tui.PlainTheme()
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
