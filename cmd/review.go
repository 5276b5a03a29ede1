package cmd

import (
	"errors"
	"path/filepath"

	"titlefix/tags"
	"titlefix/title"
	"titlefix/tui"
	"titlefix/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	reviewDir       string
	reviewRecursive bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [files...]",
	Short: "Review proposed title changes interactively",
	Long: `Open a terminal UI listing every title that would change. Toggle the
changes you want and press enter to write them.

Examples:
  titlefix review song.mp3 other.flac
  titlefix review --dir ./music/ --recursive`,
	Run: func(cmd *cobra.Command, args []string) {
		files, err := collectFiles(args, reviewDir, reviewRecursive || appConfig.Recursive)
		if err != nil {
			logrus.Fatal(err)
		}

		editor := tags.NewTitleEditor()
		proposals := buildProposals(editor, newFormatter(), files)
		if len(proposals) == 0 {
			logrus.Info("All titles are already formatted")
			return
		}

		res, err := tui.Run(proposals, editor, outputTheme(cmd.OutOrStdout()))
		if err != nil {
			logrus.Fatalf("TUI exited with error: %v", err)
		}
		for path, err := range res.Errors {
			logrus.Errorf("Failed to update title for %s: %v", filepath.Base(path), err)
		}
		logrus.Infof("Review complete: applied=%d skipped=%d failed=%d", res.Applied, res.Skipped, res.Failed)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringVar(&reviewDir, "dir", "", "Directory containing audio files")
	reviewCmd.Flags().BoolVar(&reviewRecursive, "recursive", false, "Search recursively in subdirectories")
}

// buildProposals reads every file and returns an accepted proposal for each
// title that formatting would change.
func buildProposals(editor tags.TitleEditor, f *title.Formatter, files []string) []tui.Proposal {
	var proposals []tui.Proposal
	for _, file := range files {
		if err := utils.ValidateAudioFile(file, appConfig.Extensions); err != nil {
			logrus.Warn(err)
			continue
		}

		original, err := editor.ReadTitle(file)
		if err != nil {
			if errors.Is(err, tags.ErrNoTitle) {
				logrus.Warnf("No title in %s, skipping", filepath.Base(file))
			} else {
				logrus.Errorf("Failed to read title for %s: %v", filepath.Base(file), err)
			}
			continue
		}

		formatted, changed := f.Changed(original)
		if !changed {
			logrus.Debugf("Keeping original title %s", utils.Quoted(original))
			continue
		}
		proposals = append(proposals, tui.Proposal{
			Path:      file,
			Original:  original,
			Formatted: formatted,
			Accepted:  true,
		})
	}
	return proposals
}
