package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"titlefix/tags"
	"titlefix/title"
	"titlefix/tui"
	"titlefix/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	formatDir       string
	formatRecursive bool
	formatDryRun    bool
)

var errNoFiles = errors.New("at least one audio file to edit must be given as an argument")

var formatCmd = &cobra.Command{
	Use:   "format [files...]",
	Short: "Normalize the title tag of audio files",
	Long: `Read the title of each file, normalize it and write it back when it changed.

Examples:
  titlefix format song.mp3
  titlefix format *.flac --dry-run
  titlefix format --dir ./music/ --recursive`,
	Run: func(cmd *cobra.Command, args []string) {
		files, err := collectFiles(args, formatDir, formatRecursive || appConfig.Recursive)
		if err != nil {
			logrus.Fatal(err)
		}

		out := cmd.OutOrStdout()
		dryRun := formatDryRun || appConfig.DryRun
		if dryRun {
			logrus.Info("Dry run: no tags will be written")
		}

		s := formatFiles(out, tags.NewTitleEditor(), newFormatter(), files, dryRun, outputTheme(out))
		logrus.Infof("Format complete: processed=%d updated=%d kept=%d skipped=%d errors=%d",
			s.Processed, s.Updated, s.Kept, s.Skipped, s.Errors)
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVar(&formatDir, "dir", "", "Directory containing audio files")
	formatCmd.Flags().BoolVar(&formatRecursive, "recursive", false, "Search recursively in subdirectories")
	formatCmd.Flags().BoolVar(&formatDryRun, "dry-run", false, "Print changes without writing them")
}

// collectFiles returns the file arguments followed by the audio files found
// in dir.
func collectFiles(args []string, dir string, recursive bool) ([]string, error) {
	if len(args) == 0 && dir == "" {
		return nil, errNoFiles
	}

	files := append([]string(nil), args...)
	if dir != "" {
		found, err := utils.FindAudioFiles(dir, recursive, appConfig.Extensions)
		if err != nil {
			return nil, fmt.Errorf("failed to find audio files: %w", err)
		}
		if len(found) == 0 {
			logrus.Infof("No audio files found in %s", dir)
		}
		files = append(files, found...)
	}
	return files, nil
}

type formatSummary struct {
	Processed int
	Updated   int
	Kept      int
	Skipped   int
	Errors    int
}

func formatFiles(w io.Writer, editor tags.TitleEditor, f *title.Formatter, files []string, dryRun bool, theme *tui.Theme) formatSummary {
	var s formatSummary

	for _, file := range files {
		s.Processed++
		name := filepath.Base(file)

		if err := utils.ValidateAudioFile(file, appConfig.Extensions); err != nil {
			logrus.Error(err)
			s.Errors++
			continue
		}

		original, err := editor.ReadTitle(file)
		if errors.Is(err, tags.ErrNoTitle) {
			logrus.Warnf("No title in %s, skipping", name)
			s.Skipped++
			continue
		}
		if err != nil {
			logrus.Errorf("Failed to read title for %s: %v", name, err)
			s.Errors++
			continue
		}

		formatted, changed := f.Changed(original)
		if !changed {
			fmt.Fprintln(w, tui.KeptLine(original, theme))
			s.Kept++
			continue
		}

		fmt.Fprintln(w, tui.ChangeLine(original, formatted, theme))
		if dryRun {
			s.Updated++
			continue
		}
		if err := editor.WriteTitle(file, formatted); err != nil {
			fmt.Fprintln(w, tui.ErrorText(fmt.Sprintf("Failed to update title for %s: %v", name, err), theme))
			s.Errors++
			continue
		}
		logrus.Debugf("Updated title for %s", name)
		s.Updated++
	}

	return s
}
