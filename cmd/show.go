package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"titlefix/tags"
	"titlefix/title"
	"titlefix/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show the current and formatted title of an audio file",
	Long:  "Reads the title tag, prints it next to its formatted form and shows where the featuring or version annotation starts.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file := args[0]
		if err := utils.ValidateAudioFile(file, appConfig.Extensions); err != nil {
			logrus.Fatal(err)
		}

		original, err := tags.NewTitleEditor().ReadTitle(file)
		if err != nil {
			logrus.Fatalf("failed to read title: %v", err)
		}

		report := newTitleReport(file, original, newFormatter())
		if err := writeTitleReport(cmd.OutOrStdout(), report, showJSON); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

type titleReport struct {
	File       string `json:"file"`
	Title      string `json:"title"`
	Formatted  string `json:"formatted"`
	Changed    bool   `json:"changed"`
	Annotation string `json:"annotation"`
	Name       string `json:"name"`
	Info       string `json:"info,omitempty"`
}

func newTitleReport(file, original string, f *title.Formatter) titleReport {
	formatted, changed := f.Changed(original)
	name, info := title.Split(original)
	return titleReport{
		File:       filepath.Base(file),
		Title:      original,
		Formatted:  formatted,
		Changed:    changed,
		Annotation: title.Locate(original).Kind.String(),
		Name:       name,
		Info:       info,
	}
}

func writeTitleReport(w io.Writer, r titleReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "File:\t%s\n", r.File)
	fmt.Fprintf(tw, "Title:\t%s\n", utils.Quoted(r.Title))
	if r.Changed {
		fmt.Fprintf(tw, "Formatted:\t%s\n", utils.Quoted(r.Formatted))
	} else {
		fmt.Fprintf(tw, "Formatted:\t(unchanged)\n")
	}
	fmt.Fprintf(tw, "Annotation:\t%s\n", r.Annotation)
	if r.Info != "" {
		fmt.Fprintf(tw, "Name part:\t%s\n", utils.Quoted(r.Name))
		fmt.Fprintf(tw, "Info part:\t%s\n", utils.Quoted(r.Info))
	}
	return tw.Flush()
}
