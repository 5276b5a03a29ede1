package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"titlefix/title"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var previewPlain bool

var previewCmd = &cobra.Command{
	Use:   "preview [titles...]",
	Short: "Show how titles would be formatted",
	Long: `Format the given titles without touching any file. With no arguments,
titles are read line by line from standard input.

Examples:
  titlefix preview "A Song Of Fire And Ice" "Track [Extended Remix]"
  cat titles.txt | titlefix preview --plain`,
	Run: func(cmd *cobra.Command, args []string) {
		titles := args
		if len(titles) == 0 {
			if isTerminal(os.Stdin) {
				logrus.Fatal("no titles given (pass them as arguments or pipe them on stdin)")
			}
			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				logrus.Fatalf("Failed to read titles: %v", err)
			}
			titles = lines
		}

		renderPreview(cmd.OutOrStdout(), newFormatter(), titles, previewPlain)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewPlain, "plain", false, "Print only the formatted titles, one per line")
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func renderPreview(w io.Writer, f *title.Formatter, titles []string, plain bool) {
	if plain {
		for _, t := range titles {
			fmt.Fprintln(w, f.Format(t))
		}
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Original", "Formatted", "Annotation"})
	for _, t := range titles {
		formatted := f.Format(t)
		if formatted == t {
			formatted = "(unchanged)"
		}
		tw.AppendRow(table.Row{t, formatted, title.Locate(t).Kind.String()})
	}
	fmt.Fprintln(w, tw.Render())
}
