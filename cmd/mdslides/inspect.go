// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdslides/internal/build"
	"github.com/pdiddy/mdslides/internal/convert"
	"github.com/pdiddy/mdslides/internal/extract"
	"github.com/pdiddy/mdslides/pkg/types"
)

// titleWidth caps the TITLE column in display cells.
const titleWidth = 40

var inspectCmd = &cobra.Command{
	Use:   "inspect [input]",
	Short: "Show how a markdown deck will be split into slides",
	Long: `Inspect parses the markdown deck without writing a presentation and prints
one row per slide: its rank, the layout it will use, its title, the number of
bullets rendered, and whether it carries speaker notes. Use --json or --yaml to
dump the parsed records and deck metadata instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output parsed records as JSON")
	inspectCmd.Flags().Bool("yaml", false, "output parsed records as YAML")
	inspectCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	rootCmd.AddCommand(inspectCmd)
}

// inspection is the --json and --yaml document.
type inspection struct {
	Source string              `json:"source" yaml:"source"`
	Meta   types.DeckMeta      `json:"meta" yaml:"meta"`
	Slides []types.SlideRecord `json:"slides" yaml:"slides"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	w := cmd.OutOrStdout()
	return report(w, func() error {
		src, err := convert.Load(cfg.Input, logger)
		if err != nil {
			return err
		}
		doc := inspection{Source: src.Path, Meta: src.Meta, Slides: src.Slides}
		switch {
		case asJSON:
			return writeJSON(w, doc)
		case asYAML:
			return writeYAML(w, doc)
		default:
			writeTable(w, build.New(cfg, logger), src)
			return nil
		}
	})
}

func writeJSON(w io.Writer, doc inspection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc inspection) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// writeTable prints one aligned row per slide. Column widths are measured in
// display cells so wide characters in titles keep the columns straight.
func writeTable(w io.Writer, b *build.Builder, src convert.Source) {
	header := []string{"#", "LAYOUT", "TITLE", "BULLETS", "NOTES"}
	rows := [][]string{header}
	for i, s := range src.Slides {
		title := s.Title
		if s.IsTitleSlide() && title == "" {
			title = "(" + b.Theme.FallbackTitle + ")"
		}
		notes := "no"
		if s.HasNotes() {
			notes = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			b.LayoutName(build.Layout(i, s.Content)),
			runewidth.Truncate(title, titleWidth, "…"),
			strconv.Itoa(bulletCount(s.Content, b.Theme.MaxBullets)),
			notes,
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			if c == len(row)-1 {
				cells[c] = cell
				continue
			}
			cells[c] = runewidth.FillRight(cell, widths[c])
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}

	if src.Meta.Title != "" {
		fmt.Fprintf(w, "\nDeck title: %s\n", src.Meta.Title)
	}
	fmt.Fprintf(w, "Total slides: %d\n", len(src.Slides))
}

// bulletCount is the number of bullets the builder renders for content: zero
// when the content falls back to a single paragraph.
func bulletCount(content string, limit int) int {
	return min(len(extract.ExtractBulletPoints(content)), limit)
}
