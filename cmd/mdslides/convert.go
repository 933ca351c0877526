// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdslides/internal/convert"
)

// noSlidesMessage is printed when the input has no slide markers. The run
// still succeeds.
const noSlidesMessage = "No slides found! Check markdown format."

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert a markdown deck to a .pptx presentation",
	Long: `Convert parses the markdown deck at input into slides and writes them to
output as a PowerPoint presentation. Positional paths override --input and
--output. With --handout, a speaker-notes handout is written as well.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		withHandout, _ := cmd.Flags().GetBool("handout")
		return runConversion(cmd, args, withHandout)
	},
}

func init() {
	convertCmd.Flags().Bool("handout", false, "also write a speaker-notes handout")
	convertCmd.Flags().String("handout-format", "", "handout format: docx or pdf (default docx)")
	convertCmd.Flags().String("handout-output", "", "handout path (default: output with the format's extension)")

	bindFlag("handout.format", convertCmd.Flags().Lookup("handout-format"))
	bindFlag("handout.output", convertCmd.Flags().Lookup("handout-output"))

	rootCmd.AddCommand(convertCmd)
}

func runConversion(cmd *cobra.Command, args []string, withHandout bool) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	return report(cmd.OutOrStdout(), func() error {
		_, err := convert.Run(convert.Options{Config: cfg, Handout: withHandout, Logger: logger}, cmd.OutOrStdout())
		return err
	})
}

// report runs fn and turns ErrNoSlides into a printed message.
func report(w io.Writer, fn func() error) error {
	err := fn()
	if errors.Is(err, convert.ErrNoSlides) {
		fmt.Fprintln(w, noSlidesMessage)
		return nil
	}
	return err
}
