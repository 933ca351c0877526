// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/mdslides/internal/convert"
	"github.com/pdiddy/mdslides/pkg/types"
)

var handoutCmd = &cobra.Command{
	Use:   "handout [input] [output]",
	Short: "Write a speaker-notes handout without building slides",
	Long: `Handout parses the markdown deck at input and writes a document listing each
slide's heading and its cleaned speaker notes. The format is docx or pdf;
without an explicit output the handout is placed next to the configured
presentation path.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runHandout,
}

func init() {
	handoutCmd.Flags().String("format", "", "handout format: docx or pdf (default from config, docx)")

	rootCmd.AddCommand(handoutCmd)
}

func runHandout(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Handout.Output = args[1]
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Handout.Format = types.HandoutFormat(format)
	}

	w := cmd.OutOrStdout()
	return report(w, func() error {
		src, err := convert.Load(cfg.Input, logger)
		if err != nil {
			return err
		}
		_, err = convert.WriteHandout(cfg, src, w)
		return err
	})
}
