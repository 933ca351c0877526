// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdslides CLI. With no subcommand it
// converts the configured markdown deck to a .pptx presentation.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdslides/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdslides CLI.
var rootCmd = &cobra.Command{
	Use:   "mdslides",
	Short: "Convert slide-annotated markdown into PowerPoint presentations",
	Long: `mdslides turns a markdown document divided by "## Slide N:" markers into a
.pptx presentation. Each slide's **VISUAL:**, **TEXT:** and **SPEAKER NOTES:**
sections become body text and speaker notes under a fixed deep-blue theme.

Run without a subcommand to convert the configured input to the configured
output. The convert, inspect and handout subcommands take explicit paths.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args, false)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdslides.yaml or ~/.config/mdslides/mdslides.yaml)")
	rootCmd.PersistentFlags().StringP("input", "i", "", "markdown source (default "+types.DefaultInput+")")
	rootCmd.PersistentFlags().StringP("output", "o", "", "presentation path (default "+types.DefaultOutput+")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, or error (default warn)")

	bindFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	bindFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	bindFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdslides")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdslides"))
		}
	}

	viper.SetEnvPrefix("MDSLIDES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
