// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the vtt2md CLI.
// Each pipeline stage is a subcommand: convert, structure, enrich,
// linkify, and extract-links. Stages compose by file handoff; an LLM
// or a human supplies hints between the convert and structure stages.
// See docs/ARCHITECTURE.md § Pipeline Interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/vtt2md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the vtt2md CLI.
var rootCmd = &cobra.Command{
	Use:   "vtt2md",
	Short: "Convert caption files into structured Markdown transcripts",
	Long: `vtt2md turns WebVTT caption files with word-level timing into clean,
structured Markdown transcripts. The pipeline runs as separate stages
composed by file handoff: convert parses captions into sentence-per-line
Markdown, structure applies a title, section headings, and paragraph
breaks from a hints file, and enrich/linkify turn phrases and timestamp
markers into hyperlinks.

Subtitle and metadata download is out of scope; every stage consumes
already-materialized local files.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./vtt2md.yaml or ~/.config/vtt2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("vtt2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "vtt2md"))
		}
	}

	viper.SetEnvPrefix("VTT2MD")
	viper.AutomaticEnv()

	viper.SetDefault("segment.pause_threshold", types.DefaultPauseThreshold)
	viper.SetDefault("segment.timestamps", true)
	viper.SetDefault("enrich.warn_unmatched", false)
	viper.SetDefault("enrich.video_url_template", types.DefaultVideoURLTemplate)
	viper.SetDefault("enrich.separator", types.DefaultSeparator)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig resolves the effective configuration: defaults,
// overridden by the config file and environment. Flags override these
// per subcommand.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Segment: types.SegmentConfig{
			PauseThreshold: viper.GetFloat64("segment.pause_threshold"),
			Timestamps:     viper.GetBool("segment.timestamps"),
		},
		Enrich: types.EnrichConfig{
			WarnUnmatched:    viper.GetBool("enrich.warn_unmatched"),
			VideoURLTemplate: viper.GetString("enrich.video_url_template"),
			Separator:        viper.GetString("enrich.separator"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
