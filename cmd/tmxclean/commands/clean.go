package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tmxtools/tmxclean/internal/logger"
	"github.com/tmxtools/tmxclean/internal/report"
	"github.com/tmxtools/tmxclean/pkg/cleaner"
)

// cleanConfig holds the validated clean-command arguments.
type cleanConfig struct {
	Input       string `validate:"required,file"`
	Output      string `validate:"required,nefield=Input"`
	StatsFormat string `validate:"oneof=text json yaml"`
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove bad translation units from a TMX file",
	Long: `Clean a TMX file and write the result to a new file.

Conditions start from a preset (default, conservative, all, none) and can be
overridden individually; a config file may set them under the "clean" key.
The order conditions are checked in is fixed; a unit is removed for the first
matching condition only.

Examples:
  # Default preset, output path derived from the input
  tmxclean clean -i memory.tmx

  # Everything off except whitespace normalization
  tmxclean clean -i memory.tmx --preset none --clean-whitespace

  # Write the statistics report to a file as YAML
  tmxclean clean -i memory.tmx --stats-format yaml --stats-output stats.yaml`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	flags.StringP("input", "i", "", "input TMX file (required)")
	flags.StringP("output", "o", "", "output TMX file (default: <input>_cleaned.tmx)")
	flags.String("preset", "default", "option preset: default, conservative, all, none")

	// Duplicate conditions
	flags.Bool("duplicate-source-target-case-sensitive", false, "remove exact (source, target) repeats")
	flags.Bool("duplicate-source-target-case-insensitive", false, "remove case-folded (source, target) repeats")
	flags.Bool("duplicate-source-case-sensitive", false, "remove exact source repeats")
	flags.Bool("duplicate-source-case-insensitive", false, "remove case-folded source repeats")

	// Content conditions
	flags.Bool("source-same-as-target", false, "remove units whose source equals the target")
	flags.Bool("source-empty", false, "remove units with an empty source")
	flags.Bool("target-empty", false, "remove units with an empty target")
	flags.Bool("source-empty-target-not", false, "remove units with an empty source and non-empty target")
	flags.Bool("target-empty-source-not", false, "remove units with an empty target and non-empty source")
	flags.Bool("both-empty", false, "remove units with source and target both empty")
	flags.Bool("inline-code", false, "remove units containing inline code")

	// Cleaning operations
	flags.Bool("remove-inline-tags", false, "strip inline tags from surviving segments")
	flags.Bool("clean-whitespace", false, "trim and normalize whitespace in surviving segments")

	// Statistics output
	flags.String("stats-format", "text", "statistics format: text, json, yaml")
	flags.String("stats-output", "", "statistics file (default: stdout)")

	_ = cleanCmd.MarkFlagRequired("input")
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	if output == "" && input != "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + "_cleaned" + ext
	}
	statsFormat, _ := cmd.Flags().GetString("stats-format")

	cfg := cleanConfig{
		Input:       input,
		Output:      output,
		StatsFormat: statsFormat,
	}
	if err := validator.New().Struct(cfg); err != nil {
		logger.Error("invalid arguments", "error", err)
		return fmt.Errorf("invalid arguments: %w", err)
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		logger.Error("invalid options", "error", err)
		return err
	}
	if !opts.Enabled() {
		logger.Warn("no cleaning options selected; output will be identical to input")
	}
	for _, name := range opts.EnabledNames() {
		logger.Debug("cleaning option enabled", "option", name)
	}

	c := cleaner.New(opts,
		cleaner.WithLogFunc(func(msg string) {
			logger.Info(msg)
		}),
		cleaner.WithProgressFunc(func(percent float64) {
			logger.Debug("cleaning progress", "percent", int(percent))
		}),
	)

	start := time.Now()
	stats, err := c.CleanFile(cfg.Input, cfg.Output)
	if err != nil {
		logger.Error("cleaning failed", "error", err)
		return err
	}
	logger.Info("cleaning completed",
		"kept", stats.FinalSegments,
		"removed", stats.TotalRemoved(),
		"output", cfg.Output,
		"duration", time.Since(start).Round(time.Millisecond))

	return writeStats(cmd, stats)
}

// buildOptions resolves the preset, applies config-file overrides from the
// "clean" key, then applies explicitly set flags on top.
func buildOptions(cmd *cobra.Command) (cleaner.Options, error) {
	presetName, _ := cmd.Flags().GetString("preset")

	var opts cleaner.Options
	switch presetName {
	case "default", "":
		opts = cleaner.DefaultOptions()
	case "conservative":
		opts = cleaner.ConservativeOptions()
	case "all":
		opts = cleaner.AllOptions()
	case "none":
		opts = cleaner.Options{}
	default:
		return opts, fmt.Errorf("unknown preset: %s (use 'default', 'conservative', 'all' or 'none')", presetName)
	}

	if err := viper.UnmarshalKey("clean", &opts); err != nil {
		return opts, fmt.Errorf("invalid clean options in config file: %w", err)
	}

	for name, field := range map[string]*bool{
		"duplicate-source-target-case-sensitive":   &opts.DuplicateSourceTargetCaseSensitive,
		"duplicate-source-target-case-insensitive": &opts.DuplicateSourceTargetCaseInsensitive,
		"duplicate-source-case-sensitive":          &opts.DuplicateSourceCaseSensitive,
		"duplicate-source-case-insensitive":        &opts.DuplicateSourceCaseInsensitive,
		"source-same-as-target":                    &opts.SourceSameAsTargetCaseSensitive,
		"source-empty":                             &opts.SourceEmpty,
		"target-empty":                             &opts.TargetEmpty,
		"source-empty-target-not":                  &opts.SourceEmptyTargetNot,
		"target-empty-source-not":                  &opts.TargetEmptySourceNot,
		"both-empty":                               &opts.BothEmpty,
		"inline-code":                              &opts.InlineCode,
		"remove-inline-tags":                       &opts.RemoveInlineTags,
		"clean-whitespace":                         &opts.CleanWhitespace,
	} {
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetBool(name)
			*field = value
		}
	}

	return opts, nil
}

// writeStats renders the statistics report to stdout or the requested file.
func writeStats(cmd *cobra.Command, stats *cleaner.Stats) error {
	out := os.Stdout
	if path, _ := cmd.Flags().GetString("stats-output"); path != "" {
		f, err := os.Create(path) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logger.Error("failed to create stats file", "path", path, "error", err)
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	formatStr, _ := cmd.Flags().GetString("stats-format")
	writer, err := report.NewWriter(out, report.Format(formatStr))
	if err != nil {
		logger.Error("failed to create stats writer", "format", formatStr, "error", err)
		return err
	}
	return writer.Write(stats)
}
