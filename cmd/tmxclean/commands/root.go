// Package commands implements the CLI commands for tmxclean.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tmxclean",
	Short: "Clean TMX translation memories",
	Long: `Tmxclean removes broken and duplicate translation units from TMX
files and normalizes the surviving segment text.

Pick a preset or toggle individual conditions: duplicate detection in four
key spaces, source-same-as-target, the emptiness family, inline-code
filtering, inline-tag stripping and whitespace normalization. A per-condition
statistics report is printed after every run.

Examples:
  # Clean with the default preset
  tmxclean clean -i memory.tmx -o memory_cleaned.tmx

  # Conservative preset with a JSON statistics report
  tmxclean clean -i memory.tmx --preset conservative --stats-format json

  # Default preset plus case-insensitive duplicate matching
  tmxclean clean -i memory.tmx \
      --duplicate-source-target-case-insensitive \
      --duplicate-source-case-insensitive`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.tmxclean.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".tmxclean")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("TMXCLEAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
