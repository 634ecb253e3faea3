// Package cmd wires the claudepane CLI. Editor plugins shell out to these
// commands; each one is a single synchronous operation that either succeeds
// or reports a user-visible error.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/claudepane/claudepane/internal/config"
	"github.com/claudepane/claudepane/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "claudepane",
	Short: "Editor bridge for per-project claude sessions",
	Long: `claudepane associates editor buffers with named, long-lived claude
sessions running in tmux, and forwards selected text and diff context
into them. Session names derive deterministically from the project's
workspace root, so every buffer in a project talks to the same session.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/claudepane/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/claudepane")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CLAUDEPANE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., CLAUDEPANE_NAMING_USE_ROOT_BASENAME for naming.use_root_basename
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the logger from the loaded config.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	log, err := logging.NewLogger(cfg.LogDir(), strings.ToUpper(cfg.Logging.Level), logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		return logging.NopLogger()
	}
	return log
}
