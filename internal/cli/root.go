// Package cli implements the veximoji command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	veximoji "github.com/roz0n/Veximoji"
	"github.com/roz0n/Veximoji/internal/config"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "veximoji",
	Short:   "Compose emoji flags from country codes and named terms",
	Long: `veximoji converts ISO country codes, subdivision codes, international
reservation codes, and named cultural terms into emoji flag strings.

Unknown identifiers are a normal outcome: lookups print nothing and exit
nonzero rather than failing loudly.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/veximoji/config.yaml)")
	rootCmd.PersistentFlags().Bool("json", false,
		"emit machine-readable JSON output")
	rootCmd.PersistentFlags().Bool("no-color", false,
		"disable styled output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"log library diagnostics to stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("output.json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cobra.CheckErr(loadConfig())
}

// loadConfig populates cfg from defaults, the config file, and the
// environment. A missing config file means defaults; an unreadable or
// malformed one is an error, whether it came from --config or the
// default location.
func loadConfig() error {
	defaults := config.Defaults()
	viper.SetDefault("output.json", defaults.Output.JSON)
	viper.SetDefault("output.color", defaults.Output.Color)
	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.shutdown_grace_seconds", defaults.Server.ShutdownGraceSeconds)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	viper.SetEnvPrefix("VEXIMOJI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path, err := config.DefaultPath(); err == nil {
		viper.AddConfigPath(filepath.Dir(path))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
		cfg.Output.Color = false
	}
	if cfg.Verbose {
		veximoji.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	return nil
}

// newComposer builds the Composer the commands share, honoring a pinned
// country list from configuration.
func newComposer() *veximoji.Composer {
	if len(cfg.Regions.Static) > 0 {
		return veximoji.New(veximoji.WithRegionSource(
			veximoji.NewStaticSource(cfg.Regions.Static)))
	}
	return veximoji.New()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
