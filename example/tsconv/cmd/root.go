// Package cmd implements the tsconv command tree.
package cmd

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every subcommand. Values come
// from flags, TSCONV_* environment variables and an optional config
// file, in that order of precedence.
type Config struct {
	Zone      string
	Precision int
	Layout    string
	LogLevel  string
	Addr      string
}

// flag name -> config key
var configKeys = map[string]string{
	"zone":      "zone",
	"precision": "precision",
	"layout":    "layout",
	"log-level": "log_level",
	"addr":      "addr",
}

// NewRootCommand builds the tsconv command tree with its own
// configuration instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TSCONV")
	v.AutomaticEnv()

	var cfgFile string
	cfg := new(Config)

	root := &cobra.Command{
		Use:           "tsconv",
		Short:         "convert and compute unix timestamps",
		Long:          `tsconv parses unix timestamp literals, does exact arithmetic on them and prints calendar and wire forms.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cfgFile, cfg); err != nil {
				return err
			}
			return setupLogger(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("zone", "UTC", "IANA zone for calendar output")
	flags.Int("precision", -1, "fractional digits to print, -1 for the exact value")
	flags.String("layout", time.RFC3339Nano, "calendar layout")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("addr", "127.0.0.1:7410", "gRPC listen or dial address")
	if err := bindFlags(v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newParseCommand(cfg),
		newAddCommand(cfg),
		newDiffCommand(cfg),
		newEncodeCommand(cfg),
		newServeCommand(cfg),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range configKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper, cfgFile string, cfg *Config) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", cfgFile)
		}
	}
	*cfg = Config{
		Zone:      v.GetString("zone"),
		Precision: v.GetInt("precision"),
		Layout:    v.GetString("layout"),
		LogLevel:  v.GetString("log_level"),
		Addr:      v.GetString("addr"),
	}
	return nil
}

func setupLogger(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
	return nil
}
