package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/blockberries/unixts"
	"github.com/blockberries/unixts/calendar"
)

func newParseCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "parse LITERAL...",
		Short: "print timestamp literals as decimals and calendar times",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				ts, err := unixts.Parse(arg)
				if err != nil {
					return errors.Wrap(err, "parse")
				}
				cal, err := calendarTime(cfg, ts)
				if err != nil {
					return err
				}
				log.Debug().Int64("seconds", ts.Seconds()).Uint32("nanos", ts.Nanos()).Msg("parsed")
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", decimal(cfg, ts), cal)
			}
			return nil
		},
	}
}

func newAddCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add TIMESTAMP DURATION",
		Short: "add a Go duration such as 90m or -1.5s to a timestamp",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := unixts.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "parse timestamp")
			}
			d, err := time.ParseDuration(args[1])
			if err != nil {
				return errors.Wrap(err, "parse duration")
			}
			sum, err := ts.Add(d)
			if err != nil {
				return errors.Wrapf(err, "%v + %v", ts, d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), decimal(cfg, sum))
			return nil
		},
	}
}

func newDiffCommand(*Config) *cobra.Command {
	return &cobra.Command{
		Use:   "diff TO FROM",
		Short: "print the exact span TO-FROM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := unixts.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "parse TO")
			}
			from, err := unixts.Parse(args[1])
			if err != nil {
				return errors.Wrap(err, "parse FROM")
			}
			fmt.Fprintln(cmd.OutOrStdout(), to.Diff(from))
			return nil
		},
	}
}

func decimal(cfg *Config, ts unixts.Timestamp) string {
	if cfg.Precision < 0 {
		return ts.String()
	}
	return fmt.Sprintf("%.*f", cfg.Precision, ts)
}

func calendarTime(cfg *Config, ts unixts.Timestamp) (string, error) {
	t, err := calendar.ToZone(ts, cfg.Zone)
	if err != nil {
		return "", errors.Wrap(err, "calendar")
	}
	return t.Format(cfg.Layout), nil
}
