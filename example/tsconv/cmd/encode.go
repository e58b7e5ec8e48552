package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/blockberries/unixts"
	"github.com/blockberries/unixts/wire"
)

// encoders maps an output format to its encoder.
var encoders = map[string]func(unixts.Timestamp) (string, error){
	"text": func(ts unixts.Timestamp) (string, error) {
		b, err := ts.MarshalText()
		return string(b), err
	},
	"json": func(ts unixts.Timestamp) (string, error) {
		b, err := ts.MarshalJSON()
		return string(b), err
	},
	"binary": func(ts unixts.Timestamp) (string, error) {
		b, err := ts.MarshalBinary()
		return hex.EncodeToString(b), err
	},
	"cramberry": func(ts unixts.Timestamp) (string, error) {
		b, err := wire.Marshal(ts)
		return hex.EncodeToString(b), err
	},
	"proto": func(ts unixts.Timestamp) (string, error) {
		pb, err := wire.ToProto(ts)
		if err != nil {
			return "", err
		}
		b, err := protojson.Marshal(pb)
		return string(b), err
	},
}

func newEncodeCommand(*Config) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "encode TIMESTAMP",
		Short: "print the wire encoding of a timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, ok := encoders[format]
			if !ok {
				return errors.Errorf("unknown format %q", format)
			}
			ts, err := unixts.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "parse")
			}
			out, err := enc(ts)
			if err != nil {
				return errors.Wrapf(err, "encode %s", format)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "text, json, binary, cramberry or proto")
	return cmd
}
