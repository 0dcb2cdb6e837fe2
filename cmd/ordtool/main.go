// Command ordtool bundles small conversions around the ordmap utility
// packages: packing CSV integer records into little-endian binary,
// unpacking them back, and sorting key/value text by dictionary order.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	var verbose bool

	argparser := &cobra.Command{
		Use:   "ordtool {pack|unpack|sortkv}",
		Short: "CSV, little-endian binary and sorted key/value conversions",

		SilenceErrors: true, // main() handles the error after ExecuteContext returns
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},

		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	argparser.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	argparser.AddCommand(
		newPackCommand(),
		newUnpackCommand(),
		newSortKVCommand(),
	)

	ctx := dlog.WithLogger(context.Background(), dlog.WrapLogrus(logger))
	if err := argparser.ExecuteContext(ctx); err != nil {
		dlog.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

// openInput returns the named file, or stdin when args is empty.
func openInput(args []string) (*os.File, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// getBoundedInt64 reads a numeric flag and validates it against an
// inclusive range.
func getBoundedInt64(flags *pflag.FlagSet, name string, min, max int64) (int64, error) {
	value, err := flags.GetInt64(name)
	if err != nil {
		return 0, err
	}
	if value < min || value > max {
		return 0, fmt.Errorf("value %d for --%s is out of range [%d, %d]",
			value, name, min, max)
	}
	return value, nil
}
