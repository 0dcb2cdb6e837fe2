package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/ordmap-go/ordmap"
)

func newSortKVCommand() *cobra.Command {
	var (
		caseSensitive bool
		dropValue     string
	)

	cmd := &cobra.Command{
		Use:   "sortkv [file]",
		Short: "Sort key,value lines by key and print them in order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			cmp := ordmap.CaseFold()
			if caseSensitive {
				cmp = ordmap.Ordered[string]()
			}
			dict := ordmap.New[string, string](cmp)

			if err := readPairs(in, dict); err != nil {
				return err
			}
			dlog.Debugf(ctx, "read %d entries", dict.Len())

			if cmd.Flags().Changed("drop-value") {
				dropped := dropByValue(dict, dropValue)
				dlog.Debugf(ctx, "dropped %d entries with value %q", dropped, dropValue)
			}

			out := bufio.NewWriter(os.Stdout)
			for i := 0; i < dict.Len(); i++ {
				fmt.Fprintf(out, "%s,%s\n", dict.KeyAt(i), dict.ValueAt(i))
			}
			return out.Flush()
		},
	}
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false,
		"compare keys byte-wise instead of case-folded")
	cmd.Flags().StringVar(&dropValue, "drop-value", "",
		"remove entries whose value equals this string before printing")
	return cmd
}

// readPairs inserts one entry per line of r, splitting each line at its
// first comma. A line with no comma becomes a key with an empty value.
func readPairs(r io.Reader, dict *ordmap.Dict[string, string]) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, _ := strings.Cut(sc.Text(), ",")
		dict.Insert(key, value)
	}
	return sc.Err()
}

// dropByValue removes every entry whose value equals val and returns the
// number removed.
func dropByValue(dict *ordmap.Dict[string, string], val string) int {
	dropped := 0
	it := dict.Values()
	for {
		v, ok := it.Next()
		if !ok {
			return dropped
		}
		if v == val {
			it.Remove()
			dropped++
		}
	}
}
