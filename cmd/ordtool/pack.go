package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/ordmap-go/ordmap/csvutil"
	"github.com/ordmap-go/ordmap/intio"
)

func newPackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pack [file]",
		Short: "Read CSV records of integers and write them as little-endian int32 binary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			total, err := packInts(string(data), out)
			if err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return err
			}

			dlog.Debugf(ctx, "packed %d values", total)
			return nil
		},
	}
}

// packInts converts every CSV integer field in s to a little-endian int32
// on w and returns the number of values written.
func packInts(s string, w io.Writer) (int, error) {
	total := 0
	dst := make([]int32, 16)
	for {
		fields, rest, more := csvutil.ParseInt32s(s, dst)
		if fields > len(dst) {
			// The record had more fields than room; reparse it with a
			// buffer big enough to hold them all.
			dst = make([]int32, fields)
			continue
		}
		for _, v := range dst[:fields] {
			if err := intio.WriteInt32LE(w, v); err != nil {
				return total, fmt.Errorf("writing value %d: %w", total, err)
			}
			total++
		}
		s = rest
		if !more {
			return total, nil
		}
	}
}
