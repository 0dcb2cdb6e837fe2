package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/ordmap-go/ordmap/intio"
)

func newUnpackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack [file]",
		Short: "Read little-endian int32 binary and write it as CSV records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			perLine, err := getBoundedInt64(cmd.Flags(), "per-line", 1, 4096)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			out := bufio.NewWriter(os.Stdout)
			total, err := unpackInts(bufio.NewReader(in), out, int(perLine))
			if err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return err
			}

			dlog.Debugf(ctx, "unpacked %d values", total)
			return nil
		},
	}
	cmd.Flags().Int64P("per-line", "n", 8,
		"number of values per CSV record")
	return cmd
}

// unpackInts reads int32 values from r until end-of-input, writing them to
// w as CSV records of perLine fields each, and returns the number of
// values read. A trailing partial int32 is reported as truncation.
func unpackInts(r io.Reader, w io.Writer, perLine int) (int, error) {
	total := 0
	for {
		v, err := intio.ReadInt32LE(r)
		switch {
		case errors.Is(err, io.ErrUnexpectedEOF):
			return total, fmt.Errorf("input truncated after %d values", total)
		case errors.Is(err, io.EOF):
			if total > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return total, err
				}
			}
			return total, nil
		case err != nil:
			return total, err
		}

		sep := ","
		if total%perLine == 0 {
			sep = ""
			if total > 0 {
				sep = "\n"
			}
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, v); err != nil {
			return total, err
		}
		total++
	}
}
