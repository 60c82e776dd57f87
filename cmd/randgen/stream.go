// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsmanjeet/prng/random"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Print a run of random integers",
	Long: `Print integers drawn from an inclusive range, one per line. The
token logged at the end names the stream's position, so a later run can
pick up exactly where this one stopped, For example:
  randgen stream --count=20 --low=0 --high=9 --seed=3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}

		st := random.Int(streamLow, streamHigh).Stream(seed)
		w := bufio.NewWriter(os.Stdout)
		for i := 0; i < streamCount; i++ {
			fmt.Fprintln(w, st.Next())
		}
		if err := w.Flush(); err != nil {
			return err
		}
		logger.Info().Str("token", st.Seed().Encode()).Msg("resume with --seed-token")
		return nil
	},
}

var (
	streamCount int
	streamLow   int
	streamHigh  int
)

func init() {
	rootCmd.AddCommand(streamCmd)

	flags := streamCmd.Flags()
	flags.IntVarP(&streamCount, "count", "n", 10, "how many integers to print")
	flags.IntVar(&streamLow, "low", 0, "smallest value, inclusive")
	flags.IntVar(&streamHigh, "high", 9, "largest value, inclusive")
}
