// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsmanjeet/prng/randlog"
	"github.com/itsmanjeet/prng/random"
)

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll dice",
	Long: `Roll a number of identical dice and print the faces. For example:
  randgen roll --rolls=3 --sides=20 --seed=11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if rollSides < 1 {
			return fmt.Errorf("--sides must be at least 1, got %d", rollSides)
		}
		if rollCount < 1 {
			return fmt.Errorf("--rolls must be at least 1, got %d", rollCount)
		}
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}

		die := randlog.Traced(random.Int(1, rollSides), traceLogger(), fmt.Sprintf("d%d", rollSides))
		rolls, _ := random.FixedSizeList(die, rollCount).Step(seed)

		total := 0
		faces := make([]string, len(rolls))
		for i, r := range rolls {
			total += r
			faces[i] = strconv.Itoa(r)
		}
		fmt.Println(strings.Join(faces, " "))
		logger.Debug().Int("total", total).Msg("rolled")
		return nil
	},
}

var (
	rollCount int
	rollSides int
)

func init() {
	rootCmd.AddCommand(rollCmd)

	flags := rollCmd.Flags()
	flags.IntVarP(&rollCount, "rolls", "n", 1, "number of dice to roll")
	flags.IntVarP(&rollSides, "sides", "s", 6, "sides per die")
}
