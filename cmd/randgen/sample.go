// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsmanjeet/prng/random"
)

var sampleCmd = &cobra.Command{
	Use:   "sample item...",
	Short: "Pick some of the arguments without replacement",
	Long: `Pick a random subset of the arguments, For example:
  randgen sample -n 2 --seed=11 red green blue yellow`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}
		picked, _ := random.Sample(args, sampleSize).Step(seed)
		fmt.Println(strings.Join(picked, "\n"))
		return nil
	},
}

var sampleSize int

func init() {
	rootCmd.AddCommand(sampleCmd)

	flags := sampleCmd.Flags()
	flags.IntVarP(&sampleSize, "count", "n", 1, "how many items to pick")
}
