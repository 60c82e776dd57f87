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

var shuffleCmd = &cobra.Command{
	Use:   "shuffle item...",
	Short: "Print the arguments in random order",
	Long: `Shuffle the arguments and print them one per line, For example:
  randgen shuffle --seed=11 north south east west`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}
		order, _ := random.Shuffle(args).Step(seed)
		fmt.Println(strings.Join(order, "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
}
