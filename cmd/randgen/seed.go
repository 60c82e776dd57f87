// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmanjeet/prng/random"
)

var seedCmd = &cobra.Command{
	Use:   "seed [token]",
	Short: "Mint or inspect a seed token",
	Long: `With no argument, print the token for this run's seed: from --seed
if given, otherwise freshly drawn from the entropy source. With a token
argument, decode it and print the state it names, For example:
  randgen seed --seed=11
  randgen seed MTIxNDc0NTUzNywxMDEzOTA0MjIz`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			seed, err := random.DecodeSeed(args[0])
			if err != nil {
				return err
			}
			fmt.Println(seed)
			return nil
		}
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}
		fmt.Println(seed.Encode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
