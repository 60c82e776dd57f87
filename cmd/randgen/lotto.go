// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/itsmanjeet/prng/random"
)

var lottoCmd = &cobra.Command{
	Use:   "lotto",
	Short: "Draw distinct numbers, lottery style",
	Long: `Draw distinct numbers from 1 to --max and print them sorted, For example:
  randgen lotto --count=6 --max=49 --seed=11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lottoMax < 1 {
			return fmt.Errorf("--max must be at least 1, got %d", lottoMax)
		}
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}

		drawn, _ := random.FixedSizeSet(random.Int(1, lottoMax), lottoCount).Step(seed)
		if drawn.Len() < lottoCount {
			logger.Warn().Int("got", drawn.Len()).Int("want", lottoCount).
				Msg("pool too small, drew fewer numbers")
		}
		numbers := drawn.Slice()
		slices.Sort(numbers)

		balls := make([]string, len(numbers))
		for i, n := range numbers {
			balls[i] = strconv.Itoa(n)
		}
		fmt.Println(strings.Join(balls, " "))
		return nil
	},
}

var (
	lottoCount int
	lottoMax   int
)

func init() {
	rootCmd.AddCommand(lottoCmd)

	flags := lottoCmd.Flags()
	flags.IntVarP(&lottoCount, "count", "n", 6, "how many numbers to draw")
	flags.IntVarP(&lottoMax, "max", "m", 49, "largest number in the pool")
}
