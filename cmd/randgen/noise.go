// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/itsmanjeet/prng/random"
)

var noiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Render generator output as a grayscale PNG",
	Long: `Fill a square image with one random shade per pixel and write it as
a PNG. Structure visible in the output (stripes, checkers, gradients)
would mean the generator is biased; it should look like television
static. For example:
  randgen noise --size=256 --scale=2 --out=noise.png --seed=11`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noiseSize < 1 {
			return fmt.Errorf("--size must be at least 1, got %d", noiseSize)
		}
		if noiseScale < 1 {
			return fmt.Errorf("--scale must be at least 1, got %d", noiseScale)
		}
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}

		if err := writePNG(noiseOut, renderNoise(seed, noiseSize, noiseScale)); err != nil {
			return err
		}
		logger.Info().Str("file", noiseOut).Int("pixels", noiseSize*noiseSize).Msg("wrote noise image")
		return nil
	},
}

// writePNG encodes img to path, reporting encode and close failures
// alike. Buffered data may reach the disk only at close.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

// renderNoise fills a size-by-size grayscale image with one draw per pixel,
// left to right then top to bottom, and enlarges it by scale. Nearest
// neighbor keeps each drawn shade a crisp square, so the enlarged image
// still shows individual draws.
func renderNoise(seed random.Seed, size, scale int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	shade := random.Int(0, 255).Stream(seed)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(shade.Next())})
		}
	}
	if scale <= 1 {
		return img
	}
	dst := image.NewGray(image.Rect(0, 0, size*scale, size*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

var (
	noiseSize  int
	noiseScale int
	noiseOut   string
)

func init() {
	rootCmd.AddCommand(noiseCmd)

	flags := noiseCmd.Flags()
	flags.IntVar(&noiseSize, "size", 256, "image width and height in draws")
	flags.IntVar(&noiseScale, "scale", 1, "enlarge the image by this factor")
	flags.StringVarP(&noiseOut, "out", "o", "noise.png", "output file")
}
