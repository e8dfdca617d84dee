// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gazed/envmapgen"
)

// faceNames gives the on-disk file name for each of the six faces, in
// the +X,-X,+Y,-Y,+Z,-Z order envmapgen.Pipeline.Process expects.
var faceNames = [6]string{"posx.png", "negx.png", "posy.png", "negy.png", "posz.png", "negz.png"}

// bakeFlags holds the bake subcommand's flag-bound variables.
type bakeFlags struct {
	size             int
	sigmas           []float64
	minPasses        int
	kernelResolution float64
	kernelWidth      float64
	out              string
}

// register binds fs to the bake flag set, mirroring the pattern used
// across the pack for attaching a flat flag struct to a pflag.FlagSet.
func (f *bakeFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.size, "size", 256, "level-0 face side length in pixels")
	fs.Float64SliceVar(&f.sigmas, "sigma", nil, "mip level sigma, non-decreasing, repeatable (one per output level)")
	fs.IntVar(&f.minPasses, "min-passes", 2, "floor on (u,v,w) pass rounds per level")
	fs.Float64Var(&f.kernelResolution, "kernel-resolution", 2, "kernel taps per pixel")
	fs.Float64Var(&f.kernelWidth, "kernel-width", 3, "kernel half-extent in sigmas")
	fs.StringVar(&f.out, "out", "", "output directory; one subdirectory per mip level")
}

func newBakeCmd() *cobra.Command {
	flags := &bakeFlags{}

	cmd := &cobra.Command{
		Use:   "bake <face-dir>",
		Short: "Convolve a six-face cube map into a mipmapped chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(flags.sigmas) == 0 {
				return fmt.Errorf("--sigma must be given at least once")
			}
			if flags.out == "" {
				return fmt.Errorf("--out is required")
			}

			faces, err := loadFaces(args[0], flags.size)
			if err != nil {
				return err
			}

			p, err := envmapgen.New(flags.size, flags.sigmas,
				envmapgen.MinPasses(flags.minPasses),
				envmapgen.KernelResolution(flags.kernelResolution),
				envmapgen.KernelWidth(flags.kernelWidth),
			)
			if err != nil {
				return fmt.Errorf("build pipeline: %w", err)
			}

			levels, err := p.Process(faces, envmapgen.FormatSRGB8, envmapgen.FormatSRGB8)
			if err != nil {
				return fmt.Errorf("bake: %w", err)
			}

			return writeLevels(flags.out, levels)
		},
	}

	flags.register(cmd.Flags())
	cmd.MarkFlagRequired("out")

	return cmd
}

func loadFaces(dir string, size int) ([]image.Image, error) {
	faces := make([]image.Image, 6)
	for i, name := range faceNames {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			return nil, fmt.Errorf("%s is %dx%d, want %dx%d", path, b.Dx(), b.Dy(), size, size)
		}
		faces[i] = img
	}
	return faces, nil
}

func writeLevels(outDir string, levels []envmapgen.Level) error {
	for l, lvl := range levels {
		levelDir := filepath.Join(outDir, fmt.Sprintf("level%d", l))
		if err := os.MkdirAll(levelDir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", levelDir, err)
		}
		for i, name := range faceNames {
			path := filepath.Join(levelDir, name)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			err = png.Encode(f, lvl.Faces[i])
			cerr := f.Close()
			if err != nil {
				return fmt.Errorf("encode %s: %w", path, err)
			}
			if cerr != nil {
				return fmt.Errorf("close %s: %w", path, cerr)
			}
		}
	}
	return nil
}
