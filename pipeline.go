// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package envmapgen generates a pre-filtered mipmapped radiance
// environment map from a six-face cube-map input. Each mip level
// represents the input convolved with a spherical Gaussian whose
// standard deviation grows with the level, producing a lookup texture
// suitable for approximating glossy reflections in real-time shading.
//
// The package wraps the face package's LTASG convolution core (cube
// topology, kernel builder, single-axis convolution, pass orchestrator)
// with the plan package's per-level variance decomposition and a
// driver that coerces formats, downsamples between levels, and emits
// the mip chain (spec §4.6).
package envmapgen

import (
	"errors"
	"fmt"
	"image"

	"github.com/gazed/envmapgen/face"
	"github.com/gazed/envmapgen/plan"
)

// Level is one rung of the output mip pyramid: six encoded faces, all
// sharing the same side length.
type Level struct {
	N     int
	Faces [6]image.Image
}

// Pipeline is a constructed, read-only plan plus the collaborators used
// to drive a Process call. Build one with New and reuse it across
// calls; a Pipeline holds no per-call state.
type Pipeline struct {
	plan   *plan.Plan
	collab Collaborators
	orch   *face.Orchestrator
}

// New builds a Pipeline for a level-0 face side of imageSize pixels and
// a monotonically non-decreasing mipLevelSigmas sequence, one sigma per
// output mip level. Options tune the pass count floor, kernel density,
// kernel width, and the format collaborators; see MinPasses,
// KernelResolution, KernelWidth, WithCollaborators.
//
// New performs every construction-time validation in spec §4.7: sigma
// monotonicity, kernel-size-vs-face-size, and the 32768 pixel ceiling.
// A Pipeline that builds successfully fails Process only on the
// per-call invariants (face arity, face size, format) or on an error
// returned by a collaborator or the pass orchestrator.
func New(imageSize int, mipLevelSigmas []float64, opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig
	for _, o := range opts {
		o(&cfg)
	}

	p, err := plan.Build(imageSize, mipLevelSigmas, cfg.minNumPasses, cfg.kernelResolution, cfg.kernelWidth)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrNonMonotonicSigmas):
			return nil, newKindError(NonMonotonicSigmas, "%v", err)
		case errors.Is(err, plan.ErrKernelTooLarge):
			return nil, newKindError(InvalidKernel, "%v", err)
		default:
			return nil, newKindError(InvalidSize, "%v", err)
		}
	}

	return &Pipeline{
		plan:   p,
		collab: cfg.collaborators,
		orch:   face.NewOrchestrator(),
	}, nil
}

// Process runs the full pipeline driver (spec §4.6) over six input
// faces encoded in inFormat, emitting one Level per entry in the sigma
// sequence New() was built with, encoded in outFormat. Level 0 is the
// same size as the input; each subsequent level is half the side of the
// previous, rounded up.
func (p *Pipeline) Process(inputFaces []image.Image, inFormat, outFormat Format) ([]Level, error) {
	if err := validateArity(len(inputFaces)); err != nil {
		return nil, err
	}
	if err := validateFormat(inFormat); err != nil {
		return nil, err
	}
	if err := validateFormat(outFormat); err != nil {
		return nil, err
	}
	if len(p.plan.Levels) == 0 {
		return nil, nil
	}
	n0 := p.plan.Levels[0].N

	current := face.NewSet(n0)
	for i := 0; i < 6; i++ {
		b := inputFaces[i].Bounds()
		if b.Dx() != n0 || b.Dy() != n0 {
			return nil, newKindError(InvalidSize, "face %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), n0, n0)
		}
		pix, err := p.collab.Decode(inputFaces[i], inFormat, n0, n0)
		if err != nil {
			return nil, fmt.Errorf("envmapgen: decode face %d: %w", i, err)
		}
		if err := validateFaceSize(i, n0, len(pix)); err != nil {
			return nil, err
		}
		copy(current.Face[i], pix)
	}

	levels := make([]Level, len(p.plan.Levels))
	for l, lvl := range p.plan.Levels {
		if l > 0 {
			prevN := p.plan.Levels[l-1].N
			next := face.NewSet(lvl.N)
			for i := 0; i < 6; i++ {
				down, err := p.collab.Resample(current.Face[i], prevN, prevN, lvl.N, lvl.N)
				if err != nil {
					return nil, fmt.Errorf("envmapgen: downsample face %d at level %d: %w", i, l, err)
				}
				copy(next.Face[i], down)
			}
			current = next
		}

		if err := p.orch.Run(current, current, lvl.Kernel, lvl.Scale, lvl.NumPasses); err != nil {
			return nil, fmt.Errorf("envmapgen: level %d: %w", l, err)
		}

		out := Level{N: lvl.N}
		for i := 0; i < 6; i++ {
			img, err := p.collab.Encode(current.Face[i], lvl.N, outFormat)
			if err != nil {
				return nil, fmt.Errorf("envmapgen: encode face %d at level %d: %w", i, l, err)
			}
			out.Faces[i] = img
		}
		levels[l] = out
	}
	return levels, nil
}
