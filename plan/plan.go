// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package plan derives, from a user's per-mip-level sigma sequence, the
// (kernel, kernel-scale, pass-count) triple the pass orchestrator needs
// to run at each level. A plan is built once at construction from
// immutable options and retained read-only; nothing here touches pixel
// data.
package plan

import (
	"errors"
	"fmt"
	"math"

	"github.com/gazed/envmapgen/face"
)

// Sentinel errors identifying the two sigma-dependent ways a plan can
// fail to build. Callers that need the distinction should use errors.Is.
// Out-of-range construction parameters (imageSize, kernelResolution,
// kernelWidth, minPasses) are reported as plain errors without a sentinel.
var (
	ErrNonMonotonicSigmas = errors.New("plan: sigma sequence must be non-decreasing")
	ErrKernelTooLarge     = errors.New("plan: kernel too large for face size")
)

// Level is the fully resolved pass descriptor for one mip level.
type Level struct {
	N         int         // face side length at this level.
	Kernel    face.Kernel // 1-D Gaussian tap weights for this level's passes.
	Scale     float64     // sampling stride in pixels per kernel tap.
	NumPasses int         // number of (u,v,w) pass triples to run.
}

// Plan is the ordered, per-level pass schedule for a full mip chain.
type Plan struct {
	Levels []Level
}

// Build derives a Plan for an imageSize x imageSize level-0 face given a
// monotonically non-decreasing sigma sequence, one entry per mip level.
// minPasses floors the number of (u,v,w) rounds run at every level, even
// when the variance budget alone would ask for fewer. kernelResolution
// (kappa) and kernelWidth (omega) trade sampling density for per-pass
// sigma budget; see the design notes below.
//
// Design notes: variance decomposition (sigma^2 = sum(sigma_i^2)) is
// exact for Gaussians, so the residual variance still owed at level l is
// always desiredVar - lastVariance, where lastVariance is advanced by
// the *cumulative target* (desiredVar) after each level, not by the
// decomposed residue actually spent. Advancing by the residue would let
// per-pass rounding slack accumulate across levels; advancing by the
// target keeps every level's absolute blur pinned to its own sigma.
func Build(imageSize int, sigmas []float64, minPasses int, kernelResolution, kernelWidth float64) (*Plan, error) {
	if imageSize <= 0 || imageSize > 32768 {
		return nil, fmt.Errorf("plan.Build: imageSize %d out of range", imageSize)
	}
	if kernelResolution <= 0 {
		return nil, fmt.Errorf("plan.Build: kernelResolution must be positive")
	}
	if kernelWidth <= 0 {
		return nil, fmt.Errorf("plan.Build: kernelWidth must be positive")
	}
	if minPasses < 1 {
		return nil, fmt.Errorf("plan.Build: minNumPasses must be >= 1")
	}

	sigmaLimit := 0.5 / kernelWidth
	scale := 1 / kernelResolution

	// The whole sequence is checked before any level is planned, so a
	// decreasing sequence is reported as such even when an earlier level
	// would also fail the kernel-size guard.
	for l, sigma := range sigmas {
		if sigma < 0 || (l > 0 && sigma < sigmas[l-1]) {
			return nil, ErrNonMonotonicSigmas
		}
	}

	levels := make([]Level, len(sigmas))
	var lastVariance float64
	for l, sigma := range sigmas {
		desiredVar := sigma * sigma
		residueVar := desiredVar - lastVariance
		if residueVar < 0 {
			return nil, ErrNonMonotonicSigmas
		}

		nl := levelSize(imageSize, l)

		// numPasses auto-scales below to keep the per-pass sigma under
		// sigmaLimit, which also keeps the per-pass radius r bounded no
		// matter how large residueVar is -- a guard on that split
		// radius can never trigger. Guard instead on the level's full,
		// unsplit radius: the kernel size this level's total blur would
		// need in a single pass, which is what actually determines
		// whether the requested sigma makes sense for a face this
		// small, independent of how many passes the budget spends.
		totalSigma := math.Sqrt(residueVar) * float64(nl)
		rFull := int(math.Floor(totalSigma * kernelResolution * kernelWidth))
		if float64(nl) <= float64(rFull)*scale*math.Sqrt(3) {
			return nil, fmt.Errorf("%w: level %d, N=%d radius=%d scale=%g", ErrKernelTooLarge, l, nl, rFull, scale)
		}

		numPasses := minPasses
		if need := int(math.Ceil(residueVar / (sigmaLimit * sigmaLimit))); need > numPasses {
			numPasses = need
		}

		levelSigma := math.Sqrt(residueVar/float64(numPasses)) * float64(nl)
		r := int(math.Floor(levelSigma * kernelResolution * kernelWidth))

		k := face.NewKernel(r, levelSigma*kernelResolution)
		levels[l] = Level{N: nl, Kernel: k, Scale: scale, NumPasses: numPasses}
		lastVariance = desiredVar
	}
	return &Plan{Levels: levels}, nil
}

// levelSize returns ceil(n / 2^level).
func levelSize(n, level int) int {
	d := 1 << uint(level)
	return (n + d - 1) / d
}
