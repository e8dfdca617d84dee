// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package envmapgen

// options.go reduces the New() API footprint using functional options,
// the same shape as the engine's own config.go: Attr func(*Config).
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// config holds the optional tuning knobs for a Pipeline. ImageSize and
// the mip level sigma sequence are mandatory and passed directly to
// New(), since unlike a window title or background color a pipeline
// without them has nothing to do.
type config struct {
	minNumPasses     int     // floor on (u,v,w) rounds per level.
	kernelResolution float64 // kappa: taps per pixel.
	kernelWidth      float64 // omega: kernel half-extent in sigmas.
	collaborators    Collaborators
}

// defaultConfig mirrors the spec's defaults (§6): minNumPasses=2,
// kernelResolution=2, kernelWidth=3, plus the reference 8-bit sRGB /
// box-downsample collaborators.
var defaultConfig = config{
	minNumPasses:     2,
	kernelResolution: 2,
	kernelWidth:      3,
	collaborators:    DefaultCollaborators(),
}

// Option overrides one optional pipeline attribute. For use in New().
type Option func(*config)

// MinPasses sets the floor on the number of (u,v,w) pass rounds run at
// every mip level, even when the variance budget alone would ask for
// fewer. Higher values trade runtime for quality; see spec.md S4.
func MinPasses(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.minNumPasses = n
		}
	}
}

// KernelResolution sets kappa, the kernel taps per pixel. Larger values
// oversample (denser kernel, higher quality, higher cost).
func KernelResolution(kappa float64) Option {
	return func(c *config) {
		if kappa > 0 {
			c.kernelResolution = kappa
		}
	}
}

// KernelWidth sets omega, the ratio of kernel half-extent to sigma,
// which determines the truncation radius and the per-pass sigma limit
// (0.5/omega).
func KernelWidth(omega float64) Option {
	return func(c *config) {
		if omega > 0 {
			c.kernelWidth = omega
		}
	}
}

// WithCollaborators replaces the reference 8-bit sRGB / box-downsample
// collaborators with a caller-supplied implementation -- for example
// one built on the engine's own load.Png and a GPU-side downsampler.
func WithCollaborators(c Collaborators) Option {
	return func(cfg *config) { cfg.collaborators = c }
}
