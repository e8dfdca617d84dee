// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package envmapgen

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Options is the YAML-serializable form of the arguments New() needs:
// the mandatory image size and sigma sequence, plus the same knobs
// exposed as functional Options elsewhere in this package. A caller
// driving the pipeline from a config file builds one with
// LoadOptionsYAML and passes its fields straight to New.
type Options struct {
	ImageSize        int       `yaml:"imageSize"`
	MipLevelSigmas   []float64 `yaml:"mipLevelSigmas"`
	MinNumPasses     int       `yaml:"minNumPasses"`
	KernelResolution float64   `yaml:"kernelResolution"`
	KernelWidth      float64   `yaml:"kernelWidth"`
}

// LoadOptionsYAML decodes a small YAML document of the shape:
//
//	imageSize: 256
//	mipLevelSigmas: [0, 0.05, 0.15, 0.35, 0.7, 1.2]
//	minNumPasses: 2
//	kernelResolution: 2
//	kernelWidth: 3
//
// minNumPasses, kernelResolution, and kernelWidth may be omitted; zero
// values are replaced with this package's documented defaults so a
// minimal document only naming imageSize and mipLevelSigmas is valid.
func LoadOptionsYAML(r io.Reader) (Options, error) {
	var o Options
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		return Options{}, fmt.Errorf("envmapgen: LoadOptionsYAML: %w", err)
	}
	if o.MinNumPasses == 0 {
		o.MinNumPasses = defaultConfig.minNumPasses
	}
	if o.KernelResolution == 0 {
		o.KernelResolution = defaultConfig.kernelResolution
	}
	if o.KernelWidth == 0 {
		o.KernelWidth = defaultConfig.kernelWidth
	}
	return o, nil
}

// ToOptions converts o to the functional Option slice New() accepts.
func (o Options) ToOptions() []Option {
	return []Option{
		MinPasses(o.MinNumPasses),
		KernelResolution(o.KernelResolution),
		KernelWidth(o.KernelWidth),
	}
}
