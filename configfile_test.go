// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package envmapgen

import (
	"strings"
	"testing"
)

func TestLoadOptionsYAMLFillsDefaults(t *testing.T) {
	doc := "imageSize: 256\nmipLevelSigmas: [0, 0.1, 0.3]\n"
	o, err := LoadOptionsYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadOptionsYAML: %v", err)
	}
	if o.ImageSize != 256 {
		t.Fatalf("ImageSize = %d, want 256", o.ImageSize)
	}
	if len(o.MipLevelSigmas) != 3 {
		t.Fatalf("len(MipLevelSigmas) = %d, want 3", len(o.MipLevelSigmas))
	}
	if o.MinNumPasses != defaultConfig.minNumPasses {
		t.Fatalf("MinNumPasses = %d, want default %d", o.MinNumPasses, defaultConfig.minNumPasses)
	}
	if o.KernelResolution != defaultConfig.kernelResolution {
		t.Fatalf("KernelResolution = %v, want default %v", o.KernelResolution, defaultConfig.kernelResolution)
	}
}

func TestLoadOptionsYAMLRejectsUnknownFields(t *testing.T) {
	doc := "imageSize: 256\nbogusField: true\n"
	if _, err := LoadOptionsYAML(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadOptionsYAMLPreservesExplicitValues(t *testing.T) {
	doc := "imageSize: 128\nmipLevelSigmas: [1]\nminNumPasses: 4\nkernelResolution: 3\nkernelWidth: 2.5\n"
	o, err := LoadOptionsYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadOptionsYAML: %v", err)
	}
	if o.MinNumPasses != 4 || o.KernelResolution != 3 || o.KernelWidth != 2.5 {
		t.Fatalf("explicit values not preserved: %+v", o)
	}
}

func TestOptionsToOptionsFeedIntoNew(t *testing.T) {
	o := Options{ImageSize: 8, MipLevelSigmas: []float64{0, 0.1}, MinNumPasses: 2, KernelResolution: 2, KernelWidth: 3}
	if _, err := New(o.ImageSize, o.MipLevelSigmas, o.ToOptions()...); err != nil {
		t.Fatalf("New with Options.ToOptions(): %v", err)
	}
}
