// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package plan

import (
	"errors"
	"testing"
)

func TestBuildLevelSizesHalveAndRoundUp(t *testing.T) {
	p, err := Build(17, []float64{0.05, 0.1, 0.15}, 2, 2, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []int{17, 9, 5}
	for i, lvl := range p.Levels {
		if lvl.N != want[i] {
			t.Fatalf("level %d: N = %d, want %d", i, lvl.N, want[i])
		}
	}
}

func TestBuildRejectsNonMonotonicSigmas(t *testing.T) {
	_, err := Build(64, []float64{2, 1}, 2, 2, 3)
	if !errors.Is(err, ErrNonMonotonicSigmas) {
		t.Fatalf("err = %v, want ErrNonMonotonicSigmas", err)
	}
}

func TestBuildRejectsNegativeSigma(t *testing.T) {
	_, err := Build(64, []float64{-1}, 2, 2, 3)
	if !errors.Is(err, ErrNonMonotonicSigmas) {
		t.Fatalf("err = %v, want ErrNonMonotonicSigmas", err)
	}
}

func TestBuildAcceptsEqualSigmas(t *testing.T) {
	p, err := Build(64, []float64{0.1, 0.1, 0.1}, 2, 2, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Levels) != 3 {
		t.Fatalf("len(Levels) = %d, want 3", len(p.Levels))
	}
	for i, lvl := range p.Levels {
		if lvl.NumPasses < 2 {
			t.Fatalf("level %d: NumPasses = %d, want >= minPasses", i, lvl.NumPasses)
		}
	}
}

func TestBuildRejectsBadConstructionParams(t *testing.T) {
	cases := []struct {
		name             string
		imageSize        int
		minPasses        int
		kernelResolution float64
		kernelWidth      float64
	}{
		{"zero image size", 0, 2, 2, 3},
		{"oversize image", 32769, 2, 2, 3},
		{"zero kernelResolution", 64, 2, 0, 3},
		{"negative kernelWidth", 64, 2, 2, -1},
		{"zero minPasses", 64, 0, 2, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Build(c.imageSize, []float64{1}, c.minPasses, c.kernelResolution, c.kernelWidth); err == nil {
				t.Fatalf("expected error for %s", c.name)
			}
		})
	}
}

func TestBuildMinPassesFloor(t *testing.T) {
	p, err := Build(64, []float64{0.01}, 5, 2, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Levels[0].NumPasses != 5 {
		t.Fatalf("NumPasses = %d, want floor of 5", p.Levels[0].NumPasses)
	}
}

func TestBuildEmptySigmasYieldsEmptyPlan(t *testing.T) {
	p, err := Build(64, nil, 2, 2, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Levels) != 0 {
		t.Fatalf("len(Levels) = %d, want 0", len(p.Levels))
	}
}

func TestBuildRejectsKernelTooLargeForFace(t *testing.T) {
	_, err := Build(8, []float64{0.4}, 2, 2, 3)
	if !errors.Is(err, ErrKernelTooLarge) {
		t.Fatalf("Build(8, [0.4]) err = %v, want ErrKernelTooLarge", err)
	}
}

func TestLevelSize(t *testing.T) {
	cases := []struct{ n, level, want int }{
		{64, 0, 64},
		{64, 1, 32},
		{64, 6, 1},
		{17, 1, 9},
		{17, 2, 5},
	}
	for _, c := range cases {
		if got := levelSize(c.n, c.level); got != c.want {
			t.Fatalf("levelSize(%d,%d) = %d, want %d", c.n, c.level, got, c.want)
		}
	}
}
