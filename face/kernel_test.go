// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package face

import "testing"

func TestNewKernelSumsToOne(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 2.3, 10} {
		for _, r := range []int{1, 2, 5, 16} {
			k := NewKernel(r, sigma)
			if len(k.Weight) != 2*r+1 {
				t.Fatalf("sigma=%v r=%d: len = %d, want %d", sigma, r, len(k.Weight), 2*r+1)
			}
			if s := k.Sum(); s < 0.999 || s > 1.001 {
				t.Fatalf("sigma=%v r=%d: Sum = %v, want ~1", sigma, r, s)
			}
		}
	}
}

func TestNewKernelRadiusZeroIsIdentity(t *testing.T) {
	k := NewKernel(0, 1.5)
	if len(k.Weight) != 1 || k.Weight[0] != 1 {
		t.Fatalf("radius-0 kernel = %v, want [1]", k.Weight)
	}
}

func TestNewKernelNonPositiveSigmaDoesNotNaN(t *testing.T) {
	k := NewKernel(3, 0)
	for i, w := range k.Weight {
		if w != w { // NaN check.
			t.Fatalf("weight %d is NaN", i)
		}
	}
	if k.Weight[k.Radius] != 1 {
		t.Fatalf("zero-sigma kernel center = %v, want 1", k.Weight[k.Radius])
	}
	if s := k.Sum(); s != 1 {
		t.Fatalf("zero-sigma kernel sum = %v, want 1", s)
	}
}

func TestNewKernelIsSymmetric(t *testing.T) {
	k := NewKernel(4, 2)
	for i := 0; i < len(k.Weight)/2; i++ {
		j := len(k.Weight) - 1 - i
		if diff := k.Weight[i] - k.Weight[j]; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("weight[%d]=%v != weight[%d]=%v", i, k.Weight[i], j, k.Weight[j])
		}
	}
}
