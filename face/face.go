// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package face implements the Linear-Time Approximate Spherical Gaussian
// (LTASG) cube-face convolution core: the cube-aware topology, the
// Gaussian kernel builder, the single-axis convolution, and the pass
// orchestrator that ping-pongs a six-face buffer through a kernel.
//
// Package face is deliberately ignorant of image formats, mip pyramids,
// and planning policy. It consumes plain premultiplied-alpha float
// buffers and a kernel, and produces the same. Format coercion lives in
// the envmapgen package; the per-level variance decomposition lives in
// the plan package.
package face

import "fmt"

// Set is an ordered tuple of exactly six faces of identical size,
// indexed 0..5 for +X,-X,+Y,-Y,+Z,-Z in a right-handed world frame.
type Set struct {
	N    int         // side length in pixels, shared by all six faces.
	Face [6][]float32 // row-major RGBA, len 4*N*N each.
}

// NewSet allocates a zeroed six-face set of side n.
func NewSet(n int) *Set {
	s := &Set{N: n}
	for i := range s.Face {
		s.Face[i] = make([]float32, 4*n*n)
	}
	return s
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	c := NewSet(s.N)
	for i := range s.Face {
		copy(c.Face[i], s.Face[i])
	}
	return c
}

// CopyFrom replaces s's pixel data with a's. Both must share the same N.
func (s *Set) CopyFrom(a *Set) error {
	if s.N != a.N {
		return fmt.Errorf("face.CopyFrom: size mismatch %d != %d", s.N, a.N)
	}
	for i := range s.Face {
		copy(s.Face[i], a.Face[i])
	}
	return nil
}

// At returns the RGBA sample at face f, pixel (u,v). u and v must already
// be in range [0,N) -- out-of-range taps are resolved through a Topology
// before calling At.
func (s *Set) At(f, u, v int) (r, g, b, a float32) {
	i := 4 * (v*s.N + u)
	p := s.Face[f]
	return p[i], p[i+1], p[i+2], p[i+3]
}

// Set writes the RGBA sample at face f, pixel (u,v).
func (s *Set) Set(f, u, v int, r, g, b, a float32) {
	i := 4 * (v*s.N + u)
	p := s.Face[f]
	p[i], p[i+1], p[i+2], p[i+3] = r, g, b, a
}
