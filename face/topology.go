// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package face

import "github.com/gazed/envmapgen/math/lin"

// Face topology. This is the heart of "spherical" in LTASG: resolving a
// tap that lands outside a face's [0,N) bounds to the correct neighbor
// face and coordinate.
//
// Each face defines an orthonormal frame (T, B, Nrm) -- tangent,
// bitangent, and outward normal -- expressed as the rows of a 3x3
// matrix. A tap at local pixel (u,v) is first converted to a world
// direction by treating (u,v,1) as coordinates in that frame:
//
//	dir = u*T + v*B + 1*Nrm
//
// which is exactly lin.V3.MultvM(&V3{u, v, 1}, &basis[face]) since
// MultvM combines a row vector with a matrix's rows as basis vectors.
// The destination face is whichever face's own Nrm has the largest
// positive dot product with dir (the frame most aligned with dir);
// lin.V3.MultMv(&basis[g], dir) projects dir onto face g's frame in one
// call, since the rows are orthonormal so MultMv is the frame inverse.
// Perspective-dividing the projected (u,v) by the projected w recovers
// the neighbor's plane coordinate. This is the "convert to a direction
// vector, then invert the neighbor's frame" construction described by
// the spec, built on the same M3/V3 machinery the engine already uses
// for scene transforms.
const numFaces = 6

// Face index constants, matching the +X,-X,+Y,-Y,+Z,-Z ordering.
const (
	PosX = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// basis[f] rows are (T, B, Nrm) for face f, each a signed unit world axis.
var basis = [numFaces]lin.M3{
	{ // PosX: T=-Z, B=-Y, Nrm=+X
		0, 0, -1,
		0, -1, 0,
		1, 0, 0,
	},
	{ // NegX: T=+Z, B=-Y, Nrm=-X
		0, 0, 1,
		0, -1, 0,
		-1, 0, 0,
	},
	{ // PosY: T=+X, B=+Z, Nrm=+Y
		1, 0, 0,
		0, 0, 1,
		0, 1, 0,
	},
	{ // NegY: T=+X, B=-Z, Nrm=-Y
		1, 0, 0,
		0, 0, -1,
		0, -1, 0,
	},
	{ // PosZ: T=+X, B=-Y, Nrm=+Z
		1, 0, 0,
		0, -1, 0,
		0, 0, 1,
	},
	{ // NegZ: T=-X, B=-Y, Nrm=-Z
		-1, 0, 0,
		0, -1, 0,
		0, 0, -1,
	},
}

// Topology answers the single question the LTASG core needs of cube-map
// geometry: given a tap that may fall outside a face's bounds, which
// face, and which on-face pixel, does it actually refer to.
type Topology struct{}

// NewTopology returns a ready-to-use Topology. It holds no per-size
// state -- the neighbor resolution is computed from the fixed face
// frames above, so one Topology serves every mip level.
func NewTopology() Topology { return Topology{} }

// Sample resolves a tap (u,v) on face f of a size-n face set to the
// face and on-face pixel that actually owns that sample. u and v may be
// any integers, including negative or >= n. In-range taps are returned
// unchanged without any floating point work.
//
// Out-of-range taps are resolved with nearest-neighbor precision: the
// tap is reprojected into world space using face f's frame, then
// reprojected back through whichever neighboring face's frame is most
// aligned with that direction. Corners (where both axes overflow at
// once) are handled by the same projection and naturally favor the
// dominant axis, then are clamped defensively into range.
func (Topology) Sample(f, u, v, n int) (face, su, sv int) {
	if u >= 0 && u < n && v >= 0 && v < n {
		return f, u, v
	}

	uc := toNorm(u, n)
	vc := toNorm(v, n)
	dir := new(lin.V3).MultvM(&lin.V3{X: uc, Y: vc, Z: 1}, &basis[f])

	best := -lin.Large
	bestFace := f
	var bestU, bestV float64
	for g := 0; g < numFaces; g++ {
		local := new(lin.V3).MultMv(&basis[g], dir)
		if local.Z <= 0 {
			continue // face g's own hemisphere does not contain dir.
		}
		if local.Z > best {
			best = local.Z
			bestFace = g
			bestU = local.X / local.Z
			bestV = local.Y / local.Z
		}
	}

	su = clampInt(toPix(bestU, n), 0, n-1)
	sv = clampInt(toPix(bestV, n), 0, n-1)
	return bestFace, su, sv
}

// toNorm converts an integer pixel coordinate (possibly out of [0,n))
// to a plane coordinate in (roughly) [-1,1], extrapolating linearly
// beyond the face edge.
func toNorm(p, n int) float64 {
	return (2*(float64(p)+0.5))/float64(n) - 1
}

// toPix converts a plane coordinate back to the nearest pixel index.
func toPix(c float64, n int) int {
	f := (c+1)/2*float64(n) - 0.5
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

func clampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
