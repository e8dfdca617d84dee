// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package face

import (
	"fmt"
	"math"
)

// Axis selects which of the three convolution directions a single pass
// runs along. A full "round" runs all three, in order, per spec.
const (
	AxisU = 0 // in-plane tangent axis.
	AxisV = 1 // in-plane bitangent axis.
	AxisW = 2 // the cross-face "spherical" axis; see ConvolveAxis doc.
)

// ConvolveAxis convolves every face of src into dst along the given
// axis, using kernel k sampled at stride s pixels per tap. src and dst
// must be distinct Sets of equal size; dst is fully overwritten.
//
// Axis 0 and 1 behave like an ordinary separable Gaussian blur along
// one in-plane pixel axis, resolving any out-of-range tap through topo.
//
// Axis 2 has no in-plane direction of its own -- a cube face only has
// two. It is what recovers approximate isotropy on the sphere: each tap
// offset is applied to *both* in-plane coordinates at once, i.e. along
// the face diagonal. A tap at i=0 leaves (u,v) unchanged (identity), and
// every other tap samples strictly off-axis from a pure row/column
// blur, which is what lets the pass reach into a face's corners --
// exactly the geometry a NSEW-only pass (axis 0 then 1) never touches --
// and is resolved through the same topology used for the other two axes.
func ConvolveAxis(dst, src *Set, topo Topology, axis int, k Kernel, s float64) error {
	if src == dst {
		return fmt.Errorf("face.ConvolveAxis: source and destination must not alias")
	}
	if src.N != dst.N {
		return fmt.Errorf("face.ConvolveAxis: size mismatch %d != %d", src.N, dst.N)
	}
	if axis < AxisU || axis > AxisW {
		return fmt.Errorf("face.ConvolveAxis: invalid axis %d", axis)
	}

	n := src.N
	offsets := make([]int, len(k.Weight))
	for i := range k.Weight {
		tap := i - k.Radius
		offsets[i] = int(math.Round(float64(tap) * s))
	}

	for f := 0; f < numFaces; f++ {
		for v := 0; v < n; v++ {
			for u := 0; u < n; u++ {
				var r, g, b, a float32
				for i, w := range k.Weight {
					d := offsets[i]
					var ou, ov int
					switch axis {
					case AxisU:
						ou, ov = u+d, v
					case AxisV:
						ou, ov = u, v+d
					default: // AxisW
						ou, ov = u+d, v+d
					}
					sf, su, sv := topo.Sample(f, ou, ov, n)
					sr, sg, sb, sa := src.At(sf, su, sv)
					r += w * sr
					g += w * sg
					b += w * sb
					a += w * sa
				}
				dst.Set(f, u, v, r, g, b, a)
			}
		}
	}
	return nil
}

// Orchestrator applies a (u,v,w) pass triple numPasses times, ping-
// ponging between two owned six-face buffers so ConvolveAxis never
// aliases its source and destination.
type Orchestrator struct {
	topo Topology
}

// NewOrchestrator returns a ready-to-use Orchestrator. It holds no
// per-size state and is reentrant across independent Run calls.
func NewOrchestrator() *Orchestrator { return &Orchestrator{topo: NewTopology()} }

// Run convolves src with kernel k at stride s for numPasses rounds of
// (axis 0, axis 1, axis 2), writing the result to dst. src and dst may
// be the same logical handle -- the orchestrator copies src into an
// owned scratch buffer first and never convolves in place.
func (o *Orchestrator) Run(dst, src *Set, k Kernel, s float64, numPasses int) error {
	if numPasses < 1 {
		return fmt.Errorf("face.Orchestrator.Run: numPasses must be >= 1, got %d", numPasses)
	}
	p := NewSet(src.N)
	if err := p.CopyFrom(src); err != nil {
		return err
	}
	q := NewSet(src.N)

	for pass := 0; pass < numPasses; pass++ {
		for axis := AxisU; axis <= AxisW; axis++ {
			if err := ConvolveAxis(q, p, o.topo, axis, k, s); err != nil {
				return err
			}
			p, q = q, p
		}
	}
	return dst.CopyFrom(p)
}
