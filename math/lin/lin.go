// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the slice of 3D vector/matrix math the cube face
// topology needs to resolve an out-of-bounds tap to its neighboring
// face: row-vector by 3x3-matrix multiplication in both directions.
package lin

import "math"

// Large is a value bigger than any dot product of two unit vectors,
// usable as a "no best candidate yet" sentinel when searching for a max.
const Large float64 = math.MaxFloat32
