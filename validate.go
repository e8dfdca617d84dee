// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package envmapgen

// validate.go enforces the per-call invariants of spec §4.7: the ones
// that depend on the faces handed to Process, as opposed to the
// construction-time invariants (sigma monotonicity, kernel-vs-size)
// which plan.Build already enforces when New() is called.

const maxImageSize = 32768

// validateArity rejects anything short of six faces.
func validateArity(n int) error {
	if n < 6 {
		return newKindError(InvalidArity, "need 6 faces, got %d", n)
	}
	return nil
}

// validateFaceSize rejects a decoded face whose backing storage is
// smaller than 4*n*n elements, or a requested side exceeding the
// 32768 pixel ceiling.
func validateFaceSize(faceIndex, n int, got int) error {
	if n > maxImageSize {
		return newKindError(InvalidSize, "imageSize %d exceeds %d", n, maxImageSize)
	}
	want := 4 * n * n
	if got < want {
		return newKindError(InvalidSize, "face %d has %d elements, need >= %d", faceIndex, got, want)
	}
	return nil
}

// validateFormat rejects any format Process cannot hand to a Decoder or
// Encoder. FormatPremultipliedFloat is the core's own internal
// representation -- it never reaches Process from a caller, since a
// caller's image.Image is always an encoded (sRGB) source or
// destination, not the dense float buffer the core convolves.
func validateFormat(f Format) error {
	if f != FormatSRGB8 && f != FormatSRGB8Premultiplied {
		return newKindError(InvalidFormat, "unsupported caller-facing format %d", f)
	}
	return nil
}
