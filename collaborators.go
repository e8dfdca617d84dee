// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package envmapgen

import "image"

// Format names an image encoding a collaborator converts to or from.
// The core itself only ever consumes FormatPremultipliedFloat; the
// other values exist for collaborators.
type Format int

const (
	// FormatPremultipliedFloat is a dense RGBA float32 array, row-major,
	// alpha already multiplied into color. This is the only format the
	// LTASG core consumes.
	FormatPremultipliedFloat Format = iota
	// FormatSRGB8 is 8-bit sRGB with straight (non-premultiplied) alpha,
	// the common format for PNG/JPEG source textures.
	FormatSRGB8
	// FormatSRGB8Premultiplied is 8-bit sRGB with alpha already
	// multiplied into color.
	FormatSRGB8Premultiplied
)

// Decoder converts one caller-supplied face image to a dense
// premultiplied-alpha RGBA float32 array of length >= 4*w*h, row-major.
// The core treats the returned slice as owned -- it will be written
// into -- so a Decoder must not return a view over the caller's own
// backing storage.
type Decoder func(img image.Image, format Format, w, h int) ([]float32, error)

// Encoder converts a premultiplied-alpha RGBA float32 face of side n
// back to the caller's requested format.
type Encoder func(pixels []float32, n int, format Format) (image.Image, error)

// Downsampler halves a premultiplied-alpha RGBA float32 face from
// srcW x srcH to dstW x dstH. Between successive mip levels the core
// requests dstW = ceil(srcW/2) (and likewise for height), which is an
// exact 2x reduction only when the source side is even.
type Downsampler func(src []float32, srcW, srcH, dstW, dstH int) ([]float32, error)

// Collaborators bundles the three format boundaries the pipeline driver
// depends on but does not itself implement (spec §6). DefaultCollaborators
// returns a usable implementation; callers with their own texture
// pipeline can supply their own.
type Collaborators struct {
	Decode   Decoder
	Encode   Encoder
	Resample Downsampler
}
