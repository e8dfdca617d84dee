// SPDX-FileCopyrightText : © 2026 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package envmapgen

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// DefaultCollaborators returns a usable, swappable implementation of
// the three external boundaries the pipeline driver depends on: 8-bit
// sRGB decode/encode to and from premultiplied-alpha float, and 2x2 box
// downsampling between mip levels. A caller with its own texture
// pipeline (the engine's own load.Png, say) can supply a Collaborators
// built from that instead -- the core never imports this file's
// dependencies itself.
func DefaultCollaborators() Collaborators {
	return Collaborators{
		Decode:   decodeSRGB,
		Encode:   encodeSRGB,
		Resample: boxDownsample,
	}
}

// decodeSRGB converts a decoded caller image to premultiplied-alpha
// linear float32. color.RGBA64Model always yields alpha-premultiplied
// gamma-space values, so color is divided by alpha before linearizing
// and multiplied by alpha again afterwards, for either accepted format.
func decodeSRGB(img image.Image, format Format, w, h int) ([]float32, error) {
	if format != FormatSRGB8 && format != FormatSRGB8Premultiplied {
		return nil, fmt.Errorf("envmapgen: decodeSRGB: unsupported format %d", format)
	}
	out := make([]float32, 4*w*h)
	b := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA64)
			a := float32(c.A) / 65535
			rs, gs, bs := float32(c.R)/65535, float32(c.G)/65535, float32(c.B)/65535
			if a > 0 {
				rs, gs, bs = rs/a, gs/a, bs/a
			}
			i := 4 * (y*w + x)
			out[i+0] = srgbToLinear(rs) * a
			out[i+1] = srgbToLinear(gs) * a
			out[i+2] = srgbToLinear(bs) * a
			out[i+3] = a
		}
	}
	return out, nil
}

// encodeSRGB converts a premultiplied-alpha linear float32 face back to
// an 8-bit sRGB image.Image in the requested format.
func encodeSRGB(pixels []float32, n int, format Format) (image.Image, error) {
	if format != FormatSRGB8 && format != FormatSRGB8Premultiplied {
		return nil, fmt.Errorf("envmapgen: encodeSRGB: unsupported format %d", format)
	}
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := 4 * (y*n + x)
			a := pixels[i+3]
			r, g, b := pixels[i+0], pixels[i+1], pixels[i+2]
			if a > 0 {
				r, g, b = r/a, g/a, b/a
			}
			rs, gs, bs := linearToSRGB(r), linearToSRGB(g), linearToSRGB(b)
			if format == FormatSRGB8Premultiplied {
				rs, gs, bs = rs*a, gs*a, bs*a
			}
			img.Set(x, y, color.NRGBA{
				R: to8(rs), G: to8(gs), B: to8(bs), A: to8(a),
			})
		}
	}
	return img, nil
}

// boxDownsample halves a face with 2x2 box averaging when the source is
// exactly twice the destination. It falls back to
// golang.org/x/image/draw's bilinear scaler for any other size ratio,
// including the odd-side case where the next level's side is rounded up
// (e.g. 17 -> 9).
func boxDownsample(src []float32, srcW, srcH, dstW, dstH int) ([]float32, error) {
	if srcW == 2*dstW && srcH == 2*dstH {
		out := make([]float32, 4*dstW*dstH)
		for y := 0; y < dstH; y++ {
			for x := 0; x < dstW; x++ {
				var r, g, b, a float32
				for _, off := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
					si := 4 * ((2*y+off[1])*srcW + (2*x + off[0]))
					r += src[si+0]
					g += src[si+1]
					b += src[si+2]
					a += src[si+3]
				}
				di := 4 * (y*dstW + x)
				out[di+0], out[di+1], out[di+2], out[di+3] = r/4, g/4, b/4, a/4
			}
		}
		return out, nil
	}

	srcImg := &floatImage{pix: src, w: srcW, h: srcH}
	dstImg := &floatImage{pix: make([]float32, 4*dstW*dstH), w: dstW, h: dstH}
	draw.ApproxBiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	return dstImg.pix, nil
}

// floatImage adapts a premultiplied-alpha float32 RGBA buffer to
// image.Image/draw.Image so golang.org/x/image/draw's scalers can be
// used directly on it without an intermediate 8-bit copy.
type floatImage struct {
	pix  []float32
	w, h int
}

func (f *floatImage) ColorModel() color.Model { return color.RGBA64Model }
func (f *floatImage) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }
func (f *floatImage) At(x, y int) color.Color {
	i := 4 * (y*f.w + x)
	return color.RGBA64{
		R: to16(f.pix[i+0]), G: to16(f.pix[i+1]), B: to16(f.pix[i+2]), A: to16(f.pix[i+3]),
	}
}
func (f *floatImage) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	i := 4 * (y*f.w + x)
	f.pix[i+0], f.pix[i+1], f.pix[i+2], f.pix[i+3] = from16(r), from16(g), from16(b), from16(a)
}

func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}

func linearToSRGB(c float32) float32 {
	if c <= 0 {
		return 0
	}
	if c <= 0.0031308 {
		return c * 12.92
	}
	v := float32(1.055*math.Pow(float64(c), 1/2.4) - 0.055)
	if v > 1 {
		return 1
	}
	return v
}

func to8(c float32) uint8 {
	v := c * 255
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

func to16(c float32) uint16 {
	v := c * 65535
	switch {
	case v <= 0:
		return 0
	case v >= 65535:
		return 65535
	default:
		return uint16(v + 0.5)
	}
}

func from16(v uint32) float32 { return float32(v) / 65535 }
