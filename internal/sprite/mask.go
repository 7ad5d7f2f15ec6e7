// Package sprite holds CPU-side visual frames, their per-pixel collision masks
// and the geometric transforms used to derive them.
package sprite

import (
	"image"
)

// AlphaThreshold is the alpha value a pixel must exceed to be solid.
const AlphaThreshold = 127

// Mask is a per-pixel opacity map used for collision testing.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromImage builds a mask marking every pixel whose alpha exceeds AlphaThreshold.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

// Size returns the mask dimensions.
func (m *Mask) Size() image.Point {
	return image.Pt(m.w, m.h)
}

// At reports whether the pixel at (x, y) is solid. Out of range is never solid.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Set marks the pixel at (x, y).
func (m *Mask) Set(x, y int, solid bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = solid
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether mask a occupying ra and mask b occupying rb share
// at least one solid pixel. A nil mask is treated as fully solid.
func Overlap(a *Mask, ra image.Rectangle, b *Mask, rb image.Rectangle) bool {
	r := ra.Intersect(rb)
	if r.Empty() {
		return false
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if solid(a, x-ra.Min.X, y-ra.Min.Y) && solid(b, x-rb.Min.X, y-rb.Min.Y) {
				return true
			}
		}
	}
	return false
}

func solid(m *Mask, x, y int) bool {
	if m == nil {
		return true
	}
	return m.At(x, y)
}
