package sprite

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Sprite is one visual frame together with the mask derived from it.
type Sprite struct {
	Image image.Image
	Mask  *Mask
}

// New wraps img and derives its mask.
func New(img image.Image) *Sprite {
	return &Sprite{Image: img, Mask: MaskFromImage(img)}
}

// Size returns the frame dimensions.
func (s *Sprite) Size() image.Point {
	return s.Image.Bounds().Size()
}

// Scale resizes img to w×h.
func Scale(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FlipVertical mirrors img top to bottom.
func FlipVertical(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, b.Dy()-1-y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Rotate turns img counterclockwise by deg degrees about its center. The result
// is enlarged to hold the whole rotated frame, so its center matches the source center.
func Rotate(img image.Image, deg float64) *image.NRGBA {
	b := img.Bounds()
	if deg == 0 {
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
		return dst
	}

	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	w, h := float64(b.Dx()), float64(b.Dy())
	nw := int(math.Ceil(math.Abs(w*cos)+math.Abs(h*sin)-1e-9))
	nh := int(math.Ceil(math.Abs(w*sin)+math.Abs(h*cos)-1e-9))

	cx := float64(b.Min.X) + w/2
	cy := float64(b.Min.Y) + h/2
	ncx, ncy := float64(nw)/2, float64(nh)/2

	// y grows downward, so a visual counterclockwise turn maps
	// (x, y) to (x·cos + y·sin, −x·sin + y·cos).
	s2d := f64.Aff3{
		cos, sin, ncx - cos*cx - sin*cy,
		-sin, cos, ncy + sin*cx - cos*cy,
	}
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Transform(dst, s2d, img, b, draw.Over, nil)
	return dst
}
