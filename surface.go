package sparkle

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface is a Surface backed by an offscreen ebiten image sized to the
// viewport. The image is allocated on the first Resize.
type ImageSurface struct {
	img  *ebiten.Image
	w, h int
}

// NewImageSurface returns an empty surface. Call Resize before drawing.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// Resize reallocates the backing image when the size changes. Contents are
// discarded.
func (s *ImageSurface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if s.img != nil && s.w == w && s.h == h {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
	s.w, s.h = w, h
}

// Clear erases the surface.
func (s *ImageSurface) Clear() {
	if s.img == nil {
		return
	}
	s.img.Clear()
}

// FillCircle paints an antialiased filled circle.
func (s *ImageSurface) FillCircle(x, y, radius float64, c Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c.toRGBA(), true)
}

// Image returns the backing image, or nil before the first Resize.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}
