package confocal

import (
	"image"
	"image/draw"
)

// Raster is a dense row-major RGBA8 pixel buffer. Pix holds 4 bytes per pixel
// (R, G, B, A) and len(Pix) == Width*Height*4.
//
// Pipeline stages treat rasters as immutable: every stage allocates and
// returns a fresh Raster instead of mutating its input, so rows can be
// processed concurrently without sharing.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewRaster allocates a zeroed (transparent black) raster. Width and height
// must be positive.
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// RasterFromImage copies img into a new raster, converting to RGBA8.
func RasterFromImage(img image.Image) *Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := NewRaster(w, h)
	dst := r.RGBA()
	if src, ok := img.(*image.RGBA); ok && src.Stride == w*4 && b.Min == (image.Point{}) {
		copy(dst.Pix, src.Pix)
		return r
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return r
}

// Bounds returns the raster extent as a rectangle anchored at the origin.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * 4
}

// RGBA returns an image view sharing the raster's pixel memory. The view is
// for reading and for drawing into rasters the caller still owns; published
// pipeline outputs must not be mutated through it.
func (r *Raster) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    r.Pix,
		Stride: r.Width * 4,
		Rect:   r.Bounds(),
	}
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	out := &Raster{
		Width:  r.Width,
		Height: r.Height,
		Pix:    make([]uint8, len(r.Pix)),
	}
	copy(out.Pix, r.Pix)
	return out
}
