package confocal

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// StackRows concatenates row figures vertically on a white background with a
// fixed gap between consecutive rows. Rows keep their own widths and are
// left-aligned; the montage is as wide as the widest row.
func StackRows(rows []*Raster, gap int) (*Raster, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows to stack")
	}
	if gap < 0 {
		return nil, fmt.Errorf("%w: negative gap %d", ErrDegenerateGeometry, gap)
	}
	width, height := 0, 0
	for i, r := range rows {
		if r == nil {
			return nil, fmt.Errorf("row %d is nil", i)
		}
		if r.Width > width {
			width = r.Width
		}
		if i > 0 {
			height += gap
		}
		height += r.Height
	}

	canvas := imaging.New(width, height, color.White)
	y := 0
	for _, r := range rows {
		canvas = imaging.Paste(canvas, r.RGBA(), image.Pt(0, y))
		y += r.Height + gap
	}
	return RasterFromImage(canvas), nil
}
