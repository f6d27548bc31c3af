package confocal

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/N2304862K/Confocal-Pro/internal/labelfont"
)

// ComposeFigure lays out the channel-1, channel-2, and merged panels side by
// side on a white background, Padding pixels apart. Each panel must measure
// TargetWidth x TargetHeight; the figure is (TargetWidth*3 + Padding*2) x
// TargetHeight. With ShowLabels set, the row label is drawn bold in white
// with a soft dark shadow near the figure's bottom-left corner, and on the
// first row each of the three column labels is drawn at its panel's top-left.
func ComposeFigure(ch1, ch2, merged *Raster, cfg ProcessingConfig, rowLabel string, isFirstRow bool) (*Raster, error) {
	if cfg.TargetWidth <= 0 || cfg.TargetHeight <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d", ErrDegenerateGeometry, cfg.TargetWidth, cfg.TargetHeight)
	}
	if cfg.Padding < 0 {
		return nil, fmt.Errorf("%w: negative padding %d", ErrDegenerateGeometry, cfg.Padding)
	}
	for i, p := range []*Raster{ch1, ch2, merged} {
		if p.Width != cfg.TargetWidth || p.Height != cfg.TargetHeight {
			return nil, fmt.Errorf("%w: panel %d is %dx%d, want %dx%d",
				ErrDimensionMismatch, i+1, p.Width, p.Height, cfg.TargetWidth, cfg.TargetHeight)
		}
	}

	out := NewRaster(cfg.TargetWidth*3+cfg.Padding*2, cfg.TargetHeight)
	for i := range out.Pix {
		out.Pix[i] = 0xFF // opaque white
	}

	step := cfg.TargetWidth + cfg.Padding
	blit(out, ch1, 0)
	blit(out, ch2, step)
	blit(out, merged, 2*step)

	if !cfg.ShowLabels {
		return out, nil
	}
	if rowLabel != "" {
		face, err := labelfont.Face(cfg.FontFamily, float64(cfg.RowLabelFontSize))
		if err != nil {
			return nil, fmt.Errorf("row label: %w", err)
		}
		drawLabel(out, rowLabel, labelInset, out.Height-labelInset, face)
	}
	if isFirstRow && len(cfg.ColumnLabels) == 3 {
		face, err := labelfont.Face(cfg.FontFamily, float64(cfg.ColumnLabelFontSize))
		if err != nil {
			return nil, fmt.Errorf("column labels: %w", err)
		}
		ascent := face.Metrics().Ascent.Ceil()
		for i, label := range cfg.ColumnLabels {
			drawLabel(out, label, i*step+labelInset, labelInset+ascent, face)
		}
	}
	return out, nil
}

// blit copies src into dst at (xOff, 0). Bounds are the caller's problem.
func blit(dst, src *Raster, xOff int) {
	rowBytes := src.Width * 4
	for y := 0; y < src.Height; y++ {
		dstOff := dst.PixOffset(xOff, y)
		copy(dst.Pix[dstOff:dstOff+rowBytes], src.Pix[y*rowBytes:(y+1)*rowBytes])
	}
}

// drawLabel renders text in white over an offset translucent black shadow so
// it stays legible on both bright and dark panels.
func drawLabel(dst *Raster, text string, x, baseline int, face font.Face) {
	d := font.Drawer{
		Dst:  dst.RGBA(),
		Src:  image.NewUniform(color.NRGBA{A: 160}),
		Face: face,
		Dot:  fixed.P(x+labelShadowOffset, baseline+labelShadowOffset),
	}
	d.DrawString(text)
	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(x, baseline)
	d.DrawString(text)
}
