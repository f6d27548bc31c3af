package confocal

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/nfnt/resize"
)

// NormalizeChannel crops src to roi, resamples the crop to
// TargetWidth x TargetHeight with the configured filter, and rescales
// intensity so the brightest channel value lands near TargetIntensity. One
// uniform shift is drawn from [-Randomness/2, +Randomness/2] per call; every
// pixel shares the resulting scale factor, preserving relative intensity
// within the crop while randomizing absolute brightness run to run. Alpha is
// not rescaled. A nil rng falls back to a time-seeded source; pass a seeded
// one for reproducible output.
func NormalizeChannel(src *Raster, roi image.Rectangle, cfg ProcessingConfig, rng *rand.Rand) (*Raster, error) {
	if cfg.TargetWidth <= 0 || cfg.TargetHeight <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d", ErrDegenerateGeometry, cfg.TargetWidth, cfg.TargetHeight)
	}
	roi = roi.Canon()
	if roi.Dx() <= 0 || roi.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty roi %v", ErrDegenerateGeometry, roi)
	}
	if !roi.In(src.Bounds()) {
		return nil, fmt.Errorf("%w: roi %v outside source %dx%d", ErrDegenerateGeometry, roi, src.Width, src.Height)
	}

	crop := cropRaster(src, roi)
	scaled := resize.Resize(uint(cfg.TargetWidth), uint(cfg.TargetHeight), crop.RGBA(), cfg.Interpolation.filter())
	out := RasterFromImage(scaled)

	// Peak channel value, floored at 1 so an all-black crop divides cleanly.
	maxVal := 1
	for i := 0; i < len(out.Pix); i += 4 {
		if v := int(out.Pix[i]); v > maxVal {
			maxVal = v
		}
		if v := int(out.Pix[i+1]); v > maxVal {
			maxVal = v
		}
		if v := int(out.Pix[i+2]); v > maxVal {
			maxVal = v
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shift := (rng.Float64() - 0.5) * cfg.Randomness
	scale := float64(cfg.TargetIntensity) * (1 + shift) / float64(maxVal)

	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = clampToByte(float64(out.Pix[i]) * scale)
		out.Pix[i+1] = clampToByte(float64(out.Pix[i+1]) * scale)
		out.Pix[i+2] = clampToByte(float64(out.Pix[i+2]) * scale)
	}
	return out, nil
}

func cropRaster(src *Raster, roi image.Rectangle) *Raster {
	out := NewRaster(roi.Dx(), roi.Dy())
	rowBytes := roi.Dx() * 4
	for y := 0; y < roi.Dy(); y++ {
		srcOff := src.PixOffset(roi.Min.X, roi.Min.Y+y)
		copy(out.Pix[y*rowBytes:(y+1)*rowBytes], src.Pix[srcOff:srcOff+rowBytes])
	}
	return out
}
