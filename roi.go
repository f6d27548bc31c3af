package confocal

import (
	"fmt"
	"image"
)

// LocateROI returns the window with the aspect ratio TargetWidth:TargetHeight
// that maximizes the combined luminance of both channels. The window is the
// largest such rectangle fitting the image with its bottom edge no lower than
// height-ClipBottom. Top-left corners are sampled on a SearchStride grid, so
// the result is the best sampled position rather than the global optimum;
// ties keep the first corner in row-major scan order.
func LocateROI(ch1, ch2 *Raster, cfg ProcessingConfig) (image.Rectangle, error) {
	if ch1.Width != ch2.Width || ch1.Height != ch2.Height {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, ch1.Width, ch1.Height, ch2.Width, ch2.Height)
	}
	if err := cfg.validate(ch1.Height); err != nil {
		return image.Rectangle{}, err
	}

	width := ch1.Width
	h := max(1, ch1.Height-cfg.ClipBottom)

	// Largest crop of the required ratio inside width x h: width-constrained
	// first, height-constrained fallback.
	ratio := float64(cfg.TargetWidth) / float64(cfg.TargetHeight)
	cropW := width
	cropH := int(float64(width) / ratio)
	if cropH > h {
		cropH = h
		cropW = int(float64(h) * ratio)
	}
	if cropW <= 0 || cropH <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: crop %dx%d", ErrDegenerateGeometry, cropW, cropH)
	}

	// Tables cover the full raster; ClipBottom only bounds window placement.
	idx1 := NewIntegralImage(ch1)
	idx2 := NewIntegralImage(ch2)

	stride := cfg.stride()
	bestX, bestY := 0, 0
	bestSum := -1.0
	for y := 0; y+cropH <= h; y += stride {
		for x := 0; x+cropW <= width; x += stride {
			total := idx1.RectSum(x, y, cropW, cropH) + idx2.RectSum(x, y, cropW, cropH)
			if total > bestSum {
				bestSum, bestX, bestY = total, x, y
			}
		}
	}
	return image.Rect(bestX, bestY, bestX+cropW, bestY+cropH), nil
}
