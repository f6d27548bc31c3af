package confocal

import "errors"

// Error kinds reported by the pipeline. Wrapped errors carry context and are
// matched with errors.Is.
var (
	// ErrDecode reports image data that could not be decoded into a raster.
	ErrDecode = errors.New("undecodable image data")
	// ErrDimensionMismatch reports paired channel rasters of different sizes.
	ErrDimensionMismatch = errors.New("channel dimensions differ")
	// ErrDegenerateGeometry reports a crop or target geometry with no area.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
