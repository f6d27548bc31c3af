package confocal

import "fmt"

// ProcessingConfig holds the per-row processing parameters. It is supplied by
// the caller on every invocation and never mutated by the pipeline. JSON tags
// let a montage manifest carry a config.
type ProcessingConfig struct {
	TargetWidth  int `json:"targetWidth"`  // output panel width in pixels
	TargetHeight int `json:"targetHeight"` // output panel height in pixels
	// TargetIntensity is the post-normalization peak channel value (0-255).
	TargetIntensity int `json:"targetIntensity"`
	// Randomness bounds the brightness jitter fraction (0.0-1.0). Each channel
	// is scaled by TargetIntensity*(1+shift)/max with one uniform shift drawn
	// from [-Randomness/2, +Randomness/2] per invocation.
	Randomness float64 `json:"randomness"`
	// ClipBottom excludes this many pixels from the bottom of the source when
	// placing the search window (embedded scale bars, time stamps).
	ClipBottom int `json:"clipBottom"`
	// Padding is the horizontal gap between panels in pixels.
	Padding int `json:"padding"`
	// ColumnLabels name the three panels; drawn on the first row only and only
	// when exactly three are present.
	ColumnLabels        []string `json:"columnLabels"`
	RowLabelFontSize    int      `json:"rowLabelFontSize"`
	ColumnLabelFontSize int      `json:"columnLabelFontSize"`
	// FontFamily selects an embedded label face ("go", "go mono").
	FontFamily string `json:"fontFamily"`
	ShowLabels bool   `json:"showLabels"`
	// SearchStride is the ROI scan step in pixels for both axes; zero means
	// the default. Larger strides search faster but may miss the optimum.
	SearchStride int `json:"searchStride"`
	// Interpolation selects the panel resampling filter.
	Interpolation Interpolation `json:"interpolation"`
}

// DefaultConfig returns the processing parameters used when a manifest or
// caller leaves them unset.
func DefaultConfig() ProcessingConfig {
	return ProcessingConfig{
		TargetWidth:         defaultTargetWidth,
		TargetHeight:        defaultTargetHeight,
		TargetIntensity:     defaultTargetIntensity,
		Randomness:          defaultRandomness,
		Padding:             defaultPadding,
		ColumnLabels:        []string{"GFP", "RFP", "Merge"},
		RowLabelFontSize:    defaultRowLabelSize,
		ColumnLabelFontSize: defaultColumnLabelSize,
		FontFamily:          defaultFontFamily,
		ShowLabels:          true,
		SearchStride:        defaultSearchStride,
		Interpolation:       InterpolationBilinear,
	}
}

// validate reports degenerate geometry against a source of the given height.
// It runs before any table or buffer allocation.
func (c ProcessingConfig) validate(height int) error {
	if c.TargetWidth <= 0 || c.TargetHeight <= 0 {
		return fmt.Errorf("%w: target size %dx%d", ErrDegenerateGeometry, c.TargetWidth, c.TargetHeight)
	}
	if c.ClipBottom < 0 {
		return fmt.Errorf("%w: negative clip bottom %d", ErrDegenerateGeometry, c.ClipBottom)
	}
	if c.ClipBottom >= height {
		return fmt.Errorf("%w: clip bottom %d excludes all %d source rows", ErrDegenerateGeometry, c.ClipBottom, height)
	}
	return nil
}

func (c ProcessingConfig) stride() int {
	if c.SearchStride > 0 {
		return c.SearchStride
	}
	return defaultSearchStride
}
