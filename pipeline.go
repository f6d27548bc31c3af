package confocal

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"time"
)

// ComposeOptions carries per-call knobs for ComposeRow.
type ComposeOptions struct {
	// Rand supplies the brightness jitter draws, one per channel. Nil means a
	// time-seeded source; inject a seeded one for reproducible rows.
	Rand *rand.Rand
	// OnROI, if set, receives the located window before normalization.
	OnROI func(roi image.Rectangle)
}

// ComposeRow runs the full pipeline for one montage row: locate the brightest
// shared window of both channels, crop and normalize each channel to it,
// merge them into the pseudo-color composite, and lay out the three panels
// with labels. Inputs are not mutated. The two channels must share identical
// dimensions; geometry is validated before any processing.
func ComposeRow(ch1, ch2 *Raster, cfg ProcessingConfig, rowLabel string, isFirstRow bool, opts ...func(o *ComposeOptions)) (*Raster, error) {
	if ch1 == nil || ch2 == nil {
		return nil, errors.New("two channel rasters required")
	}
	if ch1.Width != ch2.Width || ch1.Height != ch2.Height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, ch1.Width, ch1.Height, ch2.Width, ch2.Height)
	}

	opt := ComposeOptions{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if opt.Rand == nil {
		opt.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	roi, err := LocateROI(ch1, ch2, cfg)
	if err != nil {
		return nil, fmt.Errorf("locate roi: %w", err)
	}
	if opt.OnROI != nil {
		opt.OnROI(roi)
	}

	n1, err := NormalizeChannel(ch1, roi, cfg, opt.Rand)
	if err != nil {
		return nil, fmt.Errorf("normalize channel 1: %w", err)
	}
	n2, err := NormalizeChannel(ch2, roi, cfg, opt.Rand)
	if err != nil {
		return nil, fmt.Errorf("normalize channel 2: %w", err)
	}

	merged, err := MergeChannels(n1, n2)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	fig, err := ComposeFigure(n1, n2, merged, cfg, rowLabel, isFirstRow)
	if err != nil {
		return nil, fmt.Errorf("compose figure: %w", err)
	}
	return fig, nil
}
