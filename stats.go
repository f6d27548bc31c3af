package confocal

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// ChannelStats summarizes the luminance distribution of a raster. The numbers
// guide parameter choice for a slide set: a Max near 255 suggests lowering
// TargetIntensity, a bright bottom band suggests raising ClipBottom.
type ChannelStats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// IntensityStats computes luminance statistics over every pixel of r.
func IntensityStats(r *Raster) (ChannelStats, error) {
	if r == nil || r.Width <= 0 || r.Height <= 0 {
		return ChannelStats{}, errors.New("empty raster")
	}
	lum := make([]float64, 0, r.Width*r.Height)
	for i := 0; i < len(r.Pix); i += 4 {
		lum = append(lum, luminance(r.Pix[i], r.Pix[i+1], r.Pix[i+2]))
	}

	var (
		s   ChannelStats
		err error
	)
	if s.Min, err = stats.Min(lum); err != nil {
		return ChannelStats{}, err
	}
	if s.Max, err = stats.Max(lum); err != nil {
		return ChannelStats{}, err
	}
	if s.Mean, err = stats.Mean(lum); err != nil {
		return ChannelStats{}, err
	}
	if s.Median, err = stats.Median(lum); err != nil {
		return ChannelStats{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(lum); err != nil {
		return ChannelStats{}, err
	}
	return s, nil
}
