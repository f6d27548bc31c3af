package confocal

import (
	"fmt"
	"strings"

	"github.com/nfnt/resize"
)

// Interpolation selects the resampling filter for panel scaling. Every filter
// is deterministic: identical inputs resample to identical outputs.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is linear sampling.
	InterpolationBilinear
	// InterpolationBicubic is cubic sampling.
	InterpolationBicubic
	// InterpolationMitchellNetravali is Mitchell-Netravali sampling.
	InterpolationMitchellNetravali
	// InterpolationLanczos2 is Lanczos sampling with a=2.
	InterpolationLanczos2
	// InterpolationLanczos3 is Lanczos sampling with a=3.
	InterpolationLanczos3
)

func (ip Interpolation) filter() resize.InterpolationFunction {
	switch ip {
	case InterpolationNearest:
		return resize.NearestNeighbor
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.Bilinear
	}
}

func (ip Interpolation) String() string {
	switch ip {
	case InterpolationNearest:
		return "nearest"
	case InterpolationBilinear:
		return "bilinear"
	case InterpolationBicubic:
		return "bicubic"
	case InterpolationMitchellNetravali:
		return "mitchell"
	case InterpolationLanczos2:
		return "lanczos2"
	case InterpolationLanczos3:
		return "lanczos3"
	default:
		return fmt.Sprintf("interpolation(%d)", int(ip))
	}
}

// ParseInterpolation resolves a filter name as printed by String.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return InterpolationNearest, nil
	case "bilinear", "":
		return InterpolationBilinear, nil
	case "bicubic":
		return InterpolationBicubic, nil
	case "mitchell", "mitchellnetravali":
		return InterpolationMitchellNetravali, nil
	case "lanczos2":
		return InterpolationLanczos2, nil
	case "lanczos3":
		return InterpolationLanczos3, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q", s)
	}
}

// MarshalJSON encodes the filter by name.
func (ip Interpolation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ip.String() + `"`), nil
}

// UnmarshalJSON decodes a filter name.
func (ip *Interpolation) UnmarshalJSON(data []byte) error {
	v, err := ParseInterpolation(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*ip = v
	return nil
}
