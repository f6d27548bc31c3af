package confocal

import "fmt"

// MergeChannels combines two normalized same-size rasters into a pseudo-color
// composite with channel 1 in green and channel 2 in red. A channel-1 pixel
// with R==G==B (the usual case for a normalized single-channel crop) selects
// the mapping branch; a pre-colored channel-1 pixel falls back to an additive
// blend of both inputs, clamped per component. Output alpha is opaque.
func MergeChannels(ch1, ch2 *Raster) (*Raster, error) {
	if ch1.Width != ch2.Width || ch1.Height != ch2.Height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, ch1.Width, ch1.Height, ch2.Width, ch2.Height)
	}
	out := NewRaster(ch1.Width, ch1.Height)
	for i := 0; i < len(out.Pix); i += 4 {
		r1, g1, b1 := ch1.Pix[i], ch1.Pix[i+1], ch1.Pix[i+2]
		if r1 == g1 && g1 == b1 {
			out.Pix[i] = ch2.Pix[i]
			out.Pix[i+1] = r1
			out.Pix[i+2] = 0
		} else {
			out.Pix[i] = addClamp(r1, ch2.Pix[i])
			out.Pix[i+1] = addClamp(g1, ch2.Pix[i+1])
			out.Pix[i+2] = addClamp(b1, ch2.Pix[i+2])
		}
		out.Pix[i+3] = 0xFF
	}
	return out, nil
}

func addClamp(a, b uint8) uint8 {
	if s := int(a) + int(b); s < 255 {
		return uint8(s)
	}
	return 255
}
