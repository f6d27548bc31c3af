package confocal

import (
	"errors"
	"testing"
)

func TestMergeChannelsPseudoColor(t *testing.T) {
	ch1 := uniformRaster(4, 3, 120)
	ch2 := uniformRaster(4, 3, 45)

	out, err := MergeChannels(ch1, ch2)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if out.Width != 4 || out.Height != 3 {
		t.Fatalf("output %dx%d, want 4x3", out.Width, out.Height)
	}
	for i := 0; i < len(out.Pix); i += 4 {
		got := [4]uint8{out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]}
		if got != [4]uint8{45, 120, 0, 255} {
			t.Fatalf("pixel %d: got %v, want channel 2 in red, channel 1 in green", i/4, got)
		}
	}
}

func TestMergeChannelsColoredPixelAdds(t *testing.T) {
	ch1 := uniformRaster(3, 1, 10)
	ch2 := uniformRaster(3, 1, 240)

	// One channel-1 pixel is not gray and must take the additive branch.
	i := ch1.PixOffset(1, 0)
	ch1.Pix[i], ch1.Pix[i+1], ch1.Pix[i+2] = 30, 20, 10

	out, err := MergeChannels(ch1, ch2)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	// Gray neighbors keep the pseudo-color mapping.
	if j := out.PixOffset(0, 0); out.Pix[j] != 240 || out.Pix[j+1] != 10 || out.Pix[j+2] != 0 {
		t.Fatalf("gray pixel mapped to %v", out.Pix[j:j+4])
	}
	// The colored pixel adds componentwise: 30+240 and 20+240 clamp at 255,
	// 10+240 does not.
	if out.Pix[i] != 255 || out.Pix[i+1] != 255 || out.Pix[i+2] != 250 {
		t.Fatalf("colored pixel blended to %v, want (255,255,250)", out.Pix[i:i+4])
	}
	if out.Pix[i+3] != 255 {
		t.Fatalf("alpha %d, want opaque", out.Pix[i+3])
	}
}

func TestMergeChannelsDimensionMismatch(t *testing.T) {
	_, err := MergeChannels(uniformRaster(4, 4, 0), uniformRaster(4, 5, 0))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
}
