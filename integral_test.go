package confocal

import (
	"math"
	"math/rand"
	"testing"
)

func randomRaster(rng *rand.Rand, w, h int) *Raster {
	r := NewRaster(w, h)
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i] = uint8(rng.Intn(256))
		r.Pix[i+1] = uint8(rng.Intn(256))
		r.Pix[i+2] = uint8(rng.Intn(256))
		r.Pix[i+3] = 0xFF
	}
	return r
}

func bruteRectSum(r *Raster, x, y, w, h int) float64 {
	sum := 0.0
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			i := r.PixOffset(xx, yy)
			sum += luminance(r.Pix[i], r.Pix[i+1], r.Pix[i+2])
		}
	}
	return sum
}

func TestIntegralImageMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		w := 1 + rng.Intn(60)
		h := 1 + rng.Intn(60)
		r := randomRaster(rng, w, h)
		idx := NewIntegralImage(r)

		for probe := 0; probe < 50; probe++ {
			x := rng.Intn(w)
			y := rng.Intn(h)
			rw := 1 + rng.Intn(w-x)
			rh := 1 + rng.Intn(h-y)

			got := idx.RectSum(x, y, rw, rh)
			want := bruteRectSum(r, x, y, rw, rh)
			if math.Abs(got-want) > 1e-6 {
				t.Fatalf("rect (%d,%d %dx%d) in %dx%d: got %v want %v", x, y, rw, rh, w, h, got, want)
			}
		}
	}
}

func TestIntegralImageRectSumEdges(t *testing.T) {
	r := uniformRaster(8, 5, 10)
	idx := NewIntegralImage(r)

	lum := luminance(10, 10, 10)
	cases := []struct {
		name       string
		x, y, w, h int
		want       float64
	}{
		{name: "full image", x: 0, y: 0, w: 8, h: 5, want: 40 * lum},
		{name: "origin pixel", x: 0, y: 0, w: 1, h: 1, want: lum},
		{name: "far corner pixel", x: 7, y: 4, w: 1, h: 1, want: lum},
		{name: "zero width", x: 3, y: 2, w: 0, h: 2, want: 0},
		{name: "zero height", x: 3, y: 2, w: 2, h: 0, want: 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := idx.RectSum(tc.x, tc.y, tc.w, tc.h); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func BenchmarkNewIntegralImage(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	r := randomRaster(rng, 512, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewIntegralImage(r)
	}
}
