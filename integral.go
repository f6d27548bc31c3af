package confocal

// IntegralImage is a summed-area table of per-pixel luminance
// (0.299R + 0.587G + 0.114B, alpha ignored). After a single O(width*height)
// build it answers arbitrary rectangle-sum queries in constant time, which
// the ROI search depends on: it probes many candidate windows per image.
type IntegralImage struct {
	width  int
	height int
	sums   []float64 // sums[y*width+x] = luminance total over [0,x] x [0,y]
}

// NewIntegralImage builds the table in one row-major pass over r: each cell
// combines the running row sum with the cell directly above.
func NewIntegralImage(r *Raster) *IntegralImage {
	t := &IntegralImage{
		width:  r.Width,
		height: r.Height,
		sums:   make([]float64, r.Width*r.Height),
	}
	for y := 0; y < r.Height; y++ {
		rowSum := 0.0
		for x := 0; x < r.Width; x++ {
			i := r.PixOffset(x, y)
			rowSum += luminance(r.Pix[i], r.Pix[i+1], r.Pix[i+2])
			cell := y*t.width + x
			t.sums[cell] = rowSum
			if y > 0 {
				t.sums[cell] += t.sums[cell-t.width]
			}
		}
	}
	return t
}

// RectSum returns the luminance sum over the rectangle [x, x+w) x [y, y+h),
// which must lie within the source bounds. Corners outside the table (index
// -1) contribute zero.
func (t *IntegralImage) RectSum(x, y, w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	x2, y2 := x+w-1, y+h-1
	sum := t.sums[y2*t.width+x2]
	if y > 0 {
		sum -= t.sums[(y-1)*t.width+x2]
	}
	if x > 0 {
		sum -= t.sums[y2*t.width+x-1]
	}
	if x > 0 && y > 0 {
		sum += t.sums[(y-1)*t.width+x-1]
	}
	return sum
}
