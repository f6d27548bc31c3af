package confocal

import (
	"bytes"
	"fmt"
	"image"

	_ "golang.org/x/image/tiff" // Register TIFF decoder.
)

// DecodeTIFF decodes the first page of a TIFF image into a raster. Formats
// registered with the image package by the importing program are accepted as
// well. Malformed data and empty images report ErrDecode.
func DecodeTIFF(data []byte) (*Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", ErrDecode, b.Dx(), b.Dy())
	}
	return RasterFromImage(img), nil
}
