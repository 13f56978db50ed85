package qoi

import (
	"image"
	"image/png"
	"io"
)

// DecodePNG decodes a PNG image from r using the standard library's
// image/png decoder, the out-of-core collaborator named for PNG
// input/output.
func DecodePNG(r io.Reader) (image.Image, error) {
	return png.Decode(r)
}

// EncodePNG writes m to w as a PNG image using the standard library's
// image/png encoder.
func EncodePNG(w io.Writer, m image.Image) error {
	return png.Encode(w, m)
}
