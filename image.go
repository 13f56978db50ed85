package qoi

import (
	"image"
	"image/color"
	"image/draw"
	"io"
)

// Image is a QOI-flavored image.Image backed by a tightly packed pixel
// buffer in the descriptor's channel layout.
type Image struct {
	Pix        []byte
	Width      int
	Height     int
	Channels   uint8
	Colorspace Colorspace
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	off := (y*img.Width + x) * int(img.Channels)
	if img.Channels == 4 {
		return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: img.Pix[off+3]}
	}
	return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: 255}
}

// toNRGBA converts an arbitrary image.Image to *image.NRGBA so its Pix
// slice holds straight (non-premultiplied) channel values, the layout
// QOI needs. Passing it through RGBA() instead would hand back
// alpha-premultiplied samples and corrupt translucent pixels.
func toNRGBA(m image.Image) *image.NRGBA {
	if n, ok := m.(*image.NRGBA); ok {
		return n
	}
	dst := image.NewNRGBA(m.Bounds())
	draw.Draw(dst, dst.Bounds(), m, m.Bounds().Min, draw.Src)
	return dst
}

// imageToPixelBuffer converts an arbitrary image.Image into a tightly
// packed pixel buffer plus descriptor, choosing 3 channels when the image
// is fully opaque and 4 otherwise.
func imageToPixelBuffer(m image.Image) ([]byte, Descriptor) {
	rect := m.Bounds()
	width, height := rect.Dx(), rect.Dy()
	nrgba := toNRGBA(m)

	channels := uint8(4)
	if isOpaqueImage(m) {
		channels = 3
	}

	pix := make([]byte, width*height*int(channels))
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := nrgba.PixOffset(rect.Min.X+x, rect.Min.Y+y)
			pix[i] = nrgba.Pix[off]
			pix[i+1] = nrgba.Pix[off+1]
			pix[i+2] = nrgba.Pix[off+2]
			if channels == 4 {
				pix[i+3] = nrgba.Pix[off+3]
			}
			i += int(channels)
		}
	}

	return pix, Descriptor{Width: uint32(width), Height: uint32(height), Channels: channels, Colorspace: SRGB}
}

// Encode writes m to w as a complete QOI byte stream.
func Encode(w io.Writer, m image.Image) error {
	pix, d := imageToPixelBuffer(m)
	data, err := EncodeBuffer(pix, d)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a complete QOI byte stream from r and returns it as an
// image.Image using the stream's own channel count.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	pix, d, err := DecodeBuffer(data, 0)
	if err != nil {
		return nil, err
	}
	return &Image{Pix: pix, Width: int(d.Width), Height: int(d.Height), Channels: d.Channels, Colorspace: d.Colorspace}, nil
}

// DecodeConfig reads just enough of r to report the image's dimensions
// and color model, without decoding pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, err
	}
	m, cursor := readBE32(buf, 0)
	if m != magic {
		return image.Config{}, ErrInvalidArgument
	}
	width, cursor := readBE32(buf, cursor)
	height, _ := readBE32(buf, cursor)
	return image.Config{Width: int(width), Height: int(height), ColorModel: color.NRGBAModel}, nil
}

func init() {
	image.RegisterFormat("qoi", "qoif", Decode, DecodeConfig)
}
