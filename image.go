package proctex

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/proctex/internal/synth"
)

// Format is the packed layout of Image pixels.
type Format = synth.Format

// Pixel layouts.
const (
	// FormatRGB packs pixels as 0xRRGGBB.
	FormatRGB = synth.FormatRGB
	// FormatARGB packs pixels as 0xAARRGGBB.
	FormatARGB = synth.FormatARGB
)

// Image is a rendered texture.
type Image struct {
	Width  int
	Height int
	Format Format
	// Pix holds Width*Height packed pixels in row-major order.
	Pix []uint32
	// Transparent is set when any pixel is black (RGB) or has alpha
	// below 255 (ARGB).
	Transparent bool
}

func newImage(res *synth.Result, f Format) *Image {
	return &Image{
		Width:       res.Width,
		Height:      res.Height,
		Format:      f,
		Pix:         res.Pix,
		Transparent: res.Transparent,
	}
}

// NRGBAAt returns the colour of a single pixel. Pixels outside the image
// are transparent.
func (img *Image) NRGBAAt(x, y int) color.NRGBA {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return color.NRGBA{}
	}
	p := img.Pix[y*img.Width+x]
	a := uint8(0xFF)
	if img.Format == FormatARGB {
		a = uint8(p >> 24)
	}
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: a}
}

// ToNRGBA converts the image to an image.NRGBA.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := range img.Height {
		for x := range img.Width {
			out.SetNRGBA(x, y, img.NRGBAAt(x, y))
		}
	}
	return out
}

// Pixels returns the colour channels packed as 0xRRGGBB, the form sprite
// and texture sources supply.
func (img *Image) Pixels() Pixels {
	pix := make([]int32, len(img.Pix))
	for i, p := range img.Pix {
		pix[i] = int32(p & 0xFFFFFF)
	}
	return Pixels{Width: img.Width, Height: img.Height, Pix: pix}
}

// SavePNG saves the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.ToNRGBA()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	return img.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}
