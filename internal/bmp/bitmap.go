// bmp package implements a reader and writer for 1-bit uncompressed bitmaps
package bmp

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/anas-shakeel/bmp2hex/internal/utils"
)

// Bitmap is a decoded monochrome image. Rows are stored top-down, each
// RowStride bytes long without padding; bit 7 of a byte is its leftmost pixel.
type Bitmap struct {
	Filename  string
	Width     int
	Height    int
	RowStride int
	Pix       []byte
}

// Palette used by Image and Encode: bit 0 is black, bit 1 is white.
var Palette = color.Palette{color.Black, color.White}

// Creates and returns a blank bitmap (all pixels 0)
func New(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyBitmap
	}

	stride := utils.Stride(width)
	return &Bitmap{
		Width:     width,
		Height:    height,
		RowStride: stride,
		Pix:       make([]byte, stride*height),
	}, nil
}

// Returns row y of the bitmap (shares memory with Pix)
func (b *Bitmap) Row(y int) []byte {
	return b.Pix[y*b.RowStride : (y+1)*b.RowStride]
}

// Reports whether the pixel at (x, y) is set
func (b *Bitmap) At(x, y int) bool {
	return utils.Bit(b.Row(y), x)
}

func (b *Bitmap) Set(x, y int, on bool) {
	utils.SetBit(b.Row(y), x, on)
}

// Returns a Copy of the bitmap
func (b *Bitmap) Clone() *Bitmap {
	newBitmap := *b
	newBitmap.Pix = make([]byte, len(b.Pix))
	copy(newBitmap.Pix, b.Pix)
	return &newBitmap
}

// Returns the bitmap as a two-color paletted image
func (b *Bitmap) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, b.Width, b.Height), Palette)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

// Prints the bitmap as rows of 'X' (set) and '.' (clear), most significant
// bit first. Only the used bits of the last byte of a row are printed.
func (b *Bitmap) PrintPreview(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for row := 0; row < b.Height; row++ {
		fmt.Fprintf(bw, "%3d ", row)
		for col, v := range b.Row(row) {
			bits := 8
			if col == b.RowStride-1 && b.Width%8 != 0 {
				bits = b.Width % 8
			}
			for i := 0; i < bits; i++ {
				if v&(0x80>>i) != 0 {
					bw.WriteByte('X')
				} else {
					bw.WriteByte('.')
				}
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Print the Metadata of the bitmap (in human-readable format)
func (b *Bitmap) PrintMetadata(w io.Writer) {
	fmt.Fprintf(w, "Filename: \t%v\n", b.Filename)
	fmt.Fprintf(w, "Width: \t\t%v px\n", b.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", b.Height)
	fmt.Fprintf(w, "RowStride: \t%v bytes\n", b.RowStride)
	fmt.Fprintf(w, "Padding: \t%v bytes\n", utils.AlignStride(b.RowStride)-b.RowStride)
	fmt.Fprintf(w, "DataSize: \t%v bytes\n", len(b.Pix))
}
