package bmp

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/anas-shakeel/bmp2hex/internal/utils"
)

// Writes the bitmap as a bottom-up 1-bit BMP with a black/white palette
func (b *Bitmap) Encode(w io.Writer) error {
	if b.Width <= 0 || b.Height <= 0 {
		return ErrEmptyBitmap
	}

	aligned := utils.AlignStride(b.RowStride)
	sizeImage := uint32(aligned * b.Height)
	offBits := uint32(headerLen + paletteLen)

	bfHeader := BitmapFileHeader{Type: [2]byte{0x42, 0x4d}, OffBits: offBits, Size: offBits + sizeImage}
	biHeader := BitmapInfoHeader{
		Size:       infoHeaderLen,
		Width:      int32(b.Width),
		Height:     int32(b.Height),
		Planes:     1,
		BitCount:   1,
		SizeImage:  sizeImage,
		ColorsUsed: 2,
	}

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, &bfHeader); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, &biHeader); err != nil {
		return err
	}

	// Palette entries are stored as B, G, R, reserved
	for _, c := range Palette {
		r, g, bl, _ := c.RGBA()
		if _, err := bw.Write([]byte{byte(bl >> 8), byte(g >> 8), byte(r >> 8), 0}); err != nil {
			return err
		}
	}

	// Write the rows (BottomUp: last row first)
	paddingBytes := make([]byte, aligned-b.RowStride)
	for row := 0; row < b.Height; row++ {
		if _, err := bw.Write(b.Row(b.Height - row - 1)); err != nil {
			return err
		}
		if _, err := bw.Write(paddingBytes); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Saves the bitmap onto local disk
func (b *Bitmap) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return &FileOpenError{Path: filename, Err: err}
	}

	if err := b.Encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
