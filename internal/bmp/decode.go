package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anas-shakeel/bmp2hex/internal/utils"
)

// Reads the 54-byte header from r and computes the geometry of the bitmap.
//
// When the bit depth is not 1 the computed Config is returned together with
// an *UnsupportedDepthError, so callers can still report what they found.
func DecodeConfig(r io.Reader) (Config, error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Config{}, ErrHeaderTooShort
		}
		return Config{}, err
	}

	// Read File Header and Info Header from the buffered header bytes
	var bfHeader BitmapFileHeader
	var biHeader BitmapInfoHeader
	hr := bytes.NewReader(header[:])
	if err := binary.Read(hr, binary.LittleEndian, &bfHeader); err != nil {
		return Config{}, err
	}
	if err := binary.Read(hr, binary.LittleEndian, &biHeader); err != nil {
		return Config{}, err
	}

	return configFromHeaders(&bfHeader, &biHeader)
}

func configFromHeaders(bfHeader *BitmapFileHeader, biHeader *BitmapInfoHeader) (Config, error) {
	if bfHeader.Type[0] != 0x42 || bfHeader.Type[1] != 0x4d {
		return Config{}, &SignatureError{Got: bfHeader.Type}
	}

	c := Config{
		Width:      abs(int(biHeader.Width)),
		Height:     abs(int(biHeader.Height)),
		TopDown:    biHeader.Height < 0, // Negative height: first row is the top row
		Depth:      int(biHeader.BitCount & 0xff), // Only byte 28 holds the depth
		DataOffset: int64(bfHeader.OffBits),
	}
	c.RowStride = rowStride(c.Width, c.Depth)
	c.AlignedStride = utils.AlignStride(c.RowStride)

	if c.Depth != 1 {
		return c, &UnsupportedDepthError{Depth: c.Depth, Width: c.Width, Height: c.Height}
	}
	return c, nil
}

// Bytes per row. The depth factor only shows up when width is a multiple
// of 8; for 1-bit images both branches equal ceil(width/8).
func rowStride(width, depth int) int {
	if width%8 != 0 {
		return width/8 + 1
	}
	return (width / 8) * depth
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Decodes a 1-bit uncompressed BMP from r into a top-down Bitmap.
// r must be positioned at the "BM" signature; pixel rows are located by
// absolute seeks relative to that position.
func Decode(r io.ReadSeeker) (*Bitmap, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	c, err := DecodeConfig(r)
	if err != nil {
		return nil, err
	}
	if c.Width == 0 || c.Height == 0 {
		return nil, ErrEmptyBitmap
	}

	// The header alone must not decide how much memory gets allocated
	if err := checkSize(r, start, c); err != nil {
		return nil, err
	}

	b := &Bitmap{
		Width:     c.Width,
		Height:    c.Height,
		RowStride: c.RowStride,
		Pix:       make([]byte, c.RowStride*c.Height),
	}

	// Scratch buffer for one padded row
	buf := make([]byte, c.AlignedStride)

	for i := 0; i < c.Height; i++ {
		_, err := r.Seek(start+c.DataOffset+int64(i)*int64(c.AlignedStride), io.SeekStart)
		if err != nil {
			return nil, err
		}

		// The padding of the last row may be missing, the row itself may not
		if _, err := io.ReadAtLeast(r, buf, c.RowStride); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w (row %d of %d)", ErrTruncatedPixelData, i, c.Height)
			}
			return nil, err
		}

		rowIndex := c.Height - i - 1
		if c.TopDown {
			rowIndex = i
		}
		copy(b.Row(rowIndex), buf[:c.RowStride])
	}

	return b, nil
}

// Returns ErrTruncatedPixelData when the stream ends before the last row.
func checkSize(r io.Seeker, start int64, c Config) error {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if _, err := r.Seek(start+headerLen, io.SeekStart); err != nil {
		return err
	}

	end := start + c.DataOffset + int64(c.Height-1)*int64(c.AlignedStride) + int64(c.RowStride)
	if end > size {
		return fmt.Errorf("%w (need %d bytes, have %d)", ErrTruncatedPixelData, end-start, size-start)
	}
	return nil
}

// Reads a 1-bit Bitmap file
func DecodeFile(filename string) (*Bitmap, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &FileOpenError{Path: filename, Err: err}
	}
	defer file.Close()

	b, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	b.Filename = filename

	return b, nil
}
