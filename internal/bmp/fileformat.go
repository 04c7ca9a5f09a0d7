// BMP-specific structs, constants and errors
package bmp

import (
	"errors"
	"fmt"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	headerLen     = fileHeaderLen + infoHeaderLen // 54 bytes in front of the palette
	paletteLen    = 2 * 4                         // Two RGBQUAD entries for 1-bit images
)

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type BitmapFileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type BitmapInfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels (negative means top-down)
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

// Config is the geometry of a BMP file, computed from its headers before
// any pixel data is read.
type Config struct {
	Width         int  // Absolute width in pixels
	Height        int  // Absolute height in pixels
	TopDown       bool // First row in the file is the top row
	Depth         int  // Bits per pixel
	DataOffset    int64
	RowStride     int // Bytes per row without padding
	AlignedStride int // Bytes per row in the file (4-byte aligned)
}

var (
	ErrHeaderTooShort     = errors.New("bmp: header too short")
	ErrBadSignature       = errors.New("bmp: wrong signature")
	ErrUnsupportedDepth   = errors.New("bmp: only 1-bit bitmaps are supported")
	ErrTruncatedPixelData = errors.New("bmp: file ended before all pixels could be read")
	ErrEmptyBitmap        = errors.New("bmp: width and height must be greater than 0")
)

// SignatureError reports the two bytes found where "BM" was expected.
type SignatureError struct {
	Got [2]byte
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("bmp: wrong signature: 0x%02x%02x", e.Got[0], e.Got[1])
}

func (e *SignatureError) Is(target error) bool { return target == ErrBadSignature }

// UnsupportedDepthError reports a bit depth other than 1.
// Width and Height carry the geometry found in the header.
type UnsupportedDepthError struct {
	Depth         int
	Width, Height int
}

func (e *UnsupportedDepthError) Error() string {
	return fmt.Sprintf("bmp: unsupported bit depth %d: only 1-bit bitmaps are supported", e.Depth)
}

func (e *UnsupportedDepthError) Is(target error) bool { return target == ErrUnsupportedDepth }

// FileOpenError reports an input or output path that could not be opened.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("error while opening %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }
