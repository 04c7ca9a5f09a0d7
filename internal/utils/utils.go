// Helpers for packed 1-bit pixel rows (bit 7 of each byte is the leftmost pixel)
package utils

// Returns the number of bytes needed to hold width 1-bit pixels
func Stride(width int) int {
	return (width + 7) / 8
}

// Returns the 4-byte aligned size of a row of stride bytes
func AlignStride(stride int) int {
	if stride%4 != 0 {
		return (stride/4 + 1) * 4
	}
	return stride
}

// Reports whether pixel x of row is set
func Bit(row []byte, x int) bool {
	return row[x/8]&(0x80>>(x%8)) != 0
}

// Sets or clears pixel x of row
func SetBit(row []byte, x int, on bool) {
	if on {
		row[x/8] |= 0x80 >> (x % 8)
	} else {
		row[x/8] &^= 0x80 >> (x % 8)
	}
}

// Returns the mask of the pixels used in the last byte of a row of width pixels
func TailMask(width int) byte {
	if width%8 == 0 {
		return 0xff
	}
	return ^byte(0xff >> (width % 8))
}
