// Filters perform per-pixel operations on monochrome bitmaps
package filters

import (
	"github.com/anas-shakeel/bmp2hex/internal/bmp"
	"github.com/anas-shakeel/bmp2hex/internal/utils"
)

// Inverts (negates) the bitmap in-place.
// Bits past the width in the last byte of each row are left untouched.
func Invert(b *bmp.Bitmap) {
	tail := utils.TailMask(b.Width)

	// Iterate rows
	for row := 0; row < b.Height; row++ {
		r := b.Row(row)
		last := len(r) - 1
		for col := 0; col < last; col++ {
			r[col] = ^r[col]
		}
		r[last] ^= tail
	}
}

// Clears the bits past the width in the last byte of each row.
// BMP writers are free to leave garbage there; it ends up in packed output.
func ClearPadding(b *bmp.Bitmap) {
	tail := utils.TailMask(b.Width)
	for row := 0; row < b.Height; row++ {
		r := b.Row(row)
		r[len(r)-1] &= tail
	}
}
