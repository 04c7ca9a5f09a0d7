// Adjusts bitmap dimensions or structure.
package adjustments

import (
	"errors"

	"github.com/anas-shakeel/bmp2hex/internal/bmp"
	"github.com/anas-shakeel/bmp2hex/internal/filters"
)

// Crops a region in the bitmap (0,0 is at the top-left of the image)
func Crop(b *bmp.Bitmap, x, y, width, height int) (*bmp.Bitmap, error) {
	// Validate bounds
	if x < 0 || y < 0 {
		return nil, errors.New("invalid bounds: negative origin")
	} else if width+x > b.Width {
		return nil, errors.New("invalid bounds: width out of bounds")
	} else if height+y > b.Height {
		return nil, errors.New("invalid bounds: height out of bounds")
	}

	cropped, err := bmp.New(width, height)
	if err != nil {
		return nil, err
	}
	cropped.Filename = b.Filename

	// Byte-aligned origin: rows can be copied directly
	if x%8 == 0 {
		for row := 0; row < height; row++ {
			copy(cropped.Row(row), b.Row(row+y)[x/8:])
		}
		filters.ClearPadding(cropped) // Bits copied past the new width
		return cropped, nil
	}

	for row := 0; row < height; row++ { // Height | Rows
		for col := 0; col < width; col++ { // Width | Columns
			if b.At(col+x, row+y) {
				cropped.Set(col, row, true)
			}
		}
	}

	return cropped, nil
}
