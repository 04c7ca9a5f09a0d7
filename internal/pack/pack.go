// Package pack turns decoded bitmap rows into the byte groups written into
// generated source files.
//
// Bitmap rows keep the leftmost pixel of each byte in bit 7 as read from the
// BMP file. The generated constants are consumed by display drivers that walk
// each byte from bit 0, so every byte is bit-reversed on the way out.
package pack

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"

	"github.com/anas-shakeel/bmp2hex/internal/bmp"
)

// GroupSize is the number of bytes emitted per output line.
const GroupSize = 12

// Group is one output line worth of packed bytes.
type Group []byte

// ReverseBits swaps bit 0 with bit 7, bit 1 with bit 6 and so on.
func ReverseBits(b byte) byte {
	return bits.Reverse8(b)
}

// Pack reverses every byte of the bitmap's pixel data and splits the result
// into groups of GroupSize. The last group holds the remainder; a length that
// is a multiple of GroupSize yields no empty trailing group.
func Pack(b *bmp.Bitmap) []Group {
	packed := make([]byte, len(b.Pix))
	for i, v := range b.Pix {
		packed[i] = ReverseBits(v)
	}

	groups := make([]Group, 0, (len(packed)+GroupSize-1)/GroupSize)
	for len(packed) > 0 {
		n := min(GroupSize, len(packed))
		groups = append(groups, Group(packed[:n:n]))
		packed = packed[n:]
	}
	return groups
}

// Unpack undoes Pack and returns the original pixel bytes.
func Unpack(groups []Group) []byte {
	var out []byte
	for _, g := range groups {
		for _, v := range g {
			out = append(out, ReverseBits(v))
		}
	}
	return out
}

// Len returns the total number of bytes in groups.
func Len(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n
}

// WriteGroups writes one group per line, indented by two spaces, values as
// 0xHH separated by ", ". Lines are joined with ",\n" so the output can be
// placed between the braces of a C initializer. No newline follows the last
// line.
func WriteGroups(w io.Writer, groups []Group) error {
	bw := bufio.NewWriter(w)
	for i, g := range groups {
		if i > 0 {
			bw.WriteString(",\n")
		}
		bw.WriteString("  ")
		for j, v := range g {
			if j > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "0x%02X", v)
		}
	}
	return bw.Flush()
}
