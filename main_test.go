package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xbmp "golang.org/x/image/bmp"

	"github.com/anas-shakeel/bmp2hex/internal/bmp"
	"github.com/anas-shakeel/bmp2hex/internal/render"
)

// Writes an 8x2 bitmap with a single set pixel in each row
func writeGlyph(t *testing.T, dir string) string {
	t.Helper()
	b, err := bmp.New(8, 2)
	require.NoError(t, err)
	b.Pix[0] = 0x80
	b.Pix[1] = 0x01

	path := filepath.Join(dir, "glyph.bmp")
	require.NoError(t, b.Save(path))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := writeGlyph(t, dir)
	output := filepath.Join(dir, "glyph.h")

	var stdout bytes.Buffer
	require.NoError(t, run(options{}, input, output, "glyph", &stdout))

	assert.Equal(t, input+" is a 8x2x1 bitmap\n\n  0 X.......\n  1 .......X\n", stdout.String())

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "uint8_t glyph[2] PROGMEM = {\n  0x01, 0x80\n};\n")
	assert.Contains(t, string(got), "prog_uint16_t glyphwidth = 0x0008;\n")
}

func TestRunOptions(t *testing.T) {
	dir := t.TempDir()
	input := writeGlyph(t, dir)
	output := filepath.Join(dir, "glyph.h")
	saved := filepath.Join(dir, "processed.bmp")

	opts := options{
		mode:   render.ModeStruct,
		invert: true,
		crop:   []int{0, 1, 8, 1},
		save:   saved,
		quiet:  true,
	}
	var stdout bytes.Buffer
	require.NoError(t, run(opts, input, output, "glyph", &stdout))
	assert.Equal(t, input+" is a 8x2x1 bitmap\n", stdout.String())

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	// Row 1 (0x01) inverted is 0xFE, reversed 0x7F
	assert.Contains(t, string(got), "} glyph PROGMEM = {\n  0x0008, 0x0001,\n  {\n  0x7F\n  }\n};\n")

	processed, err := bmp.DecodeFile(saved)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFE}, processed.Pix)

	stdout.Reset()
	require.NoError(t, run(options{quiet: true, meta: true}, input, filepath.Join(dir, "meta.h"), "glyph", &stdout))
	assert.Contains(t, stdout.String(), "RowStride: \t1 bytes\n")
}

func TestRunDoesNotCreateOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.bmp")
	require.NoError(t, os.WriteFile(input, bytes.Repeat([]byte{'P'}, 80), 0o644))
	output := filepath.Join(dir, "bad.h")

	err := run(options{}, input, output, "bad", &bytes.Buffer{})
	require.ErrorIs(t, err, bmp.ErrBadSignature)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunReportsGeometryOfUnsupportedDepth(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "gray.bmp")
	img := image.NewPaletted(image.Rect(0, 0, 10, 4), color.Palette{color.Black, color.White})
	var data bytes.Buffer
	require.NoError(t, xbmp.Encode(&data, img))
	require.NoError(t, os.WriteFile(input, data.Bytes(), 0o644))
	output := filepath.Join(dir, "gray.h")

	var stdout bytes.Buffer
	err := run(options{}, input, output, "gray", &stdout)
	require.ErrorIs(t, err, bmp.ErrUnsupportedDepth)
	assert.Equal(t, exitDepth, exitCode(err))
	assert.Equal(t, input+" is a 10x4x8 bitmap\n", stdout.String())

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunBadIdentifier(t *testing.T) {
	dir := t.TempDir()
	input := writeGlyph(t, dir)

	err := run(options{quiet: true}, input, filepath.Join(dir, "out.h"), "not-valid", &bytes.Buffer{})
	assert.ErrorIs(t, err, render.ErrBadIdentifier)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&bmp.FileOpenError{Path: "x", Err: os.ErrNotExist}, exitOpen},
		{fmt.Errorf("in.bmp: %w", bmp.ErrHeaderTooShort), exitHeader},
		{fmt.Errorf("in.bmp: %w", &bmp.SignatureError{Got: [2]byte{'P', 'K'}}), exitSignature},
		{fmt.Errorf("in.bmp: %w", &bmp.UnsupportedDepthError{Depth: 24}), exitDepth},
		{fmt.Errorf("in.bmp: %w", bmp.ErrTruncatedPixelData), exitTruncated},
		{render.ErrBadIdentifier, exitOther},
		{errors.New("boom"), exitOther},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, exitCode(tc.err), "%v", tc.err)
	}
}

func TestParseCrop(t *testing.T) {
	rect, err := parseCrop("1, 2,3,4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, rect)

	for _, s := range []string{"1,2,3", "a,b,c,d", "1,2,3,-4", ""} {
		_, err := parseCrop(s)
		assert.Error(t, err, "crop %q", s)
	}
}
