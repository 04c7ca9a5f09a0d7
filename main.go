// bmp2hex converts 1-bit Windows bitmaps into C headers for embedding in firmware
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/anas-shakeel/bmp2hex/internal/adjustments"
	"github.com/anas-shakeel/bmp2hex/internal/bmp"
	"github.com/anas-shakeel/bmp2hex/internal/filters"
	"github.com/anas-shakeel/bmp2hex/internal/render"
)

// Exit statuses, one per failure class
const (
	exitUsage     = 1
	exitOpen      = 2
	exitHeader    = 3
	exitSignature = 4
	exitDepth     = 5
	exitOther     = 6
	exitTruncated = 7
)

type options struct {
	mode   render.Mode
	invert bool
	crop   []int // x, y, width, height; nil when not cropping
	save   string
	quiet  bool
	meta   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bmp2hex: ")

	var (
		structMode = flag.Bool("struct", false, "emit a struct literal instead of a byte array")
		invert     = flag.Bool("invert", false, "invert all pixels before packing")
		crop       = flag.String("crop", "", "crop to `x,y,w,h` before packing")
		save       = flag.String("save", "", "also write the processed bitmap to this 1-bit BMP `file`")
		quiet      = flag.Bool("q", false, "do not print the preview")
		verbose    = flag.Bool("v", false, "print bitmap metadata")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bmp2hex [flags] <inputfile> <outputfile> <imagename>\n")
		fmt.Fprintf(os.Stderr, "  e.g. bmp2hex input.bmp image.h image\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(exitUsage)
	}

	opts := options{invert: *invert, save: *save, quiet: *quiet, meta: *verbose}
	if *structMode {
		opts.mode = render.ModeStruct
	}
	if *crop != "" {
		rect, err := parseCrop(*crop)
		if err != nil {
			log.Print(err)
			os.Exit(exitUsage)
		}
		opts.crop = rect
	}

	if err := run(opts, flag.Arg(0), flag.Arg(1), flag.Arg(2), os.Stdout); err != nil {
		log.Print(err)
		os.Exit(exitCode(err))
	}
}

// Converts input into a header written to output. Nothing is written to
// output unless every step before it succeeded.
func run(opts options, input, output, name string, stdout io.Writer) error {
	bitmap, err := bmp.DecodeFile(input)
	var depthErr *bmp.UnsupportedDepthError
	if errors.As(err, &depthErr) {
		fmt.Fprintf(stdout, "%s is a %dx%dx%d bitmap\n", input, depthErr.Width, depthErr.Height, depthErr.Depth)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s is a %dx%dx1 bitmap\n", input, bitmap.Width, bitmap.Height)
	if opts.meta {
		bitmap.PrintMetadata(stdout)
	}

	if opts.crop != nil {
		bitmap, err = adjustments.Crop(bitmap, opts.crop[0], opts.crop[1], opts.crop[2], opts.crop[3])
		if err != nil {
			return err
		}
	}
	if opts.invert {
		filters.Invert(bitmap)
	}
	if opts.save != "" {
		if err := bitmap.Save(opts.save); err != nil {
			return err
		}
	}

	if !opts.quiet {
		fmt.Fprintln(stdout)
		if err := bitmap.PrintPreview(stdout); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, opts.mode, name, bitmap); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return &bmp.FileOpenError{Path: output, Err: err}
	}

	return nil
}

func parseCrop(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("invalid crop %q: want x,y,w,h", s)
	}

	rect := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid crop %q: %q is not a non-negative integer", s, p)
		}
		rect[i] = n
	}
	return rect, nil
}

func exitCode(err error) int {
	var openErr *bmp.FileOpenError
	switch {
	case errors.As(err, &openErr):
		return exitOpen
	case errors.Is(err, bmp.ErrHeaderTooShort):
		return exitHeader
	case errors.Is(err, bmp.ErrBadSignature):
		return exitSignature
	case errors.Is(err, bmp.ErrUnsupportedDepth):
		return exitDepth
	case errors.Is(err, bmp.ErrTruncatedPixelData):
		return exitTruncated
	}
	return exitOther
}
