// Package render writes packed bitmaps as C header files.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/anas-shakeel/bmp2hex/internal/bmp"
	"github.com/anas-shakeel/bmp2hex/internal/pack"
)

// Mode selects the shape of the generated constant.
type Mode int

const (
	// ModeArray emits a PROGMEM byte array plus width/height constants.
	ModeArray Mode = iota
	// ModeStruct emits a single struct literal holding width, height and data.
	ModeStruct
)

func (m Mode) String() string {
	switch m {
	case ModeArray:
		return "array"
	case ModeStruct:
		return "struct"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

var (
	ErrBadIdentifier = errors.New("render: identifier must be a valid C identifier")
	ErrTooLarge      = errors.New("render: width and height must fit in 16 bits")
)

// Width and height are emitted as uint16_t constants
const maxDimension = 0xFFFF

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const arrayTmpl = `#ifndef {{.Guard}}
#define {{.Guard}}

uint8_t {{.Name}}[{{.Size}}] PROGMEM = {
{{.Data}}
};
prog_uint16_t {{.Name}}width = 0x{{printf "%04X" .Width}};
prog_uint16_t {{.Name}}height = 0x{{printf "%04X" .Height}};
#endif
`

const structTmpl = `#ifndef {{.Guard}}
#define {{.Guard}}

const struct {
  uint16_t width;
  uint16_t height;
  uint8_t data[{{.Size}}];
} {{.Name}} PROGMEM = {
  0x{{printf "%04X" .Width}}, 0x{{printf "%04X" .Height}},
  {
{{.Data}}
  }
};
#endif
`

var templates = map[Mode]*template.Template{
	ModeArray:  template.Must(template.New("array").Parse(arrayTmpl)),
	ModeStruct: template.Must(template.New("struct").Parse(structTmpl)),
}

type header struct {
	Guard  string
	Name   string
	Size   int
	Width  int
	Height int
	Data   string
}

// Render packs b and writes it to w as a header declaring name.
func Render(w io.Writer, mode Mode, name string, b *bmp.Bitmap) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrBadIdentifier, name)
	}
	if b.Width > maxDimension || b.Height > maxDimension {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, b.Width, b.Height)
	}
	t, ok := templates[mode]
	if !ok {
		return fmt.Errorf("render: unknown mode %v", mode)
	}

	groups := pack.Pack(b)
	var data bytes.Buffer
	if err := pack.WriteGroups(&data, groups); err != nil {
		return err
	}

	return t.Execute(w, header{
		Guard:  strings.ToUpper(name) + "_H",
		Name:   name,
		Size:   pack.Len(groups),
		Width:  b.Width,
		Height: b.Height,
		Data:   data.String(),
	})
}
