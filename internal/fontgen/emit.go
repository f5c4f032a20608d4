package fontgen

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed all:_templates
var templateFiles embed.FS

var headerTemplate = template.Must(template.ParseFS(templateFiles, "_templates/font.h.tmpl"))

// fontDescriptor is a final font representation that is ready to be emitted.
type fontDescriptor struct {
	Name  string
	Parts []*packedPart

	MaxCharWidth  int
	MaxCharHeight int
	HSpace        int
	VSpace        int
	DefaultChar   uint32
	EmitFontDecl  bool
}

func newFontDescriptor(config Config, name string, parts []*packedPart) (*fontDescriptor, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyFont
	}
	d := &fontDescriptor{
		Name:         name,
		Parts:        parts,
		HSpace:       config.HSpace,
		VSpace:       config.VSpace,
		DefaultChar:  config.DefaultChar,
		EmitFontDecl: config.EmitFontDecl,
	}
	// Nominal cell sizes are used here, not the trimmed ones.
	for _, p := range parts {
		d.MaxCharWidth = max(d.MaxCharWidth, p.CharWidth)
		d.MaxCharHeight = max(d.MaxCharHeight, p.CharHeight)
	}
	return d, nil
}

type headerTemplateData struct {
	Name  string
	Guard string
	Parts []headerPartData

	MaxCharWidth  int
	MaxCharHeight int
	HSpace        int
	VSpace        int
	DefaultChar   uint32
	EmitFontDecl  bool
}

type headerPartData struct {
	Macro  string
	Symbol string

	Format     string
	Width      int
	Height     int
	FirstChar  uint32
	LastChar   uint32
	CharWidth  int
	CharHeight int
	DataSize   int

	DescrLines []string
	DataLines  []string
}

// renderHeader produces the C header text for the font.
func renderHeader(d *fontDescriptor) ([]byte, error) {
	if len(d.Parts) == 0 {
		return nil, ErrEmptyFont
	}

	guard := strings.ToUpper(d.Name)
	data := &headerTemplateData{
		Name:          d.Name,
		Guard:         guard,
		MaxCharWidth:  d.MaxCharWidth,
		MaxCharHeight: d.MaxCharHeight,
		HSpace:        d.HSpace,
		VSpace:        d.VSpace,
		DefaultChar:   d.DefaultChar,
		EmitFontDecl:  d.EmitFontDecl,
	}
	for i, p := range d.Parts {
		data.Parts = append(data.Parts, headerPartData{
			Macro:      fmt.Sprintf("%s_PART%d", guard, i),
			Symbol:     fmt.Sprintf("%s_part%d", d.Name, i),
			Format:     p.Layout.GraphicsFormat(),
			Width:      p.Width,
			Height:     p.Height,
			FirstChar:  p.FirstCode(),
			LastChar:   p.LastCode(),
			CharWidth:  p.CharWidth,
			CharHeight: p.CharHeight,
			DataSize:   p.Width * p.Height / 8,
			DescrLines: formatDescrs(p.Descrs),
			DataLines:  formatBytes(p.Data, 16),
		})
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDescrs(descrs []glyphDescr) []string {
	lines := make([]string, len(descrs))
	for i, d := range descrs {
		lines[i] = fmt.Sprintf("{%d, %d, %d, %d, %d, %d}, // %d",
			d.X, d.Y, d.Width, d.Height, d.OffsetX, d.OffsetY, d.Code)
	}
	return lines
}

// formatBytes renders data as hex literals, perLine values per line.
// Every value is followed by a comma, including the last one.
func formatBytes(data []byte, perLine int) []string {
	lines := make([]string, 0, (len(data)+perLine-1)/perLine)
	var buf strings.Builder
	for len(data) != 0 {
		n := min(perLine, len(data))
		buf.Reset()
		for i, b := range data[:n] {
			if i != 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "0x%02x,", b)
		}
		lines = append(lines, buf.String())
		data = data[n:]
	}
	return lines
}
