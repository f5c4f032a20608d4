package fontgen

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// sourceParser reads one LCD Image Converter font dump.
//
// The document is a sequence of FONT elements, each containing
// FONTSIZE, RANGE and a list of CHAR elements:
//
//	<FONT>
//	  <FONTSIZE WIDTH="8" HEIGHT="12"/>
//	  <RANGE FROM="32" TO="127"/>
//	  <CHAR CODE="65" PIXELS="..."/>
//	</FONT>
//
// Every FONT element becomes a separate font part.
type sourceParser struct {
	config Config
	source Source

	// Index of the source inside the compiler inputs list.
	index int
}

type fontBlock struct {
	charWidth  int
	charHeight int
	rangeFrom  uint32
	rangeTo    uint32
	glyphs     map[uint32]*grid
}

func (p *sourceParser) Parse() ([]*fontPart, error) {
	f, err := os.Open(p.source.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	return p.decode(f)
}

func (p *sourceParser) decode(r io.Reader) ([]*fontPart, error) {
	dec := xml.NewDecoder(r)
	// The dumps are often saved in a legacy 8-bit encoding.
	dec.CharsetReader = charset.NewReaderLabel

	var parts []*fontPart
	var block *fontBlock

	finishBlock := func() {
		if block == nil {
			return
		}
		if len(block.glyphs) == 0 {
			p.config.DebugPrint(fmt.Sprintf("%s: skip a font block without glyphs in [%d, %d]",
				p.source.Path, p.source.FirstChar, p.source.LastChar))
		} else {
			parts = append(parts, p.newPart(block))
		}
		block = nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
			}
			return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "FONT":
				finishBlock()
				block = &fontBlock{glyphs: make(map[uint32]*grid)}
			case "FONTSIZE", "RANGE", "CHAR":
				if block == nil {
					// Entries outside of FONT are collected into an implicit block.
					block = &fontBlock{glyphs: make(map[uint32]*grid)}
				}
				if err := p.parseEntry(block, tok); err != nil {
					return nil, err
				}
			}

		case xml.EndElement:
			if tok.Name.Local == "FONT" {
				finishBlock()
			}
		}
	}
	finishBlock()

	return parts, nil
}

func (p *sourceParser) parseEntry(block *fontBlock, elem xml.StartElement) error {
	switch elem.Name.Local {
	case "FONTSIZE":
		w, err := sizeAttr(elem, "WIDTH")
		if err != nil {
			return err
		}
		h, err := sizeAttr(elem, "HEIGHT")
		if err != nil {
			return err
		}
		block.charWidth = w
		block.charHeight = h
		p.config.DebugPrint(fmt.Sprintf("%s: font size %dx%d", p.source.Path, w, h))

	case "RANGE":
		// The declared range doesn't affect the glyphs selection.
		from, errFrom := codeAttr(elem, "FROM")
		to, errTo := codeAttr(elem, "TO")
		if errFrom != nil || errTo != nil {
			p.config.DebugPrint(fmt.Sprintf("%s: ignore a malformed range declaration", p.source.Path))
			return nil
		}
		block.rangeFrom = from
		block.rangeTo = to
		p.config.DebugPrint(fmt.Sprintf("%s: font range [%d, %d]", p.source.Path, from, to))

	case "CHAR":
		code, err := codeAttr(elem, "CODE")
		if err != nil {
			return err
		}
		if code < p.source.FirstChar || code > p.source.LastChar {
			return nil
		}
		img, err := decodePixels(attrValue(elem, "PIXELS"), block.charWidth, block.charHeight)
		if err != nil {
			return fmt.Errorf("char %d: %w", code, err)
		}
		if _, ok := block.glyphs[code]; ok {
			p.config.DebugPrint(fmt.Sprintf("%s: char %d is redefined", p.source.Path, code))
		}
		block.glyphs[code] = img
	}

	return nil
}

func (p *sourceParser) newPart(block *fontBlock) *fontPart {
	part := &fontPart{
		SourceIndex: p.index,
		SourcePath:  p.source.Path,
		CharWidth:   block.charWidth,
		CharHeight:  block.charHeight,
		RangeFrom:   block.rangeFrom,
		RangeTo:     block.rangeTo,
		Raw:         block.glyphs,
	}
	part.Codes = make([]uint32, 0, len(block.glyphs))
	for code, img := range block.glyphs {
		part.Codes = append(part.Codes, code)
		// Cell sizes may be redeclared inside a block; keep the largest one.
		part.CharWidth = max(part.CharWidth, img.Width())
		part.CharHeight = max(part.CharHeight, img.Height())
	}
	sortCodes(part.Codes)
	return part
}

// decodePixels converts a comma-separated pixel list into a grid.
//
// The values are stored column by column: the first height values
// describe column 0 from top to bottom, then column 1 follows, and so on.
// A zero value is an ink pixel, anything else is a background.
func decodePixels(s string, width, height int) (*grid, error) {
	if width < 0 || height < 0 || width > maxGridSide || height > maxGridSide {
		return nil, fmt.Errorf("%w: %dx%d cell is out of range", ErrMalformedPixelData, width, height)
	}

	var values []string
	if strings.TrimSpace(s) != "" {
		values = strings.Split(s, ",")
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: found %d values, expected %dx%d=%d",
			ErrMalformedPixelData, len(values), width, height, width*height)
	}

	img := newGrid(width, height)

	x := 0
	y := 0
	for _, v := range values {
		ink, err := parsePixelValue(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: pixel (%d, %d): %w", ErrMalformedPixelData, x, y, err)
		}
		img.Set(x, y, ink)
		y++
		if y >= height {
			y = 0
			x++
		}
	}

	return img, nil
}

func parsePixelValue(s string) (ink bool, err error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v == 0, nil
	}
	// Colors can be written as hex literals too.
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

func attrValue(elem xml.StartElement, name string) string {
	for _, a := range elem.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func codeAttr(elem xml.StartElement, name string) (uint32, error) {
	s := strings.TrimSpace(attrValue(elem, name))
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s=%q", ErrMalformedSource, elem.Name.Local, name, s)
	}
	return uint32(v), nil
}

// sizeAttr parses a cell dimension in [0, maxGridSide].
func sizeAttr(elem xml.StartElement, name string) (int, error) {
	s := strings.TrimSpace(attrValue(elem, name))
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > maxGridSide {
		return 0, fmt.Errorf("%w: %s %s=%q", ErrMalformedSource, elem.Name.Local, name, s)
	}
	return v, nil
}
