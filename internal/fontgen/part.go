package fontgen

import (
	"sort"
)

// fontPart is a compiled unit that corresponds to one font block of a source.
// All glyphs of a part are placed next to each other inside a single strip.
type fontPart struct {
	SourceIndex int
	SourcePath  string

	CharWidth  int
	CharHeight int

	// Informational range declared by the source.
	RangeFrom uint32
	RangeTo   uint32

	// Codes are sorted in ascending order.
	Codes []uint32
	Raw   map[uint32]*grid

	// Fields below are initialized during the glyphs trimming phase.
	Glyphs      []trimmedGlyph
	StripWidth  int
	StripHeight int
}

func (p *fontPart) FirstCode() uint32 {
	if len(p.Glyphs) != 0 {
		return p.Glyphs[0].Code
	}
	return p.Codes[0]
}

func (p *fontPart) LastCode() uint32 {
	if len(p.Glyphs) != 0 {
		return p.Glyphs[len(p.Glyphs)-1].Code
	}
	return p.Codes[len(p.Codes)-1]
}

// layout sorts the glyphs and places them into the strip.
// It needs to be called every time the glyphs are changed.
func (p *fontPart) layout() {
	sort.SliceStable(p.Glyphs, func(i, j int) bool {
		return p.Glyphs[i].Code < p.Glyphs[j].Code
	})

	p.Codes = p.Codes[:0]
	p.StripWidth = 0
	p.StripHeight = 0
	for i := range p.Glyphs {
		g := &p.Glyphs[i]
		p.Codes = append(p.Codes, g.Code)
		g.X = p.StripWidth
		p.StripWidth += g.Width()
		p.StripHeight = max(p.StripHeight, g.Height())
	}
}

// strip renders all part glyphs into a single image.
// Glyphs share the same top row.
func (p *fontPart) strip() *grid {
	img := newGrid(p.StripWidth, p.StripHeight)
	for _, g := range p.Glyphs {
		img.Draw(g.X, 0, g.Img)
	}
	return img
}

func sortCodes(codes []uint32) {
	sort.Slice(codes, func(i, j int) bool {
		return codes[i] < codes[j]
	})
}

// sortParts orders the parts by their first code.
// Parts with equal first codes keep their input order.
func sortParts(parts []*fontPart) {
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].FirstCode() < parts[j].FirstCode()
	})
}
