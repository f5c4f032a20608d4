package fontgen

import (
	"fmt"
	"maps"
	"os"
	"regexp"
	"slices"
)

var fontNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type generator struct {
	config    Config
	sources   []Source
	overrides map[uint32]GlyphOverride

	dst      string
	fontName string

	parts    []*fontPart
	packed   []*packedPart
	header   []byte
	warnings []string
}

func newGenerator(config Config, sources []Source, overrides map[uint32]GlyphOverride) *generator {
	// The inputs are copied so the compiler can be modified
	// while the generator is running.
	return &generator{
		config:    config,
		sources:   slices.Clone(sources),
		overrides: maps.Clone(overrides),
	}
}

func (g *generator) Generate(dst, fontName string) (CompileResult, error) {
	type step struct {
		name string
		fn   func() error
	}

	g.dst = dst
	g.fontName = fontName

	var result CompileResult

	steps := []step{
		{"validate config", g.validateConfig},
		{"parse sources", g.parseSources},
		{"trim glyphs", g.trimGlyphs},
		{"sort parts", g.sortParts},
		{"pack parts", g.packParts},
		{"render header", g.renderHeader},
		{"write output", g.writeOutput},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			result.Warnings = g.warnings
			return result, fmt.Errorf("%s: %w", s.name, err)
		}
	}

	result.Warnings = g.warnings
	for _, p := range g.packed {
		result.Parts = append(result.Parts, PartInfo{
			SourcePath: p.SourcePath,
			FirstChar:  p.FirstCode(),
			LastChar:   p.LastCode(),
			NumGlyphs:  len(p.Glyphs),
			Width:      p.Width,
			Height:     p.Height,
			DataSize:   len(p.Data),
		})
	}
	return result, nil
}

func (g *generator) validateConfig() error {
	if len(g.sources) == 0 {
		return ErrNoInputs
	}
	if !fontNameRegexp.MatchString(g.fontName) {
		return fmt.Errorf("%w: %q", ErrBadFontName, g.fontName)
	}
	if g.dst == "" {
		return fmt.Errorf("%w: empty output path", ErrDestinationUnwritable)
	}

	if g.config.DebugPrint == nil {
		g.config.DebugPrint = func(message string) {}
	}
	if g.overrides == nil {
		g.overrides = map[uint32]GlyphOverride{}
	}

	return nil
}

func (g *generator) parseSources() error {
	for i, src := range g.sources {
		p := sourceParser{config: g.config, source: src, index: i}
		parts, err := p.Parse()
		if err != nil {
			return fmt.Errorf("%s: %w", src.Path, err)
		}
		if len(parts) == 0 {
			g.warnings = append(g.warnings,
				fmt.Sprintf("%s: no glyphs in [%d, %d], the source is skipped", src.Path, src.FirstChar, src.LastChar))
			continue
		}
		g.parts = append(g.parts, parts...)
	}

	if len(g.parts) == 0 {
		return ErrEmptyFont
	}
	return nil
}

func (g *generator) trimGlyphs() error {
	for _, p := range g.parts {
		glyphs := make([]trimmedGlyph, 0, len(p.Codes))
		for _, code := range p.Codes {
			tg := trimGlyph(code, p.Raw[code], g.overrides)
			if tg.Img.IsEmpty() {
				g.config.DebugPrint(fmt.Sprintf("%s: char %d is empty", p.SourcePath, code))
			}
			glyphs = append(glyphs, tg)
		}
		p.Glyphs = glyphs
		p.Raw = nil
		p.layout()
		g.config.DebugPrint(fmt.Sprintf("%s: [%d, %d] strip is %dx%d",
			p.SourcePath, p.FirstCode(), p.LastCode(), p.StripWidth, p.StripHeight))
	}
	return nil
}

func (g *generator) sortParts() error {
	sortParts(g.parts)
	for i := 1; i < len(g.parts); i++ {
		prev := g.parts[i-1]
		cur := g.parts[i]
		if cur.FirstCode() <= prev.LastCode() {
			g.warnings = append(g.warnings,
				fmt.Sprintf("%s: [%d, %d] range overlaps with %s: [%d, %d]",
					cur.SourcePath, cur.FirstCode(), cur.LastCode(),
					prev.SourcePath, prev.FirstCode(), prev.LastCode()))
		}
	}
	return nil
}

func (g *generator) packParts() error {
	g.packed = make([]*packedPart, 0, len(g.parts))
	for _, p := range g.parts {
		pp := packPart(p, g.config.ByteLayout)
		g.config.DebugPrint(fmt.Sprintf("%s: packed %dx%d into %d bytes (%s)",
			p.SourcePath, pp.Width, pp.Height, len(pp.Data), pp.Layout))
		g.packed = append(g.packed, pp)
	}
	return nil
}

func (g *generator) renderHeader() error {
	d, err := newFontDescriptor(g.config, g.fontName, g.packed)
	if err != nil {
		return err
	}
	header, err := renderHeader(d)
	if err != nil {
		return err
	}
	g.header = header
	return nil
}

func (g *generator) writeOutput() error {
	if err := os.WriteFile(g.dst, g.header, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnwritable, err)
	}
	g.config.DebugPrint(fmt.Sprintf("%s: wrote %d bytes", g.dst, len(g.header)))
	return nil
}
