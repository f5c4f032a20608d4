package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/quasilyte/bitstrip"
)

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

func main() {
	var sources stringList
	var overrides stringList
	var layout string
	var outFile string
	var fontName string
	var defChar uint
	var debug bool
	config := bitstrip.DefaultConfig()
	flag.Var(&sources, "src",
		"a font dump to compile in `path[:first:last]` form;\ncan be used several times")
	flag.Var(&overrides, "override",
		"a glyph crop override in `code:x,y,w,h` form;\na zero size produces an empty glyph, can be used several times")
	flag.StringVar(&layout, "layout", "v",
		"a byte layout (`v` or `h`)")
	flag.StringVar(&outFile, "o", "",
		"a result C header path; if empty, <name>.h is used")
	flag.StringVar(&fontName, "name", "font",
		"a font C identifier")
	flag.IntVar(&config.HSpace, "hspace", config.HSpace,
		"a default horizontal spacing")
	flag.IntVar(&config.VSpace, "vspace", config.VSpace,
		"a default vertical spacing")
	flag.UintVar(&defChar, "defchar", uint(config.DefaultChar),
		"a default char code to render missing glyphs")
	flag.BoolVar(&config.EmitFontDecl, "decl", false,
		"whether to emit the font declaration as a live code instead of a comment")
	flag.BoolVar(&debug, "v", false,
		"whether to enable verbose output")
	flag.Parse()

	if defChar > math.MaxUint32 {
		logrus.Fatalf("defchar %d is out of range", defChar)
	}
	config.DefaultChar = uint32(defChar)

	switch layout {
	case "v", "vertical", "":
		config.ByteLayout = bitstrip.ByteVertical
	case "h", "horizontal":
		config.ByteLayout = bitstrip.ByteHorizontal
	default:
		logrus.Fatalf("unsupported layout: %q", layout)
	}

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
		config.DebugPrint = func(message string) {
			logrus.Debug(message)
		}
	}

	if outFile == "" {
		outFile = fontName + ".h"
	}

	c := bitstrip.NewCompiler(config)
	for _, s := range sources {
		path, first, last, err := parseSourceFlag(s)
		if err != nil {
			logrus.Fatalf("-src %q: %v", s, err)
		}
		c.AddSource(path, first, last)
	}
	for _, s := range overrides {
		code, pos, size, err := parseOverrideFlag(s)
		if err != nil {
			logrus.Fatalf("-override %q: %v", s, err)
		}
		c.AddGlyphOverride(code, pos, size)
	}

	result, err := c.Compile(outFile, fontName)
	for _, w := range result.Warnings {
		logrus.Warn(w)
	}
	if err != nil {
		logrus.Fatalf("error: %v", err)
	}
	for i, p := range result.Parts {
		logrus.WithFields(logrus.Fields{
			"source": p.SourcePath,
			"chars":  fmt.Sprintf("%d-%d", p.FirstChar, p.LastChar),
			"glyphs": p.NumGlyphs,
			"size":   fmt.Sprintf("%dx%d", p.Width, p.Height),
			"bytes":  p.DataSize,
		}).Infof("part %d", i)
	}
}

// parseSourceFlag parses "path" or "path:first:last".
// A path without a range accepts all char codes.
func parseSourceFlag(s string) (path string, first, last uint32, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return s, 0, math.MaxUint32, nil
	}
	path = strings.Join(parts[:len(parts)-2], ":")
	first, err = parseCode(parts[len(parts)-2])
	if err != nil {
		return "", 0, 0, err
	}
	last, err = parseCode(parts[len(parts)-1])
	if err != nil {
		return "", 0, 0, err
	}
	return path, first, last, nil
}

// parseOverrideFlag parses "code:x,y,w,h".
func parseOverrideFlag(s string) (code uint32, pos, size image.Point, err error) {
	codeString, rectString, ok := strings.Cut(s, ":")
	if !ok {
		return 0, pos, size, fmt.Errorf("expected code:x,y,w,h")
	}
	code, err = parseCode(codeString)
	if err != nil {
		return 0, pos, size, err
	}
	fields := strings.Split(rectString, ",")
	if len(fields) != 4 {
		return 0, pos, size, fmt.Errorf("expected 4 rect values, found %d", len(fields))
	}
	var values [4]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return 0, pos, size, err
		}
		values[i] = v
	}
	pos = image.Pt(values[0], values[1])
	size = image.Pt(values[2], values[3])
	return code, pos, size, nil
}

func parseCode(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
