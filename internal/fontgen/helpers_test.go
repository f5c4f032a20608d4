package fontgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// gridFromRows builds a grid from a text picture, '#' is an ink pixel.
func gridFromRows(rows ...string) *grid {
	h := len(rows)
	w := 0
	if h != 0 {
		w = len(rows[0])
	}
	img := newGrid(w, h)
	for y, row := range rows {
		for x, ch := range row {
			img.Set(x, y, ch == '#')
		}
	}
	return img
}

// pixelsFromRows encodes a text picture in the column-major
// LCD dump format where 0 is an ink pixel.
func pixelsFromRows(rows ...string) string {
	if len(rows) == 0 {
		return ""
	}
	values := make([]string, 0, len(rows)*len(rows[0]))
	for x := 0; x < len(rows[0]); x++ {
		for y := 0; y < len(rows); y++ {
			if rows[y][x] == '#' {
				values = append(values, "0")
			} else {
				values = append(values, "16777215")
			}
		}
	}
	return strings.Join(values, ",")
}

type testChar struct {
	code uint32
	rows []string
}

// lcdDocument creates a single FONT block font dump.
func lcdDocument(w, h int, chars ...testChar) string {
	var buf strings.Builder
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	buf.WriteString("<DATA>\n")
	writeLCDBlock(&buf, w, h, chars...)
	buf.WriteString("</DATA>\n")
	return buf.String()
}

func writeLCDBlock(buf *strings.Builder, w, h int, chars ...testChar) {
	buf.WriteString("<FONT>\n")
	fmt.Fprintf(buf, "  <FONTSIZE WIDTH=\"%d\" HEIGHT=\"%d\"/>\n", w, h)
	if len(chars) != 0 {
		fmt.Fprintf(buf, "  <RANGE FROM=\"%d\" TO=\"%d\"/>\n", chars[0].code, chars[len(chars)-1].code)
	}
	for _, c := range chars {
		fmt.Fprintf(buf, "  <CHAR CODE=\"%d\" PIXELS=\"%s\"/>\n", c.code, pixelsFromRows(c.rows...))
	}
	buf.WriteString("</FONT>\n")
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func solidRows(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat("#", w)
	}
	return rows
}

func blankRows(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return rows
}
