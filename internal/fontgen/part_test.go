package fontgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartLayout(t *testing.T) {
	part := &fontPart{
		Glyphs: []trimmedGlyph{
			{Code: 67, Img: gridFromRows("###", "###")},
			{Code: 65, Img: gridFromRows("#", "#", "#")},
			{Code: 32, Img: newGrid(0, 0)},
			{Code: 66, Img: gridFromRows("##")},
		},
	}
	part.layout()

	assert.Equal(t, []uint32{32, 65, 66, 67}, part.Codes)
	assert.Equal(t, 6, part.StripWidth)
	assert.Equal(t, 3, part.StripHeight)
	assert.Equal(t, uint32(32), part.FirstCode())
	assert.Equal(t, uint32(67), part.LastCode())

	var xs []int
	for _, g := range part.Glyphs {
		xs = append(xs, g.X)
	}
	assert.Equal(t, []int{0, 0, 1, 3}, xs)

	assert.Equal(t, ""+
		"######\n"+
		"#..###\n"+
		"#.....",
		part.strip().String())
}

func TestSortParts(t *testing.T) {
	newPart := func(index int, codes ...uint32) *fontPart {
		return &fontPart{SourceIndex: index, Codes: codes}
	}
	parts := []*fontPart{
		newPart(0, 65, 90),
		newPart(1, 32, 64),
		newPart(2, 1040, 1105),
		newPart(3, 32, 40),
	}
	sortParts(parts)

	var order []int
	for _, p := range parts {
		order = append(order, p.SourceIndex)
	}
	// Equal first codes keep the input order.
	assert.Equal(t, []int{1, 3, 0, 2}, order)
}
