package labelling

import "image/color"

// Channel range for generated colors. Keeping channels off zero keeps every
// blob color apart from the transparent background.
const (
	minChannel uint8 = 1
	maxChannel uint8 = 255
)

// DefaultTableSize is the number of entries a new session table holds.
const DefaultTableSize = 100

// Transparent is the color of label 0.
var Transparent = color.RGBA{}

// ColorTable maps labels to colors. Entry 0 is always Transparent; every
// other entry is an opaque color with each of R, G and B drawn uniformly
// from [1, 255]. Nothing prevents two labels from drawing the same color.
type ColorTable struct {
	colors []color.RGBA
	src    RandomSource
}

// NewColorTable creates a table of the given size filled from src. Sizes
// below 1 are raised to 1 so the background entry always exists.
func NewColorTable(size int, src RandomSource) *ColorTable {
	t := &ColorTable{src: src}
	t.regenerate(size)
	return t
}

// Len returns the number of labels the table covers.
func (t *ColorTable) Len() int {
	return len(t.colors)
}

// EnsureCapacity guarantees a color for every label in [0, n). A table that
// already covers n labels is left alone, so colors stay put between images
// with similar blob counts. Otherwise every entry is redrawn at size n and
// previously handed-out colors are lost. It reports whether the table was
// regenerated.
func (t *ColorTable) EnsureCapacity(n int) bool {
	if n <= len(t.colors) {
		return false
	}
	t.regenerate(n)
	return true
}

// Lookup returns the color for label. Label must be below Len().
func (t *ColorTable) Lookup(label uint32) color.RGBA {
	return t.colors[label]
}

// Colors returns a copy of the table.
func (t *ColorTable) Colors() []color.RGBA {
	out := make([]color.RGBA, len(t.colors))
	copy(out, t.colors)
	return out
}

func (t *ColorTable) regenerate(size int) {
	if size < 1 {
		size = 1
	}
	colors := make([]color.RGBA, size)
	colors[0] = Transparent
	for i := 1; i < size; i++ {
		colors[i] = color.RGBA{
			R: t.src.ByteInRange(minChannel, maxChannel),
			G: t.src.ByteInRange(minChannel, maxChannel),
			B: t.src.ByteInRange(minChannel, maxChannel),
			A: 255,
		}
	}
	t.colors = colors
}
