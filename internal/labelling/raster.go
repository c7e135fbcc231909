package labelling

import "image/color"

// Mask values.
const (
	Background uint8 = 0
	Foreground uint8 = 255
)

// Mask is a single-channel foreground/background raster.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask allocates an all-background mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At reports whether the pixel at (x, y) is foreground.
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.Width+x] != Background
}

// Set marks the pixel at (x, y) as foreground or background.
func (m *Mask) Set(x, y int, fg bool) {
	if fg {
		m.Pix[y*m.Width+x] = Foreground
	} else {
		m.Pix[y*m.Width+x] = Background
	}
}

// RGBA renders the mask as an RGBA buffer: background pixels get the
// background color and foreground pixels get its RGB inverse, which never
// equals it. Binarize(m.RGBA(bg), ..., bg) reproduces m.
func (m *Mask) RGBA(background color.RGBA) []byte {
	fg := color.RGBA{R: 255 - background.R, G: 255 - background.G, B: 255 - background.B, A: background.A}
	out := make([]byte, len(m.Pix)*4)
	for i, v := range m.Pix {
		c := background
		if v != Background {
			c = fg
		}
		o := i * 4
		out[o], out[o+1], out[o+2], out[o+3] = c.R, c.G, c.B, c.A
	}
	return out
}

// LabelRaster holds one label per pixel. Label 0 is background; blobs are
// numbered 1..Count with no gaps.
type LabelRaster struct {
	Width  int
	Height int
	Pix    []uint32
	Count  int
}

// At returns the label at (x, y).
func (l *LabelRaster) At(x, y int) uint32 {
	return l.Pix[y*l.Width+x]
}
