package labelling

import (
	"image"
	"image/color"
)

// Component describes one labelled blob.
type Component struct {
	Label uint32 `json:"label"`

	// Bounds is the blob's bounding box; Min is inclusive, Max exclusive.
	Bounds image.Rectangle `json:"-"`

	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`

	// Area is the number of pixels carrying the label.
	Area int `json:"area"`

	Color color.RGBA `json:"-"`
}

// Components measures every blob in labels in a single pass. The result is
// ordered by label, so Components(l, t)[i].Label == i+1. When table is nil
// the Color field is left zero.
func Components(labels *LabelRaster, table *ColorTable) []Component {
	if labels.Count == 0 {
		return []Component{}
	}

	comps := make([]Component, labels.Count)
	// Built as a literal: image.Rect would swap an inverted box.
	empty := image.Rectangle{Min: image.Pt(labels.Width, labels.Height), Max: image.Pt(-1, -1)}
	for i := range comps {
		comps[i].Label = uint32(i + 1)
		comps[i].Bounds = empty
	}

	for y := 0; y < labels.Height; y++ {
		row := labels.Pix[y*labels.Width : (y+1)*labels.Width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			c := &comps[v-1]
			c.Area++
			b := &c.Bounds
			if x < b.Min.X {
				b.Min.X = x
			}
			if y < b.Min.Y {
				b.Min.Y = y
			}
			if x+1 > b.Max.X {
				b.Max.X = x + 1
			}
			if y+1 > b.Max.Y {
				b.Max.Y = y + 1
			}
		}
	}

	for i := range comps {
		c := &comps[i]
		c.X, c.Y = c.Bounds.Min.X, c.Bounds.Min.Y
		c.Width, c.Height = c.Bounds.Dx(), c.Bounds.Dy()
		if table != nil && int(c.Label) < table.Len() {
			c.Color = table.Lookup(c.Label)
		}
	}
	return comps
}
