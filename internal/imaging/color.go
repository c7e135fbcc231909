package imaging

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"` // 0 = fully transparent, 255 = fully opaque
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PaletteEntry describes the color assigned to one label.
type PaletteEntry struct {
	Label uint32    `json:"label"`
	Hex   string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGBA  RGBAColor `json:"rgba"`
	HSL   HSLColor  `json:"hsl"`

	// NearestLabel is the other label whose color is perceptually closest,
	// measured as CIE L*a*b* distance. Zero when there is no other label.
	NearestLabel    uint32  `json:"nearest_label,omitempty"`
	NearestDistance float64 `json:"nearest_distance,omitempty"`
}

// PaletteResult describes a color table.
type PaletteResult struct {
	Size    int            `json:"size"`
	Entries []PaletteEntry `json:"entries"`

	// ClosestPair names the two labels with the most similar colors. Colors
	// are drawn at random, so two blobs can end up hard to tell apart.
	ClosestPair     [2]uint32 `json:"closest_pair"`
	ClosestDistance float64   `json:"closest_distance"`

	// Truncated is set when the requested range was cut to MaxPaletteEntries.
	Truncated bool `json:"truncated,omitempty"`
}

// MaxPaletteEntries bounds how many labels DescribePalette reports. The
// nearest-color search is quadratic in the entry count.
const MaxPaletteEntries = 256

// DescribePalette reports labels 1..limit of a color table. Entry 0, the
// transparent background, is skipped. A limit of 0 or one beyond the table
// reports every label, up to MaxPaletteEntries.
func DescribePalette(table []color.RGBA, limit int) *PaletteResult {
	n := len(table) - 1
	if n < 0 {
		n = 0
	}
	if limit <= 0 || limit > n {
		limit = n
	}
	truncated := false
	if limit > MaxPaletteEntries {
		limit = MaxPaletteEntries
		truncated = true
	}

	cols := make([]colorful.Color, limit)
	entries := make([]PaletteEntry, limit)
	for i := 0; i < limit; i++ {
		c := table[i+1]
		cf, _ := colorful.MakeColor(c)
		cols[i] = cf
		h, s, l := cf.Hsl()
		entries[i] = PaletteEntry{
			Label: uint32(i + 1),
			Hex:   cf.Hex(),
			RGBA:  RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
			HSL: HSLColor{
				H: int(math.Round(h)) % 360,
				S: int(math.Round(s * 100)),
				L: int(math.Round(l * 100)),
			},
		}
	}

	res := &PaletteResult{Size: len(table), Entries: entries, ClosestDistance: math.Inf(1), Truncated: truncated}
	for i := range cols {
		best := math.Inf(1)
		for j := range cols {
			if i == j {
				continue
			}
			d := cols[i].DistanceLab(cols[j])
			if d < best {
				best = d
				entries[i].NearestLabel = uint32(j + 1)
			}
		}
		if !math.IsInf(best, 1) {
			entries[i].NearestDistance = math.Round(best*1000) / 1000
			if best < res.ClosestDistance {
				res.ClosestDistance = best
				res.ClosestPair = [2]uint32{uint32(i + 1), entries[i].NearestLabel}
			}
		}
	}
	if math.IsInf(res.ClosestDistance, 1) {
		res.ClosestDistance = 0
	} else {
		res.ClosestDistance = math.Round(res.ClosestDistance*1000) / 1000
	}
	return res
}
