package labelling

import (
	"image/color"
	"math/rand"
)

// makeMask builds a mask from rows where '#' is foreground.
func makeMask(rows ...string) *Mask {
	m := NewMask(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			m.Set(x, y, ch == '#')
		}
	}
	return m
}

// makeRGBA builds an RGBA buffer from rows where '.' is opaque white and
// anything else is opaque black.
func makeRGBA(rows ...string) (int, int, []byte) {
	w, h := len(rows[0]), len(rows)
	pix := make([]byte, w*h*4)
	for y, row := range rows {
		for x, ch := range row {
			o := (y*w + x) * 4
			if ch == '.' {
				pix[o], pix[o+1], pix[o+2] = 255, 255, 255
			}
			pix[o+3] = 255
		}
	}
	return w, h, pix
}

// countComponents is a reference flood fill used to check Label.
func countComponents(m *Mask) int {
	seen := make([]bool, len(m.Pix))
	count := 0
	for start := range m.Pix {
		if m.Pix[start] == Background || seen[start] {
			continue
		}
		count++
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x, y := i%m.Width, i/m.Width
			neighbors := [][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
			for _, n := range neighbors {
				nx, ny := n[0], n[1]
				if nx < 0 || ny < 0 || nx >= m.Width || ny >= m.Height {
					continue
				}
				j := ny*m.Width + nx
				if m.Pix[j] != Background && !seen[j] {
					seen[j] = true
					stack = append(stack, j)
				}
			}
		}
	}
	return count
}

func randomMask(r *rand.Rand, w, h int, density float64) *Mask {
	m := NewMask(w, h)
	for i := range m.Pix {
		if r.Float64() < density {
			m.Pix[i] = Foreground
		}
	}
	return m
}

// scriptedSource returns values from a fixed sequence, cycling.
type scriptedSource struct {
	values []uint8
	next   int
}

func (s *scriptedSource) ByteInRange(min, max uint8) uint8 {
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// counterSource hands out 1, 2, 3, ... wrapping inside [min, max].
type counterSource struct {
	n int
}

func (s *counterSource) ByteInRange(min, max uint8) uint8 {
	s.n++
	span := int(max) - int(min) + 1
	return min + uint8(s.n%span)
}

func pixelAt(pix []byte, w, x, y int) color.RGBA {
	o := (y*w + x) * 4
	return color.RGBA{R: pix[o], G: pix[o+1], B: pix[o+2], A: pix[o+3]}
}
