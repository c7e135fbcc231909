package labelling

// Label assigns a label to every foreground pixel of mask so that pixels
// joined by a path of North/South/East/West foreground neighbors share a
// label. Diagonal neighbors are not connected.
//
// # Algorithm
//
// The first pass scans in row-major order and gives each foreground pixel
// the provisional label of its West or North neighbor, or a fresh one when
// neither is foreground. When West and North carry different provisional
// labels the two classes are merged in a union-find arena indexed by
// provisional label.
//
// The second pass renumbers class roots densely. A root is always the
// smallest provisional label of its class, and provisional labels grow in
// scan order, so the blob encountered first gets label 1.
//
// Time is O(W·H); extra space is one uint32 per provisional label.
func Label(mask *Mask) *LabelRaster {
	w, h := mask.Width, mask.Height
	out := &LabelRaster{Width: w, Height: h, Pix: make([]uint32, w*h)}

	// parent[0] is unused so provisional labels index the arena directly.
	parent := []uint32{0}

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			if mask.Pix[i] == Background {
				continue
			}

			var west, north uint32
			if x > 0 {
				west = out.Pix[i-1]
			}
			if y > 0 {
				north = out.Pix[i-w]
			}

			switch {
			case west == 0 && north == 0:
				next := uint32(len(parent))
				parent = append(parent, next)
				out.Pix[i] = next
			case west == 0:
				out.Pix[i] = north
			case north == 0 || west == north:
				out.Pix[i] = west
			default:
				out.Pix[i] = west
				union(parent, west, north)
			}
		}
	}

	if len(parent) == 1 {
		return out
	}

	final := make([]uint32, len(parent))
	var count uint32
	for p := uint32(1); p < uint32(len(parent)); p++ {
		r := find(parent, p)
		if r == p {
			count++
			final[p] = count
		} else {
			final[p] = final[r]
		}
	}

	for i, v := range out.Pix {
		if v != 0 {
			out.Pix[i] = final[v]
		}
	}
	out.Count = int(count)
	return out
}

// find returns the root of x, halving the path as it goes.
func find(parent []uint32, x uint32) uint32 {
	for parent[x] != x {
		parent[x] = parent[parent[x]]
		x = parent[x]
	}
	return x
}

// union merges the classes of a and b under the smaller root.
func union(parent []uint32, a, b uint32) {
	ra, rb := find(parent, a), find(parent, b)
	switch {
	case ra < rb:
		parent[rb] = ra
	case rb < ra:
		parent[ra] = rb
	}
}
