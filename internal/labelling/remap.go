package labelling

// Remap renders labels as an RGBA buffer using table. The table must already
// cover labels.Count; Finder guarantees this by calling EnsureCapacity first.
func Remap(labels *LabelRaster, table *ColorTable) []byte {
	out := make([]byte, len(labels.Pix)*4)
	for i, v := range labels.Pix {
		if v == 0 {
			continue
		}
		c := table.Lookup(v)
		o := i * 4
		out[o], out[o+1], out[o+2], out[o+3] = c.R, c.G, c.B, c.A
	}
	return out
}
