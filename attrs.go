package termgrid

import "maps"

// Attrs is a per-cell attribute map. The "class" key carries space-separated
// style tokens; privileged ansi-* tokens are understood by every renderer,
// anything else passes through to HTML output verbatim.
//
// Attrs is also a write payload: assigning it to a cell range merges the
// entries into each targeted cell without touching characters.
type Attrs map[string]string

func (Attrs) isValue() {}

// Clone returns an independent copy. Clone of a nil map is nil.
func (a Attrs) Clone() Attrs {
	return maps.Clone(a)
}

// Equal reports whether both maps hold the same entries.
// A nil map equals an empty one.
func (a Attrs) Equal(other Attrs) bool {
	return maps.Equal(a, other)
}

// merged returns a copy of a with the entries of other layered on top.
// New keys overwrite same-named existing keys; untouched keys are preserved.
func (a Attrs) merged(other Attrs) Attrs {
	if len(other) == 0 {
		return a
	}

	out := make(Attrs, len(a)+len(other))
	maps.Copy(out, a)
	maps.Copy(out, other)
	return out
}
