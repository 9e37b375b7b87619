package termgrid

import "strings"

// ansiReset clears all SGR styling.
const ansiReset = "\x1b[0m"

// ANSI renders the grid as terminal output using ANSI SGR escape codes,
// including the border frame when enabled. Styling comes from the "class"
// attribute: recognized tokens map to SGR codes in token order, unknown
// tokens are ignored. Attribute tracking restarts on every line and each
// line ends with a reset, so the output pastes cleanly into any terminal.
func (g *Grid) ANSI() string {
	var b strings.Builder
	for i, line := range g.renderLines() {
		if i > 0 {
			b.WriteString("\n")
		}

		var current Attrs
		tracked := false
		for _, seg := range line {
			if !tracked || !current.Equal(seg.attrs) {
				b.WriteString(ansiReset)
				if codes := classSGRCodes(seg.attrs["class"]); len(codes) > 0 {
					b.WriteString("\x1b[" + strings.Join(codes, ";") + "m")
				}
				current = seg.attrs
				tracked = true
			}
			b.WriteString(seg.text)
		}
		b.WriteString(ansiReset)
	}
	return b.String()
}
