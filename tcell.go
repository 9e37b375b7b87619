package termgrid

import "github.com/gdamore/tcell/v2"

// Draw paints the rendered grid onto a tcell screen with its top-left at
// (x, y), border frame included. The caller remains responsible for calling
// Show; cells outside the screen are clipped by tcell itself.
func (g *Grid) Draw(screen tcell.Screen, x, y int) {
	for row, line := range g.renderLines() {
		col := 0
		for _, seg := range line {
			style := tcellStyle(seg.attrs)
			for _, ch := range seg.text {
				screen.SetContent(x+col, y+row, ch, nil, style)
				col++
			}
		}
	}
}

// tcellStyle converts cell attributes into a tcell style. Colors use the
// same hex values as the other renderers.
func tcellStyle(attrs Attrs) tcell.Style {
	style := tcell.StyleDefault
	st := parseClassStyle(attrs["class"])

	if st.fg != "" {
		if c, ok := parseHexColor(fgColors[st.fg].hex); ok {
			style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		}
	}
	if st.bg != "" {
		if c, ok := parseHexColor(bgColors[st.bg].hex); ok {
			style = style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		}
	}
	if st.bold {
		style = style.Bold(true)
	}
	if st.dim {
		style = style.Dim(true)
	}
	if st.underline {
		style = style.Underline(true)
	}

	return style
}
