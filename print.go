package termgrid

// Cursor returns the current print cursor position. The cursor starts at
// (0, 0) and is advanced by [Grid.Print], [Grid.Println], and [Grid.Write].
func (g *Grid) Cursor() (row, col int) {
	return g.cursorRow, g.cursorCol
}

// Print writes text at the cursor, growing the grid as needed, and leaves
// the cursor after the last character. A newline moves the cursor to the
// start of the next row without growing the grid; growth happens when the
// next character lands. Optional styles are merged into every printed cell.
func (g *Grid) Print(text string, style ...Style) {
	attrs := combinedAttrs(style)
	for _, r := range text {
		if r == '\n' {
			g.cursorRow++
			g.cursorCol = 0
			continue
		}
		g.growFor(g.cursorRow, g.cursorCol)
		g.chars[g.cursorRow][g.cursorCol] = r
		g.mergeAttrs(g.cursorRow, g.cursorCol, attrs)
		g.cursorCol++
	}
}

// Println writes text at the cursor followed by a newline.
func (g *Grid) Println(text string, style ...Style) {
	g.Print(text, style...)
	g.cursorRow++
	g.cursorCol = 0
}

// growFor expands the grid until (row, col) is addressable.
func (g *Grid) growFor(row, col int) {
	g.growRows(row + 1)
	g.growCols(col + 1)
}

// combinedAttrs merges the attribute maps of multiple styles in order.
func combinedAttrs(styles []Style) Attrs {
	var a Attrs
	for _, s := range styles {
		a = a.merged(s.attrs())
	}
	return a
}
