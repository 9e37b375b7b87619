package termgrid

// DrawText paints text on a single row starting at (row, col). Characters
// falling outside the grid are clipped; the grid never grows. Optional
// styles are merged into every painted cell.
func (g *Grid) DrawText(row, col int, text string, style ...Style) {
	attrs := combinedAttrs(style)
	c := col
	for _, r := range text {
		g.paint(row, c, r, attrs)
		c++
	}
}

// DrawBox paints a rectangle outline of '#' characters between the
// inclusive corners (top, left) and (bottom, right), clipped at the grid
// edges. Without an explicit style the outline is bold yellow.
func (g *Grid) DrawBox(top, left, bottom, right int, style ...Style) {
	if top > bottom || left > right {
		return
	}
	if len(style) == 0 {
		style = []Style{{Fg: ColorYellow, Bold: true}}
	}
	attrs := combinedAttrs(style)

	for c := left; c <= right; c++ {
		g.paint(top, c, '#', attrs)
		g.paint(bottom, c, '#', attrs)
	}
	for r := top + 1; r < bottom; r++ {
		g.paint(r, left, '#', attrs)
		g.paint(r, right, '#', attrs)
	}
}

// paint writes one cell when it lies inside the grid.
func (g *Grid) paint(row, col int, r rune, attrs Attrs) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return
	}
	g.chars[row][col] = r
	g.mergeAttrs(row, col, attrs)
}
