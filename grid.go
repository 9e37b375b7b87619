package termgrid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIndexOutOfRange reports an integer row or column address outside
	// the current grid bounds.
	ErrIndexOutOfRange = errors.New("termgrid: index out of range")
	// ErrInvalidValue reports a write payload that is not one of the
	// [Value] kinds.
	ErrInvalidValue = errors.New("termgrid: invalid value")
)

const (
	// DEFAULT_FILL is the character used for vacant and newly grown cells.
	DEFAULT_FILL = ' '
	// DEFAULT_BORDER_PADDING is the blank space between content and border.
	DEFAULT_BORDER_PADDING = 1
)

// Grid is a 2-D monospace character grid. Every cell holds one rune and an
// attribute map; both stores are dense and always rectangular. The optional
// border, padding, and title are applied at render time only and never shift
// the coordinate system: (0, 0) always addresses the first content cell.
//
// A Grid is not safe for concurrent mutation; callers serialize access or
// use independent instances.
type Grid struct {
	width  int
	height int
	fill   rune

	chars [][]rune
	attrs [][]Attrs

	border        bool
	borderPadding int
	borderAttrs   Attrs
	title         string

	// Print cursor. Advanced only by Print/Println and Write.
	cursorRow int
	cursorCol int

	// Carry-over state for the ANSI import (Write).
	writer writerState
}

// Option configures a Grid during construction.
type Option func(*Grid)

// WithSize sets the grid dimensions. Negative values are treated as zero.
// A zero dimension (the default) yields an auto-expanding grid grown
// lazily by the print operations.
func WithSize(width, height int) Option {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return func(g *Grid) {
		g.width = width
		g.height = height
	}
}

// WithFill sets the character used for vacant and newly grown cells.
// Defaults to a space.
func WithFill(r rune) Option {
	return func(g *Grid) {
		g.fill = r
	}
}

// WithBorder enables the rounded border drawn around the content at render
// time. The border never affects cell addressing.
func WithBorder() Option {
	return func(g *Grid) {
		g.border = true
	}
}

// WithBorderPadding sets the blank space between content and border.
// Negative values are treated as zero. Defaults to 1. Only visible when the
// border is enabled.
func WithBorderPadding(n int) Option {
	if n < 0 {
		n = 0
	}

	return func(g *Grid) {
		g.borderPadding = n
	}
}

// WithBorderAttrs sets the attribute map applied to the border and padding
// when rendering. Defaults to no styling.
func WithBorderAttrs(attrs Attrs) Option {
	return func(g *Grid) {
		g.borderAttrs = attrs.Clone()
	}
}

// WithTitle sets the title shown inline in the top border. Has no effect
// without a border. When the border is enabled, the grid width grows as
// needed to fit the title (see [Grid.SetTitle]).
func WithTitle(s string) Option {
	return func(g *Grid) {
		g.title = s
	}
}

// New creates a grid with the given options. Defaults to a 0x0
// auto-expanding grid filled with spaces, no border, no title.
func New(opts ...Option) *Grid {
	g := &Grid{
		fill:          DEFAULT_FILL,
		borderPadding: DEFAULT_BORDER_PADDING,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.chars = make([][]rune, g.height)
	g.attrs = make([][]Attrs, g.height)
	for row := range g.chars {
		g.chars[row] = g.newCharRow(g.width)
		g.attrs[row] = make([]Attrs, g.width)
	}

	g.fitTitle()

	return g
}

// newCharRow allocates a row of n fill characters.
func (g *Grid) newCharRow(n int) []rune {
	row := make([]rune, n)
	for i := range row {
		row[i] = g.fill
	}
	return row
}

// Width returns the content width in columns. Border and padding are not
// included.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the content height in rows.
func (g *Grid) Height() int {
	return g.height
}

// Title returns the border title.
func (g *Grid) Title() string {
	return g.title
}

// SetTitle changes the border title. With a border enabled, the grid width
// grows (never shrinks) until the inline top border fits the new title.
func (g *Grid) SetTitle(s string) {
	g.title = s
	g.fitTitle()
}

// fitTitle grows the content width until `corner + dash + " title " + dash +
// corner` fits on the top border line. Display width is used, so wide
// characters in the title count as two columns.
func (g *Grid) fitTitle() {
	if !g.border || g.title == "" {
		return
	}

	min := StringWidth(g.title) + 4 - 2*g.borderPadding
	if g.width < min {
		g.growCols(min)
	}
}

// --- Bounds & Growth ---

// rowIndex resolves an integer row address, wrapping a negative index once.
func (g *Grid) rowIndex(row int) (int, error) {
	r, ok := wrapIndex(row, g.height)
	if !ok {
		return 0, fmt.Errorf("%w: row %d (height %d)", ErrIndexOutOfRange, row, g.height)
	}
	return r, nil
}

// colIndex resolves an integer column address, wrapping a negative index once.
func (g *Grid) colIndex(col int) (int, error) {
	c, ok := wrapIndex(col, g.width)
	if !ok {
		return 0, fmt.Errorf("%w: col %d (width %d)", ErrIndexOutOfRange, col, g.width)
	}
	return c, nil
}

// growRows appends rows until the grid is at least min rows tall.
// New cells hold the fill character and no attributes.
func (g *Grid) growRows(min int) {
	if min <= g.height {
		return
	}

	for row := g.height; row < min; row++ {
		g.chars = append(g.chars, g.newCharRow(g.width))
		g.attrs = append(g.attrs, make([]Attrs, g.width))
	}
	g.height = min
}

// growCols widens every row to at least min columns, keeping the grid
// rectangular. New cells hold the fill character and no attributes.
func (g *Grid) growCols(min int) {
	if min <= g.width {
		return
	}

	for row := range g.chars {
		chars := make([]rune, min)
		copy(chars, g.chars[row])
		for col := g.width; col < min; col++ {
			chars[col] = g.fill
		}
		g.chars[row] = chars

		attrs := make([]Attrs, min)
		copy(attrs, g.attrs[row])
		g.attrs[row] = attrs
	}
	g.width = min
}

// Resize changes the grid dimensions, preserving content at the top-left.
// Shrinking drops bottom/right cells; growing adds fill cells. The print
// cursor is clamped into the new bounds, and a bordered grid re-grows as
// needed to keep its title fitting. Negative dimensions are ignored.
func (g *Grid) Resize(width, height int) {
	if width < 0 || height < 0 {
		return
	}

	chars := make([][]rune, height)
	attrs := make([][]Attrs, height)
	for row := 0; row < height; row++ {
		chars[row] = g.newCharRow(width)
		attrs[row] = make([]Attrs, width)
		if row < g.height {
			copy(chars[row], g.chars[row][:minInt(width, g.width)])
			copy(attrs[row], g.attrs[row][:minInt(width, g.width)])
		}
	}

	g.chars = chars
	g.attrs = attrs
	g.width = width
	g.height = height

	g.cursorRow = clamp(g.cursorRow, 0, maxInt(height-1, 0))
	g.cursorCol = clamp(g.cursorCol, 0, maxInt(width-1, 0))

	g.fitTitle()
}

// Clear resets every cell to the fill character with no attributes.
// The print cursor is not moved.
func (g *Grid) Clear() {
	for row := 0; row < g.height; row++ {
		g.clearRow(row)
	}
}

// ClearRow resets all cells in one row to the fill character with no
// attributes.
func (g *Grid) ClearRow(row int) error {
	r, err := g.rowIndex(row)
	if err != nil {
		return err
	}
	g.clearRow(r)
	return nil
}

func (g *Grid) clearRow(row int) {
	for col := 0; col < g.width; col++ {
		g.chars[row][col] = g.fill
		g.attrs[row][col] = nil
	}
}

// --- Reads ---

// Cell returns the character and a copy of the attributes at (row, col).
func (g *Grid) Cell(row, col int) (rune, Attrs, error) {
	r, err := g.rowIndex(row)
	if err != nil {
		return 0, nil, err
	}
	c, err := g.colIndex(col)
	if err != nil {
		return 0, nil, err
	}
	return g.chars[r][c], g.attrs[r][c].Clone(), nil
}

// Row returns the characters and attribute copies of an entire row.
func (g *Grid) Row(row int) (string, []Attrs, error) {
	return g.RowRange(row, All())
}

// RowRange returns the characters and attribute copies of a column span
// within one row.
func (g *Grid) RowRange(row int, cols Span) (string, []Attrs, error) {
	r, err := g.rowIndex(row)
	if err != nil {
		return "", nil, err
	}

	lo, hi := cols.bounds(g.width)
	chars := make([]rune, 0, hi-lo)
	attrs := make([]Attrs, 0, hi-lo)
	for c := lo; c < hi; c++ {
		chars = append(chars, g.chars[r][c])
		attrs = append(attrs, g.attrs[r][c].Clone())
	}
	return string(chars), attrs, nil
}

// Col returns the characters and attribute copies of an entire column,
// top to bottom.
func (g *Grid) Col(col int) (string, []Attrs, error) {
	return g.ColRange(All(), col)
}

// ColRange returns the characters and attribute copies of a row span within
// one column, top to bottom.
func (g *Grid) ColRange(rows Span, col int) (string, []Attrs, error) {
	c, err := g.colIndex(col)
	if err != nil {
		return "", nil, err
	}

	lo, hi := rows.bounds(g.height)
	chars := make([]rune, 0, hi-lo)
	attrs := make([]Attrs, 0, hi-lo)
	for r := lo; r < hi; r++ {
		chars = append(chars, g.chars[r][c])
		attrs = append(attrs, g.attrs[r][c].Clone())
	}
	return string(chars), attrs, nil
}

// Region returns the characters (one string per row) and attribute copies of
// a rectangular region. Spans clamp, so Region cannot fail.
func (g *Grid) Region(rows, cols Span) ([]string, [][]Attrs) {
	rlo, rhi := rows.bounds(g.height)
	clo, chi := cols.bounds(g.width)

	chars := make([]string, 0, rhi-rlo)
	attrs := make([][]Attrs, 0, rhi-rlo)
	for r := rlo; r < rhi; r++ {
		rowChars := make([]rune, 0, chi-clo)
		rowAttrs := make([]Attrs, 0, chi-clo)
		for c := clo; c < chi; c++ {
			rowChars = append(rowChars, g.chars[r][c])
			rowAttrs = append(rowAttrs, g.attrs[r][c].Clone())
		}
		chars = append(chars, string(rowChars))
		attrs = append(attrs, rowAttrs)
	}
	return chars, attrs
}

// --- Writes ---

// SetCell writes a single cell. A [Text] payload keeps only its first
// character; an empty one writes a plain space.
func (g *Grid) SetCell(row, col int, v Value) error {
	r, err := g.rowIndex(row)
	if err != nil {
		return err
	}
	c, err := g.colIndex(col)
	if err != nil {
		return err
	}

	switch val := v.(type) {
	case Text:
		g.chars[r][c] = firstRune(string(val))
	case Attrs:
		g.mergeAttrs(r, c, val)
	case StyledText:
		g.chars[r][c] = firstRune(val.Text)
		g.mergeAttrs(r, c, val.Attrs)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidValue, v)
	}
	return nil
}

// SetRow writes an entire row. Text cycles across the row; attributes merge
// into every cell.
func (g *Grid) SetRow(row int, v Value) error {
	return g.SetRowRange(row, All(), v)
}

// SetRowRange writes a column span within one row.
func (g *Grid) SetRowRange(row int, cols Span, v Value) error {
	r, err := g.rowIndex(row)
	if err != nil {
		return err
	}

	lo, hi := cols.bounds(g.width)
	cells := make([]Position, 0, hi-lo)
	for c := lo; c < hi; c++ {
		cells = append(cells, Position{Row: r, Col: c})
	}
	return g.setCells(cells, v)
}

// SetCol writes an entire column, top to bottom.
func (g *Grid) SetCol(col int, v Value) error {
	return g.SetColRange(All(), col, v)
}

// SetColRange writes a row span within one column, top to bottom.
func (g *Grid) SetColRange(rows Span, col int, v Value) error {
	c, err := g.colIndex(col)
	if err != nil {
		return err
	}

	lo, hi := rows.bounds(g.height)
	cells := make([]Position, 0, hi-lo)
	for r := lo; r < hi; r++ {
		cells = append(cells, Position{Row: r, Col: c})
	}
	return g.setCells(cells, v)
}

// SetRegion writes a rectangular region in row-major order. Spans clamp, so
// the only possible error is an invalid payload.
func (g *Grid) SetRegion(rows, cols Span, v Value) error {
	rlo, rhi := rows.bounds(g.height)
	clo, chi := cols.bounds(g.width)

	cells := make([]Position, 0, (rhi-rlo)*(chi-clo))
	for r := rlo; r < rhi; r++ {
		for c := clo; c < chi; c++ {
			cells = append(cells, Position{Row: r, Col: c})
		}
	}
	return g.setCells(cells, v)
}

// setCells applies a write payload to a list of target cells.
func (g *Grid) setCells(cells []Position, v Value) error {
	switch val := v.(type) {
	case Text:
		g.broadcastText(cells, string(val))
	case Attrs:
		for _, p := range cells {
			g.mergeAttrs(p.Row, p.Col, val)
		}
	case StyledText:
		g.broadcastText(cells, val.Text)
		for _, p := range cells {
			g.mergeAttrs(p.Row, p.Col, val.Attrs)
		}
	default:
		return fmt.Errorf("%w: %T", ErrInvalidValue, v)
	}
	return nil
}

// broadcastText writes text across the target cells in order, repeating it
// cyclically when shorter than the target. Empty text broadcasts the fill
// character.
func (g *Grid) broadcastText(cells []Position, text string) {
	if text == "" {
		for _, p := range cells {
			g.chars[p.Row][p.Col] = g.fill
		}
		return
	}

	runes := []rune(text)
	for i, p := range cells {
		g.chars[p.Row][p.Col] = runes[i%len(runes)]
	}
}

// mergeAttrs layers attrs onto one cell, copying so callers cannot alias
// grid-internal state.
func (g *Grid) mergeAttrs(row, col int, attrs Attrs) {
	if len(attrs) == 0 {
		return
	}
	g.attrs[row][col] = g.attrs[row][col].merged(attrs)
}

// firstRune returns the first rune of s, or a space when s is empty.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// --- Convenience Methods ---

// String returns the plain character content, rows joined by newlines,
// without styling or border. Implements fmt.Stringer.
func (g *Grid) String() string {
	rows := make([]string, g.height)
	for row := 0; row < g.height; row++ {
		rows[row] = string(g.chars[row])
	}
	return strings.Join(rows, "\n")
}

// Find returns the positions of every occurrence of text in the grid
// content, scanning rows left to right, top to bottom. Matches do not span
// rows.
func (g *Grid) Find(text string) []Position {
	if text == "" {
		return nil
	}

	var positions []Position
	needle := []rune(text)
	for row := 0; row < g.height; row++ {
		line := g.chars[row]
		for col := 0; col+len(needle) <= len(line); col++ {
			match := true
			for i, r := range needle {
				if line[col+i] != r {
					match = false
					break
				}
			}
			if match {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// Position identifies a cell location in the grid (0-based).
type Position struct {
	Row int
	Col int
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
