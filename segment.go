package termgrid

import "strings"

// segment is a run of identically attributed characters within one rendered
// line. Renderers consume segments instead of raw cells so that styling is
// emitted once per run, not once per character.
type segment struct {
	text  string
	attrs Attrs
}

// appendSegment adds text with the given attrs to a line, extending the last
// segment when the attributes match.
func appendSegment(segs []segment, text string, attrs Attrs) []segment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].attrs.Equal(attrs) {
		segs[n-1].text += text
		return segs
	}
	return append(segs, segment{text: text, attrs: attrs})
}

// rowSegments coalesces one content row into attribute runs.
func (g *Grid) rowSegments(row int) []segment {
	var segs []segment
	var run []rune
	var current Attrs

	for col := 0; col < g.width; col++ {
		attrs := g.attrs[row][col]
		if col > 0 && !current.Equal(attrs) {
			segs = append(segs, segment{text: string(run), attrs: current})
			run = run[:0]
		}
		current = attrs
		run = append(run, g.chars[row][col])
	}
	if len(run) > 0 {
		segs = append(segs, segment{text: string(run), attrs: current})
	}
	return segs
}

// renderLines assembles the full frame as segment lines: the content rows,
// wrapped in border and padding when the border is enabled. Border and
// padding text carries the border attributes; adjacent runs with equal
// attributes are merged across the content boundary.
func (g *Grid) renderLines() [][]segment {
	if !g.border {
		lines := make([][]segment, g.height)
		for row := 0; row < g.height; row++ {
			lines[row] = g.rowSegments(row)
		}
		return lines
	}

	inner := g.width + 2*g.borderPadding
	pad := strings.Repeat(" ", g.borderPadding)
	blank := []segment{{text: "│" + strings.Repeat(" ", inner) + "│", attrs: g.borderAttrs}}

	lines := make([][]segment, 0, g.height+2*g.borderPadding+2)
	lines = append(lines, []segment{{text: g.topBorder(inner), attrs: g.borderAttrs}})
	for i := 0; i < g.borderPadding; i++ {
		lines = append(lines, blank)
	}
	for row := 0; row < g.height; row++ {
		line := appendSegment(nil, "│"+pad, g.borderAttrs)
		for _, seg := range g.rowSegments(row) {
			line = appendSegment(line, seg.text, seg.attrs)
		}
		line = appendSegment(line, pad+"│", g.borderAttrs)
		lines = append(lines, line)
	}
	for i := 0; i < g.borderPadding; i++ {
		lines = append(lines, blank)
	}
	lines = append(lines, []segment{{text: "╰" + strings.Repeat("─", inner) + "╯", attrs: g.borderAttrs}})

	return lines
}

// topBorder builds the top border line, inlining the title when set.
// fitTitle keeps the width invariant that the dash count never goes
// negative.
func (g *Grid) topBorder(inner int) string {
	if g.title == "" {
		return "╭" + strings.Repeat("─", inner) + "╮"
	}
	return "╭─ " + g.title + " " + strings.Repeat("─", inner-StringWidth(g.title)-3) + "╮"
}

// renderedSize returns the rendered frame dimensions in cells, including
// border and padding when enabled.
func (g *Grid) renderedSize() (cols, rows int) {
	if !g.border {
		return g.width, g.height
	}
	return g.width + 2*g.borderPadding + 2, g.height + 2*g.borderPadding + 2
}
