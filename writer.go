package termgrid

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// writerState carries ANSI import state between Write calls: the current
// SGR-derived style and any partial escape sequence or rune split across a
// chunk boundary.
type writerState struct {
	pending []byte

	fg        Color
	bg        Color
	bold      bool
	dim       bool
	underline bool

	attrs Attrs
}

// rebuild refreshes the cached attribute map after an SGR change.
func (w *writerState) rebuild() {
	w.attrs = Style{
		Fg:        w.fg,
		Bg:        w.bg,
		Bold:      w.bold,
		Dim:       w.dim,
		Underline: w.underline,
	}.attrs()
}

// Write feeds a chunk of terminal output into the grid at the print cursor,
// implementing io.Writer. Printable text lands like [Grid.Print]; SGR color
// and effect sequences translate into the class vocabulary and style the
// cells they cover. Newline, carriage return, backspace, and tab move the
// cursor; other control bytes and non-SGR escape sequences are consumed and
// dropped. Sequences and runes split across chunks are buffered until the
// next call.
func (g *Grid) Write(p []byte) (int, error) {
	data := p
	if len(g.writer.pending) > 0 {
		data = append(g.writer.pending, p...)
		g.writer.pending = nil
	}

	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == 0x1b:
			n, ok := g.consumeEscape(data[i:])
			if !ok {
				g.writer.pending = append([]byte(nil), data[i:]...)
				return len(p), nil
			}
			i += n
		case b == '\n':
			g.cursorRow++
			g.cursorCol = 0
			i++
		case b == '\r':
			g.cursorCol = 0
			i++
		case b == '\b':
			if g.cursorCol > 0 {
				g.cursorCol--
			}
			i++
		case b == '\t':
			g.cursorCol = (g.cursorCol/8 + 1) * 8
			i++
		case b < 0x20 || b == 0x7f:
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && !utf8.FullRune(data[i:]) {
				g.writer.pending = append([]byte(nil), data[i:]...)
				return len(p), nil
			}
			g.growFor(g.cursorRow, g.cursorCol)
			g.chars[g.cursorRow][g.cursorCol] = r
			g.mergeAttrs(g.cursorRow, g.cursorCol, g.writer.attrs)
			g.cursorCol++
			i += size
		}
	}
	return len(p), nil
}

// WriteString feeds a string of terminal output into the grid.
func (g *Grid) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

// consumeEscape measures one escape sequence at the start of data, applying
// it when it is an SGR. It reports false when the sequence continues past
// the end of data.
func (g *Grid) consumeEscape(data []byte) (int, bool) {
	if len(data) < 2 {
		return 0, false
	}

	switch data[1] {
	case '[':
		for i := 2; i < len(data); i++ {
			if b := data[i]; b >= 0x40 && b <= 0x7e {
				if b == 'm' {
					g.writer.applySGR(string(data[2:i]))
				}
				return i + 1, true
			}
		}
		return 0, false
	case ']':
		// OSC, terminated by BEL or ST
		for i := 2; i < len(data); i++ {
			if data[i] == 0x07 {
				return i + 1, true
			}
			if data[i] == 0x1b && i+1 < len(data) && data[i+1] == '\\' {
				return i + 2, true
			}
		}
		return 0, false
	default:
		// An intermediate byte (0x20-0x2f) carries one final byte after
		// it, as in charset designation with ESC ( B.
		if data[1] >= 0x20 && data[1] <= 0x2f {
			if len(data) < 3 {
				return 0, false
			}
			return 3, true
		}
		return 2, true
	}
}

// applySGR folds an SGR parameter list into the writer style.
func (w *writerState) applySGR(params string) {
	fields := strings.Split(params, ";")
	codes := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			codes = append(codes, 0)
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return
		}
		codes = append(codes, n)
	}

	for i := 0; i < len(codes); i++ {
		switch n := codes[i]; {
		case n == 0:
			w.fg, w.bg = "", ""
			w.bold, w.dim, w.underline = false, false, false
		case n == 1:
			w.bold = true
		case n == 2:
			w.dim = true
		case n == 4:
			w.underline = true
		case n == 22:
			w.bold, w.dim = false, false
		case n == 24:
			w.underline = false
		case n >= 30 && n <= 37:
			w.fg = colorNames[n-30]
		case n == 39:
			w.fg = ""
		case n >= 40 && n <= 47:
			w.bg = colorNames[n-40]
		case n == 49:
			w.bg = ""
		case n == 38 || n == 48:
			// extended color, consumed but not mapped
			if i+1 < len(codes) {
				switch codes[i+1] {
				case 5:
					i += 2
				case 2:
					i += 4
				}
			}
		}
	}

	w.rebuild()
}
