package termgrid

import (
	"fmt"
	"testing"
)

func TestWritePlainText(t *testing.T) {
	g := New()

	n, err := g.WriteString("hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes consumed, got %d", n)
	}
	if g.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", g.String())
	}

	row, col := g.Cursor()
	if row != 0 || col != 5 {
		t.Errorf("expected cursor at (0, 5), got (%d, %d)", row, col)
	}
}

func TestWriteTranslatesSGRToClasses(t *testing.T) {
	g := New()

	g.WriteString("\x1b[31mred\x1b[0m plain")

	if g.String() != "red plain" {
		t.Errorf("expected %q, got %q", "red plain", g.String())
	}

	_, attrs, _ := g.Cell(0, 0)
	if attrs["class"] != "ansi-red" {
		t.Errorf("expected ansi-red, got %v", attrs)
	}
	_, attrs, _ = g.Cell(0, 4)
	if len(attrs) != 0 {
		t.Errorf("expected unstyled cell after reset, got %v", attrs)
	}
}

func TestWriteSGRCombinations(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"\x1b[1;4mx", "ansi-bold ansi-underline"},
		{"\x1b[42mx", "ansi-bg-green"},
		{"\x1b[35;43;2mx", "ansi-magenta ansi-bg-yellow ansi-dim"},
		{"\x1b[mx", ""},
	}

	for _, tt := range tests {
		g := New()
		g.WriteString(tt.input)

		_, attrs, _ := g.Cell(0, 0)
		if attrs["class"] != tt.expected {
			t.Errorf("%q: expected class %q, got %q", tt.input, tt.expected, attrs["class"])
		}
	}
}

func TestWriteDefaultColorCodes(t *testing.T) {
	g := New()

	g.WriteString("\x1b[31;41mx\x1b[39;49my")

	_, attrs, _ := g.Cell(0, 1)
	if len(attrs) != 0 {
		t.Errorf("expected 39/49 to clear colors, got %v", attrs)
	}
}

func TestWriteEffectOffCodes(t *testing.T) {
	g := New()

	g.WriteString("\x1b[1;2;4mx\x1b[22;24my")

	_, attrs, _ := g.Cell(0, 1)
	if len(attrs) != 0 {
		t.Errorf("expected 22/24 to clear effects, got %v", attrs)
	}
}

func TestWriteExtendedColorConsumed(t *testing.T) {
	// 256-color and RGB colors have no class mapping, but their arguments
	// must not be misread as standalone codes.
	for _, input := range []string{"\x1b[38;5;196mx", "\x1b[38;2;255;0;0mx", "\x1b[48;5;21mx"} {
		g := New()
		g.WriteString(input)

		_, attrs, _ := g.Cell(0, 0)
		if len(attrs) != 0 {
			t.Errorf("%q: expected no attrs, got %v", input, attrs)
		}
	}
}

func TestWriteCursorControls(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ab\rc", "cb"},
		{"ab\bc", "ac"},
		{"a\nb", "a\nb"},
		{"a\tb", "a       b"},
	}

	for _, tt := range tests {
		g := New()
		g.WriteString(tt.input)

		if got := g.String(); got != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestWriteSplitEscapeAcrossChunks(t *testing.T) {
	g := New()

	n, err := g.Write([]byte("\x1b[3"))
	if err != nil || n != 3 {
		t.Fatalf("expected (3, nil), got (%d, %v)", n, err)
	}
	g.Write([]byte("1mx"))

	if g.String() != "x" {
		t.Errorf("expected %q, got %q", "x", g.String())
	}
	_, attrs, _ := g.Cell(0, 0)
	if attrs["class"] != "ansi-red" {
		t.Errorf("expected reassembled SGR, got %v", attrs)
	}
}

func TestWriteSplitRuneAcrossChunks(t *testing.T) {
	g := New()

	full := []byte("héy")
	g.Write(full[:2]) // 'h' plus the first byte of 'é'
	g.Write(full[2:])

	if g.String() != "héy" {
		t.Errorf("expected %q, got %q", "héy", g.String())
	}
}

func TestWriteSkipsOSC(t *testing.T) {
	tests := []string{
		"\x1b]0;window title\x07x",
		"\x1b]0;window title\x1b\\x",
	}

	for _, input := range tests {
		g := New()
		g.WriteString(input)

		if g.String() != "x" {
			t.Errorf("%q: expected %q, got %q", input, "x", g.String())
		}
	}
}

func TestWriteSkipsNonSGRSequences(t *testing.T) {
	g := New()

	g.WriteString("\x1b[2J\x1b[Hx\x1b(By")

	if g.String() != "xy" {
		t.Errorf("expected control sequences dropped, got %q", g.String())
	}
}

func TestWriteMergesIntoExistingAttrs(t *testing.T) {
	g := New(WithSize(3, 1))
	g.SetCell(0, 0, Attrs{"data-x": "1"})

	g.WriteString("\x1b[31ma")

	ch, attrs, _ := g.Cell(0, 0)
	if ch != 'a' {
		t.Errorf("expected 'a', got %q", ch)
	}
	if attrs["class"] != "ansi-red" || attrs["data-x"] != "1" {
		t.Errorf("expected merged attrs, got %v", attrs)
	}
}

func TestWriteWideCharacters(t *testing.T) {
	g := New()

	g.WriteString("日本")

	if g.String() != "日本" {
		t.Errorf("expected %q, got %q", "日本", g.String())
	}
	if g.Width() != 2 {
		t.Errorf("expected one cell per rune, got width %d", g.Width())
	}
}

func TestWriteCapturePipeline(t *testing.T) {
	g := New()

	// Simulated line-oriented command output.
	for i, name := range []string{"api", "worker", "cron"} {
		fmt.Fprintf(g, "%-8s \x1b[32mok\x1b[0m %d\n", name, i)
	}

	if g.Height() != 3 {
		t.Errorf("expected 3 rows, got %d", g.Height())
	}
	matches := g.Find("ok")
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	_, attrs, _ := g.Cell(matches[0].Row, matches[0].Col)
	if attrs["class"] != "ansi-green" {
		t.Errorf("expected green status, got %v", attrs)
	}
}
