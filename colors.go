package termgrid

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a named color from the fixed 8-color vocabulary.
// The zero value means "unset" and renders as the terminal/page default.
type Color string

const (
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
	// ColorDefault is the pseudo-color that maps to the ANSI white
	// foreground / black background and to CSS "inherit".
	ColorDefault Color = "default"
)

// colorNames lists the vocabulary in ANSI code order (30..37 / 40..47).
var colorNames = []Color{
	ColorBlack, ColorRed, ColorGreen, ColorYellow,
	ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
}

// colorEntry pairs the ANSI SGR code of a color with its HTML shade.
type colorEntry struct {
	sgr string
	hex string
}

// fgColors maps color names to their foreground SGR code and HTML hex value.
var fgColors = map[Color]colorEntry{
	ColorBlack:   {"30", "#000000"},
	ColorRed:     {"31", "#FF4444"},
	ColorGreen:   {"32", "#44FF44"},
	ColorYellow:  {"33", "#FFFF44"},
	ColorBlue:    {"34", "#4444FF"},
	ColorMagenta: {"35", "#FF44FF"},
	ColorCyan:    {"36", "#44FFFF"},
	ColorWhite:   {"37", "#FFFFFF"},
	ColorDefault: {"37", "inherit"},
}

// bgColors maps color names to their background SGR code and HTML hex value.
// Background shades are darker than their foreground counterparts.
var bgColors = map[Color]colorEntry{
	ColorBlack:   {"40", "#000000"},
	ColorRed:     {"41", "#AA0000"},
	ColorGreen:   {"42", "#00AA00"},
	ColorYellow:  {"43", "#AAAA00"},
	ColorBlue:    {"44", "#0000AA"},
	ColorMagenta: {"45", "#AA00AA"},
	ColorCyan:    {"46", "#00AAAA"},
	ColorWhite:   {"47", "#888888"},
	ColorDefault: {"40", "inherit"},
}

// classSGR maps privileged class tokens to ANSI SGR codes. Tokens outside
// this table carry no meaning for the terminal renderer and are ignored.
var classSGR = map[string]string{
	"ansi-bold":      "1",
	"ansi-dim":       "2",
	"ansi-underline": "4",
}

func init() {
	for _, name := range colorNames {
		classSGR["ansi-"+string(name)] = fgColors[name].sgr
		classSGR["ansi-bg-"+string(name)] = bgColors[name].sgr
	}
}

// classSGRCodes extracts the SGR codes of the privileged tokens in a
// space-separated class value, preserving token order.
func classSGRCodes(classAttr string) []string {
	if classAttr == "" {
		return nil
	}

	var codes []string
	for _, cls := range strings.Fields(classAttr) {
		if code, ok := classSGR[cls]; ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// classStyle is the decoration state carried by the privileged tokens of a
// class value. Empty colors mean "unset".
type classStyle struct {
	fg, bg    Color
	bold      bool
	dim       bool
	underline bool
}

// parseClassStyle folds the privileged tokens of a class value into a
// classStyle. Later tokens win over earlier ones; unknown tokens are ignored.
func parseClassStyle(classAttr string) classStyle {
	var cs classStyle
	for _, cls := range strings.Fields(classAttr) {
		switch {
		case cls == "ansi-bold":
			cs.bold = true
		case cls == "ansi-dim":
			cs.dim = true
		case cls == "ansi-underline":
			cs.underline = true
		case strings.HasPrefix(cls, "ansi-bg-"):
			name := Color(cls[len("ansi-bg-"):])
			if _, ok := bgColors[name]; ok && name != ColorDefault {
				cs.bg = name
			}
		case strings.HasPrefix(cls, "ansi-"):
			name := Color(cls[len("ansi-"):])
			if _, ok := fgColors[name]; ok && name != ColorDefault {
				cs.fg = name
			}
		}
	}
	return cs
}

// parseHexColor converts a "#RRGGBB" string to an RGBA color.
func parseHexColor(hex string) (color.RGBA, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, false
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// CSS returns a stylesheet defining every privileged class, suitable for
// embedding in a page that displays [Grid.HTML] output.
func CSS() string {
	var b strings.Builder

	b.WriteString("/* Privileged ANSI foreground color classes */\n")
	for _, name := range colorNames {
		fmt.Fprintf(&b, ".ansi-%s { color: %s; }\n", name, fgColors[name].hex)
	}

	b.WriteString("\n/* Privileged ANSI background color classes */\n")
	for _, name := range colorNames {
		fmt.Fprintf(&b, ".ansi-bg-%s { background-color: %s; }\n", name, bgColors[name].hex)
	}

	b.WriteString("\n/* Privileged ANSI text style classes */\n")
	b.WriteString(".ansi-bold { font-weight: bold; }\n")
	b.WriteString(".ansi-dim { opacity: 0.5; }\n")
	b.WriteString(".ansi-underline { text-decoration: underline; }\n")

	return b.String()
}
