package termgrid

import (
	"fmt"
	"sort"
	"strings"
)

// preStyle is the inline stylesheet of the wrapping <pre> element. The
// background color slot is filled from [HTMLConfig].
const preStyle = "font-family: Consolas, 'Courier New', monospace; " +
	"font-size: 14px; line-height: 1.1; background-color: %s; " +
	"color: #FFFFFF; padding: 10px; border: 2px solid #555; " +
	"box-shadow: 0 0 10px rgba(0, 255, 0, 0.5); white-space: pre; " +
	"display: inline-block;"

// HTMLConfig customizes the HTML renderer.
type HTMLConfig struct {
	// Background is the CSS background color of the wrapping <pre>.
	// Empty means #000000.
	Background string
}

var (
	htmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	htmlAttrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
)

// HTML renders the grid as a styled <pre> block with default settings.
func (g *Grid) HTML() string {
	return g.HTMLWithConfig(nil)
}

// HTMLWithConfig renders the grid as a styled <pre> block. Each attributed
// run becomes one <span> carrying every cell attribute verbatim, keys
// sorted, so custom attributes (data-*, hx-*) survive into the markup.
// Unstyled runs stay bare text. Spans never cross line breaks. A nil config
// uses defaults.
func (g *Grid) HTMLWithConfig(config *HTMLConfig) string {
	background := "#000000"
	if config != nil && config.Background != "" {
		background = config.Background
	}

	var b strings.Builder
	b.WriteString(`<pre style="`)
	fmt.Fprintf(&b, preStyle, background)
	b.WriteString(`">`)

	for i, line := range g.renderLines() {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, seg := range line {
			if len(seg.attrs) == 0 {
				b.WriteString(htmlTextEscaper.Replace(seg.text))
				continue
			}
			b.WriteString("<span " + htmlAttrs(seg.attrs) + ">")
			b.WriteString(htmlTextEscaper.Replace(seg.text))
			b.WriteString("</span>")
		}
	}

	b.WriteString("</pre>")
	return b.String()
}

// htmlAttrs serializes an attribute map as `k="v"` pairs in key order.
// Values are escaped; keys are trusted.
func htmlAttrs(attrs Attrs) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+`="`+htmlAttrEscaper.Replace(attrs[k])+`"`)
	}
	return strings.Join(parts, " ")
}
