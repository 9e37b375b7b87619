package termgrid

import "strings"

// Style builds attribute maps from the built-in color and effect
// vocabulary. The zero value means "no styling".
//
// Styles are convenience only; writes accept any [Attrs] directly, and
// unknown attribute keys pass through untouched to the HTML renderer.
type Style struct {
	Fg        Color
	Bg        Color
	Bold      bool
	Dim       bool
	Underline bool

	// Extra adds attributes beyond the computed "class" entry. An Extra
	// "class" value appends to the computed classes instead of replacing
	// them; any other key overwrites.
	Extra Attrs
}

// IsZero reports whether the style carries no styling at all.
func (s Style) IsZero() bool {
	return s.Fg == "" && s.Bg == "" &&
		!s.Bold && !s.Dim && !s.Underline &&
		len(s.Extra) == 0
}

// classes returns the space-joined class tokens for the style.
func (s Style) classes() string {
	var tokens []string
	if s.Fg != "" {
		tokens = append(tokens, "ansi-"+string(s.Fg))
	}
	if s.Bg != "" {
		tokens = append(tokens, "ansi-bg-"+string(s.Bg))
	}
	if s.Bold {
		tokens = append(tokens, "ansi-bold")
	}
	if s.Dim {
		tokens = append(tokens, "ansi-dim")
	}
	if s.Underline {
		tokens = append(tokens, "ansi-underline")
	}
	return strings.Join(tokens, " ")
}

// attrs converts the style into an attribute map, or nil for the zero style.
func (s Style) attrs() Attrs {
	classes := s.classes()
	if classes == "" && len(s.Extra) == 0 {
		return nil
	}

	a := Attrs{}
	if classes != "" {
		a["class"] = classes
	}
	for k, v := range s.Extra {
		if k == "class" && a["class"] != "" {
			a["class"] = a["class"] + " " + v
			continue
		}
		a[k] = v
	}
	return a
}
