package termgrid

import "github.com/unilibs/uniwidth"

// StringWidth returns the display width of a string (sum of rune widths,
// counting CJK and emoji as 2 columns). Used to fit titles into the top border.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
