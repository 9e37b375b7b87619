package termgrid

// Value is the payload accepted by the grid write operations. Exactly three
// kinds exist: [Text] sets characters only, [Attrs] merges attributes only,
// and [StyledText] does both. The closed set makes write dispatch exhaustive
// at compile time.
type Value interface {
	isValue()
}

// Text is a character-only write payload. Writing it never touches the
// attributes of the targeted cells.
type Text string

func (Text) isValue() {}

// StyledText writes characters and merges attributes in one operation,
// text first, then the attribute merge, for every targeted cell.
type StyledText struct {
	Text  string
	Attrs Attrs
}

func (StyledText) isValue() {}

// Styled builds a combined text + attributes payload.
func Styled(text string, attrs Attrs) StyledText {
	return StyledText{Text: text, Attrs: attrs}
}
