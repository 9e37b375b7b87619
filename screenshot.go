package termgrid

import (
	"image"
	"image/color"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how the grid is rendered to an image.
type ScreenshotConfig struct {
	// Font face to use for rendering. If nil and FontBytes is empty, uses
	// basicfont.Face7x13.
	Font font.Face

	// FontBytes is raw TrueType or OpenType data, loaded at FontSize when
	// Font is nil.
	FontBytes []byte

	// FontSize is the font size when loading FontBytes. Default 14.
	FontSize float64

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// Background is the default background color. If nil, black.
	Background *color.RGBA

	// Foreground is the default foreground color. If nil, white.
	Foreground *color.RGBA
}

var (
	screenshotBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	screenshotForeground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return face, nil
}

// Screenshot renders the grid to an RGBA image using default settings
// (basicfont, black background, white foreground).
func (g *Grid) Screenshot() *image.RGBA {
	return g.ScreenshotWithConfig(&ScreenshotConfig{})
}

// ScreenshotWithConfig renders the grid to an RGBA image with custom font
// and color settings. The border frame is included when enabled. Cell
// styling follows the class vocabulary: named colors use the same hex
// values as [CSS], dim darkens the foreground, bold double-strikes the
// glyph, and underline draws a line below the baseline. Unknown classes and
// non-class attributes are ignored.
func (g *Grid) ScreenshotWithConfig(cfg *ScreenshotConfig) *image.RGBA {
	face := cfg.Font
	if face == nil && len(cfg.FontBytes) > 0 {
		size := cfg.FontSize
		if size == 0 {
			size = 14
		}
		if loaded, err := LoadFontFromBytes(cfg.FontBytes, size); err == nil {
			face = loaded
		}
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	cellWidth := cfg.CellWidth
	cellHeight := cfg.CellHeight
	metrics := face.Metrics()
	if cellWidth == 0 {
		// Measure a character to get width
		adv, _ := face.GlyphAdvance('M')
		cellWidth = adv.Ceil()
		if cellWidth == 0 {
			cellWidth = 7 // fallback for basicfont
		}
	}
	if cellHeight == 0 {
		cellHeight = metrics.Height.Ceil()
	}

	defaultBG := screenshotBackground
	if cfg.Background != nil {
		defaultBG = *cfg.Background
	}
	defaultFG := screenshotForeground
	if cfg.Foreground != nil {
		defaultFG = *cfg.Foreground
	}

	cols, rows := g.renderedSize()
	imgWidth := cols * cellWidth
	imgHeight := rows * cellHeight
	img := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))

	// Fill background
	for y := 0; y < imgHeight; y++ {
		for x := 0; x < imgWidth; x++ {
			img.Set(x, y, defaultBG)
		}
	}

	// Render each cell
	for row, line := range g.renderLines() {
		col := 0
		for _, seg := range line {
			st := parseClassStyle(seg.attrs["class"])
			fg, bg := styleColors(st, defaultFG, defaultBG)

			for _, ch := range seg.text {
				x := col * cellWidth
				y := row * cellHeight
				col++

				// Fill cell background
				for py := 0; py < cellHeight; py++ {
					for px := 0; px < cellWidth; px++ {
						img.Set(x+px, y+py, bg)
					}
				}

				baseline := y + metrics.Ascent.Ceil()

				if ch != ' ' {
					d := &font.Drawer{
						Dst:  img,
						Src:  image.NewUniform(fg),
						Face: face,
						Dot:  fixed.P(x, baseline),
					}
					d.DrawString(string(ch))

					if st.bold {
						// Double-strike one pixel over
						d.Dot = fixed.P(x+1, baseline)
						d.DrawString(string(ch))
					}
				}

				if st.underline {
					underlineY := baseline + 2
					for px := 0; px < cellWidth; px++ {
						if underlineY < imgHeight {
							img.Set(x+px, underlineY, fg)
						}
					}
				}
			}
		}
	}

	return img
}

// styleColors resolves a class style into concrete cell colors.
func styleColors(st classStyle, defaultFG, defaultBG color.RGBA) (fg, bg color.RGBA) {
	fg = defaultFG
	if st.fg != "" {
		if c, ok := parseHexColor(fgColors[st.fg].hex); ok {
			fg = c
		}
	}

	bg = defaultBG
	if st.bg != "" {
		if c, ok := parseHexColor(bgColors[st.bg].hex); ok {
			bg = c
		}
	}

	if st.dim {
		fg = color.RGBA{
			R: uint8(float64(fg.R) * 0.66),
			G: uint8(float64(fg.G) * 0.66),
			B: uint8(float64(fg.B) * 0.66),
			A: fg.A,
		}
	}

	return fg, bg
}
