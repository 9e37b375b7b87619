// Package termgrid provides a styleable 2-D character grid with terminal,
// HTML, image, and tcell renderers.
//
// The grid is a plain in-memory surface: characters plus per-cell attribute
// maps, no emulation and no display. That makes it useful for:
//   - Rendering colored terminal output without cursor gymnastics
//   - Serving terminal-styled widgets in web pages (the HTML keeps
//     arbitrary attributes, so htmx/data-* wiring survives)
//   - Converting captured ANSI output to HTML or PNG
//   - Drawing dashboard panels in tcell applications
//   - Asserting on screen layouts in tests
//
// # Quick Start
//
// Create a grid, write to it, render it:
//
//	grid := termgrid.New(termgrid.WithSize(20, 5))
//	grid.SetRow(0, termgrid.Styled("Hello", termgrid.Attrs{"class": "ansi-green ansi-bold"}))
//	grid.SetRegion(termgrid.Range(1, 3), termgrid.All(), termgrid.Text("."))
//	fmt.Println(grid.ANSI())
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Grid]: The character surface with addressing, printing, and renderers
//   - [Value]: The write payload, one of [Text], [Attrs], or [StyledText]
//   - [Span]: A half-open row or column range with negative indexing
//   - [Style]: A helper that builds attribute maps from the color vocabulary
//
// # Addressing
//
// Cells are addressed as (row, col), zero-based, row 0 at the top. Every
// write operation targets a shape:
//
//	grid.SetCell(0, 0, v)                              // one cell
//	grid.SetRow(2, v)                                  // a whole row
//	grid.SetCol(-1, v)                                 // a whole column
//	grid.SetRowRange(0, termgrid.Range(5, 10), v)      // part of a row
//	grid.SetColRange(termgrid.From(2), 0, v)           // part of a column
//	grid.SetRegion(termgrid.Range(1, 4), termgrid.To(-1), v)
//
// Integer indices accept one negative turn: -1 is the last row or column,
// -2 the one before it. An index still outside the grid after that wrap
// returns [ErrIndexOutOfRange]. Span bounds are different: they clamp
// instead of failing, exactly like slicing, so [Grid.Region] and
// [Grid.SetRegion] never report a bounds error.
//
// Each write has a matching read ([Grid.Cell], [Grid.Row], [Grid.RowRange],
// [Grid.Col], [Grid.ColRange], [Grid.Region]) returning the characters and
// copies of the attribute maps.
//
// # Writing Values
//
// The payload type decides what a write touches:
//
//	grid.SetRow(0, termgrid.Text("abc"))               // characters only
//	grid.SetRow(0, termgrid.Attrs{"class": "ansi-red"}) // attributes only
//	grid.SetRow(0, termgrid.Styled("abc", attrs))      // both
//
// Text shorter than the target repeats: writing "ab" across five cells
// produces "ababa". Cells are filled in row-major order, so a region write
// flows left to right, top to bottom. An empty text falls back to the fill
// character. Single-cell writes keep only the first character of the text.
//
// Attribute writes merge into the existing cell maps instead of replacing
// them, so layering works:
//
//	grid.SetRow(0, termgrid.Attrs{"class": "ansi-red"})
//	grid.SetRowRange(0, termgrid.Range(0, 5), termgrid.Attrs{"data-x": "1"})
//	// cells 0..4 now carry both entries
//
// # Styling
//
// Renderers read the "class" attribute as space-separated tokens. The
// privileged tokens are ansi-black through ansi-white (foregrounds),
// ansi-bg-black through ansi-bg-white (backgrounds), and ansi-bold,
// ansi-dim, ansi-underline. Unknown tokens are ignored by the terminal,
// image, and tcell renderers and pass through to HTML untouched.
//
// [Style] builds class values without string assembly:
//
//	grid.Print("error", termgrid.Style{Fg: termgrid.ColorRed, Bold: true})
//
// [CSS] returns a stylesheet covering every privileged class for pages that
// embed [Grid.HTML] output.
//
// # Printing
//
// [Grid.Print] and [Grid.Println] write at a cursor and grow the grid as
// needed, so a grid can start at 0x0 and take shape from the text:
//
//	grid := termgrid.New()
//	grid.Println("NAME      STATUS", termgrid.Style{Bold: true})
//	grid.Println("web-1     ready")
//	grid.Println("web-2     starting", termgrid.Style{Fg: termgrid.ColorYellow})
//
// Growth keeps the grid rectangular: new cells hold the fill character.
//
// # Borders
//
// A border is pure presentation, drawn at render time around the content:
//
//	grid := termgrid.New(
//	    termgrid.WithSize(30, 8),
//	    termgrid.WithBorder(),
//	    termgrid.WithBorderPadding(1),
//	    termgrid.WithTitle("Deploys"),
//	    termgrid.WithBorderAttrs(termgrid.Attrs{"class": "ansi-cyan"}),
//	)
//
// The frame uses rounded corners and the title sits inline in the top
// border. Cell addressing ignores the border completely: (0, 0) stays the
// first content cell. If the title is too wide the grid grows to fit it.
//
// # Rendering
//
// Three string renderers share the same framing:
//
//	grid.String() // plain text, no styling, no border
//	grid.ANSI()   // terminal output with SGR escapes
//	grid.HTML()   // a styled <pre> with one <span> per attributed run
//
// ANSI output resets styling at every line end, so partial pastes never
// bleed color into the surrounding terminal. HTML output carries every cell
// attribute into the span, sorted by key, with values escaped; use
// [Grid.HTMLWithConfig] to change the page background.
//
// # Importing ANSI
//
// Grid implements [io.Writer]. Bytes written to it land at the print
// cursor, and SGR color sequences translate into the class vocabulary:
//
//	cmd := exec.Command("ls", "-la", "--color=always")
//	cmd.Stdout = grid
//	cmd.Run()
//	os.WriteFile("ls.html", []byte(grid.HTML()), 0o644)
//
// Cursor positioning sequences beyond newline, carriage return, backspace,
// and tab are dropped, so this suits line-oriented output rather than
// full-screen applications.
//
// # Screenshots
//
// [Grid.Screenshot] renders the grid to an [image.RGBA] using
// basicfont.Face7x13. For a real font, pass TrueType/OpenType data:
//
//	face, _ := termgrid.LoadFont("JetBrainsMono-Regular.ttf", 16)
//	img := grid.ScreenshotWithConfig(&termgrid.ScreenshotConfig{Font: face})
//	png.Encode(out, img)
//
// # Drawing to a Screen
//
// [Grid.Draw] paints the rendered frame onto a [tcell.Screen], which makes
// a bordered grid a cheap dashboard panel:
//
//	screen.Clear()
//	grid.Draw(screen, 2, 1)
//	screen.Show()
//
// # Thread Safety
//
// A Grid is not synchronized. Use one goroutine per grid, or guard shared
// grids with your own locking.
package termgrid
