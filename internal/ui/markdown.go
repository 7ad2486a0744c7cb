package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	ansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// fastThresholdBytes skips glamour for large documents.
const fastThresholdBytes = 64 * 1024

// glamourStyle returns a glamour ANSI style config built from a palette.
func glamourStyle(t designTheme) ansi.StyleConfig {
	// lipgloss.Color -> hex without alpha
	hex := func(c lipgloss.Color) string {
		s := string(c)
		if strings.HasPrefix(s, "#") && len(s) == 9 {
			return s[:7]
		}
		return s
	}
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }

	text := hex(t.Text)
	secondary := hex(t.Secondary)
	muted := hex(t.Muted)
	primary := hex(t.Primary)
	blue := hex(t.Blue)
	yellow := hex(t.Yellow)
	magenta := hex(t.Magenta)
	red := hex(t.Red)
	bgSoft := hex(t.BgSoft)

	heading := ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true)}}
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
		},
		Paragraph: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(secondary), Italic: bp(true)},
		},
		Heading: heading,
		H1:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(primary), Bold: bp(true), Prefix: "# "}},
		H2:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true), Prefix: "## "}},
		H3:      heading,
		H4:      heading,
		H5:      heading,
		H6:      heading,

		Text:           ansi.StylePrimitive{Color: sp(text)},
		Emph:           ansi.StylePrimitive{Italic: bp(true)},
		Strong:         ansi.StylePrimitive{Bold: bp(true)},
		Strikethrough:  ansi.StylePrimitive{CrossedOut: bp(true)},
		HorizontalRule: ansi.StylePrimitive{Color: sp(secondary)},

		Link:     ansi.StylePrimitive{Color: sp(blue), Underline: bp(true)},
		LinkText: ansi.StylePrimitive{Color: sp(blue), Underline: bp(true)},

		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(yellow), BackgroundColor: sp(bgSoft)},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: sp(text), BackgroundColor: sp(bgSoft)},
			},
			Chroma: &ansi.Chroma{
				Text:              ansi.StylePrimitive{Color: sp(text)},
				Comment:           ansi.StylePrimitive{Color: sp(muted), Italic: bp(true)},
				Keyword:           ansi.StylePrimitive{Color: sp(primary), Bold: bp(true)},
				NameFunction:      ansi.StylePrimitive{Color: sp(blue)},
				NameBuiltin:       ansi.StylePrimitive{Color: sp(magenta)},
				NameTag:           ansi.StylePrimitive{Color: sp(primary)},
				NameAttribute:     ansi.StylePrimitive{Color: sp(blue)},
				LiteralString:     ansi.StylePrimitive{Color: sp(yellow)},
				LiteralNumber:     ansi.StylePrimitive{Color: sp(magenta)},
				Operator:          ansi.StylePrimitive{Color: sp(secondary)},
				Punctuation:       ansi.StylePrimitive{Color: sp(secondary)},
				GenericDeleted:    ansi.StylePrimitive{Color: sp(red)},
				GenericInserted:   ansi.StylePrimitive{Color: sp(primary)},
				GenericStrong:     ansi.StylePrimitive{Bold: bp(true)},
				GenericSubheading: ansi.StylePrimitive{Color: sp(secondary)},
				Background:        ansi.StylePrimitive{BackgroundColor: sp(bgSoft)},
			},
		},

		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
			CenterSeparator: sp("│"),
			ColumnSeparator: sp("│"),
			RowSeparator:    sp("─"),
		},

		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},

		DefinitionTerm:        ansi.StylePrimitive{Bold: bp(true)},
		DefinitionDescription: ansi.StylePrimitive{Color: sp(secondary)},
	}
}

// renderMarkdown renders src for a pane of the given width. Large inputs and
// renderer failures fall back to the raw source.
func renderMarkdown(src string, width int, t designTheme) string {
	if len(src) >= fastThresholdBytes {
		return trimEdgeBlankLines(src)
	}
	// glamour adds a two column gutter
	wrap := width - 2
	if wrap < 10 {
		wrap = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamourStyle(t)),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return trimEdgeBlankLines(src)
	}
	out, err := r.Render(src)
	if err != nil {
		return trimEdgeBlankLines(src)
	}
	return trimEdgeBlankLines(out)
}

// trimEdgeBlankLines drops leading and trailing blank lines while
// preserving inner spacing and ANSI sequences.
func trimEdgeBlankLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	i := 0
	for i < len(lines) && strings.TrimSpace(stripANSI(lines[i])) == "" {
		i++
	}
	j := len(lines)
	for j > i && strings.TrimSpace(stripANSI(lines[j-1])) == "" {
		j--
	}
	return strings.Join(lines[i:j], "\n")
}
