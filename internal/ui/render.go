package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
)

func stripANSI(s string) string { return xansi.Strip(s) }

// clipToWidth truncates s to maxW display cells, keeping ANSI sequences.
func clipToWidth(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= maxW {
		return s
	}
	return xansi.Truncate(s, maxW, "…")
}

// padRight pads s with spaces to exactly w display cells.
func padRight(s string, w int) string {
	s = clipToWidth(s, w)
	if pad := w - xansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// padLinesToWidth pads every line to width so joined columns do not bleed.
func padLinesToWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = padRight(ln, width)
	}
	return strings.Join(lines, "\n")
}

// fitLines returns exactly n lines, clipping or padding with blanks.
func fitLines(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		return lines[:n]
	}
	out := make([]string, n)
	copy(out, lines)
	return out
}

// expandTabs replaces tabs with spaces; raw tabs break cell accounting.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", "  ")
}

// renderPane draws a rounded box of total width w and height h with the
// title embedded in the top border. Content lines are clipped to fit.
func renderPane(t designTheme, w, h int, title string, lines []string, focused bool) string {
	if w < 4 {
		w = 4
	}
	if h < 2 {
		h = 2
	}
	inner := w - 2
	border := t.BorderStyle()
	if focused {
		border = t.FocusBorderStyle()
	}

	var b strings.Builder
	b.WriteString(renderTopBorder(border, inner, title))
	b.WriteString("\n")
	for _, ln := range fitLines(lines, h-2) {
		b.WriteString(border.Render("│"))
		b.WriteString(padRight(expandTabs(ln), inner))
		b.WriteString(border.Render("│"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}

func renderTopBorder(border lipgloss.Style, inner int, title string) string {
	if title == "" {
		return border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}
	label := " " + clipToWidth(title, maxInt(0, inner-4)) + " "
	rest := inner - 1 - xansi.StringWidth(label)
	if rest < 0 {
		rest = 0
	}
	return border.Render("╭─") + lipgloss.NewStyle().Bold(true).Render(label) + border.Render(strings.Repeat("─", rest)+"╮")
}

// renderStatusBarStyled renders a segmented status bar: the first left
// part as a key chip, the rest as colored nuggets. Segments are dropped
// from the ends when the width is too small.
func renderStatusBarStyled(t designTheme, width int, leftParts, rightParts []string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	base := t.StatusBarBase()
	keyStyle := t.ChipKeyStyle().Inherit(base).MarginRight(1)
	nugget := lipgloss.NewStyle().Foreground(t.OnAccent).Padding(0, 1)
	nuggetBG := []lipgloss.Color{t.Primary, t.Blue, t.Yellow, t.Magenta}

	leftItems := make([]string, 0, len(leftParts))
	for i, s := range leftParts {
		if i == 0 {
			leftItems = append(leftItems, keyStyle.Render(s))
			continue
		}
		leftItems = append(leftItems, base.Padding(0, 1).Render(s))
	}
	rightItems := make([]string, 0, len(rightParts))
	for i, s := range rightParts {
		rightItems = append(rightItems, nugget.Background(nuggetBG[i%len(nuggetBG)]).Render(s))
	}

	leftStr, lw := joinWidth(leftItems)
	rightStr, rw := joinWidth(rightItems)
	for lw+rw > w && len(leftItems) > 1 {
		leftItems = leftItems[:len(leftItems)-1]
		leftStr, lw = joinWidth(leftItems)
	}
	for lw+rw > w && len(rightItems) > 0 {
		rightItems = rightItems[1:]
		rightStr, rw = joinWidth(rightItems)
	}
	center := w - lw - rw
	if center < 0 {
		center = 0
	}
	return clipToWidth(leftStr+base.Render(strings.Repeat(" ", center))+rightStr, w)
}

func joinWidth(parts []string) (string, int) {
	s := strings.Join(parts, "")
	return s, xansi.StringWidth(s)
}

// cellWidth is the display width of plain (non-ANSI) text.
func cellWidth(s string) int { return runewidth.StringWidth(s) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
