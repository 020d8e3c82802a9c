package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/talvid/swipedeck/internal/hyphen"
	"github.com/talvid/swipedeck/internal/palette"
	"github.com/talvid/swipedeck/internal/slide"
)

// cardBodyRows is the content height of a card, borders excluded.
const cardBodyRows = 9

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.deck.Len() == 0 {
		return emptyDeckStyle.Render("No questions match the current category filter. Press c to change it.")
	}

	var content strings.Builder
	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	if m.showPicker {
		content.WriteString(m.renderPicker())
	} else {
		content.WriteString(m.renderCardWindow())
	}
	content.WriteString("\n")
	content.WriteString(m.renderFooter())
	return content.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(m.deck.Title)
	record := m.deck.At(m.machine.Index())
	pal := m.resolver.Resolve(record.Category, m.machine.Index())
	tag := categoryTagStyle.
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color(pal.Strip)).
		Render(record.Category)
	position := positionStyle.Render(fmt.Sprintf("%d/%d", m.machine.Index()+1, m.deck.Len()))

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", tag, " ", position)
	return truncate.String(header, uint(m.width))
}

func (m Model) renderFooter() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// renderCardWindow composes the visible cards row by row, painting gaps
// with the ambient background color.
func (m Model) renderCardWindow() string {
	offset := m.offset()
	advance := m.cellAdvance()
	baseCells := int(m.geo.CardWidth / advance)
	centerCol := m.width / 2
	ambientBg := lipgloss.NewStyle().Background(lipgloss.Color(m.ambientColor()))

	window := slide.NewWindow(m.geo.Layout, m.machine.Index(), m.deck.Len())

	type placedCard struct {
		left  int
		top   int
		width int
		lines []string
	}
	var cards []placedCard
	for _, slot := range window.Slots() {
		if !slot.Present {
			continue
		}
		tr := slide.Compute(slot.Offset, offset, m.cfg.SlideConfig(), m.geo)
		widthCells := int(math.Round(tr.Scale * float64(baseCells)))
		if widthCells < 10 {
			widthCells = 10
		}
		left := centerCol + int(math.Round(tr.TranslateX/advance)) - widthCells/2
		if left >= m.width || left+widthCells <= 0 {
			continue
		}
		lines := m.renderCard(slot.Index, widthCells, tr)
		cards = append(cards, placedCard{
			left:  left,
			top:   cardTilt(tr, m.cfg.Animation.MaxAngleDeg),
			width: widthCells,
			lines: lines,
		})
	}

	areaRows := cardBodyRows + 4 // borders plus one row of tilt headroom
	rows := make([]string, 0, areaRows)
	for r := 0; r < areaRows; r++ {
		var line strings.Builder
		cursor := 0
		for _, c := range cards {
			idx := r - c.top
			if idx < 0 || idx >= len(c.lines) {
				continue
			}
			cardLine := c.lines[idx]
			left, width := c.left, c.width
			if left < 0 {
				cardLine = ansi.TruncateLeft(cardLine, -left, "")
				width += left
				left = 0
			}
			if left < cursor {
				// Rounding overlap; clip the incoming card's left edge.
				clip := cursor - left
				cardLine = ansi.TruncateLeft(cardLine, clip, "")
				width -= clip
				left = cursor
			}
			if width <= 0 {
				continue
			}
			if gap := left - cursor; gap > 0 {
				line.WriteString(ambientBg.Render(strings.Repeat(" ", gap)))
			}
			line.WriteString(cardLine)
			cursor = left + width
		}
		row := ansi.Truncate(line.String(), m.width, "")
		if pad := m.width - cursor; pad > 0 {
			row += ambientBg.Render(strings.Repeat(" ", min(pad, m.width)))
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// renderCard renders one card as bordered lines, widthCells wide overall.
func (m Model) renderCard(index, widthCells int, tr slide.Transform) []string {
	record := m.deck.At(index)
	pal := m.resolver.Resolve(record.Category, index)
	inner := widthCells - 4 // border plus one cell padding each side
	if inner < 6 {
		inner = 6
	}

	type bodyRow struct {
		text  string
		style lipgloss.Style
		strip bool
	}
	body := make([]bodyRow, 0, cardBodyRows)
	body = append(body, bodyRow{text: strings.Repeat(" ", inner), strip: true})
	body = append(body, bodyRow{})

	for _, l := range wrapHyphenated(m.fittedText(index), inner) {
		body = append(body, bodyRow{text: l, style: questionStyle})
		if len(body) >= cardBodyRows-2 {
			break
		}
	}
	if record.Translation != "" && len(body) < cardBodyRows-1 {
		body = append(body, bodyRow{})
		for _, l := range wrapHyphenated(record.Translation, inner) {
			body = append(body, bodyRow{text: l, style: translationStyle})
			if len(body) >= cardBodyRows {
				break
			}
		}
	}
	for len(body) < cardBodyRows {
		body = append(body, bodyRow{})
	}

	// Body gradient: blend the palette's base pair row by row, with the
	// seeded midpoint biasing where the blend concentrates.
	rendered := make([]string, 0, len(body))
	for i, row := range body {
		bg := pal.Strip
		if !row.strip {
			bg = palette.Interpolate(pal.From, pal.To, gradientPosition(i, len(body), pal))
		}
		style := row.style.Background(lipgloss.Color(bg))
		rendered = append(rendered, style.Render(" "+padLine(row.text, inner)+" "))
	}

	block := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pal.Strip)).
		Render(strings.Join(rendered, "\n"))
	return strings.Split(block, "\n")
}

// cardTilt converts a rotation into a small vertical offset, the closest
// a cell grid comes to rotating a card.
func cardTilt(tr slide.Transform, maxAngle float64) int {
	if maxAngle <= 0 {
		return 1
	}
	switch {
	case tr.RotationDeg > maxAngle/2:
		return 2
	case tr.RotationDeg < -maxAngle/2:
		return 0
	default:
		return 1
	}
}

// gradientPosition maps a row to a blend position, biased by the seeded
// midpoint and flipped for angles past vertical.
func gradientPosition(row, rows int, pal palette.Palette) float64 {
	if rows <= 1 {
		return 0
	}
	t := float64(row) / float64(rows-1)
	if pal.AngleDeg > 90 {
		t = 1 - t
	}
	mid := pal.Midpoint
	if t < mid {
		return 0.5 * t / mid
	}
	return 0.5 + 0.5*(t-mid)/(1-mid)
}

// wrapHyphenated wraps text to width, breaking inside words only at soft
// hyphen positions. A soft hyphen surviving at a line end becomes a
// visible hyphen; all others disappear.
func wrapHyphenated(text string, width int) []string {
	w := wordwrap.NewWriter(width)
	w.Breakpoints = []rune{'-', hyphen.SoftHyphen}
	_, _ = w.Write([]byte(text))
	_ = w.Close()

	lines := strings.Split(w.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasSuffix(line, string(hyphen.SoftHyphen)) {
			line = strings.TrimSuffix(line, string(hyphen.SoftHyphen)) + "-"
		}
		out = append(out, strings.ReplaceAll(line, string(hyphen.SoftHyphen), ""))
	}
	return out
}

func padLine(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return truncate.String(s, uint(width))
	}
	return s + strings.Repeat(" ", gap)
}

// ambientColor is the background the host shell paints behind the cards:
// the active category's base color, blending toward the target category
// while a drag is in progress.
func (m Model) ambientColor() string {
	active := m.resolver.Resolve(m.deck.Category(m.machine.Index()), m.machine.Index())
	if m.ambient.progress <= 0 || m.ambient.targetCategory == "" {
		return active.From
	}
	target := m.resolver.Resolve(m.ambient.targetCategory, m.machine.Index()+m.ambient.dir.Delta())
	return palette.Interpolate(active.From, target.From, m.ambient.progress)
}

func (m Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Categories"))
	b.WriteString("\n")
	if m.picker.filter != "" {
		b.WriteString(positionStyle.Render("filter: " + m.picker.filter))
		b.WriteString("\n")
	}

	visible := m.picker.visible()
	if len(visible) == 0 {
		b.WriteString(pickerItemStyle.Render("no matching categories"))
	}
	for i, cat := range visible {
		marker := "[ ]"
		if m.picker.selected[cat] {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, cat)
		if i == m.picker.cursor {
			b.WriteString(pickerCursorStyle.Render("> " + line))
		} else {
			b.WriteString(pickerItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(positionStyle.Render("space toggle · enter apply · esc close"))
	return pickerBoxStyle.Render(b.String())
}
