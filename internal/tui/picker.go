package tui

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// pickerModel is the category selection overlay. Typing narrows the list
// with fuzzy matching, space toggles, enter applies, escape closes.
type pickerModel struct {
	all      []string
	filter   string
	cursor   int
	selected map[string]bool
}

func newPickerModel(categories []string) pickerModel {
	return pickerModel{
		all:      categories,
		selected: make(map[string]bool),
	}
}

// visible returns the categories matching the current filter, ranked by
// match quality when a filter is set.
func (p pickerModel) visible() []string {
	if p.filter == "" {
		return p.all
	}
	ranks := fuzzy.RankFindFold(p.filter, p.all)
	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}

func (p *pickerModel) moveCursor(delta int) {
	visible := p.visible()
	if len(visible) == 0 {
		p.cursor = 0
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(visible) {
		p.cursor = len(visible) - 1
	}
}

func (p *pickerModel) toggleCurrent() {
	visible := p.visible()
	if p.cursor < 0 || p.cursor >= len(visible) {
		return
	}
	cat := visible[p.cursor]
	if p.selected[cat] {
		delete(p.selected, cat)
	} else {
		p.selected[cat] = true
	}
}

func (p *pickerModel) typeRune(r rune) {
	p.filter += string(r)
	p.cursor = 0
}

func (p *pickerModel) backspace() {
	if p.filter == "" {
		return
	}
	runes := []rune(p.filter)
	p.filter = string(runes[:len(runes)-1])
	p.cursor = 0
}

func (p *pickerModel) reset() {
	p.filter = ""
	p.cursor = 0
}

// selection returns the chosen categories in deck order. An empty
// selection means "all categories".
func (p pickerModel) selection() []string {
	var out []string
	for _, cat := range p.all {
		if p.selected[cat] {
			out = append(out, cat)
		}
	}
	return out
}

func (p pickerModel) summary() string {
	sel := p.selection()
	if len(sel) == 0 {
		return "all categories"
	}
	return strings.Join(sel, ", ")
}
