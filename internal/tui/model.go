// Package tui hosts the card browser shell: a bubbletea program wiring the
// gesture tracker, navigation machine, transform calculator, hyphenation
// engine, and palette resolver together. All engine state lives in the
// sub-packages; this package translates terminal events into their inputs
// and renders their outputs.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/talvid/swipedeck/internal/config"
	"github.com/talvid/swipedeck/internal/deck"
	"github.com/talvid/swipedeck/internal/gesture"
	"github.com/talvid/swipedeck/internal/hyphen"
	"github.com/talvid/swipedeck/internal/logger"
	"github.com/talvid/swipedeck/internal/measure"
	"github.com/talvid/swipedeck/internal/nav"
	"github.com/talvid/swipedeck/internal/palette"
	"github.com/talvid/swipedeck/internal/slide"
)

// ambientState is the bridge between the navigation machine's observers
// and the renderer. It is held by pointer so observer callbacks survive
// bubbletea's value-copied model.
type ambientState struct {
	progress       float64
	targetCategory string
	dir            nav.Direction
	lastCommit     int
	commits        int
}

// Model is the bubbletea model for the card browser.
type Model struct {
	cfg      *config.Config
	fullDeck *deck.Deck
	deck     *deck.Deck

	machine  *nav.Machine
	tracker  *gesture.Tracker
	animator *slide.Animator
	resolver *palette.Resolver
	hyph     *hyphen.Engine
	ambient  *ambientState

	log  *logger.Logger
	keys keyMap
	help help.Model

	width      int
	height     int
	breakpoint Breakpoint
	geo        slide.Geometry

	// fitted caches hyphenated card text per absolute index; rebuilt on
	// committed index changes and on resize.
	fitted map[int]string

	framePending bool
	pressActive  bool
	pressX       float64
	pressMoved   bool

	showPicker bool
	picker     pickerModel

	quitting bool
}

// NewModel assembles the browser over an already-loaded deck. startIndex
// comes from the deep-link resolution in the command layer and must be in
// range (or zero for an empty deck).
func NewModel(cfg *config.Config, d *deck.Deck, startIndex int, log *logger.Logger) (Model, error) {
	layout := layoutFromConfig(cfg, 0)
	machine, err := nav.NewMachine(d.Len(), startIndex, cfg.NavConfig(layout))
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		fullDeck: d,
		deck:     d,
		machine:  machine,
		tracker:  &gesture.Tracker{},
		animator: slide.NewAnimator(cfg.Animation.FPS),
		resolver: palette.NewResolver(cfg.PaletteOverrides()),
		hyph:     hyphen.NewGerman(measure.NewCellMeasurer()),
		ambient:  &ambientState{},
		log:      log.WithComponent("tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		fitted:   make(map[int]string),
		picker:   newPickerModel(d.Categories()),
	}
	m.breakpoint = DetectBreakpoint(0)
	m.geo = m.geometry()
	m.wireObservers()
	m.refitCards()
	return m, nil
}

// wireObservers points the machine's observers at the ambient sink. The
// sink outlives model copies, so the closures stay valid.
func (m *Model) wireObservers() {
	sink := m.ambient
	log := m.log
	m.machine.SetCategoryLookup(m.deck.Category)
	m.machine.SetObservers(
		func(progress float64, targetCategory string, dir nav.Direction) {
			sink.progress = progress
			sink.targetCategory = targetCategory
			sink.dir = dir
		},
		func(newIndex int, dir nav.Direction) {
			sink.progress = 0
			sink.targetCategory = ""
			sink.dir = nav.DirNone
			sink.lastCommit = newIndex
			sink.commits++
			log.WithFields(map[string]any{"index": newIndex, "direction": dir.String()}).Debug("slide committed")
		},
	)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Index exposes the active index for the command layer and tests.
func (m Model) Index() int {
	return m.machine.Index()
}

// geometry derives the pixel geometry for the current breakpoint. A
// fixed layout in the config wins over breakpoint detection.
func (m Model) geometry() slide.Geometry {
	layout := layoutFromConfig(m.cfg, m.width)
	advance := m.cellAdvance()
	return slide.Geometry{
		Layout:        layout,
		ViewportWidth: float64(m.width) * advance,
		CardWidth:     m.cfg.Card.WidthPx,
	}
}

// cellAdvance is the pixel width of one terminal cell under the card
// font. The same ratio backs the cell measurer, so gesture pixels, layout
// pixels, and measurement pixels stay in one coordinate space.
func (m Model) cellAdvance() float64 {
	return m.cfg.Card.FontSizePx * 0.6
}

// pxForColumn converts a terminal column to gesture pixels.
func (m Model) pxForColumn(col int) float64 {
	return float64(col) * m.cellAdvance()
}

// offset is the live horizontal displacement of the card window: the drag
// offset while a gesture is active, otherwise the animator's position.
func (m Model) offset() float64 {
	if m.machine.State() == nav.StateDragging {
		return m.tracker.Offset()
	}
	return m.animator.Pos()
}

// refitCards recomputes the hyphenated text cache for the active card and
// its window neighbors.
func (m *Model) refitCards() {
	m.fitted = make(map[int]string)
	window := slide.NewWindow(m.geo.Layout, m.machine.Index(), m.deck.Len())
	constraints := hyphen.Constraints{
		ContainerWidthPx: m.cfg.Card.WidthPx,
		Font: measure.FontSpec{
			SizePx: m.cfg.Card.FontSizePx,
			Family: m.cfg.Card.FontFamily,
		},
		BufferPx: m.cfg.Card.BufferPx,
	}
	for _, slot := range window.Slots() {
		if !slot.Present {
			continue
		}
		m.fitted[slot.Index] = m.hyph.Apply(m.deck.At(slot.Index).Text, constraints)
	}
}

// fittedText returns the cached hyphenated text for an index, falling
// back to the raw record text for slots outside the cache.
func (m Model) fittedText(index int) string {
	if text, ok := m.fitted[index]; ok {
		return text
	}
	return m.deck.At(index).Text
}

// applyCategoryFilter rebuilds the navigable sequence from the picker's
// selection. The machine restarts at index zero; transient gesture and
// animation state is discarded.
func (m *Model) applyCategoryFilter(keep []string) {
	filtered := m.fullDeck.Filter(keep)
	machine, err := nav.NewMachine(filtered.Len(), 0, m.cfg.NavConfig(m.geo.Layout))
	if err != nil {
		// Filtering can only shrink the deck, so this is unreachable from
		// user input.
		m.log.Error(err, "rebuilding navigation after filter")
		return
	}
	m.deck = filtered
	m.machine = machine
	m.tracker.Cancel()
	m.animator.SetImmediate(0)
	m.wireObservers()
	m.refitCards()
}

func layoutFromConfig(cfg *config.Config, width int) slide.Layout {
	switch cfg.Layout {
	case "compact":
		return slide.LayoutCompact
	case "extended":
		return slide.LayoutExtended
	default:
		return DetectBreakpoint(width).Layout()
	}
}
