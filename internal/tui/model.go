package tui

import (
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"archglobe/internal/catalog"
	"archglobe/internal/config"
	"archglobe/internal/globe"
	"archglobe/internal/selection"
	"archglobe/internal/theme"
)

type Page int

const (
	PageHome Page = iota
	PageCaseStudies
	PageMap
)

var pageNames = []string{"Home", "Case Studies", "Map"}

func (p Page) String() string { return pageNames[p] }

type focus int

const (
	focusGlobe focus = iota
	focusSearch
	focusCategory
	focusList
	focusCount
)

type Options struct {
	Catalog   *catalog.Catalog
	Theme     *theme.Theme
	Config    config.Config
	Logger    zerolog.Logger
	StartPage Page
	// Now is the clock used to arm clicks; nil means time.Now.
	Now func() time.Time
}

// frameMsg drives one engine step. Ticks from an earlier mount carry a
// stale generation and are dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

type textureMsg struct {
	tex *globe.Texture
	err error
}

type dragState struct {
	active bool
	x, y   int
	moved  bool
}

// Model is the bubbletea model. Copies share the selection state, camera,
// registry and engine through pointers, so a model must not be forked:
// always continue from the value Update returns.
type Model struct {
	width  int
	height int

	page        Page
	focus       focus
	helpVisible bool
	status      string

	cfg    config.Config
	log    zerolog.Logger
	now    func() time.Time
	theme  *theme.Theme
	styles *styles

	catalog *catalog.Catalog
	state   *selection.State

	// globe
	camera   *globe.Camera
	controls *globe.Controls
	registry *globe.Registry
	engine   *globe.Engine
	surface  *globe.Surface
	loading  bool
	mounted  bool
	gen      int
	pointer  globe.Pointer
	drag     dragState

	// hover state for the footer
	hoverHasGeo bool
	hoverLat    float64
	hoverLon    float64

	// widgets
	search   textinput.Model
	category dropdown
	l        list.Model
	tbl      table.Model

	initCmd tea.Cmd
}

func New(opts Options) Model {
	cfg := opts.Config
	if cfg.Validate() != nil {
		cfg = config.Default()
	}
	th := opts.Theme
	if th == nil {
		th = theme.New(cfg.Theme.Dark)
	}
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger

	st := newStyles(th.Palette())
	sp := &st
	m := Model{
		helpVisible: true,
		status:      "archglobe ready",
		cfg:         cfg,
		log:         logger,
		now:         now,
		theme:       th,
		styles:      sp,
		catalog:     cat,
		state:       selection.New(cat),
		surface:     &globe.Surface{},
		category:    newDropdown(),
		l:           newBuildingList(),
		tbl:         newCaseTable(cat),
	}
	th.Subscribe(func(dark bool) {
		*sp = newStyles(th.Palette())
		logger.Info().Bool("dark", dark).Msg("theme changed")
	})
	m.state.OnSelect(func(prev, next *catalog.Building) {
		ev := logger.Info()
		if prev != nil {
			ev = ev.Int("from", prev.ID)
		}
		if next == nil {
			ev.Msg("selection cleared")
			return
		}
		ev.Int("id", next.ID).Str("name", next.Name).Msg("building selected")
	})

	m.camera = globe.NewCamera(cfg.Camera.Distance, cfg.Camera.Fov, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	m.controls = &globe.Controls{Camera: m.camera, Damping: cfg.Camera.Damping}
	m.registry = globe.NewRegistry(cfg.Markers.HitRadius)
	m.engine = globe.NewEngine(m.registry, globe.NewClick(cfg.Click.Window), m.state)

	m.search = textinput.New()
	m.search.Placeholder = "Search buildings..."
	m.search.Prompt = "/ "
	m.search.CharLimit = 64
	m.search.ShowSuggestions = true
	m.search.SetSuggestions(cat.Names())

	m.refreshList()
	m.status = "archglobe ready"
	if opts.StartPage != PageHome {
		m.initCmd = m.setPage(opts.StartPage)
	}
	return m
}

func (m Model) Init() tea.Cmd { return m.initCmd }

// State exposes the selection state, mainly for callers embedding the model.
func (m Model) State() *selection.State { return m.state }

func (m Model) Page() Page { return m.page }

func loadTexture(path string) tea.Cmd {
	return func() tea.Msg {
		tex, err := globe.LoadTexture(path)
		return textureMsg{tex: tex, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.cfg.Frame.Interval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// setPage routes to p, mounting or unmounting the globe as needed.
func (m *Model) setPage(p Page) tea.Cmd {
	if p == m.page {
		return nil
	}
	prev := m.page
	m.page = p
	m.log.Info().Str("from", prev.String()).Str("to", p.String()).Msg("route")
	m.status = p.String()
	if prev == PageMap {
		m.unmount()
	}
	if p == PageMap {
		return m.mount()
	}
	return nil
}

func (m *Model) mount() tea.Cmd {
	m.mounted = true
	m.gen++
	cmds := []tea.Cmd{m.tick()}
	switch {
	case m.surface.Ready():
		m.buildMarkers()
	case m.surface.State() == globe.SurfaceNotLoaded && !m.loading:
		m.loading = true
		m.status = "loading surface..."
		cmds = append(cmds, loadTexture(m.cfg.Globe.Texture))
	}
	return tea.Batch(cmds...)
}

func (m *Model) unmount() {
	m.mounted = false
	m.gen++
	m.registry.Teardown()
	m.engine.Click().Disarm()
	m.state.SetHovered(nil)
	m.drag = dragState{}
	m.hoverHasGeo = false
	m.category.Close()
	m.search.Blur()
	m.focus = focusGlobe
	m.log.Debug().Msg("markers torn down")
}

func (m *Model) buildMarkers() {
	m.registry.Build(m.catalog)
	m.log.Info().Int("markers", m.registry.Len()).Msg("markers built")
}

func (m *Model) resolveTexture(msg textureMsg) {
	m.loading = false
	if !m.surface.Resolve(msg.tex, msg.err) {
		return
	}
	if !m.surface.Ready() {
		m.log.Error().Err(msg.err).Str("path", m.cfg.Globe.Texture).Msg("surface texture failed")
		m.status = "surface unavailable"
		if msg.err != nil {
			m.status += ": " + msg.err.Error()
		}
		return
	}
	m.log.Info().Int("width", msg.tex.Width).Int("height", msg.tex.Height).Msg("surface texture loaded")
	m.status = "surface loaded"
	if m.mounted {
		m.buildMarkers()
	}
}
