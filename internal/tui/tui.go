// Package tui provides a Bubble Tea terminal browser for the discography.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/rtk-site/internal/catalog"
	"github.com/handiism/rtk-site/internal/config"
	"github.com/handiism/rtk-site/internal/model"
	"github.com/handiism/rtk-site/internal/page"
	"github.com/handiism/rtk-site/internal/view"
	"github.com/sirupsen/logrus"
)

// Mode is the screen currently shown on top of the page state.
type Mode int

const (
	ModeGrid Mode = iota
	ModeDetail
	ModeGoto
)

// Options configure a Model.
type Options struct {
	Settings    *config.Settings
	Preferences *config.Preferences
	Loader      *page.Loader
	Log         logrus.FieldLogger

	// Now returns the current time for the footer year. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	settings *config.Settings
	prefs    *config.Preferences
	loader   *page.Loader
	log      logrus.FieldLogger
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	state page.State
	data  *page.Data
	grid  []model.Release
	// gridErr is catalog.ErrEmptyResult for an empty filter, or the load error.
	gridErr error
	cursor  int

	mode   Mode
	detail *model.Release
	tracks []model.Release
	input  textinput.Model
	notice string

	spinner spinner.Model
	keys    keyMap
	help    help.Model
	styles  styles

	width  int
	height int
}

// NewModel creates a new TUI model in the loading state.
func NewModel(opts Options) Model {
	if opts.Settings == nil {
		opts.Settings = config.DefaultSettings()
	}
	if opts.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Log = l
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "release id or /single/<id>"
	ti.CharLimit = 200
	ti.Width = 40

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		settings: opts.Settings,
		prefs:    opts.Preferences,
		loader:   opts.Loader,
		log:      opts.Log,
		now:      opts.Now,
		ctx:      ctx,
		cancel:   cancel,
		state: page.NewState().
			WithCategory(opts.Settings.Category()).
			WithSort(opts.Settings.Sort()).
			Loading(),
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.applyTheme()

	return m
}

// Init starts the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

// Message types
type (
	// LoadedMsg carries the result of a page load.
	LoadedMsg struct {
		Data *page.Data
		Err  error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LoadedMsg:
		m.data = msg.Data
		m.state = m.state.Loaded(msg.Err)
		m.refresh()
		if msg.Err != nil {
			m.log.WithError(msg.Err).Error("Page load failed")
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Status != page.StatusLoading || !m.animations() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode == ModeGoto {
			return m.updateGoto(msg)
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Dark):
		m.toggleDarkMode()
		return m, nil

	case key.Matches(msg, m.keys.Animation):
		m.toggleAnimations()
		return m, m.tick()

	case key.Matches(msg, m.keys.ClearPref):
		if m.prefs != nil {
			if err := m.prefs.Clear(); err != nil {
				m.notice = fmt.Sprintf("Could not clear preferences: %v", err)
				return m, nil
			}
		}
		m.log.Info("Preferences cleared")
		m.applyTheme()
		return m.reload()

	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}

	if m.mode == ModeDetail {
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeGrid
			m.detail = nil
			m.tracks = nil
		}
		return m, nil
	}

	if m.state.Status != page.StatusReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextChip):
		m.state = m.state.NextCategory()
		m.refresh()

	case key.Matches(msg, m.keys.PrevChip):
		m.state = m.state.PrevCategory()
		m.refresh()

	case key.Matches(msg, m.keys.Chip):
		idx := int(msg.String()[0] - '1')
		if cats := view.Categories(); idx >= 0 && idx < len(cats) {
			m.state = m.state.WithCategory(cats[idx])
			m.refresh()
		}

	case key.Matches(msg, m.keys.Sort):
		m.state = m.state.NextSort()
		m.refresh()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.grid)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.grid) {
			m.openDetail(&m.grid[m.cursor])
		}

	case key.Matches(msg, m.keys.Goto):
		m.mode = ModeGoto
		m.notice = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeGrid
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		m.input.Blur()
		m.mode = ModeGrid
		m.gotoRelease(m.input.Value())
		return m, nil

	case tea.KeyCtrlC:
		m.cancel()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// gotoRelease opens the detail view for ref, or sets a notice with
// suggestions when no release matches.
func (m *Model) gotoRelease(ref string) {
	id := catalog.ResolveID(ref)
	if id == "" {
		m.notice = "Enter a release id"
		return
	}

	disco := m.data.Discography
	r, err := disco.Find(id)
	if err != nil {
		m.notice = fmt.Sprintf("No release %q", id)
		if suggestions := disco.Suggest(id, 3); len(suggestions) > 0 {
			m.notice += " (did you mean " + strings.Join(suggestions, ", ") + "?)"
		}
		return
	}

	m.openDetail(r)
}

func (m *Model) openDetail(r *model.Release) {
	detail := *r
	m.detail = &detail
	m.tracks = nil
	if detail.Type.IsCollection() && m.data != nil {
		m.tracks = m.data.Discography.AlbumTracks(detail.ID)
	}
	m.mode = ModeDetail
	m.notice = ""
}

// refresh recomputes the grid for the current state.
func (m *Model) refresh() {
	m.grid, m.gridErr = page.Grid(m.state, m.data)
	if m.cursor >= len(m.grid) {
		m.cursor = max(0, len(m.grid)-1)
	}
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.state = m.state.Loading()
	m.data = nil
	m.grid = nil
	m.gridErr = nil
	m.cursor = 0
	m.mode = ModeGrid
	m.detail = nil
	m.tracks = nil
	return m, tea.Batch(m.load(), m.tick())
}

// load runs the page loader in the background.
func (m Model) load() tea.Cmd {
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		if loader == nil {
			return LoadedMsg{Data: &page.Data{}, Err: fmt.Errorf("no loader configured")}
		}
		data, err := loader.Load(ctx)
		return LoadedMsg{Data: data, Err: err}
	}
}

// tick starts the spinner while loading with animations on.
func (m Model) tick() tea.Cmd {
	if m.state.Status != page.StatusLoading || !m.animations() {
		return nil
	}
	return m.spinner.Tick
}

func (m Model) darkMode() bool {
	return m.prefs != nil && m.prefs.DarkMode()
}

func (m Model) animations() bool {
	return m.prefs == nil || m.prefs.AnimationsEnabled()
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.darkMode())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = m.styles.spinner
	m.spinner = sp
}

func (m *Model) toggleDarkMode() {
	if m.prefs == nil {
		return
	}
	dark, err := m.prefs.ToggleDarkMode()
	if err != nil {
		m.notice = fmt.Sprintf("Could not save preference: %v", err)
		m.log.WithError(err).Warn("Failed to persist dark mode")
	}
	m.log.WithField("dark", dark).Debug("Theme toggled")
	m.applyTheme()
}

func (m *Model) toggleAnimations() {
	if m.prefs == nil {
		return
	}
	on, err := m.prefs.ToggleAnimations()
	if err != nil {
		m.notice = fmt.Sprintf("Could not save preference: %v", err)
		m.log.WithError(err).Warn("Failed to persist animation preference")
	}
	m.log.WithField("animations", on).Debug("Animations toggled")
}

// State returns the page state.
func (m Model) State() page.State {
	return m.state
}

// Mode returns the current screen.
func (m Model) Mode() Mode {
	return m.mode
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
