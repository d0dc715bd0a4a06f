package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/rtk-site/internal/catalog"
	"github.com/handiism/rtk-site/internal/model"
	"github.com/handiism/rtk-site/internal/page"
	"github.com/handiism/rtk-site/internal/view"
)

// Placeholder texts shown instead of content.
const (
	msgLoading   = "Loading discography..."
	msgEmpty     = "No releases found"
	msgLoadError = "Failed to load releases. Please try again later."
	msgNoLatest  = "No latest release available"
)

// staticIndicator replaces the spinner when animations are off.
const staticIndicator = "•"

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.state.Status {
	case page.StatusIdle, page.StatusLoading:
		b.WriteString(m.viewLoading())
	case page.StatusLoadError:
		b.WriteString(m.viewError())
	case page.StatusReady:
		if m.mode == ModeDetail && m.detail != nil {
			b.WriteString(m.viewDetail())
		} else {
			b.WriteString(m.viewHome())
		}
	}

	if m.mode == ModeGoto {
		b.WriteString("\n")
		b.WriteString(m.styles.subtitle.Render("Go to: "))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.warning.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) viewHeader() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.settings.ArtistName))

	links := make([]string, 0, len(m.settings.Navigation))
	for _, l := range m.settings.Navigation {
		links = append(links, l.Label)
	}
	if len(links) > 0 {
		b.WriteString("  ")
		b.WriteString(m.styles.nav.Render(strings.Join(links, " · ")))
	}

	return b.String()
}

func (m Model) viewLoading() string {
	indicator := staticIndicator
	if m.animations() {
		indicator = m.spinner.View()
	}
	return indicator + " " + m.styles.subtitle.Render(msgLoading) + "\n"
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(m.styles.error.Render(msgLoadError))
	b.WriteString("\n")
	if m.state.Err != nil {
		b.WriteString(m.styles.dim.Render("  " + m.state.Err.Error()))
		b.WriteString("\n")
	}

	// The video is independent of the catalog and may still be available.
	if m.data.HasVideo() {
		b.WriteString("\n")
		b.WriteString(m.viewVideo())
	}

	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(m.viewHero())
	b.WriteString("\n")
	if m.data.HasVideo() {
		b.WriteString(m.viewVideo())
		b.WriteString("\n")
	}
	b.WriteString(m.viewChips())
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())

	return b.String()
}

func (m Model) viewHero() string {
	latest, err := page.Hero(m.data)
	if err != nil {
		return m.styles.dim.Render(msgNoLatest) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.tag.Render("Latest " + latest.Type.Label()))
	b.WriteString("\n")
	b.WriteString(m.styles.text.Bold(true).Render(latest.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render(latest.DisplayDate))
	if latest.ListenLink != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.subtitle.Render("Listen: " + latest.ListenLink))
	}

	return m.styles.hero.Render(b.String()) + "\n"
}

func (m Model) viewVideo() string {
	return m.styles.subtitle.Render("▶ Video: ") + m.data.VideoURL + "\n"
}

func (m Model) viewChips() string {
	cats := view.Categories()
	chips := make([]string, len(cats))
	for i, c := range cats {
		label := fmt.Sprintf("%d %s", i+1, c.Label())
		if c == m.state.Category {
			chips[i] = m.styles.activeChip.Render(label)
		} else {
			chips[i] = m.styles.chip.Render(label)
		}
	}

	return strings.Join(chips, " ") + "   " + m.styles.dim.Render("sort: "+m.state.Sort.Label())
}

func (m Model) viewGrid() string {
	if errors.Is(m.gridErr, catalog.ErrEmptyResult) || len(m.grid) == 0 {
		return m.styles.dim.Render(msgEmpty) + "\n"
	}

	start, end := m.visibleRange()

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, &m.grid[i]))
		b.WriteString("\n")
	}
	if len(m.grid) > end-start {
		b.WriteString(m.styles.dim.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.grid))))
		b.WriteString("\n")
	}

	return b.String()
}

// visibleRange returns the slice of grid rows that fit the terminal,
// keeping the cursor in view.
func (m Model) visibleRange() (int, int) {
	rows := len(m.grid)
	if m.height > 0 {
		rows = max(3, m.height-18)
	}
	if rows >= len(m.grid) {
		return 0, len(m.grid)
	}

	start := m.cursor - rows/2
	start = max(0, min(start, len(m.grid)-rows))
	return start, start + rows
}

func (m Model) renderRow(i int, r *model.Release) string {
	line := fmt.Sprintf("%-7s %-32s %-24s %s", r.TypeTag, truncate(r.Title, 32), truncate(r.Artist, 24), r.DisplayDate)
	if i == m.cursor {
		return m.styles.selected.Render("› " + line)
	}
	return m.styles.text.Render("  " + line)
}

func (m Model) viewDetail() string {
	r := m.detail
	var b strings.Builder

	b.WriteString(m.styles.tag.Render(r.Type.Label()))
	b.WriteString("\n")
	b.WriteString(m.styles.text.Bold(true).Render(r.Title))
	b.WriteString("\n")
	if r.Artist != "" {
		b.WriteString(m.styles.text.Render(r.Artist))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.dim.Render("Released: " + r.DisplayDate))
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render("Page: " + r.DetailPath()))
	b.WriteString("\n")
	if r.Image != "" {
		b.WriteString(m.styles.dim.Render("Cover: " + r.Image))
		b.WriteString("\n")
	}
	if r.ListenLink != "" {
		b.WriteString(m.styles.subtitle.Render("Listen: " + r.ListenLink))
		b.WriteString("\n")
	}

	if r.Type.IsCollection() {
		b.WriteString("\n")
		b.WriteString(m.styles.subtitle.Render("Tracklist"))
		b.WriteString("\n")
		if len(m.tracks) == 0 {
			b.WriteString(m.styles.dim.Render("  No tracks listed"))
			b.WriteString("\n")
		}
		for i, t := range m.tracks {
			b.WriteString(m.styles.text.Render(fmt.Sprintf("  %2d. %s", i+1, t.Title)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewFooter() string {
	var b strings.Builder

	social := make([]string, 0, len(m.settings.Social))
	for _, l := range m.settings.Social {
		social = append(social, l.Label)
	}
	if len(social) > 0 {
		b.WriteString(m.styles.nav.Render(strings.Join(social, " · ")))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.dim.Render(fmt.Sprintf("© %d %s", m.now().Year(), m.settings.DisplayName)))

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
