package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the colours of one theme.
type palette struct {
	accent    lipgloss.Color
	secondary lipgloss.Color
	text      lipgloss.Color
	dim       lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	danger    lipgloss.Color
	chipBg    lipgloss.Color
}

var (
	lightPalette = palette{
		accent:    lipgloss.Color("#D7263D"),
		secondary: lipgloss.Color("#1B998B"),
		text:      lipgloss.Color("#1F1F1F"),
		dim:       lipgloss.Color("#6C757D"),
		success:   lipgloss.Color("#2E8B57"),
		warning:   lipgloss.Color("#B8860B"),
		danger:    lipgloss.Color("#C0392B"),
		chipBg:    lipgloss.Color("#E9ECEF"),
	}

	darkPalette = palette{
		accent:    lipgloss.Color("#FF6B6B"),
		secondary: lipgloss.Color("#4ECDC4"),
		text:      lipgloss.Color("#F1F1F1"),
		dim:       lipgloss.Color("#8D99AE"),
		success:   lipgloss.Color("#95E1A3"),
		warning:   lipgloss.Color("#FFE66D"),
		danger:    lipgloss.Color("#FF6B6B"),
		chipBg:    lipgloss.Color("#2B2D42"),
	}
)

// styles is the set of lipgloss styles the views use.
type styles struct {
	title      lipgloss.Style
	nav        lipgloss.Style
	subtitle   lipgloss.Style
	text       lipgloss.Style
	dim        lipgloss.Style
	tag        lipgloss.Style
	success    lipgloss.Style
	warning    lipgloss.Style
	error      lipgloss.Style
	hero       lipgloss.Style
	chip       lipgloss.Style
	activeChip lipgloss.Style
	selected   lipgloss.Style
	spinner    lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		nav: lipgloss.NewStyle().
			Foreground(p.secondary),
		subtitle: lipgloss.NewStyle().
			Foreground(p.secondary),
		text: lipgloss.NewStyle().
			Foreground(p.text),
		dim: lipgloss.NewStyle().
			Foreground(p.dim),
		tag: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.warning),
		success: lipgloss.NewStyle().
			Foreground(p.success),
		warning: lipgloss.NewStyle().
			Foreground(p.warning),
		error: lipgloss.NewStyle().
			Foreground(p.danger),
		hero: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.secondary).
			Padding(0, 2),
		chip: lipgloss.NewStyle().
			Foreground(p.dim).
			Padding(0, 1),
		activeChip: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			Background(p.chipBg).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		spinner: lipgloss.NewStyle().
			Foreground(p.accent),
	}
}
