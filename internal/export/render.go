package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/handiism/rtk-site/internal/model"
	"github.com/handiism/rtk-site/internal/view"
)

// Format is an output format for a rendered discography page.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatHTML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (must be text, json or html)", s)
	}
}

// Link is a labelled URL in the page chrome.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Page is everything one rendering of the discography shows.
type Page struct {
	ArtistName string          `json:"artist"`
	Navigation []Link          `json:"navigation,omitempty"`
	Social     []Link          `json:"social,omitempty"`
	Year       int             `json:"year"`
	Hero       *model.Release  `json:"latest,omitempty"`
	VideoURL   string          `json:"video,omitempty"`
	Category   view.Category   `json:"category"`
	Sort       view.SortKey    `json:"sort"`
	Releases   []model.Release `json:"releases"`

	// Message replaces the grid when set, e.g. "No releases found".
	Message string `json:"message,omitempty"`
}

// Render writes page to w in the given format.
func Render(w io.Writer, format Format, page *Page) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, page)
	case FormatHTML:
		return renderHTML(w, page)
	default:
		return renderText(w, page)
	}
}

func renderJSON(w io.Writer, page *Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}

func renderText(w io.Writer, page *Page) error {
	if page.Hero != nil {
		fmt.Fprintf(w, "Latest %s: %s (%s)\n", page.Hero.Type.Label(), page.Hero.Title, page.Hero.DisplayDate)
		if page.Hero.ListenLink != "" {
			fmt.Fprintf(w, "  Listen: %s\n", page.Hero.ListenLink)
		}
	}
	if page.VideoURL != "" {
		fmt.Fprintf(w, "Video: %s\n", page.VideoURL)
	}
	if page.Hero != nil || page.VideoURL != "" {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s / %s\n\n", page.Category.Label(), page.Sort.Label())

	if page.Message != "" {
		fmt.Fprintln(w, page.Message)
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "TYPE\tTITLE\tARTIST\tDATE\tLINK")
		for _, r := range page.Releases {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.TypeTag, r.Title, r.Artist, r.DisplayDate, r.DetailPath())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n© %d %s\n", page.Year, page.ArtistName)
	return err
}

type card struct {
	Title       string
	Artist      string
	Image       string
	TypeTag     string
	DisplayDate string
	ListenLink  string
	DetailPath  string
}

func cards(releases []model.Release) []card {
	out := make([]card, len(releases))
	for i := range releases {
		r := &releases[i]
		out[i] = card{
			Title:       r.Title,
			Artist:      r.Artist,
			Image:       r.Image,
			TypeTag:     r.TypeTag,
			DisplayDate: r.DisplayDate,
			ListenLink:  r.ListenLink,
			DetailPath:  r.DetailPath(),
		}
	}
	return out
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.ArtistName}} | Discography</title>
</head>
<body>
<header>
<h1>{{.ArtistName}}</h1>
<nav>{{range .Navigation}}<a href="{{.URL}}">{{.Label}}</a> {{end}}</nav>
</header>
{{with .Hero}}<section class="hero">
<img src="{{.Image}}" alt="{{.Title}} cover art">
<p class="tag">Latest {{.Label}}</p>
<h2>{{.Title}}</h2>
<p class="date">{{.DisplayDate}}</p>
{{if .ListenLink}}<a class="listen" href="{{.ListenLink}}">Listen now</a>{{end}}
</section>
{{end}}{{with .VideoURL}}<section class="video">
<iframe src="{{.}}" allowfullscreen></iframe>
</section>
{{end}}<section class="discography" data-category="{{.Category}}" data-sort="{{.Sort}}">
{{if .Message}}<p class="empty">{{.Message}}</p>
{{else}}{{range .Cards}}<a class="card" href="{{.DetailPath}}">
<img src="{{.Image}}" alt="{{.Title}} cover art" loading="lazy">
<span class="tag">{{.TypeTag}}</span>
<h3>{{.Title}}</h3>
<p class="artist">{{.Artist}}</p>
<p class="date">{{.DisplayDate}}</p>
</a>
{{end}}{{end}}</section>
<footer>
{{range .Social}}<a href="{{.URL}}">{{.Label}}</a> {{end}}
<p>&copy; {{.Year}} {{.ArtistName}}</p>
</footer>
</body>
</html>
`))

type heroView struct {
	Title       string
	Image       string
	Label       string
	DisplayDate string
	ListenLink  string
}

func renderHTML(w io.Writer, page *Page) error {
	data := struct {
		*Page
		Hero  *heroView
		Cards []card
	}{Page: page, Cards: cards(page.Releases)}

	if h := page.Hero; h != nil {
		data.Hero = &heroView{
			Title:       h.Title,
			Image:       h.Image,
			Label:       h.Type.Label(),
			DisplayDate: h.DisplayDate,
			ListenLink:  h.ListenLink,
		}
	}

	return pageTemplate.Execute(w, data)
}
