package app

import "github.com/kyleking/lazytheme/internal/controller"

type option struct {
	value  string
	active bool
}

func (o *option) Value() string { return o.value }

func (o *option) SetActive(active bool) { o.active = active }

// Page is the on-screen state the controller drives: option lists with their
// active markers, the mode toggle, the panel and the notification banner.
type Page struct {
	themes  []*option
	accents []*option

	toggleChecked bool
	panelOpen     bool

	banner        string
	bannerVisible bool
}

// NewPage creates a page offering the given theme and accent values.
func NewPage(themes, accents []string) *Page {
	p := &Page{}
	for _, t := range themes {
		p.themes = append(p.themes, &option{value: t})
	}
	for _, a := range accents {
		p.accents = append(p.accents, &option{value: a})
	}
	return p
}

func (p *Page) ThemeOptions() []controller.Option {
	return asOptions(p.themes)
}

func (p *Page) AccentOptions() []controller.Option {
	return asOptions(p.accents)
}

func (p *Page) SetToggleChecked(checked bool) { p.toggleChecked = checked }

func (p *Page) SetPanelOpen(open bool) { p.panelOpen = open }

func (p *Page) ShowBanner(message string) {
	p.banner = message
	p.bannerVisible = true
}

func (p *Page) HideBanner() { p.bannerVisible = false }

// Banner returns the banner text and whether it is visible.
func (p *Page) Banner() (string, bool) { return p.banner, p.bannerVisible }

// ToggleChecked reports whether the mode toggle shows dark.
func (p *Page) ToggleChecked() bool { return p.toggleChecked }

// PanelOpen reports whether the options panel is shown.
func (p *Page) PanelOpen() bool { return p.panelOpen }

// ActiveTheme returns the theme option marked active, if any.
func (p *Page) ActiveTheme() string { return activeValue(p.themes) }

// ActiveAccent returns the accent option marked active, if any.
func (p *Page) ActiveAccent() string { return activeValue(p.accents) }

func asOptions(opts []*option) []controller.Option {
	out := make([]controller.Option, len(opts))
	for i, o := range opts {
		out[i] = o
	}
	return out
}

func activeValue(opts []*option) string {
	for _, o := range opts {
		if o.active {
			return o.value
		}
	}
	return ""
}

func indexOf(opts []*option, value string) int {
	for i, o := range opts {
		if o.value == value {
			return i
		}
	}
	return -1
}
