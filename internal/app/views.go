package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kyleking/lazytheme/internal/controller"
	"github.com/kyleking/lazytheme/internal/ui"
	"github.com/kyleking/lazytheme/internal/ui/modal"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// regions records where clickable elements were drawn.
type regions struct {
	toggle  modal.Rect
	trigger modal.Rect

	panelOpen bool
	panel     modal.Rect
	themes    modal.Rect
	accents   modal.Rect

	bannerVisible bool
	banner        modal.Rect
}

// Rows above the first option inside a list box: border and title.
const listHeaderRows = 2

// optionAt maps a click inside the panel to an option row.
func (r regions) optionAt(x, y int) (PanelList, int, bool) {
	for _, box := range []struct {
		list PanelList
		rect modal.Rect
	}{
		{ListThemes, r.themes},
		{ListAccents, r.accents},
	} {
		if !box.rect.Contains(x, y) {
			continue
		}
		// Last row is the bottom border.
		idx := y - box.rect.Y - listHeaderRows
		if idx < 0 || y >= box.rect.Y+box.rect.Height-1 {
			return box.list, 0, false
		}
		return box.list, idx, true
	}
	return ListThemes, 0, false
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	main, _ := m.render()
	main = ui.PageStyle.Width(m.width).Height(m.height).Render(main)

	if m.modalStack.HasActive() {
		return m.modalStack.Render(main)
	}

	return main
}

func (m Model) render() (string, regions) {
	var (
		r     regions
		lines []string
	)

	header, toggle, trigger := m.viewHeader()
	r.toggle = toggle
	r.trigger = trigger
	lines = append(lines, header, "")

	if m.page.PanelOpen() {
		panel, themes, accents := m.viewPanel()
		y := len(lines)

		r.panelOpen = true
		r.panel = modal.Rect{Y: y, Width: lipgloss.Width(panel), Height: lipgloss.Height(panel)}
		r.themes = themes
		r.themes.Y = y
		r.accents = accents
		r.accents.Y = y

		lines = append(lines, strings.Split(panel, "\n")...)
		lines = append(lines, "")
	}

	lines = append(lines, strings.Split(m.viewCurrent(), "\n")...)
	lines = append(lines, "")

	if text, visible := m.page.Banner(); visible {
		banner := m.viewBanner(text)
		r.bannerVisible = true
		r.banner = modal.Rect{Y: len(lines), Width: lipgloss.Width(banner), Height: lipgloss.Height(banner)}
		lines = append(lines, strings.Split(banner, "\n")...)
		lines = append(lines, "")
	}

	if m.status != "" {
		lines = append(lines, ui.SubtitleStyle.Render(m.status))
	}
	lines = append(lines, ui.HelpStyle.Render("[tab] focus  [t] mode  [o] options  [/] filter  [u] undo  [y] copy  [?] help  [q] quit"))

	return strings.Join(lines, "\n"), r
}

func (m Model) viewHeader() (string, modal.Rect, modal.Rect) {
	title := ui.TitleStyle.Render("lazytheme") + "  "

	toggleLabel := "[☀ Light]"
	if m.page.ToggleChecked() {
		toggleLabel = "[☾ Dark]"
	}
	toggle := m.controlStyle(controller.ControlModeToggle).Render(toggleLabel)

	triggerLabel := "[Options ▾]"
	if m.page.PanelOpen() {
		triggerLabel = "[Options ▴]"
	}
	gap := " "
	trigger := m.controlStyle(controller.ControlOptionsTrigger).Render(triggerLabel)

	x := lipgloss.Width(title)
	toggleRect := modal.Rect{X: x, Width: lipgloss.Width(toggle), Height: 1}
	x += toggleRect.Width + lipgloss.Width(gap)
	triggerRect := modal.Rect{X: x, Width: lipgloss.Width(trigger), Height: 1}

	return title + toggle + gap + trigger, toggleRect, triggerRect
}

func (m Model) controlStyle(c controller.Control) lipgloss.Style {
	if m.focus == c {
		return ui.SelectedStyle.Underline(true)
	}
	return ui.NormalStyle
}

// viewPanel renders the theme and accent lists side by side. The returned
// rectangles are relative to the panel's top-left corner.
func (m Model) viewPanel() (string, modal.Rect, modal.Rect) {
	themes := m.viewList("Themes", m.page.themes, ListThemes, theme.FormatName)
	accents := m.viewList("Accents", m.page.accents, ListAccents, func(s string) string { return s })

	themeRect := modal.Rect{Width: lipgloss.Width(themes), Height: lipgloss.Height(themes)}
	accentRect := modal.Rect{X: themeRect.Width, Width: lipgloss.Width(accents), Height: lipgloss.Height(accents)}

	return lipgloss.JoinHorizontal(lipgloss.Top, themes, accents), themeRect, accentRect
}

func (m Model) viewList(title string, opts []*option, list PanelList, label func(string) string) string {
	focused := m.focus == controller.ControlPanel && m.list == list

	style := ui.BorderStyle
	if focused {
		style = ui.FocusedBorderStyle
	}

	var content strings.Builder
	content.WriteString(ui.TitleStyle.Render(title))

	for i, o := range opts {
		content.WriteString("\n")

		marker := "  "
		if o.active {
			marker = ui.ActiveMarkerStyle.Render("● ")
		}

		line := label(o.value)
		if focused && i == m.cursor {
			content.WriteString(marker + ui.SelectedStyle.Render("> "+line))
		} else {
			content.WriteString(marker + ui.NormalStyle.Render("  "+line))
		}
	}

	return style.Padding(0, 1).Render(content.String())
}

func (m Model) viewCurrent() string {
	current := m.ctrl.CurrentTheme()

	line := ui.SubtitleStyle.Render("Theme: ") + ui.NormalStyle.Render(theme.FormatName(current)) +
		ui.SubtitleStyle.Render("  Accent: ") + ui.NormalStyle.Render(m.ctrl.CurrentAccent())

	if m.ctrl.FollowsSystem() {
		line += ui.SubtitleStyle.Render("  (following system)")
	}

	return line + "\n" + ui.SubtitleStyle.Render(m.doc.Snippet())
}

func (m Model) viewBanner(text string) string {
	return ui.BannerStyle.Render(text + "  " + ui.SelectedStyle.Render("[u] undo"))
}
