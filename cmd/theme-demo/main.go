package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kyleking/lazytheme/internal/ui"
	"github.com/kyleking/lazytheme/internal/ui/modal"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

type model struct {
	filter *modal.FilterModal
	width  int
	height int
	result string
	done   bool
}

func initialModel() model {
	return model{
		filter: modal.NewFilterModal("Pick a Theme (Demo)", theme.All(), ""),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.done) {
			return m, tea.Quit
		}

		if msg.String() == "r" && m.done {
			return initialModel().withSize(m.width, m.height), nil
		}

	case modal.FilterResultMsg:
		if !msg.Cancelled {
			m.result = msg.Value
			ui.ApplyAttributes(m.result, theme.DefaultAccent)
		}
		m.done = true

		return m, nil
	}

	if !m.done {
		ctx, cmd := m.filter.Update(msg)
		m.filter = ctx.(*modal.FilterModal)

		return m, cmd
	}

	return m, nil
}

func (m model) withSize(width, height int) model {
	m.width = width
	m.height = height
	return m
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.done {
		if m.result == "" {
			return "Cancelled.\n\nPress 'q' to quit."
		}

		return swatches(m.result) + "\n\n" + ui.HelpStyle.Render("[r] pick again  [q] quit")
	}

	debugInfo := fmt.Sprintf("Terminal: %dx%d\n", m.width, m.height)

	return debugInfo + "\n" + m.filter.View()
}

// swatches renders the colour roles of id once per accent.
func swatches(id string) string {
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render(theme.FormatName(id)))
	b.WriteString("\n\n")

	for _, accent := range theme.Accents() {
		p := theme.Palette(id, accent)

		cell := func(c lipgloss.Color) string {
			return lipgloss.NewStyle().Background(c).Render("    ")
		}

		b.WriteString(fmt.Sprintf("%-8s", accent))
		for _, c := range []lipgloss.Color{p.Background, p.Surface, p.Text, p.Primary, p.Secondary, p.Muted, p.Accent, p.Error} {
			b.WriteString(cell(c))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.SubtitleStyle.Render("bg  surface  text  primary  secondary  muted  accent  error"))

	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
