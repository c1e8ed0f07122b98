package modal

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyleking/lazytheme/internal/ui"
	"github.com/kyleking/lazytheme/internal/ui/theme"
)

// FilterResultMsg is sent when a filtered item is chosen or the filter is cancelled.
type FilterResultMsg struct {
	Value     string
	Cancelled bool
}

type filterKeyMap struct {
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Up     key.Binding
}

// FilterModal presents a fuzzy filter over theme identifiers.
type FilterModal struct {
	title     string
	input     textinput.Model
	items     []string
	matches   []string
	selected  int
	done      bool
	cancelled bool
	result    string
	keys      filterKeyMap
}

// NewFilterModal creates a new filter modal.
func NewFilterModal(title string, items []string, currentFilter string) *FilterModal {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "/ "
	ti.SetValue(currentFilter)
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	// Remove backgrounds from textinput styles to prevent visual artifacts in modal
	ti.PromptStyle = ti.PromptStyle.UnsetBackground()
	ti.TextStyle = ti.TextStyle.UnsetBackground()
	ti.PlaceholderStyle = ti.PlaceholderStyle.UnsetBackground()
	ti.CompletionStyle = ti.CompletionStyle.UnsetBackground()
	ti.Cursor.Style = ti.Cursor.Style.UnsetBackground()

	m := &FilterModal{
		title: title,
		input: ti,
		items: items,
		keys: filterKeyMap{
			Down:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
			Enter:  key.NewBinding(key.WithKeys("enter")),
			Escape: key.NewBinding(key.WithKeys("esc")),
			Up:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
		},
	}
	m.updateMatches()

	return m
}

func (m *FilterModal) updateMatches() {
	query := m.input.Value()
	m.matches = ui.ApplyFuzzyFilter(query, m.items)

	if m.selected >= len(m.matches) {
		m.selected = 0
	}
}

// Update handles input for the filter modal.
func (m *FilterModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.matches)-1 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			m.done = true

			if len(m.matches) == 0 {
				m.cancelled = true
				return m, func() tea.Msg {
					return FilterResultMsg{Cancelled: true}
				}
			}

			m.result = m.matches[m.selected]

			return m, func() tea.Msg {
				return FilterResultMsg{Value: m.result}
			}
		case key.Matches(msg, m.keys.Escape):
			m.done = true
			m.cancelled = true

			return m, func() tea.Msg {
				return FilterResultMsg{Cancelled: true}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.updateMatches()

	return m, cmd
}

// View renders the filter modal.
func (m *FilterModal) View() string {
	s := ui.TitleStyle.Render(m.title) + "\n\n"
	s += m.input.View() + "\n\n"

	matchText := "Matches: " + strconv.Itoa(len(m.matches)) + "/" + strconv.Itoa(len(m.items))
	s += ui.SubtitleStyle.Render(matchText) + "\n\n"

	maxPreview := 5
	if len(m.matches) < maxPreview {
		maxPreview = len(m.matches)
	}

	for i := 0; i < maxPreview; i++ {
		label := theme.FormatName(m.matches[i])
		if i == m.selected {
			s += ui.SelectedStyle.Render("> "+label) + "\n"
		} else {
			s += ui.NormalStyle.Render("  "+label) + "\n"
		}
	}

	if len(m.matches) > 5 {
		s += ui.SubtitleStyle.Render("  ...and " + strconv.Itoa(len(m.matches)-5) + " more")
	}

	s += "\n" + ui.HelpStyle.Render("[↑↓] move  [enter] apply  [esc] cancel")

	return s
}

// IsDone returns true if the modal is finished.
func (m *FilterModal) IsDone() bool {
	return m.done
}

// Result returns the chosen item, or "" if cancelled.
func (m *FilterModal) Result() any {
	return m.result
}
