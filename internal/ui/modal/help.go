package modal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyleking/lazytheme/internal/ui"
)

// HelpModal displays keyboard shortcuts and help.
type HelpModal struct {
	done bool
	keys helpKeyMap
}

type helpKeyMap struct {
	Close key.Binding
}

func defaultHelpKeyMap() helpKeyMap {
	return helpKeyMap{
		Close: key.NewBinding(key.WithKeys("esc", "?", "q")),
	}
}

// NewHelpModal creates a new help modal.
func NewHelpModal() *HelpModal {
	return &HelpModal{
		keys: defaultHelpKeyMap(),
	}
}

// Update handles input for the help modal.
func (m *HelpModal) Update(msg tea.Msg) (Context, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Close) {
			m.done = true
		}
	}

	return m, nil
}

// View renders the help modal.
func (m *HelpModal) View() string {
	return ui.TitleStyle.Render("Keyboard Shortcuts") + `

` + ui.SubtitleStyle.Render("Controls") + `
  Tab / Shift+Tab    Move focus: mode toggle, options, panel
  Enter / Space      Activate the focused control
  t                  Toggle light/dark mode
  o                  Open/close theme options

` + ui.SubtitleStyle.Render("Options Panel") + `
  ↑/k, ↓/j           Move within the list
  ←/h, →/l           Switch between themes and accents
  Enter / Space      Apply the highlighted option
  /                  Filter themes
  Esc                Close the panel

` + ui.SubtitleStyle.Render("Application") + `
  u                  Undo the last theme change
  y                  Copy root attributes to clipboard
  ?                  Show this help
  q, Ctrl+C          Quit

` + ui.HelpStyle.Render("Press ? or Esc to close")
}

// IsDone returns true if the modal is finished.
func (m *HelpModal) IsDone() bool {
	return m.done
}

// Result returns nil for help modal.
func (m *HelpModal) Result() any {
	return nil
}
