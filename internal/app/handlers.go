package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyleking/lazytheme/internal/controller"
	"github.com/kyleking/lazytheme/internal/document"
	"github.com/kyleking/lazytheme/internal/ui/modal"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modalStack.Push(modal.NewHelpModal())
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.ctrl.HandleKey(m.focus, "esc")
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		if m.ctrl.HandleKey(m.focus, msg.String()) {
			m.syncFocus()
			return m, nil
		}
		if m.focus == controller.ControlPanel {
			m.selectCursor()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleMode()
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Options):
		m.ctrl.TogglePanel()
		if m.page.PanelOpen() {
			m.focus = controller.ControlPanel
			m.placeCursor()
		}
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.switchList(ListThemes)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.switchList(ListAccents)
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		return m.openFilterModal()

	case key.Matches(msg, m.keys.Undo):
		m.ctrl.Undo()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyAttributesToClipboard()
	}

	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	_, r := m.render()

	switch {
	case r.toggle.Contains(msg.X, msg.Y):
		m.focus = controller.ControlModeToggle
		m.ctrl.Click(controller.TargetModeToggle)

	case r.trigger.Contains(msg.X, msg.Y):
		m.focus = controller.ControlOptionsTrigger
		m.ctrl.Click(controller.TargetOptionsTrigger)
		if m.page.PanelOpen() {
			m.placeCursor()
		}

	case r.panelOpen && r.panel.Contains(msg.X, msg.Y):
		m.focus = controller.ControlPanel
		if list, idx, ok := r.optionAt(msg.X, msg.Y); ok {
			m.list = list
			m.cursor = idx
			m.selectCursor()
		}
		m.ctrl.Click(controller.TargetPanel)

	case r.bannerVisible && r.banner.Contains(msg.X, msg.Y):
		m.ctrl.Undo()
		m.ctrl.Click(controller.TargetOutside)

	default:
		m.ctrl.Click(controller.TargetOutside)
	}

	m.syncFocus()

	return m, nil
}

func (m Model) handleFilterResult(msg modal.FilterResultMsg) (tea.Model, tea.Cmd) {
	if msg.Cancelled {
		return m, nil
	}

	m.ctrl.SelectTheme(msg.Value)
	if idx := indexOf(m.page.themes, msg.Value); idx >= 0 {
		m.list = ListThemes
		m.cursor = idx
	}

	return m, nil
}

func (m Model) openFilterModal() (tea.Model, tea.Cmd) {
	m.modalStack.Push(modal.NewFilterModal("Filter Themes", m.cfg.Themes, ""))
	return m, nil
}

func (m Model) copyAttributesToClipboard() (tea.Model, tea.Cmd) {
	snippet := m.doc.Snippet()
	if err := m.copy(snippet); err != nil {
		m.logger.Warn().Err(err).Msg("failed to copy attributes")
		m.status = "Copy failed"
		return m, nil
	}

	m.status = "Copied " + snippet
	m.logger.Debug().Str(document.AttrTheme, m.ctrl.CurrentTheme()).Msg("copied attributes")

	return m, nil
}

// cycleFocus moves focus through the mode toggle, the options trigger and,
// when open, the panel.
func (m *Model) cycleFocus(step int) {
	controls := []controller.Control{controller.ControlModeToggle, controller.ControlOptionsTrigger}
	if m.page.PanelOpen() {
		controls = append(controls, controller.ControlPanel)
	}

	current := 0
	for i, c := range controls {
		if c == m.focus {
			current = i
		}
	}

	next := (current + step + len(controls)) % len(controls)
	m.focus = controls[next]

	if m.focus == controller.ControlPanel {
		m.placeCursor()
	}
}

// syncFocus returns focus to the trigger when the panel it was in closes.
func (m *Model) syncFocus() {
	if m.focus == controller.ControlPanel && !m.page.PanelOpen() {
		m.focus = controller.ControlOptionsTrigger
	}
}

// placeCursor puts the cursor on the active option of the current list.
func (m *Model) placeCursor() {
	opts := m.currentList()
	for i, o := range opts {
		if o.active {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

func (m *Model) moveCursor(step int) {
	if !m.page.PanelOpen() {
		return
	}

	m.focus = controller.ControlPanel
	opts := m.currentList()
	m.cursor += step

	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(opts) {
		m.cursor = len(opts) - 1
	}
}

func (m *Model) switchList(list PanelList) {
	if !m.page.PanelOpen() || m.list == list {
		return
	}

	m.focus = controller.ControlPanel
	m.list = list
	m.placeCursor()
}

func (m *Model) selectCursor() {
	opts := m.currentList()
	if m.cursor < 0 || m.cursor >= len(opts) {
		return
	}

	value := opts[m.cursor].value
	if m.list == ListAccents {
		m.ctrl.SelectAccent(value)
		return
	}
	m.ctrl.SelectTheme(value)
}

func (m Model) currentList() []*option {
	if m.list == ListAccents {
		return m.page.accents
	}
	return m.page.themes
}
