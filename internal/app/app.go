// Package app is the bubbletea front end. Its Page implements the view the
// theme controller drives, and its Model translates keys and mouse clicks
// into controller operations.
package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyleking/lazytheme/internal/config"
	"github.com/kyleking/lazytheme/internal/controller"
	"github.com/kyleking/lazytheme/internal/document"
	"github.com/kyleking/lazytheme/internal/ui"
	"github.com/kyleking/lazytheme/internal/ui/modal"
	"github.com/rs/zerolog"
)

// PanelList identifies which list of the options panel has the cursor.
type PanelList int

const (
	ListThemes PanelList = iota
	ListAccents
)

// Options configures a Model.
type Options struct {
	Config    *config.Config
	Storage   controller.Storage
	System    controller.SystemPreference
	Scheduler controller.Scheduler
	Logger    *zerolog.Logger

	// Bridge, when set, delivers controller timers and watcher callbacks
	// into Update. It is also used as the scheduler unless one is given.
	Bridge *Bridge

	// Clipboard copies text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the root bubbletea model for the application.
type Model struct {
	ctrl *controller.Controller
	doc  *document.Root
	page *Page
	cfg  *config.Config

	bridge *Bridge

	focus  controller.Control
	list   PanelList
	cursor int

	modalStack *modal.Stack
	copy       func(string) error
	logger     zerolog.Logger
	status     string

	width  int
	height int
	keys   KeyMap
}

// New creates the model, wires the controller to its page and document, and
// initializes the controller.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	doc := document.NewRoot()
	doc.Observe(func(string, string, bool) {
		themeID, _ := doc.Attribute(document.AttrTheme)
		accent, _ := doc.Attribute(document.AttrAccent)
		ui.ApplyAttributes(themeID, accent)
	})

	page := NewPage(cfg.Themes, cfg.Accents)

	scheduler := opts.Scheduler
	if scheduler == nil && opts.Bridge != nil {
		scheduler = opts.Bridge
	}

	ctrl := controller.New(controller.Options{
		Storage:              opts.Storage,
		Document:             doc,
		System:               opts.System,
		View:                 page,
		Scheduler:            scheduler,
		Logger:               &logger,
		NotificationDuration: cfg.NotificationDuration,
		OutsideClickDelay:    cfg.OutsideClickDelay,
	})
	ctrl.Init()

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	return Model{
		ctrl:       ctrl,
		doc:        doc,
		page:       page,
		cfg:        cfg,
		bridge:     opts.Bridge,
		focus:      controller.ControlModeToggle,
		modalStack: modal.NewStack(),
		copy:       copyFn,
		logger:     logger,
		keys:       DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.bridge == nil {
		return nil
	}
	return m.bridge.Wait()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callbackMsg:
		msg.run()
		m.syncFocus()
		return m, m.listen()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modalStack.SetSize(msg.Width, msg.Height)
		return m, nil

	case modal.FilterResultMsg:
		return m.handleFilterResult(msg)
	}

	if m.modalStack.HasActive() {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.modalStack.Update(msg)
	return m, cmd
}

// Close releases the controller's subscription and timers.
func (m Model) Close() {
	m.ctrl.Close()
}

// Controller returns the theme controller.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// Document returns the document root the controller writes to.
func (m Model) Document() *document.Root {
	return m.doc
}

// Page returns the state rendered by View.
func (m Model) Page() *Page {
	return m.page
}

// Focus returns the control that has keyboard focus.
func (m Model) Focus() controller.Control {
	return m.focus
}
