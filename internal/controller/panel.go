package controller

// ClickTarget classifies a click for the document-level listener.
type ClickTarget int

const (
	TargetOutside ClickTarget = iota
	TargetModeToggle
	TargetOptionsTrigger
	TargetPanel
)

// Control identifies the element that has keyboard focus.
type Control int

const (
	ControlNone Control = iota
	ControlModeToggle
	ControlOptionsTrigger
	ControlPanel
)

// TogglePanel flips the options panel. When it opens, clicks outside the
// panel close it, but only after the outside-click delay so the opening
// click itself is not counted.
func (c *Controller) TogglePanel() {
	c.setPanelOpen(!c.panelOpen)

	if !c.panelOpen {
		return
	}

	if c.armTimer != nil {
		c.armTimer.Stop()
	}

	c.armTimer = c.scheduler.AfterFunc(c.outsideClickDelay, func() {
		c.armTimer = nil
		if c.panelOpen {
			c.outsideArmed = true
		}
	})
}

// ClosePanel hides the options panel.
func (c *Controller) ClosePanel() {
	c.setPanelOpen(false)
}

func (c *Controller) setPanelOpen(open bool) {
	c.panelOpen = open
	c.view.SetPanelOpen(open)

	if !open {
		c.outsideArmed = false
		if c.armTimer != nil {
			c.armTimer.Stop()
			c.armTimer = nil
		}
	}
}

// Click delivers a pointer click: activations of the mode toggle and the
// options trigger first, then the document-level outside-click listener.
// Selecting options and undo are invoked directly by the view.
func (c *Controller) Click(target ClickTarget) {
	switch target {
	case TargetModeToggle:
		c.ToggleMode()
	case TargetOptionsTrigger:
		c.TogglePanel()
	}

	c.HandleDocumentClick(target)
}

// HandleDocumentClick closes the panel when an armed outside-click listener
// sees a click outside the panel and its trigger. The listener fires once.
func (c *Controller) HandleDocumentClick(target ClickTarget) {
	if !c.outsideArmed {
		return
	}

	if target == TargetPanel || target == TargetOptionsTrigger {
		return
	}

	c.outsideArmed = false
	c.setPanelOpen(false)
}

// HandleKey handles a key pressed while focus is on control. Enter and space
// activate the mode toggle and options trigger as a click would; escape
// closes the panel while focus is inside it. It reports whether the key was
// consumed.
func (c *Controller) HandleKey(focus Control, key string) bool {
	switch key {
	case "enter", " ", "space":
		switch focus {
		case ControlModeToggle:
			c.Click(TargetModeToggle)
			return true
		case ControlOptionsTrigger:
			c.Click(TargetOptionsTrigger)
			return true
		}
	case "esc", "escape":
		if focus == ControlPanel {
			c.ClosePanel()
			return true
		}
	}

	return false
}
