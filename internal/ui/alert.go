package ui

// Alert is the single shared error region. It is either hidden or visible
// with one message; a new error while visible overwrites the message without
// re-toggling, and nothing is queued.
type Alert struct {
	visible bool
	message string

	// startupToggled records that the startup load path already toggled the
	// alert once, so the second of the two parallel fetches failing cannot
	// re-show an alert the user has dismissed.
	startupToggled bool
}

// Show makes the alert visible with msg, overwriting any displayed message.
func (a *Alert) Show(msg string) {
	a.message = msg
	a.visible = true
}

// ShowStartup is the startup load path's entry point. The first call behaves
// like Show; a later call only updates the message if the alert is still
// visible, and is dropped entirely once the user has dismissed it.
func (a *Alert) ShowStartup(msg string) {
	if a.startupToggled {
		if a.visible {
			a.message = msg
		}
		return
	}
	a.startupToggled = true
	a.Show(msg)
}

// Hide clears the message and hides the alert.
func (a *Alert) Hide() {
	a.visible = false
	a.message = ""
}

// Visible reports whether the alert is currently shown.
func (a *Alert) Visible() bool { return a.visible }

// Message returns the displayed message, empty when hidden.
func (a *Alert) Message() string { return a.message }

// View renders the alert region, or nothing when hidden.
func (a *Alert) View() string {
	if !a.visible {
		return ""
	}
	return alertStyle.Render(errorStyle.Render("✖ ") + a.message + mutedStyle.Render("  · x to dismiss"))
}
