package tui

import "strings"

// renderBanner draws the form level error box.
func renderBanner(message string) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	return overlayBoxStyle.Render(errorStyle.Render("Error: ") + message)
}

// renderFieldError renders the message shown under a single input.
func renderFieldError(message string) string {
	if message == "" {
		return ""
	}
	return "\n        " + errorStyle.Render(message)
}
