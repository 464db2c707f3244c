// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/mrjar/internal/core/domain"
)

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Circle  = "○"
)

// ForStatus returns the icon and color used to render a pass status.
func ForStatus(status domain.PassStatus) (string, lipgloss.Color) {
	switch status {
	case domain.PassStatusCompleted:
		return Check, Green
	case domain.PassStatusFailed:
		return Cross, Red
	case domain.PassStatusUpToDate:
		return Tilde, Slate
	case domain.PassStatusNoSource:
		return Warning, Yellow
	default:
		return Circle, Slate
	}
}
