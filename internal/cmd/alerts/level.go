package alerts

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates a failure or error condition.
	LevelError Level = iota
	// LevelWarning indicates a potential issue or important notice.
	LevelWarning
	// LevelInfo indicates general informational messages.
	LevelInfo
	// LevelSuccess indicates successful completion of an operation.
	LevelSuccess
)

// Symbols prefixed to alert messages.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "!"
	SymbolInfo    = "i"
	SymbolUnknown = "?"
)

// Accent is the highlight colour used for ship tag lines.
const Accent = lipgloss.Color("#e9a576")

// String returns the string representation of the alert level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the appropriate icon for the alert level.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return SymbolError
	case LevelWarning:
		return SymbolWarning
	case LevelInfo:
		return SymbolInfo
	case LevelSuccess:
		return SymbolSuccess
	default:
		return SymbolUnknown
	}
}

// Color returns the foreground colour for the level.
func (l Level) Color() lipgloss.Color {
	switch l {
	case LevelError:
		return lipgloss.Color("#FF6B6B")
	case LevelWarning:
		return lipgloss.Color("#FFE66D")
	case LevelInfo:
		return lipgloss.Color("#A8DADC")
	case LevelSuccess:
		return lipgloss.Color("#95E1A3")
	default:
		return lipgloss.Color("#6C757D")
	}
}
