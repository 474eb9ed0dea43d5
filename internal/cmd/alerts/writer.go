package alerts

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/agentstation/shipyard/internal/cmd/output"
)

// Writer writes alerts to an io.Writer. Table and unset formats print styled
// text; json and yaml print a structured record.
type Writer struct {
	w        io.Writer
	format   output.Format
	noColor  bool
	renderer *lipgloss.Renderer
}

// NewWriter creates a Writer. Colour follows the capabilities lipgloss
// detects for w unless noColor is set.
func NewWriter(w io.Writer, format output.Format, noColor bool) *Writer {
	return &Writer{
		w:        w,
		format:   format,
		noColor:  noColor,
		renderer: lipgloss.NewRenderer(w),
	}
}

// alertData represents alert data for structured output.
type alertData struct {
	Level   string   `json:"level" yaml:"level"`
	Message string   `json:"message" yaml:"message"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Write writes an alert in the configured format.
func (aw *Writer) Write(alert *Alert) error {
	switch aw.format {
	case output.FormatJSON, output.FormatYAML:
		data := alertData{
			Level:   alert.Level.String(),
			Message: alert.Message,
			Details: alert.Details,
		}
		if alert.Err != nil {
			data.Error = alert.Err.Error()
		}
		return output.NewFormatter(aw.format).Format(aw.w, data)
	default:
		return aw.writeText(alert)
	}
}

func (aw *Writer) writeText(alert *Alert) error {
	style := aw.Style().Foreground(alert.Level.Color())
	if alert.Level == LevelError || alert.Level == LevelWarning {
		style = style.Bold(true)
	}
	if _, err := fmt.Fprintln(aw.w, aw.Render(style, alert.String())); err != nil {
		return err
	}
	for _, detail := range alert.Details {
		if _, err := fmt.Fprintf(aw.w, "   %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

// Style returns a new style bound to this writer's renderer.
func (aw *Writer) Style() lipgloss.Style {
	return aw.renderer.NewStyle()
}

// Render applies style to s unless colour is disabled.
func (aw *Writer) Render(style lipgloss.Style, s string) string {
	if aw.noColor {
		return s
	}
	return style.Render(s)
}
