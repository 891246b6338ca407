package errors

import (
	stderrors "errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	codeStyle       = lipgloss.NewStyle().Bold(true)
	detailStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Format returns the error formatted for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("ERROR"))
	b.WriteString(" ")
	if e.Code != "" {
		b.WriteString(codeStyle.Render(e.Code + ":"))
		b.WriteString(" ")
	}
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("\n  ")
		b.WriteString(detailStyle.Render(e.Detail))
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		b.WriteString("\n  cause: ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n  ")
		b.WriteString(suggestionStyle.Render("Hint: " + e.Suggestion))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatAny formats err with Format when it is an *Error, and falls back
// to err.Error() otherwise.
func FormatAny(err error) string {
	var ge *Error
	if stderrors.As(err, &ge) {
		return ge.Format()
	}
	return err.Error()
}
