// Package ui prints styled status lines and the change report.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/anne-skydancer/ds-collar-modular/model"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	PathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	FaintStyle   = lipgloss.NewStyle().Faint(true)
)

// Out is where status lines go. Stdout is reserved for the report.
var Out io.Writer = os.Stderr

func printStyled(style lipgloss.Style, format string, a ...interface{}) {
	fmt.Fprintln(Out, style.Render(fmt.Sprintf(format, a...)))
}

func Header(format string, a ...interface{}) {
	printStyled(HeaderStyle, format, a...)
}

func Info(format string, a ...interface{}) {
	printStyled(InfoStyle, format, a...)
}

func Success(format string, a ...interface{}) {
	printStyled(SuccessStyle, format, a...)
}

func Warning(format string, a ...interface{}) {
	printStyled(WarningStyle, format, a...)
}

func Error(format string, a ...interface{}) {
	printStyled(ErrorStyle, format, a...)
}

func Path(format string, a ...interface{}) {
	printStyled(PathStyle, "  "+format, a...)
}

// --- Report ---

// ReportHeading is the first line of the report.
func ReportHeading(summary model.Summary) string {
	verb := "Updated"
	if summary.DryRun {
		verb = "Would update"
	}
	return fmt.Sprintf("%s %d files", verb, len(summary.Modified))
}

// PrintReport writes the plain change report: the heading, then one path per
// line.
func PrintReport(w io.Writer, summary model.Summary) error {
	if _, err := fmt.Fprintln(w, ReportHeading(summary)); err != nil {
		return err
	}
	for _, p := range summary.Modified {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
