package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Global flags (set from the root command)
var (
	quiet   bool
	noColor bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true)
	infoMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	warningMark = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc bool) {
	quiet = q
	noColor = nc
}

// SetOutput redirects the printers. Nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func mark(style lipgloss.Style, symbol, plain string) string {
	if noColor {
		return plain + ":"
	}
	return style.Render(symbol)
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", mark(successMark, "✓", "OK"), fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", mark(infoMark, "ℹ", "INFO"), fmt.Sprintf(format, args...))
}

// PrintWarning prints to stderr, even in quiet mode.
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "%s %s\n", mark(warningMark, "⚠", "WARNING"), fmt.Sprintf(format, args...))
}

// PrintError prints to stderr, even in quiet mode.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "%s %s\n", mark(errorMark, "✗", "ERROR"), fmt.Sprintf(format, args...))
}
