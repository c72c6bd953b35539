// ABOUTME: Progress line styling for build output.
// ABOUTME: Uses lipgloss so marks are colored on terminals and plain elsewhere.
package builder

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))

func checkMark() string {
	return successStyle.Render("✓")
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
