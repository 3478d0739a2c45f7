package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors, shared by every command that reports on stderr.
var (
	colorPrimary = lipgloss.Color("#00ff9f")
	colorDim     = lipgloss.Color("#6e7681")
	colorFail    = lipgloss.Color("#ff5f5f")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	okStyle    = lipgloss.NewStyle().Foreground(colorPrimary)
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorFail)
	dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// banner prints "== name ==" the way the test harness separates runs.
func banner(w io.Writer, name string) {
	fmt.Fprintln(w, titleStyle.Render("== "+name+" =="))
}

// progress returns a row callback printing "\rline...N" to w.
func progress(w io.Writer) func(row int) {
	return func(row int) {
		fmt.Fprintf(w, "\r%s", dimStyle.Render(fmt.Sprintf("line...%d", row)))
	}
}

// openInput opens path for reading; "" and "-" mean stdin.
func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, f.Close, nil
}

// openOutput creates path for writing; "" and "-" mean stdout.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
