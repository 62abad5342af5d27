// Package logger prints pipeline progress for the fundamentus CLI.
// Debug, info and section lines appear only with --verbose; warnings
// are always printed. Tags are coloured when the output is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	styled            = isTerminal(os.Stderr)
)

var (
	debugTag   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	infoTag    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnTag    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	sectionTag = lipgloss.NewStyle().Bold(true)
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
// Styling is enabled only when w is a terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	styled = isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func emit(always bool, style lipgloss.Style, tag, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !always && !verbose {
		return
	}
	if styled {
		tag = style.Render(tag)
	}
	fmt.Fprintf(output, tag+" "+format+"\n", args...)
}

// Debug prints pipeline detail when verbose.
func Debug(format string, args ...any) {
	emit(false, debugTag, "[DEBUG]", format, args...)
}

// Info prints a progress message when verbose.
func Info(format string, args ...any) {
	emit(false, infoTag, "[INFO]", format, args...)
}

// Warn prints a warning regardless of verbosity.
func Warn(format string, args ...any) {
	emit(true, warnTag, "[WARN]", format, args...)
}

// Section prints a stage header when verbose.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	header := "== " + name + " =="
	if styled {
		header = sectionTag.Render(header)
	}
	fmt.Fprintf(output, "\n%s\n", header)
}
