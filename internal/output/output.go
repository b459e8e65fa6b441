// Package output provides formatted terminal output utilities.
// It includes colors, tables, prompts, and other CLI display helpers.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"

	"github.com/fatih/color"
)

var (
	// Colors and styles
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)

	// Stdout is the output writer for normal output (can be overridden for testing).
	Stdout io.Writer = os.Stdout
	// Stderr is the output writer for error output (can be overridden for testing).
	Stderr io.Writer = os.Stderr
	// Stdin is the reader used by prompts (can be overridden for testing).
	Stdin io.Reader = os.Stdin

	// Disable colors if not TTY or NO_COLOR is set
	noColor = func() bool {
		disable := os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
		if disable {
			color.NoColor = true
		}
		return disable
	}()
	// Matches ANSI escape sequences used for colors/styles
	ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// visibleWidth returns the number of visible characters, ignoring ANSI escape codes
func visibleWidth(s string) int {
	clean := ansiRegexp.ReplaceAllString(s, "")
	return utf8.RuneCountInString(clean)
}

// Successf prints a success message with a checkmark (to stderr)
// Example: ✓ Phase 1 applied successfully
func Successf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, green.Sprint("✓")+" "+format+"\n", a...)
}

// Infof prints an informational message with an arrow (to stderr)
// Example: → Computing destroy plan for phase 3...
func Infof(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, cyan.Sprint("→")+" "+format+"\n", a...)
}

// Warningf prints a warning message with a warning symbol (to stderr)
// Example: ⚠ 2 resources still tracked after rollback
func Warningf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, yellow.Sprint("⚠")+" "+format+"\n", a...)
}

// Errorf prints an error message with an X symbol (to stderr)
// Example: ✗ terraform apply failed: exit status 1
func Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, red.Sprint("✗")+" "+format+"\n", a...)
}

// Header prints a section header with a separator line (to stderr)
// Example:
// 🚀 cataziza deploy
// ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
func Header(text string) {
	_, _ = fmt.Fprintln(Stderr)
	_, _ = fmt.Fprintln(Stderr, bold.Sprint(text))
	_, _ = fmt.Fprintln(Stderr, gray.Sprint(strings.Repeat("━", constants.HeaderSeparatorLength)))
}

// Subheader prints a smaller section header (to stderr)
// Example:
// Network Checks
// ──────────────
func Subheader(text string) {
	_, _ = fmt.Fprintln(Stderr)
	_, _ = fmt.Fprintln(Stderr, cyan.Sprint(text))
	_, _ = fmt.Fprintln(Stderr, gray.Sprint(strings.Repeat("─", len(text))))
}

// KeyValue prints a key-value pair with indentation
// Example:   Project: acme-dev
func KeyValue(key, value string) {
	_, _ = fmt.Fprintf(Stdout, "  %s: %s\n", gray.Sprint(key), value)
}

// Blank prints a blank line
func Blank() {
	_, _ = fmt.Fprintln(Stdout)
}

// Println prints a plain line without any formatting
func Println(a ...any) {
	_, _ = fmt.Fprintln(Stdout, a...)
}

// Printf prints a formatted plain line
func Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stdout, format, a...)
}

// Bold prints text in bold
func Bold(text string) string {
	return bold.Sprint(text)
}

// Cyan prints text in cyan
func Cyan(text string) string {
	return cyan.Sprint(text)
}

// Gray prints text in gray
func Gray(text string) string {
	return gray.Sprint(text)
}

// Green prints text in green
func Green(text string) string {
	return green.Sprint(text)
}

// Red prints text in red
func Red(text string) string {
	return red.Sprint(text)
}

// Yellow prints text in yellow
func Yellow(text string) string {
	return yellow.Sprint(text)
}

// Table prints a simple table with headers
// Example:
// Category     Status     Metric
// ────────     ──────     ──────
// network      healthy    3 subnets
// compute      error      0 clusters
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				w := visibleWidth(cell)
				if w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	// Print headers
	for i, h := range headers {
		header := bold.Sprint(h)
		pad := max(widths[i]-visibleWidth(h), 0)
		_, _ = fmt.Fprint(Stdout, header)
		_, _ = fmt.Fprint(Stdout, strings.Repeat(" ", pad))
		_, _ = fmt.Fprint(Stdout, "  ")
	}
	_, _ = fmt.Fprintln(Stdout)

	// Print separator
	for i := range headers {
		_, _ = fmt.Fprintf(Stdout, "%s  ", gray.Sprint(strings.Repeat("─", widths[i])))
	}
	_, _ = fmt.Fprintln(Stdout)

	// Print rows
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			pad := max(widths[i]-visibleWidth(cell), 0)
			_, _ = fmt.Fprint(Stdout, cell)
			_, _ = fmt.Fprint(Stdout, strings.Repeat(" ", pad))
			_, _ = fmt.Fprint(Stdout, "  ")
		}
		_, _ = fmt.Fprintln(Stdout)
	}
}

// List prints a bulleted list
// Example:
//   - module.vpc
//   - module.subnets
func List(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintf(Stdout, "  %s %s\n", cyan.Sprint("•"), item)
	}
}

// Confirm prompts the user for yes/no confirmation
// Returns true if user confirms (y/Y), false otherwise
func Confirm(prompt string) bool {
	_, _ = fmt.Fprintf(Stdout, "%s [y/N]: ", yellow.Sprint("?")+" "+prompt)

	reader := bufio.NewReader(Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// Spinner is a simple text spinner for long operations. It animates on
// stderr, so stdout stays clean for piped report output.
type Spinner struct {
	message string
	frames  []string
	frame   int
	done    chan bool
	running bool
}

// NewSpinner creates a new spinner with the given message
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		done:    make(chan bool),
	}
}

// Start starts the spinner animation. Without a TTY the message is
// printed once instead.
func (s *Spinner) Start() {
	if noColor || !isTerminal(os.Stderr) {
		Infof("%s", s.message)
		return
	}

	s.running = true
	go func() {
		ticker := time.NewTicker(constants.SpinnerTickerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[s.frame%len(s.frames)]
				_, _ = fmt.Fprintf(Stderr, "\r%s %s", cyan.Sprint(frame), s.message)
				s.frame++
			}
		}
	}()
}

// Stop stops the spinner and clears the line. Safe to call twice.
func (s *Spinner) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.done <- true
	_, _ = fmt.Fprint(Stderr, "\r"+strings.Repeat(" ", len(s.message)+10)+"\r")
}

// Success stops the spinner and prints a success message
func (s *Spinner) Success(format string, a ...any) {
	s.Stop()
	Successf(format, a...)
}

// Error stops the spinner and prints an error message
func (s *Spinner) Error(format string, a ...any) {
	s.Stop()
	Errorf(format, a...)
}

// StatusBadge prints a colored status badge
func StatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "healthy", "passed", "completed", "success", "applied":
		return green.Sprint("● " + status)
	case "warning", "skipped", "pending":
		return yellow.Sprint("● " + status)
	case "error", "failed":
		return red.Sprint("● " + status)
	default:
		return cyan.Sprint("● " + status)
	}
}

// Duration formats a duration in a human-readable way
func Duration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % constants.SecondsPerMinute
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % constants.MinutesPerHour
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// PlanStats prints terraform plan change counts on one line
// Example:   Plan: 4 to add, 1 to change, 0 to destroy
func PlanStats(add, change, destroy int) {
	_, _ = fmt.Fprintf(Stdout, "  Plan: %s to add, %s to change, %s to destroy\n",
		green.Sprintf("%d", add),
		yellow.Sprintf("%d", change),
		red.Sprintf("%d", destroy))
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		fileInfo, _ := f.Stat()
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
