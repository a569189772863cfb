// Package colors provides ANSI color output helpers for terminal reporting.
package colors

import (
	"fmt"
	"io"
	"regexp"
)

// COLOR is an ANSI escape sequence prefix applied to formatted output.
type COLOR string

const (
	RESET  COLOR = "\033[0m"
	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
)

// Printf prints a colored formatted message to stdout.
func (c COLOR) Printf(format string, args ...any) {
	fmt.Printf(string(c)+format+string(RESET), args...)
}

// Println prints colored values to stdout followed by a newline.
func (c COLOR) Println(args ...any) {
	fmt.Print(string(c))
	fmt.Print(args...)
	fmt.Println(string(RESET))
}

// Fprintf prints a colored formatted message to the given writer.
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, string(c)+format+string(RESET), args...)
}

// Fprintln prints colored values to the given writer followed by a newline.
func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, string(c))
	fmt.Fprint(w, args...)
	fmt.Fprintln(w, string(RESET))
}

// Sprintf returns a colored formatted string.
func (c COLOR) Sprintf(format string, args ...any) string {
	return string(c) + fmt.Sprintf(format, args...) + string(RESET)
}

// Sprint returns colored concatenated values.
func (c COLOR) Sprint(args ...any) string {
	return string(c) + fmt.Sprint(args...) + string(RESET)
}

var ansiPattern = regexp.MustCompile(`\033\[[0-9;]*m`)

// StripANSI removes all ANSI escape sequences from the given string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
