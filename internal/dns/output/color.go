package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorPolicy selects when the table renderer emits ANSI color, per the
// `--color {always,automatic,never}` flag. This engine carries a simple
// policy, not the teacher CLI's full per-record-type palette.
type ColorPolicy int

const (
	ColorAutomatic ColorPolicy = iota
	ColorAlways
	ColorNever
)

// ParseColorPolicy maps a flag value to a ColorPolicy. An unrecognized
// value returns an error for the caller to wrap in an ArgumentError.
func ParseColorPolicy(s string) (ColorPolicy, error) {
	switch s {
	case "always":
		return ColorAlways, nil
	case "automatic", "auto":
		return ColorAutomatic, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, &unknownEnumError{flag: "--color", value: s}
	}
}

// Enabled resolves the policy against stdout: Always and Never are
// absolute, Automatic defers to isatty.
func (p ColorPolicy) Enabled() bool {
	switch p {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func colorize(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + ansiReset
}

type unknownEnumError struct {
	flag  string
	value string
}

func (e *unknownEnumError) Error() string {
	return "unknown value " + quote(e.value) + " for " + e.flag
}

func quote(s string) string { return "\"" + s + "\"" }
