package sqldsl

import (
	"fmt"
	"strings"
)

// SQLer is an interface for types that can render SQL.
type SQLer interface {
	SQL() string
}

// Sqlf formats SQL with automatic dedenting and blank line removal.
// The SQL shape is visible in the format string.
func Sqlf(format string, args ...any) string {
	s := fmt.Sprintf(format, args...)
	lines := strings.Split(s, "\n")

	// Find minimum indentation (ignoring empty lines)
	minIndent := 1000
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if indent < minIndent {
			minIndent = indent
		}
	}

	// Remove common indent and empty lines
	var result []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) >= minIndent {
			result = append(result, line[minIndent:])
		} else {
			result = append(result, strings.TrimLeft(line, " \t"))
		}
	}

	return strings.Join(result, "\n")
}

// Optf returns formatted string if condition is true, empty string otherwise.
// Useful for optional SQL clauses.
func Optf(cond bool, format string, args ...any) string {
	if !cond {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

// Indent re-emits every non-empty line of text prefixed by count copies of
// token. Blank lines are dropped entirely, not merely left unprefixed, and
// trailing whitespace is stripped from the result. Callers rely on this
// contract for stable nesting depth in generated view bodies; lines are
// always joined with \n so output is byte-identical across platforms.
func Indent(text, token string, count int) string {
	prefix := strings.Repeat(token, count)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, prefix+line)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}
