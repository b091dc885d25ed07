// Package cmdline splits registry-stored command strings into an
// executable path plus raw arguments, and joins them back with quoting
// applied only when needed. It is not a general shell tokenizer: quotes
// embedded inside the argument string are passed through untouched.
package cmdline

import (
	"errors"
	"strings"

	"github.com/TristanAtze/WindowsAutostartApi/internal/winpath"
)

// ErrUnterminatedQuote is returned by Split for a command that opens a
// quote around the executable but never closes it.
var ErrUnterminatedQuote = errors.New("cmdline: unterminated quote in command")

// Split separates a stored command string into target and arguments.
// A leading double quote delimits the target up to the matching quote;
// otherwise the target runs to the first whitespace. Arguments are the
// trimmed remainder, empty when absent.
func Split(command string) (target, args string, err error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return "", "", nil
	}

	if strings.HasPrefix(command, `"`) {
		end := strings.IndexByte(command[1:], '"')
		if end < 0 {
			return "", "", ErrUnterminatedQuote
		}
		target = command[1 : end+1]
		args = strings.TrimSpace(command[end+2:])
		return target, args, nil
	}

	if i := strings.IndexAny(command, " \t"); i >= 0 {
		return command[:i], strings.TrimSpace(command[i:]), nil
	}
	return command, "", nil
}

// Join builds the stored command string for a target and optional
// arguments, quoting the target only when it needs it.
func Join(target, args string) string {
	cmd := winpath.QuoteIfNeeded(target)
	if a := strings.TrimSpace(args); a != "" {
		cmd += " " + a
	}
	return cmd
}
