// Package winpath validates Windows file-system paths and autostart entry
// names against length, character, and reserved-name rules.
package winpath

import "strings"

// MaxPath is the classic Windows path-length limit.
const MaxPath = 260

// MaxEntryName is the longest accepted autostart entry name.
const MaxEntryName = 255

const invalidNameChars = `\/:*?"<>|`

// Characters disallowed in path components. Colon and backslash are legal
// structurally and handled separately.
const invalidPathChars = `<>"|?*`

var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// IsValidPath reports whether path is usable as an autostart target.
// Accepted forms: drive-qualified paths, UNC paths, extended-length
// (`\\?\`) paths, bare file names, and any of those wrapped in quotes.
func IsValidPath(path string) bool {
	p := StripQuotes(strings.TrimSpace(path))
	if p == "" {
		return false
	}
	if len(p) > MaxPath {
		return false
	}

	rest := p
	switch {
	case strings.HasPrefix(p, `\\?\`):
		rest = p[len(`\\?\`):]
		if rest == "" {
			return false
		}
		// Extended-length paths carry the drive spec inside the prefix.
		if len(rest) >= 2 && rest[1] == ':' && isDriveLetter(rest[0]) {
			rest = rest[2:]
		}
	case strings.HasPrefix(p, `\\`):
		// UNC: \\server\share[\...]
		rest = p[2:]
		if rest == "" || strings.HasPrefix(rest, `\`) {
			return false
		}
	case isDrivePath(p):
		rest = p[3:]
	default:
		// Only a bare file name is acceptable without qualification.
		if strings.ContainsAny(p, `\/`) {
			return false
		}
	}

	for _, r := range rest {
		if r < 0x20 || strings.ContainsRune(invalidPathChars, r) || r == ':' {
			return false
		}
	}

	return !isReserved(baseName(p))
}

// IsValidEntryName reports whether name is a legal registry value name and
// shortcut file stem.
func IsValidEntryName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if len(name) > MaxEntryName {
		return false
	}
	return !strings.ContainsAny(name, invalidNameChars)
}

// QuoteIfNeeded wraps path in double quotes when it contains characters
// the command interpreter would otherwise split on. Already-quoted and
// plain paths pass through unchanged.
func QuoteIfNeeded(path string) string {
	if path == "" {
		return path
	}
	if len(path) >= 2 && strings.HasPrefix(path, `"`) && strings.HasSuffix(path, `"`) {
		return path
	}
	if !strings.ContainsAny(path, " &^") {
		return path
	}
	return `"` + path + `"`
}

// StripQuotes removes one pair of surrounding double quotes, if present.
func StripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDrivePath(p string) bool {
	return len(p) >= 3 && isDriveLetter(p[0]) && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}

// baseName returns the final path component, honoring both separators.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// isReserved reports whether the file name, ignoring its extension, is a
// reserved DOS device name.
func isReserved(name string) bool {
	stem := name
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	_, ok := reservedNames[strings.ToUpper(strings.TrimSpace(stem))]
	return ok
}
