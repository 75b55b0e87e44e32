package util

import (
	"os"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// SafeFileName turns arbitrary record text into a name usable on any
// filesystem: spaces become underscores, everything outside
// [A-Za-z0-9_-] is dropped.
func SafeFileName(text string) string {
	text = strings.ReplaceAll(strings.TrimSpace(text), " ", "_")
	text = unsafeChars.ReplaceAllString(text, "")
	if text == "" {
		return "unknown"
	}
	return text
}
