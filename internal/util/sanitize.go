package util

import (
	"regexp"
	"strings"
)

var nonNameChars = regexp.MustCompile(`[^a-z0-9_.-]`)

// SanitizeName converts a string into a valid compose service name.
// Compose service names must be alphanumeric with dots, hyphens and
// underscores, and must not start with a separator.
func SanitizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = nonNameChars.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, "_.-")
	if s == "" {
		return "service"
	}
	return s
}
