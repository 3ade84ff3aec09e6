package utils

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile("[^a-z0-9]+")

// Slugify turns free text into a DNS-safe label, used to suggest a tenant
// subdomain from its company name.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
