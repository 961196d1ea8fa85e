// Package issue extracts the issue reference and slug from free-text issue titles.
package issue

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/danielolaszy/flowcmd/pkg/models"
)

var (
	issueRefPattern   = regexp.MustCompile(`#(\d+)`)
	whitespacePattern = regexp.MustCompile(`[\t\n\v\f\r\p{Z}\x{FEFF}]+`)
	nonSlugPattern    = regexp.MustCompile(`[^\w-]`)
)

// ParseTitle returns the issue number and slug for a title such as
// "Fix chapter 1 #89" -> {"89", "fix-chapter-1"}.
//
// Only the first #<digits> is treated as the reference. Any later ones lose
// their '#' to the slug filter but keep their digits.
func ParseTitle(title string) models.ParsedIssue {
	var parsed models.ParsedIssue

	rest := title
	if loc := issueRefPattern.FindStringSubmatchIndex(title); loc != nil {
		parsed.IssueNumber = title[loc[2]:loc[3]]
		rest = title[:loc[0]] + title[loc[1]:]
	}

	parsed.IssueSlug = Slugify(rest)
	return parsed
}

// Slugify lowercases s, turns whitespace runs into hyphens and drops every
// character that is not a word character or hyphen.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimFunc(s, isSlugSpace))
	s = whitespacePattern.ReplaceAllString(s, "-")
	return nonSlugPattern.ReplaceAllString(s, "")
}

// isSlugSpace reports whether r is one of the characters whitespacePattern
// matches.
func isSlugSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}
