package service

import (
	"regexp"
	"strings"

	gosimpleslug "github.com/gosimple/slug"
)

var listSeparators = regexp.MustCompile(`[\n,]+`)

// SplitList parses multi-value form input. Tokens are separated by commas or
// newlines; each is trimmed and empty tokens are dropped.
func SplitList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, part := range listSeparators.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:watch\?v=|embed/|shorts/))?([A-Za-z0-9_-]{11})`)

// ExtractYouTubeID pulls an 11-character video id out of the known YouTube
// URL shapes (watch, embed, shorts, short-link). Input that matches no known
// shape is returned as-is, on the assumption it already is an id.
func ExtractYouTubeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	m := youtubeIDPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return m[1]
}

// DeriveSlug returns the submitted slug trimmed, falling back to a slug
// derived from the display name when the submission is blank.
func DeriveSlug(submitted, name string) string {
	s := strings.TrimSpace(submitted)
	if s == "" {
		return gosimpleslug.Make(name)
	}
	return s
}
