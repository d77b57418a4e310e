package domain

import (
	"regexp"
	"strings"
)

var threadIDPattern = regexp.MustCompile(`/post/([A-Za-z0-9_-]+)`)

// ExtractThreadID turns a Threads post URL or a bare ID into the post ID.
// Bare IDs pass through trimmed but unvalidated; the upstream fetch will
// reject garbage.
func ExtractThreadID(urlOrID string) (string, error) {
	if urlOrID == "" {
		return "", ErrInvalidInput
	}

	if strings.HasPrefix(urlOrID, "http://") || strings.HasPrefix(urlOrID, "https://") {
		match := threadIDPattern.FindStringSubmatch(urlOrID)
		if match == nil {
			return "", ErrInvalidInput
		}
		return match[1], nil
	}

	threadID := strings.TrimSpace(urlOrID)
	if threadID == "" {
		return "", ErrInvalidInput
	}
	return threadID, nil
}
