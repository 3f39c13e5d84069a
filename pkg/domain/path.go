package domain

import "strings"

// ParsePath splits a slash-delimited group path into its ordered segments.
// Segments are trimmed; empty segments produced by leading, trailing or
// doubled separators are dropped. An empty input means "attach at root" and
// yields a nil slice. A non-empty input that reduces to zero segments after
// trimming returns an InvalidPathError, since the grouping intent is
// ambiguous.
func ParsePath(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var segments []string
	for _, part := range strings.Split(raw, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}

	if segments == nil {
		return nil, &InvalidPathError{Raw: raw}
	}
	return segments, nil
}
