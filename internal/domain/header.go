package domain

import (
	"strings"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

const frameAncestorsDirective = "frame-ancestors"

// ParseLegacy returns the trimmed X-Frame-Options value, or false when the
// header was not sent.
func ParseLegacy(raw m.RawHeader) (string, bool) {
	if !raw.Present {
		return "", false
	}

	return strings.TrimSpace(raw.Value), true
}

// ParseModern returns the whitespace separated tokens of a frame-ancestors
// source list, or false when the header was not sent.
func ParseModern(raw m.RawHeader) ([]string, bool) {
	if !raw.Present {
		return nil, false
	}

	return strings.Fields(raw.Value), true
}

// SplitLegacy splits a header on commas, the way browsers that join repeated
// X-Frame-Options instances see them.
func SplitLegacy(raw m.RawHeader) []m.RawHeader {
	if !raw.Present {
		return []m.RawHeader{raw}
	}

	parts := strings.Split(raw.Value, ",")

	headers := make([]m.RawHeader, 0, len(parts))
	for _, part := range parts {
		headers = append(headers, m.Header(part))
	}

	return headers
}

// ExtractFrameAncestors returns the frame-ancestors source list of a full
// Content-Security-Policy value. Comma-joined policies are searched in order
// and the first occurrence of the directive wins; a value without it yields
// an absent header.
func ExtractFrameAncestors(policy m.RawHeader) m.RawHeader {
	if !policy.Present {
		return policy
	}

	for _, single := range strings.Split(policy.Value, ",") {
		for _, directive := range strings.Split(single, ";") {
			fields := strings.Fields(directive)
			if len(fields) == 0 {
				continue
			}

			if strings.EqualFold(fields[0], frameAncestorsDirective) {
				return m.Header(strings.Join(fields[1:], " "))
			}
		}
	}

	return m.Absent()
}
