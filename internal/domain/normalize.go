package domain

import (
	"log/slog"
	"net"
	"net/url"
	"strings"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

const allowFromPrefix = "allow-from "

// NormalizeLegacy maps one X-Frame-Options value to its outcome for a page
// served from pageOrigin. An invalid page origin makes the whole value Junk.
func NormalizeLegacy(value, pageOrigin string) m.XFOOutcome {
	page, err := m.ParsePageOrigin(pageOrigin)
	if err != nil {
		slog.Warn("invalid origin in legacy normalization", "origin", pageOrigin, "error", err)
		return m.XFOOutcome{Kind: m.XFOJunk}
	}

	v := strings.ToLower(value)

	switch {
	case v == "sameorigin":
		return m.XFOOutcome{Kind: m.XFOSameOrigin, Origin: page}
	case v == "deny":
		return m.XFOOutcome{Kind: m.XFODeny}
	case strings.HasPrefix(v, allowFromPrefix):
		return normalizeAllowFrom(v)
	default:
		return m.XFOOutcome{Kind: m.XFOJunk}
	}
}

func normalizeAllowFrom(v string) m.XFOOutcome {
	tokens := strings.Fields(v)
	if len(tokens) != 2 {
		slog.Debug("malformed allow-from value", "value", v, "tokens", len(tokens))
		return m.XFOOutcome{Kind: m.XFOAllowJunk}
	}

	allowed, err := m.ParseOrigin(tokens[1])
	if err != nil {
		slog.Debug("invalid allow-from origin", "value", v, "error", err)
		return m.XFOOutcome{Kind: m.XFOAllowJunk}
	}

	return m.XFOOutcome{Kind: m.XFOAllowFrom, Origin: allowed}
}

// NormalizeModern maps frame-ancestors tokens to expressions for a page served
// from pageOrigin. It returns false (Junk) when the page origin is invalid.
func NormalizeModern(tokens []string, pageOrigin string) ([]m.Expression, bool) {
	page, err := m.ParsePageOrigin(pageOrigin)
	if err != nil {
		slog.Warn("invalid origin in modern normalization", "origin", pageOrigin, "error", err)
		return nil, false
	}

	expressions := make([]m.Expression, 0, len(tokens))

	for _, token := range tokens {
		e, ok := normalizeSource(strings.ToLower(token), page)
		if !ok {
			slog.Warn("skipping unusable frame-ancestors source", "source", token, "origin", pageOrigin)
			continue
		}

		expressions = append(expressions, e)
	}

	return expressions, true
}

func normalizeSource(token string, page m.Origin) (m.Expression, bool) {
	switch token {
	case "*":
		return m.Wildcard(), true
	case "'none'":
		return m.None(), true
	case "'self'":
		return m.FromOrigin(page), true
	case "http:":
		return m.SchemeAny(m.SchemeHTTP), true
	case "https:":
		return m.SchemeAny(m.SchemeHTTPS), true
	}

	if strings.Contains(token, "://") {
		u, err := url.Parse(token)
		if err != nil || u.Hostname() == "" {
			return m.Expression{}, false
		}

		return m.OriginMatch(u.Scheme, u.Hostname()), true
	}

	if scheme, ok := schemeSource(token); ok {
		return m.SchemeAny(scheme), true
	}

	host := bareHost(token)
	if host == "" {
		return m.Expression{}, false
	}

	return m.OriginMatch(page.Scheme, host), true
}

// schemeSource reports whether token is a bare scheme-source such as "wss:".
// A host:port token parses with an opaque port part and is not one.
func schemeSource(token string) (string, bool) {
	u, err := url.Parse(token)
	if err != nil || u.Scheme == "" {
		return "", false
	}

	if u.Opaque != "" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return "", false
	}

	return u.Scheme, true
}

// bareHost strips any path and port from a scheme-less host-source.
func bareHost(token string) string {
	host, _, _ := strings.Cut(token, "/")

	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return host
}
