// Package model defines the data structures for anti-framing policy analysis.
package model

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// ErrInvalidOrigin is returned when a URL does not denote an origin that can
// take part in framing comparisons.
var ErrInvalidOrigin = errors.New("invalid origin")

// Scheme names accepted for origins.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// Origin is a scheme + host pair identifying a web security principal.
type Origin struct {
	Scheme string `yaml:"scheme"`
	Host   string `yaml:"host"`
}

// IsValidOrigin reports whether u is an acceptable origin: an http or https
// scheme and a non-empty host that is not itself a wildcard.
func IsValidOrigin(u *url.URL) bool {
	if u == nil {
		slog.Warn("origin validation failed", "reason", "nil url")
		return false
	}

	validScheme := u.Scheme == SchemeHTTP || u.Scheme == SchemeHTTPS
	host := u.Hostname()
	validHost := host != "" && !strings.HasPrefix(host, "*.")

	return validScheme && validHost
}

// ParseOrigin parses raw as a URL and returns its origin. Scheme and host are
// lower-cased.
func ParseOrigin(raw string) (Origin, error) {
	u, err := url.Parse(raw)
	if err != nil {
		slog.Debug("origin parse failed", "origin", raw, "error", err)
		return Origin{}, fmt.Errorf("%w: %q: %w", ErrInvalidOrigin, raw, err)
	}

	if !IsValidOrigin(u) {
		return Origin{}, fmt.Errorf("%w: %q", ErrInvalidOrigin, raw)
	}

	return Origin{
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Hostname()),
	}, nil
}

// ParsePageOrigin is ParseOrigin for the page under analysis: a
// protocol-relative origin ("//example.com") is read as https.
func ParsePageOrigin(raw string) (Origin, error) {
	if strings.HasPrefix(raw, "//") {
		raw = SchemeHTTPS + ":" + raw
	}

	return ParseOrigin(raw)
}

// String returns the origin in scheme://host form.
func (o Origin) String() string {
	return o.Scheme + "://" + o.Host
}
