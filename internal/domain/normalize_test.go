package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framecheck.dev/pkg/framecheck/internal/domain"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

const examplePage = "https://example.com"

func TestNormalizeLegacy(t *testing.T) {
	examplePageOrigin := m.Origin{Scheme: "https", Host: "example.com"}

	tests := []struct {
		name       string
		value      string
		pageOrigin string
		want       m.XFOOutcome
	}{
		{"sameorigin", "SAMEORIGIN", examplePage, m.XFOOutcome{Kind: m.XFOSameOrigin, Origin: examplePageOrigin}},
		{"deny mixed case", "Deny", examplePage, m.XFOOutcome{Kind: m.XFODeny}},
		{
			"allow-from",
			"ALLOW-FROM https://Google.com/path",
			examplePage,
			m.XFOOutcome{Kind: m.XFOAllowFrom, Origin: m.Origin{Scheme: "https", Host: "google.com"}},
		},
		{"allow-from extra token", "allow-from https://a.com https://b.com", examplePage, m.XFOOutcome{Kind: m.XFOAllowJunk}},
		{"allow-from invalid origin", "allow-from google.com", examplePage, m.XFOOutcome{Kind: m.XFOAllowJunk}},
		{"allow-from wildcard host", "allow-from https://*.google.com", examplePage, m.XFOOutcome{Kind: m.XFOAllowJunk}},
		{"allow-from without origin", "allow-from", examplePage, m.XFOOutcome{Kind: m.XFOJunk}},
		{"unknown value", "ALLOWALL", examplePage, m.XFOOutcome{Kind: m.XFOJunk}},
		{"empty value", "", examplePage, m.XFOOutcome{Kind: m.XFOJunk}},
		{"protocol relative page", "sameorigin", "//example.com", m.XFOOutcome{Kind: m.XFOSameOrigin, Origin: examplePageOrigin}},
		{"invalid page scheme", "DENY", "ftp://example.com", m.XFOOutcome{Kind: m.XFOJunk}},
		{"wildcard page host", "DENY", "https://*.example.com", m.XFOOutcome{Kind: m.XFOJunk}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeLegacy(tt.value, tt.pageOrigin))
		})
	}
}

func TestNormalizeModern(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []m.Expression
	}{
		{"self", []string{"'self'"}, []m.Expression{m.OriginMatch("https", "example.com")}},
		{"keywords", []string{"*", "'NONE'"}, []m.Expression{m.Wildcard(), m.None()}},
		{"schemes", []string{"https:", "HTTP:"}, []m.Expression{m.SchemeAny("https"), m.SchemeAny("http")}},
		{
			"origins",
			[]string{"https://google.com/path", "http://*.example.org:8080"},
			[]m.Expression{m.OriginMatch("https", "google.com"), m.OriginMatch("http", "*.example.org")},
		},
		{
			"bare hosts use page scheme",
			[]string{"Example.org", "cdn.example.net:443/embed"},
			[]m.Expression{m.OriginMatch("https", "example.org"), m.OriginMatch("https", "cdn.example.net")},
		},
		{
			"scheme-only sources keep their scheme",
			[]string{"wss:", "DATA:", "blob:"},
			[]m.Expression{m.SchemeAny("wss"), m.SchemeAny("data"), m.SchemeAny("blob")},
		},
		{"host and port is a bare host", []string{"example.org:8080"}, []m.Expression{m.OriginMatch("https", "example.org")}},
		{"unusable source is skipped", []string{"https://", "'self'"}, []m.Expression{m.OriginMatch("https", "example.com")}},
		{"empty list", []string{}, []m.Expression{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.NormalizeModern(tt.tokens, examplePage)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeModern_InvalidPageOrigin(t *testing.T) {
	got, ok := domain.NormalizeModern([]string{"'self'"}, "example.com")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestNormalizeModern_SelfRoundTrip(t *testing.T) {
	got, ok := domain.NormalizeModern([]string{"'self'"}, examplePage)
	require.True(t, ok)

	v := m.Semantics(got)
	assert.Equal(t, m.Semantics{m.OriginMatch("https", "example.com")}, v)
	assert.True(t, domain.LeqVal(v, v))
	assert.True(t, domain.EquivalentVal(v, v))
}

func TestNormalizeModern_SchemeSourceOrdering(t *testing.T) {
	got, ok := domain.NormalizeModern([]string{"wss:"}, examplePage)
	require.True(t, ok)

	wss := m.Semantics(got)
	assert.False(t, domain.LeqVal(wss, m.Semantics{m.SchemeAny("https")}))
	assert.False(t, domain.LeqVal(wss, m.Semantics{m.OriginMatch("https", "*.example.com")}))
	assert.True(t, domain.LeqVal(wss, m.Semantics{m.Wildcard()}))
}
