package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"framecheck.dev/pkg/framecheck/internal/domain"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

func TestParseLegacy(t *testing.T) {
	value, ok := domain.ParseLegacy(m.Header("  DENY \t"))
	assert.True(t, ok)
	assert.Equal(t, "DENY", value)

	_, ok = domain.ParseLegacy(m.Absent())
	assert.False(t, ok)

	_, ok = domain.ParseLegacy(m.RawHeaderFrom(m.NoHeaderSentinel))
	assert.False(t, ok)
}

func TestParseModern(t *testing.T) {
	tokens, ok := domain.ParseModern(m.Header(" 'self'   https://a.com\t*.b.com "))
	assert.True(t, ok)
	assert.Equal(t, []string{"'self'", "https://a.com", "*.b.com"}, tokens)

	tokens, ok = domain.ParseModern(m.Header("   "))
	assert.True(t, ok)
	assert.Empty(t, tokens)

	_, ok = domain.ParseModern(m.Absent())
	assert.False(t, ok)
}

func TestSplitLegacy(t *testing.T) {
	assert.Equal(t,
		[]m.RawHeader{m.Header("DENY"), m.Header(" SAMEORIGIN")},
		domain.SplitLegacy(m.Header("DENY, SAMEORIGIN")))
	assert.Equal(t, []m.RawHeader{m.Header("DENY")}, domain.SplitLegacy(m.Header("DENY")))
	assert.Equal(t, []m.RawHeader{m.Absent()}, domain.SplitLegacy(m.Absent()))
}

func TestExtractFrameAncestors(t *testing.T) {
	tests := []struct {
		name   string
		policy m.RawHeader
		want   m.RawHeader
	}{
		{
			"first directive wins",
			m.Header("default-src 'self'; Frame-Ancestors 'self'  https://a.com; frame-ancestors *"),
			m.Header("'self' https://a.com"),
		},
		{"no directive", m.Header("default-src 'self'; script-src 'none'"), m.Absent()},
		{"empty source list", m.Header("frame-ancestors;"), m.Header("")},
		{"absent policy", m.Absent(), m.Absent()},
		{"prefix is not the directive", m.Header("frame-ancestors-x *"), m.Absent()},
		{"comma-joined policies", m.Header("frame-ancestors 'self', default-src x"), m.Header("'self'")},
		{
			"directive in a later policy",
			m.Header("default-src 'self', frame-ancestors https://a.com; script-src 'none'"),
			m.Header("https://a.com"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ExtractFrameAncestors(tt.policy))
		})
	}
}
