package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

func TestOriginMatch_Canonical(t *testing.T) {
	assert.Equal(t, m.SchemeAny("https"), m.OriginMatch("HTTPS", "*"))
	assert.Equal(t, m.OriginMatch("https", "example.com"), m.OriginMatch("HTTPS", "Example.com"))
	assert.Equal(t, "*", m.SchemeAny("https").HostPattern())
	assert.Panics(t, func() { m.OriginMatch("https", "") })
}

func TestExpression_TextRoundTrip(t *testing.T) {
	expressions := []m.Expression{
		m.Wildcard(),
		m.None(),
		m.SchemeAny("https"),
		m.OriginMatch("https", "*.example.com"),
	}

	for _, e := range expressions {
		t.Run(e.String(), func(t *testing.T) {
			text, err := e.MarshalText()
			require.NoError(t, err)

			var decoded m.Expression
			require.NoError(t, decoded.UnmarshalText(text))
			assert.Equal(t, e, decoded)
		})
	}
}

func TestExpression_InvalidText(t *testing.T) {
	var e m.Expression
	require.Error(t, e.UnmarshalText([]byte("example.com")))

	_, err := m.Expression{}.MarshalText()
	require.Error(t, err)
}

func TestSemantics(t *testing.T) {
	s := m.Semantics{m.OriginMatch("https", "a.com"), m.None()}

	assert.Equal(t, "https://a.com 'none'", s.Key())
	assert.Equal(t, "(empty)", m.Semantics{}.String())
	assert.True(t, s.Equal(m.Semantics{m.OriginMatch("https", "a.com"), m.None()}))
	assert.False(t, s.Equal(m.Semantics{m.None(), m.OriginMatch("https", "a.com")}))
	assert.Equal(t, m.Semantics{m.Wildcard()}, m.DefaultSemantics())
}
