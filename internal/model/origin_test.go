package model_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		raw     string
		want    m.Origin
		wantErr bool
	}{
		{raw: "https://Example.COM/path?q=1", want: m.Origin{Scheme: "https", Host: "example.com"}},
		{raw: "http://example.com:8080", want: m.Origin{Scheme: "http", Host: "example.com"}},
		{raw: "ftp://example.com", wantErr: true},
		{raw: "https://*.example.com", wantErr: true},
		{raw: "example.com", wantErr: true},
		{raw: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := m.ParseOrigin(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, m.ErrInvalidOrigin)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageOrigin_ProtocolRelative(t *testing.T) {
	got, err := m.ParsePageOrigin("//example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.String())
}

func TestIsValidOrigin_Nil(t *testing.T) {
	assert.False(t, m.IsValidOrigin(nil))

	u, err := url.Parse("https://example.com")
	require.NoError(t, err)
	assert.True(t, m.IsValidOrigin(u))
}
