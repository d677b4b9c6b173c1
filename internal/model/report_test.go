package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

func TestParseVerdict(t *testing.T) {
	for _, v := range m.Verdicts() {
		got, err := m.ParseVerdict(" " + string(v) + " ")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := m.ParseVerdict("maybe")
	require.Error(t, err)
}

func TestVerdict_Label(t *testing.T) {
	assert.Equal(t, "Inconsistency", m.VerdictInconsistent.Label())
	assert.Equal(t, "SecurityOriented", m.VerdictSecurityOriented.Label())
	assert.Equal(t, "other", m.Verdict("other").Label())
}

func TestRunReport_Tally(t *testing.T) {
	report := m.RunReport{Sites: []m.SiteResult{
		{Verdict: m.VerdictConsistent},
		{Verdict: m.VerdictConsistent},
		{Verdict: m.VerdictFailed},
	}}

	tally := report.Tally()
	assert.Equal(t, 2, tally[m.VerdictConsistent])
	assert.Equal(t, 1, tally[m.VerdictFailed])
	assert.Zero(t, tally[m.VerdictInconsistent])
}

func TestSite_DisplayName(t *testing.T) {
	assert.Equal(t, "https://a.com", m.Site{Origin: "https://a.com"}.DisplayName())
	assert.Equal(t, "shop", m.Site{Name: "shop", Origin: "https://a.com"}.DisplayName())
}
