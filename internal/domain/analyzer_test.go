package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framecheck.dev/pkg/framecheck/internal/domain"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

func TestFindSemantics_SameOriginAgainstSelf(t *testing.T) {
	report, err := domain.FindSemantics(map[m.Archetype]m.BrowserBundle{
		m.Firefox:      legacyBundle("SAMEORIGIN"),
		m.ChromeFamily: {Modern: headers("'self'")},
	}, examplePage)
	require.NoError(t, err)

	assert.Empty(t, report.Legacy)
	assert.Equal(t, []m.Semantics{{self}}, report.Modern)
	assert.False(t, domain.IsInconsistent(report))
	assert.Equal(t, m.VerdictConsistent, domain.Classify(report))
}

func TestFindSemantics_AllowFromSplitsLegacyBucket(t *testing.T) {
	allowFrom := legacyBundle("ALLOW-FROM https://google.com")

	report, err := domain.FindSemantics(map[m.Archetype]m.BrowserBundle{
		m.InternetExplorer: allowFrom,
		m.OperaMini:        allowFrom,
		m.ChromeFamily:     {Legacy: allowFrom.Legacy, Modern: headers("*")},
	}, examplePage)
	require.NoError(t, err)

	assert.Equal(t, []m.Semantics{{google}, {m.Wildcard()}}, report.Legacy)
	assert.Equal(t, []m.Semantics{{m.Wildcard()}}, report.Modern)
	assert.True(t, domain.IsInconsistent(report))
	assert.False(t, domain.IsSecurityOriented(report))
	assert.False(t, domain.IsCompatibilityOriented(report))
	assert.Equal(t, m.VerdictInconsistent, domain.Classify(report))
}

func TestFindSemantics_NoBrowsers(t *testing.T) {
	report, err := domain.FindSemantics(map[m.Archetype]m.BrowserBundle{}, examplePage)
	require.NoError(t, err)

	assert.Empty(t, report.Legacy)
	assert.Empty(t, report.Modern)
	assert.False(t, domain.IsInconsistent(report))
	assert.True(t, domain.IsSecurityOriented(report))
	assert.True(t, domain.IsCompatibilityOriented(report))
}

func TestFindSemantics_NoHeadersAnywhere(t *testing.T) {
	bundles := map[m.Archetype]m.BrowserBundle{}
	for _, archetype := range m.Archetypes() {
		bundles[archetype] = m.BrowserBundle{}
	}

	report, err := domain.FindSemantics(bundles, examplePage)
	require.NoError(t, err)

	assert.Equal(t, []m.Semantics{m.DefaultSemantics()}, report.Legacy)
	assert.Equal(t, []m.Semantics{m.DefaultSemantics()}, report.Modern)
	assert.Equal(t, m.VerdictConsistent, domain.Classify(report))
}

func TestFindSemantics_DenyEverywhere(t *testing.T) {
	report, err := domain.FindSemantics(map[m.Archetype]m.BrowserBundle{
		m.InternetExplorer: legacyBundle("DENY"),
		m.OperaMini:        legacyBundle("DENY"),
		m.Firefox:          {Modern: headers("'none'")},
		m.ChromeFamily:     {Modern: headers("'none'")},
		m.Edge:             {Modern: headers("'none'")},
	}, examplePage)
	require.NoError(t, err)

	assert.Equal(t, []m.Semantics{{m.None()}}, report.Legacy)
	assert.Equal(t, []m.Semantics{{m.None()}}, report.Modern)
	assert.False(t, domain.IsInconsistent(report))
	assert.True(t, domain.IsSecurityOriented(report))
	assert.True(t, domain.IsCompatibilityOriented(report))
	assert.Equal(t, m.VerdictConsistent, domain.Classify(report))
}

func TestFindSemantics_UnknownArchetype(t *testing.T) {
	_, err := domain.FindSemantics(map[m.Archetype]m.BrowserBundle{
		m.Firefox:       {},
		m.Archetype(99): {},
	}, examplePage)
	require.ErrorIs(t, err, m.ErrUnknownArchetype)
}

func TestFindObservedSemantics_OrderAndDeduplication(t *testing.T) {
	observations := []m.Observation{
		{Label: "chrome", Archetype: m.ChromeFamily, Bundle: m.BrowserBundle{Modern: headers("'self'")}},
		{Label: "safari", Archetype: m.ChromeFamily, Bundle: m.BrowserBundle{Modern: headers("https://example.com")}},
		{Label: "firefox", Archetype: m.Firefox, Bundle: legacyBundle("DENY")},
		{Label: "ie", Archetype: m.InternetExplorer, Bundle: legacyBundle("SAMEORIGIN")},
	}

	report, browsers, err := domain.FindObservedSemantics(observations, examplePage)
	require.NoError(t, err)

	labels := make([]string, len(browsers))
	for i, b := range browsers {
		labels[i] = b.Label
	}

	assert.Equal(t, []string{"ie", "chrome", "safari", "firefox"}, labels)
	assert.Equal(t, []m.Semantics{{self}}, report.Legacy)
	assert.Equal(t, []m.Semantics{{self}, {m.None()}}, report.Modern)
	assert.Equal(t, m.VerdictInconsistent, domain.Classify(report))
}

func TestClassify(t *testing.T) {
	example := m.Semantics{self}
	wildcard := m.DefaultSemantics()
	none := m.Semantics{m.None()}

	tests := []struct {
		name   string
		report m.InconsistencyReport
		want   m.Verdict
	}{
		{"equal buckets", m.InconsistencyReport{Legacy: []m.Semantics{example}, Modern: []m.Semantics{example}}, m.VerdictConsistent},
		{"one bucket empty", m.InconsistencyReport{Modern: []m.Semantics{example}}, m.VerdictConsistent},
		{"legacy stricter", m.InconsistencyReport{Legacy: []m.Semantics{none}, Modern: []m.Semantics{wildcard}}, m.VerdictSecurityOriented},
		{"modern stricter", m.InconsistencyReport{Legacy: []m.Semantics{wildcard}, Modern: []m.Semantics{example}}, m.VerdictCompatibilityOriented},
		{
			"incomparable",
			m.InconsistencyReport{Legacy: []m.Semantics{example}, Modern: []m.Semantics{{google}}},
			m.VerdictInconsistent,
		},
		{
			"equivalent but not identical",
			m.InconsistencyReport{Legacy: []m.Semantics{wildcard}, Modern: []m.Semantics{{m.Wildcard(), m.SchemeAny("https")}}},
			m.VerdictConsistent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Classify(tt.report))
		})
	}
}
