package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

func TestDefaultUserAgentTable_Resolve(t *testing.T) {
	table, err := NewDefaultUserAgentTable(nil)
	require.NoError(t, err)

	tests := map[string]m.Archetype{
		FirefoxUserAgent:   m.Firefox,
		ChromeUserAgent:    m.ChromeFamily,
		SafariUserAgent:    m.ChromeFamily,
		SafariIOSUserAgent: m.ChromeFamily,
		SamsungUserAgent:   m.ChromeFamily,
		UCBrowserUserAgent: m.ChromeFamily,
		ExplorerUserAgent:  m.InternetExplorer,
		OperaMiniUserAgent: m.OperaMini,
		EdgeUserAgent:      m.Edge,
		"Mozilla/5.0 (X11; Linux x86_64; rv:115.0) Gecko/20100101 Firefox/115.0":             m.Firefox,
		"Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1)":                                 m.InternetExplorer,
		"  " + FirefoxUserAgent + " ":                                                        m.Firefox,
		"Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/70.0 Safari/537.36 Edge/17.1": m.Edge,
	}

	for ua, want := range tests {
		got, err := table.Resolve(ua)
		require.NoError(t, err, ua)
		assert.Equal(t, want, got, ua)
	}

	_, err = table.Resolve("curl/8.0")
	require.ErrorIs(t, err, ErrUnknownUserAgent)
}

func TestDefaultUserAgentTable_ExtraRulesFirst(t *testing.T) {
	table, err := NewDefaultUserAgentTable([]m.UserAgentRule{{Pattern: "*Firefox/*", Archetype: m.Edge}})
	require.NoError(t, err)

	got, err := table.Resolve(FirefoxUserAgent)
	require.NoError(t, err)
	assert.Equal(t, m.Edge, got)

	rules := table.Rules()
	assert.Len(t, rules, len(DefaultUserAgentRules())+1)
	assert.Equal(t, "*Firefox/*", rules[0].Pattern)
}

func TestNewUserAgentTable_Errors(t *testing.T) {
	_, err := NewUserAgentTable([]m.UserAgentRule{{Pattern: "*", Archetype: 0}})
	require.ErrorIs(t, err, m.ErrUnknownArchetype)

	_, err = NewUserAgentTable([]m.UserAgentRule{{Pattern: "[", Archetype: m.Firefox}})
	require.Error(t, err)
}

func TestParseUserAgentRules(t *testing.T) {
	rules, err := ParseUserAgentRules([]UserAgentEntry{
		{Pattern: "*Brave/*", Browser: "chrome"},
		{Pattern: "*Pale Moon/*", Browser: "Firefox"},
	})
	require.NoError(t, err)
	assert.Equal(t, []m.UserAgentRule{
		{Pattern: "*Brave/*", Archetype: m.ChromeFamily},
		{Pattern: "*Pale Moon/*", Archetype: m.Firefox},
	}, rules)

	_, err = ParseUserAgentRules([]UserAgentEntry{{Pattern: " ", Browser: "ie"}})
	require.ErrorContains(t, err, "empty pattern")

	_, err = ParseUserAgentRules([]UserAgentEntry{{Pattern: "*x*", Browser: "lynx"}})
	require.ErrorIs(t, err, m.ErrUnknownArchetype)
}
