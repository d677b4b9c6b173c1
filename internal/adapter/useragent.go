package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// ErrUnknownUserAgent is returned when no rule maps a User-Agent to an archetype.
var ErrUnknownUserAgent = errors.New("unsupported user agent")

// Reference User-Agents of the recording harness.
const (
	FirefoxUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:67.0) Gecko/20100101 Firefox/67.0"
	ChromeUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/77.0.3865.75 Safari/537.36"
	SafariUserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_14_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.1 Safari/605.1.15"
	SafariIOSUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 12_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.1.2 Mobile/15E148 Safari/604.1"
	SamsungUserAgent   = "Mozilla/5.0 (Linux; Android 9; SAMSUNG SM-G960U Build/PPR1.180610.011) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/9.4 Chrome/67.0.3396.87 Mobile Safari/537.36"
	UCBrowserUserAgent = "Mozilla/5.0 (Linux; U; Android 7.0; es-LA; Moto C Build/NRD90M.068) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/57.0.2987.108 UCBrowser/12.9.5.1146 Mobile Safari/537.36"
	ExplorerUserAgent  = "Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; rv:11.0) like Gecko"
	OperaMiniUserAgent = "Opera/9.80 (Android; Opera Mini/12.0.1987/37.7327; U; pl) Presto/2.12.423 Version/12.16"
	EdgeUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/64.0.3282.140 Safari/537.36 Edge/18.17763"
)

// DefaultUserAgentRules returns the built-in rules: exact reference agents
// first, then family patterns. Order matters; Edge and Samsung agents also
// mention Chrome.
func DefaultUserAgentRules() []m.UserAgentRule {
	return []m.UserAgentRule{
		{Pattern: FirefoxUserAgent, Archetype: m.Firefox},
		{Pattern: ChromeUserAgent, Archetype: m.ChromeFamily},
		{Pattern: SafariUserAgent, Archetype: m.ChromeFamily},
		{Pattern: SafariIOSUserAgent, Archetype: m.ChromeFamily},
		{Pattern: SamsungUserAgent, Archetype: m.ChromeFamily},
		{Pattern: UCBrowserUserAgent, Archetype: m.ChromeFamily},
		{Pattern: ExplorerUserAgent, Archetype: m.InternetExplorer},
		{Pattern: OperaMiniUserAgent, Archetype: m.OperaMini},
		{Pattern: EdgeUserAgent, Archetype: m.Edge},
		{Pattern: "*Opera Mini/*", Archetype: m.OperaMini},
		{Pattern: "*Trident/*", Archetype: m.InternetExplorer},
		{Pattern: "*MSIE *", Archetype: m.InternetExplorer},
		{Pattern: "*Edge/*", Archetype: m.Edge},
		{Pattern: "*Firefox/*", Archetype: m.Firefox},
		{Pattern: "*SamsungBrowser/*", Archetype: m.ChromeFamily},
		{Pattern: "*UCBrowser/*", Archetype: m.ChromeFamily},
		{Pattern: "*Chrome/*", Archetype: m.ChromeFamily},
		{Pattern: "*Safari/*", Archetype: m.ChromeFamily},
	}
}

// UserAgentResolver maps User-Agent strings to browser archetypes.
type UserAgentResolver interface {
	Resolve(userAgent string) (m.Archetype, error)
	Rules() []m.UserAgentRule
}

type compiledRule struct {
	m.UserAgentRule
	matcher glob.Glob
}

// UserAgentTable resolves User-Agent strings to archetypes, first match wins.
type UserAgentTable struct {
	rules []compiledRule
}

// NewUserAgentTable compiles rules in order.
func NewUserAgentTable(rules []m.UserAgentRule) (*UserAgentTable, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for _, rule := range rules {
		if !rule.Archetype.Valid() {
			return nil, fmt.Errorf("user agent rule %q: %w", rule.Pattern, m.ErrUnknownArchetype)
		}

		matcher, err := glob.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile user agent pattern %q: %w", rule.Pattern, err)
		}

		compiled = append(compiled, compiledRule{UserAgentRule: rule, matcher: matcher})
	}

	return &UserAgentTable{rules: compiled}, nil
}

// NewDefaultUserAgentTable compiles the built-in rules with extra rules
// taking precedence.
func NewDefaultUserAgentTable(extra []m.UserAgentRule) (*UserAgentTable, error) {
	rules := make([]m.UserAgentRule, 0, len(extra)+len(DefaultUserAgentRules()))
	rules = append(rules, extra...)
	rules = append(rules, DefaultUserAgentRules()...)

	return NewUserAgentTable(rules)
}

// UserAgentEntry is a configured User-Agent pattern and the browser
// archetype name it maps to.
type UserAgentEntry struct {
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
	Browser string `mapstructure:"browser" yaml:"browser"`
}

// ParseUserAgentRules converts configured entries into rules, keeping their
// order.
func ParseUserAgentRules(entries []UserAgentEntry) ([]m.UserAgentRule, error) {
	rules := make([]m.UserAgentRule, 0, len(entries))

	for _, entry := range entries {
		if strings.TrimSpace(entry.Pattern) == "" {
			return nil, fmt.Errorf("user agent rule for %q: empty pattern", entry.Browser)
		}

		archetype, err := m.ParseArchetype(entry.Browser)
		if err != nil {
			return nil, fmt.Errorf("user agent rule %q: %w", entry.Pattern, err)
		}

		rules = append(rules, m.UserAgentRule{Pattern: entry.Pattern, Archetype: archetype})
	}

	return rules, nil
}

// Resolve returns the archetype of userAgent.
func (t *UserAgentTable) Resolve(userAgent string) (m.Archetype, error) {
	ua := strings.TrimSpace(userAgent)

	for _, rule := range t.rules {
		if rule.matcher.Match(ua) {
			return rule.Archetype, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownUserAgent, userAgent)
}

// Rules returns the rules in match order.
func (t *UserAgentTable) Rules() []m.UserAgentRule {
	rules := make([]m.UserAgentRule, len(t.rules))
	for i, rule := range t.rules {
		rules[i] = rule.UserAgentRule
	}

	return rules
}
