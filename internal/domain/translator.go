package domain

import (
	"fmt"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// Translator replays one browser family's enforcement algorithm and returns
// the policy it effectively enforces for a page served from pageOrigin.
type Translator func(bundle m.BrowserBundle, pageOrigin string) m.Semantics

// legacyRule maps a normalized XFO outcome to the expression a browser
// family enforces for it.
type legacyRule func(outcome m.XFOOutcome) m.Expression

// TranslatorFor returns the translator of archetype a. Unknown archetypes are
// rejected rather than approximated.
func TranslatorFor(a m.Archetype) (Translator, error) {
	switch a {
	case m.Firefox:
		return TranslateFirefox, nil
	case m.ChromeFamily:
		return TranslateChrome, nil
	case m.Edge:
		return TranslateEdge, nil
	case m.InternetExplorer:
		return TranslateExplorer, nil
	case m.OperaMini:
		return TranslateOperaMini, nil
	default:
		return nil, fmt.Errorf("translate: %w: %s", m.ErrUnknownArchetype, a)
	}
}

// Translate runs the translator of archetype a over bundle.
func Translate(a m.Archetype, bundle m.BrowserBundle, pageOrigin string) (m.Semantics, error) {
	translator, err := TranslatorFor(a)
	if err != nil {
		return nil, err
	}

	return translator(bundle, pageOrigin), nil
}

// TranslateFirefox folds every comma separated XFO value with Meet. An
// ALLOW-FROM origin is honored; a malformed one blocks framing.
func TranslateFirefox(bundle m.BrowserBundle, pageOrigin string) m.Semantics {
	if csp, ok := firstModern(bundle.Modern, pageOrigin); ok {
		return csp
	}

	outcomes := normalizeLegacyHeaders(bundle.Legacy, pageOrigin, true)

	return foldLegacy(outcomes, firefoxRule)
}

// TranslateChrome covers Chrome, Safari, Samsung Internet and UC Browser. It
// folds like Firefox but ignores ALLOW-FROM entirely.
func TranslateChrome(bundle m.BrowserBundle, pageOrigin string) m.Semantics {
	if csp, ok := firstModern(bundle.Modern, pageOrigin); ok {
		return csp
	}

	outcomes := normalizeLegacyHeaders(bundle.Legacy, pageOrigin, true)

	return foldLegacy(outcomes, chromeRule)
}

// TranslateEdge honors CSP, then only the first XFO value.
func TranslateEdge(bundle m.BrowserBundle, pageOrigin string) m.Semantics {
	if csp, ok := firstModern(bundle.Modern, pageOrigin); ok {
		return csp
	}

	outcomes := normalizeLegacyHeaders(bundle.Legacy, pageOrigin, false)

	return firstLegacy(outcomes, explorerRule)
}

// TranslateExplorer ignores CSP and enforces the first XFO value.
func TranslateExplorer(bundle m.BrowserBundle, pageOrigin string) m.Semantics {
	outcomes := normalizeLegacyHeaders(bundle.Legacy, pageOrigin, false)

	return firstLegacy(outcomes, explorerRule)
}

// TranslateOperaMini ignores CSP and enforces the first XFO value, treating
// any ALLOW-FROM as no restriction.
func TranslateOperaMini(bundle m.BrowserBundle, pageOrigin string) m.Semantics {
	outcomes := normalizeLegacyHeaders(bundle.Legacy, pageOrigin, false)

	return firstLegacy(outcomes, chromeRule)
}

// firstModern returns the first frame-ancestors value that normalized to a
// non-empty source list.
func firstModern(headers []m.RawHeader, pageOrigin string) (m.Semantics, bool) {
	for _, raw := range headers {
		tokens, ok := ParseModern(raw)
		if !ok {
			continue
		}

		expressions, ok := NormalizeModern(tokens, pageOrigin)
		// An empty source list falls through so a result is never empty.
		if !ok || len(expressions) == 0 {
			continue
		}

		return m.Semantics(expressions), true
	}

	return nil, false
}

func normalizeLegacyHeaders(headers []m.RawHeader, pageOrigin string, splitCommas bool) []m.XFOOutcome {
	outcomes := make([]m.XFOOutcome, 0, len(headers))

	for _, raw := range headers {
		instances := []m.RawHeader{raw}
		if splitCommas {
			instances = SplitLegacy(raw)
		}

		for _, instance := range instances {
			value, ok := ParseLegacy(instance)
			if !ok {
				continue
			}

			outcomes = append(outcomes, NormalizeLegacy(value, pageOrigin))
		}
	}

	return outcomes
}

func foldLegacy(outcomes []m.XFOOutcome, rule legacyRule) m.Semantics {
	if len(outcomes) == 0 {
		return m.DefaultSemantics()
	}

	result := m.Wildcard()
	for _, outcome := range outcomes {
		result = Meet(result, rule(outcome))
	}

	return m.Semantics{result}
}

func firstLegacy(outcomes []m.XFOOutcome, rule legacyRule) m.Semantics {
	if len(outcomes) == 0 {
		return m.DefaultSemantics()
	}

	return m.Semantics{rule(outcomes[0])}
}

func firefoxRule(outcome m.XFOOutcome) m.Expression {
	switch outcome.Kind {
	case m.XFOJunk:
		return m.Wildcard()
	case m.XFODeny, m.XFOAllowJunk:
		return m.None()
	default:
		return m.FromOrigin(outcome.Origin)
	}
}

func chromeRule(outcome m.XFOOutcome) m.Expression {
	switch outcome.Kind {
	case m.XFOJunk, m.XFOAllowJunk, m.XFOAllowFrom:
		return m.Wildcard()
	case m.XFODeny:
		return m.None()
	default:
		return m.FromOrigin(outcome.Origin)
	}
}

// explorerRule is shared by Edge and Internet Explorer.
func explorerRule(outcome m.XFOOutcome) m.Expression {
	return firefoxRule(outcome)
}
