package domain

import (
	"fmt"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// FindSemantics translates one bundle per archetype and buckets the results by
// header family.
func FindSemantics(bundles map[m.Archetype]m.BrowserBundle, pageOrigin string) (m.InconsistencyReport, error) {
	for archetype := range bundles {
		if !archetype.Valid() {
			return m.InconsistencyReport{}, fmt.Errorf("find semantics: %w: %s", m.ErrUnknownArchetype, archetype)
		}
	}

	observations := make([]m.Observation, 0, len(bundles))

	for _, archetype := range m.Archetypes() {
		bundle, ok := bundles[archetype]
		if !ok {
			continue
		}

		observations = append(observations, m.Observation{
			Label:     archetype.DisplayName(),
			Archetype: archetype,
			Bundle:    bundle,
		})
	}

	report, _, err := FindObservedSemantics(observations, pageOrigin)

	return report, err
}

// FindObservedSemantics translates every observation and buckets the results.
// Legacy-only browsers are evaluated first; within a bucket input order is
// kept and duplicates are dropped. The per-browser results come back in the
// same evaluation order.
func FindObservedSemantics(observations []m.Observation, pageOrigin string) (m.InconsistencyReport, []m.BrowserSemantics, error) {
	ordered := make([]m.Observation, 0, len(observations))

	for _, o := range observations {
		if o.Archetype.LegacyOnly() {
			ordered = append(ordered, o)
		}
	}

	for _, o := range observations {
		if !o.Archetype.LegacyOnly() {
			ordered = append(ordered, o)
		}
	}

	var (
		legacy   = newSemanticsSet()
		modern   = newSemanticsSet()
		browsers = make([]m.BrowserSemantics, 0, len(ordered))
	)

	for _, o := range ordered {
		enforced, err := Translate(o.Archetype, o.Bundle, pageOrigin)
		if err != nil {
			return m.InconsistencyReport{}, nil, fmt.Errorf("find semantics for %q: %w", o.Label, err)
		}

		browsers = append(browsers, m.BrowserSemantics{
			Label:     o.Label,
			Archetype: o.Archetype,
			Enforced:  enforced,
		})

		if o.Archetype.LegacyOnly() {
			legacy.add(enforced)
		} else {
			modern.add(enforced)
		}
	}

	return m.InconsistencyReport{Legacy: legacy.values, Modern: modern.values}, browsers, nil
}

// IsInconsistent reports whether browsers disagree: within a bucket, or
// between single-valued buckets that permit different origin sets.
func IsInconsistent(report m.InconsistencyReport) bool {
	if len(report.Legacy) > 1 || len(report.Modern) > 1 {
		return true
	}

	if len(report.Legacy) == 1 && len(report.Modern) == 1 {
		return !EquivalentVal(report.Legacy[0], report.Modern[0])
	}

	return false
}

// IsSecurityOriented reports whether legacy-only browsers enforce a policy at
// least as strict as modern ones.
func IsSecurityOriented(report m.InconsistencyReport) bool {
	if len(report.Legacy) > 1 || len(report.Modern) > 1 {
		return false
	}

	if len(report.Legacy) == 0 || len(report.Modern) == 0 {
		return true
	}

	return LeqVal(report.Legacy[0], report.Modern[0])
}

// IsCompatibilityOriented reports whether modern browsers enforce a policy at
// least as strict as legacy-only ones.
func IsCompatibilityOriented(report m.InconsistencyReport) bool {
	if len(report.Legacy) > 1 || len(report.Modern) > 1 {
		return false
	}

	if len(report.Legacy) == 0 || len(report.Modern) == 0 {
		return true
	}

	return LeqVal(report.Modern[0], report.Legacy[0])
}

// Classify reduces a report to a single verdict.
func Classify(report m.InconsistencyReport) m.Verdict {
	if !IsInconsistent(report) {
		return m.VerdictConsistent
	}

	if IsSecurityOriented(report) {
		return m.VerdictSecurityOriented
	}

	if IsCompatibilityOriented(report) {
		return m.VerdictCompatibilityOriented
	}

	return m.VerdictInconsistent
}

type semanticsSet struct {
	seen   map[string]struct{}
	values []m.Semantics
}

func newSemanticsSet() *semanticsSet {
	return &semanticsSet{seen: map[string]struct{}{}}
}

func (s *semanticsSet) add(v m.Semantics) {
	key := v.Key()
	if _, ok := s.seen[key]; ok {
		return
	}

	s.seen[key] = struct{}{}
	s.values = append(s.values, v)
}
