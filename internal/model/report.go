package model

import (
	"fmt"
	"strings"
	"time"
)

// InconsistencyReport buckets the enforced semantics of every browser by
// header family. Each bucket holds distinct values in first-seen order.
type InconsistencyReport struct {
	Legacy []Semantics `yaml:"legacy"`
	Modern []Semantics `yaml:"modern"`
}

// Verdict is the single classification reported for a site.
type Verdict string

const (
	// VerdictConsistent means every browser enforces the same origin set.
	VerdictConsistent Verdict = "consistent"
	// VerdictSecurityOriented means legacy-only browsers are at least as strict.
	VerdictSecurityOriented Verdict = "security-oriented"
	// VerdictCompatibilityOriented means modern browsers are at least as strict.
	VerdictCompatibilityOriented Verdict = "compatibility-oriented"
	// VerdictInconsistent means enforcement differs in no ordered way.
	VerdictInconsistent Verdict = "inconsistent"
	// VerdictFailed means the site could not be evaluated.
	VerdictFailed Verdict = "failed"
)

// Verdicts lists the verdicts in reporting order.
func Verdicts() []Verdict {
	return []Verdict{
		VerdictConsistent,
		VerdictSecurityOriented,
		VerdictCompatibilityOriented,
		VerdictInconsistent,
		VerdictFailed,
	}
}

// Label returns the status line label for the verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictConsistent:
		return "Consistent"
	case VerdictSecurityOriented:
		return "SecurityOriented"
	case VerdictCompatibilityOriented:
		return "CompatibilityOriented"
	case VerdictInconsistent:
		return "Inconsistency"
	case VerdictFailed:
		return "Failed"
	default:
		return string(v)
	}
}

// ParseVerdict parses a verdict name.
func ParseVerdict(s string) (Verdict, error) {
	normalized := Verdict(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Verdicts() {
		if v == normalized {
			return v, nil
		}
	}

	return "", fmt.Errorf("unknown verdict %q", s)
}

// BrowserSemantics is the policy one observed browser enforces.
type BrowserSemantics struct {
	Label     string    `yaml:"label"`
	Archetype Archetype `yaml:"archetype"`
	Enforced  Semantics `yaml:"enforced"`
}

// SiteResult is the analysis outcome for one site.
type SiteResult struct {
	Site     string              `yaml:"site"`
	Origin   string              `yaml:"origin"`
	Verdict  Verdict             `yaml:"verdict"`
	Report   InconsistencyReport `yaml:"report"`
	Browsers []BrowserSemantics  `yaml:"browsers,omitempty"`
	Warnings []string            `yaml:"warnings,omitempty"`
	Error    string              `yaml:"error,omitempty"`
}

// RunReport is one persisted analysis run.
type RunReport struct {
	ID        string       `yaml:"id"`
	CreatedAt time.Time    `yaml:"created_at"`
	Datasets  []Path       `yaml:"datasets"`
	Sites     []SiteResult `yaml:"sites"`
}

// Tally counts the sites of a run per verdict.
func (r RunReport) Tally() map[Verdict]int {
	tally := make(map[Verdict]int, len(Verdicts()))
	for _, site := range r.Sites {
		tally[site.Verdict]++
	}

	return tally
}
