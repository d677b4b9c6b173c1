package domain

import (
	"strings"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// LeqHost reports whether every host matched by h1 is matched by h2. A
// leading "*." label matches proper subdomains only, never the bare domain.
func LeqHost(h1, h2 string) bool {
	if h1 == h2 || h2 == "*" {
		return true
	}

	if h1 == "*" {
		return false
	}

	labels1 := strings.Split(h1, ".")
	labels2 := strings.Split(h2, ".")
	suffix2 := "." + strings.Join(labels2[1:], ".")

	if labels1[0] == "*" {
		return labels2[0] == "*" && strings.HasSuffix(h1, suffix2)
	}

	if labels2[0] == "*" {
		return strings.HasSuffix(h1, suffix2)
	}

	return false
}

// LeqExp reports e1 <= e2: the origins e1 permits are a subset of those e2
// permits. Wildcard is the top and None the bottom.
func LeqExp(e1, e2 m.Expression) bool {
	switch {
	case e1 == e2:
		return true
	case e2.IsWildcard():
		return true
	case e1.IsWildcard():
		return false
	case e2.IsNone():
		return false
	case e1.IsNone():
		return true
	}

	return e1.Scheme == e2.Scheme && LeqHost(e1.HostPattern(), e2.HostPattern())
}

// LeqVal reports whether every expression of v1 is below some expression of v2.
func LeqVal(v1, v2 m.Semantics) bool {
	for _, e1 := range v1 {
		found := false

		for _, e2 := range v2 {
			if LeqExp(e1, e2) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// EquivalentVal reports whether v1 and v2 permit the same origins.
func EquivalentVal(v1, v2 m.Semantics) bool {
	return LeqVal(v1, v2) && LeqVal(v2, v1)
}

// Meet returns a lower bound of e1 and e2: the smaller one when they are
// comparable, None otherwise.
func Meet(e1, e2 m.Expression) m.Expression {
	if LeqExp(e1, e2) {
		return e1
	}

	if LeqExp(e2, e1) {
		return e2
	}

	return m.None()
}
