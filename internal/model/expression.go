package model

import (
	"fmt"
	"strings"
)

// ExpressionKind tags the variant held by an Expression.
type ExpressionKind uint8

const (
	// ExprWildcard permits framing from any origin (top of the order).
	ExprWildcard ExpressionKind = iota + 1
	// ExprNone permits framing from no origin (bottom of the order).
	ExprNone
	// ExprSchemeAny permits any host under one scheme.
	ExprSchemeAny
	// ExprOrigin permits one scheme and a host pattern. The pattern may carry
	// a leading "*." label meaning "any proper subdomain of the remainder".
	ExprOrigin
)

// Expression is a single framing source: the unit of the policy order.
type Expression struct {
	Kind   ExpressionKind
	Scheme string
	Host   string
}

// Wildcard returns the expression matching every origin.
func Wildcard() Expression {
	return Expression{Kind: ExprWildcard}
}

// None returns the expression matching no origin.
func None() Expression {
	return Expression{Kind: ExprNone}
}

// SchemeAny returns the expression matching every host under scheme.
func SchemeAny(scheme string) Expression {
	return Expression{Kind: ExprSchemeAny, Scheme: strings.ToLower(scheme)}
}

// OriginMatch returns the expression matching scheme and hostPattern. A "*"
// host is folded into SchemeAny so equal sets compare structurally equal.
// OriginMatch panics on an empty host; callers check the host first.
func OriginMatch(scheme, hostPattern string) Expression {
	if hostPattern == "" {
		panic("model: OriginMatch with empty host")
	}

	if hostPattern == "*" {
		return SchemeAny(scheme)
	}

	return Expression{
		Kind:   ExprOrigin,
		Scheme: strings.ToLower(scheme),
		Host:   strings.ToLower(hostPattern),
	}
}

// FromOrigin converts a validated origin into an expression.
func FromOrigin(o Origin) Expression {
	return OriginMatch(o.Scheme, o.Host)
}

// IsWildcard reports whether e is the top element.
func (e Expression) IsWildcard() bool { return e.Kind == ExprWildcard }

// IsNone reports whether e is the bottom element.
func (e Expression) IsNone() bool { return e.Kind == ExprNone }

// HostPattern returns the host used for ordering; SchemeAny compares as "*".
func (e Expression) HostPattern() string {
	if e.Kind == ExprSchemeAny {
		return "*"
	}

	return e.Host
}

// String renders e in CSP source-expression syntax.
func (e Expression) String() string {
	switch e.Kind {
	case ExprWildcard:
		return "*"
	case ExprNone:
		return "'none'"
	case ExprSchemeAny:
		return e.Scheme + ":"
	case ExprOrigin:
		return e.Scheme + "://" + e.Host
	default:
		return "<invalid>"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Expression) MarshalText() ([]byte, error) {
	if e.Kind < ExprWildcard || e.Kind > ExprOrigin {
		return nil, fmt.Errorf("cannot marshal expression of kind %d", e.Kind)
	}

	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly the
// forms produced by String.
func (e *Expression) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))

	switch {
	case s == "*":
		*e = Wildcard()
	case s == "'none'":
		*e = None()
	case strings.HasSuffix(s, ":") && !strings.Contains(s, "/"):
		*e = SchemeAny(strings.TrimSuffix(s, ":"))
	default:
		scheme, host, ok := strings.Cut(s, "://")
		if !ok || scheme == "" || host == "" {
			return fmt.Errorf("invalid expression %q", s)
		}

		*e = OriginMatch(scheme, host)
	}

	return nil
}

// Semantics is an ordered list of expressions: the set of origins a browser
// lets frame the page is the union of what each expression permits.
type Semantics []Expression

// DefaultSemantics is the policy enforced when no anti-framing header is seen.
func DefaultSemantics() Semantics {
	return Semantics{Wildcard()}
}

// Key returns a canonical serialization of s; structurally equal values share
// a key.
func (s Semantics) Key() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}

	return strings.Join(parts, " ")
}

// String renders s as a CSP source list.
func (s Semantics) String() string {
	if len(s) == 0 {
		return "(empty)"
	}

	return s.Key()
}

// Equal reports structural equality, order included.
func (s Semantics) Equal(other Semantics) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}
