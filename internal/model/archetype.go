package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownArchetype is returned when no enforcement algorithm is known for
// a browser archetype.
var ErrUnknownArchetype = errors.New("unknown browser archetype")

// Archetype is a browser family sharing one anti-framing enforcement
// algorithm. The set is closed.
type Archetype uint8

const (
	// Firefox enforces CSP first and folds every XFO value.
	Firefox Archetype = iota + 1
	// ChromeFamily covers Chrome, Safari, Samsung Internet and UC Browser.
	ChromeFamily
	// Edge is the legacy (EdgeHTML) Edge.
	Edge
	// InternetExplorer honors XFO only.
	InternetExplorer
	// OperaMini honors XFO only.
	OperaMini
)

const (
	firefoxStr          = "firefox"
	chromeFamilyStr     = "chrome"
	edgeStr             = "edge"
	internetExplorerStr = "ie"
	operaMiniStr        = "opera-mini"
)

// Archetypes returns every archetype, legacy-only families first.
func Archetypes() []Archetype {
	return []Archetype{InternetExplorer, OperaMini, Firefox, ChromeFamily, Edge}
}

// ParseArchetype parses a case-insensitive archetype name.
func ParseArchetype(s string) (Archetype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case firefoxStr:
		return Firefox, nil
	case chromeFamilyStr, "chrome-family", "safari":
		return ChromeFamily, nil
	case edgeStr:
		return Edge, nil
	case internetExplorerStr, "internet-explorer", "explorer":
		return InternetExplorer, nil
	case operaMiniStr, "operamini", "opera_mini":
		return OperaMini, nil
	default:
		return 0, fmt.Errorf("%w %q (valid: %s, %s, %s, %s, %s)", ErrUnknownArchetype, s,
			firefoxStr, chromeFamilyStr, edgeStr, internetExplorerStr, operaMiniStr)
	}
}

// String returns the canonical archetype name.
func (a Archetype) String() string {
	switch a {
	case Firefox:
		return firefoxStr
	case ChromeFamily:
		return chromeFamilyStr
	case Edge:
		return edgeStr
	case InternetExplorer:
		return internetExplorerStr
	case OperaMini:
		return operaMiniStr
	default:
		return fmt.Sprintf("archetype(%d)", uint8(a))
	}
}

// DisplayName returns a human readable family name.
func (a Archetype) DisplayName() string {
	switch a {
	case Firefox:
		return "Firefox"
	case ChromeFamily:
		return "Chrome family"
	case Edge:
		return "Edge (legacy)"
	case InternetExplorer:
		return "Internet Explorer"
	case OperaMini:
		return "Opera Mini"
	default:
		return a.String()
	}
}

// Valid reports whether a is one of the known archetypes.
func (a Archetype) Valid() bool {
	return a >= Firefox && a <= OperaMini
}

// LegacyOnly reports whether the family ignores CSP and enforces XFO only.
func (a Archetype) LegacyOnly() bool {
	return a == InternetExplorer || a == OperaMini
}

// MarshalText implements encoding.TextMarshaler.
func (a Archetype) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownArchetype, uint8(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Archetype) UnmarshalText(text []byte) error {
	parsed, err := ParseArchetype(string(text))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
