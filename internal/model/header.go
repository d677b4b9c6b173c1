package model

import (
	"gopkg.in/yaml.v3"
)

// NoHeaderSentinel is written by the recording harness when a response did
// not carry the header at all.
const NoHeaderSentinel = "WARN_NO_HEADER"

// RawHeader is a single header instance as received by a browser. A header
// that was never sent is distinct from one sent with an empty value.
type RawHeader struct {
	Value   string
	Present bool
}

// Header returns a present header instance.
func Header(value string) RawHeader {
	return RawHeader{Value: value, Present: true}
}

// Absent returns the "no header sent" instance.
func Absent() RawHeader {
	return RawHeader{}
}

// RawHeaderFrom maps the recording sentinel to an absent header.
func RawHeaderFrom(value string) RawHeader {
	if value == NoHeaderSentinel {
		return Absent()
	}

	return Header(value)
}

// UnmarshalYAML decodes a scalar; null and the sentinel decode as absent.
func (h *RawHeader) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*h = Absent()
		return nil
	}

	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	*h = RawHeaderFrom(value)

	return nil
}

// MarshalYAML encodes an absent header as null.
func (h RawHeader) MarshalYAML() (interface{}, error) {
	if !h.Present {
		return nil, nil
	}

	return h.Value, nil
}

// HeaderList is a sequence of header instances. In YAML it may be written as
// a single scalar when only one instance was received.
type HeaderList []RawHeader

// UnmarshalYAML accepts a scalar, null or a sequence.
func (l *HeaderList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		var single RawHeader
		if err := node.Decode(&single); err != nil {
			return err
		}

		*l = HeaderList{single}

		return nil
	}

	headers := make([]RawHeader, 0, len(node.Content))
	for _, item := range node.Content {
		var h RawHeader
		if err := item.Decode(&h); err != nil {
			return err
		}

		headers = append(headers, h)
	}

	*l = headers

	return nil
}

// BrowserBundle holds the raw anti-framing headers one browser received.
type BrowserBundle struct {
	Legacy []RawHeader `yaml:"xfo"`
	Modern []RawHeader `yaml:"csp"`
}

// XFOKind tags the outcome of normalizing one X-Frame-Options instance.
type XFOKind uint8

const (
	// XFOJunk is an unrecognized value.
	XFOJunk XFOKind = iota
	// XFODeny forbids all framing.
	XFODeny
	// XFOAllowJunk is an ALLOW-FROM value with a malformed origin list.
	XFOAllowJunk
	// XFOSameOrigin allows framing by the page's own origin.
	XFOSameOrigin
	// XFOAllowFrom allows framing by one listed origin.
	XFOAllowFrom
)

var xfoKindNames = map[XFOKind]string{
	XFOJunk:       "junk",
	XFODeny:       "deny",
	XFOAllowJunk:  "allow-junk",
	XFOSameOrigin: "sameorigin",
	XFOAllowFrom:  "allow-from",
}

func (k XFOKind) String() string {
	if name, ok := xfoKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// XFOOutcome is a normalized X-Frame-Options instance. Origin is set for
// XFOSameOrigin and XFOAllowFrom only.
type XFOOutcome struct {
	Kind   XFOKind
	Origin Origin
}

// HoldsOrigin reports whether the outcome carries an origin.
func (o XFOOutcome) HoldsOrigin() bool {
	return o.Kind == XFOSameOrigin || o.Kind == XFOAllowFrom
}
