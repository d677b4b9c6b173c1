package model

// Path represents a file system path.
type Path string

// Observation is one browser's view of a site: the headers it received and
// the archetype whose enforcement rules apply to it.
type Observation struct {
	Label     string
	Archetype Archetype
	Bundle    BrowserBundle
}

// RecordedResponse is a recorded page load as stored in a dataset. Either
// UserAgent or Browser identifies the enforcing browser; Browser wins when
// both are set.
type RecordedResponse struct {
	UserAgent string     `yaml:"user_agent,omitempty"`
	Browser   string     `yaml:"browser,omitempty"`
	XFO       HeaderList `yaml:"xfo,omitempty"`
	CSP       HeaderList `yaml:"csp,omitempty"`
	Policies  HeaderList `yaml:"content_security_policy,omitempty"`
}

// Site is a page under analysis with the responses recorded for it.
type Site struct {
	Name      string             `yaml:"name,omitempty"`
	Origin    string             `yaml:"origin"`
	Responses []RecordedResponse `yaml:"responses"`
}

// DisplayName returns the site name, falling back to its origin.
func (s Site) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}

	return s.Origin
}

// Dataset is the decoded content of a dataset file.
type Dataset struct {
	Sites []Site `yaml:"sites"`
}

// UserAgentRule maps a glob pattern over User-Agent strings to an archetype.
type UserAgentRule struct {
	Pattern   string    `yaml:"pattern"`
	Archetype Archetype `yaml:"archetype"`
}
