package domain

import (
	"regexp"
	"slices"

	"go.trai.ch/zerr"
)

var manifestNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,69}$`)

// ArchiveLayout describes the staged archive tree produced by assembly.
type ArchiveLayout struct {
	BaseClassesRoot     string
	PerReleaseRoots     map[ReleaseToken]string
	DescriptorClassPath string
	MultiRelease        bool
}

// Releases returns the tokens that received a versioned subtree, sorted.
func (l ArchiveLayout) Releases() []ReleaseToken {
	tokens := make([]ReleaseToken, 0, len(l.PerReleaseRoots))
	for t := range l.PerReleaseRoots {
		tokens = append(tokens, t)
	}
	slices.Sort(tokens)
	return tokens
}

// AssembleRequest carries the inputs of archive assembly.
type AssembleRequest struct {
	DefaultOutputDir string
	StagingRoot      string
	Releases         []ReleaseToken
	MainRelease      ReleaseToken
	DescriptorClass  string
	Manifest         *Manifest
}

// Manifest is an ordered set of main-section manifest attributes.
type Manifest struct {
	keys   []string
	values map[string]string
}

// NewManifest returns a manifest carrying the mandatory version attribute.
func NewManifest() *Manifest {
	m := &Manifest{values: make(map[string]string)}
	m.keys = append(m.keys, "Manifest-Version")
	m.values["Manifest-Version"] = "1.0"
	return m
}

// Set adds or replaces an attribute. Names must be valid manifest attribute names.
func (m *Manifest) Set(name, value string) error {
	if m == nil {
		return zerr.New("manifest is not available")
	}
	if !manifestNameRegex.MatchString(name) {
		return zerr.With(zerr.New("invalid manifest attribute name"), "name", name)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = value
	return nil
}

// Get returns the value of an attribute.
func (m *Manifest) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[name]
	return v, ok
}

// Each calls fn for every attribute in insertion order.
func (m *Manifest) Each(fn func(name, value string)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
