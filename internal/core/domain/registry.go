package domain

// ReleaseConfigRegistry resolves the configuration to use for a release.
type ReleaseConfigRegistry struct {
	overrides map[ReleaseToken]ReleaseConfiguration
}

// NewReleaseConfigRegistry indexes the explicit overrides by token.
// When a token is listed more than once, the last entry wins.
func NewReleaseConfigRegistry(overrides []ReleaseConfiguration) *ReleaseConfigRegistry {
	r := &ReleaseConfigRegistry{
		overrides: make(map[ReleaseToken]ReleaseConfiguration, len(overrides)),
	}
	for _, o := range overrides {
		r.overrides[o.Token] = o.Clone()
	}
	return r
}

// Resolve returns the configuration for token.
//
// Release, Source and Target are each defaulted to the token independently,
// and only when the override leaves them unset.
func (r *ReleaseConfigRegistry) Resolve(token ReleaseToken) ReleaseConfiguration {
	cfg, ok := r.overrides[token]
	if ok {
		cfg = cfg.Clone()
	} else {
		cfg = EmptyForRelease(token)
	}
	cfg.Token = token

	if cfg.Release == nil {
		cfg.Release = Ptr(token.String())
	}
	if cfg.Source == nil {
		cfg.Source = Ptr(token.String())
	}
	if cfg.Target == nil {
		cfg.Target = Ptr(token.String())
	}

	return cfg
}
