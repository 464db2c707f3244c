package domain

import "go.trai.ch/zerr"

// MultiReleaseMode controls how the multi-release capability gate is decided.
type MultiReleaseMode string

const (
	// ModeAuto derives support from the compiler's version banner.
	ModeAuto MultiReleaseMode = "auto"
	// ModeAlways forces multi-release compilation on.
	ModeAlways MultiReleaseMode = "always"
	// ModeNever forces multi-release compilation off.
	ModeNever MultiReleaseMode = "never"
)

// ParseMultiReleaseMode parses a mode name. The empty string means ModeAuto.
func ParseMultiReleaseMode(s string) (MultiReleaseMode, error) {
	switch MultiReleaseMode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidMultiReleaseMode, "unknown mode"), "mode", s)
	}
}
