package domain

import "time"

// BuildInfo records the options fingerprint a compiler last used for an output root.
type BuildInfo struct {
	OutputRoot  string    `json:"output_root,omitzero"`
	OptionsHash string    `json:"options_hash,omitzero"`
	Compiled    int       `json:"compiled,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
