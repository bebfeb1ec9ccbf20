package domain

import "time"

// BuildInfo records the hashes of the last successful generation pass for a key.
type BuildInfo struct {
	Key        string    `json:"key,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Outputs    []string  `json:"outputs,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
