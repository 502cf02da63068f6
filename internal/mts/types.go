// internal/mts/types.go - Tiling-service data types
package mts

import "encoding/json"

// Job is one entry of a tileset's processing job listing.
type Job struct {
	ID        string `json:"id"`
	TilesetID string `json:"tilesetId"`
	Stage     string `json:"stage"`
}

// Status summarizes a tileset's state, derived from its latest job.
type Status struct {
	ID        string `json:"id"`
	LatestJob string `json:"latest_job"`
	Status    string `json:"status"`
}

// ActivityPage is one page of the account activity report, with the start
// token of the next page when the service provided one.
type ActivityPage struct {
	Data json.RawMessage `json:"data"`
	Next string          `json:"next,omitempty"`
}

// TilesetOptions describe the body of a tileset create or update call.
type TilesetOptions struct {
	Name        string
	Description string
	Private     bool

	// RecipePath falls back to the configured default recipe on create and
	// is ignored on update.
	RecipePath string
}
