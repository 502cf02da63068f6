// internal/mts/ids.go - Identifier validation
package mts

import "regexp"

var (
	sourceIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9-_]{1,32}$`)
	tilesetIDPattern = regexp.MustCompile(`(?i)^[a-z0-9-_]{1,32}\.[a-z0-9-_]{1,32}$`)
)

// ValidateSourceID checks an upload-source identifier against the service's
// naming rules.
func ValidateSourceID(id string) error {
	if sourceIDPattern.MatchString(id) {
		return nil
	}
	return &InvalidIDError{ID: id}
}

// ValidateTilesetID checks a username.handle tileset identifier.
func ValidateTilesetID(id string) error {
	if tilesetIDPattern.MatchString(id) {
		return nil
	}
	return &InvalidIDError{ID: id}
}
