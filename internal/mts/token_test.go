// internal/mts/token_test.go - Unit tests for access token inspection
package mts

import (
	"encoding/base64"
	"testing"
)

// mkToken builds a token whose payload segment is the unpadded base64 of the
// given claims document, the way the service issues them.
func mkToken(claims string) string {
	return "pk." + base64.RawStdEncoding.EncodeToString([]byte(claims))
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name     string
		username string
		token    string
		wantErr  bool
	}{
		{"matching username", "user", mkToken(`{"u": "user"}`), false},
		{"username mismatch", "user", mkToken(`{"u": "other"}`), true},
		{"no username claim", "user", mkToken(`{"a": 1}`), true},
		{"no payload component", "user", "justonepart", true},
		{"payload not base64", "user", "pk.%%%", true},
		{"payload not JSON", "user", mkToken(`not json`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateToken(tt.username, tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTokenPadsBase64(t *testing.T) {
	// a 10-byte payload needs two padding chars; the decoder must restore
	// them by hand
	token := mkToken(`{"u":"ab"}`)
	if err := ValidateToken("ab", token); err != nil {
		t.Errorf("expected unpadded payload to decode, got %v", err)
	}
}
