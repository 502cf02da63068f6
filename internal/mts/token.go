// internal/mts/token.go - Access token inspection
package mts

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ValidateToken decodes the payload segment of an access token and checks
// that its username claim matches the configured account. Tokens are issued
// without base64 padding, so the padding is restored by hand before decoding.
func ValidateToken(username, token string) error {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return errors.New("token does not contain a payload component")
	}

	payload := parts[1]
	for len(payload)%4 != 0 {
		payload += "="
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("decoding token payload: %w", err)
	}

	var claims struct {
		Username string `json:"u"`
	}
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return fmt.Errorf("parsing token payload: %w", err)
	}

	if claims.Username == "" {
		return errors.New("token does not contain a username")
	}
	if claims.Username != username {
		return fmt.Errorf("token username %s does not match username %s", claims.Username, username)
	}
	return nil
}
