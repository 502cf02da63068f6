// internal/mts/sources.go - Upload source operations
package mts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"mts-client/pkg/feature"
)

// UploadOptions control a source upload.
type UploadOptions struct {
	// Replace overwrites an existing source instead of appending to it.
	Replace bool

	// SkipValidation bypasses the structural check on each feature.
	SkipValidation bool
}

// UploadSource streams one or more GeoJSON files to the account's cloud
// storage as a line-delimited source. The token's username claim must match
// the account before anything is sent.
func (h *Handler) UploadSource(ctx context.Context, srcID string, paths []string, opts UploadOptions) (json.RawMessage, error) {
	if err := ValidateSourceID(srcID); err != nil {
		return nil, err
	}
	if err := ValidateToken(h.urls.username, h.urls.token); err != nil {
		return nil, err
	}

	var lines bytes.Buffer
	for i, path := range paths {
		raw, err := feature.Load(path)
		if err != nil {
			return nil, err
		}
		if !opts.SkipValidation {
			if err := feature.Validate(i, raw); err != nil {
				return nil, err
			}
		}

		if err := json.Compact(&lines, raw); err != nil {
			return nil, fmt.Errorf("compacting %s: %w", path, err)
		}
		lines.WriteByte('\n')
	}

	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	part, err := writer.CreateFormFile("file", "file")
	if err != nil {
		return nil, fmt.Errorf("building multipart form: %w", err)
	}
	if _, err := part.Write(lines.Bytes()); err != nil {
		return nil, fmt.Errorf("writing multipart form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart form: %w", err)
	}

	method := http.MethodPost
	if opts.Replace {
		method = http.MethodPut
	}

	resp, err := h.client.Multipart(ctx, method, h.urls.Source(srcID), form, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// Source fetches the metadata of one upload source.
func (h *Handler) Source(ctx context.Context, srcID string) (json.RawMessage, error) {
	resp, err := h.client.Get(ctx, h.urls.Source(srcID))
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// ListSources returns the account's upload sources.
func (h *Handler) ListSources(ctx context.Context) (json.RawMessage, error) {
	resp, err := h.client.Get(ctx, h.urls.SourceList())
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// DeleteSource removes an upload source. Deletions of the same kind are
// spaced by the cooldown.
func (h *Handler) DeleteSource(ctx context.Context, srcID string) error {
	if err := h.checkCooldown("source deletion"); err != nil {
		return err
	}

	resp, err := h.client.Delete(ctx, h.urls.Source(srcID))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return nil
}
