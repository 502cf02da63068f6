// internal/mts/handler.go - Tileset and activity operations
package mts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"sync"
	"time"

	"mts-client/internal/config"
)

// deletionCooldown is the minimum delay between two deletions of the same
// kind.
const deletionCooldown = 20 * time.Second

// linkNextPattern extracts the target of a pagination Link header.
var linkNextPattern = regexp.MustCompile(`<(.*)>;`)

// Handler exposes the tiling-service operations. It is constructed
// explicitly and injected where needed; there is no ambient process-wide
// instance.
type Handler struct {
	cfg    *config.Config
	client *Client
	urls   *URLBuilder

	mu           sync.Mutex
	lastDeletion map[string]time.Time
}

// NewHandler builds a handler from configuration. It fails when credentials
// are missing, since every operation it exposes talks to the API.
func NewHandler(cfg *config.Config) (*Handler, error) {
	username, token, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	return &Handler{
		cfg:          cfg,
		client:       NewClient(cfg),
		urls:         NewURLBuilder(cfg.API.BaseURL, username, token),
		lastDeletion: make(map[string]time.Time),
	}, nil
}

// TilesetID combines the account username with a tileset handle.
func (h *Handler) TilesetID(handle string) string {
	return h.urls.username + "." + handle
}

// CreateTileset registers a new tileset under the given handle, reading the
// recipe from opts.RecipePath or the configured default.
func (h *Handler) CreateTileset(ctx context.Context, handle string, opts TilesetOptions) (json.RawMessage, error) {
	tsID := h.TilesetID(handle)
	if err := ValidateTilesetID(tsID); err != nil {
		return nil, err
	}

	body, err := h.tilesetBody(opts, false)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Post(ctx, h.urls.Tileset(tsID), body)
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK, http.StatusCreated)
}

// PublishTileset queues a publish job and returns the service reply together
// with the studio URL where the job's progress can be watched.
func (h *Handler) PublishTileset(ctx context.Context, handle string) (json.RawMessage, string, error) {
	tsID := h.TilesetID(handle)

	resp, err := h.client.Post(ctx, h.urls.Publish(tsID), nil)
	if err != nil {
		return nil, "", err
	}
	body, err := expectJSON(resp, http.StatusOK)
	if err != nil {
		return nil, "", err
	}

	return body, "https://studio.mapbox.com/tilesets/" + tsID, nil
}

// UpdateTileset patches a tileset's name, description or visibility.
func (h *Handler) UpdateTileset(ctx context.Context, handle string, opts TilesetOptions) error {
	body, err := h.tilesetBody(opts, true)
	if err != nil {
		return err
	}

	resp, err := h.client.Patch(ctx, h.urls.Tileset(h.TilesetID(handle)), body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return nil
}

// DeleteTileset removes a tileset. Deletions of the same kind are spaced by
// the cooldown.
func (h *Handler) DeleteTileset(ctx context.Context, handle string) error {
	if err := h.checkCooldown("tileset deletion"); err != nil {
		return err
	}

	resp, err := h.client.Delete(ctx, h.urls.Tileset(h.TilesetID(handle)))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return nil
}

// TilesetStatus derives a tileset's current status from the latest entry of
// its job listing.
func (h *Handler) TilesetStatus(ctx context.Context, handle string) (*Status, error) {
	resp, err := h.client.Get(ctx, h.urls.Jobs(h.TilesetID(handle), "", 0))
	if err != nil {
		return nil, err
	}
	body, err := expectJSON(resp, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var jobs []Job
	if err := json.Unmarshal(body, &jobs); err != nil {
		return nil, fmt.Errorf("parsing job listing: %w", err)
	}
	if len(jobs) == 0 {
		return nil, errors.New("tileset has no jobs yet")
	}

	latest := jobs[len(jobs)-1]
	return &Status{
		ID:        latest.TilesetID,
		LatestJob: latest.ID,
		Status:    latest.Stage,
	}, nil
}

// TileJSON fetches the tileJSON document of one or more tilesets.
func (h *Handler) TileJSON(ctx context.Context, handles []string, secure bool) (json.RawMessage, error) {
	u, err := h.urls.TileJSON(handles, secure)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// ListJobs returns the job listing of a tileset, optionally filtered by
// stage and limited in size.
func (h *Handler) ListJobs(ctx context.Context, handle, stage string, limit int) (json.RawMessage, error) {
	resp, err := h.client.Get(ctx, h.urls.Jobs(h.TilesetID(handle), stage, limit))
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// Job returns a single processing job of a tileset.
func (h *Handler) Job(ctx context.Context, handle, jobID string) (json.RawMessage, error) {
	resp, err := h.client.Get(ctx, h.urls.Job(h.TilesetID(handle), jobID))
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// ListTilesets returns the account's tilesets.
func (h *Handler) ListTilesets(ctx context.Context, opts ListOptions) (json.RawMessage, error) {
	resp, err := h.client.Get(ctx, h.urls.TilesetList(opts))
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// Recipe returns a tileset's recipe.
func (h *Handler) Recipe(ctx context.Context, handle string) (json.RawMessage, error) {
	resp, err := h.client.Get(ctx, h.urls.Recipe(h.TilesetID(handle)))
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// UpdateRecipe replaces a tileset's recipe with the document at path.
func (h *Handler) UpdateRecipe(ctx context.Context, handle, path string) error {
	recipe, err := loadJSON(path)
	if err != nil {
		return err
	}

	resp, err := h.client.Patch(ctx, h.urls.Recipe(h.TilesetID(handle)), recipe)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return nil
}

// ValidateRecipeFile submits the recipe at path to the service's validation
// endpoint and returns the validation report.
func (h *Handler) ValidateRecipeFile(ctx context.Context, path string) (json.RawMessage, error) {
	recipe, err := loadJSON(path)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Put(ctx, h.urls.ValidateRecipe(), recipe)
	if err != nil {
		return nil, err
	}
	return expectJSON(resp, http.StatusOK)
}

// Activity fetches one page of the account activity report. When the service
// paginates, the start token of the next page is extracted from the Link
// header.
func (h *Handler) Activity(ctx context.Context, opts ActivityOptions) (*ActivityPage, error) {
	resp, err := h.client.Get(ctx, h.urls.Activity(opts))
	if err != nil {
		return nil, err
	}
	body, err := expectJSON(resp, http.StatusOK)
	if err != nil {
		return nil, err
	}

	page := &ActivityPage{Data: body}
	if link := resp.Header.Get("Link"); link != "" {
		if m := linkNextPattern.FindStringSubmatch(link); m != nil {
			if next, err := url.Parse(m[1]); err == nil {
				page.Next = next.Query().Get("start")
			}
		}
	}
	return page, nil
}

// tilesetBody assembles the JSON body of a tileset create or update call.
func (h *Handler) tilesetBody(opts TilesetOptions, update bool) (map[string]interface{}, error) {
	body := map[string]interface{}{
		"name":        opts.Name,
		"description": opts.Description,
		"private":     opts.Private,
	}

	if !update {
		recipePath := opts.RecipePath
		if recipePath == "" {
			recipePath = h.cfg.DefaultRecipe
		}
		recipe, err := loadJSON(recipePath)
		if err != nil {
			return nil, err
		}
		body["recipe"] = recipe
	}

	if h.cfg.Attribution != "" {
		var attribution interface{}
		if err := json.Unmarshal([]byte(h.cfg.Attribution), &attribution); err != nil {
			return nil, fmt.Errorf("unable to parse attribution JSON: %w", err)
		}
		body["attribution"] = attribution
	}

	return body, nil
}

// checkCooldown enforces the delay between deletions of the same kind.
func (h *Handler) checkCooldown(kind string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if last, ok := h.lastDeletion[kind]; ok && time.Since(last) < deletionCooldown {
		return &RestrictedError{Operation: kind}
	}
	h.lastDeletion[kind] = time.Now()
	return nil
}

// expectJSON returns the response body when its status is one of the
// accepted codes, otherwise an APIError carrying the service's reply.
func expectJSON(resp *Response, accept ...int) (json.RawMessage, error) {
	for _, code := range accept {
		if resp.StatusCode == code {
			return json.RawMessage(resp.Body), nil
		}
	}
	return nil, &APIError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
}

// loadJSON reads a JSON document from disk, failing on unreadable or
// malformed files before anything is sent to the service.
func loadJSON(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}
