// internal/mts/urls.go - Request URL builders
package mts

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// URLBuilder assembles request URLs for the tiling service. The access token
// always travels as a query parameter; optional parameters are dropped from
// the query when unset.
type URLBuilder struct {
	api      string
	username string
	token    string
}

// NewURLBuilder creates a builder rooted at the given API base URL.
func NewURLBuilder(api, username, token string) *URLBuilder {
	return &URLBuilder{
		api:      strings.TrimRight(api, "/"),
		username: username,
		token:    token,
	}
}

func (u *URLBuilder) tilesetsAPI() string {
	return u.api + "/tilesets/v1"
}

// Tileset returns the URL used by most tileset operations.
func (u *URLBuilder) Tileset(tsID string) string {
	return fmt.Sprintf("%s/%s?access_token=%s", u.tilesetsAPI(), tsID, u.token)
}

// Publish returns the publish URL of a tileset.
func (u *URLBuilder) Publish(tsID string) string {
	return fmt.Sprintf("%s/%s/publish?access_token=%s", u.tilesetsAPI(), tsID, u.token)
}

// Jobs returns the URL of a tileset's job listing, optionally filtered by
// stage and limited in size.
func (u *URLBuilder) Jobs(tsID, stage string, limit int) string {
	query := url.Values{}
	query.Set("access_token", u.token)
	if stage != "" {
		query.Set("stage", stage)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return fmt.Sprintf("%s/%s/jobs?%s", u.tilesetsAPI(), tsID, query.Encode())
}

// Job returns the URL of a single tileset job.
func (u *URLBuilder) Job(tsID, jobID string) string {
	return fmt.Sprintf("%s/%s/jobs/%s?access_token=%s", u.tilesetsAPI(), tsID, jobID, u.token)
}

// TileJSON returns the URL serving the tileJSON of one or more tilesets.
// Each handle is combined with the account username and validated.
func (u *URLBuilder) TileJSON(handles []string, secure bool) (string, error) {
	ids := make([]string, 0, len(handles))
	for _, handle := range handles {
		tsID := u.username + "." + handle
		if err := ValidateTilesetID(tsID); err != nil {
			return "", err
		}
		ids = append(ids, tsID)
	}

	result := fmt.Sprintf("%s/v4/%s.json?access_token=%s", u.api, strings.Join(ids, ","), u.token)
	if secure {
		result += "&secure"
	}
	return result, nil
}

// ListOptions filter and order a tileset listing.
type ListOptions struct {
	Type       string
	Visibility string
	SortBy     string
	Limit      int
}

// TilesetList returns the URL listing the account's tilesets.
func (u *URLBuilder) TilesetList(opts ListOptions) string {
	query := url.Values{}
	query.Set("access_token", u.token)
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}
	if opts.Visibility != "" {
		query.Set("visibility", opts.Visibility)
	}
	if opts.SortBy != "" {
		query.Set("sortby", opts.SortBy)
	}
	return fmt.Sprintf("%s/%s?%s", u.tilesetsAPI(), u.username, query.Encode())
}

// Recipe returns the URL of a tileset's recipe.
func (u *URLBuilder) Recipe(tsID string) string {
	return fmt.Sprintf("%s/%s/recipe?access_token=%s", u.tilesetsAPI(), tsID, u.token)
}

// ValidateRecipe returns the recipe validation endpoint.
func (u *URLBuilder) ValidateRecipe() string {
	return fmt.Sprintf("%s/validateRecipe?access_token=%s", u.tilesetsAPI(), u.token)
}

// Source returns the URL of a single upload source.
func (u *URLBuilder) Source(srcID string) string {
	return fmt.Sprintf("%s/sources/%s/%s?access_token=%s", u.tilesetsAPI(), u.username, srcID, u.token)
}

// SourceList returns the URL listing the account's upload sources.
func (u *URLBuilder) SourceList() string {
	return fmt.Sprintf("%s/sources/%s?access_token=%s", u.tilesetsAPI(), u.username, u.token)
}

// ActivityOptions page and order an account activity report.
type ActivityOptions struct {
	SortBy  string
	OrderBy string
	Limit   int
	Start   string
}

// Activity returns the URL of the account's tileset activity report.
func (u *URLBuilder) Activity(opts ActivityOptions) string {
	query := url.Values{}
	query.Set("access_token", u.token)
	if opts.SortBy != "" {
		query.Set("sortby", opts.SortBy)
	}
	if opts.OrderBy != "" {
		query.Set("orderby", opts.OrderBy)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Start != "" {
		query.Set("start", opts.Start)
	}
	return fmt.Sprintf("%s/activity/v1/%s/tilesets?%s", u.api, u.username, query.Encode())
}
