package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"library-sync/core/reconcile"
)

const (
	baseURL    = "https://api.notion.com/v1"
	apiVersion = "2022-06-28"

	// queryPageSize is the maximum page size the query endpoint accepts.
	queryPageSize = 100

	coverURLTemplate = "https://cdn.cloudflare.steamstatic.com/steam/apps/%d/header.jpg"
)

// APIError is a non-success response from the Notion API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: status %d: %s", e.Status, e.Body)
}

// Client is a Notion API client bound to one library database.
type Client struct {
	token      string
	databaseID string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Notion API client from the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		token:      cfg.Token,
		databaseID: cfg.DatabaseID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// QueryAll reads the full destination record set, following the pagination
// cursor until exhausted. Reconciliation must never run on a partial set, so
// any page failing mid-way fails the whole read.
func (c *Client) QueryAll(ctx context.Context) ([]Page, error) {
	var pages []Page
	cursor := ""

	for {
		req := queryRequest{StartCursor: cursor, PageSize: queryPageSize}

		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, "/databases/"+c.databaseID+"/query", req, &resp); err != nil {
			return nil, fmt.Errorf("querying database: %w", err)
		}

		pages = append(pages, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil {
			return pages, nil
		}
		cursor = *resp.NextCursor
	}
}

// CreatePage inserts a new record with the given initial property set.
// A non-empty coverURL becomes the page's external cover image.
func (c *Client) CreatePage(ctx context.Context, props reconcile.Delta, coverURL string) (*Page, error) {
	req := createRequest{
		Parent:     parent{DatabaseID: c.databaseID},
		Properties: properties(props),
	}
	if coverURL != "" {
		req.Cover = &cover{Type: "external", External: externalFile{URL: coverURL}}
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	return &page, nil
}

// UpdatePage patches only the properties named in the delta. Properties the
// delta does not mention are left untouched on the destination record.
func (c *Client) UpdatePage(ctx context.Context, pageID string, delta reconcile.Delta) (*Page, error) {
	req := updateRequest{Properties: properties(delta)}

	var page Page
	if err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, req, &page); err != nil {
		return nil, fmt.Errorf("updating page %s: %w", pageID, err)
	}
	return &page, nil
}

// CoverURL returns the public header image for an app. The rule is a fixed
// template over the appid, not configurable.
func CoverURL(appID int64) string {
	return fmt.Sprintf(coverURLTemplate, appID)
}

// do executes one JSON request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}
