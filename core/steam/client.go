package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"library-sync/core/reconcile"
)

const (
	baseURL   = "https://api.steampowered.com"
	userAgent = "library-sync/1.0"
)

// Client is a Steam Web API client.
type Client struct {
	apiKey     string
	accountID  string
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates a new Steam Web API client from the provided
// configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	// Custom transport with strict timeouts so a hung remote call cannot
	// stall a run indefinitely at the connection level.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}

	return &Client{
		apiKey:    cfg.APIKey,
		accountID: cfg.AccountID,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// OwnedGames fetches the account's full game catalog.
// Entries without a positive appid are skipped.
func (c *Client) OwnedGames(ctx context.Context) ([]reconcile.Item, error) {
	params := url.Values{
		"key":             {c.apiKey},
		"steamid":         {c.accountID},
		"include_appinfo": {"1"},
		"format":          {"json"},
	}

	var resp ownedGamesResponse
	if err := c.get(ctx, "/IPlayerService/GetOwnedGames/v1/", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching owned games: %w", err)
	}

	items := make([]reconcile.Item, 0, len(resp.Response.Games))
	for _, game := range resp.Response.Games {
		if game.AppID <= 0 {
			continue
		}
		items = append(items, reconcile.Item{
			AppID:    game.AppID,
			Name:     game.Name,
			Playtime: game.PlaytimeForever,
		})
	}

	return items, nil
}

// Completion fetches the achievement completion ratio for one app.
// It never returns an error: apps without trackable stats answer 400, which
// is the expected "no stats" signal, and any other failure is logged and
// collapsed to Unknown as well.
func (c *Client) Completion(ctx context.Context, appID int64) reconcile.Completion {
	params := url.Values{
		"key":     {c.apiKey},
		"steamid": {c.accountID},
		"appid":   {strconv.FormatInt(appID, 10)},
	}

	var resp playerAchievementsResponse
	if err := c.get(ctx, "/ISteamUserStats/GetPlayerAchievements/v1/", params, &resp); err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.status == http.StatusBadRequest {
			c.logger.Debug("app defines no stats", zap.Int64("appid", appID))
		} else {
			c.logger.Warn("achievement fetch failed", zap.Int64("appid", appID), zap.Error(err))
		}
		return reconcile.Unknown
	}

	return completionOf(resp.PlayerStats.Achievements)
}

// completionOf computes achieved/total as an exact ratio in [0,1].
// Zero achievements means the ratio is undefined, not zero.
func completionOf(achievements []achievement) reconcile.Completion {
	if len(achievements) == 0 {
		return reconcile.Unknown
	}

	achieved := 0
	for _, a := range achievements {
		if a.Achieved != 0 {
			achieved++
		}
	}

	return reconcile.Completion{
		Ratio: float64(achieved) / float64(len(achievements)),
		Known: true,
	}
}

// statusError is a non-success HTTP response from the Steam Web API.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("steam: status %d: %s", e.status, e.body)
}

// get performs a single GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &statusError{status: resp.StatusCode, body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}
