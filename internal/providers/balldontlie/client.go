package balldontlie

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-viewer/internal/domain/teams"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client lists and resolves players and teams from the balldontlie API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// ListPlayers fetches one page of players. Pages below 1 are clamped to 1 and a
// non-positive perPage uses the default page size.
func (c *Client) ListPlayers(ctx context.Context, page, perPage int, search string) (players.Page, error) {
	if page < 1 {
		page = 1
	}
	q := make(map[string]string, 3)
	q["page"] = strconv.Itoa(page)
	q["per_page"] = strconv.Itoa(resolvePerPage(perPage))
	if s := strings.TrimSpace(search); s != "" {
		q["search"] = s
	}

	body, err := c.get(ctx, "/players", q)
	if err != nil {
		return players.Page{}, err
	}

	var payload playersResponse
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return players.Page{}, providers.Mark(crerr.Wrap(err, "balldontlie: decode players page"), providers.ErrDecode)
	}
	return mapPage(payload), nil
}

// GetPlayer resolves a single player by id.
func (c *Client) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	body, err := c.get(ctx, "/players/"+strconv.Itoa(id), nil)
	if err != nil {
		return players.Player{}, err
	}
	p, err := decodeDetail[playerResponse](body)
	if err != nil {
		return players.Player{}, providers.Mark(crerr.Wrapf(err, "balldontlie: decode player %d", id), providers.ErrDecode)
	}
	return mapPlayer(p), nil
}

// GetTeam resolves a single team by id.
func (c *Client) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	body, err := c.get(ctx, "/teams/"+strconv.Itoa(id), nil)
	if err != nil {
		return teams.Team{}, err
	}
	t, err := decodeDetail[teamResponse](body)
	if err != nil {
		return teams.Team{}, providers.Mark(crerr.Wrapf(err, "balldontlie: decode team %d", id), providers.ErrDecode)
	}
	return mapTeam(t), nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	req, err := c.buildRequest(ctx, path, query)
	if err != nil {
		return nil, providers.Mark(crerr.Wrap(err, "balldontlie: build request"), providers.ErrTransport)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.Mark(crerr.Wrapf(err, "balldontlie: get %s", path), providers.ErrTransport)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, c.rateLimitError(resp)
	case resp.StatusCode != http.StatusOK:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, providers.Mark(crerr.Wrapf(err, "balldontlie: read %s", path), providers.ErrTransport)
	}
	return body, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, query map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

func (c *Client) rateLimitError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
	return &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
		Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		Message:    strings.TrimSpace(string(msg)),
	}
}

// decodeDetail accepts both a bare object and one wrapped in {"data": ...}.
func decodeDetail[T any](body []byte) (T, error) {
	var zero T
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return zero, crerr.New("empty body")
	}

	var wrapped envelope[T]
	if err := sonic.Unmarshal(trimmed, &wrapped); err == nil && wrapped.Data != nil {
		return *wrapped.Data, nil
	}

	var direct T
	if err := sonic.Unmarshal(trimmed, &direct); err != nil {
		return zero, err
	}
	return direct, nil
}

func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
