package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/valyala/fasthttp"
)

const (
	requestTimeout = 10 * time.Second
	defaultDDragon = "https://ddragon.leagueoflegends.com"
)

var _ Provider = (*Client)(nil)

// NewClient builds a Riot API client. Empty base URLs are derived from the routing values.
func NewClient(opts Options) *Client {
	platformURL := opts.PlatformURL
	if platformURL == "" {
		platformURL = fmt.Sprintf("https://%s.api.riotgames.com", opts.Platform)
	}
	regionalURL := opts.RegionalURL
	if regionalURL == "" {
		regionalURL = fmt.Sprintf("https://%s.api.riotgames.com", opts.Region)
	}
	ddragonURL := opts.DDragonURL
	if ddragonURL == "" {
		ddragonURL = defaultDDragon
	}
	return &Client{
		apiKey:      opts.APIKey,
		platformURL: platformURL,
		regionalURL: regionalURL,
		ddragonURL:  ddragonURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     20,
			ReadTimeout:         requestTimeout,
			WriteTimeout:        requestTimeout,
			MaxIdleConnDuration: time.Minute,
		},
		rateLimit: RateLimitInfo{UpdatedAt: time.Now()},
	}
}

func (c *Client) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.AppLimit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.AppCount = count
	}
	if count := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); count != "" {
		c.rateLimit.MethodCount = count
	}
	c.rateLimit.RetryAfter = 0
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *Client) GetAccount(ctx context.Context, gameName, tagLine string) (Account, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.regionalURL, url.PathEscape(gameName), url.PathEscape(tagLine))
	res, err := doRequest[Account](ctx, c, u)
	if err != nil {
		return Account{}, fmt.Errorf("get account %s#%s: %w", gameName, tagLine, err)
	}
	return *res, nil
}

func (c *Client) GetSummoner(ctx context.Context, puuid string) (Summoner, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.platformURL, url.PathEscape(puuid))
	res, err := doRequest[Summoner](ctx, c, u)
	if err != nil {
		return Summoner{}, fmt.Errorf("get summoner: %w", err)
	}
	return *res, nil
}

func (c *Client) GetLeagueEntries(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.platformURL, url.PathEscape(puuid))
	res, err := doRequest[[]LeagueEntry](ctx, c, u)
	if err != nil {
		return nil, fmt.Errorf("get league entries: %w", err)
	}
	return *res, nil
}

func (c *Client) GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		c.regionalURL, url.PathEscape(puuid), count)
	res, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, fmt.Errorf("get match ids: %w", err)
	}
	return *res, nil
}

func (c *Client) GetMatch(ctx context.Context, matchID string) (Match, error) {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.regionalURL, url.PathEscape(matchID))
	res, err := doRequest[Match](ctx, c, u)
	if err != nil {
		return Match{}, fmt.Errorf("get match %s: %w", matchID, err)
	}
	return *res, nil
}

// GetProfileIcon downloads the PNG for iconID from the latest Data Dragon release.
func (c *Client) GetProfileIcon(ctx context.Context, iconID int) ([]byte, error) {
	version, err := c.latestVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile icon %d: %w", iconID, err)
	}
	u := fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", c.ddragonURL, version, iconID)
	body, err := c.do(ctx, u, false)
	if err != nil {
		return nil, fmt.Errorf("get profile icon %d: %w", iconID, err)
	}
	return body, nil
}

// latestVersion fetches the Data Dragon versions list once per client.
func (c *Client) latestVersion(ctx context.Context) (string, error) {
	c.versionMu.Lock()
	defer c.versionMu.Unlock()
	if c.version != "" {
		return c.version, nil
	}
	body, err := c.do(ctx, c.ddragonURL+"/api/versions.json", false)
	if err != nil {
		return "", err
	}
	var versions []string
	if err := json.Unmarshal(body, &versions); err != nil {
		return "", fmt.Errorf("decode versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no data dragon versions")
	}
	c.version = versions[0]
	log.Debug("Resolved data dragon version", "version", c.version)
	return c.version, nil
}

func doRequest[T any](ctx context.Context, client *Client, u string) (*T, error) {
	body, err := client.do(ctx, u, true)
	if err != nil {
		return nil, err
	}
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, u string, authenticated bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	if authenticated {
		req.Header.Set("X-Riot-Token", c.apiKey)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(requestTimeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return nil, err
	}

	if authenticated {
		c.updateRateLimit(resp)
	}

	switch status := resp.StatusCode(); status {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return nil, ErrNotFound
	case fasthttp.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: retry after %ss", ErrRateLimited, resp.Header.Peek("Retry-After"))
	default:
		return nil, fmt.Errorf("API error: %d", status)
	}

	// The response is released on return.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
