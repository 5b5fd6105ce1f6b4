package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound: the upstream answered non-200 (unknown user, rate limit).
// Reported to callers as a missing GitHub profile.
var ErrNotFound = errors.New("github profile not found")

// Cache stores raw upstream responses keyed by username. A nil value with a
// nil error is a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Repo is the subset of the repository listing we pass through to clients.
type Repo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	CreatedAt       string `json:"created_at"`
}

// Client lists a user's public repositories. Pure outbound I/O: nothing in
// the profile store depends on its results.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	cache        Cache
	cacheTTL     time.Duration
	httpDo       *http.Client
}

func New(clientID, clientSecret string, cache Cache, cacheTTL time.Duration) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      "https://api.github.com",
		cache:        cache,
		cacheTTL:     cacheTTL,
		httpDo: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Repos fetches the five most recently created public repositories of a
// GitHub user, serving from cache when possible.
func (c *Client) Repos(ctx context.Context, username string) ([]Repo, error) {
	key := "github:repos:" + username
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, key); err != nil {
			log.Printf("github cache get: %v", err)
		} else if cached != nil {
			var repos []Repo
			if err := json.Unmarshal(cached, &repos); err == nil {
				return repos, nil
			}
		}
	}

	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/vnd.github.v3+json")
	httpReq.Header.Set("User-Agent", "devconnect")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}

	if c.cache != nil {
		if data, err := json.Marshal(repos); err == nil {
			if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
				log.Printf("github cache set: %v", err)
			}
		}
	}
	return repos, nil
}
