package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Stats summarizes a user's public repositories. Commits approximates
// activity by summing repository sizes, matching the product's original
// heuristic.
type Stats struct {
	Repos     int      `json:"repos"`
	Commits   int      `json:"commits"`
	Languages []string `json:"languages"`
}

type Client interface {
	UserStats(ctx context.Context, login string) (Stats, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type repoItem struct {
	Size     int     `json:"size"`
	Language *string `json:"language"`
}

func NewClient(baseURL string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) UserStats(ctx context.Context, login string) (Stats, error) {
	if c == nil {
		return Stats{}, errors.New("nil github client")
	}
	login = strings.TrimSpace(login)
	if login == "" {
		return Stats{}, errors.New("empty github login")
	}

	endpoint := c.baseURL + "/users/" + url.PathEscape(login) + "/repos"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Stats{}, err
	}
	req.Header.Set("User-Agent", "SkillChain-App")

	resp, err := c.client.Do(req)
	if err != nil {
		return Stats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("github repos fetch failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Printf("[GitHub] UserStats error | endpoint=%s status=%d", endpoint, resp.StatusCode)
		}
		return Stats{}, err
	}

	var repos []repoItem
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return Stats{}, err
	}

	stats := Stats{Repos: len(repos), Languages: make([]string, 0)}
	seen := make(map[string]bool)
	for _, r := range repos {
		stats.Commits += r.Size
		if r.Language == nil || *r.Language == "" {
			continue
		}
		if !seen[*r.Language] {
			seen[*r.Language] = true
			stats.Languages = append(stats.Languages, *r.Language)
		}
	}
	return stats, nil
}
