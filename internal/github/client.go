// Package github provides the external repository listing client: repo
// listing by username and best-effort readme retrieval for selected repos.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout is the HTTP request timeout for listing and readme calls.
const DefaultTimeout = 30 * time.Second

// ReadmeMaxChars is the truncation limit applied to fetched readme text
// before it enters a generation request.
const ReadmeMaxChars = 4000

// ListPageSize is how many repositories a listing call returns, most
// recently pushed first.
const ListPageSize = 30

// Repo is one entry from the repository listing.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	URL         string `json:"url"`
}

// FetchError represents a failed listing or readme request.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("github fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("github fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Client talks to the repository listing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client against the public API.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL returns a client against a custom endpoint. Tests use
// this to point at a local server.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// listEntry mirrors the wire shape of a repository listing item.
type listEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	URL         string `json:"html_url"`
}

// ListRepos fetches a user's repositories ordered by most recent push.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=pushed&per_page=%d", c.baseURL, username, ListPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var entries []listEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &FetchError{URL: url, Message: "failed to decode repository list", Cause: err}
	}

	repos := make([]Repo, 0, len(entries))
	for _, e := range entries {
		repos = append(repos, Repo{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Language:    e.Language,
			Stars:       e.Stars,
			URL:         e.URL,
		})
	}
	return repos, nil
}

// Readme fetches the raw readme text for one repository, truncated to
// ReadmeMaxChars.
func (c *Client) Readme(ctx context.Context, username, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, username, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/vnd.github.raw")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Message: "failed to read readme body", Cause: err}
	}

	return truncate(string(body), ReadmeMaxChars), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
