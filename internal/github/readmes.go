package github

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
)

// ReadmeResult is the settled outcome of one readme fetch. Err is non-nil
// when the fetch failed; the repo itself is always present.
type ReadmeResult struct {
	Repo   Repo
	Readme string
	Err    error
}

// FetchReadmes retrieves readmes for every repo concurrently and settles all
// of them: an individual failure is recorded on its result and never cancels
// or fails the siblings. Results keep the input order.
func (c *Client) FetchReadmes(ctx context.Context, username string, repos []Repo) []ReadmeResult {
	results := make([]ReadmeResult, len(repos))

	g, gCtx := errgroup.WithContext(ctx)
	for i, repo := range repos {
		g.Go(func() error {
			readme, err := c.Readme(gCtx, username, repo.Name)
			results[i] = ReadmeResult{Repo: repo, Readme: readme, Err: err}
			return nil
		})
	}
	// Every goroutine returns nil; Wait only synchronizes completion.
	_ = g.Wait()

	return results
}

// repoBlobEntry is the serialized form of one repository inside the combined
// input blob.
type repoBlobEntry struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	Stars         int    `json:"stars"`
	URL           string `json:"url"`
	ReadmeContent string `json:"readmeContent"`
}

// repoBlob is the single structured blob attached to the combined input.
type repoBlob struct {
	Username     string          `json:"username"`
	Repositories []repoBlobEntry `json:"repositories"`
}

// BuildBlob serializes settled readme results into the one structured blob
// the generation request carries. Failed fetches contribute empty readme
// content for their repository only.
func BuildBlob(username string, results []ReadmeResult) (string, error) {
	blob := repoBlob{
		Username:     username,
		Repositories: make([]repoBlobEntry, 0, len(results)),
	}
	for _, r := range results {
		readme := r.Readme
		if r.Err != nil {
			readme = ""
		}
		blob.Repositories = append(blob.Repositories, repoBlobEntry{
			Name:          r.Repo.Name,
			Description:   r.Repo.Description,
			Language:      r.Repo.Language,
			Stars:         r.Repo.Stars,
			URL:           r.Repo.URL,
			ReadmeContent: readme,
		})
	}

	raw, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
