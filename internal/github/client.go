// Package github is an anonymous client for the parts of the GitHub REST
// API that shipyard needs: repository lookup, directory listings and raw
// file downloads.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/agentstation/shipyard/internal/transport"
	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/ships"
)

const serviceName = "github"

// Repository is the subset of the repository resource shipyard uses.
type Repository struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
}

// Content is one entry returned by the contents API.
type Content struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	SHA         string `json:"sha"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// File converts the entry to the record model's listing type.
func (c Content) File() ships.File {
	return ships.File{
		Name:        c.Name,
		Path:        c.Path,
		Type:        c.Type,
		URL:         c.URL,
		DownloadURL: c.DownloadURL,
	}
}

// Client talks to one GitHub API endpoint. It implements ships.Source.
type Client struct {
	baseURL   string
	transport *transport.Client
}

var _ ships.Source = (*Client)(nil)

// NewClient creates a client for baseURL. An empty baseURL targets the
// public API and a nil httpClient gets the default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = constants.GitHubAPIURL
	}
	headers := transport.NewRequestBuilder().
		Set("Accept", constants.GitHubAcceptHeader).
		Set("User-Agent", constants.UserAgent).
		Set("X-GitHub-Api-Version", "2022-11-28")
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: transport.New(serviceName, httpClient, headers),
	}
}

// Repository resolves an "owner/name" repository id.
func (c *Client) Repository(ctx context.Context, id string) (*Repository, error) {
	owner, name, err := SplitRepositoryID(id)
	if err != nil {
		return nil, err
	}
	var repo Repository
	if err := c.transport.GetJSON(ctx, c.baseURL+"/repos/"+url.PathEscape(owner)+"/"+url.PathEscape(name), &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// ContentsURL returns the contents API URL for p inside repository id.
func (c *Client) ContentsURL(id, p string) (string, error) {
	owner, name, err := SplitRepositoryID(id)
	if err != nil {
		return "", err
	}
	u := c.baseURL + "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name) + "/contents"
	for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
		if seg != "" {
			u += "/" + url.PathEscape(seg)
		}
	}
	return u, nil
}

// Contents lists the directory at p inside repository id.
func (c *Client) Contents(ctx context.Context, id, p string) ([]Content, error) {
	u, err := c.ContentsURL(id, p)
	if err != nil {
		return nil, err
	}
	return c.contents(ctx, u)
}

// List lists the directory behind a contents API URL.
func (c *Client) List(ctx context.Context, u string) ([]ships.File, error) {
	entries, err := c.contents(ctx, u)
	if err != nil {
		return nil, err
	}
	files := make([]ships.File, len(entries))
	for i, e := range entries {
		files[i] = e.File()
	}
	return files, nil
}

// Download fetches a raw file.
func (c *Client) Download(ctx context.Context, u string) ([]byte, error) {
	return c.transport.GetBytes(ctx, u, 0)
}

// contents decodes a listing. A URL naming a single file yields an object
// rather than an array; that is returned as a one-entry listing.
func (c *Client) contents(ctx context.Context, u string) ([]Content, error) {
	var raw json.RawMessage
	if err := c.transport.GetJSON(ctx, u, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single Content
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, malformed(u, err)
		}
		return []Content{single}, nil
	}

	var entries []Content
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, malformed(u, err)
	}
	return entries, nil
}

func malformed(u string, err error) error {
	return &errors.RemoteError{
		Kind:    errors.KindMalformed,
		Service: serviceName,
		URL:     u,
		Message: "unexpected contents payload",
		Err:     errors.WrapParse("json", "contents", err),
	}
}

// SplitRepositoryID validates and splits an "owner/name" id.
func SplitRepositoryID(id string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(id), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", errors.NewValidationError("repository", id, "must have the form owner/name")
	}
	return owner, name, nil
}
