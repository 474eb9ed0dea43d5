package shipyard

import (
	"net/http"
	"strings"
	"time"

	"github.com/agentstation/shipyard/internal/github"
	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
)

type options struct {
	repositories       []string
	apiURL             string
	httpClient         *http.Client
	httpTimeout        time.Duration
	concurrency        int
	autoUpdateInterval time.Duration
}

func defaults() *options {
	return &options{
		apiURL:      constants.GitHubAPIURL,
		httpTimeout: constants.DefaultHTTPTimeout,
		concurrency: constants.DefaultConcurrency,
	}
}

// Option configures a Client.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if len(o.repositories) == 0 {
		o.repositories = []string{constants.DefaultRepositoryID}
	}
	return o, nil
}

// WithRepositories sets the repositories to synchronize, in order. Each id
// has the form "owner/name". Passing none keeps the default repository.
func WithRepositories(ids ...string) Option {
	return func(o *options) error {
		repos := make([]string, 0, len(ids))
		for _, id := range ids {
			id = strings.TrimSpace(id)
			if _, _, err := github.SplitRepositoryID(id); err != nil {
				return err
			}
			repos = append(repos, id)
		}
		o.repositories = repos
		return nil
	}
}

// WithAPIURL points the client at a different GitHub API endpoint.
func WithAPIURL(url string) Option {
	return func(o *options) error {
		if url == "" {
			return &errors.ValidationError{Field: "api_url", Message: "cannot be empty"}
		}
		o.apiURL = url
		return nil
	}
}

// WithHTTPClient sets the HTTP client. Its own timeout is kept.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		if client == nil {
			return &errors.ValidationError{Field: "http_client", Message: "cannot be nil"}
		}
		o.httpClient = client
		return nil
	}
}

// WithHTTPTimeout bounds every single API call and download.
func WithHTTPTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return &errors.ValidationError{Field: "http_timeout", Value: d, Message: "must be positive"}
		}
		o.httpTimeout = d
		return nil
	}
}

// WithConcurrency sets how many ship folders of one repository are fetched
// at once. Values are clamped to [1, constants.MaxConcurrency].
func WithConcurrency(n int) Option {
	return func(o *options) error {
		o.concurrency = min(max(n, 1), constants.MaxConcurrency)
		return nil
	}
}

// WithAutoUpdateInterval sets the period used by AutoUpdatesOn.
func WithAutoUpdateInterval(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return &errors.ValidationError{Field: "auto_update_interval", Value: d, Message: "cannot be negative"}
		}
		o.autoUpdateInterval = d
		return nil
	}
}
