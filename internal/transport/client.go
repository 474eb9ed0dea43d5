// Package transport holds the HTTP plumbing shared by remote adapters:
// a timeout-bounded client, default headers, and response decoding that
// turns HTTP statuses into classified errors.
package transport

import (
	"context"
	"net/http"

	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client performs anonymous GET requests on behalf of one remote service.
type Client struct {
	http    *http.Client
	service string
	headers *RequestBuilder
}

// New creates a new transport client. A nil httpClient gets a client with
// DefaultHTTPTimeout.
func New(service string, httpClient *http.Client, headers *RequestBuilder) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	if headers == nil {
		headers = NewRequestBuilder()
	}
	return &Client{http: httpClient, service: service, headers: headers}
}

// Service returns the service name used in error messages.
func (c *Client) Service() string {
	return c.service
}

// Get performs a GET request. Network failures are returned as transient
// remote errors; the caller owns the response body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	c.headers.Apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapRemote(c.service, url, errors.KindTransient, err)
	}
	return resp, nil
}

// GetJSON fetches url and decodes a JSON body into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	return DecodeResponse(c.service, resp, target)
}

// GetBytes fetches url and returns at most limit bytes of its body.
// A limit of zero or less reads the whole body.
func (c *Client) GetBytes(ctx context.Context, url string, limit int64) ([]byte, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return ReadBody(c.service, resp, limit)
}
