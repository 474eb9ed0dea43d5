package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/logging"
)

// RequestBuilder holds the headers applied to every outgoing request.
type RequestBuilder struct {
	headers http.Header
}

// NewRequestBuilder creates a new request builder with no headers.
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{headers: make(http.Header)}
}

// Set adds a header and returns the builder for chaining.
func (rb *RequestBuilder) Set(key, value string) *RequestBuilder {
	rb.headers.Set(key, value)
	return rb
}

// Apply copies the configured headers onto req.
func (rb *RequestBuilder) Apply(req *http.Request) {
	for k, v := range rb.headers {
		req.Header[k] = append([]string(nil), v...)
	}
}

// DecodeResponse decodes a JSON response into the target structure.
// Non-2xx statuses are classified into a RemoteError.
func DecodeResponse(service string, resp *http.Response, target any) error {
	body, err := ReadBody(service, resp, 0)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		url := ""
		if resp.Request != nil {
			url = resp.Request.URL.String()
		}
		return &errors.RemoteError{
			Kind:       errors.KindMalformed,
			Service:    service,
			StatusCode: resp.StatusCode,
			URL:        url,
			Message:    "failed to decode response",
			Err:        errors.WrapParse("json", "response", err),
		}
	}
	return nil
}

// ReadBody reads and closes the response body. It fails with a RemoteError
// for any non-2xx status.
func ReadBody(service string, resp *http.Response, limit int64) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Str("service", service).Msg("Failed to close response body")
		}
	}()

	url := ""
	if resp.Request != nil {
		url = resp.Request.URL.String()
	}

	var r io.Reader = resp.Body
	if limit > 0 {
		r = io.LimitReader(resp.Body, limit)
	}
	body, err := io.ReadAll(r)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewRemoteError(service, resp.StatusCode, url, errorMessage(resp, body))
	}
	if err != nil {
		return nil, errors.WrapRemote(service, url, errors.KindTransient, errors.WrapIO("read", "response body", err))
	}
	return body, nil
}

// errorMessage prefers the "message" field GitHub-style APIs put in error
// bodies and falls back to the status text.
func errorMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
