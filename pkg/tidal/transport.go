package tidal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// call makes one authenticated HTTP request to the Tidal API.
//
// It handles:
// - Path normalization (relative paths are prefixed with the base URL)
// - Mandatory session headers and the countryCode query parameter
// - Optional URL-encoded form bodies and If-None-Match tokens
// - Typed error classification for transport failures and non-2xx statuses
//
// A single attempt is made; there is no retry. On success the raw
// response is returned with its body unread, for the caller to consume.
func (c *Client) call(ctx context.Context, method, path string, query map[string]string, form url.Values, etag string) (*http.Response, error) {
	requestURL := path
	if !strings.HasPrefix(requestURL, "http") {
		requestURL = c.baseURL + requestURL
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	session := c.creds.Session
	req.Header.Set("X-Tidal-SessionId", session.SessionID)
	req.Header.Set("Origin", origin)
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// The API requires countryCode on every call. It is set after the
	// caller's parameters so a colliding caller key never wins.
	values := req.URL.Query()
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("countryCode", session.CountryCode)
	req.URL.RawQuery = values.Encode()

	c.logDebugf("tidal: %s %s", method, req.URL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer func() { _ = resp.Body.Close() }()
	return nil, classifyResponse(resp)
}

// get issues a GET request and returns the response body as text.
func (c *Client) get(ctx context.Context, path string, query map[string]string) (string, error) {
	resp, err := c.call(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return "", err
	}
	return readBody(resp)
}

// post issues a POST request with a form payload and returns the
// response body as text. An empty etag sends no If-None-Match header.
func (c *Client) post(ctx context.Context, path string, form url.Values, etag string) (string, error) {
	resp, err := c.call(ctx, http.MethodPost, path, nil, form, etag)
	if err != nil {
		return "", err
	}
	return readBody(resp)
}

// put issues a PUT request with a form payload and returns the
// response body as text. An empty etag sends no If-None-Match header.
func (c *Client) put(ctx context.Context, path string, form url.Values, etag string) (string, error) {
	resp, err := c.call(ctx, http.MethodPut, path, nil, form, etag)
	if err != nil {
		return "", err
	}
	return readBody(resp)
}

// del issues a DELETE request guarded by the given etag and returns
// the response body as text.
func (c *Client) del(ctx context.Context, path, etag string) (string, error) {
	resp, err := c.call(ctx, http.MethodDelete, path, nil, nil, etag)
	if err != nil {
		return "", err
	}
	return readBody(resp)
}

// Etag fetches the resource at path and returns its current etag
// header, the version token required for conditional mutations.
// A response without an etag header yields ErrMissingEtag.
func (c *Client) Etag(ctx context.Context, path string) (string, error) {
	resp, err := c.call(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	etag := strings.TrimSpace(resp.Header.Get("Etag"))
	if etag == "" {
		return "", ErrMissingEtag
	}
	return etag, nil
}

// readBody drains and closes the response body.
func readBody(resp *http.Response) (string, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	return string(body), nil
}

// convertResult deserializes an API response body into the expected
// typed model. A structural mismatch yields a *ParseError.
func convertResult[T any](body string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return out, &ParseError{Err: err}
	}
	return out, nil
}
