package tidal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Session is the server-issued authentication context obtained via login.
//
// A Session is created once by a successful CreateSession call and is
// immutable afterwards. There is no expiry or refresh handling here;
// when the API starts answering with ErrUnauthorized the caller must
// log in again.
type Session struct {
	UserID      int64  `json:"userId"`
	SessionID   string `json:"sessionId"`
	CountryCode string `json:"countryCode"`
}

// Credentials holds an application token and, once a login has
// succeeded, the established session.
//
// HTTPClient and BaseURL only affect the login request issued by
// CreateSession; they default to http.DefaultClient and DefaultBaseURL.
type Credentials struct {
	Token   string
	Session *Session

	HTTPClient *http.Client
	BaseURL    string
	Logger     Logger
}

// NewCredentials creates credentials with no session.
func NewCredentials(token string) Credentials {
	return Credentials{Token: token}
}

// WithSession returns a copy of the credentials with the given session
// attached. Useful when restoring a persisted session.
func (c Credentials) WithSession(session *Session) Credentials {
	c.Session = session
	return c
}

// CreateSession logs in with a Tidal username and password and returns
// credentials with the resulting session attached.
//
// Login failure is not an error: on any failure (network, non-2xx
// status, malformed body) the credentials are returned unchanged and
// the session stays nil. Callers detect a failed login by checking
// Session for nil.
//
// Calling CreateSession without an application token is a programming
// error and panics.
func (c Credentials) CreateSession(ctx context.Context, username, password string) Credentials {
	if c.Token == "" {
		panic("tidal: an application token must be set before creating a session")
	}

	session, err := c.fetchSession(ctx, username, password)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Debugf("tidal: login failed: %v", err)
		}
		return c
	}

	c.Session = session
	return c
}

// fetchSession issues the login request. The token travels as a query
// parameter, the user credentials as a URL-encoded form body.
func (c Credentials) fetchSession(ctx context.Context, username, password string) (*Session, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	loginURL := baseURL + "/login/username?token=" + url.QueryEscape(c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("login rejected with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read login response: %w", err)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}

	return &session, nil
}
