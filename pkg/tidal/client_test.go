package tidal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// newTestClient creates a client with an established session pointed at
// the given stub server.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	creds := NewCredentials("some-token").WithSession(&Session{
		UserID:      1234,
		SessionID:   "session-id-1",
		CountryCode: "US",
	})

	client, err := NewClient(Config{Credentials: creds, BaseURL: baseURL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewClient_RequiresSession(t *testing.T) {
	_, err := NewClient(Config{Credentials: NewCredentials("some-token")})
	if err == nil {
		t.Fatal("expected error for credentials without a session, got nil")
	}
}

func TestNewClient_UserID(t *testing.T) {
	client := newTestClient(t, "http://example.invalid")
	if got := client.UserID(); got != 1234 {
		t.Errorf("expected user id 1234, got %d", got)
	}
}

func TestClient_Get_AlwaysSendsCountryCode(t *testing.T) {
	tests := []struct {
		name  string
		query map[string]string
	}{
		{
			name:  "no caller query",
			query: nil,
		},
		{
			name:  "caller query merged",
			query: map[string]string{"limit": "5"},
		},
		{
			name: "caller cannot override countryCode",
			// The fixed country code from the session must win.
			query: map[string]string{"countryCode": "DE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("countryCode"); got != "US" {
					t.Errorf("expected countryCode US, got %q", got)
				}
				for key, value := range tt.query {
					if key == "countryCode" {
						continue
					}
					if got := r.URL.Query().Get(key); got != value {
						t.Errorf("expected query %s=%s, got %q", key, value, got)
					}
				}
				if got := r.Header.Get("X-Tidal-SessionId"); got != "session-id-1" {
					t.Errorf("expected session header session-id-1, got %q", got)
				}
				if got := r.Header.Get("Origin"); got != "http://listen.tidal.com" {
					t.Errorf("expected origin header, got %q", got)
				}
				if _, err := w.Write([]byte(`{"result": "ok"}`)); err != nil {
					t.Fatalf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			body, err := client.get(context.Background(), "/", tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body != `{"result": "ok"}` {
				t.Errorf("unexpected body: %q", body)
			}
		})
	}
}

func TestClient_Get_AbsoluteURLNotPrefixed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/elsewhere" {
			t.Errorf("expected path /elsewhere, got %q", r.URL.Path)
		}
		if _, err := w.Write([]byte(`{}`)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	// The base URL points at a dead endpoint; the absolute URL must be
	// used verbatim instead of being prefixed.
	client := newTestClient(t, "http://example.invalid")
	if _, err := client.get(context.Background(), server.URL+"/elsewhere", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Etag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Etag", "123457689")
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	first, err := client.Etag(ctx, "/playlists/abc/items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "123457689" {
		t.Errorf("expected etag 123457689, got %q", first)
	}

	// An unchanged resource returns the same token on every read.
	second, err := client.Etag(ctx, "/playlists/abc/items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Errorf("expected identical etags, got %q and %q", first, second)
	}
}

func TestClient_Etag_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No etag header on purpose.
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Etag(context.Background(), "/playlists/abc/items")
	if !errors.Is(err, ErrMissingEtag) {
		t.Fatalf("expected ErrMissingEtag, got %v", err)
	}
}

func TestClient_Put(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if got := r.Header.Get("If-None-Match"); got != "123457689" {
			t.Errorf("expected If-None-Match 123457689, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
			t.Errorf("expected form content type, got %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.FormValue("title"); got != "renamed" {
			t.Errorf("expected title renamed, got %q", got)
		}
		if _, err := w.Write([]byte(`{}`)); err != nil {
			t.Fatalf("failed to write response body: %v", err)
		}
	}))
	defer server.Close()

	form := url.Values{}
	form.Set("title", "renamed")

	client := newTestClient(t, server.URL)
	if _, err := client.put(context.Background(), "/playlists/abc", form, "123457689"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.get(ctx, "/", nil)
	if err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Errorf("expected *RequestError, got %T", err)
	}
}
