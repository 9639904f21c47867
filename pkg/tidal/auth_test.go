package tidal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewCredentials(t *testing.T) {
	creds := NewCredentials("some-token")
	if creds.Token != "some-token" {
		t.Errorf("expected token some-token, got %q", creds.Token)
	}
	if creds.Session != nil {
		t.Error("expected no session on fresh credentials")
	}
}

func TestCredentials_WithSession(t *testing.T) {
	session := &Session{UserID: 1234, SessionID: "xq123", CountryCode: "US"}
	creds := NewCredentials("some-token").WithSession(session)
	if creds.Session == nil {
		t.Fatal("expected session to be attached")
	}
	if creds.Session.SessionID != "xq123" {
		t.Errorf("expected session id xq123, got %q", creds.Session.SessionID)
	}
}

func TestCredentials_CreateSession(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		response    string
		wantSession *Session
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
			response:   `{"userId": 123, "sessionId": "session-id-123", "countryCode": "US"}`,
			wantSession: &Session{
				UserID:      123,
				SessionID:   "session-id-123",
				CountryCode: "US",
			},
		},
		{
			name:        "invalid credentials",
			statusCode:  http.StatusUnauthorized,
			response:    `{"status": 401, "subStatus": 3001, "userMessage": "Invalid credentials"}`,
			wantSession: nil,
		},
		{
			name:        "server error",
			statusCode:  http.StatusInternalServerError,
			response:    "",
			wantSession: nil,
		},
		{
			name:        "malformed body",
			statusCode:  http.StatusOK,
			response:    "not json",
			wantSession: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST request, got %s", r.Method)
				}
				if got := r.URL.Query().Get("token"); got != "some-token" {
					t.Errorf("expected token query some-token, got %q", got)
				}
				if err := r.ParseForm(); err != nil {
					t.Fatalf("failed to parse form: %v", err)
				}
				if got := r.FormValue("username"); got != "myuser@example.com" {
					t.Errorf("expected username form field, got %q", got)
				}
				if got := r.FormValue("password"); got != "somepassword" {
					t.Errorf("expected password form field, got %q", got)
				}

				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.response)); err != nil {
					t.Fatalf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			creds := NewCredentials("some-token")
			creds.BaseURL = server.URL

			result := creds.CreateSession(context.Background(), "myuser@example.com", "somepassword")

			if tt.wantSession == nil {
				if result.Session != nil {
					t.Fatalf("expected absent session, got %+v", result.Session)
				}
				return
			}

			if result.Session == nil {
				t.Fatal("expected session, got nil")
			}
			if *result.Session != *tt.wantSession {
				t.Errorf("expected session %+v, got %+v", *tt.wantSession, *result.Session)
			}
			// The token must survive the login round-trip.
			if result.Token != "some-token" {
				t.Errorf("expected token some-token, got %q", result.Token)
			}
		})
	}
}

func TestCredentials_CreateSession_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	creds := NewCredentials("some-token")
	creds.BaseURL = server.URL

	result := creds.CreateSession(context.Background(), "myuser@example.com", "somepassword")
	if result.Session != nil {
		t.Fatalf("expected absent session after network failure, got %+v", result.Session)
	}
}

func TestCredentials_CreateSession_EmptyTokenPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty token")
		}
	}()

	NewCredentials("").CreateSession(context.Background(), "user", "pass")
}
