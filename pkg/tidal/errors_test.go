package tidal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "401 is unauthorized regardless of body",
			statusCode: http.StatusUnauthorized,
			body:       `{"status": 401, "userMessage": "Token has expired"}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Errorf("expected ErrUnauthorized, got %v", err)
				}
			},
		},
		{
			name:       "404 with structured userMessage body",
			statusCode: http.StatusNotFound,
			body:       `{"status":404,"userMessage":"Not found"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %v", err)
				}
				if apiErr.Status != 404 || apiErr.Message != "Not found" {
					t.Errorf("expected Api(404, Not found), got %+v", apiErr)
				}
			},
		},
		{
			name:       "403 with structured message body",
			statusCode: http.StatusForbidden,
			body:       `{"status":403,"message":"Asset is not ready for playback"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected *APIError, got %v", err)
				}
				if apiErr.Status != 403 || apiErr.Message != "Asset is not ready for playback" {
					t.Errorf("expected Api(403, ...), got %+v", apiErr)
				}
			},
		},
		{
			name:       "404 with malformed body falls back to status code",
			statusCode: http.StatusNotFound,
			body:       "<html>not json</html>",
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("expected *StatusError, got %v", err)
				}
				if statusErr.Code != 404 {
					t.Errorf("expected code 404, got %d", statusErr.Code)
				}
			},
		},
		{
			name:       "404 with empty body falls back to status code",
			statusCode: http.StatusNotFound,
			body:       "",
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("expected *StatusError, got %v", err)
				}
			},
		},
		{
			name:       "500 maps to status code",
			statusCode: http.StatusInternalServerError,
			body:       `{"status":500,"userMessage":"Internal error"}`,
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("expected *StatusError, got %v", err)
				}
				if statusErr.Code != 500 {
					t.Errorf("expected code 500, got %d", statusErr.Code)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.body)); err != nil {
					t.Fatalf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.get(context.Background(), "/", nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			tt.check(t, err)
		})
	}
}

func TestConvertResult_ParseError(t *testing.T) {
	_, err := convertResult[Artist]("not json at all")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Unwrap() == nil {
		t.Error("expected wrapped decoder error")
	}
}

func TestRequestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RequestError{Err: cause}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
}
