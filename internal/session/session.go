// Package session turns stored credentials into authenticated Tidal
// clients.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jfmyers9/riptide/internal/config"
	"github.com/jfmyers9/riptide/internal/secrets"
	"github.com/jfmyers9/riptide/pkg/tidal"
)

// ErrAuthFailed is returned when Tidal rejects the supplied credentials
var ErrAuthFailed = errors.New("authentication failed - check your token, username, and password")

// Manager handles login, logout, and building authenticated clients
type Manager struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewManager creates a session manager
func NewManager(cfg *config.Config, logger zerolog.Logger) *Manager {
	return &Manager{cfg: cfg, logger: logger}
}

// debugLogger adapts zerolog to the tidal.Logger interface
type debugLogger struct {
	log zerolog.Logger
}

func (l debugLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Login authenticates against Tidal and stores the resulting session in
// the keyring.
func (m *Manager) Login(ctx context.Context, token, username, password string) (*tidal.Session, error) {
	if token == "" {
		return nil, errors.New("an application token is required")
	}

	creds := tidal.NewCredentials(token)
	creds.BaseURL = m.cfg.BaseURL
	creds.Logger = debugLogger{log: m.logger}

	creds = creds.CreateSession(ctx, username, password)
	if creds.Session == nil {
		return nil, ErrAuthFailed
	}

	stored := secrets.StoredSession{
		Token:       token,
		UserID:      creds.Session.UserID,
		SessionID:   creds.Session.SessionID,
		CountryCode: creds.Session.CountryCode,
	}
	if err := secrets.Save(stored); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	m.logger.Debug().
		Int64("user_id", creds.Session.UserID).
		Str("country", creds.Session.CountryCode).
		Msg("session stored")

	return creds.Session, nil
}

// Logout removes the stored session
func (m *Manager) Logout() error {
	return secrets.Delete()
}

// Client builds an authenticated Tidal client from the stored session
func (m *Manager) Client() (*tidal.Client, error) {
	stored, err := secrets.Load()
	if err != nil {
		return nil, err
	}

	creds := tidal.NewCredentials(stored.Token)
	creds.BaseURL = m.cfg.BaseURL
	creds.Logger = debugLogger{log: m.logger}
	creds = creds.WithSession(&tidal.Session{
		UserID:      stored.UserID,
		SessionID:   stored.SessionID,
		CountryCode: stored.CountryCode,
	})

	client, err := tidal.NewClient(tidal.Config{
		Credentials: creds,
		BaseURL:     m.cfg.BaseURL,
		Logger:      debugLogger{log: m.logger},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build client: %w", err)
	}

	return client, nil
}
