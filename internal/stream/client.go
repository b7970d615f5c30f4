// Package stream wraps the Communications Platform session API.
package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"chat-directory-service/config"
	"chat-directory-service/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Profile is the public identity subset shared with the platform.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// TokenProvider supplies a fresh credential for the connecting identity.
type TokenProvider func(ctx context.Context) (string, error)

// Session is an established platform connection for one identity.
type Session interface {
	ID() string
	UserID() string
	Close(ctx context.Context) error
}

// Platform opens Communications Platform sessions.
type Platform interface {
	OpenSession(ctx context.Context, profile Profile, tokens TokenProvider) (Session, error)
}

// Client talks to the platform's connection endpoints over HTTP.
type Client struct {
	cfg  config.StreamConfig
	http *http.Client
	log  *zap.SugaredLogger
}

// NewClient builds a platform client from configuration.
func NewClient(cfg config.StreamConfig, log *zap.SugaredLogger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout},
		log:  log.Named("stream"),
	}
}

type connectRequest struct {
	APIKey       string  `json:"api_key"`
	ConnectionID string  `json:"connection_id"`
	Token        string  `json:"token"`
	User         Profile `json:"user"`
}

type connectResponse struct {
	ConnectionID string `json:"connection_id"`
}

type disconnectRequest struct {
	APIKey       string `json:"api_key"`
	ConnectionID string `json:"connection_id"`
	UserID       string `json:"user_id"`
}

// OpenSession mints a credential via the provider and registers a connection
// for the profile. The returned session must be closed by the caller.
func (c *Client) OpenSession(ctx context.Context, profile Profile, tokens TokenProvider) (Session, error) {
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: profile id is required", entities.ErrMissingIdentity)
	}
	if tokens == nil {
		return nil, errors.New("stream: token provider is required")
	}

	tok, err := tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("stream: obtain token: %w", err)
	}

	body := connectRequest{
		APIKey:       c.cfg.APIKey,
		ConnectionID: uuid.NewString(),
		Token:        tok,
		User:         profile,
	}

	var resp connectResponse
	if err := c.post(ctx, "/connect", body, &resp); err != nil {
		return nil, err
	}

	connID := resp.ConnectionID
	if connID == "" {
		connID = body.ConnectionID
	}

	c.log.Infow("session opened", "user_id", profile.ID, "connection_id", connID)
	return &session{client: c, id: connID, userID: profile.ID}, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("stream: encode request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("stream: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("stream: %s failed: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("stream: %s unexpected status %d", path, res.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("stream: decode response: %w", err)
		}
	}
	return nil
}

type session struct {
	client *Client
	id     string
	userID string

	mu     sync.Mutex
	closed bool
}

// ID returns the platform connection id.
func (s *session) ID() string { return s.id }

// UserID returns the identity the session was opened for.
func (s *session) UserID() string { return s.userID }

// Close tears the connection down. A second close is a no-op.
func (s *session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	body := disconnectRequest{
		APIKey:       s.client.cfg.APIKey,
		ConnectionID: s.id,
		UserID:       s.userID,
	}
	if err := s.client.post(ctx, "/disconnect", body, nil); err != nil {
		return err
	}

	s.client.log.Infow("session closed", "user_id", s.userID, "connection_id", s.id)
	return nil
}
