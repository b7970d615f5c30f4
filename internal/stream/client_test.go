package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"chat-directory-service/config"
	"chat-directory-service/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, srvURL string) *Client {
	t.Helper()
	return NewClient(config.StreamConfig{
		BaseURL:        srvURL,
		APIKey:         "key",
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop().Sugar())
}

func staticTokens(tok string) TokenProvider {
	return func(_ context.Context) (string, error) { return tok, nil }
}

func TestOpenSessionAndClose(t *testing.T) {
	var disconnects atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/connect":
			var req connectRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "key", req.APIKey)
			require.Equal(t, "tok", req.Token)
			require.Equal(t, "u1", req.User.ID)
			require.NotEmpty(t, req.ConnectionID)
			_ = json.NewEncoder(w).Encode(connectResponse{ConnectionID: "conn-42"})
		case "/disconnect":
			disconnects.Add(1)
			var req disconnectRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "conn-42", req.ConnectionID)
			require.Equal(t, "u1", req.UserID)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)

	sess, err := c.OpenSession(context.Background(), Profile{ID: "u1", Name: "Alice"}, staticTokens("tok"))
	require.NoError(t, err)
	require.Equal(t, "conn-42", sess.ID())
	require.Equal(t, "u1", sess.UserID())

	require.NoError(t, sess.Close(context.Background()))
	require.EqualValues(t, 1, disconnects.Load())

	// second close is a no-op
	require.NoError(t, sess.Close(context.Background()))
	require.EqualValues(t, 1, disconnects.Load())
}

func TestOpenSessionRequiresProfileID(t *testing.T) {
	c := testClient(t, "http://localhost:0")

	_, err := c.OpenSession(context.Background(), Profile{}, staticTokens("tok"))
	require.ErrorIs(t, err, entities.ErrMissingIdentity)
}

func TestOpenSessionTokenFailure(t *testing.T) {
	c := testClient(t, "http://localhost:0")

	failing := func(_ context.Context) (string, error) {
		return "", context.DeadlineExceeded
	}
	_, err := c.OpenSession(context.Background(), Profile{ID: "u1"}, failing)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOpenSessionRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)

	_, err := c.OpenSession(context.Background(), Profile{ID: "u1"}, staticTokens("tok"))
	require.Error(t, err)
}

func TestOpenSessionKeepsGeneratedConnectionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(connectResponse{})
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)

	sess, err := c.OpenSession(context.Background(), Profile{ID: "u1"}, staticTokens("tok"))
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID())
}
