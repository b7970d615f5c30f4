package handlers_fiber

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat-directory-service/internal/api"
	"chat-directory-service/internal/entities"
	"chat-directory-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct{ mock.Mock }

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) GetUser(ctx context.Context, externalID string) (*entities.User, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) SearchUsers(ctx context.Context, term string) ([]entities.User, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *ucMock) SyncUser(ctx context.Context, identity entities.Identity) (*entities.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) Disconnect(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *ucMock) SessionState() entities.SessionState {
	return m.Called().Get(0).(entities.SessionState)
}

func testApp(uc *ucMock) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func TestGetUsersSearch(t *testing.T) {
	uc := &ucMock{}
	uc.On("SearchUsers", mock.Anything, "alice").Return([]entities.User{
		{ID: 1, ExternalID: "u1", Email: "alice@example.com", Name: "Alice Smith"},
	}, nil)

	app := testApp(uc)
	req := httptest.NewRequest(http.MethodGet, "/users/search?term=alice", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body api.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Users, 1)
	require.Equal(t, "u1", body.Users[0].ExternalID)
}

func TestGetUsersSearchEmptyTerm(t *testing.T) {
	uc := &ucMock{}
	uc.On("SearchUsers", mock.Anything, "").Return([]entities.User{}, nil)

	app := testApp(uc)
	req := httptest.NewRequest(http.MethodGet, "/users/search", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body api.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Empty(t, body.Users)
}

func TestPostUsersSync(t *testing.T) {
	uc := &ucMock{}
	uc.On("SyncUser", mock.Anything, entities.Identity{
		ExternalID:   "u1",
		FullName:     "Alice Smith",
		PrimaryEmail: "alice@example.com",
	}).Return(&entities.User{ID: 1, ExternalID: "u1", Email: "alice@example.com", Name: "Alice Smith"}, nil)
	uc.On("SessionState").Return(entities.SessionConnected)

	app := testApp(uc)
	payload := `{"external_id":"u1","full_name":"Alice Smith","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/users/sync", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body api.SyncResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "u1", body.User.ExternalID)
	require.Equal(t, string(entities.SessionConnected), body.SessionState)
}

func TestPostUsersSyncMissingIdentity(t *testing.T) {
	uc := &ucMock{}
	uc.On("SyncUser", mock.Anything, mock.Anything).Return(nil, entities.ErrMissingIdentity)

	app := testApp(uc)
	req := httptest.NewRequest(http.MethodPost, "/users/sync", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostUsersDisconnect(t *testing.T) {
	uc := &ucMock{}
	uc.On("Disconnect", mock.Anything).Return(nil)
	uc.On("SessionState").Return(entities.SessionAbsent)

	app := testApp(uc)
	req := httptest.NewRequest(http.MethodPost, "/users/disconnect", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body api.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, string(entities.SessionAbsent), body.SessionState)
}

func TestGetUserNotFound(t *testing.T) {
	uc := &ucMock{}
	uc.On("GetUser", mock.Anything, "missing").Return(nil, entities.ErrUserNotFound)

	app := testApp(uc)
	req := httptest.NewRequest(http.MethodGet, "/users/get?external_id=missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
