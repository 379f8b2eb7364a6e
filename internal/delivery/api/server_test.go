package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"figures/config"
	"figures/internal/delivery/api/middleware"
	"figures/internal/delivery/api/router"
	"figures/internal/delivery/api/router/handler"
	"figures/internal/domain/entity"
	"figures/internal/domain/service"
	"figures/internal/infra/persistence/memory"
	mockSvc "figures/internal/mocks/service"
	"figures/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

// fakeVerifier accepts exactly one token.
type fakeVerifier struct {
	calls int
}

func (f *fakeVerifier) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	f.calls++
	if token != validToken {
		return nil, service.ErrInvalidToken
	}

	return &entity.Identity{SubjectID: "uid-ada", Email: "ada@example.com", DisplayName: "Ada"}, nil
}

type testServer struct {
	echo     *echo.Echo
	store    *memory.Store
	verifier *fakeVerifier
	push     *mockSvc.MockNotificationService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	verifier := &fakeVerifier{}
	push := mockSvc.NewMockNotificationService(t)

	profileRepo := store.ProfileRepository()
	userRepo := store.UserRepository()

	routerParams := router.RouterParams{
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: impl.NewProfileService(profileRepo, logger),
			Logger:    logger,
		}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(impl.UserServiceParams{
				UserRepo:    userRepo,
				ProfileRepo: profileRepo,
				Logger:      logger,
			}),
			Logger: logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: impl.NewNotificationService(push, logger),
			Logger:         logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(verifier, logger),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return &testServer{
		echo:     NewEcho(cfg, logger, routerParams),
		store:    store,
		verifier: verifier,
		push:     push,
	}
}

func (s *testServer) seed(t *testing.T, profiles ...*entity.Profile) {
	t.Helper()

	for _, p := range profiles {
		require.NoError(t, s.store.ProfileRepository().Create(context.Background(), p))
	}
}

func (s *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func profileNames(profiles []entity.Profile) []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}

	return names
}

func sampleProfiles() []*entity.Profile {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return []*entity.Profile{
		{Name: "Ada Lovelace", Category: "science", FameLevel: entity.FameLevelFamous, Achievements: []string{"First program"}, CreatedAt: base},
		{Name: "Mary Anning", Category: "science", FameLevel: entity.FameLevelHidden, CreatedAt: base.Add(time.Hour)},
		{Name: "Frida Kahlo", Category: "art", FameLevel: entity.FameLevelFamous, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestServer_RootAndHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Figures API is running", decode[map[string]string](t, rec)["message"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = s.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}

func TestServer_ListProfiles(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, sampleProfiles()...)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"all", "/profiles", []string{"Frida Kahlo", "Mary Anning", "Ada Lovelace"}},
		{"all sentinel", "/profiles?category=all", []string{"Frida Kahlo", "Mary Anning", "Ada Lovelace"}},
		{"category", "/profiles?category=science", []string{"Mary Anning", "Ada Lovelace"}},
		{"fame level", "/profiles?fameLevel=famous", []string{"Frida Kahlo", "Ada Lovelace"}},
		{"both", "/profiles?category=science&fameLevel=hidden", []string{"Mary Anning"}},
		{"unknown fame level", "/profiles?fameLevel=legendary", []string{}},
		{"no match", "/profiles?category=music", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, tt.target, "", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
			assert.Equal(t, tt.want, profileNames(decode[[]entity.Profile](t, rec)))
		})
	}
}

func TestServer_GetProfile(t *testing.T) {
	s := newTestServer(t)
	profiles := sampleProfiles()
	s.seed(t, profiles...)
	ada := profiles[0]

	rec := s.do(http.MethodGet, "/profiles/"+ada.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	raw := decode[map[string]any](t, rec)
	assert.Equal(t, ada.ID, raw["_id"])
	assert.Equal(t, "Ada Lovelace", raw["name"])
	assert.Equal(t, "famous", raw["fameLevel"])
	assert.Equal(t, []any{"First program"}, raw["achievements"])

	for _, id := range []string{"000000000000000000000000", "not-an-id"} {
		rec = s.do(http.MethodGet, "/profiles/"+id, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Profile not found", decode[map[string]string](t, rec)["error"])
	}
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	routes := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPost, "/users", ""},
		{http.MethodGet, "/users/favorites", ""},
		{http.MethodPost, "/users/favorites/abc", ""},
		{http.MethodDelete, "/users/favorites/abc", ""},
		{http.MethodPost, "/notifications/send", `{"title":"t","body":"b","token":"x"}`},
	}

	headers := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"rejected", "Bearer forged-token"},
	}

	for _, route := range routes {
		for _, h := range headers {
			t.Run(route.method+" "+route.target+" "+h.name, func(t *testing.T) {
				s := newTestServer(t)

				var reader io.Reader
				if route.body != "" {
					reader = strings.NewReader(route.body)
				}
				req := httptest.NewRequest(route.method, route.target, reader)
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				if h.header != "" {
					req.Header.Set(echo.HeaderAuthorization, h.header)
				}
				rec := httptest.NewRecorder()
				s.echo.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.NotEmpty(t, decode[map[string]string](t, rec)["error"])

				_, err := s.store.UserRepository().FindBySubjectID(context.Background(), "uid-ada")
				assert.Error(t, err, "no user may be created without a valid token")
			})
		}
	}
}

func TestServer_FindOrCreateUserIsIdempotent(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/users", validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[entity.User](t, rec)
	assert.Equal(t, "uid-ada", first.ExternalSubjectID)
	assert.Equal(t, "ada@example.com", first.Email)
	assert.Equal(t, []string{}, first.Favorites)

	rec = s.do(http.MethodPost, "/users", validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first.ID, decode[entity.User](t, rec).ID)
}

func TestServer_FavoritesScenario(t *testing.T) {
	s := newTestServer(t)
	profiles := sampleProfiles()
	s.seed(t, profiles...)
	p1 := profiles[0]

	rec := s.do(http.MethodPost, "/users", validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/users/favorites/"+p1.ID, validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Added to favorites", decode[map[string]string](t, rec)["message"])

	// A repeat add is a no-op
	rec = s.do(http.MethodPost, "/users/favorites/"+p1.ID, validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/users/favorites", validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	favorites := decode[[]entity.Profile](t, rec)
	require.Len(t, favorites, 1)
	assert.Equal(t, p1.ID, favorites[0].ID)

	rec = s.do(http.MethodDelete, "/users/favorites/"+p1.ID, validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Removed from favorites", decode[map[string]string](t, rec)["message"])

	rec = s.do(http.MethodGet, "/users/favorites", validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	// Removing again succeeds
	rec = s.do(http.MethodDelete, "/users/favorites/"+p1.ID, validToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_FavoritesOmitDeletedProfiles(t *testing.T) {
	s := newTestServer(t)
	profiles := sampleProfiles()
	s.seed(t, profiles...)

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/users", validToken, "").Code)
	for _, p := range profiles {
		require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/users/favorites/"+p.ID, validToken, "").Code)
	}

	require.True(t, s.store.DeleteProfile(profiles[1].ID))

	rec := s.do(http.MethodGet, "/users/favorites", validToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Ada Lovelace", "Frida Kahlo"}, profileNames(decode[[]entity.Profile](t, rec)))
}

func TestServer_FavoritesWithoutUserIsNotFound(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/users/favorites"},
		{http.MethodPost, "/users/favorites/abc"},
		{http.MethodDelete, "/users/favorites/abc"},
	} {
		rec := s.do(tc.method, tc.target, validToken, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.target)
		assert.Equal(t, "User not found", decode[map[string]string](t, rec)["error"])
	}
}

func TestServer_SendNotification(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		s.push.EXPECT().Send(mock.Anything, "device-1", "Hello", "World").Return("projects/demo/messages/42", nil)

		rec := s.do(http.MethodPost, "/notifications/send", validToken, `{"title":"Hello","body":"World","token":"device-1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]string](t, rec)
		assert.Equal(t, "Notification sent", body["message"])
		assert.Equal(t, "projects/demo/messages/42", body["messageId"])
	})

	t.Run("upstream failure surfaces message", func(t *testing.T) {
		s := newTestServer(t)
		s.push.EXPECT().Send(mock.Anything, "stale", "Hello", "World").Return("", assert.AnError)

		rec := s.do(http.MethodPost, "/notifications/send", validToken, `{"title":"Hello","body":"World","token":"stale"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, assert.AnError.Error(), decode[map[string]string](t, rec)["error"])
	})

	t.Run("missing field", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/notifications/send", validToken, `{"title":"Hello"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[map[string]string](t, rec)["error"], "body is required")
	})

	t.Run("malformed json", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/notifications/send", validToken, `{"title":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, decode[map[string]string](t, rec)["error"])
	})
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, decode[map[string]string](t, rec)["error"])
}
