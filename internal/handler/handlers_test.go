package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-typed-routes/internal/auth"
	"github.com/MKhiriev/go-typed-routes/internal/config"
	"github.com/MKhiriev/go-typed-routes/internal/logger"
	"github.com/MKhiriev/go-typed-routes/internal/service"
	"github.com/MKhiriev/go-typed-routes/internal/store"
	"github.com/MKhiriev/go-typed-routes/models"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	services, err := service.NewServices(store.NewStorages(), models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	return services
}

func newTestAuthenticator() *auth.Authenticator {
	return auth.NewAuthenticator(config.Auth{TokenSignKey: "secret", TokenIssuer: "test", TokenDuration: time.Hour})
}

func TestNewHandlers(t *testing.T) {
	h, err := NewHandlers(newTestServices(t), newTestAuthenticator(), nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h.HTTP)
	assert.Equal(t, []string{
		"DELETE /orgs/{orgId}/members/{id}",
		"GET /orgs/{orgId}/members",
		"GET /orgs/{orgId}/members/{id}",
		"POST /orgs/{orgId}/members",
		"PUT /orgs/{orgId}/members/{id}",
	}, h.Members.Routes())
	assert.Equal(t, []string{"GET /api/health", "GET /api/version"}, h.System.Routes())
}

func TestNewHandlers_ServesControllers(t *testing.T) {
	authenticator := newTestAuthenticator()
	h, err := NewHandlers(newTestServices(t), authenticator, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)
	router := h.HTTP.Init()

	token, err := authenticator.Issue(models.Identity{UserID: 1, OrganizationID: "acme"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/orgs/acme/members", nil)
	req.Header.Set("Authorization", "Bearer "+token.SignedString)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"members":[],"total":0,"offset":0,"limit":100}`, rr.Body.String())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(t), newTestAuthenticator(), nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_MissingDependencies(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	_, err := NewHandlers(nil, newTestAuthenticator(), nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errMissingDependencies)

	_, err = NewHandlers(newTestServices(t), nil, nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errMissingDependencies)
}
