package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devconnect/backend/internal/config"
	"github.com/devconnect/backend/internal/handlers"
	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}))

	cfg := &config.Config{JWTSecret: "route-test-secret", JWTExpiry: time.Hour}
	authService := services.NewAuthService(db, cfg)
	profileService := services.NewProfileService(db)

	app := fiber.New()
	Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(authService),
		handlers.NewProfileHandler(profileService),
		handlers.NewHealthHandler(db),
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/users", map[string]string{
		"name":     "Jane Dev",
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "jane@example.com")

	resp := doRequest(t, app, http.MethodPost, "/api/auth", map[string]string{
		"email":    "jane@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	assert.NotEmpty(t, body.Token)
}

func TestLoginInvalidCredentialsSameShape(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "jane@example.com")

	type errBody struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}

	wrongPassword := doRequest(t, app, http.MethodPost, "/api/auth", map[string]string{
		"email": "jane@example.com", "password": "wrong1234",
	}, "")
	unknownEmail := doRequest(t, app, http.MethodPost, "/api/auth", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	}, "")

	assert.Equal(t, http.StatusBadRequest, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.StatusCode)

	var a, b errBody
	decode(t, wrongPassword, &a)
	decode(t, unknownEmail, &b)
	require.Len(t, a.Errors, 1)
	assert.Equal(t, "Invalid Credentials", a.Errors[0].Msg)
	assert.Equal(t, a, b, "responses must not reveal whether the email exists")
}

func TestCurrentUserOmitsPassword(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "jane@example.com")

	resp := doRequest(t, app, http.MethodGet, "/api/auth", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, "jane@example.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.Contains(t, body["avatar"], "gravatar.com")
}

func TestProtectedRouteRejections(t *testing.T) {
	app := setupApp(t)

	var body struct {
		Msg string `json:"msg"`
	}

	resp := doRequest(t, app, http.MethodGet, "/api/auth", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "No token, authorization denied", body.Msg)

	resp = doRequest(t, app, http.MethodGet, "/api/profile/me", nil, "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "Token is not valid", body.Msg)
}

func TestProfileLifecycle(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "jane@example.com")

	// No profile yet.
	resp := doRequest(t, app, http.MethodGet, "/api/profile/me", nil, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var msg struct {
		Msg string `json:"msg"`
	}
	decode(t, resp, &msg)
	assert.Equal(t, "There is no profile for this user", msg.Msg)

	// Missing required fields.
	resp = doRequest(t, app, http.MethodPost, "/api/profile", map[string]string{"skills": "go"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Create.
	resp = doRequest(t, app, http.MethodPost, "/api/profile", map[string]string{
		"status":  "Developer",
		"skills":  "node, express, mongo",
		"company": "Acme",
		"twitter": "https://twitter.com/jane",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile models.Profile
	decode(t, resp, &profile)
	assert.Equal(t, []string{"node", "express", "mongo"}, []string(profile.Skills))
	assert.Equal(t, "Acme", profile.Company)
	assert.Equal(t, "Jane Dev", profile.User.Name)

	// Public lookup by user id.
	resp = doRequest(t, app, http.MethodGet, "/api/profile/user/"+profile.UserID.String(), nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Malformed id.
	resp = doRequest(t, app, http.MethodGet, "/api/profile/user/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decode(t, resp, &msg)
	assert.Equal(t, "Profile not found", msg.Msg)

	// Public list.
	resp = doRequest(t, app, http.MethodGet, "/api/profile/", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var profiles []models.Profile
	decode(t, resp, &profiles)
	assert.Len(t, profiles, 1)
}

func TestExperienceRoutes(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "jane@example.com")

	// Entry mutation before a profile exists is an error, not a create.
	resp := doRequest(t, app, http.MethodPut, "/api/profile/experience", map[string]interface{}{
		"title": "Engineer", "company": "Acme", "from": "2020-01-01",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/profile", map[string]string{
		"status": "Developer", "skills": "go",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Validation.
	resp = doRequest(t, app, http.MethodPut, "/api/profile/experience", map[string]interface{}{
		"title": "Engineer",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Add.
	resp = doRequest(t, app, http.MethodPut, "/api/profile/experience", map[string]interface{}{
		"title": "Engineer", "company": "Acme", "from": "2020-01-01", "current": true,
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile models.Profile
	decode(t, resp, &profile)
	require.Len(t, profile.Experience, 1)
	entryID := profile.Experience[0].ID

	// Unknown id removal is a no-op with a 200.
	resp = doRequest(t, app, http.MethodDelete, "/api/profile/experience/unknown-id", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &profile)
	assert.Len(t, profile.Experience, 1)

	// Remove.
	resp = doRequest(t, app, http.MethodDelete, "/api/profile/experience/"+entryID.String(), nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &profile)
	assert.Empty(t, profile.Experience)
}

func TestDeleteAccountRoute(t *testing.T) {
	app := setupApp(t)
	token := registerUser(t, app, "jane@example.com")

	resp := doRequest(t, app, http.MethodPost, "/api/profile", map[string]string{
		"status": "Developer", "skills": "go",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile models.Profile
	decode(t, resp, &profile)

	resp = doRequest(t, app, http.MethodDelete, "/api/profile", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msg struct {
		Msg string `json:"msg"`
	}
	decode(t, resp, &msg)
	assert.Equal(t, "User deleted", msg.Msg)

	// Neither the profile nor the user is retrievable afterward.
	resp = doRequest(t, app, http.MethodGet, "/api/profile/user/"+profile.UserID.String(), nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/auth", nil, token)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthRoute(t *testing.T) {
	app := setupApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status string `json:"status"`
		DB     string `json:"db"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "ok", body.DB)
}
