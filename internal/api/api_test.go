package api_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"visorhr.com/internal/api"
	"visorhr.com/internal/config"
	"visorhr.com/internal/infra"
	"visorhr.com/internal/model"
	"visorhr.com/internal/session"
)

const testCookieName = "visorhr_session"

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	mediaRoot string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.EmpPersonal{}))

	mediaRoot := t.TempDir()
	media, err := infra.NewMediaStore(mediaRoot)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{AppName: "visorhr-test"},
		Session: config.SessionConfig{
			CookieName: testCookieName,
			TTLHours:   1,
		},
	}

	app, err := api.NewServer(cfg, db, session.NewMemoryStore(), media)
	require.NoError(t, err)

	return &testEnv{app: app, db: db, mediaRoot: mediaRoot}
}

func (e *testEnv) postJSON(t *testing.T, path, body, sessionToken string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionToken})
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func (e *testEnv) register(t *testing.T, username, password string) map[string]any {
	t.Helper()

	payload := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	resp := e.postJSON(t, "/accounts/register", payload, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeBody(t, resp)
}

// login registers nothing; it authenticates an existing account and returns
// the session cookie value.
func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	payload := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	resp := e.postJSON(t, "/accounts/login", payload, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == testCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("login response carried no session cookie")
	return ""
}
