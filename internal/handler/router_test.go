package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskboard-api/internal/auth"
	"github.com/BuzzLyutic/taskboard-api/internal/model"
	"github.com/BuzzLyutic/taskboard-api/internal/repo"
	"github.com/BuzzLyutic/taskboard-api/internal/service"
	"github.com/BuzzLyutic/taskboard-api/internal/store"
)

var testSecret = []byte("test-secret")

func setupServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	dataDir := t.TempDir()
	publicDir := t.TempDir()
	logger := zap.NewNop()

	users := store.NewCollection[model.User](filepath.Join(dataDir, "users.json"))
	projects := store.NewCollection[model.Project](filepath.Join(dataDir, "projects.json"))
	tasks := store.NewCollection[model.Task](filepath.Join(dataDir, "tasks.json"))

	userRepo := repo.NewUserRepo(users)
	authService := service.NewAuthService(userRepo, testSecret, time.Hour)

	r := NewRouter(testSecret,
		NewAuthHandler(authService, logger),
		NewProjectHandler(repo.NewProjectRepo(projects), logger),
		NewTaskHandler(repo.NewTaskRepo(tasks), logger),
		NewStatic(publicDir),
	)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server, publicDir
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerUser(t *testing.T, serverURL, email string) (userID, token string) {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, serverURL+"/api/auth/register", "", map[string]string{
		"name":     "Ann",
		"email":    email,
		"password": "pw12345",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user := body["user"].(map[string]any)
	return user["id"].(string), body["token"].(string)
}

func TestE2E_FullWorkflow(t *testing.T) {
	server, _ := setupServer(t)

	// 1. Регистрация
	userID, token := registerUser(t, server.URL, "a@x.com")
	require.NotEmpty(t, token)

	// 2. /api/me с полученным токеном
	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	me := body["user"].(map[string]any)
	assert.Equal(t, "a@x.com", me["email"])

	// 3. Создание проекта — владельцем становится автор запроса
	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/projects", token, map[string]string{"name": "P1"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	project := body["project"].(map[string]any)
	assert.Equal(t, "P1", project["name"])
	assert.Equal(t, userID, project["owner"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/projects", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["projects"], 1)

	// 4. Повторная регистрация с тем же email
	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "", map[string]string{
		"name":     "Bob",
		"email":    "a@x.com",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestRegister_Validation(t *testing.T) {
	server, _ := setupServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing name", body: map[string]string{"email": "a@x.com", "password": "pw"}},
		{name: "missing email", body: map[string]string{"name": "Ann", "password": "pw"}},
		{name: "missing password", body: map[string]string{"name": "Ann", "email": "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Missing fields", body["error"])
		})
	}
}

func TestRegister_MalformedBody(t *testing.T) {
	server, _ := setupServer(t)

	resp, err := http.Post(server.URL+"/api/auth/register", "application/json", bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	server, _ := setupServer(t)
	registerUser(t, server.URL, "a@x.com")

	t.Run("correct credentials", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", map[string]string{
			"email":    "a@x.com",
			"password": "pw12345",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, body["token"])

		user := body["user"].(map[string]any)
		assert.Equal(t, "a@x.com", user["email"])
		assert.NotContains(t, user, "passwordHash")
	})

	// Ответ не должен различать неизвестный email и неверный пароль
	for _, tt := range []struct {
		name  string
		email string
		pass  string
	}{
		{name: "wrong password", email: "a@x.com", pass: "wrong"},
		{name: "unknown email", email: "nobody@x.com", pass: "pw12345"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "", map[string]string{
				"email":    tt.email,
				"password": tt.pass,
			})
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Invalid email or password", body["error"])
		})
	}
}

func TestProtectedRoutes_Unauthorized(t *testing.T) {
	server, _ := setupServer(t)

	expired, err := auth.GenerateToken(model.User{ID: "u1"}, testSecret, -time.Minute)
	require.NoError(t, err)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/me"},
		{http.MethodGet, "/api/projects"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodPost, "/api/tasks"},
	}

	tokens := map[string]string{
		"no token":      "",
		"garbled token": "garbage",
		"expired token": expired,
	}

	for name, token := range tokens {
		for _, route := range routes {
			t.Run(fmt.Sprintf("%s %s %s", name, route.method, route.path), func(t *testing.T) {
				resp, body := doJSON(t, route.method, server.URL+route.path, token, map[string]string{"name": "x"})
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				assert.Equal(t, "Unauthorized", body["error"])
			})
		}
	}

	// Отклоненные POST не должны ничего создать
	_, token := registerUser(t, server.URL, "check@x.com")
	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/projects", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["projects"])
}

func TestTasks_CreateDefaults(t *testing.T) {
	server, _ := setupServer(t)
	_, token := registerUser(t, server.URL, "a@x.com")

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/tasks", token, map[string]string{
		"title":     "T1",
		"projectId": "does-not-exist", // ссылка не проверяется
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	task := body["task"].(map[string]any)
	assert.NotEmpty(t, task["id"])
	assert.Equal(t, "Medium", task["priority"])
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, "does-not-exist", task["projectId"])

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/tasks", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["tasks"], 1)
}

func TestUnknownRoute(t *testing.T) {
	server, _ := setupServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", body["error"])

	resp, body = doJSON(t, http.MethodDelete, server.URL+"/api/projects", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", body["error"])
}

func TestStaticFallback(t *testing.T) {
	server, publicDir := setupServer(t)

	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"), []byte("<h1>hi</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "app.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "notes.txt"), []byte("plain"), 0o644))

	tests := []struct {
		path     string
		wantCode int
		wantMime string
	}{
		{path: "/", wantCode: http.StatusOK, wantMime: "text/html"},
		{path: "/index.html", wantCode: http.StatusOK, wantMime: "text/html"},
		{path: "/app.css", wantCode: http.StatusOK, wantMime: "text/css"},
		{path: "/notes.txt", wantCode: http.StatusOK, wantMime: "text/plain"},
		{path: "/missing.html", wantCode: http.StatusNotFound, wantMime: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(server.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantMime, resp.Header.Get("Content-Type"))
		})
	}
}
