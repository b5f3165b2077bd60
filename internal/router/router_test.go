package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"uniapi/internal/config"
	"uniapi/internal/db"
	"uniapi/internal/models"
	"uniapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

// newTestApp wires the full router against an unconnected store, which
// is exactly how the service runs when MongoDB is missing.
func newTestApp() *fiber.App {
	app := fiber.New()
	cfg := &config.Config{
		Port:      "8080",
		MongoURI:  "mongodb://localhost:27017",
		DBName:    "university",
		JWTSecret: testSecret,
	}
	Setup(app, db.Unconnected("university"), cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, raw
}

func TestRoot(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "University API is running", out["message"])
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "Not Connected", out["connection_status"])
	require.Equal(t, "✅ Running", out["backend"])
	require.Empty(t, out["collections"])
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"email": "ada@example.edu", "password": "password123"}},
		{"malformed email", map[string]interface{}{"name": "Ada", "email": "not-an-email", "password": "password123"}},
		{"missing password", map[string]interface{}{"name": "Ada", "email": "ada@example.edu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", tt.payload)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRegisterStoreUnavailable(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/auth/register", map[string]interface{}{
		"name":     "Ada Lovelace",
		"email":    "ada@example.edu",
		"password": "password123",
	})
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "nobody@example.edu",
		"password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, string(body), "invalid credentials")
}

func TestMe(t *testing.T) {
	app := newTestApp()

	t.Run("missing token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/auth/me", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token for missing user", func(t *testing.T) {
		user := models.User{ID: primitive.NewObjectID(), Email: "ada@example.edu", Role: models.RoleStudent}
		token, err := services.GenerateToken(user, testSecret)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCourseValidation(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing code", map[string]interface{}{"title": "Algebra", "instructor": "Noether"}},
		{"missing title", map[string]interface{}{"code": "MATH201", "instructor": "Noether"}},
		{"missing instructor", map[string]interface{}{"code": "MATH201", "title": "Algebra"}},
		{"credits above bound", map[string]interface{}{"code": "MATH201", "title": "Algebra", "instructor": "Noether", "credits": 11}},
		{"negative credits", map[string]interface{}{"code": "MATH201", "title": "Algebra", "instructor": "Noether", "credits": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, http.MethodPost, "/courses", tt.payload)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateCourseStoreUnavailable(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/courses", map[string]interface{}{
		"code":       "CS101",
		"title":      "Intro to Computer Science",
		"instructor": "Grace Hopper",
	})
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestListCoursesDegradesToEmpty(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/courses?q=CS&tag=intro", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(body))
}

func TestEnroll(t *testing.T) {
	app := newTestApp()

	t.Run("malformed ids are rejected before store access", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/enroll", map[string]interface{}{
			"user_id":   "not-hex",
			"course_id": "zzz",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Contains(t, string(body), "invalid id")
	})

	t.Run("missing user or course is a 404", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/enroll", map[string]interface{}{
			"user_id":   primitive.NewObjectID().Hex(),
			"course_id": primitive.NewObjectID().Hex(),
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListEnrollments(t *testing.T) {
	app := newTestApp()

	t.Run("malformed user id", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/users/not-hex/enrollments", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("zero enrollments is an empty list", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/users/"+primitive.NewObjectID().Hex()+"/enrollments", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.JSONEq(t, "[]", string(body))
	})
}
