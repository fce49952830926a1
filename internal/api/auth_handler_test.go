package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

const testJWTSecret = "test-secret-that-is-at-least-32-chars!!"

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:        testJWTSecret,
		JWTAlgorithm:     "HS256",
		TokenExpiryHours: 24,
	})
	require.NoError(t, err)
	return svc
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	handler := NewAuthHandler(nil, users, newTestJWTService(t), auth.NewBcryptHasher(bcrypt.MinCost))
	return handler, users
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates user and returns public projection", func(t *testing.T) {
		t.Parallel()
		handler, users := newTestAuthHandler(t)

		rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "Jane.Doe@Example.com",
			Password: "password123",
			Name:     "Jane",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "jane.doe@example.com", resp.Email, "email should be normalized")
		assert.Equal(t, "Jane", resp.Name)
		assert.False(t, resp.CreatedAt.IsZero())
		assert.NotContains(t, rec.Body.String(), "password", "response must not leak credentials")

		stored, err := users.GetByEmail(context.Background(), "jane.doe@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.NotEqual(t, "password123", stored.HashedPassword)
	})

	t.Run("derives display name from email when omitted", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)

		rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "jane.doe@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Jane Doe", resp.Name)
	})

	t.Run("accepts a short password", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)

		rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "a@x.com",
			Password: "pw1",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "a@x.com", resp.Email)
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)

		first := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "taken@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    "TAKEN@example.com",
			Password: "different-password",
		})
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Contains(t, second.Body.String(), "Email already registered")

		padded := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    " TAKEN@Example.COM ",
			Password: "different-password",
		})
		assert.Equal(t, http.StatusConflict, padded.Code,
			"whitespace padding must not dodge the uniqueness check")
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)

		cases := []struct {
			name string
			req  RegisterRequest
		}{
			{"missing email", RegisterRequest{Password: "password123"}},
			{"malformed email", RegisterRequest{Email: "not-an-email", Password: "password123"}},
			{"missing password", RegisterRequest{Email: "a@example.com"}},
			{"oversized password", RegisterRequest{Email: "a@example.com", Password: strings.Repeat("a", 73)}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := postJSON(t, handler.Register, "/api/auth/register", tc.req)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			bytes.NewReader([]byte(`{"email":"a@example.com","password":"password123","admin":true}`)))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T, handler *AuthHandler, email, password string) {
		t.Helper()
		rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			Email:    email,
			Password: password,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)
		register(t, handler, "jane@example.com", "password123")

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "jane@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(24*60*60), resp.ExpiresIn)
	})

	t.Run("issued token validates and carries the user identity", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)
		register(t, handler, "jane@example.com", "password123")

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "jane@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		claims, err := handler.jwtService.ValidateToken(context.Background(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "jane@example.com", claims.Email)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)
		register(t, handler, "jane@example.com", "password123")

		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})
		unknownUser := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String(),
			"both failure modes must produce the same body")
		assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
	})

	t.Run("case-insensitive email lookup", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)
		register(t, handler, "jane@example.com", "password123")

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "JANE@Example.COM",
			Password: "password123",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("padded email identifies the same account", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)
		register(t, handler, "a@x.com", "pw1")

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "A@X.com ",
			Password: "pw1",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		t.Parallel()
		handler, _ := newTestAuthHandler(t)

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{Email: "jane@example.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
