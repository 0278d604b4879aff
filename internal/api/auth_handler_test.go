package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service/auth"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

func stubJWTService(userID uuid.UUID) *mockJWTService {
	return &mockJWTService{
		generateTokenFn: func(ctx context.Context, gotUserID uuid.UUID) (string, error) {
			return "access-token", nil
		},
		generateRefreshTokenFn: func(ctx context.Context, gotUserID uuid.UUID) (string, error) {
			return "refresh-token", nil
		},
		validateRefreshTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return &auth.Claims{UserID: userID, TokenType: "refresh"}, nil
		},
	}
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister(t *testing.T) {
	userID := uuid.New()

	t.Run("success returns created with token pair", func(t *testing.T) {
		userService := &mockUserService{
			registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				assert.Equal(t, "aspirant@example.com", email)
				return &domain.User{ID: userID, Email: email, Credits: 100}, nil
			},
		}
		handler := NewAuthHandler(userService, stubJWTService(userID), testLogger())

		req := postJSON("/auth/register", `{"email":"aspirant@example.com","password":"correct horse battery"}`)
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.UserID)
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		userService := &mockUserService{
			registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return nil, store.ErrEmailExists
			},
		}
		handler := NewAuthHandler(userService, stubJWTService(userID), testLogger())

		req := postJSON("/auth/register", `{"email":"aspirant@example.com","password":"correct horse battery"}`)
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("short password fails validation before the service", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, stubJWTService(userID), testLogger())

		req := postJSON("/auth/register", `{"email":"aspirant@example.com","password":"short"}`)
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, stubJWTService(userID), testLogger())

		req := postJSON("/auth/register", `{broken`)
		rr := httptest.NewRecorder()
		handler.Register(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	userID := uuid.New()

	t.Run("valid credentials return token pair", func(t *testing.T) {
		userService := &mockUserService{
			authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return &domain.User{ID: userID, Email: email}, nil
			},
		}
		handler := NewAuthHandler(userService, stubJWTService(userID), testLogger())

		req := postJSON("/auth/login", `{"email":"aspirant@example.com","password":"whatever"}`)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.UserID)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("bad credentials return unauthorized with a generic message", func(t *testing.T) {
		userService := &mockUserService{
			authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				return nil, auth.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(userService, stubJWTService(userID), testLogger())

		req := postJSON("/auth/login", `{"email":"aspirant@example.com","password":"wrong"}`)
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid credentials")
		assert.NotContains(t, rr.Body.String(), "password")
	})
}

func TestRefreshToken(t *testing.T) {
	userID := uuid.New()

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, stubJWTService(userID), testLogger())

		req := postJSON("/auth/refresh", `{"refresh_token":"some-refresh-token"}`)
		rr := httptest.NewRecorder()
		handler.RefreshToken(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp RefreshTokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
	})

	t.Run("access token in the refresh slot is rejected", func(t *testing.T) {
		jwtService := stubJWTService(userID)
		jwtService.validateRefreshTokenFn = func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return nil, auth.ErrWrongTokenType
		}
		handler := NewAuthHandler(&mockUserService{}, jwtService, testLogger())

		req := postJSON("/auth/refresh", `{"refresh_token":"an-access-token"}`)
		rr := httptest.NewRecorder()
		handler.RefreshToken(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing refresh token fails validation", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, stubJWTService(userID), testLogger())

		req := postJSON("/auth/refresh", `{}`)
		rr := httptest.NewRecorder()
		handler.RefreshToken(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
