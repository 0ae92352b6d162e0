package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/electroway/electrowayapi/internal/service"
	"github.com/labstack/echo/v4"
)

func runProtected(t *testing.T, tokenService *service.TokenService, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	var boundUserID string
	e.GET("/protected", func(c echo.Context) error {
		userID, err := GetUserIDFromEchoContext(c)
		if err != nil {
			return err
		}
		boundUserID = userID
		return c.NoContent(http.StatusOK)
	}, AuthMiddleware(tokenService))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, boundUserID
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	tokenService := service.NewTokenService("secret")

	rec, _ := runProtected(t, tokenService, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	tokenService := service.NewTokenService("secret")

	for _, header := range []string{"Bearer", "Bearer ", "sometoken", "Basic abc"} {
		rec, _ := runProtected(t, tokenService, header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	tokenService := service.NewTokenService("secret")

	token, err := service.NewTokenService("other-secret").Issue("u1")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	rec, _ := runProtected(t, tokenService, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareBindsIdentity(t *testing.T) {
	tokenService := service.NewTokenService("secret")

	token, err := tokenService.Issue("u1")
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	rec, boundUserID := runProtected(t, tokenService, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if boundUserID != "u1" {
		t.Fatalf("expected bound user id u1, got %q", boundUserID)
	}
}
