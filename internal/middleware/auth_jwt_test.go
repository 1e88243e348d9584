package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func newProtectedEcho() *echo.Echo {
	e := echo.New()
	cfg := config.Config{JWTSecret: testSecret}

	g := e.Group("/protected")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id":  c.Get(middleware.CtxUserIDKey),
			"username": c.Get(middleware.CtxUsernameKey),
		})
	})
	return e
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":      int64(7),
		"username": "cashier01",
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}
}

func do(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected/ping", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_ValidToken(t *testing.T) {
	e := newProtectedEcho()

	rec := do(e, "Bearer "+signToken(t, validClaims(), testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cashier01")
}

func TestAuthJWT_Rejects(t *testing.T) {
	e := newProtectedEcho()

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noUsername := validClaims()
	delete(noUsername, "username")

	cases := []struct {
		name  string
		authz string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, validClaims(), "other_secret")},
		{"expired", "Bearer " + signToken(t, expired, testSecret)},
		{"missing username claim", "Bearer " + signToken(t, noUsername, testSecret)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, tc.authz)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
