package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	financeCookieName = "finance_token"
	financeTokenTTL   = 8 * time.Hour
)

// FinanceAuth guards the finance endpoints with a signed cookie. Login
// checks the configured credentials and issues a short-lived JWT; the
// middleware accepts only requests carrying a valid one.
type FinanceAuth struct {
	username string
	password string
	secret   []byte
}

// NewFinanceAuth creates the finance authenticator.
func NewFinanceAuth(username, password, secret string) *FinanceAuth {
	return &FinanceAuth{
		username: username,
		password: password,
		secret:   []byte(secret),
	}
}

// Login handles POST /api/finance/login.
func (a *FinanceAuth) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "invalid_input",
			Message: "invalid request body",
		})
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Kind:    "unauthorized",
			Message: "invalid credentials",
		})
	}

	expires := time.Now().Add(financeTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   req.Username,
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     financeCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{"username": req.Username})
}

// Logout handles POST /api/finance/logout by expiring the cookie.
func (a *FinanceAuth) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     financeCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /api/finance/me, reporting the logged-in user.
func (a *FinanceAuth) Me(c echo.Context) error {
	username, err := a.subject(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Kind:    "unauthorized",
			Message: "not logged in",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"username": username})
}

// Middleware rejects requests without a valid finance token.
func (a *FinanceAuth) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := a.subject(c); err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Kind:    "unauthorized",
				Message: "not logged in",
			})
		}
		return next(c)
	}
}

func (a *FinanceAuth) subject(c echo.Context) (string, error) {
	cookie, err := c.Cookie(financeCookieName)
	if err != nil {
		return "", err
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}
