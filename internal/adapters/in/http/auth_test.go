package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth() *FinanceAuth {
	return NewFinanceAuth("finance", "s3cret", "test-signing-secret")
}

func login(t *testing.T, auth *FinanceAuth, username, password string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/finance/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, auth.Login(e.NewContext(req, rec))
}

func TestFinanceAuth_Login_ValidCredentials(t *testing.T) {
	auth := newAuth()

	rec, err := login(t, auth, "finance", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "finance_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "finance", resp["username"])
}

func TestFinanceAuth_Login_WrongPassword(t *testing.T) {
	auth := newAuth()

	rec, err := login(t, auth, "finance", "wrong")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestFinanceAuth_Middleware_AllowsValidToken(t *testing.T) {
	auth := newAuth()

	rec, err := login(t, auth, "finance", "s3cret")
	require.NoError(t, err)
	token := rec.Result().Cookies()[0]

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/finance/payments", nil)
	req.AddCookie(token)
	inner := httptest.NewRecorder()
	c := e.NewContext(req, inner)

	called := false
	handler := auth.Middleware(func(echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestFinanceAuth_Middleware_RejectsMissingOrBadToken(t *testing.T) {
	auth := newAuth()

	e := echo.New()

	// No cookie at all.
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/finance/payments", nil), rec)
	handler := auth.Middleware(func(echo.Context) error {
		t.Fatal("handler must not be called")
		return nil
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Token signed with a different secret.
	other := NewFinanceAuth("finance", "s3cret", "other-secret")
	otherRec, err := login(t, other, "finance", "s3cret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/finance/payments", nil)
	req.AddCookie(otherRec.Result().Cookies()[0])
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFinanceAuth_Logout_ExpiresCookie(t *testing.T) {
	auth := newAuth()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/finance/logout", nil), rec)

	require.NoError(t, auth.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
