package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{
			name:     "required value",
			err:      errs.NewValueIsRequiredError("items"),
			wantCode: http.StatusBadRequest,
			wantKind: "invalid_input",
		},
		{
			name:     "invalid value",
			err:      errs.NewValueIsInvalidError("tableNumber"),
			wantCode: http.StatusBadRequest,
			wantKind: "invalid_input",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", -1, 0, 100),
			wantCode: http.StatusBadRequest,
			wantKind: "invalid_input",
		},
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("order", "abc"),
			wantCode: http.StatusNotFound,
			wantKind: "not_found",
		},
		{
			name:     "invalid state",
			err:      errs.NewInvalidStateError("charge", "pending"),
			wantCode: http.StatusConflict,
			wantKind: "invalid_state",
		},
		{
			name:     "conflict",
			err:      errs.NewConflictError("payment", "order already charged"),
			wantCode: http.StatusConflict,
			wantKind: "conflict",
		},
		{
			name:     "unclassified",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantKind: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, tt.err))

			assert.Equal(t, tt.wantCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestWriteError_InternalHidesDetail(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, writeError(c, errors.New("password=hunter2 leaked")))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
}
