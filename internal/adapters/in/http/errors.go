package http

import (
	"errors"
	"net/http"

	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the envelope returned for every rejected request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// writeError translates a domain error into the HTTP envelope. Input
// problems map to 400, missing objects to 404, state and conflict
// violations to 409; anything unrecognized is a 500 with the detail kept
// out of the response.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "invalid_input",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Kind:    "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidState):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Kind:    "invalid_state",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Kind:    "conflict",
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Kind:    "internal",
			Message: "internal server error",
		})
	}
}
