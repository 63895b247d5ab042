package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"partyinvite/internal/delivery/http/helpers"
	"partyinvite/internal/domain"
)

// writeServiceError maps domain errors to status codes. Unexpected errors are logged and
// returned as 500 with their message.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrAlreadyExists):
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

// IDResponse is returned by endpoints that create a row.
type IDResponse struct {
	ID int64 `json:"id"`
}
