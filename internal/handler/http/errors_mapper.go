package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/service"
	"github.com/MKhiriev/go-user-records/internal/store"
	"github.com/MKhiriev/go-user-records/internal/utils"
	"github.com/MKhiriev/go-user-records/internal/validators"
	"github.com/MKhiriev/go-user-records/models"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	status int
}{
	{validators.ErrValidation, http.StatusUnprocessableEntity},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{ErrForeignUser, http.StatusForbidden},

	{ErrInvalidUserID, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{service.ErrUserNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse renders err for the client. Server-side failures carry a
// generic message so that store and hashing details stay in the logs.
func errorResponse(err error, status int) models.ErrorResponse {
	if status >= http.StatusInternalServerError {
		return models.ErrorResponse{Message: http.StatusText(status)}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		resp := models.ErrorResponse{Message: validators.ErrValidation.Error()}
		for _, f := range validationErr.Fields {
			resp.Errors = append(resp.Errors, models.FieldErrorResponse{Field: f.Field, Message: f.Message})
		}
		return resp
	}

	return models.ErrorResponse{Message: err.Error()}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, errorResponse(err, status), status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
