package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/utils"
	"github.com/MKhiriev/go-user-records/internal/validators"
	"github.com/MKhiriev/go-user-records/models"
)

const maxRequestBodySize = 1 << 20

// createUser registers a new account.
//
// Responds 201 with the stored user and a Location header, 422 with the
// per-field errors when the record is rejected. The response is the only
// one that carries the verification token.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Role.IsValid() && !req.Role.IsSelfAssignable() {
		writeError(w, r, validators.NewValidationError(validators.FieldRole, validators.ErrRoleReserved))
		return
	}

	created, err := h.services.UserService.Create(r.Context(), req.User())
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", created.UserID))
	h.writeUser(w, r, created.WithoutSecrets(), http.StatusCreated)
}

// getUser returns the default projection of a user. The include query
// parameter (comma separated) adds loginAttempts and blockExpires; the
// password hash is never exposed.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	include, err := includeFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), userID, include...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeUser(w, r, user.Public(), http.StatusOK)
}

// updateUser changes the profile of the authenticated user. An empty
// password in the body keeps the stored one; role, verification and
// lockout fields are not accepted.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	authUserID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}
	if authUserID != userID {
		logger.FromRequest(r).Warn().
			Int64("user_id", userID).
			Int64("auth_user_id", authUserID).
			Msg("attempt to modify another user")
		writeError(w, r, ErrForeignUser)
		return
	}

	var req models.UpdateUserRequest
	if err = decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), req.User(userID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeUser(w, r, updated.Public(), http.StatusOK)
}

// listUsers serves one page of users. Supported query parameters are
// page, limit, role, verified and q.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	req, err := listRequestFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.Paginate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	for i := range page.Users {
		page.Users[i] = page.Users[i].Public()
	}

	if _, err = utils.WriteJSON(w, page, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing users page")
	}
}

// login checks the credentials and returns the user together with a bearer
// token in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if err := decodeBody(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	user, err := h.services.UserService.Authenticate(ctx, credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	h.writeUser(w, r, user.Public(), http.StatusOK)
}

func (h *Handler) verifyUser(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Verify(r.Context(), req.Verification)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeUser(w, r, user.Public(), http.StatusOK)
}

// writeUser writes user as is; callers strip it with WithoutSecrets or Public.
func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	if _, err := utils.WriteJSON(w, user, status); err != nil {
		logger.FromRequest(r).Err(err).Int64("user_id", user.UserID).Msg("error writing user")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	err := utils.DecodeJSON(r.Body, dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, utils.ErrEmptyBody):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
}

func userIDFromPath(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}

var includableFields = map[string]models.Field{
	"loginAttempts": models.FieldLoginAttempts,
	"blockExpires":  models.FieldBlockExpires,
}

func includeFromQuery(r *http.Request) ([]models.Field, error) {
	raw := r.URL.Query().Get("include")
	if raw == "" {
		return nil, nil
	}

	var include []models.Field
	for name := range strings.SplitSeq(raw, ",") {
		field, ok := includableFields[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("%w: include %q", ErrInvalidQueryParam, name)
		}
		include = append(include, field)
	}
	return include, nil
}

func listRequestFromQuery(r *http.Request) (models.ListRequest, error) {
	query := r.URL.Query()
	req := models.ListRequest{
		Query: query.Get("q"),
		Role:  models.Role(query.Get("role")),
	}

	var err error
	if v := query.Get("page"); v != "" {
		if req.Page, err = strconv.Atoi(v); err != nil {
			return models.ListRequest{}, fmt.Errorf("%w: page %q", ErrInvalidQueryParam, v)
		}
	}
	if v := query.Get("limit"); v != "" {
		if req.Limit, err = strconv.Atoi(v); err != nil {
			return models.ListRequest{}, fmt.Errorf("%w: limit %q", ErrInvalidQueryParam, v)
		}
	}
	if v := query.Get("verified"); v != "" {
		verified, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			return models.ListRequest{}, fmt.Errorf("%w: verified %q", ErrInvalidQueryParam, v)
		}
		req.Verified = &verified
	}

	return req, nil
}
