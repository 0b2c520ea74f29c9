package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-records/internal/config"
	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/utils"
	"github.com/MKhiriev/go-user-records/models"
)

type httpUserClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPUserClient constructs the REST implementation of [UserClient].
// It fails when cfg.HTTPAddress is empty or not a URL.
func NewHTTPUserClient(cfg config.ClientAdapter, logger *logger.Logger) (UserClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	client := utils.NewHTTPClient(baseURL, timeout)

	return &httpUserClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpUserClient) Token() string {
	return h.token
}

// Create POSTs the registrant-settable attributes of user to /api/users.
func (h *httpUserClient) Create(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.NewCreateUserRequest(user)).
		SetResult(&created).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

func (h *httpUserClient) Get(ctx context.Context, userID int64) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&found).
		Get("/api/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return found, nil
}

// Update PUTs the profile attributes of user to /api/users/{id} with the
// stored bearer token.
func (h *httpUserClient) Update(ctx context.Context, user models.User) (models.User, error) {
	var updated models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(user.UserID, 10)).
		SetBody(models.NewUpdateUserRequest(user)).
		SetResult(&updated).
		Put("/api/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

// List GETs /api/users with the filters of req as query parameters.
func (h *httpUserClient) List(ctx context.Context, req models.ListRequest) (models.Page, error) {
	var page models.Page

	params := map[string]string{}
	if req.Page > 0 {
		params["page"] = strconv.Itoa(req.Page)
	}
	if req.Limit > 0 {
		params["limit"] = strconv.Itoa(req.Limit)
	}
	if req.Role != "" {
		params["role"] = string(req.Role)
	}
	if req.Verified != nil {
		params["verified"] = strconv.FormatBool(*req.Verified)
	}
	if req.Query != "" {
		params["q"] = req.Query
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&page).
		Get("/api/users")
	if err != nil {
		return models.Page{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	return page, nil
}

// Login POSTs the credentials to /api/users/login. On success the bearer
// token from the Authorization response header is stored via SetToken.
func (h *httpUserClient) Login(ctx context.Context, email, password string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&user).
		Post("/api/users/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

func (h *httpUserClient) Verify(ctx context.Context, token string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.VerifyRequest{Verification: token}).
		SetResult(&user).
		Post("/api/users/verify")
	if err != nil {
		return models.User{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUserClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpUserClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
