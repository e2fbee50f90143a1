package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trademinutes/tmclient/internal/client/models"
	"github.com/trademinutes/tmclient/internal/common"
	"github.com/trademinutes/tmclient/internal/logging"
)

const maxBodySize = 1 << 20

const (
	pathLogin         = "/api/auth/login"
	pathRegister      = "/api/auth/register"
	pathResetPassword = "/api/auth/reset-password"
	pathProfile       = "/api/auth/profile"
	pathProfileUpdate = "/api/auth/profile/update"
	pathNotifications = "/api/notifications"
)

// HTTPClient talks JSON over HTTP to the auth API and the notification
// service. It is safe for concurrent use.
type HTTPClient struct {
	authURL          string
	notificationsURL string
	httpClient       *http.Client
	requestTimeout   time.Duration
	log              logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.httpClient = c }
}

// WithRequestTimeout bounds every request. Zero means no deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.requestTimeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// NewHTTPClient builds a client for the given base URLs. An empty
// notificationsURL falls back to authURL.
func NewHTTPClient(authURL, notificationsURL string, opts ...Option) *HTTPClient {
	if notificationsURL == "" {
		notificationsURL = authURL
	}
	c := &HTTPClient{
		authURL:          strings.TrimRight(authURL, "/"),
		notificationsURL: strings.TrimRight(notificationsURL, "/"),
		httpClient:       &http.Client{},
		log:              logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type response struct {
	status      int
	contentType string
	body        []byte
}

func (r *response) ok() bool { return r.status >= 200 && r.status < 300 }

func (r *response) isJSON() bool {
	return strings.Contains(strings.ToLower(r.contentType), "application/json")
}

// errorMessage extracts a human message from a failed response: the
// "message" or "error" field of a JSON body, otherwise the raw text.
func (r *response) errorMessage(fallback string) string {
	if r.isJSON() {
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(r.body, &body); err == nil {
			if body.Message != "" {
				return body.Message
			}
			if body.Error != "" {
				return body.Error
			}
		}
		return fallback
	}
	if text := strings.TrimSpace(string(r.body)); text != "" {
		return text
	}
	return fallback
}

func (c *HTTPClient) do(ctx context.Context, method, url, token string, payload any) (*response, error) {
	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", url, "request_id", requestID, "error", err)
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.log.Debug(ctx, "request done", "method", method, "url", url, "request_id", requestID, "status", resp.StatusCode)

	return &response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        b,
	}, nil
}

// decodeJSON enforces the content-type guard, decodes into v and validates it.
func decodeJSON(r *response, v any) error {
	if !r.isJSON() {
		return &NonJSONResponseError{Status: r.status, ContentType: r.contentType, Body: strings.TrimSpace(string(r.body))}
	}
	if err := json.Unmarshal(r.body, v); err != nil {
		return &FormatError{Err: err}
	}
	return nil
}

// Login posts the credentials and returns the issued session token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	r, err := c.do(ctx, http.MethodPost, c.authURL+pathLogin, "", models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	if !r.ok() {
		return "", &ServerError{Status: r.status, Message: r.errorMessage("Login failed")}
	}
	if !r.isJSON() {
		return "", &NonJSONResponseError{Status: r.status, ContentType: r.contentType, Body: "Unexpected response format from server"}
	}

	var out models.LoginResponse
	if err := decodeJSON(r, &out); err != nil {
		return "", err
	}
	if err := models.Validate(&out); err != nil {
		return "", &FormatError{Err: err}
	}
	return out.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	r, err := c.do(ctx, http.MethodPost, c.authURL+pathRegister, "", models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}
	if !r.ok() {
		return &ServerError{Status: r.status, Message: r.errorMessage("Registration failed")}
	}
	return nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	r, err := c.do(ctx, http.MethodPost, c.authURL+pathResetPassword, "", models.ResetPasswordRequest{Token: resetToken, NewPassword: newPassword})
	if err != nil {
		return err
	}
	if !r.ok() {
		return &ServerError{Status: r.status, Message: r.errorMessage("Failed to reset password")}
	}
	return nil
}

// FetchProfile reads the profile of the token's owner. The content type is
// checked before anything is parsed.
func (c *HTTPClient) FetchProfile(ctx context.Context, token string) (models.Profile, error) {
	var p models.Profile

	r, err := c.do(ctx, http.MethodGet, c.authURL+pathProfile, token, nil)
	if err != nil {
		return p, err
	}
	if !r.isJSON() {
		body := strings.TrimSpace(string(r.body))
		if body == "" {
			body = "Invalid response format"
		}
		return p, &NonJSONResponseError{Status: r.status, ContentType: r.contentType, Body: body}
	}
	if !r.ok() {
		return p, &ServerError{Status: r.status, Message: r.errorMessage("Unauthorized")}
	}
	if err := decodeJSON(r, &p); err != nil {
		return p, err
	}
	if err := models.Validate(&p); err != nil {
		return p, &FormatError{Err: err}
	}
	p.Normalize()
	return p, nil
}

// UpdateProfile replaces the whole profile; partial updates are not supported.
func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, p models.Profile) error {
	p.Normalize()
	r, err := c.do(ctx, http.MethodPut, c.authURL+pathProfileUpdate, token, p)
	if err != nil {
		return err
	}
	if !r.ok() {
		return &ServerError{Status: r.status, Message: r.errorMessage("Failed to update profile")}
	}
	return nil
}

func (c *HTTPClient) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	r, err := c.do(ctx, http.MethodGet, c.notificationsURL+pathNotifications, "", nil)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, &ServerError{Status: r.status, Message: r.errorMessage("Failed to fetch notifications")}
	}

	var out []models.Notification
	if err := decodeJSON(r, &out); err != nil {
		return nil, err
	}
	if err := models.ValidateAll(out); err != nil {
		return nil, &FormatError{Err: err}
	}
	if out == nil {
		out = []models.Notification{}
	}
	return out, nil
}

func (c *HTTPClient) UpdateNotifications(ctx context.Context, action models.NotificationAction) error {
	r, err := c.do(ctx, http.MethodPut, c.notificationsURL+pathNotifications, "", action)
	if err != nil {
		return err
	}
	if !r.ok() {
		return &ServerError{Status: r.status, Message: r.errorMessage("Failed to update notification")}
	}
	return nil
}
