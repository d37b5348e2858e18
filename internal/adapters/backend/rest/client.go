// Package rest implements the remote journal platform port with a typed
// HTTP client. Success bodies are decoded leniently: the platform ships
// more fields than the domain model carries, and new upstream fields must
// not break existing fetches.
package rest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/imroc/req/v3"

	"github.com/insanmekan/journal_management_app/internal/apperrors"
	"github.com/insanmekan/journal_management_app/internal/core/ports/backend"
	"github.com/insanmekan/journal_management_app/internal/platform/config"
)

// Client talks to the journal platform's REST API. One instance serves all
// port interfaces.
type Client struct {
	http *req.Client
}

// New creates a client against cfg.BackendBaseURL.
func New(cfg *config.Config) *Client {
	httpClient := req.C().
		SetBaseURL(strings.TrimRight(cfg.BackendBaseURL, "/")).
		SetTimeout(cfg.BackendTimeout).
		SetUserAgent("jma-gateway/" + cfg.Version)
	if cfg.BackendDebug {
		httpClient.DevMode()
	}
	return &Client{http: httpClient}
}

// Provider exposes the client behind every port facade.
func (c *Client) Provider() backend.Provider {
	return backend.Provider{
		Auth:     c,
		Session:  c,
		Journals: c,
		Entries:  c,
		Users:    c,
		Settings: c,
		Search:   c,
	}
}

// Compile-time port checks.
var (
	_ backend.AuthAPI     = (*Client)(nil)
	_ backend.SessionAPI  = (*Client)(nil)
	_ backend.JournalAPI  = (*Client)(nil)
	_ backend.EntryAPI    = (*Client)(nil)
	_ backend.UserAPI     = (*Client)(nil)
	_ backend.SettingsAPI = (*Client)(nil)
	_ backend.SearchAPI   = (*Client)(nil)
)

// upstreamError is the platform's error envelope. Either field may carry
// the message depending on the endpoint.
type upstreamError struct {
	Detail  string `json:"detail"`
	Message string `json:"error"`
}

// request starts a request, attaching the bearer token when one is given.
func (c *Client) request(r *req.Request, token string) *req.Request {
	if token != "" {
		r.SetHeader("Authorization", "Bearer "+token)
	}
	return r
}

// decode maps transport and status failures onto the error taxonomy and
// unmarshals a success body into out. Unknown payload fields are dropped,
// not rejected; the platform's read schemas are wider than the domain
// model. A nil out skips the body.
func decode(resp *req.Response, err error, authed bool, out any) error {
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrBackendUnavailable, err)
	}
	if !resp.IsSuccessState() {
		return statusError(resp, authed)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", resp.Request.Method, resp.Request.RawURL, err)
	}
	return nil
}

// statusError translates an upstream failure status. Validation messages
// pass through verbatim so forms can show the platform's own wording.
func statusError(resp *req.Response, authed bool) error {
	var ue upstreamError
	_ = json.Unmarshal(resp.Bytes(), &ue)
	msg := ue.Detail
	if msg == "" {
		msg = ue.Message
	}

	switch resp.StatusCode {
	case 401:
		if authed {
			return apperrors.ErrSessionExpired
		}
		return apperrors.ErrUnauthorized
	case 403:
		return apperrors.ErrForbidden
	case 404:
		return apperrors.ErrNotFound
	case 400, 409, 422:
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
	default:
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", apperrors.ErrBackendUnavailable, msg)
	}
}
