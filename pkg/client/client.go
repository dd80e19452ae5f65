// Package client is the Go counterpart of the mobile app's API layer: typed
// calls for every route plus the on-device session.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

var (
	// ErrUnreachable wraps transport failures: the server was never heard from.
	ErrUnreachable = errors.New("cannot reach server")
	// ErrAdminRequired is returned when an admin-only action meets a standard user.
	ErrAdminRequired = errors.New("administrator access required")
	// ErrNotAuthenticated is returned when a call needs a session and none is set.
	ErrNotAuthenticated = errors.New("not signed in")
)

// APIError is a request the server answered and rejected.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client talks to the campus API and keeps its session in a SessionManager.
type Client struct {
	resty   *resty.Client
	session *SessionManager
}

type Option func(*Client)

// WithHTTPClient sends requests through hc instead of the default client with a 15s timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.resty.BaseURL
		c.resty = newResty(resty.NewWithClient(hc), base)
	}
}

func New(baseURL string, session *SessionManager, opts ...Option) *Client {
	c := &Client{
		resty:   newResty(resty.New().SetTimeout(defaultTimeout), strings.TrimRight(baseURL, "/")),
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newResty(rc *resty.Client, baseURL string) *resty.Client {
	return rc.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
}

// Session returns the session manager backing c.
func (c *Client) Session() *SessionManager {
	return c.session
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Register creates a standard account and stores the returned session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, body, &out, false); err != nil {
		return nil, err
	}
	if err := c.session.Set(ctx, out.User, out.Token); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login signs in and stores the returned session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	out, err := c.login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.session.Set(ctx, out.User, out.Token); err != nil {
		return nil, err
	}
	return out, nil
}

// LoginAdmin signs in for the admin dashboard. A standard account gets
// ErrAdminRequired and no session is stored.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (*AuthResponse, error) {
	out, err := c.login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !out.User.IsAdmin {
		return nil, ErrAdminRequired
	}
	if err := c.session.Set(ctx, out.User, out.Token); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout forgets the stored session. Tokens are stateless, so the server is not called.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// Health calls GET /api/auth/health.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/health", nil, nil, nil, false)
}

// ── Content ───────────────────────────────────────────────────────────────────

// Feed returns the public posts feed shown on the home screen.
func (c *Client) Feed(ctx context.Context) ([]Content, error) {
	var out []Content
	if err := c.do(ctx, http.MethodGet, "/api/users/posts", nil, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) List(ctx context.Context, kind Kind) ([]Content, error) {
	var out []Content
	if err := c.do(ctx, http.MethodGet, "/api/admin/"+string(kind), nil, nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetInternship(ctx context.Context, id string) (*Content, error) {
	var out Content
	if err := c.do(ctx, http.MethodGet, "/api/admin/internships/"+url.PathEscape(id), nil, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, kind Kind, req ContentRequest) (*Content, error) {
	var out Content
	if err := c.do(ctx, http.MethodPost, "/api/admin/"+string(kind), nil, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInternship(ctx context.Context, id string, req ContentRequest) (*Content, error) {
	var out Content
	if err := c.do(ctx, http.MethodPut, "/api/admin/internships/"+url.PathEscape(id), nil, req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, kind Kind, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/"+string(kind)+"/"+url.PathEscape(id), nil, nil, nil, true)
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Locations ─────────────────────────────────────────────────────────────────

func (c *Client) Locations(ctx context.Context, q LocationQuery) (*LocationList, error) {
	params := url.Values{}
	if q.Text != "" {
		params.Set("q", q.Text)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Origin != nil {
		params.Set("lat", strconv.FormatFloat(q.Origin.Lat, 'f', -1, 64))
		params.Set("lng", strconv.FormatFloat(q.Origin.Lng, 'f', -1, 64))
	}
	if q.RadiusKm > 0 {
		params.Set("radius_km", strconv.FormatFloat(q.RadiusKm, 'f', -1, 64))
	}
	if q.Nearby {
		params.Set("view", "nearby")
	}

	var out LocationList
	if err := c.do(ctx, http.MethodGet, "/api/locations", params, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Location(ctx context.Context, id string) (*Location, error) {
	var out Location
	if err := c.do(ctx, http.MethodGet, "/api/locations/"+url.PathEscape(id), nil, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LocationCategories(ctx context.Context) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/locations/categories", nil, nil, &out, false); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// ── Transport ─────────────────────────────────────────────────────────────────

// errorEnvelope is the {"error": "..."} body every API failure carries.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any, auth bool) error {
	req := c.resty.R().
		SetContext(ctx).
		SetError(&errorEnvelope{})
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if in != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(in)
	}
	if out != nil {
		req.SetResult(out)
	}
	if auth {
		token := c.session.Token()
		if token == "" {
			return ErrNotAuthenticated
		}
		req.SetAuthToken(token)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if resp == nil || resp.RawResponse == nil {
			return fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		if !resp.IsError() {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

func apiError(resp *resty.Response) error {
	apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	if envelope, ok := resp.Error().(*errorEnvelope); ok && envelope.Error != "" {
		apiErr.Message = envelope.Error
	}
	return apiErr
}
