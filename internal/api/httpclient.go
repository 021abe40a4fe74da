package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"gymcli/internal/common"
	"gymcli/internal/models"

	"github.com/google/uuid"
)

// maxErrorBody bounds how much of an error response is read when looking
// for a server-declared message.
const maxErrorBody = 1 << 16

// HTTPClient implements Client over plain HTTP/JSON.
//
// It holds the mutable default Authorization header: once a token is set via
// SetAuthToken, every request carries it until ClearAuthToken. Safe for
// concurrent use.
type HTTPClient struct {
	baseURL string
	hc      *http.Client

	mu        sync.RWMutex
	authToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

// SetAuthToken installs token as the default bearer credential.
func (c *HTTPClient) SetAuthToken(token string) {
	c.mu.Lock()
	c.authToken = token
	c.mu.Unlock()
}

// ClearAuthToken removes the default bearer credential.
func (c *HTTPClient) ClearAuthToken() {
	c.mu.Lock()
	c.authToken = ""
	c.mu.Unlock()
}

// AuthToken returns the currently installed bearer credential, "" when none.
func (c *HTTPClient) AuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authToken
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// Ping checks that the backend answers at all. Any HTTP response counts as
// alive, whatever the status; only transport failures map to ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp.Body.Close()
}

// do performs one JSON round-trip. body and out may be nil. Transport
// failures map to ErrUnavailable; error responses go through mapError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.AuthToken(); token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// mapError turns an error response into *Error when the server declared a
// message, or a sentinel for well-known transport-ish statuses.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return &Error{Status: resp.StatusCode, Message: payload.Message}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

func (c *HTTPClient) SignIn(ctx context.Context, email string, password string) (models.User, string, error) {
	req := map[string]string{"email": email, "password": password}

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/sessions", req, &resp); err != nil {
		return models.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, name string, email string, password string) error {
	req := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/users", req, nil)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, name string, password string, oldPassword string) error {
	req := map[string]string{"name": name}
	if password != "" {
		req["password"] = password
		req["old_password"] = oldPassword
	}
	return c.do(ctx, http.MethodPut, "/users", req, nil)
}

func (c *HTTPClient) Groups(ctx context.Context) ([]string, error) {
	var groups []string
	if err := c.do(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *HTTPClient) ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	path := "/exercises/bygroup/" + url.PathEscape(group)
	if err := c.do(ctx, http.MethodGet, path, nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *HTTPClient) Exercise(ctx context.Context, id string) (models.Exercise, error) {
	var exercise models.Exercise
	if err := c.do(ctx, http.MethodGet, "/exercises/"+url.PathEscape(id), nil, &exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (c *HTTPClient) RegisterHistory(ctx context.Context, exerciseID string) error {
	req := map[string]string{"exercise_id": exerciseID}
	return c.do(ctx, http.MethodPost, "/history", req, nil)
}

func (c *HTTPClient) History(ctx context.Context) ([]models.HistoryDay, error) {
	var days []models.HistoryDay
	if err := c.do(ctx, http.MethodGet, "/history", nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}
