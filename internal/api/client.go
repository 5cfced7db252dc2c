// Package api is the HTTP client for the attendance backend.
//
// Every endpoint responds with the same JSON envelope:
//
//	{"status": "success", "data": ..., "message": ...}
//
// The client branches exclusively on status == "success"; any other value,
// including an absent status, is a failure carrying the server-supplied
// message. Failures of that kind are returned as *ServerError so callers
// can distinguish them from transport errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// statusSuccess is the only envelope status value that counts as success.
const statusSuccess = "success"

// genericFailure is reported when a failure envelope carries no message.
const genericFailure = "the server reported a failure"

// ServerError is a non-success envelope returned by the backend, carrying
// the server-supplied message.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// Client consumes the attendance backend's JSON API. It holds no state
// beyond the base URL; every call is independent and carries a context.
// No client-side timeout is enforced: the transport's own limits are the
// only bound on failure latency.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// BaseURL returns the backend address the client was created with.
func (c *Client) BaseURL() string { return c.baseURL }

// FeedURL returns the address of the live video stream endpoint.
func (c *Client) FeedURL() string { return c.baseURL + "/video_feed" }

// envelope is the response wrapper every endpoint uses.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// failure converts a non-success envelope into a *ServerError.
func (e envelope) failure() error {
	msg := e.Message
	if msg == "" {
		msg = genericFailure
	}
	return &ServerError{Message: msg}
}

// ListUsers fetches the full directory of registered users with their
// current status. Row order follows the backend; the client does not sort.
// The users array sits beside the status field rather than inside data.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	body, err := c.get(ctx, "/users")
	if err != nil {
		return nil, err
	}
	var out struct {
		envelope
		Users []User `json:"users"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding user list: %w", err)
	}
	if out.Status != statusSuccess {
		return nil, out.failure()
	}
	return out.Users, nil
}

// Register creates a new employee record.
func (c *Client) Register(ctx context.Context, name, employeeID string) error {
	payload, err := json.Marshal(registerRequest{Name: name, EmployeeID: employeeID})
	if err != nil {
		return fmt.Errorf("encoding registration: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doEnvelope(req)
}

// DeleteAllUsers removes every registered user and all related data.
// Irreversible; callers are expected to confirm with the operator first.
func (c *Client) DeleteAllUsers(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/delete-all", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.doEnvelope(req)
}

// EmployeeStatus fetches the current status of a single employee.
func (c *Client) EmployeeStatus(ctx context.Context, employeeID string) (*StatusRecord, error) {
	body, err := c.get(ctx, "/status/"+url.PathEscape(employeeID))
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var rec StatusRecord
	if err := json.Unmarshal(env.Data, &rec); err != nil {
		return nil, fmt.Errorf("decoding status record: %w", err)
	}
	return &rec, nil
}

// DailyReport fetches the attendance report for one employee on the given
// ISO calendar date (YYYY-MM-DD).
func (c *Client) DailyReport(ctx context.Context, employeeID, date string) (*DailyReport, error) {
	path := "/reports/daily/" + url.PathEscape(employeeID) + "?date=" + url.QueryEscape(date)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var report DailyReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		return nil, fmt.Errorf("decoding daily report: %w", err)
	}
	return &report, nil
}

// WeeklyReport fetches the attendance report for one employee over the
// inclusive [start, end] date range (both YYYY-MM-DD).
func (c *Client) WeeklyReport(ctx context.Context, employeeID, start, end string) (*WeeklyReport, error) {
	query := url.Values{}
	query.Set("start_date", start)
	query.Set("end_date", end)
	path := "/reports/weekly/" + url.PathEscape(employeeID) + "?" + query.Encode()
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var report WeeklyReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		return nil, fmt.Errorf("decoding weekly report: %w", err)
	}
	return &report, nil
}

// get performs a GET request and returns the raw response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	return c.do(req)
}

// do executes a request and reads the body. The backend signals failure
// through the envelope, not the HTTP status code, so the code is ignored.
func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// doEnvelope executes a request whose response carries no data payload.
func (c *Client) doEnvelope(req *http.Request) error {
	body, err := c.do(req)
	if err != nil {
		return err
	}
	_, err = decodeEnvelope(body)
	return err
}

// decodeEnvelope parses the response wrapper and converts non-success
// envelopes into a *ServerError.
func decodeEnvelope(body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if env.Status != statusSuccess {
		return nil, env.failure()
	}
	return &env, nil
}
