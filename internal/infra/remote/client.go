// Package remote implements domain.TaskService over the /todo HTTP resource.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/runoshun/todoboard/internal/domain"
)

// Ensure Client implements domain.TaskService.
var _ domain.TaskService = (*Client)(nil)

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

// Client talks to a /todo resource rooted at a base URL.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a Client for baseURL. A zero timeout means requests
// never time out on their own.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a Client sending requests through hc.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		http:    hc,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches GET /todo.
func (c *Client) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, "list", http.MethodGet, c.collectionURL(), nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Create sends POST /todo.
func (c *Client) Create(ctx context.Context, payload domain.TaskPayload) (domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, "create", http.MethodPost, c.collectionURL(), payload, &task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Update sends PUT /todo/{id}.
func (c *Client) Update(ctx context.Context, id string, payload domain.TaskPayload) (domain.Task, error) {
	if id == "" {
		return domain.Task{}, domain.ErrEmptyID
	}
	var task domain.Task
	if err := c.do(ctx, "update", http.MethodPut, c.itemURL(id), payload, &task); err != nil {
		return domain.Task{}, err
	}
	if task.ID == "" {
		task = payload.ToTask(id)
	}
	return task, nil
}

// Delete sends DELETE /todo/{id}. The acknowledgement body is ignored.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrEmptyID
	}
	return c.do(ctx, "delete", http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) collectionURL() string {
	return c.baseURL + "/todo"
}

func (c *Client) itemURL(id string) string {
	return c.baseURL + "/todo/" + url.PathEscape(id)
}

// do performs one request. body is JSON-encoded when non-nil; a 2xx
// response is decoded into out when out is non-nil. Every failure is
// returned as *domain.RemoteError.
func (c *Client) do(ctx context.Context, op, method, target string, body, out any) error {
	fail := func(err error, status int, respBody string) error {
		return &domain.RemoteError{
			Err:        err,
			Op:         op,
			Method:     method,
			URL:        target,
			Body:       respBody,
			StatusCode: status,
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(fmt.Errorf("encode request: %w", err), 0, "")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fail(err, 0, "")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fail(err, 0, "")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fail(nil, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fail(fmt.Errorf("decode response: %w", err), 0, "")
	}
	return nil
}
