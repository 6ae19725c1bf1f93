package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/runoshun/todoboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Method      string
	Path        string
	RawPath     string
	ContentType string
	Body        string
}

// newTestServer serves fixed responses and records the last request.
func newTestServer(t *testing.T, status int, respBody string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.RawPath = r.URL.EscapedPath()
		rec.ContentType = r.Header.Get("Content-Type")
		rec.Body = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClient_List(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`[{"_id":"1","heading":"Buy milk","description":"2L","status":"Pending"},
		  {"_id":"2","heading":"Walk dog","description":"","status":"Done"}]`)

	tasks, err := NewClient(srv.URL, 0).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/todo", rec.Path)
	assert.Equal(t, []domain.Task{
		{ID: "1", Heading: "Buy milk", Description: "2L", Status: "Pending"},
		{ID: "2", Heading: "Walk dog", Status: "Done"},
	}, tasks)
}

func TestClient_List_EmptyArray(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)

	tasks, err := NewClient(srv.URL, 0).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestClient_Create(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusCreated,
		`{"_id":"abc","heading":"A","description":"B","status":"Pending"}`)

	task, err := NewClient(srv.URL+"/", 0).Create(context.Background(),
		domain.TaskPayload{Heading: "A", Description: "B", Status: "Pending"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/todo", rec.Path)
	assert.Equal(t, "application/json", rec.ContentType)
	assert.JSONEq(t, `{"heading":"A","description":"B","status":"Pending"}`, rec.Body)
	assert.Equal(t, domain.Task{ID: "abc", Heading: "A", Description: "B", Status: "Pending"}, task)
}

func TestClient_Update(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK,
		`{"_id":"1","heading":"Buy milk","description":"2L","status":"Done"}`)

	task, err := NewClient(srv.URL, 0).Update(context.Background(), "1",
		domain.TaskPayload{Heading: "Buy milk", Description: "2L", Status: "Done"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/todo/1", rec.Path)
	assert.JSONEq(t, `{"heading":"Buy milk","description":"2L","status":"Done"}`, rec.Body)
	assert.Equal(t, "Done", task.Status)
}

func TestClient_Update_MessageOnlyResponse(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"message":"updated"}`)

	task, err := NewClient(srv.URL, 0).Update(context.Background(), "7",
		domain.TaskPayload{Heading: "H", Status: "Done"})
	require.NoError(t, err)
	assert.Equal(t, domain.Task{ID: "7", Heading: "H", Status: "Done"}, task)
}

func TestClient_Update_EscapesID(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{}`)

	_, err := NewClient(srv.URL, 0).Update(context.Background(), "a/b c", domain.TaskPayload{})
	require.NoError(t, err)
	assert.Equal(t, "/todo/a%2Fb%20c", rec.RawPath)
}

func TestClient_Delete(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"message":"Task deleted"}`)

	err := NewClient(srv.URL, 0).Delete(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/todo/42", rec.Path)
	assert.Empty(t, rec.Body)
}

func TestClient_EmptyID(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 0)

	_, err := c.Update(context.Background(), "", domain.TaskPayload{})
	assert.ErrorIs(t, err, domain.ErrEmptyID)

	err = c.Delete(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyID)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		call   func(c *Client) error
		status int
		op     string
		method string
	}{
		{
			name:   "list",
			status: http.StatusInternalServerError,
			op:     "list",
			method: http.MethodGet,
			call: func(c *Client) error {
				_, err := c.List(context.Background())
				return err
			},
		},
		{
			name:   "create",
			status: http.StatusBadRequest,
			op:     "create",
			method: http.MethodPost,
			call: func(c *Client) error {
				_, err := c.Create(context.Background(), domain.TaskPayload{})
				return err
			},
		},
		{
			name:   "update",
			status: http.StatusNotFound,
			op:     "update",
			method: http.MethodPut,
			call: func(c *Client) error {
				_, err := c.Update(context.Background(), "x", domain.TaskPayload{})
				return err
			},
		},
		{
			name:   "delete",
			status: http.StatusNotFound,
			op:     "delete",
			method: http.MethodDelete,
			call: func(c *Client) error {
				return c.Delete(context.Background(), "x")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, `{"error":"nope"}`)

			err := tt.call(NewClient(srv.URL, 0))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrRemoteCall)

			var remoteErr *domain.RemoteError
			require.True(t, errors.As(err, &remoteErr))
			assert.Equal(t, tt.op, remoteErr.Op)
			assert.Equal(t, tt.method, remoteErr.Method)
			assert.Equal(t, tt.status, remoteErr.StatusCode)
			assert.Equal(t, `{"error":"nope"}`, remoteErr.Body)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteCall)

	var remoteErr *domain.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Zero(t, remoteErr.StatusCode)
	assert.NotNil(t, remoteErr.Err)
}

func TestClient_MalformedResponse(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{not json`)

	_, err := NewClient(srv.URL, 0).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteCall)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	defer close(release)

	_, err := NewClient(srv.URL, 50*time.Millisecond).List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemoteCall)
}

func TestClient_CanceledContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, 0).List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrRemoteCall)
}

func TestClient_SendsAcceptHeader(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		_ = json.NewEncoder(w).Encode([]domain.Task{})
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, 0).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "application/json", accept)
}
