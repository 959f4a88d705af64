package llmclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-assistant/model"
)

func TestCompleteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":"hola","usage":{"total_tokens":12}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	resp, err := client.Complete(context.Background(), model.CompletionRequest{Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "hola", resp.Content)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 12, resp.Usage.TotalTokens)
}

func TestCompleteStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusNotFound, ErrUnavailable},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		client := NewClient(srv.URL, "")
		_, err := client.Complete(context.Background(), model.CompletionRequest{Message: "x"})
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)

		srv.Close()
	}
}

func TestCompleteUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Complete(context.Background(), model.CompletionRequest{Message: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestCompleteMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.Complete(context.Background(), model.CompletionRequest{Message: "x"})
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestCompleteHonorsContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, "")
	_, err := client.Complete(ctx, model.CompletionRequest{Message: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
