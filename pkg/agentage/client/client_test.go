package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRequiresRegistry(t *testing.T) {
	_, err := New()
	require.Error(t, err)

	_, err = New(WithRegistry(""))
	require.Error(t, err)
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	t.Cleanup(server.Close)

	c, err := New(WithRegistry(server.URL), WithToken("tok-123"), WithUserAgent("agentage"))
	require.NoError(t, err)
	require.NoError(t, c.do(context.Background(), http.MethodGet, "api/agents", nil, nil))

	require.Equal(t, "application/json", got.Get("Accept"))
	require.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	require.Equal(t, "agentage", got.Get("User-Agent"))
	require.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	t.Cleanup(server.Close)

	c, err := New(WithRegistry(server.URL))
	require.NoError(t, err)
	require.NoError(t, c.do(context.Background(), http.MethodGet, "api/agents", nil, nil))
	require.Empty(t, got.Get("Authorization"))
}

func TestBaseURLPathIsPreserved(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	t.Cleanup(server.Close)

	c, err := New(WithRegistry(server.URL + "/registry"))
	require.NoError(t, err)
	require.NoError(t, c.do(context.Background(), http.MethodGet, "api/agents", nil, nil))
	require.Equal(t, "/registry/api/agents", gotPath)
}

func TestDecodeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":             "validation_failed",
			"error_description": "manifest is invalid",
			"details":           map[string]string{"name": "is required"},
		})
	}))
	t.Cleanup(server.Close)

	c, err := New(WithRegistry(server.URL))
	require.NoError(t, err)

	err = c.do(context.Background(), http.MethodPost, "api/agents", map[string]string{}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Equal(t, "validation_failed", apiErr.Code)
	require.Equal(t, "manifest is invalid", apiErr.Message)
	require.Equal(t, "is required", apiErr.Details["name"])
	require.Contains(t, apiErr.Error(), "422")
}

func TestDecodeAPIErrorPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	t.Cleanup(server.Close)

	c, err := New(WithRegistry(server.URL))
	require.NoError(t, err)

	err = c.do(context.Background(), http.MethodGet, "api/agents", nil, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "upstream unavailable", apiErr.Message)
}
