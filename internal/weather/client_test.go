package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", time.Second)
	c.baseURL = srv.URL
	return c
}

func TestTemperatureOK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Москва", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"main":{"temp":27.3}}`))
	})

	temp, ok := c.Temperature(context.Background(), "Москва")
	require.True(t, ok)
	assert.Equal(t, 27.3, temp)
}

func TestTemperatureAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, ok := c.Temperature(context.Background(), "Москва")
	assert.False(t, ok)
}

func TestTemperatureBadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, ok := c.Temperature(context.Background(), "Москва")
	assert.False(t, ok)
}

func TestTemperatureUnreachable(t *testing.T) {
	c := NewClient("test-key", 100*time.Millisecond)
	c.baseURL = "http://127.0.0.1:1"

	_, ok := c.Temperature(context.Background(), "Москва")
	assert.False(t, ok)
}
