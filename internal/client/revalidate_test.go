package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *RevalidateClient {
	c := NewRevalidateClient(url, "hook-secret")
	c.delay = time.Millisecond
	return c
}

func TestRevalidateClient_Revalidate(t *testing.T) {
	var got RevalidateRequest
	var secret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret = r.Header.Get(SecretHeader)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Revalidate(context.Background(), "/exam-1")

	require.NoError(t, err)
	assert.Equal(t, "/exam-1", got.Path)
	assert.Equal(t, "hook-secret", secret)
}

func TestRevalidateClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Revalidate(context.Background(), "/")

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRevalidateClient_ClientErrorIsFinal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Revalidate(context.Background(), "/")

	assert.ErrorContains(t, err, "status 401")
	assert.Equal(t, int32(1), calls.Load())
}
