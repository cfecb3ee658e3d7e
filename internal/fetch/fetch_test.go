package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "covidstats-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><table></table></body></html>"))
	}))
	defer srv.Close()

	c := New("covidstats-test", 2*time.Second)
	body, err := c.Page(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, string(body), "<table>")
}

func TestPage_RejectsNonHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New("covidstats-test", 2*time.Second)
	_, err := c.Page(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrFetch)
}

func TestPage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New("covidstats-test", 2*time.Second)
	_, err := c.Page(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrFetch)
}

func TestJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"date":"2020-10-12","newCases":80}]}`))
	}))
	defer srv.Close()

	c := New("covidstats-test", 2*time.Second)
	body, err := c.JSON(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, string(body), "newCases")
}

func TestJSON_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := New("covidstats-test", 2*time.Second)
	_, err := c.JSON(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrFetch)
}
