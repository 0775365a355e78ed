package addresslookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestOutwardCode(t *testing.T) {
	tests := []struct {
		postcode string
		want     string
	}{
		{"SW1A 1AA", "SW1A"},
		{"sw1a1aa", "SW1A"},
		{"BS1 4ST", "BS1"},
		{"BS14ST", "BS1"},
		{"BS1", "BS1"}, // partial postcode passes through
		{" m1 1ae ", "M1"},
	}

	for _, tt := range tests {
		t.Run(tt.postcode, func(t *testing.T) {
			assert.Equal(t, tt.want, OutwardCode(tt.postcode))
		})
	}
}

func TestClient_Covered(t *testing.T) {
	c := NewClient("http://example", "key", time.Second, []string{"BS1", "BS2", "ba"}, noopLogger{})

	assert.True(t, c.Covered("BS1 4ST"))
	assert.True(t, c.Covered("bs2 0fj"))
	// BA falls back to the letter-only area code.
	assert.True(t, c.Covered("BA2 7AY"))
	assert.False(t, c.Covered("SW1A 1AA"))
}

func TestClient_Lookup(t *testing.T) {
	t.Run("returns candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"addresses":[{"line_1":"12 Harbour View","post_town":"Bristol","postcode":"BS1 4ST"}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "key", time.Second, []string{"BS1"}, noopLogger{})

		candidates, err := c.Lookup(context.Background(), "BS1 4ST")
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "12 Harbour View", candidates[0].Line1)
		assert.Equal(t, "Bristol", candidates[0].Town)
	})

	t.Run("status codes map to sentinel errors", func(t *testing.T) {
		tests := []struct {
			status int
			want   error
		}{
			{http.StatusNotFound, ErrNotFound},
			{http.StatusTooManyRequests, ErrRateLimited},
			{http.StatusUnauthorized, ErrUnauthorized},
			{http.StatusForbidden, ErrUnauthorized},
			{http.StatusBadGateway, ErrInvalidResponse},
		}

		for _, tt := range tests {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			c := NewClient(srv.URL, "key", time.Second, []string{"BS1"}, noopLogger{})
			_, err := c.Lookup(context.Background(), "BS1 4ST")
			assert.ErrorIs(t, err, tt.want, "status %d", tt.status)

			srv.Close()
		}
	})

	t.Run("empty address list is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"addresses":[]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "key", time.Second, []string{"BS1"}, noopLogger{})
		_, err := c.Lookup(context.Background(), "BS1 4ST")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("outside coverage short-circuits", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "key", time.Second, []string{"BS1"}, noopLogger{})
		_, err := c.Lookup(context.Background(), "SW1A 1AA")

		assert.ErrorIs(t, err, ErrOutsideCoverage)
		assert.False(t, called, "provider must not be called outside coverage")
	})

	t.Run("empty postcode rejected", func(t *testing.T) {
		c := NewClient("http://example", "key", time.Second, []string{"BS1"}, noopLogger{})
		_, err := c.Lookup(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidPostcode)
	})
}
