package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Dayflow HRMS API is running", body["message"])
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		pinger   fakePinger
		code     int
		database string
	}{
		{"database up", fakePinger{}, http.StatusOK, "ok"},
		{"database down", fakePinger{err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.pinger)

			w := s.do(http.MethodGet, "/health", "", nil)
			assert.Equal(t, tt.code, w.Code)

			var body map[string]string
			decode(t, w, &body)
			assert.Equal(t, tt.database, body["database"])
		})
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
