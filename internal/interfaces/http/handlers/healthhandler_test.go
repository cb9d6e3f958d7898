package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbnu/subscribe-service/internal/interfaces/http/handlers/testutil"
)

func TestHealthHandler(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	tests := []struct {
		name   string
		db     Pinger
		redis  Pinger
		status int
		want   string
	}{
		{"database only", ok, nil, http.StatusOK, `"status":"healthy"`},
		{"with redis", ok, ok, http.StatusOK, `"redis":"ok"`},
		{"redis down", ok, down, http.StatusServiceUnavailable, `"status":"unhealthy"`},
		{"database down", down, nil, http.StatusServiceUnavailable, "dial tcp: refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
			NewHealthHandler(tt.db, tt.redis).Health(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}
