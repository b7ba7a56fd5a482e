package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"biolink/config"
	deliverycontext "biolink/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id kept", incoming: "edge-1234", keep: true},
		{name: "missing id generated", incoming: "", keep: false},
		{name: "unsafe id replaced", incoming: "bad id\t", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/p/alice", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, headerID, ctxID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				_, parseErr := uuid.Parse(headerID)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog bool
	}{
		{name: "success hidden outside debug", path: "/p/:username", status: http.StatusOK},
		{name: "success logged in debug", debug: true, path: "/p/:username", status: http.StatusOK, wantLog: true},
		{name: "server error always logged", path: "/api/v1/links/reorder", status: http.StatusServiceUnavailable, wantLog: true},
		{name: "health never logged", debug: true, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/p/alice", nil)
			userID := uuid.New()
			req = req.WithContext(deliverycontext.WithUserID(req.Context(), userID))
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath(tt.path)

			err := m.Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})(c)
			require.NoError(t, err)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), `"route":"`+tt.path+`"`)
			assert.Contains(t, buf.String(), userID.String())
			assert.NotContains(t, buf.String(), "/p/alice")
		})
	}
}
