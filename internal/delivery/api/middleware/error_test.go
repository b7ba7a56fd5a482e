package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "biolink/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: domainerrors.ErrLinkNotFound.WrapMessage("gone"), wantStatus: http.StatusNotFound, wantCode: "LINK_NOT_FOUND"},
		{name: "partial reorder", err: domainerrors.NewPartialReorderError(3, 1, errors.New("timeout")), wantStatus: http.StatusServiceUnavailable, wantCode: "REORDER_PARTIAL"},
		{name: "method not allowed", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), wantStatus: http.StatusMethodNotAllowed, wantCode: "METHOD_NOT_ALLOWED"},
		{name: "unknown route", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "ROUTE_NOT_FOUND"},
		{name: "body too large", err: echo.ErrStatusRequestEntityTooLarge, wantStatus: http.StatusRequestEntityTooLarge, wantCode: "PAYLOAD_TOO_LARGE"},
		{name: "other echo error", err: echo.NewHTTPError(http.StatusTooManyRequests), wantStatus: http.StatusTooManyRequests, wantCode: "HTTP_ERROR"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Details any    `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Nil(t, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/l/abc", nil), rec)
	require.NoError(t, c.Redirect(http.StatusFound, "https://example.com"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
