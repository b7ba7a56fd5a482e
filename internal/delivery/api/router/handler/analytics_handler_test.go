package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"biolink/internal/domain/entity"
	mockUsecase "biolink/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_GetLinkStats(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantDays int
		wantCode int
	}{
		{name: "default window", query: "", wantDays: 0, wantCode: http.StatusOK},
		{name: "explicit window", query: "?days=7", wantDays: 7, wantCode: http.StatusOK},
		{name: "zero", query: "?days=0", wantCode: http.StatusBadRequest},
		{name: "not a number", query: "?days=week", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clickUC := mockUsecase.NewMockClickUsecase(t)
			h := NewAnalyticsHandler(AnalyticsHandlerParams{
				ClickUC: clickUC,
				Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			userID := uuid.New()

			if tt.wantCode == http.StatusOK {
				clickUC.EXPECT().GetLinkStats(mock.Anything, userID, tt.wantDays).
					Return([]*entity.LinkStats{{LinkID: uuid.New(), WindowTotal: 3}}, nil).
					Once()
			}

			c, rec := newContext(http.MethodGet, "/api/v1/analytics/links"+tt.query, "", &userID)
			require.NoError(t, h.GetLinkStats(c))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
