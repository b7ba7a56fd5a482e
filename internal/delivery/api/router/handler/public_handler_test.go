package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"biolink/internal/delivery/api/response"
	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	mockUsecase "biolink/internal/mocks/usecase"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPublicHandler(t *testing.T) (*PublicHandler, *mockUsecase.MockPublicPageUsecase, *mockUsecase.MockClickUsecase) {
	pageUC := mockUsecase.NewMockPublicPageUsecase(t)
	clickUC := mockUsecase.NewMockClickUsecase(t)
	h := NewPublicHandler(PublicHandlerParams{
		PublicPageUC: pageUC,
		ClickUC:      clickUC,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, pageUC, clickUC
}

func TestPublicHandler_RedirectLink(t *testing.T) {
	h, _, clickUC := createTestPublicHandler(t)
	linkID := uuid.New()

	clickUC.EXPECT().
		TrackClick(mock.Anything, linkID, mock.AnythingOfType("*usecase.ClickInput")).
		Run(func(_ context.Context, _ uuid.UUID, input *usecase.ClickInput) {
			assert.Equal(t, "https://instagram.com", input.Referrer)
			assert.NotEmpty(t, input.ClientIP)
		}).
		Return("https://example.com/shop", nil).
		Once()

	c, rec := newContext(http.MethodGet, "/l/"+linkID.String(), "", nil)
	c.Request().Header.Set("Referer", "https://instagram.com")
	c.SetParamNames("id")
	c.SetParamValues(linkID.String())
	require.NoError(t, h.RedirectLink(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/shop", rec.Header().Get("Location"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestPublicHandler_RedirectLink_NotFound(t *testing.T) {
	h, _, clickUC := createTestPublicHandler(t)
	linkID := uuid.New()

	clickUC.EXPECT().
		TrackClick(mock.Anything, linkID, mock.Anything).
		Return("", domainerrors.ErrLinkNotFound.WrapMessage("link not found")).
		Once()

	c, rec := newContext(http.MethodGet, "/l/"+linkID.String(), "", nil)
	c.SetParamNames("id")
	c.SetParamValues(linkID.String())
	require.NoError(t, h.RedirectLink(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicHandler_RedirectLink_MalformedID(t *testing.T) {
	h, _, _ := createTestPublicHandler(t)

	c, rec := newContext(http.MethodGet, "/l/xyz", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("xyz")
	require.NoError(t, h.RedirectLink(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicHandler_GetPublicPage(t *testing.T) {
	h, pageUC, _ := createTestPublicHandler(t)

	pageUC.EXPECT().GetPublicPage(mock.Anything, "alice").
		Return(&entity.PublicPage{Username: "alice", Style: entity.EffectiveStyle{TemplateID: "default"}}, nil).
		Once()

	c, rec := newContext(http.MethodGet, "/p/alice", "", nil)
	c.SetParamNames("username")
	c.SetParamValues("alice")
	require.NoError(t, h.GetPublicPage(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"template_id":"default"`)
}

func TestPublicHandler_GetPublicQRCode(t *testing.T) {
	h, pageUC, _ := createTestPublicHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	pageUC.EXPECT().GetPublicQRCode(mock.Anything, "alice").Return(png, nil).Once()

	c, rec := newContext(http.MethodGet, "/p/alice/qr", "", nil)
	c.SetParamNames("username")
	c.SetParamValues("alice")
	require.NoError(t, h.GetPublicQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
	assert.Equal(t, response.CachePublicQRCode, rec.Header().Get("Cache-Control"))
}

func TestPublicHandler_GetOwnQRCode_NoProfile(t *testing.T) {
	h, pageUC, _ := createTestPublicHandler(t)
	userID := uuid.New()

	pageUC.EXPECT().GetOwnQRCode(mock.Anything, userID).Return(nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found")).Once()

	c, rec := newContext(http.MethodGet, "/api/v1/qr", "", &userID)
	require.NoError(t, h.GetOwnQRCode(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
