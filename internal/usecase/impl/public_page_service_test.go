package impl

import (
	"context"
	"testing"

	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/repository"
	"biolink/internal/domain/service"
	mockService "biolink/internal/mocks/service"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPublicPageService(t *testing.T) (usecase.PublicPageUsecase, *storeFixtures, *mockService.MockQRCodeService) {
	f := newStoreFixtures(t)
	qr := mockService.NewMockQRCodeService(t)
	svc := NewPublicPageService(PublicPageServiceParams{
		TxManager:     f.txManager,
		Cache:         f.cache,
		QRCodeService: qr,
		Logger:        f.logger,
	})

	return svc, f, qr
}

func TestPublicPageService_GetPublicPage_CacheHit(t *testing.T) {
	svc, f, _ := createTestPublicPageService(t)
	ctx := context.Background()
	cached := &entity.PublicPage{Username: "alice"}

	f.cache.EXPECT().Get(ctx, "alice").Return(cached, nil).Once()

	page, err := svc.GetPublicPage(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, cached, page)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPublicPageService_GetPublicPage_BuildsOnMiss(t *testing.T) {
	tests := []struct {
		name     string
		cacheErr error
		setErr   error
	}{
		{name: "miss", cacheErr: service.ErrCacheMiss},
		{name: "cache unavailable", cacheErr: errors.New("dial tcp: refused"), setErr: errors.New("dial tcp: refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, f, _ := createTestPublicPageService(t)
			ctx := context.Background()
			userID := uuid.New()
			profile := &entity.Profile{UserID: userID, Username: "alice", DisplayName: "Alice", TemplateID: "elegant-dark"}
			links := testLinks(userID, "Second", 4, "First", 1)

			f.cache.EXPECT().Get(ctx, "alice").Return(nil, tt.cacheErr).Once()
			f.cache.EXPECT().Generation(ctx, "alice").Return(int64(2), nil).Once()
			f.profileRepo.EXPECT().GetProfileByUsername(ctx, "alice").Return(profile, nil).Once()
			f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).Return(nil, repository.ErrTemplateOverrideNotFound).Once()
			f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(links, nil).Once()
			f.cache.EXPECT().Set(ctx, mock.AnythingOfType("*entity.PublicPage"), int64(2)).Return(tt.setErr).Once()

			page, err := svc.GetPublicPage(ctx, "alice")
			require.NoError(t, err)

			assert.Equal(t, "Alice", page.DisplayName)
			assert.Equal(t, "elegant-dark", page.Style.TemplateID)
			require.Len(t, page.Links, 2)
			assert.Equal(t, "First", page.Links[0].Title)
			assert.Equal(t, "Second", page.Links[1].Title)
		})
	}
}

func TestPublicPageService_GetPublicPage_NotFound(t *testing.T) {
	svc, f, _ := createTestPublicPageService(t)
	ctx := context.Background()

	f.cache.EXPECT().Get(ctx, "ghost").Return(nil, service.ErrCacheMiss).Once()
	f.cache.EXPECT().Generation(ctx, "ghost").Return(int64(0), nil).Once()
	f.profileRepo.EXPECT().GetProfileByUsername(ctx, "ghost").Return(nil, repository.ErrProfileNotFound).Once()

	page, err := svc.GetPublicPage(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, page)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublicPageService_GetPublicPage_InvalidatedDuringBuild(t *testing.T) {
	svc, f, _ := createTestPublicPageService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{UserID: userID, Username: "alice", DisplayName: "Alice"}

	f.cache.EXPECT().Get(ctx, "alice").Return(nil, service.ErrCacheMiss).Once()
	f.cache.EXPECT().Generation(ctx, "alice").Return(int64(5), nil).Once()
	f.profileRepo.EXPECT().GetProfileByUsername(ctx, "alice").Return(profile, nil).Once()
	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).Return(nil, repository.ErrTemplateOverrideNotFound).Once()
	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(nil, nil).Once()
	// A link edit invalidated alice while the page was being built
	f.cache.EXPECT().Set(ctx, mock.AnythingOfType("*entity.PublicPage"), int64(5)).Return(service.ErrCacheStale).Once()

	page, err := svc.GetPublicPage(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", page.DisplayName)
}

func TestPublicPageService_GetPublicPage_GenerationUnavailableSkipsWrite(t *testing.T) {
	svc, f, _ := createTestPublicPageService(t)
	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{UserID: userID, Username: "alice", DisplayName: "Alice"}

	f.cache.EXPECT().Get(ctx, "alice").Return(nil, errors.New("dial tcp: refused")).Once()
	f.cache.EXPECT().Generation(ctx, "alice").Return(int64(0), errors.New("dial tcp: refused")).Once()
	f.profileRepo.EXPECT().GetProfileByUsername(ctx, "alice").Return(profile, nil).Once()
	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).Return(nil, repository.ErrTemplateOverrideNotFound).Once()
	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(nil, nil).Once()

	page, err := svc.GetPublicPage(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", page.Username)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublicPageService_GetPublicQRCode(t *testing.T) {
	svc, f, qr := createTestPublicPageService(t)
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	f.profileRepo.EXPECT().GetProfileByUsername(ctx, "alice").Return(&entity.Profile{Username: "alice"}, nil).Once()
	qr.EXPECT().GenerateProfileQR("alice").Return(png, nil).Once()

	got, err := svc.GetPublicQRCode(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPublicPageService_GetOwnQRCode_GenerationFails(t *testing.T) {
	svc, f, qr := createTestPublicPageService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(&entity.Profile{UserID: userID, Username: "alice"}, nil).Once()
	qr.EXPECT().GenerateProfileQR("alice").Return(nil, errors.New("content too long")).Once()

	_, err := svc.GetOwnQRCode(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrQRCodeGenerationFailed)
}

func TestPublicPageService_GetOwnQRCode_NoProfile(t *testing.T) {
	svc, f, _ := createTestPublicPageService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	_, err := svc.GetOwnQRCode(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
