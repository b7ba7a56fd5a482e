package impl

import (
	"context"
	"testing"

	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/repository"
	"biolink/internal/domain/style"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestStyleService(t *testing.T) (usecase.StyleUsecase, *storeFixtures) {
	f := newStoreFixtures(t)
	service := NewStyleService(StyleServiceParams{
		TxManager: f.txManager,
		Cache:     f.cache,
		Logger:    f.logger,
	})

	return service, f
}

func TestStyleService_ListTemplates(t *testing.T) {
	service, _ := createTestStyleService(t)

	templates := service.ListTemplates()
	require.NotEmpty(t, templates)
	assert.Equal(t, style.Templates(), templates)
}

func TestStyleService_GetTemplateOverride_EmptyWhenNeverCustomized(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).Return(nil, repository.ErrTemplateOverrideNotFound).Once()

	override, err := service.GetTemplateOverride(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, &entity.UserTemplateOverride{UserID: userID}, override)
}

func TestStyleService_UpdateTemplateOverride_UpdatesInPlace(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.UserTemplateOverride{UserID: userID, FontFamily: strPtr("inter")}

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).Return(stored, nil).Once()
	f.templateRepo.EXPECT().UpsertUserTemplateOverride(ctx, stored).Return(nil).Once()
	expectPageInvalidation(f, userID, "alice")

	override, err := service.UpdateTemplateOverride(ctx, userID, &usecase.TemplateOverrideInput{
		TemplateID:  strPtr(style.TemplateCustom),
		ButtonStyle: strPtr("pill"),
	})
	require.NoError(t, err)
	assert.Same(t, stored, override)
	assert.Equal(t, "inter", *override.FontFamily)
	assert.Equal(t, "pill", *override.ButtonStyle)
	assert.Equal(t, style.TemplateCustom, *override.TemplateID)
}

func TestStyleService_UpdateTemplateOverride_CreatesOnFirstCustomization(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).Return(nil, repository.ErrTemplateOverrideNotFound).Once()
	f.templateRepo.EXPECT().
		UpsertUserTemplateOverride(ctx, mock.AnythingOfType("*entity.UserTemplateOverride")).
		Return(nil).
		Once()
	// A user without a profile has no page to drop.
	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	override, err := service.UpdateTemplateOverride(ctx, userID, &usecase.TemplateOverrideInput{ThemeColor: strPtr("green")})
	require.NoError(t, err)
	assert.Equal(t, userID, override.UserID)
	assert.Equal(t, "green", *override.ThemeColor)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestStyleService_UpdateTemplateOverride_UnknownTemplate(t *testing.T) {
	service, _ := createTestStyleService(t)

	_, err := service.UpdateTemplateOverride(context.Background(), uuid.New(), &usecase.TemplateOverrideInput{
		TemplateID: strPtr("vaporwave"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestStyleService_GetEffectiveStyle_OverrideBeatsProfile(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).
		Return(&entity.UserTemplateOverride{UserID: userID, ButtonStyle: strPtr("rounded")}, nil).Once()
	f.profileRepo.EXPECT().GetProfile(ctx, userID).
		Return(&entity.Profile{UserID: userID, TemplateID: "elegant-dark", ButtonStyle: strPtr("outline")}, nil).Once()

	got, err := service.GetEffectiveStyle(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "elegant-dark", got.TemplateID)
	assert.Equal(t, "rounded", got.Button.Style)
}

func TestStyleService_GetEffectiveStyle_NoStoredLayers(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).Return(nil, repository.ErrTemplateOverrideNotFound).Once()
	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	got, err := service.GetEffectiveStyle(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, style.ResolveFor(style.Layers{}), *got)
}

func TestStyleService_PreviewTemplate(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).
		Return(&entity.UserTemplateOverride{UserID: userID, TemplateID: strPtr(style.TemplateDefault)}, nil).Once()
	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	got, err := service.PreviewTemplate(ctx, userID, "elegant-dark")
	require.NoError(t, err)
	assert.Equal(t, "elegant-dark", got.TemplateID, "candidate replaces the stored selection")
}

func TestStyleService_PreviewTemplate_Unknown(t *testing.T) {
	service, f := createTestStyleService(t)

	_, err := service.PreviewTemplate(context.Background(), uuid.New(), "vaporwave")
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestStyleService_PreviewDraft_DraftWins(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).
		Return(&entity.UserTemplateOverride{UserID: userID, FontFamily: strPtr("inter")}, nil).Once()
	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	got, err := service.PreviewDraft(ctx, userID, &entity.StyleDraft{FontFamily: strPtr("lora")})
	require.NoError(t, err)
	assert.Equal(t, "lora", got.Font.Family)
}

func TestStyleService_PreviewDraft_UnknownTemplate(t *testing.T) {
	service, f := createTestStyleService(t)

	_, err := service.PreviewDraft(context.Background(), uuid.New(), &entity.StyleDraft{TemplateID: strPtr("vaporwave")})
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestStyleService_PreviewDraft_BlankTemplateKeepsStoredSelection(t *testing.T) {
	service, f := createTestStyleService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.templateRepo.EXPECT().GetUserTemplateOverride(ctx, userID).
		Return(&entity.UserTemplateOverride{UserID: userID, TemplateID: strPtr("elegant-dark")}, nil).Once()
	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	got, err := service.PreviewDraft(ctx, userID, &entity.StyleDraft{TemplateID: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "elegant-dark", got.TemplateID)
}
