package impl

import (
	"context"
	"testing"

	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/repository"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *storeFixtures) {
	f := newStoreFixtures(t)
	service := NewProfileService(ProfileServiceParams{
		TxManager: f.txManager,
		Cache:     f.cache,
		Logger:    f.logger,
	})

	return service, f
}

func TestProfileService_GetProfile(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "found"},
		{name: "not found", repoErr: repository.ErrProfileNotFound, wantErr: domainerrors.ErrProfileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, f := createTestProfileService(t)
			ctx := context.Background()
			userID := uuid.New()

			if tt.repoErr != nil {
				f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, tt.repoErr).Once()
			} else {
				f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(&entity.Profile{UserID: userID, Username: "alice"}, nil).Once()
			}

			profile, err := service.GetProfile(ctx, userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "alice", profile.Username)
		})
	}
}

func TestProfileService_UpdateProfile_CreatesOnFirstSave(t *testing.T) {
	service, f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()
	f.profileRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, userID, profile.UserID)
			assert.Equal(t, "alice", profile.Username)
		}).
		Return(nil).
		Once()
	f.cache.EXPECT().Invalidate(ctx, "alice").Return(nil).Once()

	profile, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Username:    strPtr("  alice "),
		DisplayName: strPtr("Alice"),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice", profile.DisplayName)
}

func TestProfileService_UpdateProfile_RequiresUsernameToCreate(t *testing.T) {
	service, f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()

	_, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Bio: strPtr("hi")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	f.profileRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_RenameInvalidatesBothPages(t *testing.T) {
	service, f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Profile{UserID: userID, Username: "alice", Bio: "old", ButtonStyle: strPtr("pill")}

	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(existing, nil).Once()
	f.profileRepo.EXPECT().UpdateProfile(ctx, existing).Return(nil).Once()
	f.cache.EXPECT().Invalidate(ctx, "alice").Return(nil).Once()
	f.cache.EXPECT().Invalidate(ctx, "alicia").Return(errors.New("redis down")).Once()

	profile, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Username: strPtr("alicia")})
	require.NoError(t, err)
	assert.Equal(t, "alicia", profile.Username)
	assert.Equal(t, "old", profile.Bio, "nil fields are kept")
	assert.Equal(t, "pill", *profile.ButtonStyle)
}

func TestProfileService_UpdateProfile_UsernameTaken(t *testing.T) {
	service, f := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.profileRepo.EXPECT().GetProfile(ctx, userID).Return(&entity.Profile{UserID: userID, Username: "alice"}, nil).Once()
	f.profileRepo.EXPECT().UpdateProfile(ctx, mock.Anything).Return(repository.ErrUsernameTaken).Once()

	_, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Username: strPtr("bob")})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestProfileService_UpdateProfile_UnknownTemplate(t *testing.T) {
	service, f := createTestProfileService(t)

	_, err := service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{TemplateID: strPtr("vaporwave")})
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
