package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	mockUsecase "biolink/internal/mocks/usecase"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profileUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, profileUC
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	h, profileUC := createTestProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().
		UpdateProfile(mock.Anything, userID, &usecase.UpdateProfileInput{
			Username: strPtr("alice"),
			Bio:      strPtr("hello"),
		}).
		Return(&entity.Profile{UserID: userID, Username: "alice", Bio: "hello"}, nil).
		Once()

	c, rec := newContext(http.MethodPut, "/api/v1/profile", `{"username":"alice","bio":"hello"}`, &userID)
	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestProfileHandler_UpdateProfile_Validation(t *testing.T) {
	h, _ := createTestProfileHandler(t)
	userID := uuid.New()

	for _, body := range []string{`{"username":"a b"}`, `{"avatar_url":"not-a-url"}`, `{"username":`} {
		c, rec := newContext(http.MethodPut, "/api/v1/profile", body, &userID)
		require.NoError(t, h.UpdateProfile(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestProfileHandler_UpdateProfile_UsernameTaken(t *testing.T) {
	h, profileUC := createTestProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrUsernameTaken.WrapMessage("taken")).
		Once()

	c, rec := newContext(http.MethodPut, "/api/v1/profile", `{"username":"bob"}`, &userID)
	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", decodeEnvelope(t, rec).Error.Code)
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	h, profileUC := createTestProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(nil, domainerrors.ErrProfileNotFound.WrapMessage("profile not found")).
		Once()

	c, rec := newContext(http.MethodGet, "/api/v1/profile", "", &userID)
	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
