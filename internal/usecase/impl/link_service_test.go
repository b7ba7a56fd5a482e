package impl

import (
	"context"
	"testing"

	"biolink/internal/domain/entity"
	domainerrors "biolink/internal/domain/errors"
	"biolink/internal/domain/linkorder"
	"biolink/internal/domain/repository"
	"biolink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLinkService(t *testing.T) (usecase.LinkUsecase, *storeFixtures) {
	f := newStoreFixtures(t)
	service := NewLinkService(LinkServiceParams{
		TxManager: f.txManager,
		Cache:     f.cache,
		Logger:    f.logger,
	})

	return service, f
}

func testLinks(userID uuid.UUID, pairs ...any) []*entity.Link {
	links := make([]*entity.Link, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		links = append(links, &entity.Link{
			ID:       uuid.New(),
			UserID:   userID,
			Title:    pairs[i].(string),
			Position: pairs[i+1].(int),
			Details:  entity.GeneralDetails{},
		})
	}

	return links
}

func expectPageInvalidation(f *storeFixtures, userID uuid.UUID, username string) {
	f.profileRepo.EXPECT().GetProfile(mock.Anything, userID).Return(&entity.Profile{UserID: userID, Username: username}, nil)
	f.cache.EXPECT().Invalidate(mock.Anything, username).Return(nil)
}

func linkTitles(links []*entity.Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Title)
	}

	return out
}

func TestLinkService_ReorderLinks_Success(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	links := testLinks(userID, "A", 5, "B", 9, "C", 1)
	// Store order is by position: C(1), A(5), B(9)
	stored := []*entity.Link{links[2], links[0], links[1]}

	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(stored, nil).Once()
	f.linkRepo.EXPECT().UpdateLinkPosition(ctx, userID, links[0].ID, 0).Return(nil).Once()
	f.linkRepo.EXPECT().UpdateLinkPosition(ctx, userID, links[1].ID, 1).Return(nil).Once()
	f.linkRepo.EXPECT().UpdateLinkPosition(ctx, userID, links[2].ID, 2).Return(nil).Once()
	expectPageInvalidation(f, userID, "alice")

	result, err := service.ReorderLinks(ctx, userID, &usecase.ReorderInput{SourceIndex: 0, DestinationIndex: 2})
	require.NoError(t, err)

	assert.True(t, result.Persisted)
	assert.False(t, result.Reverted)
	assert.Equal(t, linkorder.StateStable, result.State)
	assert.Equal(t, []string{"A", "B", "C"}, linkTitles(result.Links))
	assert.True(t, linkorder.IsContiguous(result.Links))
	assert.Len(t, result.Updates, 3)
}

func TestLinkService_ReorderLinks_NoopMakesNoWrites(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	links := testLinks(userID, "A", 0, "B", 1)

	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(links, nil).Once()

	result, err := service.ReorderLinks(ctx, userID, &usecase.ReorderInput{SourceIndex: 1, DestinationIndex: 1})
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.Empty(t, result.Updates)
	assert.Equal(t, []string{"A", "B"}, linkTitles(result.Links))
	f.linkRepo.AssertNotCalled(t, "UpdateLinkPosition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestLinkService_ReorderLinks_IndexOutOfRange(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(testLinks(userID, "A", 0, "B", 1), nil).Once()

	result, err := service.ReorderLinks(ctx, userID, &usecase.ReorderInput{SourceIndex: 0, DestinationIndex: 5})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_REORDER_INDEX", appErr.ErrorCode())
}

func TestLinkService_ReorderLinks_FailureRevertsAndRefetches(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	links := testLinks(userID, "A", 0, "B", 1, "C", 2)
	authoritative := testLinks(userID, "A", 0, "B", 1, "C", 2, "D", 3)

	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(links, nil).Once()
	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(authoritative, nil).Once()
	f.linkRepo.EXPECT().
		UpdateLinkPosition(ctx, userID, mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).
		Once()
	expectPageInvalidation(f, userID, "alice")

	result, err := service.ReorderLinks(ctx, userID, &usecase.ReorderInput{SourceIndex: 0, DestinationIndex: 2})
	require.Error(t, err)
	require.NotNil(t, result)

	assert.ErrorIs(t, err, domainerrors.ErrReorderFailed)
	assert.True(t, result.Reverted)
	assert.False(t, result.Persisted)
	assert.Equal(t, linkorder.StateStable, result.State)
	assert.Equal(t, []string{"A", "B", "C", "D"}, linkTitles(result.Links))
}

func TestLinkService_ReorderLinks_PartialFailureIsReported(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	links := testLinks(userID, "A", 0, "B", 1, "C", 2)

	f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(links, nil).Twice()
	f.linkRepo.EXPECT().UpdateLinkPosition(ctx, userID, links[1].ID, 0).Return(nil).Once()
	f.linkRepo.EXPECT().UpdateLinkPosition(ctx, userID, links[2].ID, 1).Return(repository.ErrLinkNotFound).Once()
	expectPageInvalidation(f, userID, "alice")

	result, err := service.ReorderLinks(ctx, userID, &usecase.ReorderInput{SourceIndex: 0, DestinationIndex: 2})
	require.Error(t, err)

	var partial *domainerrors.PartialReorderError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, 3, partial.Attempted)
	assert.Equal(t, 1, partial.Applied)
	assert.True(t, result.Reverted)
	assert.Equal(t, []string{"A", "B", "C"}, linkTitles(result.Links))
}

func TestLinkService_CreateLink_AppendsAfterMax(t *testing.T) {
	tests := []struct {
		name     string
		existing []*entity.Link
		want     int
	}{
		{name: "gaps", existing: testLinks(uuid.Nil, "A", 0, "B", 3, "C", 7), want: 8},
		{name: "empty", existing: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, f := createTestLinkService(t)
			ctx := context.Background()
			userID := uuid.New()

			f.linkRepo.EXPECT().ListLinks(ctx, userID).Return(tt.existing, nil).Once()
			f.linkRepo.EXPECT().
				CreateLink(ctx, mock.AnythingOfType("*entity.Link")).
				Run(func(_ context.Context, link *entity.Link) {
					assert.Equal(t, tt.want, link.Position)
				}).
				Return(nil).
				Once()
			expectPageInvalidation(f, userID, "alice")

			link, err := service.CreateLink(ctx, userID, &usecase.LinkInput{
				Type:     entity.LinkTypeSocial,
				Title:    "Instagram",
				URL:      "https://instagram.com/alice",
				Platform: "instagram",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, link.Position)
			assert.Equal(t, entity.SocialDetails{Platform: "instagram"}, link.Details)
		})
	}
}

func TestLinkService_CreateLink_InvalidVariant(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.LinkInput
	}{
		{name: "social without platform", input: &usecase.LinkInput{Type: entity.LinkTypeSocial, Title: "x", URL: "https://x.com"}},
		{name: "negative price", input: &usecase.LinkInput{Type: entity.LinkTypeProduct, Title: "x", URL: "https://x.com", Price: -1}},
		{name: "unknown embed", input: &usecase.LinkInput{Type: entity.LinkTypeEmbed, Title: "x", URL: "https://x.com", EmbedType: "flash"}},
		{name: "unknown type", input: &usecase.LinkInput{Type: "banner", Title: "x", URL: "https://x.com"}},
		{name: "missing title", input: &usecase.LinkInput{URL: "https://x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestLinkService(t)

			_, err := service.CreateLink(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidLink)
		})
	}
}

func TestLinkService_DeleteLink_DoesNotRenumber(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	linkID := uuid.New()

	f.linkRepo.EXPECT().DeleteLink(ctx, userID, linkID).Return(nil).Once()
	expectPageInvalidation(f, userID, "alice")

	require.NoError(t, service.DeleteLink(ctx, userID, linkID))
	f.linkRepo.AssertNotCalled(t, "UpdateLinkPosition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLinkService_DeleteLink_NotFound(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	linkID := uuid.New()

	f.linkRepo.EXPECT().DeleteLink(ctx, userID, linkID).Return(repository.ErrLinkNotFound).Once()

	err := service.DeleteLink(ctx, userID, linkID)
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
}

func TestLinkService_UpdateLink_OtherOwnerIsNotFound(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	foreign := testLinks(uuid.New(), "A", 0)[0]

	f.linkRepo.EXPECT().FindLinkByID(ctx, foreign.ID).Return(foreign, nil).Once()

	_, err := service.UpdateLink(ctx, userID, foreign.ID, &usecase.LinkInput{Title: "B", URL: "https://b.example"})
	assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	f.linkRepo.AssertNotCalled(t, "UpdateLink", mock.Anything, mock.Anything)
}

func TestLinkService_UpdateLink_KeepsPosition(t *testing.T) {
	service, f := createTestLinkService(t)
	ctx := context.Background()
	userID := uuid.New()
	link := testLinks(userID, "A", 4)[0]
	link.ClickCount = 12

	f.linkRepo.EXPECT().FindLinkByID(ctx, link.ID).Return(link, nil).Once()
	f.linkRepo.EXPECT().UpdateLink(ctx, mock.AnythingOfType("*entity.Link")).Return(nil).Once()
	expectPageInvalidation(f, userID, "alice")

	updated, err := service.UpdateLink(ctx, userID, link.ID, &usecase.LinkInput{
		Type:      entity.LinkTypeEmbed,
		Title:     "Video",
		URL:       "https://youtube.com/watch?v=1",
		EmbedType: entity.EmbedTypeYouTube,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Position)
	assert.Equal(t, int64(12), updated.ClickCount)
	assert.Equal(t, entity.LinkTypeEmbed, updated.Type())
}
