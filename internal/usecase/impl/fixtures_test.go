package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"biolink/internal/domain/repository"
	mockRepo "biolink/internal/mocks/repository"
	mockService "biolink/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

// storeFixtures wires a transaction manager that runs the callback against mocked repositories.
type storeFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	linkRepo     *mockRepo.MockLinkRepository
	profileRepo  *mockRepo.MockProfileRepository
	templateRepo *mockRepo.MockUserTemplateRepository
	clickRepo    *mockRepo.MockClickRepository
	cache        *mockService.MockPublicPageCache
	logger       *slog.Logger
}

func newStoreFixtures(t *testing.T) *storeFixtures {
	f := &storeFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		linkRepo:     mockRepo.NewMockLinkRepository(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		templateRepo: mockRepo.NewMockUserTemplateRepository(t),
		clickRepo:    mockRepo.NewMockClickRepository(t),
		cache:        mockService.NewMockPublicPageCache(t),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()

	f.factory.EXPECT().NewLinkRepository().Return(f.linkRepo).Maybe()
	f.factory.EXPECT().NewProfileRepository().Return(f.profileRepo).Maybe()
	f.factory.EXPECT().NewUserTemplateRepository().Return(f.templateRepo).Maybe()
	f.factory.EXPECT().NewClickRepository().Return(f.clickRepo).Maybe()

	return f
}

func strPtr(s string) *string { return &s }
