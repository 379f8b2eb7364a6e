package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"figures/internal/domain/entity"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/repository"
	"figures/internal/errors"
	mockRepo "figures/internal/mocks/repository"
	"figures/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service     usecase.UserUsecase
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewUserService(UserServiceParams{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Logger:      logger,
	})

	return userServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func testIdentity() *entity.Identity {
	return &entity.Identity{SubjectID: "uid-1", Email: "ada@example.com", DisplayName: "Ada"}
}

func TestUserService_FindOrCreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	expected := &entity.User{ID: "u1", ExternalSubjectID: "uid-1", Email: "ada@example.com", Favorites: []string{}}

	fx.userRepo.EXPECT().FindOrCreate(ctx, "uid-1", "ada@example.com", "Ada").Return(expected, nil)

	user, err := fx.service.FindOrCreateUser(ctx, testIdentity())

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_FindOrCreateUser_RequiresEmail(t *testing.T) {
	fx := createTestUserService(t)

	user, err := fx.service.FindOrCreateUser(context.Background(), &entity.Identity{SubjectID: "uid-phone"})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.userRepo.AssertNotCalled(t, "FindOrCreate")
}

func TestUserService_RejectsMissingIdentity(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.FindOrCreateUser(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	err = fx.service.AddFavorite(ctx, &entity.Identity{}, "p1")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	err = fx.service.RemoveFavorite(ctx, nil, "p1")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = fx.service.ListFavorites(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_AddFavorite(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().AddFavorite(ctx, "uid-1", "p1").Return(nil)

		require.NoError(t, fx.service.AddFavorite(ctx, testIdentity(), "p1"))
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().AddFavorite(ctx, "uid-1", "p1").Return(repository.ErrUserNotFound)

		err := fx.service.AddFavorite(ctx, testIdentity(), "p1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestUserService_RemoveFavorite(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().RemoveFavorite(ctx, "uid-1", "p1").Return(nil)

		require.NoError(t, fx.service.RemoveFavorite(ctx, testIdentity(), "p1"))
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().RemoveFavorite(ctx, "uid-1", "p1").Return(repository.ErrUserNotFound)

		err := fx.service.RemoveFavorite(ctx, testIdentity(), "p1")

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestUserService_ListFavorites_PreservesOrderAndSkipsDangling(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ExternalSubjectID: "uid-1", Favorites: []string{"p3", "gone", "p1"}}
	p1 := &entity.Profile{ID: "p1", Name: "Ada Lovelace"}
	p3 := &entity.Profile{ID: "p3", Name: "Mary Anning"}

	fx.userRepo.EXPECT().FindBySubjectID(ctx, "uid-1").Return(user, nil)
	fx.profileRepo.EXPECT().FindByIDs(ctx, []string{"p3", "gone", "p1"}).Return([]*entity.Profile{p1, p3}, nil)

	got, err := fx.service.ListFavorites(ctx, testIdentity())

	require.NoError(t, err)
	assert.Equal(t, []*entity.Profile{p3, p1}, got)
}

func TestUserService_ListFavorites_EmptySkipsLookup(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindBySubjectID(ctx, "uid-1").Return(&entity.User{Favorites: []string{}}, nil)

	got, err := fx.service.ListFavorites(ctx, testIdentity())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUserService_ListFavorites_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindBySubjectID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ListFavorites(ctx, testIdentity())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ListFavorites_StoreError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	storeErr := errors.New("timeout")

	fx.userRepo.EXPECT().FindBySubjectID(ctx, "uid-1").Return(&entity.User{Favorites: []string{"p1"}}, nil)
	fx.profileRepo.EXPECT().FindByIDs(ctx, []string{"p1"}).Return(nil, storeErr)

	_, err := fx.service.ListFavorites(ctx, testIdentity())

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
}
