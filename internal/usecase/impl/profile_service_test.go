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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return profileServiceFixtures{
		service:     NewProfileService(profileRepo, logger),
		profileRepo: profileRepo,
	}
}

func TestProfileService_ListProfiles_NormalizesFilter(t *testing.T) {
	tests := []struct {
		name   string
		input  entity.ProfileFilter
		expect entity.ProfileFilter
	}{
		{
			name:   "all sentinel is unconstrained",
			input:  entity.ProfileFilter{Category: "all", FameLevel: entity.FameLevelHidden},
			expect: entity.ProfileFilter{FameLevel: entity.FameLevelHidden},
		},
		{
			name:   "whitespace is trimmed",
			input:  entity.ProfileFilter{Category: " science "},
			expect: entity.ProfileFilter{Category: "science"},
		},
		{
			name:   "empty stays empty",
			input:  entity.ProfileFilter{},
			expect: entity.ProfileFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()
			expected := []*entity.Profile{{ID: "p1", Name: "Ada Lovelace"}}

			fx.profileRepo.EXPECT().List(ctx, tt.expect).Return(expected, nil)

			got, err := fx.service.ListProfiles(ctx, tt.input)

			require.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	}
}

func TestProfileService_ListProfiles_EmptyIsNotNil(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().List(ctx, entity.ProfileFilter{Category: "music"}).Return(nil, nil)

	got, err := fx.service.ListProfiles(ctx, entity.ProfileFilter{Category: "music"})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProfileService_ListProfiles_StoreError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "")

	fx.profileRepo.EXPECT().List(ctx, entity.ProfileFilter{}).Return(nil, storeErr)

	_, err := fx.service.ListProfiles(ctx, entity.ProfileFilter{})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "connection refused", appErr.Message())
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expected := &entity.Profile{ID: "p1", Name: "Ada Lovelace", Category: "science", FameLevel: entity.FameLevelFamous}

	fx.profileRepo.EXPECT().FindByID(ctx, "p1").Return(expected, nil)

	got, err := fx.service.GetProfile(ctx, "p1")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode())
}
