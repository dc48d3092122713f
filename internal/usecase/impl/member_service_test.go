package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"usman/internal/domain/entity"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/repository"
	"usman/internal/domain/service"
	mockRepo "usman/internal/mocks/repository"
	mockSvc "usman/internal/mocks/service"
	"usman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memberServiceFixtures holds all test dependencies for member service tests.
type memberServiceFixtures struct {
	service       usecase.MemberUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	claimRepo     *mockRepo.MockClaimRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockSessionTokenService
	assetStore    *mockSvc.MockAssetStore
	claimProvider *mockSvc.MockClaimProvider
}

func createTestMemberService(t *testing.T) memberServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	assetStore := mockSvc.NewMockAssetStore(t)
	claimProvider := mockSvc.NewMockClaimProvider(t)

	svc := NewMemberService(
		txManager,
		userRepo,
		claimRepo,
		hasher,
		tokenService,
		assetStore,
		[]service.ClaimProvider{claimProvider},
		newDiscardLogger(),
	)

	return memberServiceFixtures{
		service:       svc,
		txManager:     txManager,
		userRepo:      userRepo,
		claimRepo:     claimRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		assetStore:    assetStore,
		claimProvider: claimProvider,
	}
}

func TestMemberService_GetProfile_Success(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "jane.doe", City: "Bishkek"}
	produced := entity.Claims{
		{Type: entity.ClaimTypeRole, Value: "member"},
		{Type: entity.ClaimTypeRole, Value: "not-a-role"},
		{Type: entity.ClaimTypeCity, Value: "Bishkek"},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.claimProvider.EXPECT().ProduceClaims(ctx, user).Return(produced, nil)

	output, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	// Invalid role values are filtered out of the role view.
	assert.Equal(t, []string{"member"}, output.Roles)
	assert.Equal(t, produced, output.Claims)
}

func TestMemberService_GetProfile_NotFound(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberService_UpdateProfile_Success(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:            userID,
		Username:      "jane.doe",
		Email:         "jane@example.com",
		SecurityStamp: 4,
	}
	input := &usecase.UpdateProfileInput{
		Username:    "jane.doe",
		Email:       "jane@example.com",
		PhoneNumber: "+996700123456",
		City:        "Bishkek",
		Gender:      "female",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User"), int64(4)).
				Run(func(ctx context.Context, user *entity.User, expectedStamp int64) {
					assert.Equal(t, "Bishkek", user.City)
					assert.Equal(t, entity.GenderFemale, user.Gender)
					// Identity fields are unchanged, so the stamp stays put.
					assert.Equal(t, int64(4), user.SecurityStamp)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Bishkek", output.User.City)
	// No identity change, no session re-issue.
	assert.Empty(t, output.Token)
}

func TestMemberService_UpdateProfile_IdentityChangeReissuesSession(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:            userID,
		Username:      "jane.doe",
		Email:         "jane@example.com",
		SecurityStamp: 4,
	}
	input := &usecase.UpdateProfileInput{
		Username:   "jane.doe",
		Email:      "jane@newdomain.com",
		Persistent: true,
	}
	expiresAt := time.Now().Add(24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User"), int64(4)).
				Run(func(ctx context.Context, user *entity.User, expectedStamp int64) {
					// Email rotation bumps the stamp inside the same write.
					assert.Equal(t, int64(5), user.SecurityStamp)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// The caller's own session comes back with the original remember-me choice.
	fx.tokenService.EXPECT().
		Issue(userID, int64(5), true).
		Return("reissued_token", expiresAt, nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "reissued_token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestMemberService_UpdateProfile_ConcurrentModification(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:            userID,
		Username:      "jane.doe",
		Email:         "jane@example.com",
		SecurityStamp: 4,
	}
	input := &usecase.UpdateProfileInput{Username: "jane.doe", Email: "jane@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
			// Another session rotated the stamp between our read and write.
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User"), int64(4)).
				Return(repository.ErrStaleStamp)

			return fn(mockFactory)
		})

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
}

func TestMemberService_UpdateProfile_ReplacesPicture(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{
		ID:            userID,
		Username:      "jane.doe",
		Email:         "jane@example.com",
		PictureRef:    "assets/old.png",
		SecurityStamp: 4,
	}
	pictureData := strings.NewReader("png bytes")
	input := &usecase.UpdateProfileInput{
		Username: "jane.doe",
		Email:    "jane@example.com",
		Picture:  &usecase.PictureUpload{Reader: pictureData, Filename: "Avatar.PNG"},
	}

	fx.assetStore.EXPECT().
		Put(ctx, pictureData, ".png").
		Return("assets/new.png", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(stored, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User"), int64(4)).
				Run(func(ctx context.Context, user *entity.User, expectedStamp int64) {
					assert.Equal(t, "assets/new.png", user.PictureRef)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// The replaced picture is unreachable once the record write commits.
	fx.assetStore.EXPECT().Delete(ctx, "assets/old.png").Return(nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "assets/new.png", output.User.PictureRef)
}

func TestMemberService_UpdateProfile_FailedWriteDiscardsNewPicture(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	pictureData := strings.NewReader("png bytes")
	input := &usecase.UpdateProfileInput{
		Username: "jane.doe",
		Email:    "jane@example.com",
		Picture:  &usecase.PictureUpload{Reader: pictureData, Filename: "avatar.png"},
	}

	fx.assetStore.EXPECT().
		Put(ctx, pictureData, ".png").
		Return("assets/new.png", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	// Compensation: the stored asset must not outlive the failed record write.
	fx.assetStore.EXPECT().Delete(ctx, "assets/new.png").Return(nil)

	output, err := fx.service.UpdateProfile(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestMemberService_UpdateProfile_InvalidGender(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	input := &usecase.UpdateProfileInput{
		Username: "jane.doe",
		Email:    "jane@example.com",
		Gender:   "attack-helicopter",
	}

	output, err := fx.service.UpdateProfile(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "gender")
}

func TestMemberService_ChangePassword_Success(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:            userID,
		Username:      "jane.doe",
		PasswordHash:  "old_hash",
		SecurityStamp: 2,
	}
	input := &usecase.ChangePasswordInput{
		OldPassword: "OldPassword123!",
		NewPassword: "NewPassword456!",
		Persistent:  true,
	}
	expiresAt := time.Now().Add(24 * time.Hour)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, "old_hash").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User"), int64(2)).
		Run(func(ctx context.Context, updated *entity.User, expectedStamp int64) {
			assert.Equal(t, "new_hash", updated.PasswordHash)
			assert.Equal(t, int64(3), updated.SecurityStamp)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		Issue(userID, int64(3), true).
		Return("reissued_token", expiresAt, nil)

	output, err := fx.service.ChangePassword(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "reissued_token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestMemberService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "jane.doe", PasswordHash: "old_hash"}
	input := &usecase.ChangePasswordInput{OldPassword: "wrong", NewPassword: "NewPassword456!"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, "old_hash").Return(false)

	output, err := fx.service.ChangePassword(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMemberService_ChangePassword_WeakNewPassword(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "jane.doe", PasswordHash: "old_hash"}
	input := &usecase.ChangePasswordInput{OldPassword: "OldPassword123!", NewPassword: "short"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, "old_hash").Return(true)
	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.NewPassword).
		Return(errors.New("password must be at least 8 characters"))

	output, err := fx.service.ChangePassword(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "new_password")
}

func TestMemberService_ChangePassword_NewPasswordContainsUsername(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "janedoe", PasswordHash: "old_hash"}
	input := &usecase.ChangePasswordInput{
		OldPassword: "OldPassword123!",
		NewPassword: "MyJaneDoeSecret1!",
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, "old_hash").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)

	output, err := fx.service.ChangePassword(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password must not contain the username", validationErr.Fields()["new_password"])
}

func TestMemberService_ChangePassword_ConcurrentModification(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:            userID,
		Username:      "jane.doe",
		PasswordHash:  "old_hash",
		SecurityStamp: 2,
	}
	input := &usecase.ChangePasswordInput{OldPassword: "OldPassword123!", NewPassword: "NewPassword456!"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.hasher.EXPECT().Check(input.OldPassword, "old_hash").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.NewPassword).Return(nil)
	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User"), int64(2)).
		Return(repository.ErrStaleStamp)

	output, err := fx.service.ChangePassword(ctx, userID, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
}

func TestMemberService_GetRoles(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.StoredClaim{
		{UserID: userID, Type: entity.ClaimTypeRole, Value: "member"},
		{UserID: userID, Type: entity.ClaimTypeRole, Value: "admin"},
		{UserID: userID, Type: entity.ClaimTypeRole, Value: "bogus"},
		{UserID: userID, Type: entity.ClaimTypeCity, Value: "Bishkek"},
	}

	fx.claimRepo.EXPECT().ListByUserID(ctx, userID).Return(stored, nil)

	roles, err := fx.service.GetRoles(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []string{"member", "admin"}, roles)
}
