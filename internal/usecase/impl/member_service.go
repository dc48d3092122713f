// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "usman/internal/delivery/context"
	"usman/internal/domain/entity"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/repository"
	"usman/internal/domain/service"
	"usman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	claimRepo      repository.ClaimRepository
	hasher         service.PasswordHasher
	tokenService   service.SessionTokenService
	assetStore     service.AssetStore
	claimProviders []service.ClaimProvider
	logger         *slog.Logger
}

// NewMemberService is the constructor for memberService. It receives all dependencies as interfaces.
func NewMemberService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	claimRepo repository.ClaimRepository,
	hasher service.PasswordHasher,
	tokenService service.SessionTokenService,
	assetStore service.AssetStore,
	claimProviders []service.ClaimProvider,
	logger *slog.Logger,
) usecase.MemberUsecase {
	return &memberService{
		txManager:      txManager,
		userRepo:       userRepo,
		claimRepo:      claimRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		assetStore:     assetStore,
		claimProviders: claimProviders,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the member's profile with the roles and claims derived
// for display.
func (srv *memberService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	var claims entity.Claims
	for _, provider := range srv.claimProviders {
		produced, err := provider.ProduceClaims(ctx, user)
		if err != nil {
			return nil, errors.Wrap(err, "claim provider failed")
		}
		claims = append(claims, produced...)
	}

	roles := entity.RolesFromStrings(claims.ValuesOfType(entity.ClaimTypeRole))

	return &usecase.ProfileOutput{
		User:   user,
		Roles:  roles.ToStrings(),
		Claims: claims,
	}, nil
}

// UpdateProfile validates and applies the editable profile fields. When
// username or email changes the security stamp is bumped inside the same
// write, which invalidates every other session; the caller's own session is
// re-issued transparently.
func (srv *memberService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UpdateProfileOutput, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	// The picture is made durable before any reference to it exists; a failed
	// record write below compensates by discarding the stored asset, so the
	// identity can never point at an asset that was not fully written.
	newPictureRef, err := srv.storePicture(ctx, input.Picture)
	if err != nil {
		return nil, err
	}

	var updatedUser *entity.User
	var identityChanged bool
	var oldPictureRef string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		expectedStamp := user.SecurityStamp
		identityChanged = user.Username != input.Username || user.Email != input.Email
		oldPictureRef = user.PictureRef

		user.Username = input.Username
		user.Email = input.Email
		user.PhoneNumber = input.PhoneNumber
		user.City = input.City
		if input.Gender != "" {
			user.Gender = entity.Gender(input.Gender)
		}
		if input.BirthDate != nil {
			user.BirthDate = input.BirthDate
		}
		if newPictureRef != "" {
			user.PictureRef = newPictureRef
		}

		// Username and email feed the cookie principal, so rotating either
		// must orphan every other outstanding session.
		if identityChanged {
			user.SecurityStamp = expectedStamp + 1
		}

		if err := userRepo.Update(ctx, user, expectedStamp); err != nil {
			if errors.Is(err, repository.ErrStaleStamp) {
				return errors.Wrap(domainerrors.ErrConcurrentModification, "profile update lost the concurrency check")
			}

			return mapDuplicateKeyError(err)
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.discardAsset(ctx, newPictureRef)
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	// The replaced picture is unreachable now; removal is best effort.
	if newPictureRef != "" && oldPictureRef != "" {
		srv.discardAsset(ctx, oldPictureRef)
	}

	output := &usecase.UpdateProfileOutput{User: updatedUser}

	if identityChanged {
		token, expiresAt, err := srv.tokenService.Issue(updatedUser.ID, updatedUser.SecurityStamp, input.Persistent)
		if err != nil {
			srv.log(ctx).Error("Failed to re-issue session after profile update", slog.Any("userID", userID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to re-issue session token")
		}
		output.Token = token
		output.ExpiresAt = expiresAt
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID), slog.Bool("identityChanged", identityChanged))

	return output, nil
}

// ChangePassword verifies the old credential, rotates the hash, and bumps the
// security stamp in one guarded write. The caller's session is re-issued with
// the original remember-me choice.
func (srv *memberService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Keep the same generic failure as a wrong credential.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password change failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// bcrypt comparison is CPU-bound; kept outside any transaction.
	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password change failed")
	}

	fields := domainerrors.FieldErrors{}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		fields["new_password"] = err.Error()
	} else if containsFold(input.NewPassword, user.Username) {
		fields["new_password"] = "password must not contain the username"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	// Single guarded write: the stamp read above is the optimistic check, so
	// a concurrent security-sensitive change surfaces as a retryable conflict
	// instead of a lost update.
	expectedStamp := user.SecurityStamp
	user.PasswordHash = newHash
	user.SecurityStamp = expectedStamp + 1

	if err := srv.userRepo.Update(ctx, user, expectedStamp); err != nil {
		if errors.Is(err, repository.ErrStaleStamp) {
			return nil, errors.Wrap(domainerrors.ErrConcurrentModification, "password change lost the concurrency check")
		}

		return nil, errors.Wrap(err, "failed to persist new password")
	}

	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.SecurityStamp, input.Persistent)
	if err != nil {
		srv.log(ctx).Error("Failed to re-issue session after password change", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to re-issue session token")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return &usecase.ChangePasswordOutput{Token: token, ExpiresAt: expiresAt}, nil
}

// GetRoles returns the role names stored for the user.
func (srv *memberService) GetRoles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	srv.log(ctx).Debug("Getting roles", slog.Any("userID", userID))

	stored, err := srv.claimRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user claims")
	}

	var roles entity.Roles
	for _, claim := range stored {
		if claim.Type != entity.ClaimTypeRole {
			continue
		}
		if role := entity.Role(claim.Value); role.IsValid() {
			roles = append(roles, role)
		}
	}

	return roles.ToStrings(), nil
}

// storePicture uploads the optional replacement picture and returns its
// reference, or "" when no picture was supplied.
func (srv *memberService) storePicture(ctx context.Context, picture *usecase.PictureUpload) (string, error) {
	if picture == nil || picture.Reader == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(picture.Filename))
	ref, err := srv.assetStore.Put(ctx, picture.Reader, ext)
	if err != nil {
		srv.log(ctx).Error("Failed to store profile picture", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrAssetStoreFailed, "failed to store profile picture")
	}

	return ref, nil
}

// discardAsset removes an asset that is no longer referenced. Failures are
// logged, not surfaced: the record state is already correct.
func (srv *memberService) discardAsset(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := srv.assetStore.Delete(ctx, ref); err != nil {
		srv.log(ctx).Warn("Failed to discard asset", slog.String("ref", ref), slog.Any("error", err))
	}
}

// validateProfileInput collects every field problem before reporting, so the
// caller can redisplay all of them at once.
func validateProfileInput(input *usecase.UpdateProfileInput) error {
	fields := domainerrors.FieldErrors{}
	validateUsername(input.Username, fields)
	validateEmail(input.Email, fields)
	if input.Gender != "" && !entity.Gender(input.Gender).IsValid() {
		fields["gender"] = "gender must be one of unspecified, male, female"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
