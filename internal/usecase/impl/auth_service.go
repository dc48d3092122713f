// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "usman/internal/delivery/context"
	"usman/internal/domain/entity"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/repository"
	"usman/internal/domain/service"
	"usman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface: session issuance,
// validation against the security stamp, and stamp-based revocation.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.SessionTokenService
	claimProviders    []service.ClaimProvider
	externalProviders map[string]service.ExternalLoginProvider
	logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.SessionTokenService,
	claimProviders []service.ClaimProvider,
	externalProviders []service.ExternalLoginProvider,
	logger *slog.Logger,
) usecase.AuthUsecase {
	providerMap := make(map[string]service.ExternalLoginProvider, len(externalProviders))
	for _, p := range externalProviders {
		providerMap[p.Name()] = p
	}

	return &authService{
		txManager:         txManager,
		userRepo:          userRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		claimProviders:    claimProviders,
		externalProviders: providerMap,
		logger:            logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new member and signs them in.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("username", input.Username))

	fields := domainerrors.FieldErrors{}
	validateUsername(input.Username, fields)
	validateEmail(input.Email, fields)
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		fields["password"] = err.Error()
	} else if containsFold(input.Password, input.Username) {
		fields["password"] = "password must not contain the username"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during sign-up")
	}

	newUser := &entity.User{
		Username:      input.Username,
		Email:         input.Email,
		PasswordHash:  hashedPassword,
		Gender:        entity.GenderUnspecified,
		SecurityStamp: 1,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return mapDuplicateKeyError(err)
		}

		// Every new account starts with the member role.
		return repoFactory.ClaimRepo().Add(ctx, &entity.StoredClaim{
			UserID: newUser.ID,
			Type:   entity.ClaimTypeRole,
			Value:  entity.RoleMember.String(),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", newUser.ID))

	return srv.establishSession(ctx, newUser, input.Persistent)
}

// SignIn verifies the password credential and issues a session token.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same failure as a wrong password, so callers cannot enumerate accounts.
			srv.log(ctx).Warn("Sign-in failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find user for sign-in")
	}

	// bcrypt comparison is CPU-bound and constant-time; done outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))

	return srv.establishSession(ctx, user, input.Persistent)
}

// SignInExternal verifies a federated provider token and issues a session
// token, provisioning the account on first sign-in.
func (srv *authService) SignInExternal(ctx context.Context, input *usecase.ExternalSignInInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting external sign-in", slog.String("provider", input.Provider))

	provider, ok := srv.externalProviders[input.Provider]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrExternalTokenInvalid, "unknown external login provider "+input.Provider)
	}

	ext, err := provider.VerifyToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("External token verification failed", slog.String("provider", input.Provider), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrExternalTokenInvalid, "external token verification failed")
	}

	user, err := srv.findOrCreateExternalUser(ctx, provider, ext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve external user")
	}

	return srv.establishSession(ctx, user, input.Persistent)
}

// findOrCreateExternalUser resolves the local account for a verified external
// identity, creating it on first sign-in.
func (srv *authService) findOrCreateExternalUser(ctx context.Context, provider service.ExternalLoginProvider, ext *service.ExternalIdentity) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, ext.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by external email")
	}

	srv.log(ctx).Info("External user not found, provisioning account",
		slog.String("provider", ext.Provider), slog.String("subject", ext.Subject))

	newUser := &entity.User{
		Username:      externalUsername(ext),
		Email:         ext.Email,
		Gender:        entity.GenderUnspecified,
		SecurityStamp: 1,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return mapDuplicateKeyError(err)
		}

		claimRepo := repoFactory.ClaimRepo()
		if err := claimRepo.Add(ctx, &entity.StoredClaim{
			UserID: newUser.ID,
			Type:   entity.ClaimTypeRole,
			Value:  entity.RoleMember.String(),
		}); err != nil {
			return err
		}

		// Provider-asserted claims (login provider, display name) are persisted
		// with the account, so later sessions and policy evaluations see them
		// without re-contacting the provider.
		for _, claim := range provider.ProduceClaims(ext) {
			if err := claimRepo.Add(ctx, &entity.StoredClaim{
				UserID: newUser.ID,
				Type:   claim.Type,
				Value:  claim.Value,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to provision external user")
	}

	return newUser, nil
}

// externalUsername derives a unique login name from the external identity.
// The provider subject keeps retried provisioning deterministic.
func externalUsername(ext *service.ExternalIdentity) string {
	local := ext.Email
	if at := strings.IndexByte(local, '@'); at > 0 {
		local = local[:at]
	}
	if local == "" || !usernamePattern.MatchString(local) {
		local = ext.Provider
	}

	suffix := ext.Subject
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}

	return local + "-" + suffix
}

// ValidateSession checks a session token against the user's current security
// stamp and assembles the request's claim set.
func (srv *authService) ValidateSession(ctx context.Context, token string) (*usecase.AuthenticatedSession, error) {
	claims, err := srv.tokenService.Parse(token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return nil, errors.Wrap(err, "invalid session token")
		}

		return nil, domainerrors.ErrSessionInvalid.WrapMessage(err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A vanished account reads the same as a revoked session.
			return nil, errors.Wrap(domainerrors.ErrStampMismatch, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	// Stamp comparison is the revocation mechanism: password or identity
	// changes bump the stamp and orphan every previously issued token.
	if user.SecurityStamp != claims.SecurityStamp {
		srv.log(ctx).Debug("Session stamp mismatch",
			slog.Any("userID", user.ID),
			slog.Int64("tokenStamp", claims.SecurityStamp),
			slog.Int64("currentStamp", user.SecurityStamp))

		return nil, errors.Wrap(domainerrors.ErrStampMismatch, "session stamp mismatch")
	}

	sessionClaims, err := srv.assembleClaims(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assemble session claims")
	}

	session := &usecase.AuthenticatedSession{
		User:       user,
		Claims:     sessionClaims,
		Persistent: claims.Persistent,
	}

	// Sliding expiration: past the half-way point the token is re-issued
	// transparently with the original remember-me choice.
	if srv.tokenService.NeedsRefresh(claims, time.Now()) {
		refreshed, expiresAt, err := srv.tokenService.Issue(user.ID, user.SecurityStamp, claims.Persistent)
		if err != nil {
			srv.log(ctx).Warn("Failed to refresh session token", slog.Any("userID", user.ID), slog.Any("error", err))
		} else {
			session.RefreshedToken = refreshed
			session.RefreshExpiresAt = expiresAt
		}
	}

	return session, nil
}

// RevokeAllSessions bumps the user's security stamp, invalidating every
// outstanding session token at once. No token enumeration is needed.
func (srv *authService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Revoking all sessions", slog.Any("userID", userID))

	if _, err := srv.userRepo.BumpSecurityStamp(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to bump security stamp")
	}

	return nil
}

// establishSession issues a session token bound to the user's current stamp.
func (srv *authService) establishSession(ctx context.Context, user *entity.User, persistent bool) (*usecase.SessionOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.ID, user.SecurityStamp, persistent)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.SessionOutput{
		Token:      token,
		ExpiresAt:  expiresAt,
		Persistent: persistent,
		User:       user,
	}, nil
}

// assembleClaims collects the claim set from every registered provider. The
// set is immutable for the remainder of the request.
func (srv *authService) assembleClaims(ctx context.Context, user *entity.User) (entity.Claims, error) {
	var claims entity.Claims
	for _, provider := range srv.claimProviders {
		produced, err := provider.ProduceClaims(ctx, user)
		if err != nil {
			return nil, errors.Wrap(err, "claim provider failed")
		}
		claims = append(claims, produced...)
	}

	return claims, nil
}

// containsFold reports whether s contains substr case-insensitively.
func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}

	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
