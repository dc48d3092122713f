// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"usman/internal/domain/entity"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/repository"
	"usman/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, cond string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if mapped := mapUserUniqueViolation(err); mapped != err {
			return mapped
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user, guarded by the security stamp the caller
// read. A concurrent stamp bump makes the WHERE clause match nothing, which
// surfaces as ErrStaleStamp instead of silently overwriting.
func (repo *userRepository) Update(ctx context.Context, user *entity.User, expectedStamp int64) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND security_stamp = ?", user.ID, expectedStamp).
		Select("username", "email", "phone_number", "password_hash", "city",
			"gender", "birth_date", "picture_ref", "security_stamp").
		Updates(userM)
	if err := result.Error; err != nil {
		if mapped := mapUserUniqueViolation(err); mapped != err {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleStamp
	}

	return nil
}

// BumpSecurityStamp atomically increments the user's security stamp and
// returns the new value. Every session token issued before the bump becomes
// invalid on its next validation.
func (repo *userRepository) BumpSecurityStamp(ctx context.Context, id uuid.UUID) (int64, error) {
	var stamp int64
	result := repo.db.WithContext(ctx).Raw(
		"UPDATE users SET security_stamp = security_stamp + 1, updated_at = NOW() WHERE id = ? RETURNING security_stamp",
		id,
	).Scan(&stamp)
	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to bump security stamp")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrUserNotFound
	}

	return stamp, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		PhoneNumber:   data.PhoneNumber,
		PasswordHash:  data.PasswordHash,
		City:          data.City,
		Gender:        entity.Gender(data.Gender),
		BirthDate:     data.BirthDate,
		PictureRef:    data.PictureRef,
		SecurityStamp: data.SecurityStamp,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		PhoneNumber:   data.PhoneNumber,
		PasswordHash:  data.PasswordHash,
		City:          data.City,
		Gender:        data.Gender.String(),
		BirthDate:     data.BirthDate,
		PictureRef:    data.PictureRef,
		SecurityStamp: data.SecurityStamp,
	}
}
