// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"usman/internal/domain/entity"
	domainerrors "usman/internal/domain/errors"
	"usman/internal/domain/repository"
	"usman/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// claimRepository implements the domain.ClaimRepository interface using GORM.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

// ListByUserID retrieves every claim persisted for the user, oldest first.
func (repo *claimRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.StoredClaim, error) {
	var claimMs []model.ClaimModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&claimMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user claims")
	}

	claims := make([]*entity.StoredClaim, 0, len(claimMs))
	for i := range claimMs {
		claims = append(claims, toStoredClaimDomain(&claimMs[i]))
	}

	return claims, nil
}

// Add persists a claim grant. Granting a claim the user already holds is a
// no-op, which keeps retried grants idempotent.
func (repo *claimRepository) Add(ctx context.Context, claim *entity.StoredClaim) error {
	claimM := fromStoredClaimDomain(claim)

	if err := repo.db.WithContext(ctx).Create(claimM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add user claim")
	}

	claim.ID = claimM.ID
	claim.CreatedAt = claimM.CreatedAt

	return nil
}

// Remove deletes a granted claim by its (user, type, value) triple.
func (repo *claimRepository) Remove(ctx context.Context, userID uuid.UUID, claimType, value string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND value = ?", userID, claimType, value).
		Delete(&model.ClaimModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove user claim")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimNotFound
	}

	return nil
}

// toStoredClaimDomain converts a GORM ClaimModel to a domain StoredClaim entity.
func toStoredClaimDomain(data *model.ClaimModel) *entity.StoredClaim {
	return &entity.StoredClaim{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      data.Type,
		Value:     data.Value,
		CreatedAt: data.CreatedAt,
	}
}

// fromStoredClaimDomain converts a domain StoredClaim entity to a GORM ClaimModel.
func fromStoredClaimDomain(data *entity.StoredClaim) *model.ClaimModel {
	return &model.ClaimModel{
		ID:     data.ID,
		UserID: data.UserID,
		Type:   data.Type,
		Value:  data.Value,
	}
}
