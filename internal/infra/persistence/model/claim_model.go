package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimModel mirrors the 'user_claims' table. Each row is one persisted claim
// granted to a user, including role claims. The (user_id, type, value) triple
// is unique, so granting the same claim twice is a no-op at the store level.
type ClaimModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:user_claims_user_type_value_key"`
	Type      string    `gorm:"type:varchar(64);not null;uniqueIndex:user_claims_user_type_value_key"`
	Value     string    `gorm:"type:varchar(255);not null;uniqueIndex:user_claims_user_type_value_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimModel) TableName() string {
	return "user_claims"
}
