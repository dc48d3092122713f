package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(64);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	Gender       string    `gorm:"type:varchar(16)"`
	BirthDate    *time.Time
	PictureRef   string `gorm:"type:varchar(255)"`

	// SecurityStamp is the revocation counter. Every security-sensitive change
	// increments it; session tokens carrying an older value are rejected. It
	// doubles as the optimistic concurrency check on updates.
	SecurityStamp int64 `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Claims []ClaimModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
