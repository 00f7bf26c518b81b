package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	Username          string    `gorm:"type:varchar(100);unique;not null"`
	Strategy          string    `gorm:"type:varchar(50);not null;default:'default'"`
	PasswordHash      string    `gorm:"type:varchar(255)"`
	CredentialVersion string    `gorm:"type:varchar(50);not null;index"`
	IsVerified        bool      `gorm:"not null;default:false"`
	IsActive          bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ActiveTokens  []ActiveTokenModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
