package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. One row per device
// session; only the SHA-256 hash of the opaque token is stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	DeviceID  string    `gorm:"type:varchar(100);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// ActiveTokenModel mirrors the 'active_tokens' table. One row per live access
// token, keyed by the token's jti claim. Deleting a row revokes the token.
type ActiveTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	JTI       string    `gorm:"column:jti;type:varchar(100);unique;not null"`
	DeviceID  string    `gorm:"type:varchar(100);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActiveTokenModel) TableName() string {
	return "active_tokens"
}
