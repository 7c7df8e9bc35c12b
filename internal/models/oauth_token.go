package models

import (
	"time"
)

// OAuthToken is a persisted access token record. The access token
// itself is a JWT; the row exists so tokens can be revoked.
type OAuthToken struct {
	ID               uint    `gorm:"primaryKey"`
	ClientID         string  `gorm:"not null"`
	UserID           *string // Nullable for the client credentials grant
	AccessToken      string  `gorm:"uniqueIndex;not null"`
	RefreshToken     *string
	Scopes           string
	ExpiresAt        time.Time `gorm:"not null"`
	RefreshExpiresAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
