package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is a registered API client. Secrets are stored as bcrypt
// hashes; plain secrets never touch the database.
type OAuthClient struct {
	ID         string `gorm:"primaryKey"`
	Secret     string `gorm:"not null"`
	Name       string
	Domain     string
	UserID     string // Directory account acting for client_credentials grants
	Scopes     string // Space-separated list of allowed scopes
	GrantTypes string // Space-separated list: "password client_credentials"
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// GetID implements oauth2.ClientInfo.
func (c *OAuthClient) GetID() string { return c.ID }

// GetSecret implements oauth2.ClientInfo.
func (c *OAuthClient) GetSecret() string { return c.Secret }

// GetDomain implements oauth2.ClientInfo.
func (c *OAuthClient) GetDomain() string { return c.Domain }

// GetUserID implements oauth2.ClientInfo. The password grant supplies
// the user; client_credentials grants act as the bound account, if any.
func (c *OAuthClient) GetUserID() string { return c.UserID }

// IsPublic implements oauth2.ClientInfo. All clients are confidential.
func (c *OAuthClient) IsPublic() bool { return false }

// VerifyPassword implements oauth2.ClientPasswordVerifier so the server
// checks plain secrets against the stored bcrypt hash.
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
