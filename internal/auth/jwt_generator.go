package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

// Role claim values carried in access tokens.
const (
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

func formatUserID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// UserJWTAccessGenerate generates JWT access tokens carrying the user
// id and role so the middleware can authorize without a second lookup.
type UserJWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	DB           *gorm.DB // Directory lookup for the role claim
}

// NewUserJWTAccessGenerate creates a new JWT access token generator.
func NewUserJWTAccessGenerate(key []byte, method jwt.SigningMethod, db *gorm.DB) *UserJWTAccessGenerate {
	return &UserJWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		DB:           db,
	}
}

// Token generates a JWT access token with uid and role claims.
// Called by the OAuth2 manager whenever a grant succeeds.
func (g *UserJWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	claims := jwt.MapClaims{
		"aud": data.Client.GetID(),
		"exp": data.TokenInfo.GetAccessCreateAt().Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
		"iat": data.TokenInfo.GetAccessCreateAt().Unix(),
	}

	// The password grant carries the user id; client credentials fall
	// back to the client's bound user, if any.
	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}
	if userID == "" {
		return "", "", fmt.Errorf("cannot generate token: no user ID available")
	}
	claims["uid"] = userID

	// The role claim always reflects the directory at issue time.
	role, err := g.lookupRole(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user role: %w", err)
	}
	claims["role"] = role

	if data.TokenInfo.GetScope() != "" {
		claims["scope"] = data.TokenInfo.GetScope()
	}

	token := jwt.NewWithClaims(g.SignedMethod, claims)
	access, err := token.SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"id":  data.TokenInfo.GetAccess(),
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		t := jwt.NewWithClaims(g.SignedMethod, refreshClaims)
		refresh, err = t.SignedString(g.SignedKey)
		if err != nil {
			return "", "", err
		}
	}

	return access, refresh, nil
}

// lookupRole maps the directory's staff flag to a role claim value.
func (g *UserJWTAccessGenerate) lookupRole(userIDStr string) (string, error) {
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid user ID format: %w", err)
	}

	var user models.User
	if err := g.DB.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("user with ID %d not found", userID)
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	if user.IsStaff {
		return RoleStaff, nil
	}
	return RoleCustomer, nil
}
