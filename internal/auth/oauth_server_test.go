package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
)

const (
	testSecret       = "test-jwt-secret-key-32-characters"
	testClientID     = "test-client"
	testClientSecret = "test-secret-123"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func setupOAuthTest(t *testing.T) (*gin.Engine, *gorm.DB, services.UserService) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Pizza{}, &models.Order{},
		&models.OAuthClient{}, &models.OAuthToken{},
	))

	hash, err := bcrypt.GenerateFromPassword([]byte(testClientSecret), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.OAuthClient{
		ID:         testClientID,
		Secret:     string(hash),
		Name:       "Test Client",
		GrantTypes: "password client_credentials refresh_token",
	}).Error)

	userService := services.NewUserService(db)
	oauthService := NewOAuthService(db, userService, testSecret)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", oauthService.HandleToken)

	return router, db, userService
}

func requestToken(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func passwordGrantForm(email, password string) url.Values {
	return url.Values{
		"grant_type":    {"password"},
		"client_id":     {testClientID},
		"client_secret": {testClientSecret},
		"username":      {email},
		"password":      {password},
	}
}

func TestPasswordGrantIssuesJWT(t *testing.T) {
	router, _, users := setupOAuthTest(t)
	user, err := users.CreateUser(context.Background(), "johnny@andela.com", "Test123", "Johnny")
	require.NoError(t, err)

	w := requestToken(router, passwordGrantForm("johnny@andela.com", "Test123"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.RefreshToken)

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("%d", user.ID), claims["uid"])
	assert.Equal(t, RoleCustomer, claims["role"])
	assert.Equal(t, testClientID, claims["aud"])
}

func TestPasswordGrantStaffRole(t *testing.T) {
	router, _, users := setupOAuthTest(t)
	_, err := users.CreateSuperuser(context.Background(), "admin@andela.com", "Test123")
	require.NoError(t, err)

	w := requestToken(router, passwordGrantForm("admin@andela.com", "Test123"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, RoleStaff, claims["role"])
}

func TestPasswordGrantBadCredentials(t *testing.T) {
	router, _, users := setupOAuthTest(t)
	_, err := users.CreateUser(context.Background(), "johnny@andela.com", "Test123", "")
	require.NoError(t, err)

	w := requestToken(router, passwordGrantForm("johnny@andela.com", "wrong"))
	assert.NotEqual(t, http.StatusOK, w.Code)

	var resp tokenResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Empty(t, resp.AccessToken)
}

func TestPasswordGrantInvalidClientSecret(t *testing.T) {
	router, _, users := setupOAuthTest(t)
	_, err := users.CreateUser(context.Background(), "johnny@andela.com", "Test123", "")
	require.NoError(t, err)

	form := passwordGrantForm("johnny@andela.com", "Test123")
	form.Set("client_secret", "not-the-secret")

	w := requestToken(router, form)
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestClientCredentialsGrantBoundAccount(t *testing.T) {
	router, db, users := setupOAuthTest(t)
	service, err := users.CreateSuperuser(context.Background(), "service@andela.com", "Test123")
	require.NoError(t, err)

	// Bind the client to the service account so issued tokens carry it
	require.NoError(t, db.Model(&models.OAuthClient{}).
		Where("id = ?", testClientID).
		Update("user_id", fmt.Sprintf("%d", service.ID)).Error)

	w := requestToken(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {testClientID},
		"client_secret": {testClientSecret},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, fmt.Sprintf("%d", service.ID), claims["uid"])
}

func TestTokenPersistedInStore(t *testing.T) {
	router, db, users := setupOAuthTest(t)
	_, err := users.CreateUser(context.Background(), "johnny@andela.com", "Test123", "")
	require.NoError(t, err)

	w := requestToken(router, passwordGrantForm("johnny@andela.com", "Test123"))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.OAuthToken{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
