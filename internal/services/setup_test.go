package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

// setupTestDB opens a test-scoped in-memory database with the full
// schema applied. The shared cache keeps the schema visible across
// pooled connections.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Pizza{},
		&models.Order{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user, err := NewUserService(db).CreateUser(context.Background(), email, "password", "")
	require.NoError(t, err)
	return user
}

func createTestStaff(t *testing.T, db *gorm.DB, email string) *models.User {
	user, err := NewUserService(db).CreateSuperuser(context.Background(), email, "password")
	require.NoError(t, err)
	return user
}

func createTestPizza(t *testing.T, db *gorm.DB, flavour string, prices models.PriceMap) *models.Pizza {
	pizza, err := NewPizzaService(db).CreatePizza(context.Background(), flavour, prices)
	require.NoError(t, err)
	return pizza
}
