package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/database"
	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
)

// Seeds a development OAuth client and a superuser account into the
// local sqlite database so tokens can be issued right away:
//
//	go run ./scripts -email admin@example.com -password changeme
func main() {
	email := flag.String("email", "admin@example.com", "Superuser email")
	password := flag.String("password", "changeme", "Superuser password")
	dbPath := flag.String("db", "pizza-orders.sqlite", "SQLite database path")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	createDevClient(db)
	createSuperuser(db, *email, *password)
}

func createDevClient(db *gorm.DB) {
	const (
		clientID     = "dev-client"
		clientSecret = "dev-secret-123"
	)

	var existing models.OAuthClient
	if err := db.Where("id = ?", clientID).First(&existing).Error; err == nil {
		fmt.Println("Development client already exists!")
		fmt.Printf("Client ID: %s\n", clientID)
		fmt.Printf("Client Secret: %s\n", clientSecret)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash secret:", err)
	}

	client := models.OAuthClient{
		ID:         clientID,
		Secret:     string(hash),
		Name:       "Development Client",
		Domain:     "http://localhost",
		Scopes:     "read write",
		GrantTypes: "password client_credentials",
	}
	if err := db.Create(&client).Error; err != nil {
		log.Fatal("Failed to create client:", err)
	}

	fmt.Println("Development client created!")
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
}

func createSuperuser(db *gorm.DB, email, password string) {
	users := services.NewUserService(db)

	user, err := users.CreateSuperuser(context.Background(), email, password)
	if err != nil {
		fmt.Println("Superuser not created:", err)
		return
	}
	fmt.Printf("Superuser created: %s (id %d)\n", user.Email, user.ID)
}
