package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

// Migrate applies the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Pizza{},
		&models.Order{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
}

// SeedCatalog inserts an initial set of flavours when the catalog is
// empty so a fresh install has something to order.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Catalog already seeded")
		return nil
	}

	log.Info("Catalog is empty, seeding initial flavours")
	pizzas := []models.Pizza{
		{Flavour: "Margherita", Prices: models.PriceMap{models.SizeSmall: 8.99, models.SizeMedium: 11.99, models.SizeLarge: 14.99}},
		{Flavour: "Pepperoni", Prices: models.PriceMap{models.SizeSmall: 9.99, models.SizeMedium: 12.99, models.SizeLarge: 15.99}},
		{Flavour: "Vegan", Prices: models.PriceMap{models.SizeSmall: 10.00, models.SizeMedium: 15.00, models.SizeLarge: 20.00}},
	}
	for i := range pizzas {
		if err := db.Create(&pizzas[i]).Error; err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{"flavours": len(pizzas)}).Info("Catalog seeded")
	return nil
}
