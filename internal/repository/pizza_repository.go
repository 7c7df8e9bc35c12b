package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

// PizzaRepository defines persistence operations on the catalog.
type PizzaRepository interface {
	Create(ctx context.Context, pizza *models.Pizza) error
	FindByID(ctx context.Context, id string) (*models.Pizza, error)
	FindByFlavour(ctx context.Context, flavour string) (*models.Pizza, error)
	List(ctx context.Context) ([]models.Pizza, error)
	Save(ctx context.Context, pizza *models.Pizza) error
	Delete(ctx context.Context, id string) error
}

type pizzaRepository struct {
	db *gorm.DB
}

// NewPizzaRepository builds a GORM-backed catalog repository.
func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: db}
}

func (r *pizzaRepository) Create(ctx context.Context, pizza *models.Pizza) error {
	return r.db.WithContext(ctx).Create(pizza).Error
}

func (r *pizzaRepository) FindByID(ctx context.Context, id string) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pizza).Error; err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (r *pizzaRepository) FindByFlavour(ctx context.Context, flavour string) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.WithContext(ctx).Where("flavour = ?", flavour).First(&pizza).Error; err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (r *pizzaRepository) List(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := r.db.WithContext(ctx).Order("flavour").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) Save(ctx context.Context, pizza *models.Pizza) error {
	return r.db.WithContext(ctx).Save(pizza).Error
}

func (r *pizzaRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Pizza{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
