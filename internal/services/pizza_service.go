package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/repository"
)

// PizzaPatch carries the mutable catalog fields of a partial update.
type PizzaPatch struct {
	Flavour *string          `json:"flavour"`
	Prices  *models.PriceMap `json:"prices"`
}

// PizzaService provides CRUD over the pizza catalog.
type PizzaService interface {
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	GetPizzaByID(ctx context.Context, id string) (*models.Pizza, error)
	GetPizzaByFlavour(ctx context.Context, flavour string) (*models.Pizza, error)
	CreatePizza(ctx context.Context, flavour string, prices models.PriceMap) (*models.Pizza, error)
	UpdatePizza(ctx context.Context, id string, patch PizzaPatch) (*models.Pizza, error)
	DeletePizza(ctx context.Context, id string) error
}

type pizzaService struct {
	db     *gorm.DB
	pizzas repository.PizzaRepository
}

// NewPizzaService builds a PizzaService over the given database handle.
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db, pizzas: repository.NewPizzaRepository(db)}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	return s.pizzas.List(ctx)
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id string) (*models.Pizza, error) {
	pizza, err := s.pizzas.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pizza %s", models.ErrNotFound, id)
		}
		return nil, err
	}
	return pizza, nil
}

func (s *pizzaService) GetPizzaByFlavour(ctx context.Context, flavour string) (*models.Pizza, error) {
	pizza, err := s.pizzas.FindByFlavour(ctx, flavour)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: flavour %q", models.ErrNotFound, flavour)
		}
		return nil, err
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(ctx context.Context, flavour string, prices models.PriceMap) (*models.Pizza, error) {
	if flavour == "" {
		return nil, models.ErrFlavourEmpty
	}
	for size, price := range prices {
		if !size.Valid() {
			return nil, fmt.Errorf("%w: unknown size %q", models.ErrValidation, size)
		}
		if price < 0 {
			return nil, fmt.Errorf("%w: price for size %s cannot be negative", models.ErrValidation, size)
		}
	}

	pizza := &models.Pizza{Flavour: flavour, Prices: prices}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pizzas := repository.NewPizzaRepository(tx)
		if _, err := pizzas.FindByFlavour(ctx, flavour); err == nil {
			return models.ErrFlavourExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return pizzas.Create(ctx, pizza)
	})
	if err != nil {
		return nil, err
	}
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id string, patch PizzaPatch) (*models.Pizza, error) {
	var updated *models.Pizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pizzas := repository.NewPizzaRepository(tx)

		pizza, err := pizzas.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: pizza %s", models.ErrNotFound, id)
			}
			return err
		}

		if patch.Flavour != nil {
			if *patch.Flavour == "" {
				return models.ErrFlavourEmpty
			}
			if *patch.Flavour != pizza.Flavour {
				if _, err := pizzas.FindByFlavour(ctx, *patch.Flavour); err == nil {
					return models.ErrFlavourExists
				} else if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				pizza.Flavour = *patch.Flavour
			}
		}
		if patch.Prices != nil {
			for size, price := range *patch.Prices {
				if !size.Valid() {
					return fmt.Errorf("%w: unknown size %q", models.ErrValidation, size)
				}
				if price < 0 {
					return fmt.Errorf("%w: price for size %s cannot be negative", models.ErrValidation, size)
				}
			}
			pizza.Prices = *patch.Prices
		}

		now := time.Now()
		pizza.UpdatedAt = &now

		if err := pizzas.Save(ctx, pizza); err != nil {
			return err
		}
		updated = pizza
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id string) error {
	if err := s.pizzas.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: pizza %s", models.ErrNotFound, id)
		}
		return err
	}
	return nil
}
