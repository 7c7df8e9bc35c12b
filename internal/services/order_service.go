package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/policy"
	"github.com/franciscosanchezn/pizza-orders-api/internal/repository"
)

// OrderPatch carries the mutable order fields of a partial update.
// The customer can never be changed through a patch.
type OrderPatch struct {
	PizzaFlavour *string `json:"pizza_flavour"`
	Size         *string `json:"size"`
	Quantity     *int    `json:"quantity"`
	Status       *string `json:"status"`
}

// OrderService is the order ledger: CRUD over orders, scoped by the
// ownership and staff rules in the policy package. Every mutation runs
// in a transaction — commit on success, rollback on any error.
type OrderService interface {
	CreateOrder(ctx context.Context, caller *models.User, in policy.CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, caller *models.User, id string) (*models.Order, error)
	// ListOrders returns the caller's own orders, optionally narrowed
	// by a comma-separated status-code filter.
	ListOrders(ctx context.Context, caller *models.User, statusCSV string) ([]models.Order, error)
	// ListAllOrders is the staff-only cross-customer listing with
	// optional status and exact customer-email filters.
	ListAllOrders(ctx context.Context, caller *models.User, statusCSV, customerEmail string) ([]models.Order, error)
	UpdateOrder(ctx context.Context, caller *models.User, id string, patch OrderPatch) (*models.Order, error)
	DeleteOrder(ctx context.Context, caller *models.User, id string) error
}

type orderService struct {
	db          *gorm.DB
	orders      repository.OrderRepository
	pizzas      repository.PizzaRepository
	maxQuantity int
}

// NewOrderService builds an OrderService. maxQuantity is the configured
// upper bound on order quantity.
func NewOrderService(db *gorm.DB, maxQuantity int) OrderService {
	return &orderService{
		db:          db,
		orders:      repository.NewOrderRepository(db),
		pizzas:      repository.NewPizzaRepository(db),
		maxQuantity: maxQuantity,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, caller *models.User, in policy.CreateOrderInput) (*models.Order, error) {
	draft, err := policy.ValidateCreate(in, s.maxQuantity)
	if err != nil {
		return nil, err
	}

	var created *models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		pizzas := repository.NewPizzaRepository(tx)
		orders := repository.NewOrderRepository(tx)

		pizza, err := pizzas.FindByFlavour(ctx, draft.Flavour)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: flavour %q", models.ErrNotFound, draft.Flavour)
			}
			return err
		}

		order := &models.Order{
			CustomerID: caller.ID,
			PizzaID:    pizza.ID,
			Size:       draft.Size,
			Quantity:   draft.Quantity,
			Status:     models.StatusPending,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		order.Pizza = *pizza
		order.Customer = *caller
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order_id": created.ID,
		"customer": caller.Email,
		"flavour":  created.Pizza.Flavour,
	}).Info("Order created")
	return created, nil
}

func (s *orderService) GetOrder(ctx context.Context, caller *models.User, id string) (*models.Order, error) {
	order, err := s.orders.FindOwnedByID(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", models.ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, caller *models.User, statusCSV string) ([]models.Order, error) {
	return s.orders.List(ctx, policy.CustomerScope(caller.ID, statusCSV))
}

func (s *orderService) ListAllOrders(ctx context.Context, caller *models.User, statusCSV, customerEmail string) ([]models.Order, error) {
	filter, err := policy.StaffScope(caller, statusCSV, customerEmail)
	if err != nil {
		return nil, err
	}
	return s.orders.List(ctx, filter)
}

func (s *orderService) UpdateOrder(ctx context.Context, caller *models.User, id string, patch OrderPatch) (*models.Order, error) {
	var updated *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewOrderRepository(tx)
		pizzas := repository.NewPizzaRepository(tx)

		order, err := orders.FindOwnedByID(ctx, id, caller.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %s", models.ErrNotFound, id)
			}
			return err
		}

		if err := policy.AuthorizeUpdate(order); err != nil {
			return err
		}

		if patch.PizzaFlavour != nil {
			pizza, err := pizzas.FindByFlavour(ctx, *patch.PizzaFlavour)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: flavour %q", models.ErrNotFound, *patch.PizzaFlavour)
				}
				return err
			}
			order.PizzaID = pizza.ID
			order.Pizza = *pizza
		}
		if patch.Size != nil {
			size := models.Size(*patch.Size)
			if !size.Valid() {
				return fmt.Errorf("%w: invalid size %q", models.ErrValidation, *patch.Size)
			}
			order.Size = size
		}
		if patch.Quantity != nil {
			if *patch.Quantity < 1 {
				return fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
			}
			if *patch.Quantity > s.maxQuantity {
				return fmt.Errorf("%w: quantity exceeds limit of %d", models.ErrValidation, s.maxQuantity)
			}
			order.Quantity = *patch.Quantity
		}
		if patch.Status != nil {
			status, ok := models.ParseStatus(*patch.Status)
			if !ok {
				return fmt.Errorf("%w: invalid status %q", models.ErrValidation, *patch.Status)
			}
			order.Status = status
		}

		if err := orders.Save(ctx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, caller *models.User, id string) error {
	err := s.orders.DeleteOwned(ctx, id, caller.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %s", models.ErrNotFound, id)
		}
		return err
	}
	return nil
}
