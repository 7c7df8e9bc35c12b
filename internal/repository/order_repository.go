package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/policy"
)

// OrderRepository defines persistence operations on the order ledger.
// Lookups by id are scoped to the owning customer so a foreign id
// behaves exactly like a missing one.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindOwnedByID(ctx context.Context, id string, customerID uint) (*models.Order, error)
	List(ctx context.Context, filter policy.OrderFilter) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	DeleteOwned(ctx context.Context, id string, customerID uint) error
	Count(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Omit("Pizza", "Customer").Create(order).Error
}

func (r *orderRepository) FindOwnedByID(ctx context.Context, id string, customerID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Pizza").
		Preload("Customer").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, filter policy.OrderFilter) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).
		Preload("Pizza").
		Preload("Customer")

	if filter.CustomerID != nil {
		q = q.Where("orders.customer_id = ?", *filter.CustomerID)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("orders.status IN ?", filter.Statuses)
	}
	if filter.CustomerEmail != nil {
		q = q.Joins("JOIN users ON users.id = orders.customer_id").
			Where("users.email = ?", *filter.CustomerEmail)
	}

	var orders []models.Order
	if err := q.Order("orders.created_at").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Save(ctx context.Context, order *models.Order) error {
	// Associations are read-only here; only the order row is written.
	return r.db.WithContext(ctx).Omit("Pizza", "Customer").Save(order).Error
}

func (r *orderRepository) DeleteOwned(ctx context.Context, id string, customerID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", id, customerID).
		Delete(&models.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}
