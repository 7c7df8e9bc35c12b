// Package policy holds the pure authorization and pricing rules for
// orders: ownership scoping, the staff-only cross-customer view, the
// delivered lock and total-price computation. Nothing here touches the
// database; services feed it domain values and act on the verdict.
package policy

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

// OrderFilter describes which orders a caller is allowed to see.
// Repositories translate it into a WHERE clause.
type OrderFilter struct {
	// CustomerID restricts the listing to a single owner. Nil means
	// cross-customer (staff only).
	CustomerID *uint
	// Statuses is an IN filter over status codes. Unrecognized codes
	// are kept and match nothing.
	Statuses []string
	// CustomerEmail is an exact-match filter on the owner's email.
	CustomerEmail *string
}

// CustomerScope returns the filter for a customer-facing listing:
// only the caller's own orders, optionally narrowed by status codes.
func CustomerScope(userID uint, statusCSV string) OrderFilter {
	return OrderFilter{
		CustomerID: &userID,
		Statuses:   models.ParseStatusList(statusCSV),
	}
}

// StaffScope returns the cross-customer filter for the admin listing.
// Non-staff callers are refused.
func StaffScope(caller *models.User, statusCSV, customerEmail string) (OrderFilter, error) {
	if caller == nil || !caller.IsStaff {
		return OrderFilter{}, fmt.Errorf("%w: staff access required", models.ErrForbidden)
	}
	filter := OrderFilter{
		Statuses: models.ParseStatusList(statusCSV),
	}
	if customerEmail != "" {
		filter.CustomerEmail = &customerEmail
	}
	return filter, nil
}

// CreateOrderInput is the raw create payload. Pointer fields separate
// "absent" (defaulted) from "explicitly empty" (rejected).
type CreateOrderInput struct {
	PizzaFlavour *string `json:"pizza_flavour"`
	Size         *string `json:"size"`
	Quantity     *int    `json:"quantity"`
}

// OrderDraft is a validated create payload. The customer is always
// bound by the caller, never taken from the payload.
type OrderDraft struct {
	Flavour  string
	Size     models.Size
	Quantity int
}

// ValidateCreate checks the create payload and applies the defaults:
// size S and quantity 1 when absent. Explicitly empty or out-of-range
// values are validation errors. maxQuantity is the configured upper
// bound on the quantity.
func ValidateCreate(in CreateOrderInput, maxQuantity int) (OrderDraft, error) {
	if in.PizzaFlavour == nil || *in.PizzaFlavour == "" {
		return OrderDraft{}, fmt.Errorf("%w: pizza_flavour cannot be empty", models.ErrValidation)
	}

	size := models.SizeSmall
	if in.Size != nil {
		size = models.Size(*in.Size)
		if !size.Valid() {
			return OrderDraft{}, fmt.Errorf("%w: invalid size %q", models.ErrValidation, *in.Size)
		}
	}

	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 1 {
		return OrderDraft{}, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	}
	if quantity > maxQuantity {
		return OrderDraft{}, fmt.Errorf("%w: quantity exceeds limit of %d", models.ErrValidation, maxQuantity)
	}

	return OrderDraft{
		Flavour:  *in.PizzaFlavour,
		Size:     size,
		Quantity: quantity,
	}, nil
}

// AuthorizeUpdate enforces the terminal-state lock: a delivered order
// refuses every update, whoever asks and whatever the patch.
func AuthorizeUpdate(order *models.Order) error {
	if order.Delivered() {
		return models.ErrOrderDelivered
	}
	return nil
}

// TotalPrice computes the order total from the catalog price map.
// A size missing from the map prices as zero.
func TotalPrice(pizza *models.Pizza, size models.Size, quantity int) float64 {
	return pizza.Prices[size] * float64(quantity)
}
