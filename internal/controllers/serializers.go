package controllers

import (
	"time"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/policy"
)

// OrderResponse is the wire representation of an order. The total is
// derived from the catalog price map, never read from storage.
type OrderResponse struct {
	ID           string    `json:"id"`
	TotalPrice   float64   `json:"total_price"`
	PizzaFlavour string    `json:"pizza_flavour"`
	Customer     string    `json:"customer"`
	Size         string    `json:"size"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// PizzaResponse is the wire representation of a catalog entry.
type PizzaResponse struct {
	ID        string          `json:"id"`
	Flavour   string          `json:"flavour"`
	Prices    models.PriceMap `json:"prices"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserResponse is the wire representation of an account.
type UserResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	IsStaff bool   `json:"is_staff"`
}

func toOrderResponse(order *models.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		TotalPrice:   policy.TotalPrice(&order.Pizza, order.Size, order.Quantity),
		PizzaFlavour: order.Pizza.Flavour,
		Customer:     order.Customer.DisplayName(),
		Size:         string(order.Size),
		Quantity:     order.Quantity,
		Status:       order.Status.Label(),
		CreatedAt:    order.CreatedAt,
	}
}

func toOrderResponses(orders []models.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}
	return responses
}

func toPizzaResponse(pizza *models.Pizza) PizzaResponse {
	return PizzaResponse{
		ID:        pizza.ID,
		Flavour:   pizza.Flavour,
		Prices:    pizza.Prices,
		CreatedAt: pizza.CreatedAt,
	}
}

func toPizzaResponses(pizzas []models.Pizza) []PizzaResponse {
	responses := make([]PizzaResponse, 0, len(pizzas))
	for i := range pizzas {
		responses = append(responses, toPizzaResponse(&pizzas[i]))
	}
	return responses
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		IsStaff: user.IsStaff,
	}
}
