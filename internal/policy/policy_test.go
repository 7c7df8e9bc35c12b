package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
)

const testMaxQuantity = 2147483647

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCustomerScope(t *testing.T) {
	filter := CustomerScope(42, "")
	require.NotNil(t, filter.CustomerID)
	assert.Equal(t, uint(42), *filter.CustomerID)
	assert.Empty(t, filter.Statuses)
	assert.Nil(t, filter.CustomerEmail)

	filter = CustomerScope(42, "I,P")
	assert.Equal(t, []string{"I", "P"}, filter.Statuses)
}

func TestStaffScopeDeniesNonStaff(t *testing.T) {
	customer := &models.User{ID: 1, Email: "johnny@andela.com"}

	_, err := StaffScope(customer, "", "")
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = StaffScope(nil, "", "")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestStaffScopeFilters(t *testing.T) {
	staff := &models.User{ID: 2, Email: "admin@andela.com", IsStaff: true}

	filter, err := StaffScope(staff, "I,P", "johnny@andela.com")
	require.NoError(t, err)
	assert.Nil(t, filter.CustomerID) // cross-customer
	assert.Equal(t, []string{"I", "P"}, filter.Statuses)
	require.NotNil(t, filter.CustomerEmail)
	assert.Equal(t, "johnny@andela.com", *filter.CustomerEmail)
}

func TestStaffScopeKeepsUnknownStatusCodes(t *testing.T) {
	// Unknown codes flow into the IN filter and match nothing,
	// mirroring the permissive filter behavior.
	staff := &models.User{IsStaff: true}

	filter, err := StaffScope(staff, "X,P", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "P"}, filter.Statuses)
}

func TestValidateCreateDefaults(t *testing.T) {
	draft, err := ValidateCreate(CreateOrderInput{
		PizzaFlavour: strPtr("Vegan"),
	}, testMaxQuantity)
	require.NoError(t, err)

	assert.Equal(t, "Vegan", draft.Flavour)
	assert.Equal(t, models.SizeSmall, draft.Size)
	assert.Equal(t, 1, draft.Quantity)
}

func TestValidateCreateRejections(t *testing.T) {
	testCases := []struct {
		name  string
		input CreateOrderInput
	}{
		{
			name:  "missing flavour",
			input: CreateOrderInput{},
		},
		{
			name:  "empty flavour",
			input: CreateOrderInput{PizzaFlavour: strPtr("")},
		},
		{
			name:  "explicitly empty size",
			input: CreateOrderInput{PizzaFlavour: strPtr("Vegan"), Size: strPtr("")},
		},
		{
			name:  "unknown size",
			input: CreateOrderInput{PizzaFlavour: strPtr("Vegan"), Size: strPtr("XL")},
		},
		{
			name:  "zero quantity",
			input: CreateOrderInput{PizzaFlavour: strPtr("Vegan"), Quantity: intPtr(0)},
		},
		{
			name:  "negative quantity",
			input: CreateOrderInput{PizzaFlavour: strPtr("Vegan"), Quantity: intPtr(-3)},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCreate(tt.input, testMaxQuantity)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func TestValidateCreateQuantityBound(t *testing.T) {
	_, err := ValidateCreate(CreateOrderInput{
		PizzaFlavour: strPtr("Vegan"),
		Quantity:     intPtr(11),
	}, 10)
	assert.ErrorIs(t, err, models.ErrValidation)

	draft, err := ValidateCreate(CreateOrderInput{
		PizzaFlavour: strPtr("Vegan"),
		Quantity:     intPtr(10),
	}, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, draft.Quantity)
}

func TestAuthorizeUpdateDeliveredLock(t *testing.T) {
	delivered := &models.Order{Status: models.StatusDelivered}
	assert.ErrorIs(t, AuthorizeUpdate(delivered), models.ErrForbidden)

	for _, status := range []models.Status{
		models.StatusPending,
		models.StatusInProgress,
		models.StatusCancelled,
		models.StatusDone,
	} {
		order := &models.Order{Status: status}
		assert.NoError(t, AuthorizeUpdate(order), "status %s should be mutable", status)
	}
}

func TestTotalPrice(t *testing.T) {
	pizza := &models.Pizza{
		Flavour: "Vegan",
		Prices: models.PriceMap{
			models.SizeSmall:  10,
			models.SizeMedium: 15,
			models.SizeLarge:  20,
		},
	}

	assert.Equal(t, 30.0, TotalPrice(pizza, models.SizeMedium, 2))
	assert.Equal(t, 10.0, TotalPrice(pizza, models.SizeSmall, 1))
	assert.Equal(t, 60.0, TotalPrice(pizza, models.SizeLarge, 3))
}

func TestTotalPriceMissingSizeIsZero(t *testing.T) {
	// A size absent from the price map prices as zero rather than
	// failing the whole request.
	pizza := &models.Pizza{
		Flavour: "Dessert",
		Prices:  models.PriceMap{models.SizeSmall: 8},
	}

	assert.Equal(t, 0.0, TotalPrice(pizza, models.SizeLarge, 4))
}
