package services

import "errors"

// Typed failures returned by the services. Controllers map these onto
// HTTP status codes with errors.Is.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrFoodNotFound       = errors.New("food not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")

	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidOrderStatus = errors.New("please select a valid order status")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFound reports whether err is one of the not-found failures.
func NotFound(err error) bool {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrFoodNotFound),
		errors.Is(err, ErrRestaurantNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrIngredientNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrCartItemNotFound),
		errors.Is(err, ErrOrderNotFound):
		return true
	}
	return false
}

// InvalidInput reports whether err is a caller input problem.
func InvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrInvalidOrderStatus)
}
