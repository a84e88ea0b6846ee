package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Collection names
const (
	MenuCollection    = "menus"
	CartCollection    = "cartItems"
	UserCollection    = "users"
	PaymentCollection = "payments"
)

// Error messages
const (
	ErrMenuNotFound = "Menu item not found"
	ErrUserNotFound = "User not found"
	ErrUserExists   = "User already exists"
	ErrUnexpected   = "Unexpected error"
	ErrInvalidID    = "Invalid id"
	ErrInvalidInput = "Invalid input"
	ErrForbidden    = "Forbidden access"
)
