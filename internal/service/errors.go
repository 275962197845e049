package service

import "errors"

// Ошибки сервисного слоя. Текст ошибки уходит клиенту в поле message.
var (
	ErrUsernameTaken      = errors.New("Username is already taken")
	ErrEmailTaken         = errors.New("Email is already registered")
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrUserNotFound       = errors.New("User not found")

	ErrBlockTargetNotFound = errors.New("User to block not found")
	ErrSelfBlock           = errors.New("You cannot block yourself")
	ErrAlreadyBlocked      = errors.New("You have already blocked this user")
	ErrNotBlocked          = errors.New("You have not blocked this user")

	ErrBrandNotFound    = errors.New("Brand not found")
	ErrBrandNameTaken   = errors.New("Brand with this name already exists")
	ErrBrandHasProducts = errors.New("Brand still has products and cannot be deleted")
	ErrBrandForbidden   = errors.New("You can only modify your own brands")

	ErrProductNotFound        = errors.New("Product not found")
	ErrProductHidden          = errors.New("You do not have access to this product")
	ErrProductEditForbidden   = errors.New("You can only edit your own products")
	ErrProductDeleteForbidden = errors.New("You can only delete your own products")
	ErrBrandDoesNotExist      = errors.New("Brand does not exist")
	ErrCategoryNotInBrand     = errors.New("Category does not exist in the brand's categories")
)

// ValidationError — некорректный ввод (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }
