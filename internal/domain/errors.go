package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ProductNotFoundError is returned when no stored product matches ID
type ProductNotFoundError struct {
	ID uuid.UUID
}

// NewProductNotFoundError creates a not found error for the given product ID
func NewProductNotFoundError(id uuid.UUID) *ProductNotFoundError {
	return &ProductNotFoundError{ID: id}
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with uuid: %s not found", e.ID)
}

// Is makes errors.Is(err, ErrProductNotFound) match
func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
