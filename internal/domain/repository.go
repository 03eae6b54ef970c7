package domain

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the contract for product storage.
// Absence is reported through the boolean result, never as an error.
// Save of a nil product is a no-op returning nil.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, bool)
	FindAll(ctx context.Context) []*Product
	Save(ctx context.Context, product *Product) *Product
	Delete(ctx context.Context, id uuid.UUID)
}
