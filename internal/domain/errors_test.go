package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mrops-br/products-catalog-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProductNotFoundError(t *testing.T) {
	id := uuid.MustParse("097ceff8-27a8-4b31-a019-5069ea80ab5b")

	err := domain.NewProductNotFoundError(id)

	assert.Equal(t, "Product with uuid: 097ceff8-27a8-4b31-a019-5069ea80ab5b not found", err.Error())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.NotErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestProductNotFoundError_Wrapped(t *testing.T) {
	id := uuid.New()
	wrapped := fmt.Errorf("update: %w", domain.NewProductNotFoundError(id))

	var target *domain.ProductNotFoundError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, id, target.ID)
	assert.ErrorIs(t, wrapped, domain.ErrProductNotFound)
}

func TestProduct_Clone(t *testing.T) {
	original := &domain.Product{ID: uuid.New(), Name: "laptop"}

	clone := original.Clone()
	clone.Name = "phone"

	assert.Equal(t, "laptop", original.Name)
	assert.Equal(t, original.ID, clone.ID)
	assert.True(t, original.HasID())
	assert.False(t, (&domain.Product{}).HasID())
}
