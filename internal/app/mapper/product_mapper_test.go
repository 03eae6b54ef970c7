package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mrops-br/products-catalog-api/internal/app/dto"
	"github.com/mrops-br/products-catalog-api/internal/app/mapper"
	"github.com/mrops-br/products-catalog-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testID      = uuid.MustParse("097ceff8-27a8-4b31-a019-5069ea80ab5b")
	testCreated = time.Date(2023, 10, 31, 9, 0, 0, 0, time.UTC)
)

func testProduct() *domain.Product {
	return &domain.Product{
		ID:          testID,
		Name:        "laptop",
		Description: "work laptop",
		Price:       decimal.NewFromInt(10000),
		CreatedAt:   testCreated,
	}
}

func TestToProduct(t *testing.T) {
	m := mapper.NewProductMapper()

	product, err := m.ToProduct(dto.NewProductDto("laptop", "work laptop", decimal.NewFromInt(10000)))

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, product.ID)
	assert.True(t, product.CreatedAt.IsZero())
	assert.Equal(t, "laptop", product.Name)
	assert.Equal(t, "work laptop", product.Description)
	assert.True(t, decimal.NewFromInt(10000).Equal(product.Price))
}

func TestToProduct_NilDto(t *testing.T) {
	m := mapper.NewProductMapper()

	product, err := m.ToProduct(nil)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestToInfoProductDto(t *testing.T) {
	m := mapper.NewProductMapper()

	info, err := m.ToInfoProductDto(testProduct())

	require.NoError(t, err)
	assert.Equal(t, dto.InfoProductDto{
		ID:          testID,
		Name:        "laptop",
		Description: "work laptop",
		Price:       decimal.NewFromInt(10000),
	}, info)
}

func TestToInfoProductDto_NilProduct(t *testing.T) {
	m := mapper.NewProductMapper()

	_, err := m.ToInfoProductDto(nil)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestToListInfoProductDto(t *testing.T) {
	m := mapper.NewProductMapper()

	tests := []struct {
		name     string
		products []*domain.Product
	}{
		{"nil", nil},
		{"empty", []*domain.Product{}},
		{"single", []*domain.Product{testProduct()}},
		{"many", []*domain.Product{
			{ID: uuid.New(), Name: "phone"},
			{ID: uuid.New(), Name: "keyboard"},
			{ID: uuid.New(), Name: "monitor"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infos, err := m.ToListInfoProductDto(tt.products)

			require.NoError(t, err)
			require.NotNil(t, infos)
			require.Len(t, infos, len(tt.products))
			for i, p := range tt.products {
				assert.Equal(t, p.ID, infos[i].ID)
				assert.Equal(t, p.Name, infos[i].Name)
			}
		})
	}
}

func TestToListInfoProductDto_NilElement(t *testing.T) {
	m := mapper.NewProductMapper()

	infos, err := m.ToListInfoProductDto([]*domain.Product{testProduct(), nil})

	assert.Nil(t, infos)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMerge(t *testing.T) {
	m := mapper.NewProductMapper()

	tests := []struct {
		name     string
		incoming *dto.ProductDto
	}{
		{"new description", dto.NewProductDto("laptop", "hello", decimal.NewFromInt(10000))},
		{"new name", dto.NewProductDto("keyboard", "work laptop", decimal.NewFromInt(10000))},
		{"new price", dto.NewProductDto("laptop", "gaming laptop", decimal.RequireFromString("1500.00"))},
		{"blank values overwrite", dto.NewProductDto("", "", decimal.Zero)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := testProduct()

			merged, err := m.Merge(existing, tt.incoming)

			require.NoError(t, err)
			assert.Equal(t, testID, merged.ID)
			assert.Equal(t, testCreated, merged.CreatedAt)
			assert.Equal(t, tt.incoming.Name, merged.Name)
			assert.Equal(t, tt.incoming.Description, merged.Description)
			assert.True(t, tt.incoming.Price.Equal(merged.Price))
			assert.Equal(t, "laptop", existing.Name, "existing product must not be mutated")
		})
	}
}

func TestMerge_NilArguments(t *testing.T) {
	m := mapper.NewProductMapper()

	_, err := m.Merge(nil, dto.NewProductDto("laptop", "", decimal.Zero))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = m.Merge(testProduct(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
