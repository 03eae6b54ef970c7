package mapper

import (
	"fmt"

	"github.com/mrops-br/products-catalog-api/internal/app/dto"
	"github.com/mrops-br/products-catalog-api/internal/domain"
)

// ProductMapper converts between product DTOs and the domain entity
type ProductMapper interface {
	// ToProduct builds a new product without identifier and creation time
	ToProduct(productDto *dto.ProductDto) (*domain.Product, error)
	// ToInfoProductDto projects a product to its read side shape, dropping the creation time
	ToInfoProductDto(product *domain.Product) (dto.InfoProductDto, error)
	// ToListInfoProductDto maps every product, keeping order and length
	ToListInfoProductDto(products []*domain.Product) ([]dto.InfoProductDto, error)
	// Merge applies the DTO fields to the product, keeping its identifier and creation time
	Merge(product *domain.Product, productDto *dto.ProductDto) (*domain.Product, error)
}

type productMapper struct{}

// NewProductMapper creates the default product mapper
func NewProductMapper() ProductMapper {
	return productMapper{}
}

func (productMapper) ToProduct(productDto *dto.ProductDto) (*domain.Product, error) {
	if productDto == nil {
		return nil, fmt.Errorf("%w: product dto is nil", domain.ErrInvalidArgument)
	}

	return &domain.Product{
		Name:        productDto.Name,
		Description: productDto.Description,
		Price:       productDto.Price,
	}, nil
}

func (productMapper) ToInfoProductDto(product *domain.Product) (dto.InfoProductDto, error) {
	if product == nil {
		return dto.InfoProductDto{}, fmt.Errorf("%w: product is nil", domain.ErrInvalidArgument)
	}

	return dto.InfoProductDto{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}, nil
}

func (m productMapper) ToListInfoProductDto(products []*domain.Product) ([]dto.InfoProductDto, error) {
	infos := make([]dto.InfoProductDto, len(products))
	for i, p := range products {
		info, err := m.ToInfoProductDto(p)
		if err != nil {
			return nil, fmt.Errorf("product at index %d: %w", i, err)
		}
		infos[i] = info
	}
	return infos, nil
}

// Merge replaces name, description and price wholesale. Empty DTO values
// overwrite stored ones; there is no partial patch.
func (productMapper) Merge(product *domain.Product, productDto *dto.ProductDto) (*domain.Product, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: product is nil", domain.ErrInvalidArgument)
	}
	if productDto == nil {
		return nil, fmt.Errorf("%w: product dto is nil", domain.ErrInvalidArgument)
	}

	return &domain.Product{
		ID:          product.ID,
		Name:        productDto.Name,
		Description: productDto.Description,
		Price:       productDto.Price,
		CreatedAt:   product.CreatedAt,
	}, nil
}
