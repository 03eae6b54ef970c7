package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mrops-br/products-catalog-api/internal/app/dto"
	"github.com/mrops-br/products-catalog-api/internal/app/mapper"
	"github.com/mrops-br/products-catalog-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	resultSuccess  = "success"
	resultFailure  = "failure"
	resultNotFound = "not_found"
)

// ProductService handles product use cases
type ProductService struct {
	repo                  domain.ProductRepository
	mapper                mapper.ProductMapper
	tracer                trace.Tracer
	logger                *slog.Logger
	now                   func() time.Time
	productCreatedCounter metric.Int64Counter
	productDeletedCounter metric.Int64Counter
	productOperations     metric.Int64Counter
}

// NewProductService creates a new product service
func NewProductService(
	repo domain.ProductRepository,
	productMapper mapper.ProductMapper,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ProductService {
	// Initialize metrics
	productCreatedCounter, _ := meter.Int64Counter(
		"products.created.total",
		metric.WithDescription("Total number of products created"),
	)

	productDeletedCounter, _ := meter.Int64Counter(
		"products.deleted.total",
		metric.WithDescription("Total number of product delete requests"),
	)

	productOperations, _ := meter.Int64Counter(
		"products.operations",
		metric.WithDescription("Total number of product operations"),
	)

	return &ProductService{
		repo:                  repo,
		mapper:                productMapper,
		tracer:                tracer,
		logger:                logger,
		now:                   time.Now,
		productCreatedCounter: productCreatedCounter,
		productDeletedCounter: productDeletedCounter,
		productOperations:     productOperations,
	}
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*dto.InfoProductDto, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Get")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	s.logger.InfoContext(ctx, "Getting product by ID",
		slog.String("product_id", id.String()),
	)

	product, err := s.find(ctx, span, "read", id)
	if err != nil {
		return nil, err
	}

	info, err := s.mapper.ToInfoProductDto(product)
	if err != nil {
		s.fail(ctx, span, "read", "Failed to map product", err)
		return nil, err
	}

	s.recordOperation(ctx, "read", resultSuccess)

	s.logger.InfoContext(ctx, "Product retrieved successfully",
		slog.String("product_id", id.String()),
	)

	span.SetStatus(codes.Ok, "Product retrieved successfully")
	return &info, nil
}

// GetAll retrieves all products
func (s *ProductService) GetAll(ctx context.Context) ([]dto.InfoProductDto, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetAll")
	defer span.End()

	s.logger.InfoContext(ctx, "Listing all products")

	products := s.repo.FindAll(ctx)

	infos, err := s.mapper.ToListInfoProductDto(products)
	if err != nil {
		s.fail(ctx, span, "list", "Failed to map products", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.count", len(infos)))

	s.recordOperation(ctx, "list", resultSuccess)

	s.logger.InfoContext(ctx, "Products listed successfully",
		slog.Int("count", len(infos)),
	)

	span.SetStatus(codes.Ok, "Products listed successfully")
	return infos, nil
}

// Create stores a new product and returns its generated ID
func (s *ProductService) Create(ctx context.Context, productDto *dto.ProductDto) (uuid.UUID, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Create")
	defer span.End()

	product, err := s.mapper.ToProduct(productDto)
	if err != nil {
		s.fail(ctx, span, "create", "Invalid product", err)
		return uuid.Nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.price", product.Price.String()),
	)

	s.logger.InfoContext(ctx, "Creating product",
		slog.String("name", product.Name),
		slog.String("price", product.Price.String()),
	)

	product.CreatedAt = s.now().UTC()
	saved := s.repo.Save(ctx, product)

	span.SetAttributes(attribute.String("product.id", saved.ID.String()))

	// Record metrics
	s.productCreatedCounter.Add(ctx, 1)
	s.recordOperation(ctx, "create", resultSuccess)

	s.logger.InfoContext(ctx, "Product created successfully",
		slog.String("product_id", saved.ID.String()),
	)

	span.SetStatus(codes.Ok, "Product created successfully")
	return saved.ID, nil
}

// Update replaces name, description and price of an existing product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, productDto *dto.ProductDto) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Update")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	s.logger.InfoContext(ctx, "Updating product",
		slog.String("product_id", id.String()),
	)

	existing, err := s.find(ctx, span, "update", id)
	if err != nil {
		return err
	}

	merged, err := s.mapper.Merge(existing, productDto)
	if err != nil {
		s.fail(ctx, span, "update", "Invalid product", err)
		return err
	}

	s.repo.Save(ctx, merged)

	s.recordOperation(ctx, "update", resultSuccess)

	s.logger.InfoContext(ctx, "Product updated successfully",
		slog.String("product_id", id.String()),
	)

	span.SetStatus(codes.Ok, "Product updated successfully")
	return nil
}

// Delete removes a product. Deleting an unknown product succeeds.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	s.logger.InfoContext(ctx, "Deleting product",
		slog.String("product_id", id.String()),
	)

	s.repo.Delete(ctx, id)

	s.productDeletedCounter.Add(ctx, 1)
	s.recordOperation(ctx, "delete", resultSuccess)

	span.SetStatus(codes.Ok, "Product deleted successfully")
}

// find loads a product and converts absence into a ProductNotFoundError
func (s *ProductService) find(ctx context.Context, span trace.Span, operation string, id uuid.UUID) (*domain.Product, error) {
	product, ok := s.repo.FindByID(ctx, id)
	if ok {
		return product, nil
	}

	err := domain.NewProductNotFoundError(id)
	span.RecordError(err)
	span.SetStatus(codes.Error, "Product not found")
	s.logger.WarnContext(ctx, "Product not found",
		slog.String("product_id", id.String()),
	)
	s.recordOperation(ctx, operation, resultNotFound)
	return nil, err
}

func (s *ProductService) fail(ctx context.Context, span trace.Span, operation, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	s.logger.ErrorContext(ctx, msg,
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
	s.recordOperation(ctx, operation, resultFailure)
}

func (s *ProductService) recordOperation(ctx context.Context, operation, result string) {
	s.productOperations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		),
	)
}
