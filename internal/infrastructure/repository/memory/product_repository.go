package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/mrops-br/products-catalog-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ProductRepository is an in-memory implementation of domain.ProductRepository
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*domain.Product
	order    []uuid.UUID
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(tracer trace.Tracer, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		products: make(map[uuid.UUID]*domain.Product),
		tracer:   tracer,
		logger:   logger,
	}
}

// FindByID retrieves a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, bool) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	if id == uuid.Nil {
		span.SetStatus(codes.Ok, "Nil product ID")
		return nil, false
	}

	r.mu.RLock()
	product, exists := r.products[id]
	r.mu.RUnlock()

	if !exists {
		span.SetAttributes(attribute.Bool("product.found", false))
		r.logger.DebugContext(ctx, "Product not found in repository",
			slog.String("product_id", id.String()),
		)
		return nil, false
	}

	r.logger.DebugContext(ctx, "Product found in repository",
		slog.String("product_id", id.String()),
		slog.String("product_name", product.Name),
	)

	span.SetAttributes(attribute.Bool("product.found", true))
	span.SetStatus(codes.Ok, "Product found")
	return product.Clone(), true
}

// FindAll retrieves all products in insertion order
func (r *ProductRepository) FindAll(ctx context.Context) []*domain.Product {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	products := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id].Clone())
	}
	r.mu.RUnlock()

	span.SetAttributes(attribute.Int("product.count", len(products)))

	r.logger.DebugContext(ctx, "Products retrieved from repository",
		slog.Int("count", len(products)),
	)

	span.SetStatus(codes.Ok, "Products retrieved successfully")
	return products
}

// Save stores a product, generating its ID when unset. An existing entry
// with the same ID is overwritten in place. A nil product stores nothing.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) *domain.Product {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Save")
	defer span.End()

	if product == nil {
		r.logger.WarnContext(ctx, "Ignoring save of nil product")
		span.SetStatus(codes.Error, "nil product")
		return nil
	}

	stored := product.Clone()
	if !stored.HasID() {
		stored.ID = uuid.New()
	}

	span.SetAttributes(
		attribute.String("product.id", stored.ID.String()),
		attribute.String("product.name", stored.Name),
	)

	r.mu.Lock()
	_, exists := r.products[stored.ID]
	if !exists {
		r.order = append(r.order, stored.ID)
	}
	r.products[stored.ID] = stored
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Product saved in repository",
		slog.String("product_id", stored.ID.String()),
		slog.String("product_name", stored.Name),
		slog.Bool("overwritten", exists),
	)

	span.SetStatus(codes.Ok, "Product saved successfully")
	return stored.Clone()
}

// Delete removes a product. Deleting an unknown ID is a no-op.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id.String()))

	r.mu.Lock()
	_, exists := r.products[id]
	if exists {
		delete(r.products, id)
		r.order = slices.DeleteFunc(r.order, func(stored uuid.UUID) bool {
			return stored == id
		})
	}
	r.mu.Unlock()

	span.SetAttributes(attribute.Bool("product.existed", exists))

	r.logger.InfoContext(ctx, "Product deleted from repository",
		slog.String("product_id", id.String()),
		slog.Bool("existed", exists),
	)

	span.SetStatus(codes.Ok, "Product deleted")
}
