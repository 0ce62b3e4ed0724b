package services

import (
	"context"
	"fmt"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/api"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
	"github.com/rofaidaezzat/fashon-dashboard/internal/logging"
	"github.com/rofaidaezzat/fashon-dashboard/internal/validation"
)

// ProductService manages the catalog: cached paged listings and validated
// mutations. Every mutation invalidates the listing cache so the next List
// refetches.
type ProductService interface {
	List(ctx context.Context, page int) (api.ListProductsResult, error)
	Get(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, form api.ProductForm) (models.Product, error)
	Update(ctx context.Context, id string, form api.ProductForm) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	client api.ProductClient
	limit  int
	log    logging.Logger
	cache  *listingCache[api.ListProductsResult]
}

// NewProductService constructs a ProductService requesting limit records
// per page.
func NewProductService(client api.ProductClient, limit int, log logging.Logger) ProductService {
	return &productService{
		client: client,
		limit:  limit,
		log:    log,
		cache:  newListingCache[api.ListProductsResult](),
	}
}

// List returns one catalog page, from cache when it is still current.
func (s *productService) List(ctx context.Context, page int) (api.ListProductsResult, error) {
	if cached, ok := s.cache.get(page); ok {
		return cached, nil
	}

	seq, gen := s.cache.beginFetch()
	res, err := s.client.ListProducts(ctx, page, s.limit)
	if err != nil {
		return api.ListProductsResult{}, fmt.Errorf("list products page %d: %w", page, err)
	}

	if !s.cache.commit(page, seq, gen, res) {
		s.log.Warn(ctx, "discarding stale product listing", "page", page)
	}
	return res, nil
}

func (s *productService) Get(ctx context.Context, id string) (models.Product, error) {
	p, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

// Create validates and uploads a new product.
func (s *productService) Create(ctx context.Context, form api.ProductForm) (models.Product, error) {
	canonicalize(&form)
	if err := validateProductForm(form); err != nil {
		return models.Product{}, err
	}

	created, err := s.client.CreateProduct(ctx, form)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.cache.invalidate()
	return created, nil
}

// Update validates and patches an existing product.
func (s *productService) Update(ctx context.Context, id string, form api.ProductForm) (models.Product, error) {
	canonicalize(&form)
	if err := validateProductForm(form); err != nil {
		return models.Product{}, err
	}

	updated, err := s.client.UpdateProduct(ctx, id, form)
	if err != nil {
		return models.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}

	s.cache.invalidate()
	return updated, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	s.cache.invalidate()
	return nil
}

// canonicalize applies the same size/color normalization to outgoing forms
// that listings get at ingress, so legacy spellings typed by staff land on
// the server in canonical form.
func canonicalize(form *api.ProductForm) {
	form.Sizes = models.NormalizeSizes(form.Sizes)
	form.Colors = models.NormalizeColors(form.Colors)
}

func validateProductForm(form api.ProductForm) error {
	images := make([]string, 0, len(form.KeptImages)+len(form.NewImages))
	images = append(images, form.KeptImages...)
	for _, img := range form.NewImages {
		images = append(images, img.Name)
	}

	return validation.Validate(validation.ProductForm{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Category:    form.Category,
		Sizes:       form.Sizes,
		Colors:      form.Colors,
		Images:      images,
	})
}
