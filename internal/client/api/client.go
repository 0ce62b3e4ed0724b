// Package api implements the REST clients for the dashboard backend: one
// transport core that attaches the bearer token and the tunnel-bypass header
// to every request, and three resource clients (auth, products, contact
// messages) on top of it. Errors map onto package sentinels so callers can
// branch with errors.Is.
package api

import (
	"context"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
)

// AuthClient authenticates staff accounts.
type AuthClient interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Logout tells the server to invalidate the current session. Callers
	// clear local state regardless of the outcome.
	Logout(ctx context.Context) error
}

// ListProductsResult is one page of the product listing.
type ListProductsResult struct {
	Items      []models.Product
	Pagination models.PaginationResult
}

// ImageFile is a new image to upload with a product create or update.
type ImageFile struct {
	Name    string
	Content []byte
}

// ProductForm carries the fields of a product create/update request. On
// update, KeptImages lists the existing image references to retain; they are
// sent before any new uploads so the server preserves ordering.
type ProductForm struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Sizes       []string
	Colors      []string
	KeptImages  []string
	NewImages   []ImageFile
}

// ProductClient manages the catalog.
type ProductClient interface {
	ListProducts(ctx context.Context, page, limit int) (ListProductsResult, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	CreateProduct(ctx context.Context, form ProductForm) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, form ProductForm) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ListMessagesResult is one page of the contact-message listing.
type ListMessagesResult struct {
	Items      []models.ContactMessage
	Pagination models.PaginationResult
}

// ContactClient reads customer contact-form submissions.
type ContactClient interface {
	ListMessages(ctx context.Context, page, limit int) (ListMessagesResult, error)
}
