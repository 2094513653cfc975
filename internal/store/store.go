// Package store holds the persistence interfaces consumed by the HTTP
// handlers and their MongoDB implementations. Handlers depend only on the
// interfaces so tests can substitute in-memory fakes.
package store

import (
	"context"
	"errors"

	"phonekart-backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no document. Handlers map it
// to a 404 (or, where the contract says so, a 400).
var ErrNotFound = errors.New("document not found")

type UserStore interface {
	Create(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	SetCartItems(ctx context.Context, id string, items []models.CartItem) error
	SetWishListItems(ctx context.Context, id string, items []string) error
}

type ProductStore interface {
	FindByBrand(ctx context.Context, brand string, skip, limit int64) ([]models.Product, error)
	CountByBrand(ctx context.Context, brand string) (int64, error)
	FindByBrandAndModel(ctx context.Context, brand, model string, skip, limit int64) ([]models.Product, error)
	CountByBrandAndModel(ctx context.Context, brand, model string) (int64, error)
	FindByLink(ctx context.Context, link string) (*models.Product, error)
	FindByLinks(ctx context.Context, links []string) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
}

type BrandStore interface {
	FindAll(ctx context.Context) ([]models.Brand, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
}

type ContactStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Contact, error)
	FindByID(ctx context.Context, id string) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Update(ctx context.Context, id string, name, number string) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}
