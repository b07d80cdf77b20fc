package repository

import (
	"context"
	"errors"

	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
)

// ErrNotFound is returned by repositories when the requested document does
// not exist.
var ErrNotFound = errors.New("not found")

// ProductUpdate carries the editable product fields for an update. The
// owning-seller id is deliberately absent: it is immutable once set.
type ProductUpdate struct {
	Name  string
	Size  string
	Price string
}

// ProductRepository defines the operations the application needs on product
// documents.
type ProductRepository interface {
	// Add creates a new product document and returns its store-assigned id.
	Add(ctx context.Context, p *entity.Product) (string, error)
	// ListBySeller returns every product whose owning-seller id equals
	// sellerID, with document ids attached. An empty result is not an error.
	ListBySeller(ctx context.Context, sellerID string) ([]entity.Product, error)
	// GetByID returns ErrNotFound when no product document exists for id.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update overwrites the editable fields and stamps the update time.
	Update(ctx context.Context, id string, upd ProductUpdate) error
	// Delete removes the product document by id.
	Delete(ctx context.Context, id string) error
}
