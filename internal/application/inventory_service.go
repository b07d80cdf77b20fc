package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
	"github.com/dmarquezv/tiendaropa/internal/domain/repository"
)

var (
	// ErrProductNotFound reports a product id with no backing document.
	ErrProductNotFound = errors.New("product not found")
	// ErrNotOwner reports an edit attempt on a product owned by another
	// seller. The update is never attempted when this is returned.
	ErrNotOwner = errors.New("product owned by another seller")
)

// ProductInput carries the form fields of a product create or edit.
type ProductInput struct {
	Name  string
	Size  string
	Price string
}

// InventoryService owns the per-seller product catalog operations.
type InventoryService struct {
	Products repository.ProductRepository
	Logger   *logrus.Logger
}

func NewInventoryService(products repository.ProductRepository, logger *logrus.Logger) *InventoryService {
	return &InventoryService{Products: products, Logger: logger}
}

// List returns the seller's products, store ids attached. An empty catalog
// is an empty slice, not an error.
func (s *InventoryService) List(ctx context.Context, sellerID string) ([]entity.Product, error) {
	products, err := s.Products.ListBySeller(ctx, sellerID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("seller_id", sellerID).Error("product list failed")
		}
		return nil, err
	}
	return products, nil
}

// Add creates a product owned by sellerID and returns its store id.
func (s *InventoryService) Add(ctx context.Context, sellerID string, in ProductInput) (string, error) {
	p := &entity.Product{
		Name:     in.Name,
		Size:     in.Size,
		Price:    in.Price,
		SellerID: sellerID,
	}
	id, err := s.Products.Add(ctx, p)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("seller_id", sellerID).Error("product create failed")
		}
		return "", err
	}
	return id, nil
}

// GetOwned loads a product and enforces that sellerID owns it. Both the
// edit form and the update go through this check.
func (s *InventoryService) GetOwned(ctx context.Context, sellerID, id string) (*entity.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.SellerID != sellerID {
		return nil, ErrNotOwner
	}
	return p, nil
}

// Update overwrites the editable fields of a product after the ownership
// check passes. On ErrNotOwner no write is issued.
func (s *InventoryService) Update(ctx context.Context, sellerID, id string, in ProductInput) error {
	if _, err := s.GetOwned(ctx, sellerID, id); err != nil {
		return err
	}
	err := s.Products.Update(ctx, id, repository.ProductUpdate{
		Name:  in.Name,
		Size:  in.Size,
		Price: in.Price,
	})
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Error("product update failed")
		}
	}
	return err
}

// Delete removes a product by id. No ownership comparison happens here;
// the route is session-guarded but any authenticated seller's delete of a
// known id goes through. Documented current behavior.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	err := s.Products.Delete(ctx, id)
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("product_id", id).Error("product delete failed")
	}
	return err
}
