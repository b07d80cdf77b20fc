package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
	"github.com/dmarquezv/tiendaropa/internal/domain/repository"
)

type ProductRepository struct {
	client     *firestore.Client
	collection string
}

func NewProductRepository(client *firestore.Client, collection string) *ProductRepository {
	return &ProductRepository{client: client, collection: collection}
}

func (r *ProductRepository) Add(ctx context.Context, p *entity.Product) (string, error) {
	ref, _, err := r.client.Collection(r.collection).Add(ctx, p)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *ProductRepository) ListBySeller(ctx context.Context, sellerID string) ([]entity.Product, error) {
	iter := r.client.Collection(r.collection).
		Where("usuario_id", "==", sellerID).
		Documents(ctx)
	defer iter.Stop()

	products := []entity.Product{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var p entity.Product
		if err := snap.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = snap.Ref.ID
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p := &entity.Product{}
	if err := snap.DataTo(p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, upd repository.ProductUpdate) error {
	_, err := r.client.Collection(r.collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "nombre", Value: upd.Name},
		{Path: "talla", Value: upd.Size},
		{Path: "precio", Value: upd.Price},
		{Path: "fecha_actualizacion", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	// Delete is not conditional on existence; Firestore treats deleting a
	// missing document as success, matching the list-redirect contract.
	_, err := r.client.Collection(r.collection).Doc(id).Delete(ctx)
	return err
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
