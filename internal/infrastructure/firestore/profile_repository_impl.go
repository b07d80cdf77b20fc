package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
	"github.com/dmarquezv/tiendaropa/internal/domain/repository"
)

type ProfileRepository struct {
	client     *firestore.Client
	collection string
}

func NewProfileRepository(client *firestore.Client, collection string) *ProfileRepository {
	return &ProfileRepository{client: client, collection: collection}
}

func (r *ProfileRepository) Set(ctx context.Context, p *entity.Profile) error {
	_, err := r.client.Collection(r.collection).Doc(p.UID).Set(ctx, p)
	return err
}

func (r *ProfileRepository) GetByUID(ctx context.Context, uid string) (*entity.Profile, error) {
	snap, err := r.client.Collection(r.collection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p := &entity.Profile{}
	if err := snap.DataTo(p); err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
