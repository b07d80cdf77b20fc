package repository

import (
	"context"

	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
)

// ProfileRepository defines the operations the application needs on seller
// profile documents.
type ProfileRepository interface {
	// Set writes the profile document keyed by its UID, overwriting any
	// existing document with that key.
	Set(ctx context.Context, p *entity.Profile) error
	// GetByUID returns ErrNotFound when no profile document exists for uid.
	GetByUID(ctx context.Context, uid string) (*entity.Profile, error)
}
