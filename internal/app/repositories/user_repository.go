package repositories

import (
	"context"

	"github.com/lmshub/lms-backend/internal/app/models"
	"github.com/lmshub/lms-backend/internal/store"
)

// UserRepository reads user records.
type UserRepository struct {
	store store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// GetByName retrieves a user by identifier. Returns store.ErrNotFound
// when the user does not exist.
func (r *UserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	record, err := r.store.Get(ctx, store.EntityUser, name)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Name:     record.Str("name"),
		Email:    record.Str("email"),
		FullName: record.Str("full_name"),
	}, nil
}
