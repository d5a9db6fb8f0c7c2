package inventory

import (
	"context"
	"fmt"

	"github.com/dusk-indust/stockroom/internal/filestore"
	"github.com/dusk-indust/stockroom/internal/record"
)

// UserRepository holds the user list. Users can be created and listed only.
type UserRepository struct {
	list *collection[record.User]
}

// NewUserRepository returns an empty repository bound to store.
func NewUserRepository(store *filestore.Store[record.User]) *UserRepository {
	return &UserRepository{list: newCollection(store)}
}

func (r *UserRepository) Load(ctx context.Context) error {
	return r.list.load(ctx)
}

func (r *UserRepository) Save(ctx context.Context) error {
	return r.list.save(ctx)
}

// Create assigns the next identifier to candidate and stores it.
func (r *UserRepository) Create(ctx context.Context, candidate record.User) (record.User, error) {
	u, err := r.list.create(ctx, candidate)
	if err != nil {
		return record.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List() []record.User {
	return r.list.all()
}
