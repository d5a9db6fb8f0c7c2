package inventory

import (
	"context"

	"github.com/dusk-indust/stockroom/internal/record"
)

// CategoryRepository keeps categories for the lifetime of the process. It has
// no store and nothing it holds reaches disk.
type CategoryRepository struct {
	list *collection[record.Category]
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{list: newCollection[record.Category](nil)}
}

// Create assigns the next identifier to candidate and keeps it in memory.
func (r *CategoryRepository) Create(candidate record.Category) record.Category {
	// Without a store create cannot fail.
	c, _ := r.list.create(context.Background(), candidate)
	return c
}

func (r *CategoryRepository) List() []record.Category {
	return r.list.all()
}
