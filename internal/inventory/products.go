package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dusk-indust/stockroom/internal/filestore"
	"github.com/dusk-indust/stockroom/internal/record"
)

// ErrNotFound is returned when an operation targets an identifier that no
// record carries.
var ErrNotFound = errors.New("inventory: not found")

// ProductRepository holds the product list and writes it to its store after
// every mutation.
type ProductRepository struct {
	list *collection[record.Product]
}

// NewProductRepository returns an empty repository bound to store. Call Load
// to read existing records.
func NewProductRepository(store *filestore.Store[record.Product]) *ProductRepository {
	return &ProductRepository{list: newCollection(store)}
}

// Load replaces the in-memory products with the stored ones.
func (r *ProductRepository) Load(ctx context.Context) error {
	return r.list.load(ctx)
}

// Save writes every product to the store.
func (r *ProductRepository) Save(ctx context.Context) error {
	return r.list.save(ctx)
}

// Create assigns the next identifier to candidate, stores it and returns the
// stored product. Any ID already set on candidate is ignored.
func (r *ProductRepository) Create(ctx context.Context, candidate record.Product) (record.Product, error) {
	p, err := r.list.create(ctx, candidate)
	if err != nil {
		return record.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Get returns the first product with id.
func (r *ProductRepository) Get(id int) (record.Product, error) {
	p, ok := r.list.find(id)
	if !ok {
		return record.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// Update overwrites the name and expiry date of the product whose ID matches
// candidate.ID. When no product matches, nothing is written and ErrNotFound
// is returned.
func (r *ProductRepository) Update(ctx context.Context, candidate record.Product) (record.Product, error) {
	p, found, err := r.list.replace(ctx, candidate.ID, func(existing record.Product) record.Product {
		existing.Name = candidate.Name
		existing.Expiry = candidate.Expiry
		return existing
	})
	if !found {
		return record.Product{}, fmt.Errorf("product %d: %w", candidate.ID, ErrNotFound)
	}
	if err != nil {
		return record.Product{}, fmt.Errorf("update product %d: %w", candidate.ID, err)
	}
	return p, nil
}

// Delete removes every product with id and rewrites the store even when
// nothing matched. It returns how many products were removed.
func (r *ProductRepository) Delete(ctx context.Context, id int) (int, error) {
	n, err := r.list.remove(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete product %d: %w", id, err)
	}
	return n, nil
}

// List returns all products in insertion order.
func (r *ProductRepository) List() []record.Product {
	return r.list.all()
}

// Len returns the number of products held.
func (r *ProductRepository) Len() int {
	return r.list.count()
}
