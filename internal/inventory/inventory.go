// Package inventory holds the product, user and category repositories. Each
// persisted repository keeps its records in memory and writes a full snapshot
// to its backing file after every mutation.
package inventory

import (
	"context"
	"fmt"

	"github.com/dusk-indust/stockroom/internal/filestore"
	"github.com/dusk-indust/stockroom/internal/record"
	"golang.org/x/sync/errgroup"
)

// Paths locates the backing files.
type Paths struct {
	Products string
	Users    string
}

// Inventory bundles the repositories a session works with.
type Inventory struct {
	Products   *ProductRepository
	Users      *UserRepository
	Categories *CategoryRepository
}

// New wires repositories to stores at paths without reading anything.
func New(paths Paths) *Inventory {
	return &Inventory{
		Products:   NewProductRepository(filestore.New[record.Product](paths.Products, record.ProductCodec{})),
		Users:      NewUserRepository(filestore.New[record.User](paths.Users, record.UserCodec{})),
		Categories: NewCategoryRepository(),
	}
}

// Open builds an Inventory for paths and loads the product and user stores
// in parallel.
func Open(ctx context.Context, paths Paths) (*Inventory, error) {
	inv := New(paths)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := inv.Products.Load(gctx); err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := inv.Users.Load(gctx); err != nil {
			return fmt.Errorf("load users: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inv, nil
}
