package mcptools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dusk-indust/stockroom/internal/inventory"
	"github.com/dusk-indust/stockroom/internal/record"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// InventoryService handles MCP tool calls against an Inventory.
type InventoryService struct {
	inv *inventory.Inventory
	now func() time.Time
}

// NewInventoryService creates an InventoryService over inv.
func NewInventoryService(inv *inventory.Inventory) *InventoryService {
	return &InventoryService{inv: inv, now: time.Now}
}

// CreateProduct validates the input and stores a new product.
func (s *InventoryService) CreateProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateProductInput,
) (*mcp.CallToolResult, ProductOutput, error) {
	candidate, err := parseProduct(input.Name, input.Expiry)
	if err != nil {
		return nil, ProductOutput{}, err
	}
	p, err := s.inv.Products.Create(ctx, candidate)
	if err != nil {
		return nil, ProductOutput{}, err
	}
	return nil, s.productOutput(p), nil
}

// GetProduct returns the product with the given id.
func (s *InventoryService) GetProduct(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetProductInput,
) (*mcp.CallToolResult, ProductOutput, error) {
	p, err := s.inv.Products.Get(input.ID)
	if err != nil {
		return nil, ProductOutput{}, err
	}
	return nil, s.productOutput(p), nil
}

// UpdateProduct replaces the name and expiry of an existing product.
func (s *InventoryService) UpdateProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateProductInput,
) (*mcp.CallToolResult, ProductOutput, error) {
	if input.ID <= 0 {
		return nil, ProductOutput{}, fmt.Errorf("id must be positive, got %d", input.ID)
	}
	candidate, err := parseProduct(input.Name, input.Expiry)
	if err != nil {
		return nil, ProductOutput{}, err
	}
	candidate.ID = input.ID
	p, err := s.inv.Products.Update(ctx, candidate)
	if err != nil {
		return nil, ProductOutput{}, err
	}
	return nil, s.productOutput(p), nil
}

// DeleteProduct removes every product with the given id.
func (s *InventoryService) DeleteProduct(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteProductInput,
) (*mcp.CallToolResult, DeleteProductOutput, error) {
	n, err := s.inv.Products.Delete(ctx, input.ID)
	if err != nil {
		return nil, DeleteProductOutput{}, err
	}
	return nil, DeleteProductOutput{ID: input.ID, Removed: n}, nil
}

// ListProducts returns products in insertion order.
func (s *InventoryService) ListProducts(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListProductsInput,
) (*mcp.CallToolResult, ListProductsOutput, error) {
	out := ListProductsOutput{Products: []ProductOutput{}}
	for _, p := range s.inv.Products.List() {
		po := s.productOutput(p)
		if input.ExpiredOnly && !po.Expired {
			continue
		}
		out.Products = append(out.Products, po)
	}
	out.Total = len(out.Products)
	return nil, out, nil
}

// CreateUser stores a new user.
func (s *InventoryService) CreateUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateUserInput,
) (*mcp.CallToolResult, UserOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, UserOutput{}, fmt.Errorf("name is required")
	}
	if err := record.CheckText(name); err != nil {
		return nil, UserOutput{}, fmt.Errorf("invalid name: %w", err)
	}
	u, err := s.inv.Users.Create(ctx, record.User{Name: name})
	if err != nil {
		return nil, UserOutput{}, err
	}
	return nil, UserOutput{ID: u.ID, Name: u.Name}, nil
}

// ListUsers returns all users.
func (s *InventoryService) ListUsers(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListUsersInput,
) (*mcp.CallToolResult, ListUsersOutput, error) {
	out := ListUsersOutput{Users: []UserOutput{}}
	for _, u := range s.inv.Users.List() {
		out.Users = append(out.Users, UserOutput{ID: u.ID, Name: u.Name})
	}
	return nil, out, nil
}

// CreateCategory adds a category for the lifetime of the server process.
func (s *InventoryService) CreateCategory(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CreateCategoryInput,
) (*mcp.CallToolResult, CategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, CategoryOutput{}, fmt.Errorf("name is required")
	}
	c := s.inv.Categories.Create(record.Category{Name: name})
	return nil, CategoryOutput{ID: c.ID, Name: c.Name}, nil
}

// ListCategories returns categories created since the server started.
func (s *InventoryService) ListCategories(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListCategoriesInput,
) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	out := ListCategoriesOutput{Categories: []CategoryOutput{}}
	for _, c := range s.inv.Categories.List() {
		out.Categories = append(out.Categories, CategoryOutput{ID: c.ID, Name: c.Name})
	}
	return nil, out, nil
}

func (s *InventoryService) productOutput(p record.Product) ProductOutput {
	return ProductOutput{
		ID:      p.ID,
		Name:    p.Name,
		Expiry:  p.Expiry.Format(record.DateLayout),
		Expired: p.Expired(s.now()),
	}
}

// parseProduct validates a name and a yyyy-MM-dd expiry.
func parseProduct(name, expiry string) (record.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return record.Product{}, fmt.Errorf("name is required")
	}
	if err := record.CheckText(name); err != nil {
		return record.Product{}, fmt.Errorf("invalid name: %w", err)
	}
	d, err := record.ParseDate(strings.TrimSpace(expiry))
	if err != nil {
		return record.Product{}, fmt.Errorf("invalid expiry %q: use yyyy-MM-dd", expiry)
	}
	return record.Product{Name: name, Expiry: d}, nil
}
