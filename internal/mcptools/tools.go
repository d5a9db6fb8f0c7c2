package mcptools

// --- MCP Tool Types for the inventory server mode (--serve-mcp) ---
// These tools expose the same operations as the interactive menu so that an
// MCP client can manage the inventory without driving the prompt.

// ProductOutput is the wire form of a product.
type ProductOutput struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Expiry  string `json:"expiry"` // yyyy-MM-dd
	Expired bool   `json:"expired"`
}

// CreateProductInput is the input for the create_product MCP tool.
type CreateProductInput struct {
	Name   string `json:"name" jsonschema:"product name"`
	Expiry string `json:"expiry" jsonschema:"expiry date in yyyy-MM-dd format"`
}

// GetProductInput is the input for the get_product MCP tool.
type GetProductInput struct {
	ID int `json:"id" jsonschema:"product id"`
}

// UpdateProductInput is the input for the update_product MCP tool.
type UpdateProductInput struct {
	ID     int    `json:"id" jsonschema:"id of the product to update"`
	Name   string `json:"name" jsonschema:"new product name"`
	Expiry string `json:"expiry" jsonschema:"new expiry date in yyyy-MM-dd format"`
}

// DeleteProductInput is the input for the delete_product MCP tool.
type DeleteProductInput struct {
	ID int `json:"id" jsonschema:"id of the product to delete"`
}

// DeleteProductOutput is the result of the delete_product MCP tool.
type DeleteProductOutput struct {
	ID      int `json:"id"`
	Removed int `json:"removed"`
}

// ListProductsInput is the input for the list_products MCP tool.
type ListProductsInput struct {
	ExpiredOnly bool `json:"expiredOnly,omitempty" jsonschema:"only return products past their expiry date"`
}

// ListProductsOutput is the result of the list_products MCP tool.
type ListProductsOutput struct {
	Products []ProductOutput `json:"products"`
	Total    int             `json:"total"`
}

// CreateUserInput is the input for the create_user MCP tool.
type CreateUserInput struct {
	Name string `json:"name" jsonschema:"user name"`
}

// UserOutput is the wire form of a user.
type UserOutput struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListUsersInput is the input for the list_users MCP tool.
type ListUsersInput struct{}

// ListUsersOutput is the result of the list_users MCP tool.
type ListUsersOutput struct {
	Users []UserOutput `json:"users"`
}

// CreateCategoryInput is the input for the create_category MCP tool.
type CreateCategoryInput struct {
	Name string `json:"name" jsonschema:"category name"`
}

// CategoryOutput is the wire form of a category.
type CategoryOutput struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListCategoriesInput is the input for the list_categories MCP tool.
type ListCategoriesInput struct{}

// ListCategoriesOutput is the result of the list_categories MCP tool.
type ListCategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
}
