package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewInventoryMCPServer creates an MCP server with the inventory tools
// registered.
func NewInventoryMCPServer(svc *InventoryService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "stockroom",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_product",
		Description: "Create a product with a name and an expiry date (yyyy-MM-dd). Returns the stored product with its assigned id.",
	}, svc.CreateProduct)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_product",
		Description: "Look up a product by id.",
	}, svc.GetProduct)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_product",
		Description: "Replace the name and expiry date of an existing product. Fails if the id is unknown.",
	}, svc.UpdateProduct)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_product",
		Description: "Delete every product with the given id. Returns how many were removed.",
	}, svc.DeleteProduct)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_products",
		Description: "List products in creation order, optionally only those past their expiry date.",
	}, svc.ListProducts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a user with the given name.",
	}, svc.CreateUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_users",
		Description: "List all users.",
	}, svc.ListUsers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_category",
		Description: "Create a category. Categories are kept in memory and are lost when the server exits.",
	}, svc.CreateCategory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List categories created since the server started.",
	}, svc.ListCategories)

	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
