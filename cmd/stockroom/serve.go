package main

import (
	"context"
	"log"

	"github.com/dusk-indust/stockroom/internal/inventory"
	"github.com/dusk-indust/stockroom/internal/mcptools"
)

// runServeMCP serves the inventory tools over stdio until the client
// disconnects or ctx is cancelled.
func runServeMCP(ctx context.Context, inv *inventory.Inventory) error {
	log.Printf("stockroom: serving MCP on stdio")
	server := mcptools.NewInventoryMCPServer(mcptools.NewInventoryService(inv))
	return mcptools.RunStdio(ctx, server)
}
