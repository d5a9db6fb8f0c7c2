package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dusk-indust/stockroom/internal/export"
	"github.com/dusk-indust/stockroom/internal/inventory"
)

func runExport(inv *inventory.Inventory, stdout io.Writer) error {
	data := export.ExportInventory(inv, time.Now())
	if err := export.WriteJSON(stdout, data); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
