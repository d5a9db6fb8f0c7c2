package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/dusk-indust/stockroom/internal/inventory"
	"github.com/dusk-indust/stockroom/internal/record"
)

// InventoryExport is the top-level JSON export structure.
type InventoryExport struct {
	ExportedAt string          `json:"exportedAt"`
	Summary    Summary         `json:"summary"`
	Products   []ProductExport `json:"products"`
	Users      []UserExport    `json:"users"`
}

// Summary counts products by expiry state.
type Summary struct {
	Products int `json:"products"`
	Expired  int `json:"expired"`
	Users    int `json:"users"`
}

// ProductExport describes one product.
type ProductExport struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	Status string `json:"status"` // "expired" or "ok"
}

// UserExport describes one user.
type UserExport struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ExportInventory builds an InventoryExport from the loaded repositories,
// judging expiry against now.
func ExportInventory(inv *inventory.Inventory, now time.Time) *InventoryExport {
	export := &InventoryExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Products:   []ProductExport{},
		Users:      []UserExport{},
	}

	for _, p := range inv.Products.List() {
		status := "ok"
		if p.Expired(now) {
			status = "expired"
			export.Summary.Expired++
		}
		export.Products = append(export.Products, ProductExport{
			ID:     p.ID,
			Name:   p.Name,
			Expiry: p.Expiry.Format(record.DateLayout),
			Status: status,
		})
	}
	for _, u := range inv.Users.List() {
		export.Users = append(export.Users, UserExport{ID: u.ID, Name: u.Name})
	}

	export.Summary.Products = len(export.Products)
	export.Summary.Users = len(export.Users)
	return export
}

// WriteJSON writes e as indented JSON followed by a newline.
func WriteJSON(w io.Writer, e *InventoryExport) error {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
