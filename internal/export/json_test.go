package export

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dusk-indust/stockroom/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportInventory(t *testing.T) {
	dir := t.TempDir()
	paths := inventory.Paths{
		Products: filepath.Join(dir, "products.txt"),
		Users:    filepath.Join(dir, "users.txt"),
	}
	require.NoError(t, os.WriteFile(paths.Products, []byte("1,Milk,2025-06-01\n2,Bread,2025-05-10\n"), 0o644))
	require.NoError(t, os.WriteFile(paths.Users, []byte("1,Ann\n"), 0o644))

	inv, err := inventory.Open(context.Background(), paths)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	e := ExportInventory(inv, now)

	assert.Equal(t, "2025-06-01T09:00:00Z", e.ExportedAt)
	assert.Equal(t, Summary{Products: 2, Expired: 1, Users: 1}, e.Summary)
	assert.Equal(t, []ProductExport{
		{ID: 1, Name: "Milk", Expiry: "2025-06-01", Status: "ok"},
		{ID: 2, Name: "Bread", Expiry: "2025-05-10", Status: "expired"},
	}, e.Products)
	assert.Equal(t, []UserExport{{ID: 1, Name: "Ann"}}, e.Users)
}

func TestWriteJSON_EmptyInventory(t *testing.T) {
	dir := t.TempDir()
	inv := inventory.New(inventory.Paths{
		Products: filepath.Join(dir, "p.txt"),
		Users:    filepath.Join(dir, "u.txt"),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, ExportInventory(inv, time.Now())))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []any{}, decoded["products"])
	assert.Equal(t, []any{}, decoded["users"])
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}
