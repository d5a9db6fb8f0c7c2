package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dusk-indust/stockroom/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productStore(t *testing.T) *Store[record.Product] {
	t.Helper()
	return New[record.Product](filepath.Join(t.TempDir(), "products.txt"), record.ProductCodec{})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := productStore(t)

	res, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.NotNil(t, res.Records)
	assert.Zero(t, res.Skipped)
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	s := productStore(t)
	content := "1,Milk,2025-06-01\n" +
		"garbage\n" +
		"2,Bread,2025-05-10\n" +
		"x,Eggs,2025-05-10\n" +
		"3,Jam,2025-13-01\n" +
		"5,Butter,2025-07-01\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

	res, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, []int{1, 2, 5}, []int{res.Records[0].ID, res.Records[1].ID, res.Records[2].ID})
}

func TestLoad_UnterminatedQuoteOnlyLosesItsOwnLine(t *testing.T) {
	s := productStore(t)
	content := "\"1,Milk,2025-06-01\n" +
		"2,Bread,2025-05-10\n" +
		"3,\"Eggs,2025-05-11\n" +
		"4,Jam,2025-05-12\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

	res, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Bread", res.Records[0].Name)
	assert.Equal(t, "Jam", res.Records[1].Name)
}

func TestLoad_LegacyBareQuoteInName(t *testing.T) {
	s := productStore(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(s.Path(), []byte("1,12\" pipe,2025-06-01\n2,Bread,2025-05-10\n"), 0o644))

	res, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Skipped)
	require.Len(t, res.Records, 2)
	assert.Equal(t, `12" pipe`, res.Records[0].Name)

	// Saving quotes the name; the rewritten file reads back the same records.
	require.NoError(t, s.Save(ctx, res.Records))
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "1,\"12\"\" pipe\",2025-06-01\n2,Bread,2025-05-10\n", string(data))

	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.Records, again.Records)
}

func TestLoad_IgnoresBlankLines(t *testing.T) {
	s := productStore(t)
	content := "\n1,Milk,2025-06-01\n   \n\t\n2,Bread,2025-05-10\n\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

	res, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
	assert.Zero(t, res.Skipped)
}

func TestLoad_AcceptsCRLF(t *testing.T) {
	s := productStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("1,Milk,2025-06-01\r\n2,Bread,2025-05-10\r\n"), 0o644))

	res, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "Bread", res.Records[1].Name)
}

func TestSave_WritesOneLinePerRecord(t *testing.T) {
	s := productStore(t)
	ctx := context.Background()

	err := s.Save(ctx, []record.Product{
		{ID: 1, Name: "Milk", Expiry: day(2025, 6, 1)},
		{ID: 2, Name: "Bread", Expiry: day(2025, 5, 10)},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "1,Milk,2025-06-01\n2,Bread,2025-05-10\n", string(data))
}

func TestSave_EmptyCollectionTruncates(t *testing.T) {
	s := productStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, []record.Product{{ID: 1, Name: "Milk", Expiry: day(2025, 6, 1)}}))

	require.NoError(t, s.Save(ctx, nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadThenSave_IsByteIdentical(t *testing.T) {
	s := productStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, []record.Product{
		{ID: 1, Name: "Milk", Expiry: day(2025, 6, 1)},
		{ID: 3, Name: "Cheese, aged", Expiry: day(2026, 1, 15)},
		{ID: 4, Name: `say "quoted"`, Expiry: day(2025, 8, 2)},
	}))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	res, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	assert.Equal(t, "Cheese, aged", res.Records[1].Name)
	assert.Equal(t, `say "quoted"`, res.Records[2].Name)

	require.NoError(t, s.Save(ctx, res.Records))
	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s := productStore(t)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Save(ctx, []record.Product{{ID: i, Name: "Milk", Expiry: day(2025, 6, 1)}}))
	}

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "products.txt", entries[0].Name())
}

func TestSave_EncodeErrorKeepsOldContent(t *testing.T) {
	s := productStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, []record.Product{{ID: 1, Name: "Milk", Expiry: day(2025, 6, 1)}}))

	err := s.Save(ctx, []record.Product{{ID: 0, Name: "bad"}})
	require.Error(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "1,Milk,2025-06-01\n", string(data))
}

func TestSave_RejectsLineBreakInName(t *testing.T) {
	s := productStore(t)

	err := s.Save(context.Background(), []record.Product{{ID: 1, Name: "two\nlines", Expiry: day(2025, 6, 1)}})
	require.ErrorIs(t, err, record.ErrLineBreak)
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_CancelledContext(t *testing.T) {
	s := productStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Save(ctx, []record.Product{{ID: 1, Name: "Milk", Expiry: day(2025, 6, 1)}})
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "users.txt")
	s := New[record.User](path, record.UserCodec{})

	require.NoError(t, s.Save(context.Background(), []record.User{{ID: 1, Name: "Ann"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,Ann\n", string(data))
}

func TestSeq_RoundTrip(t *testing.T) {
	s := productStore(t)
	ctx := context.Background()

	n, err := s.LoadSeq()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.SaveSeq(ctx, 17))
	n, err = s.LoadSeq()
	require.NoError(t, err)
	assert.Equal(t, 17, n)
	assert.Equal(t, s.Path()+".seq", s.SeqPath())
}

func TestSeq_MalformedSidecarIsZero(t *testing.T) {
	s := productStore(t)
	require.NoError(t, os.WriteFile(s.SeqPath(), []byte("not a number\n"), 0o644))

	n, err := s.LoadSeq()
	require.NoError(t, err)
	assert.Zero(t, n)
}
