package session

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/pagechat/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

// storeContract runs the behaviour every Store must share.
func storeContract(t *testing.T, st Store) {
	ctx := context.Background()

	slot, err := st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, slot, "empty session")

	// A nil slot is rejected and nothing is stored.
	require.ErrorIs(t, st.Set(ctx, "s1", nil), ErrNilSlot)
	slot, err = st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, slot)

	page := model.NewPageSlot(model.ExtractionResult{
		Success: true, URL: "https://example.com", Title: "Example", Content: "Hello world", WordCount: 2,
	})
	require.NoError(t, st.Set(ctx, "s1", page))

	got, err := st.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.SlotKindPage, got.Kind)
	assert.Equal(t, "Example", got.Page.Title)
	assert.Equal(t, 2, got.Page.WordCount)

	// Other sessions are isolated.
	other, err := st.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Nil(t, other)

	// A search replaces the page.
	search := model.NewSearchSlot(model.SearchResult{
		Success: true, Query: "golang", Results: []model.SearchHit{{Title: "Go", URL: "https://go.dev", Content: "x"}},
	})
	require.NoError(t, st.Set(ctx, "s1", search))
	got, err = st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, model.SlotKindSearch, got.Kind)
	assert.Nil(t, got.Page)
	assert.Equal(t, "golang", got.Search.Query)

	require.NoError(t, st.Clear(ctx, "s1"))
	got, err = st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing twice is fine.
	require.NoError(t, st.Clear(ctx, "s1"))
}

func TestMemoryStore_Contract(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestSQLiteStore_Contract(t *testing.T) {
	storeContract(t, newTestSQLiteStore(t))
}

func TestMemoryStore_ReturnsCopy(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, "s", model.NewPageSlot(model.ExtractionResult{Title: "A"})))

	got, _ := st.Get(ctx, "s")
	got.Kind = model.SlotKindSearch

	again, _ := st.Get(ctx, "s")
	assert.Equal(t, model.SlotKindPage, again.Kind)
}

func TestMemoryStore_SetNil(t *testing.T) {
	st := NewMemoryStore()
	assert.ErrorIs(t, st.Set(context.Background(), "s", nil), ErrNilSlot)
	assert.Equal(t, 0, st.Len())
}

func TestEncodeSlot_Nil(t *testing.T) {
	data, err := encodeSlot(nil)
	assert.ErrorIs(t, err, ErrNilSlot)
	assert.Nil(t, data)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i%5)
			_ = st.Set(ctx, id, model.NewPageSlot(model.ExtractionResult{Title: id}))
			_, _ = st.Get(ctx, id)
			if i%7 == 0 {
				_ = st.Clear(ctx, id)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, st.Len(), 5)
}

func TestSQLiteStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	st, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Migrate(ctx))
	require.NoError(t, st.Set(ctx, "s", model.NewPageSlot(model.ExtractionResult{Title: "Kept"})))
	require.NoError(t, st.Close())

	st2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer st2.Close() //nolint:errcheck
	got, err := st2.Get(ctx, "s")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kept", got.Page.Title)
}

func TestNewSQLiteStore_EmptyDSN(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	st, err := Open(ctx, "memory", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, st)

	st, err = Open(ctx, "", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, st)

	st, err = Open(ctx, "sqlite", filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, st)
	require.NoError(t, st.Close())

	_, err = Open(ctx, "redis", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}

func TestDecodeSlot_Invalid(t *testing.T) {
	_, err := decodeSlot([]byte("{not json"))
	assert.Error(t, err)
}
