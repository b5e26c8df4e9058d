// Package session keeps the single most recent scrape or search result for
// each client session.
package session

import (
	"context"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/sells-group/pagechat/internal/model"
)

// Store holds one Slot per session id. Implementations are safe for
// concurrent use.
type Store interface {
	// Get returns the session's slot, or nil with no error when empty.
	Get(ctx context.Context, id string) (*model.Slot, error)
	// Set replaces the session's slot.
	Set(ctx context.Context, id string, slot *model.Slot) error
	// Clear empties the session's slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the given driver: memory, sqlite or postgres.
func Open(ctx context.Context, driver, databaseURL string) (Store, error) {
	switch driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(databaseURL)
	case "postgres":
		return NewPostgresStore(ctx, databaseURL)
	default:
		return nil, eris.Errorf("session: unknown store driver %q", driver)
	}
}

// ErrNilSlot is returned by Set when given a nil slot; use Clear instead.
var ErrNilSlot = eris.New("session: nil slot")

func encodeSlot(slot *model.Slot) ([]byte, error) {
	if slot == nil {
		return nil, ErrNilSlot
	}
	data, err := json.Marshal(slot)
	if err != nil {
		return nil, eris.Wrap(err, "session: marshal slot")
	}
	return data, nil
}

func decodeSlot(data []byte) (*model.Slot, error) {
	var slot model.Slot
	if err := json.Unmarshal(data, &slot); err != nil {
		return nil, eris.Wrap(err, "session: unmarshal slot")
	}
	return &slot, nil
}
