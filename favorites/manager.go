package favorites

import (
	"strings"
	"sync"
	"time"

	"favorites-tracker/models"
	"favorites-tracker/storage"
)

// Store is the persistence boundary for the favorites table.
type Store interface {
	Load() (models.FavoritesList, error)
	Save(models.FavoritesList) error
}

// Manager enforces the uniqueness invariant over a Store and provides
// the CRUD surface the presentation layer calls into. Every operation
// reloads the file first, so an externally edited file is picked up on
// the next action.
type Manager struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time
}

// NewManager creates a manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Add appends entry and persists. Fails with ErrDuplicateSymbol when
// the symbol is already present and ErrInvalidEntry on an empty symbol.
// AddedAt is stamped with the current time when unset.
func (m *Manager) Add(entry models.StockEntry) error {
	entry.Symbol = strings.TrimSpace(entry.Symbol)
	if entry.Symbol == "" {
		return storage.ErrInvalidEntry
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	list, err := m.store.Load()
	if err != nil {
		return err
	}
	for _, e := range list {
		if e.Symbol == entry.Symbol {
			return storage.ErrDuplicateSymbol
		}
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = m.now()
	}
	return m.store.Save(append(list, entry))
}

// Remove deletes the entry with the given symbol and persists. Fails
// with ErrNotFound when the symbol is not in the list.
func (m *Manager) Remove(symbol string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, err := m.store.Load()
	if err != nil {
		return err
	}
	for i, e := range list {
		if e.Symbol == symbol {
			return m.store.Save(append(list[:i:i], list[i+1:]...))
		}
	}
	return storage.ErrNotFound
}

// List returns the current favorites in insertion order.
func (m *Manager) List() (models.FavoritesList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Load()
}

// Get returns the entry with the given symbol or ErrNotFound.
func (m *Manager) Get(symbol string) (models.StockEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list, err := m.store.Load()
	if err != nil {
		return models.StockEntry{}, err
	}
	for _, e := range list {
		if e.Symbol == symbol {
			return e, nil
		}
	}
	return models.StockEntry{}, storage.ErrNotFound
}

var _ Store = (*storage.CSVStore)(nil)
