// Package inventory holds the per-session item ledger. Every mutation is
// written through to a BlobStore; persistence failures are logged and counted
// but never returned to the caller.
package inventory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/metrics"
	"github.com/yumbiru/yumvalues/internal/repository"
)

// ItemLookup resolves catalog items by id
type ItemLookup interface {
	Lookup(id string) (domain.Item, bool)
}

// Ledger maps item id → quantity. No entry is ever held with quantity ≤ 0.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]int
	store   repository.BlobStore
	key     string
}

// StorageKey returns the blob key of a session's ledger
func StorageKey(sessionID string) string {
	return domain.InventoryStorageKey + ":" + sessionID
}

// Load reads the ledger stored under key. A missing, unreadable or corrupt
// blob yields an empty ledger.
func Load(ctx context.Context, store repository.BlobStore, key string) *Ledger {
	log := logger.FromContext(ctx)
	l := &Ledger{entries: make(map[string]int), store: store, key: key}

	blob, found, err := store.Get(ctx, key)
	if err != nil {
		log.Warn(LogMsgLedgerReadFailed, "key", key, "error", err)
		return l
	}
	if !found {
		return l
	}

	var stored map[string]int
	if err := json.Unmarshal(blob, &stored); err != nil {
		log.Warn(LogMsgLedgerCorrupt, "key", key, "error", err)
		return l
	}
	for id, qty := range stored {
		if qty > 0 {
			l.entries[id] = qty
		}
	}

	log.Debug(LogMsgLedgerLoaded, "key", key, "entries", len(l.entries))
	return l
}

// Quantity returns the held quantity of id, 0 if absent
func (l *Ledger) Quantity(id string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[id]
}

// SetQuantity sets id to q. q ≤ 0 removes the entry.
func (l *Ledger) SetQuantity(ctx context.Context, id string, q int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setLocked(id, q)
	l.persistLocked(ctx)
}

// Delete removes id unconditionally
func (l *Ledger) Delete(ctx context.Context, id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, id)
	l.persistLocked(ctx)
}

// Credit adds each selection's quantity
func (l *Ledger) Credit(ctx context.Context, items []domain.QuantitySelection) {
	l.apply(ctx, items, 1)
}

// Debit subtracts each selection's quantity. Entries reaching 0 or below are
// removed. Callers check availability first; Debit does not.
func (l *Ledger) Debit(ctx context.Context, items []domain.QuantitySelection) {
	l.apply(ctx, items, -1)
}

// Merge adds a calculator selection to the ledger
func (l *Ledger) Merge(ctx context.Context, items []domain.QuantitySelection) {
	l.apply(ctx, items, 1)
}

func (l *Ledger) apply(ctx context.Context, items []domain.QuantitySelection, sign int) {
	if len(items) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range items {
		l.setLocked(it.ItemID, l.entries[it.ItemID]+sign*it.Quantity)
	}
	l.persistLocked(ctx)
}

func (l *Ledger) setLocked(id string, q int) {
	if q <= 0 {
		delete(l.entries, id)
		return
	}
	l.entries[id] = q
}

// FirstShortfall returns the first selection the ledger cannot cover
func (l *Ledger) FirstShortfall(items []domain.QuantitySelection) (domain.QuantitySelection, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, it := range items {
		if l.entries[it.ItemID] < it.Quantity {
			return it, true
		}
	}
	return domain.QuantitySelection{}, false
}

// Count returns the number of distinct items held
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Snapshot returns a copy of the ledger
func (l *Ledger) Snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]int, len(l.entries))
	for id, q := range l.entries {
		out[id] = q
	}
	return out
}

// Entries resolves held items whose name contains search (case-insensitive),
// sorted by name. Ids the catalog does not know are skipped.
func (l *Ledger) Entries(items ItemLookup, search string) []domain.InventoryEntry {
	needle := strings.ToLower(search)
	snapshot := l.Snapshot()

	out := make([]domain.InventoryEntry, 0, len(snapshot))
	for id, qty := range snapshot {
		item, ok := items.Lookup(id)
		if !ok || !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		out = append(out, domain.InventoryEntry{Item: item, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Item.Name != out[j].Item.Name {
			return out[i].Item.Name < out[j].Item.Name
		}
		return out[i].Item.ID < out[j].Item.ID
	})
	return out
}

// persistLocked writes the whole ledger through to the store
func (l *Ledger) persistLocked(ctx context.Context) {
	log := logger.FromContext(ctx)

	blob, err := json.Marshal(l.entries)
	if err != nil {
		metrics.LedgerPersistFailures.Inc()
		log.Error(LogMsgLedgerEncodeFailed, "key", l.key, "error", err)
		return
	}
	if err := l.store.Put(ctx, l.key, blob); err != nil {
		metrics.LedgerPersistFailures.Inc()
		log.Error(LogMsgLedgerPersistFailed, "key", l.key, "error", err)
	}
}
