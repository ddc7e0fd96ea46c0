// Package history journals successful generations so a user can copy,
// reuse or delete past prompts. The ledger is newest-first, capped, and
// persisted through an injected Store so tests can swap in memory and
// deployments can choose between a JSON file and SQLite.
package history

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"promptstudio/internal/builder"
	"promptstudio/internal/catalog"
)

// MaxEntries caps the ledger; the oldest entries beyond it are discarded
// on insert.
const MaxEntries = 50

// Entry is an immutable record of one successful submission.
type Entry struct {
	ID          string              `json:"id"`
	MainAction  string              `json:"mainAction"`
	Selections  builder.Selections  `json:"selections"`
	Prompt      string              `json:"prompt"` // final text sent to generation, post-translation
	ContentType catalog.ContentType `json:"contentType"`
	PersonaID   catalog.PersonaID   `json:"personaId"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// NewEntry snapshots the submission state into a ledger entry.
func NewEntry(mainAction string, sel builder.Selections, prompt string, ct catalog.ContentType, persona catalog.PersonaID) Entry {
	return Entry{
		ID:          uuid.NewString(),
		MainAction:  mainAction,
		Selections:  sel.Clone(),
		Prompt:      prompt,
		ContentType: ct,
		PersonaID:   persona,
		CreatedAt:   time.Now().UTC(),
	}
}

// Store is the persistence collaborator. Load returns the stored sequence
// newest-first; a missing representation yields an empty slice, not an
// error. Remove deletes the representation entirely.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
	Remove() error
}

// Ledger holds the in-memory sequence and keeps the store in sync.
type Ledger struct {
	store   Store
	entries []Entry
	logger  *zap.Logger
}

// NewLedger wires a ledger to its store. Call Load before use.
func NewLedger(store Store, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{store: store, logger: logger}
}

// Load reads the persisted sequence. Malformed or unreadable data is
// logged and treated as an empty ledger; it is never surfaced to the user.
func (l *Ledger) Load() {
	entries, err := l.store.Load()
	if err != nil {
		l.logger.Warn("failed to load history, starting empty", zap.Error(err))
		l.entries = nil
		return
	}
	l.entries = entries
}

// Entries returns a copy of the current sequence, newest first. Mutating
// the result leaves the ledger untouched.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Record prepends the entry, truncates to MaxEntries and persists the
// result. Persistence failures are logged; the in-memory sequence is
// authoritative for the rest of the session either way.
func (l *Ledger) Record(entry Entry) []Entry {
	updated := append([]Entry{entry}, l.entries...)
	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}
	l.entries = updated
	if err := l.store.Save(updated); err != nil {
		l.logger.Warn("failed to persist history", zap.Error(err))
	}
	return updated
}

// Delete removes the entry with the given id, if present, and persists.
func (l *Ledger) Delete(id string) {
	kept := l.entries[:0:0]
	for _, e := range l.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.entries = kept
	if err := l.store.Save(kept); err != nil {
		l.logger.Warn("failed to persist history after delete", zap.Error(err))
	}
}

// Clear empties the ledger and removes the persisted representation.
func (l *Ledger) Clear() {
	l.entries = nil
	if err := l.store.Remove(); err != nil {
		l.logger.Warn("failed to remove persisted history", zap.Error(err))
	}
}

// Find returns the entry with the given id.
func (l *Ledger) Find(id string) (Entry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
