package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not created through a constructor.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry records that an order entered a state.
// Entries are appended by the Order aggregate and never modified afterwards.
type HistoryEntry struct {
	id        kernel.UUID
	state     State
	timestamp time.Time
	comment   string

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates an entry with a fresh identifier.
func NewHistoryEntry(state State, at time.Time, comment string) HistoryEntry {
	return HistoryEntry{
		id:        kernel.NewUUID(),
		state:     state,
		timestamp: at,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}
}

// RestoreHistoryEntry rebuilds a persisted entry. The state is kept as given,
// including Unknown, so that unrecognized records survive a load/save cycle.
func RestoreHistoryEntry(id kernel.UUID, state State, at time.Time, comment string) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{
		id:        id,
		state:     state,
		timestamp: at,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (h HistoryEntry) Validate() error {
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

func (h HistoryEntry) State() State {
	return h.state
}

func (h HistoryEntry) Timestamp() time.Time {
	return h.timestamp
}

func (h HistoryEntry) Comment() string {
	return h.comment
}
