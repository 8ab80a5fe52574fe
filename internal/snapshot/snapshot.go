package snapshot

import (
	"time"

	"gameboard/internal/participants"
)

// Snapshot is the ranked view handed to readers and written to durable
// storage. It is derived from the registry on demand, never authoritative.
type Snapshot struct {
	UpdatedAt    time.Time                  `json:"updatedAt"`
	Participants []participants.Participant `json:"participants"`
}

// Store reads and writes the durable record as a single unit. Writes fully
// replace any prior content; last writer wins.
type Store interface {
	Write(*Snapshot) error
	Read() (*Snapshot, error)
}
