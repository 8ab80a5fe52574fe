package board

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gameboard/internal/db"
	"gameboard/internal/metrics"
	"gameboard/internal/participants"
	"gameboard/internal/ranking"
	"gameboard/internal/snapshot"
)

// PersistenceError reports a failed durable write or read. The in-memory
// registry keeps the mutation that triggered the write; the next successful
// write rewrites the whole snapshot, so the divergence heals itself.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Board owns the scoreboard state: the participant registry, the ranking
// rules, and the durable snapshot. Every accepted mutation re-ranks the full
// registry and rewrites the snapshot before the call returns.
type Board struct {
	mu        sync.Mutex
	registry  *participants.Store
	ranker    *ranking.Ranker
	store     snapshot.Store
	db        *db.DB // nil if no database configured
	updatedAt time.Time
}

func New(registry *participants.Store, ranker *ranking.Ranker, store snapshot.Store, database *db.DB) *Board {
	return &Board{
		registry: registry,
		ranker:   ranker,
		store:    store,
		db:       database,
	}
}

// Results carry detached copies of the records: handlers encode them after
// the board lock is released, so they must not alias live registry state.
type JoinResult struct {
	ID          string                     `json:"id"`
	Participant participants.Participant   `json:"participant"`
	Ranked      []participants.Participant `json:"rankedParticipants"`
}

type UpdateResult struct {
	Participant participants.Participant   `json:"participant"`
	Ranked      []participants.Participant `json:"rankedParticipants"`
}

type View struct {
	UpdatedAt time.Time                  `json:"updatedAt"`
	Ranked    []participants.Participant `json:"rankedParticipants"`
}

// Join registers a new participant and persists the re-ranked board.
func (b *Board) Join(name string) (*JoinResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.registry.Create(name)
	if err != nil {
		metrics.RejectedTotal.WithLabelValues("name_required").Inc()
		return nil, err
	}
	metrics.JoinsTotal.Inc()

	ranked, err := b.persist()
	if err != nil {
		return nil, err
	}
	return &JoinResult{ID: p.ID, Participant: *p, Ranked: ranked}, nil
}

// Update merges a sparse patch into an existing record and persists the
// re-ranked board. An unknown id leaves both memory and disk untouched.
func (b *Board) Update(id string, patch participants.Patch) (*UpdateResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := b.registry.ApplyPatch(id, patch)
	if err != nil {
		metrics.RejectedTotal.WithLabelValues("participant_not_found").Inc()
		return nil, err
	}
	metrics.UpdatesTotal.Inc()

	ranked, err := b.persist()
	if err != nil {
		return nil, err
	}
	return &UpdateResult{Participant: *p, Ranked: ranked}, nil
}

// Read returns the current standings. It never fails and never writes.
func (b *Board) Read() *View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &View{
		UpdatedAt: b.updatedAt,
		Ranked:    cloneRanked(b.ranker.Rank(b.registry.List())),
	}
}

// Recover loads the durable record at startup, drops entries that fail
// validation, and rewrites the snapshot so the file reflects ranked order
// going forward. A missing or unreadable record means starting empty.
func (b *Board) Recover() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap, err := b.store.Read()
	if err != nil {
		log.Printf("[Board] Could not read prior snapshot, starting empty: %v\n", err)
	}

	var loaded []*participants.Participant
	if snap != nil {
		for i := range snap.Participants {
			p := snap.Participants[i]
			if p.ID == "" || participants.CleanName(p.Name) == "" {
				continue
			}
			loaded = append(loaded, &p)
		}
		log.Printf("[Board] Recovered %d of %d persisted participants\n", len(loaded), len(snap.Participants))
	}
	b.registry.Load(loaded)

	if _, err := b.persist(); err != nil {
		return err
	}
	return nil
}

// persist recomputes the ranked snapshot and synchronously rewrites the
// durable record, then mirrors it to the database when one is configured.
// Mirror failures are logged, never surfaced. Callers hold b.mu.
func (b *Board) persist() ([]participants.Participant, error) {
	ranked := cloneRanked(b.ranker.Rank(b.registry.List()))
	b.updatedAt = time.Now()
	snap := &snapshot.Snapshot{UpdatedAt: b.updatedAt, Participants: ranked}

	start := time.Now()
	if err := b.store.Write(snap); err != nil {
		metrics.SnapshotWriteFailures.Inc()
		return ranked, &PersistenceError{Op: "write", Err: err}
	}
	metrics.SnapshotWriteSeconds.Observe(time.Since(start).Seconds())

	if b.db != nil {
		if err := b.db.ReplaceBoard(snap.UpdatedAt, snap.Participants); err != nil {
			log.Printf("[DB] ReplaceBoard error: %v\n", err)
		}
	}
	return ranked, nil
}

// cloneRanked detaches the ranked view from the registry's live records.
func cloneRanked(ranked []*participants.Participant) []participants.Participant {
	rows := make([]participants.Participant, len(ranked))
	for i, p := range ranked {
		rows[i] = *p
	}
	return rows
}
