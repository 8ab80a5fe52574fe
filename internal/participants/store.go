package participants

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the canonical participant registry. All mutations go through it,
// and rows are never removed for the life of the event.
type Store struct {
	mu           sync.Mutex
	participants map[string]*Participant
}

func NewStore() *Store {
	return &Store{
		participants: make(map[string]*Participant),
	}
}

// Create registers a new participant under a fresh id. Two calls with the
// same name produce two distinct rows.
func (s *Store) Create(name string) (*Participant, error) {
	cleaned := CleanName(name)
	if cleaned == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := &Participant{
		ID:        uuid.New().String(),
		Name:      cleaned,
		UpdatedAt: time.Now(),
	}
	s.participants[p.ID] = p
	return p, nil
}

// ApplyPatch merges the non-nil fields of patch into the stored record.
// UpdatedAt is refreshed on every successful call, even for an empty patch.
// A patched name that cleans to empty is ignored rather than rejected.
func (s *Store) ApplyPatch(id string, patch Patch) (*Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.participants[id]
	if !exists {
		return nil, ErrParticipantNotFound
	}

	if patch.Name != nil {
		if cleaned := CleanName(*patch.Name); cleaned != "" {
			p.Name = cleaned
		}
	}
	if patch.TotalMistakes != nil {
		p.TotalMistakes = normCount(*patch.TotalMistakes, 0)
	}
	if patch.RoundMistakes != nil {
		p.RoundMistakes = normCount(*patch.RoundMistakes, 0)
	}
	if patch.CompletedRounds != nil {
		p.CompletedRounds = normCount(*patch.CompletedRounds, 0)
	}
	if patch.TotalFound != nil {
		p.TotalFound = normCount(*patch.TotalFound, 0)
	}
	if patch.LastRoundMs != nil {
		p.LastRoundMs = normDuration(*patch.LastRoundMs, p.LastRoundMs)
	}
	if patch.BestRoundMs != nil {
		p.BestRoundMs = normDuration(*patch.BestRoundMs, p.BestRoundMs)
	}
	if patch.CurrentMiniGame != nil {
		p.CurrentMiniGame = *patch.CurrentMiniGame
	}
	if patch.CurrentMiniGameIndex != nil {
		p.CurrentMiniGameIndex = normIndex(*patch.CurrentMiniGameIndex)
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

func (s *Store) Get(id string) *Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.participants[id]
}

// List returns all current records in no particular order.
func (s *Store) List() []*Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Participant, 0, len(s.participants))
	for _, p := range s.participants {
		list = append(list, p)
	}
	return list
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.participants)
}

// Load replaces the registry contents wholesale. Used once at startup to
// restore a recovered snapshot.
func (s *Store) Load(list []*Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = make(map[string]*Participant, len(list))
	for _, p := range list {
		s.participants[p.ID] = p
	}
}
