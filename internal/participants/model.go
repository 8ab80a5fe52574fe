package participants

import "time"

// MaxNameLen caps display names. Longer input is truncated, not rejected.
const MaxNameLen = 28

// Participant is one registered player's progress record. Durations are in
// milliseconds; 0 means no data yet.
type Participant struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	TotalMistakes        int       `json:"totalMistakes"`
	RoundMistakes        int       `json:"roundMistakes"`
	CompletedRounds      int       `json:"completedRounds"`
	TotalFound           int       `json:"totalFound"`
	LastRoundMs          int64     `json:"lastRoundMs"`
	BestRoundMs          int64     `json:"bestRoundMs"`
	CurrentMiniGame      string    `json:"currentMiniGame"`
	CurrentMiniGameIndex int       `json:"currentMiniGameIndex"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Patch is a sparse update: only non-nil fields are applied, everything else
// keeps its prior value. Numeric fields arrive as float64 so out-of-range and
// non-finite client input can be normalized instead of rejected.
type Patch struct {
	Name                 *string  `json:"name"`
	TotalMistakes        *float64 `json:"totalMistakes"`
	RoundMistakes        *float64 `json:"roundMistakes"`
	CompletedRounds      *float64 `json:"completedRounds"`
	TotalFound           *float64 `json:"totalFound"`
	LastRoundMs          *float64 `json:"lastRoundMs"`
	BestRoundMs          *float64 `json:"bestRoundMs"`
	CurrentMiniGame      *string  `json:"currentMiniGame"`
	CurrentMiniGameIndex *float64 `json:"currentMiniGameIndex"`
}
