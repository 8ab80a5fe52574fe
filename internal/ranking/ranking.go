package ranking

import (
	"log"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"gameboard/internal/participants"
)

// Ranker orders participants for the scoreboard: most completed rounds first,
// then fewest total mistakes, then name in the configured locale's collation
// order. The name key makes the order total, so repeated sorts of the same
// registry always agree.
type Ranker struct {
	collator *collate.Collator
}

// New builds a Ranker for a BCP 47 locale tag. Unknown locales fall back to
// English rather than failing startup.
func New(locale string) *Ranker {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("[Ranking] Unknown locale %q, falling back to English\n", locale)
		tag = language.English
	}
	return &Ranker{collator: collate.New(tag)}
}

// Less reports whether a ranks strictly above b.
func (r *Ranker) Less(a, b *participants.Participant) bool {
	if a.CompletedRounds != b.CompletedRounds {
		return a.CompletedRounds > b.CompletedRounds
	}
	if a.TotalMistakes != b.TotalMistakes {
		return a.TotalMistakes < b.TotalMistakes
	}
	return r.collator.CompareString(a.Name, b.Name) < 0
}

// Rank returns a new, stably sorted slice; the input is left untouched.
func (r *Ranker) Rank(list []*participants.Participant) []*participants.Participant {
	ranked := make([]*participants.Participant, len(list))
	copy(ranked, list)
	sort.SliceStable(ranked, func(i, j int) bool {
		return r.Less(ranked[i], ranked[j])
	})
	return ranked
}
