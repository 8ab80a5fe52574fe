package participants

import "errors"

// Expected client-input outcomes, not system failures. The HTTP layer maps
// them to 400/404 and their messages double as the wire error kinds.
var (
	ErrNameRequired        = errors.New("name_required")
	ErrParticipantNotFound = errors.New("participant_not_found")
)
