// Package lootsession stores generated loot awaiting review until it is
// applied or discarded.
package lootsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-loot/internal/entities/loot"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=lootsessionmock github.com/KirkDiggler/rpg-loot/internal/repositories/loot_session Repository

// DefaultTTL is how long an unapplied preview lives
const DefaultTTL = 30 * time.Minute

// PreviewSession holds the results of one generation call
type PreviewSession struct {
	ID string `json:"id"`

	// Tokens the session was generated for, in request order
	Tokens []*loot.Token `json:"tokens"`

	// Results keyed by token id
	Results map[string]*loot.GenerationResult `json:"results"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Token returns the session token with id, or nil
func (s *PreviewSession) Token(id string) *loot.Token {
	for _, t := range s.Tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// OrderedResults returns results in token order
func (s *PreviewSession) OrderedResults() []*loot.GenerationResult {
	out := make([]*loot.GenerationResult, 0, len(s.Results))
	for _, t := range s.Tokens {
		if r, ok := s.Results[t.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// CreateInput contains parameters for creating a preview session
type CreateInput struct {
	ID      string
	Tokens  []*loot.Token
	Results map[string]*loot.GenerationResult
	TTL     time.Duration
}

// CreateOutput contains the created session
type CreateOutput struct {
	Session *PreviewSession
}

// GetInput identifies a session
type GetInput struct {
	ID string
}

// GetOutput contains the session
type GetOutput struct {
	Session *PreviewSession
}

// DeleteInput identifies a session
type DeleteInput struct {
	ID string
}

// DeleteOutput reports how many results were discarded
type DeleteOutput struct {
	ResultsDeleted int
}

// Repository defines storage for preview sessions
type Repository interface {
	// Create stores a new session with the given TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session. Expired sessions are NOT_FOUND.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a session, keeping its expiry
	Update(ctx context.Context, session *PreviewSession) error

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errSessionNil     = "session cannot be nil"
	errIDEmpty        = "session ID cannot be empty"
	errSessionExpired = "session has already expired"
)
