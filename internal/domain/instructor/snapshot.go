package instructor

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("instructor name cannot be empty")
	ErrInvalidCredits = errors.New("credits per lesson must be positive")
)

// Snapshot is the instructor metadata captured into a draft at creation time.
// It is deliberately not re-fetched afterwards: the price a user saw when
// picking slots is the price quoted until the draft is replaced or cleared.
type Snapshot struct {
	id               uuid.UUID
	name             string
	avatarURL        string
	creditsPerLesson int
}

func NewSnapshot(id uuid.UUID, name, avatarURL string, creditsPerLesson int) (Snapshot, error) {
	if name == "" {
		return Snapshot{}, ErrEmptyName
	}
	if creditsPerLesson <= 0 {
		return Snapshot{}, ErrInvalidCredits
	}
	return Snapshot{
		id:               id,
		name:             name,
		avatarURL:        avatarURL,
		creditsPerLesson: creditsPerLesson,
	}, nil
}

func ReconstructSnapshot(id uuid.UUID, name, avatarURL string, creditsPerLesson int) Snapshot {
	return Snapshot{
		id:               id,
		name:             name,
		avatarURL:        avatarURL,
		creditsPerLesson: creditsPerLesson,
	}
}

func (s Snapshot) ID() uuid.UUID         { return s.id }
func (s Snapshot) Name() string          { return s.name }
func (s Snapshot) AvatarURL() string     { return s.avatarURL }
func (s Snapshot) CreditsPerLesson() int { return s.creditsPerLesson }
