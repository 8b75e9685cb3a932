package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrLocked means another run of the same job still holds its lock.
var ErrLocked = errors.New("cron job already running")

// Cron is the lock row held while a scheduled job runs.
type Cron struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
