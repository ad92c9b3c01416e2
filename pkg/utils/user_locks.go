package utils

import (
	"sync"

	"github.com/google/uuid"
)

// UserLocks hands out one mutex per user so read-modify-write sequences
// on a user's progress record, and plan generation, are serialized.
// Locks are never released from the map; the per-user footprint is a
// single mutex.
type UserLocks struct {
	locks sync.Map
}

func (l *UserLocks) Lock(userID uuid.UUID) func() {
	v, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
