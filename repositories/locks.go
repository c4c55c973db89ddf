package repositories

import (
	"TeleMed/database"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	lockTTL        = 10 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 2 * time.Second
)

// acquireLock takes the per-entity redis write lock with retries and
// returns the release function. Every repository write goes through this so
// two handlers cannot race on the same row.
func acquireLock(ctx context.Context, lockKey string) (func(), error) {
	lockValue := uuid.New().String()
	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, lockTTL)
		if err == nil && locked {
			break
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	if !locked {
		return nil, lockAcquireError(err)
	}
	release := func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}
	return release, nil
}

// lockAcquireError builds the give-up error. SetNX losing the race returns
// (false, nil), so err may legitimately be nil here.
func lockAcquireError(err error) error {
	if err == nil {
		return errors.New("failed to acquire lock after retries: lock is held")
	}
	return fmt.Errorf("failed to acquire lock after retries: %w", err)
}
