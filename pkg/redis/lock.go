package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotAcquired is returned by TryLock when another holder owns the key.
var ErrLockNotAcquired = errors.New("lock is held by another owner")

const releaseScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a lock under the "lock" namespace. Each Lock carries its own owner token.
func NewLock(client *Client, name string, ttl time.Duration) *Lock {
	return &Lock{
		client: client,
		key:    client.Key("lock", name),
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryLock makes a single SET NX attempt.
func (l *Lock) TryLock(ctx context.Context) error {
	ok, err := l.client.SetNX(ctx, l.key, l.value, l.ttl)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return ErrLockNotAcquired
	}
	return nil
}

// Unlock releases the lock only if this owner still holds it.
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.Eval(ctx, releaseScript, []string{l.key}, l.value)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return fmt.Errorf("lock was not held by this client")
	}
	return nil
}
