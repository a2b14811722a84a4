package repository

import (
	"context"
	"fmt"

	"github.com/osse101/RavenCompanion_Go/internal/concurrency"
)

// Store is the key-value persistence used for all progress state. Values
// are stored as JSON documents.
type Store interface {
	// Get decodes the value at key into dst. found is false when the key
	// has never been set; dst is then left untouched.
	Get(ctx context.Context, key string, dst any) (found bool, err error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// GetOrDefault reads key, returning def when the key is absent.
func GetOrDefault[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	var v T
	found, err := s.Get(ctx, key, &v)
	if err != nil {
		return def, fmt.Errorf(ErrMsgReadKeyFailed, key, err)
	}
	if !found {
		return def, nil
	}
	return v, nil
}

// Update performs a locked read-modify-write of key. When fn fails nothing
// is written.
func Update[T any](ctx context.Context, s Store, locks *concurrency.LockManager, key string, def func() T, fn func(T) (T, error)) (T, error) {
	var result T
	err := locks.WithLock(key, func() error {
		current, err := GetOrDefault(ctx, s, key, def())
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		if err := s.Set(ctx, key, next); err != nil {
			return fmt.Errorf(ErrMsgWriteKeyFailed, key, err)
		}
		result = next
		return nil
	})
	return result, err
}
