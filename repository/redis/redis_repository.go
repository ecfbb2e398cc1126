package redis

import (
	"context"
	"fmt"
	"time"

	redisclient "github.com/wareflow/backoffice/cmd/redis"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	ClaimWavePallet(ctx context.Context, wavePalletID, workerID uint64, ttl time.Duration) (bool, error)
	GetWavePalletClaim(ctx context.Context, wavePalletID uint64) (uint64, error)
	ReleaseWavePallet(ctx context.Context, wavePalletID uint64) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// GetSession retrieves workerID from an auth session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// ClaimWavePallet takes a lease on a wave pallet for one worker. Returns
// false when another worker already holds the lease. The lease only steers
// operators apart; the allocation transaction re-checks state regardless.
func (r *redis) ClaimWavePallet(ctx context.Context, wavePalletID, workerID uint64, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	key := claimKey(wavePalletID)
	ok, err := client.SetNX(ctx, key, workerID, ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	// Re-claiming your own pallet (e.g. after a reconnect) is allowed.
	holder, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return false, err
	}
	return holder == workerID, nil
}

// GetWavePalletClaim returns the worker holding the lease, 0 when unclaimed.
func (r *redis) GetWavePalletClaim(ctx context.Context, wavePalletID uint64) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, claimKey(wavePalletID)).Uint64()
	if err != nil {
		return 0, nil
	}
	return val, nil
}

// ReleaseWavePallet drops the lease after allocate/skip resolves.
func (r *redis) ReleaseWavePallet(ctx context.Context, wavePalletID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, claimKey(wavePalletID)).Err()
}

func claimKey(wavePalletID uint64) string {
	return fmt.Sprintf("wavepallet:claim:%d", wavePalletID)
}
