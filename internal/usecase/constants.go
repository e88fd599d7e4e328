package usecase

import "time"

const (
	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// BalanceCacheTTL bounds staleness of the read-through balance cache.
	// Mutation paths also invalidate eagerly.
	BalanceCacheTTL = 5 * time.Second
)

func balanceCacheKey(accountID string) string {
	return "balance:" + accountID
}
