package preferences

import "context"

// Repository is a persisted string key/value store. Get on a missing key
// returns ("", false, nil).
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
