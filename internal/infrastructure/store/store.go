package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Storage keys. The versioned names let future schema changes roll out
// without clobbering old payloads.
const (
	KeyMenu        = "foodapp_menu_v1"
	KeyCart        = "foodapp_cart_v1"
	KeyProfile     = "foodapp_profile_v1"
	KeyOrders      = "foodapp_orders_v1"
	KeyMode        = "foodapp_mode_v1"
	KeyUsers       = "foodapp_users_v1"
	KeyCurrentUser = "foodapp_current_user_v1"
)

// ErrCorrupt marks a payload that exists but cannot be decoded.
// Backends wrap their unmarshal failures with it so callers can tell
// damaged data apart from a backend that is down.
var ErrCorrupt = errors.New("corrupt payload")

// Store is a durable JSON key-value store. Values are marshalled to
// JSON on Put and unmarshalled on Get.
type Store interface {
	// Get loads the value at key into out. The boolean reports whether
	// the key existed; a missing key is not an error. An existing but
	// undecodable payload yields an error wrapping ErrCorrupt.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Put stores the JSON encoding of value at key, replacing any
	// previous value.
	Put(ctx context.Context, key string, value any) error

	// Delete removes the key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

// LoadOrDefault loads key, returning fallback when the key is missing
// or its payload cannot be decoded. A corrupt payload is treated the
// same as an absent one so that a damaged store never takes the
// storefront down, and is logged so the damage is visible. Backend
// failures are NOT absorbed: a store that cannot be read must not look
// like an empty one, or the next write would erase the real data.
func LoadOrDefault[T any](ctx context.Context, s Store, key string, fallback T, logger *zap.Logger) (T, error) {
	var v T
	found, err := s.Get(ctx, key, &v)
	switch {
	case errors.Is(err, ErrCorrupt):
		logger.Warn("discarding corrupt payload", zap.String("key", key), zap.Error(err))
		return fallback, nil
	case err != nil:
		return fallback, err
	case !found:
		return fallback, nil
	}
	return v, nil
}
