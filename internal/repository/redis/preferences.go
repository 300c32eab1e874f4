package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
)

const prefsKeyPrefix = "storefront:prefs:"

// PreferenceRepository implements repository.PreferenceRepository using Redis.
// Preferences carry no TTL: they mirror browser storage, which also survives
// until explicitly changed. Writes are last-write-wins since a single session
// owns its entry at a time.
type PreferenceRepository struct {
	client *redis.Client
}

// NewPreferenceRepository creates a Redis-backed preference repository.
func NewPreferenceRepository(client *redis.Client) *PreferenceRepository {
	return &PreferenceRepository{client: client}
}

// Get retrieves preferences for a session, returning defaults when none are
// stored yet.
func (r *PreferenceRepository) Get(ctx context.Context, sessionID string) (*domain.Preferences, error) {
	data, err := r.client.Get(ctx, prefsKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DefaultPreferences(sessionID), nil
		}
		return nil, fmt.Errorf("redis get preferences: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("unmarshal preferences: %w", err)
	}

	return &prefs, nil
}

// Save persists the preferences for a session.
func (r *PreferenceRepository) Save(ctx context.Context, prefs *domain.Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	if err := r.client.Set(ctx, prefsKeyPrefix+prefs.SessionID, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set preferences: %w", err)
	}

	return nil
}
