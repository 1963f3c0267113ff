package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

// DefaultKeyPrefix namespaces resource keys
const DefaultKeyPrefix = "engine"

// Data is the stored form of a resource state
type Data struct {
	CharacterID string           `json:"character_id"`
	State       *resources.State `json:"state"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// RedisRepoConfig configures the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	KeyPrefix    string
	TTL          time.Duration
	TimeProvider TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	prefix       string
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewRedisRepository creates a Redis-backed repository. A zero TTL keeps
// states forever.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = realTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		prefix:       prefix,
		ttl:          cfg.TTL,
		timeProvider: timeProvider,
	}
}

func (r *redisRepo) key(characterID string) string {
	return fmt.Sprintf("%s:resources:%s", r.prefix, characterID)
}

func (r *redisRepo) Get(ctx context.Context, characterID string) (*resources.State, error) {
	if characterID == "" {
		return nil, engineerr.InvalidArgument("character ID is required")
	}

	raw, err := r.client.Get(ctx, r.key(characterID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, engineerr.NotFoundf("resource state for character '%s' not found", characterID).
			WithMeta("character_id", characterID)
	}
	if err != nil {
		return nil, engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to get resource state").
			WithMeta("character_id", characterID)
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to unmarshal resource state").
			WithMeta("character_id", characterID)
	}
	if data.State == nil {
		return nil, engineerr.Internalf("resource state for character '%s' is empty", characterID).
			WithMeta("character_id", characterID)
	}

	data.State.Normalize()
	return data.State, nil
}

func (r *redisRepo) Save(ctx context.Context, characterID string, state *resources.State) error {
	if characterID == "" {
		return engineerr.InvalidArgument("character ID is required")
	}
	if state == nil {
		return engineerr.InvalidArgument("resource state cannot be nil")
	}

	stored := state.Clone()
	stored.CharacterID = characterID

	payload, err := json.Marshal(Data{
		CharacterID: characterID,
		State:       stored,
		UpdatedAt:   r.timeProvider.Now(),
	})
	if err != nil {
		return engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to marshal resource state").
			WithMeta("character_id", characterID)
	}

	if err := r.client.Set(ctx, r.key(characterID), string(payload), r.ttl).Err(); err != nil {
		return engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to save resource state").
			WithMeta("character_id", characterID)
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, characterID string) error {
	if characterID == "" {
		return engineerr.InvalidArgument("character ID is required")
	}

	if err := r.client.Del(ctx, r.key(characterID)).Err(); err != nil {
		return engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to delete resource state").
			WithMeta("character_id", characterID)
	}
	return nil
}
