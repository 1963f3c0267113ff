package dnd5e

import (
	"context"
	"net/http"
	"time"

	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

// DefaultTimeout bounds each HTTP request when no client is supplied
const DefaultTimeout = 10 * time.Second

// The underlying API takes no context, so ctx is only checked before each call.
type client struct {
	api API
}

// Config configures the client. API overrides the HTTP-backed client.
type Config struct {
	HttpClient *http.Client
	Timeout    time.Duration
	API        API
}

// New creates a reference data client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, engineerr.InvalidArgument("dnd5e client config is required")
	}

	api := cfg.API
	if api == nil {
		httpClient := cfg.HttpClient
		if httpClient == nil {
			timeout := cfg.Timeout
			if timeout <= 0 {
				timeout = DefaultTimeout
			}
			httpClient = &http.Client{Timeout: timeout}
		}

		dndClient, err := apiDnd5e.NewDND5eAPI(&apiDnd5e.DND5eAPIConfig{
			Client: httpClient,
		})
		if err != nil {
			return nil, engineerr.WrapWithCode(err, engineerr.CodeUnavailable, "failed to create dnd5e api client")
		}
		api = dndClient
	}

	return &client{
		api: api,
	}, nil
}

func (c *client) GetClass(ctx context.Context, key string) (*rulebook.ClassDefinition, error) {
	key, err := requireKey(ctx, "class", key)
	if err != nil {
		return nil, err
	}

	response, err := c.api.GetClass(key)
	if err != nil {
		return nil, unavailable(err, "class", key)
	}
	if response == nil {
		return nil, notFound("class", key)
	}

	return apiClassToClass(response), nil
}

func (c *client) GetRace(ctx context.Context, key string) (*rulebook.RaceDefinition, error) {
	key, err := requireKey(ctx, "race", key)
	if err != nil {
		return nil, err
	}

	response, err := c.api.GetRace(key)
	if err != nil {
		return nil, unavailable(err, "race", key)
	}
	if response == nil {
		return nil, notFound("race", key)
	}

	return apiRaceToRace(response), nil
}

func (c *client) GetSpell(ctx context.Context, key string) (*rulebook.Spell, error) {
	key, err := requireKey(ctx, "spell", key)
	if err != nil {
		return nil, err
	}

	response, err := c.api.GetSpell(key)
	if err != nil {
		return nil, unavailable(err, "spell", key)
	}
	if response == nil {
		return nil, notFound("spell", key)
	}

	return apiSpellToSpell(response), nil
}

func (c *client) ListSpells(ctx context.Context, classKey string, level *int) ([]string, error) {
	classKey, err := requireKey(ctx, "class", classKey)
	if err != nil {
		return nil, err
	}

	refs, err := c.api.ListSpells(&apiDnd5e.ListSpellsInput{
		Class: classKey,
		Level: level,
	})
	if err != nil {
		return nil, unavailable(err, "class", classKey)
	}

	keys := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref != nil && ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}
	return keys, nil
}

func requireKey(ctx context.Context, kind, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", engineerr.WrapWithCode(err, engineerr.CodeUnavailable, "dnd5e request cancelled")
	}
	normalized := rulebook.Key(key)
	if normalized == "" {
		return "", engineerr.InvalidArgumentf("%s key is required", kind)
	}
	return normalized, nil
}

func unavailable(err error, kind, key string) error {
	return engineerr.WrapWithCode(err, engineerr.CodeUnavailable, "failed to get "+kind+" "+key).
		WithMeta(kind, key)
}

func notFound(kind, key string) error {
	return engineerr.NotFoundf("%s '%s' not found", kind, key).WithMeta(kind, key)
}
