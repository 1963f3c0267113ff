package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-character-engine/internal/adapters/rpgtoolkit"
	"github.com/KirkDiggler/dnd-character-engine/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/dice"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/actions"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e/calculators"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
	resourcerepo "github.com/KirkDiggler/dnd-character-engine/internal/repositories/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/uuid"
)

type service struct {
	catalog     *rulebook.Catalog
	calculator  *calculators.Calculator
	aggregator  *actions.Aggregator
	repository  resourcerepo.Repository
	dndClient   dnd5e.Client
	diceRoller  dice.Roller
	publisher   rpgtoolkit.Publisher
	idGenerator uuid.Generator
	healingMode HealingMode
	logger      *zap.Logger
	writes      *keyedMutex
}

// ServiceConfig holds the collaborators of the engine service
type ServiceConfig struct {
	Catalog    *rulebook.Catalog
	Repository resourcerepo.Repository
	// DNDClient, when set, fills catalog gaps before spells are resolved
	DNDClient     dnd5e.Client
	DiceRoller    dice.Roller
	Publisher     rpgtoolkit.Publisher
	UUIDGenerator uuid.Generator
	HealingMode   HealingMode
	Logger        *zap.Logger
}

// NewService creates the engine service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		catalog:     cfg.Catalog,
		calculator:  calculators.NewCalculator(cfg.Catalog),
		aggregator:  actions.NewAggregator(cfg.Catalog),
		repository:  cfg.Repository,
		dndClient:   cfg.DNDClient,
		diceRoller:  cfg.DiceRoller,
		publisher:   cfg.Publisher,
		idGenerator: cfg.UUIDGenerator,
		healingMode: cfg.HealingMode,
		logger:      cfg.Logger,
		writes:      newKeyedMutex(),
	}

	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}
	if svc.idGenerator == nil {
		svc.idGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.healingMode == "" {
		svc.healingMode = HealingAverage
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

func (s *service) ComputeDerivedStats(_ context.Context, snapshot *character.Snapshot) (*calculators.DerivedStats, error) {
	stats, err := s.calculator.Compute(snapshot)
	if err != nil {
		return nil, engineerr.Wrap(err, "failed to compute derived stats")
	}
	return stats, nil
}

func (s *service) InitializeResources(ctx context.Context, input *InitializeResourcesInput) (*resources.State, error) {
	if input == nil {
		return nil, engineerr.InvalidArgument("input cannot be nil")
	}
	start := time.Now()

	stats, err := s.calculator.Compute(input.Snapshot)
	if err != nil {
		return nil, engineerr.Wrap(err, "failed to initialize resources")
	}

	snap := input.Snapshot
	maxHP := input.MaxHP
	if maxHP <= 0 {
		maxHP = stats.MaxHP.Value
	}

	state := resources.Initialize(resources.InitializeInput{
		ID:       s.idGenerator.New(),
		Class:    snap.Class,
		Subclass: snap.Subclass,
		Race:     snap.Race,
		Level:    snap.Level,
		MaxHP:    maxHP,
		Scores:   snap.AbilityScores.Final,
	})

	if input.CharacterID == "" {
		return state, nil
	}

	unlock := s.writes.Lock(input.CharacterID)
	defer unlock()

	state.CharacterID = input.CharacterID
	if err := s.repository.Save(ctx, input.CharacterID, state); err != nil {
		return nil, engineerr.Wrap(err, "failed to save resource state")
	}

	s.publish(ctx, rpgtoolkit.InitializedEvent(input.CharacterID, state))
	s.logger.Info("resources initialized",
		zap.String("character_id", input.CharacterID),
		zap.String("state_id", state.ID),
		zap.Duration("elapsed", time.Since(start)))

	return state, nil
}

func (s *service) GetResources(ctx context.Context, characterID string) (*resources.State, error) {
	if characterID == "" {
		return nil, engineerr.InvalidArgument("character ID is required")
	}

	state, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, engineerr.Wrap(err, "failed to get resource state")
	}
	return state, nil
}

func (s *service) MutateResources(ctx context.Context, input *MutateResourcesInput) (*MutateResourcesOutput, error) {
	if input == nil {
		return nil, engineerr.InvalidArgument("input cannot be nil")
	}
	if input.Operation == nil {
		return nil, engineerr.InvalidArgument("operation is required")
	}

	// a caller-held state is transformed without touching storage
	if input.State != nil {
		op, err := resolveRolls(s.diceRoller, s.healingMode, input.State, input.Operation)
		if err != nil {
			return nil, err
		}
		return &MutateResourcesOutput{
			Previous: input.State,
			State:    resources.Apply(input.State, op),
		}, nil
	}

	if input.CharacterID == "" {
		return nil, engineerr.InvalidArgument("character ID or state is required")
	}
	start := time.Now()

	unlock := s.writes.Lock(input.CharacterID)
	defer unlock()

	previous, err := s.repository.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, engineerr.Wrap(err, "failed to load resource state")
	}

	op, err := resolveRolls(s.diceRoller, s.healingMode, previous, input.Operation)
	if err != nil {
		return nil, err
	}

	next := resources.Apply(previous, op)
	if err := s.repository.Save(ctx, input.CharacterID, next); err != nil {
		return nil, engineerr.Wrap(err, "failed to save resource state")
	}

	for _, event := range rpgtoolkit.MutationEvents(input.CharacterID, op, previous, next) {
		s.publish(ctx, event)
	}
	s.logger.Info("resources mutated",
		zap.String("character_id", input.CharacterID),
		zap.String("op", string(op.Type())),
		zap.Int("current_hp", next.CurrentHP),
		zap.Duration("elapsed", time.Since(start)))

	return &MutateResourcesOutput{
		Previous: previous,
		State:    next,
	}, nil
}

func (s *service) AggregateActions(ctx context.Context, input *AggregateActionsInput) (*AggregateActionsOutput, error) {
	sheet, err := s.Sheet(ctx, input)
	if err != nil {
		return nil, err
	}
	return &AggregateActionsOutput{
		Actions:       sheet.Actions,
		MissingSpells: sheet.MissingSpells,
	}, nil
}

func (s *service) Sheet(ctx context.Context, input *AggregateActionsInput) (*SheetOutput, error) {
	if input == nil {
		return nil, engineerr.InvalidArgument("input cannot be nil")
	}
	start := time.Now()

	var (
		stats   *calculators.DerivedStats
		state   *resources.State
		spells  []*rulebook.Spell
		missing []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.calculator.Compute(input.Snapshot)
		if err != nil {
			return engineerr.Wrap(err, "failed to compute derived stats")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		state, err = s.resolveState(gctx, input)
		return err
	})
	g.Go(func() error {
		var err error
		spells, missing, err = s.resolveSpells(gctx, input)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if state == nil {
		state = resources.Initialize(resources.InitializeInput{
			Class:    input.Snapshot.Class,
			Subclass: input.Snapshot.Subclass,
			Race:     input.Snapshot.Race,
			Level:    input.Snapshot.Level,
			MaxHP:    stats.MaxHP.Value,
			Scores:   input.Snapshot.AbilityScores.Final,
		})
	}

	out := &SheetOutput{
		Stats:         stats,
		State:         state,
		Actions:       s.aggregator.AggregateWithStats(input.Snapshot, stats, spells, state),
		MissingSpells: missing,
	}

	s.logger.Debug("sheet computed",
		zap.String("character_id", input.CharacterID),
		zap.Int("actions", len(out.Actions)),
		zap.Strings("missing_spells", missing),
		zap.Duration("elapsed", time.Since(start)))

	return out, nil
}

// resolveState returns the caller's state, the stored one, or nil when the
// character has none yet
func (s *service) resolveState(ctx context.Context, input *AggregateActionsInput) (*resources.State, error) {
	if input.State != nil {
		return input.State, nil
	}
	if input.CharacterID == "" {
		return nil, nil
	}

	state, err := s.repository.Get(ctx, input.CharacterID)
	if engineerr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, engineerr.Wrap(err, "failed to load resource state")
	}
	return state, nil
}

func (s *service) resolveSpells(ctx context.Context, input *AggregateActionsInput) ([]*rulebook.Spell, []string, error) {
	if s.dndClient != nil && input.Snapshot != nil {
		result, err := dnd5e.Hydrate(ctx, s.dndClient, s.catalog, dnd5e.HydrateInput{
			Class:  input.Snapshot.Class,
			Race:   input.Snapshot.Race,
			Spells: input.Spells,
		})
		if err != nil {
			// the embedded catalog still answers; remote data is best effort
			s.logger.Warn("failed to fetch remote reference data", zap.Error(err))
		} else if len(result.Fetched) > 0 {
			s.logger.Debug("fetched remote reference data", zap.Strings("keys", result.Fetched))
		}
	}

	spells, missing := s.catalog.Spells(input.Spells)
	return spells, missing, nil
}

func (s *service) publish(ctx context.Context, event rpgtoolkit.ResourceEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish resource event",
			zap.String("event", event.Type),
			zap.String("character_id", event.CharacterID),
			zap.Error(err))
	}
}
