package motor

import (
	"log/slog"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/oerror"
	"github.com/sasha-s/go-deadlock"
)

// Providers bundles the collaborators a Motor drives.
type Providers struct {
	Body    Transform
	Backend MovementBackend
	World   WorldQuery
}

// Motor is the movement state machine of a single character. Step is expected to be called once
// per frame from a single goroutine. The trigger methods (EnterLadder, ExitLadder, SetJumpMultiplier,
// ApplyJumpBoost, ClearJumpBoost) may be called at any time, including from inside the backend's
// Move while a Step is in progress.
type Motor struct {
	conf    Config
	body    Transform
	backend MovementBackend
	world   WorldQuery
	log     *slog.Logger

	// mu guards everything below. It is never held while calling into a provider, as providers may
	// call the trigger methods synchronously.
	mu    deadlock.Mutex
	state State

	baseMultiplier float32
	// boosts holds the jump boosts of the zones the character is inside, keyed by zone.
	boosts *orderedmap.OrderedMap[string, float32]
}

// New creates a Motor for a character that has just spawned. An *oerror.Error is returned if a
// provider is missing or the config is invalid. A nil logger discards all logs.
func New(conf Config, p Providers, log *slog.Logger) (*Motor, error) {
	if p.Body == nil {
		return nil, oerror.New(game.ErrorMissingTransform)
	}
	if p.Backend == nil {
		return nil, oerror.New(game.ErrorMissingBackend)
	}
	if p.World == nil {
		return nil, oerror.New(game.ErrorMissingWorld)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Motor{
		conf:    conf,
		body:    p.Body,
		backend: p.Backend,
		world:   p.World,
		log:     log,
		state: State{
			Mode:                 ModeGrounded,
			Grounded:             true,
			JumpTimeoutRemaining: conf.JumpTimeout,
			FallTimeoutRemaining: conf.FallTimeout,
			JumpMultiplier:       1,
		},
		baseMultiplier: 1,
		boosts:         orderedmap.NewOrderedMap[string, float32](),
	}, nil
}

// Config returns the config the Motor was created with.
func (m *Motor) Config() Config {
	return m.conf
}

// State returns a copy of the current movement state.
func (m *Motor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Mode returns the current movement mode.
func (m *Motor) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Mode
}

// JumpMultiplier returns the multiplier currently applied to ground and air jumps.
func (m *Motor) JumpMultiplier() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.JumpMultiplier
}
