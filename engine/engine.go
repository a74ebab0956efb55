// Package engine provides the Step() orchestrator that wires together
// parsing, the orchestrator's action table, combat, items and the world
// update into a single turn.
package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nathoo/legend/engine/chance"
	"github.com/nathoo/legend/engine/game"
	"github.com/nathoo/legend/engine/parser"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/engine/world"
	"github.com/nathoo/legend/types"
)

// Engine holds the scenario definitions and the running session.
type Engine struct {
	Defs    *state.Defs
	Session *types.Session
	Map     *world.Map
	Source  chance.Source
	Log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource replaces the default position-hash randomness.
func WithSource(src chance.Source) Option {
	return func(e *Engine) { e.Source = src }
}

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.Log = log }
}

// New creates a new engine and session from definitions.
func New(defs *state.Defs, opts ...Option) *Engine {
	e := &Engine{
		Defs:   defs,
		Map:    state.BuildMap(defs),
		Source: chance.PositionHash{},
		Log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Session = state.NewSession(defs, uuid.NewString())
	e.Log = e.Log.With(zap.String("session", e.Session.ID))
	if seeded, ok := e.Source.(*chance.Seeded); ok {
		e.Log.Info("seeded randomness", zap.Int64("seed", seeded.RNG.Seed()))
	}
	e.Log.Info("session started",
		zap.String("scenario", defs.Game.Title),
		zap.Int("enemies", len(e.Session.Enemies)),
		zap.Int("x", e.Session.Game.Pos.X),
		zap.Int("y", e.Session.Game.Pos.Y))
	return e
}

// step collects the output and events of one Step call.
type step struct {
	result types.Result
}

func (st *step) say(lines ...string) {
	st.result.Output = append(st.result.Output, lines...)
}

func (st *step) emit(typ string, data map[string]any) {
	st.result.Events = append(st.result.Events, types.Event{Type: typ, Data: data})
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	st := &step{}
	s := e.Session

	// 0. Game over: block all gameplay commands.
	if !s.Running {
		st.say("The adventure is over.")
		return e.finish(st)
	}

	// 1. Parse input.
	intent := parser.Parse(input)

	// 2. Log the command.
	s.CommandLog = append(s.CommandLog, input)
	e.Log.Debug("step", zap.String("input", input), zap.String("verb", intent.Verb), zap.Int("turn", s.Game.TurnNumber))

	// 3. Empty input.
	if intent.Verb == "" {
		st.say("What do you want to do?")
		return e.finish(st)
	}

	// 4. Free actions: nothing in the world moves.
	switch intent.Verb {
	case "status":
		st.say(e.statusLines()...)
		return e.finish(st)
	case "help":
		st.say(helpLines()...)
		return e.finish(st)
	case "look":
		st.say(e.lookLines()...)
		return e.finish(st)
	case "inventory":
		ar := game.ProcessAction(s.Game, types.OpenInventory)
		s.Game.Phase = e.settledPhase(ar.NewPhase)
		st.say(ar.Message)
		st.say(e.inventoryLines()...)
		return e.finish(st)
	case "equip":
		e.equip(st, intent.Object)
		return e.finish(st)
	}

	action, ok := parser.Action(intent)
	if !ok {
		st.say("Unknown command. Type 'help' for help.")
		return e.finish(st)
	}

	// 5. The orchestrator's message and phase for the action.
	ar := game.ProcessAction(s.Game, action)

	// 6. Apply the action. Handlers that reject the command cost no turn.
	moved := false
	tookTurn := true
	switch action {
	case types.MoveNorth, types.MoveSouth, types.MoveEast, types.MoveWest:
		dir, _ := game.ActionDirection(action)
		moved = e.move(st, dir, ar.Message)
	case types.Attack:
		tookTurn = e.attack(st, intent.Object, ar.Message)
	case types.UseItem:
		e.useItem(st, intent.Object)
	case types.Interact:
		e.interact(st)
	case types.Wait:
		st.say(ar.Message)
	case types.Quit:
		st.say(ar.Message)
		s.Running = false
		s.Game.Phase = ar.NewPhase
		e.endBattle()
		e.Log.Info("player quit", zap.Int("turn", s.Game.TurnNumber), zap.Int("score", s.Score))
		return e.finish(st)
	}
	if !tookTurn {
		return e.finish(st)
	}
	s.Game.Phase = e.settledPhase(ar.NewPhase)

	// 7. End of turn: the world reacts.
	e.endTurn(st, moved)

	return e.finish(st)
}

// settledPhase is the phase after an action, given the current battle.
func (e *Engine) settledPhase(next types.GamePhase) types.GamePhase {
	if e.Session.Battle.State.Active {
		return types.Combat
	}
	if next == types.Combat {
		return types.Exploration
	}
	return next
}

// finish fills in the result's phase and checks state consistency.
func (e *Engine) finish(st *step) types.Result {
	s := e.Session
	if !game.ValidateState(s.Game) {
		e.Log.Warn("invalid game state",
			zap.Int("health", s.Game.Player.Health),
			zap.Int("max_health", s.Game.Player.MaxHealth),
			zap.Int("x", s.Game.Pos.X),
			zap.Int("y", s.Game.Pos.Y))
	}
	st.result.Phase = s.Game.Phase
	st.result.Continues = s.Running
	return st.result
}
