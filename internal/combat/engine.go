// Package combat resolves damage against units: the damage pipeline from
// absorbers through armor, structure and transfer, the critical-hit resolver
// with its per-kind handlers, explosions, crew injury and destruction.
//
// Resolution never fails. Malformed unit data is clamped, handlers reached
// for the wrong kind log a warning and do nothing, and every outcome is
// returned as ordered reports.
package combat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/JustinWhittecar/battlecore/internal/board"
	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/psr"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

const instrumentationName = "github.com/JustinWhittecar/battlecore/internal/combat"

// RollQueue receives piloting and control roll requests.
type RollQueue interface {
	Enqueue(psr.Request)
}

// Options are the optional rules the engine honors.
type Options struct {
	AdvancedCritTable   bool
	EngineExplosions    bool
	AutoEject           bool
	EdgeOnConsciousness bool
	EdgeOnFuelTank      bool
}

func DefaultOptions() Options {
	return Options{EngineExplosions: true, AutoEject: true}
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithBoard(b board.Accessor) Option {
	return func(e *Engine) { e.board = b }
}

func WithRollQueue(q RollQueue) Option {
	return func(e *Engine) { e.rolls = q }
}

func WithOptions(o Options) Option {
	return func(e *Engine) { e.opts = o }
}

// Engine is the damage engine. It holds no per-call state, so the
// re-entrant calls made by riders, explosions and falls are safe.
type Engine struct {
	dice   *dice.Roller
	rolls  RollQueue
	board  board.Accessor
	opts   Options
	logger zerolog.Logger

	damage     metric.Int64Counter
	crits      metric.Int64Counter
	destroyed  metric.Int64Counter
	explosions metric.Int64Counter
}

// New builds an engine over a roller. Without WithRollQueue, roll requests
// are dropped.
func New(r *dice.Roller, opts ...Option) (*Engine, error) {
	e := &Engine{
		dice:   r,
		rolls:  discardQueue{},
		opts:   DefaultOptions(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	m := otel.Meter(instrumentationName)
	var err error
	e.damage, err = m.Int64Counter(
		"combat.damage.applied",
		metric.WithDescription("Damage points absorbed by armor and structure"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}
	e.crits, err = m.Int64Counter(
		"combat.crits.rolled",
		metric.WithDescription("Critical hit rolls made"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating crits counter: %w", err)
	}
	e.destroyed, err = m.Int64Counter(
		"combat.units.destroyed",
		metric.WithDescription("Units destroyed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating destroyed counter: %w", err)
	}
	e.explosions, err = m.Int64Counter(
		"combat.explosions",
		metric.WithDescription("Ammunition, equipment and engine explosions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating explosions counter: %w", err)
	}
	return e, nil
}

// Dice exposes the roller so collaborators share one roll sequence.
func (e *Engine) Dice() *dice.Roller { return e.dice }

func (e *Engine) Options() Options { return e.opts }

type discardQueue struct{}

func (discardQueue) Enqueue(psr.Request) {}

func (e *Engine) enqueue(u *unit.Unit, delta int, reason string, autoFail bool) report.Report {
	e.rolls.Enqueue(psr.Request{UnitID: u.ID, Delta: delta, Reason: reason, AutoFail: autoFail})
	return *report.New(report.MsgPSRQueued).About(u.ID).AddString(reason).Add(delta).Indented(2)
}

// unreachable logs a handler reached for the wrong kind of unit.
func (e *Engine) unreachable(u *unit.Unit, loc int, what string) {
	e.logger.Warn().
		Str("unit", u.ID).
		Str("kind", u.Kind.String()).
		Int("location", loc).
		Msg(what)
}

func (e *Engine) count(c metric.Int64Counter, n int, u *unit.Unit) {
	if n <= 0 {
		return
	}
	c.Add(context.Background(), int64(n), metric.WithAttributes(attribute.String("kind", u.Kind.String())))
}
