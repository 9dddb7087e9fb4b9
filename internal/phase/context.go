// Package phase owns everything that lives for one game: the damage engine,
// the deferred roll queue, the heat tracker, the board and the report log.
// At the end of each phase it drains heat, flushes the roll queue into falls
// and crashes, and fans pending area explosions out over the board.
package phase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/battlecore/internal/board"
	"github.com/JustinWhittecar/battlecore/internal/combat"
	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/heat"
	"github.com/JustinWhittecar/battlecore/internal/psr"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

var ErrDuplicateUnit = errors.New("duplicate unit id")

// flushes per end of phase before the roll queue is abandoned
const maxFlushes = 8

type Option func(*Context)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

func WithBoard(b *board.Board) Option {
	return func(c *Context) { c.Board = b }
}

func WithRules(o combat.Options) Option {
	return func(c *Context) { c.rules = o }
}

// Context is one game in progress.
type Context struct {
	ID     uuid.UUID
	Engine *combat.Engine
	Rolls  *psr.Queue
	Heat   *heat.Tracker
	Board  *board.Board
	Log    *report.Log
	Phase  int

	dice   *dice.Roller
	rules  combat.Options
	logger zerolog.Logger
	units  map[string]*unit.Unit
	order  []*unit.Unit
}

// New builds a game over one roller; every roll of the game comes from it.
func New(r *dice.Roller, opts ...Option) (*Context, error) {
	c := &Context{
		ID:     uuid.New(),
		Rolls:  psr.NewQueue(),
		Heat:   heat.NewTracker(),
		Log:    &report.Log{},
		dice:   r,
		rules:  combat.DefaultOptions(),
		logger: zerolog.Nop(),
		units:  make(map[string]*unit.Unit),
	}
	for _, opt := range opts {
		opt(c)
	}

	engineOpts := []combat.Option{
		combat.WithLogger(c.logger),
		combat.WithRollQueue(c.Rolls),
		combat.WithOptions(c.rules),
	}
	if c.Board != nil {
		engineOpts = append(engineOpts, combat.WithBoard(c.Board))
	}
	e, err := combat.New(r, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	c.Engine = e
	return c, nil
}

// ─── Units ──────────────────────────────────────────────────────────────────

// Add registers a unit. Units without an id get a fresh one; squadron
// members are registered for lookup as well.
func (c *Context) Add(u *unit.Unit) error {
	if err := c.register(u); err != nil {
		return err
	}
	c.order = append(c.order, u)
	return nil
}

func (c *Context) register(u *unit.Unit) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if _, ok := c.units[u.ID]; ok {
		return fmt.Errorf("adding %s: %w", u.ID, ErrDuplicateUnit)
	}
	c.units[u.ID] = u
	for _, m := range u.Members {
		if err := c.register(m); err != nil {
			return err
		}
	}
	return nil
}

// Unit looks a unit up by id, nil when unknown.
func (c *Context) Unit(id string) *unit.Unit { return c.units[id] }

// Units returns the top-level units in the order they were added.
func (c *Context) Units() []*unit.Unit { return c.order }

// Alive returns the top-level units still in the fight.
func (c *Context) Alive() []*unit.Unit {
	var out []*unit.Unit
	for _, u := range c.order {
		if u.Alive() {
			out = append(out, u)
		}
	}
	return out
}

// ─── Actions ────────────────────────────────────────────────────────────────

// Apply resolves one damage packet and records the reports.
func (c *Context) Apply(u *unit.Unit, ev combat.DamageEvent) []report.Report {
	reps := c.Engine.ApplyDamage(u, ev)
	c.Log.Append(reps...)
	return reps
}

// AddHeat records heat generated this phase.
func (c *Context) AddHeat(u *unit.Unit, n int) {
	c.Heat.Accumulate(u, n)
}

// EndPhase settles heat, rolls every queued piloting and control roll,
// detonates pending area explosions and resets the per-phase counters.
func (c *Context) EndPhase() []report.Report {
	out := c.Engine.ConsumeHeat(c.Heat.Resolve(c.dice))
	out = append(out, c.flushRolls()...)
	out = append(out, c.detonate()...)
	// explosions can topple units
	out = append(out, c.flushRolls()...)

	for _, u := range c.order {
		u.ResetPhase()
		for _, m := range u.Members {
			m.ResetPhase()
		}
	}
	out = append(out, *report.New(report.MsgPhaseEnd).Add(c.Phase).Line())
	c.Phase++
	c.Log.Append(out...)
	return out
}

// flushRolls resolves the roll queue until falls stop queueing new rolls.
func (c *Context) flushRolls() []report.Report {
	var out []report.Report
	for i := 0; c.Rolls.Len() > 0; i++ {
		if i == maxFlushes {
			c.logger.Warn().Int("pending", c.Rolls.Len()).Msg("abandoning roll queue")
			c.Rolls.ResolveAll(func(string) *unit.Unit { return nil }, c.dice)
			break
		}
		outcomes, reps := c.Rolls.ResolveAll(c.Unit, c.dice)
		out = append(out, reps...)
		for _, o := range outcomes {
			if o.Passed {
				continue
			}
			u := c.Unit(o.UnitID)
			switch o.Consequence {
			case psr.ConsequenceFall:
				out = append(out, c.Fall(u)...)
			case psr.ConsequenceCrash:
				out = append(out, c.Crash(u)...)
			}
		}
	}
	return out
}
