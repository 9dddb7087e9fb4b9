package sim

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/battlecore/internal/bvcalc"
	"github.com/JustinWhittecar/battlecore/internal/combat"
	"github.com/JustinWhittecar/battlecore/internal/db"
	"github.com/JustinWhittecar/battlecore/internal/phase"
	"github.com/JustinWhittecar/battlecore/internal/report"
	"github.com/JustinWhittecar/battlecore/internal/unit"
)

// DefaultModifier stands in for range and movement on every attack.
const DefaultModifier = 2

var ErrSameUnit = errors.New("a unit cannot duel itself")

type Option func(*Duel)

func WithModifier(n int) Option {
	return func(d *Duel) { d.modifier = n }
}

func WithLogger(l zerolog.Logger) Option {
	return func(d *Duel) { d.logger = l }
}

// Duel is two units trading fire until one falls or time runs out.
type Duel struct {
	ctx      *phase.Context
	units    [2]*unit.Unit
	startBV  [2]int
	modifier int
	logger   zerolog.Logger
	turns    int
}

// Result is the outcome of a duel.
type Result struct {
	Turns  int
	Winner *unit.Unit // nil on a draw
}

// NewDuel registers both units with ctx.
func NewDuel(ctx *phase.Context, a, b *unit.Unit, opts ...Option) (*Duel, error) {
	if a == b {
		return nil, ErrSameUnit
	}
	d := &Duel{
		ctx:      ctx,
		units:    [2]*unit.Unit{a, b},
		modifier: DefaultModifier,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	for i, u := range d.units {
		if err := ctx.Add(u); err != nil {
			return nil, fmt.Errorf("adding %s: %w", u.Name, err)
		}
		d.startBV[i] = bvcalc.Estimate(u)
	}
	return d, nil
}

// ─── Turn loop ──────────────────────────────────────────────────────────────

// canFire reports whether u may attack this turn.
func canFire(u *unit.Unit) bool {
	return u.Alive() && !u.Shutdown && u.Crew != nil && u.Crew.CanAct()
}

// volley lists the weapons u fires this turn. Volleys are chosen before any
// shot resolves so both sides fire simultaneously.
func volley(u *unit.Unit) []int {
	if !canFire(u) {
		return nil
	}
	var out []int
	for _, i := range u.Weapons(-1) {
		if u.Equipment[i].Usable() {
			out = append(out, i)
		}
	}
	return out
}

// Turn runs one weapon attack phase and the end of phase.
func (d *Duel) Turn() []report.Report {
	d.turns++
	a, b := d.units[0], d.units[1]
	va, vb := volley(a), volley(b)

	var out []report.Report
	for _, i := range va {
		out = append(out, d.fire(a, b, i)...)
	}
	for _, i := range vb {
		out = append(out, d.fire(b, a, i)...)
	}
	return append(out, d.ctx.EndPhase()...)
}

// Run plays turns until a side is destroyed or maxTurns have passed.
func (d *Duel) Run(maxTurns int) Result {
	for d.turns < maxTurns && d.units[0].Alive() && d.units[1].Alive() {
		d.Turn()
	}
	res := Result{Turns: d.turns}
	switch a, b := d.units[0].Alive(), d.units[1].Alive(); {
	case a && !b:
		res.Winner = d.units[0]
	case b && !a:
		res.Winner = d.units[1]
	}

	r := report.New(report.MsgDuelResult).Add(d.turns)
	if res.Winner != nil {
		r.About(res.Winner.ID)
	}
	d.ctx.Log.Append(*r.Line())
	d.logger.Info().Int("turns", d.turns).Bool("draw", res.Winner == nil).Msg("duel finished")
	return res
}

// ─── Weapon fire ────────────────────────────────────────────────────────────

func needsAmmo(m *unit.Mounted) bool {
	return m.Class == unit.ClassBallistic || m.Class == unit.ClassMissile
}

// ammoFor returns a loaded bin that feeds the weapon, or -1.
func ammoFor(u *unit.Unit, w *unit.Mounted) int {
	for i, m := range u.Equipment {
		if m.Kind != unit.EquipAmmo || m.Destroyed || m.Shots <= 0 {
			continue
		}
		if bvcalc.Feeds(m.Name, w.Name) {
			return i
		}
	}
	return -1
}

func (d *Duel) emit(out []report.Report, r *report.Report) []report.Report {
	d.ctx.Log.Append(*r)
	return append(out, *r)
}

func (d *Duel) fire(att, tgt *unit.Unit, idx int) []report.Report {
	var out []report.Report
	w := att.Equipment[idx]
	if needsAmmo(w) {
		bin := ammoFor(att, w)
		if bin < 0 {
			return d.emit(out, report.New(report.MsgOutOfAmmo).About(att.ID).AddString(w.Name))
		}
		att.Equipment[bin].Shots--
	}
	d.ctx.AddHeat(att, w.Heat)

	dice := d.ctx.Engine.Dice()
	tn := att.Crew.Current().Gunnery + d.modifier
	roll := dice.Roll2d6()
	hit := roll >= tn
	out = d.emit(out, report.New(report.MsgWeaponAttack).About(att.ID).AddString(w.Name, tgt.ID).Add(tn, roll).Outcome(hit))
	if !hit || !tgt.Alive() {
		return out
	}

	rack := rackSize(w.Name)
	if w.Class != unit.ClassMissile || rack == 0 {
		return append(out, d.strike(att, tgt, w, w.Damage)...)
	}

	hits := rack
	if !allHit(w.Name) {
		hits = ClusterHits(rack, dice.Roll2d6())
	}
	out = d.emit(out, report.New(report.MsgClusterHits).About(att.ID).Add(hits, rack).Indented(1))
	per := max(w.Damage/rack, 1)
	group := missileGroup(w.Name)
	for hits > 0 {
		n := min(group, hits)
		out = append(out, d.strike(att, tgt, w, n*per)...)
		hits -= n
	}
	return out
}

// strike rolls a hit location and hands one damage packet to the engine.
func (d *Duel) strike(att, tgt *unit.Unit, w *unit.Mounted, amount int) []report.Report {
	loc, crit := tgt.RollHitLocation(false, d.ctx.Engine.Dice())
	ev := combat.DamageEvent{
		Hit: combat.HitSpec{
			Location: loc,
			Class:    w.Class,
			Attacker: att.ID,
		},
		Amount: amount,
	}
	if crit {
		ev.Hit.Effects |= combat.EffectCritical
	}
	return d.ctx.Apply(tgt, ev)
}

// ─── Archive ────────────────────────────────────────────────────────────────

// Resolution packages the duel and the context's log for the archive.
func (d *Duel) Resolution(title string, seed int64, res Result) *db.Resolution {
	r := &db.Resolution{
		ID:      d.ctx.ID,
		Title:   title,
		Seed:    seed,
		Turns:   res.Turns,
		Reports: d.ctx.Log.Reports,
	}
	if res.Winner != nil {
		r.Winner = res.Winner.Name
	}
	for i, u := range d.units {
		r.Units = append(r.Units, db.UnitSummary{
			Name:      u.Name,
			Kind:      u.Kind.String(),
			StartBV:   d.startBV[i],
			EndBV:     bvcalc.Estimate(u),
			Destroyed: !u.Alive(),
			Cause:     u.DestroyedBy,
		})
	}
	return r
}
