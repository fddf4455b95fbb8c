package game

import (
	"github.com/lixenwraith/mouse-dash/constants"
	"github.com/lixenwraith/mouse-dash/vmath"
)

// Step advances the simulation by dt seconds with the given movement input
// and returns the events that occurred. It must only be called while the
// game is in the playing phase; once the run is over it is a no-op.
func (r *Run) Step(move vmath.Vec2, dt float64) []Event {
	if r.Over {
		return nil
	}

	r.Elapsed += dt

	// Combo decay runs every step regardless of pickups. The combo must be
	// re-earned from 1 once the window closes.
	if r.ComboTimer > 0 {
		r.ComboTimer -= dt
		if r.ComboTimer <= 0 {
			r.ComboTimer = 0
			r.Combo = 0
		}
	}

	r.Player.Update(move, dt)
	for _, h := range r.Hazards {
		h.Update(dt)
	}

	events := r.resolveCollisions()

	r.TimeLeft -= dt
	if r.TimeLeft < 0 {
		r.TimeLeft = 0
	}
	if r.TimeLeft <= 0 || r.Lives <= 0 {
		r.Over = true
		events = append(events, Event{Kind: EventGameOver})
	}
	return events
}

// resolveCollisions handles player-item pickups and player-hazard contact
// for the current step.
func (r *Run) resolveCollisions() []Event {
	var events []Event

	// Items: one idempotent pass, every overlap this step is collected.
	kept := r.Items[:0]
	for _, item := range r.Items {
		if r.Player.Pos.Distance(item.Pos) <= r.Player.Radius+item.Radius {
			if r.ComboTimer > 0 {
				r.Combo++
			} else {
				r.Combo = 1
			}
			r.ComboTimer = constants.ComboWindow
			bonus := (r.Combo - 1) * constants.ComboBonusStep
			if bonus > constants.ComboBonusCap {
				bonus = constants.ComboBonusCap
			}
			points := constants.BasePoints + bonus
			r.Score += points
			events = append(events, Event{
				Kind:   EventPickup,
				Pos:    item.Pos,
				Points: points,
				Combo:  r.Combo,
			})
			continue
		}
		kept = append(kept, item)
	}
	r.Items = kept
	if len(r.Items) == 0 {
		r.spawnItems(r.Difficulty().Items)
	}

	// Hazards: at most one hit per step, none while invulnerable.
	if !r.Player.CanTakeHit() {
		return events
	}
	for _, h := range r.Hazards {
		if r.Player.Pos.Distance(h.Pos) <= r.Player.Radius+h.Size*0.5 {
			r.Lives--
			r.Player.MarkHit()
			h.NudgeAwayFrom(r.Player.Pos, r.rng)
			events = append(events, Event{Kind: EventHit, Pos: r.Player.Pos})
			break
		}
	}
	return events
}
