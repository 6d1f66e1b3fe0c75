package game

import (
	"github.com/lixenwraith/vi-arena/component"
	"github.com/lixenwraith/vi-arena/render"
)

// Snapshot is an immutable copy of one tick's observable state
// Built under the world lock, safe to hand to other goroutines
type Snapshot struct {
	Tick            int64            `msgpack:"tick"`
	Phase           string           `msgpack:"phase"`
	Score           int              `msgpack:"score"`
	Kills           int              `msgpack:"kills"`
	Elapsed         int              `msgpack:"elapsed"`
	Health          int              `msgpack:"health"`
	SpawnIntervalMs int64            `msgpack:"spawn_interval_ms"`
	Arena           ArenaView        `msgpack:"arena"`
	Actor           ActorView        `msgpack:"actor"`
	Adversaries     []AdversaryView  `msgpack:"adversaries"`
	Projectiles     []ProjectileView `msgpack:"projectiles"`
	Active          *PowerUpView     `msgpack:"active,omitempty"`
	Offered         []PowerUpView    `msgpack:"offered,omitempty"`
	Metrics         map[string]any   `msgpack:"metrics,omitempty"`
}

type ArenaView struct {
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
}

type ActorView struct {
	X          float64  `msgpack:"x"`
	Y          float64  `msgpack:"y"`
	Radius     float64  `msgpack:"r"`
	Health     float64  `msgpack:"health"`
	Invincible bool     `msgpack:"invincible"`
	Variant    string   `msgpack:"variant"`
	Unlocked   []string `msgpack:"unlocked"`
}

type AdversaryView struct {
	ID     uint64  `msgpack:"id"`
	Type   string  `msgpack:"type"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
	Health int     `msgpack:"health"`
	Color  string  `msgpack:"color"`
}

type ProjectileView struct {
	ID     uint64  `msgpack:"id"`
	Type   string  `msgpack:"type"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
}

type PowerUpView struct {
	Name        string `msgpack:"name"`
	Label       string `msgpack:"label"`
	Description string `msgpack:"description,omitempty"`
	RemainingMs int64  `msgpack:"remaining_ms,omitempty"`
}

// Snapshot captures the current state
func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	s.world.RunSafe(func() {
		snap = s.snapshotLocked()
	})
	return snap
}

func (s *Simulation) snapshotLocked() Snapshot {
	w := s.world
	st := w.State
	actor := w.Actor

	snap := Snapshot{
		Tick:            st.Ticks,
		Phase:           st.Phase.String(),
		Score:           st.Score,
		Kills:           st.KillCount,
		Elapsed:         st.ElapsedTime,
		Health:          render.HealthDisplay(actor.Health),
		SpawnIntervalMs: st.SpawnInterval.Milliseconds(),
		Arena:           ArenaView{Width: w.Config.Arena.Width, Height: w.Config.Arena.Height},
		Actor: ActorView{
			X:          actor.Pos.X,
			Y:          actor.Pos.Y,
			Radius:     actor.Radius,
			Health:     actor.Health,
			Invincible: actor.Invincibility > 0,
			Variant:    actor.ActiveType().String(),
			Unlocked:   make([]string, 0, len(actor.Unlocked)),
		},
		Adversaries: make([]AdversaryView, 0, w.Adversaries.Count()),
		Projectiles: make([]ProjectileView, 0, w.Projectiles.Count()),
		Metrics:     w.Status.Snapshot(),
	}
	for _, v := range actor.Unlocked {
		snap.Actor.Unlocked = append(snap.Actor.Unlocked, v.String())
	}

	for _, e := range w.Adversaries.Entities() {
		adv, ok := w.Adversaries.Get(e)
		if !ok {
			continue
		}
		snap.Adversaries = append(snap.Adversaries, AdversaryView{
			ID:     uint64(e),
			Type:   adv.Type.String(),
			X:      adv.Pos.X,
			Y:      adv.Pos.Y,
			Radius: adv.Radius,
			Health: adv.Health,
			Color:  adv.Color.String(),
		})
	}
	for _, e := range w.Projectiles.Entities() {
		p, ok := w.Projectiles.Get(e)
		if !ok {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:     uint64(e),
			Type:   p.Type.String(),
			X:      p.Pos.X,
			Y:      p.Pos.Y,
			Radius: p.Radius,
		})
	}

	if st.Active != nil {
		v := powerUpView(st.Active.Definition)
		v.RemainingMs = st.Active.Remaining(s.clock.Now()).Milliseconds()
		snap.Active = &v
	}
	for _, def := range st.Offered {
		snap.Offered = append(snap.Offered, powerUpView(def))
	}
	return snap
}

func powerUpView(def component.PowerUpDefinition) PowerUpView {
	return PowerUpView{Name: def.Name(), Label: def.Label, Description: def.Description}
}
