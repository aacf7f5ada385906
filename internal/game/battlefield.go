package game

// recomputeDerivedBattlefield rebuilds the effective view of every
// permanent: base card attributes plus every continuous modifier
// currently in effect. It is the single-pass derivation described by the
// rules block's continuous-effect model — intentionally simpler than a
// full layer system.
//
// Only Static-tagged modifiers are stripped and rebuilt here; one-shot
// temporary effects (pumps, keyword grants "until end of turn") persist
// in Modifiers across recomputation and are only removed by their Expiry
// at the appropriate cleanup point.
func (d *Duel) recomputeDerivedBattlefield() {
	gs := d.State

	for _, ci := range gs.Battlefield {
		var kept []StatModifier
		for _, m := range ci.Modifiers {
			if !m.Static {
				kept = append(kept, m)
			}
		}
		ci.Modifiers = kept
	}

	// (a) subtype-add, (b) keyword add/remove, (c) P/T modifications,
	// (d) damage-prevention flags, (e) cost reduction, (f) attack
	// requirements — all folded into a single StaticApply callback per
	// source, applied in battlefield (creation) order so that the
	// "latest writer wins" tiebreak falls naturally out of append order.
	for _, source := range gs.Battlefield {
		for _, eff := range source.Card.Effects {
			if eff.StaticApply == nil {
				continue
			}
			eff.StaticApply(d, source, source.Controller)
		}
	}

	// Attachment effects: auras/equipment contribute "enchanted/equipped
	// only" deltas to their host. Auras/equipment are ordinary
	// battlefield permanents, so their StaticApply already ran in the
	// loop above, looking up the host via AttachedTo; there is no
	// separate attachment pass.
}

// DerivedInstanceView is the read-only, per-permanent projection a
// surface observes: base attributes plus every continuous modifier
// folded in. Computed on demand from CardInstance accessor methods, so
// there is no separate cache to go stale.
type DerivedInstanceView struct {
	InstanceID    int
	CardName      string
	Controller    int
	Owner         int
	Tapped        bool
	SummoningSick bool
	DamageMarked  int
	Power         int
	Toughness     int
	Keywords      Keyword
	Subtypes      []Subtype
	AttachedTo    int // 0 if none
	Counters      map[string]int
}

// DerivedBattlefield produces the read-only view of every permanent,
// keyed by instance id, for the given GameState. Surfaces observe only
// this derived view; they never see raw Modifiers.
func (gs *GameState) DerivedBattlefield() map[int]DerivedInstanceView {
	out := make(map[int]DerivedInstanceView, len(gs.Battlefield))
	for _, ci := range gs.Battlefield {
		attachedTo := 0
		if ci.AttachedTo != nil {
			attachedTo = ci.AttachedTo.ID
		}
		out[ci.ID] = DerivedInstanceView{
			InstanceID:    ci.ID,
			CardName:      ci.Card.Name,
			Controller:    ci.Controller,
			Owner:         ci.Owner,
			Tapped:        ci.Tapped,
			SummoningSick: ci.SummoningSick,
			DamageMarked:  ci.DamageMarked,
			Power:         ci.CurrentPower(),
			Toughness:     ci.CurrentToughness(),
			Keywords:      ci.CurrentKeywords(),
			Subtypes:      ci.CurrentSubtypes(),
			AttachedTo:    attachedTo,
			Counters:      ci.Counters,
		}
	}
	return out
}
