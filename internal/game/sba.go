package game

import "github.com/arcanum-dev/arcanum-engine/internal/log"

// runStateBasedActions applies every state-based action to a fixed point:
// one pass discovers and applies every applicable SBA simultaneously, and
// the pass repeats until a pass makes no further change. Called after
// every resolution and after every substep that mutates state.
func (d *Duel) runStateBasedActions() {
	gs := d.State
	for {
		if gs.GameOver {
			return
		}
		changed := false

		changed = d.sbaCheckCreatures() || changed
		changed = d.sbaCheckAttachments() || changed
		changed = d.sbaCheckPlayers() || changed
		changed = d.sbaCheckTokens() || changed

		if !changed {
			return
		}
		gs.CheckWinCondition()
	}
}

// sbaCheckCreatures destroys creatures with lethal damage or nonpositive
// toughness, and anything marked by deathtouch this turn, unless
// indestructible.
func (d *Duel) sbaCheckCreatures() bool {
	gs := d.State
	var toDestroy []*CardInstance
	for _, ci := range gs.Battlefield {
		if ci.Card.CardType != CardTypeCreature {
			continue
		}
		indestructible := ci.CurrentKeywords().Has(KeywordIndestructible)
		if ci.CurrentToughness() <= 0 {
			toDestroy = append(toDestroy, ci)
			continue
		}
		if indestructible {
			continue
		}
		if ci.DamageMarked >= ci.CurrentToughness() {
			toDestroy = append(toDestroy, ci)
			continue
		}
		if ci.MarkedForDeath {
			toDestroy = append(toDestroy, ci)
		}
	}
	for _, ci := range toDestroy {
		d.destroyPermanent(ci, "state-based action")
	}
	return len(toDestroy) > 0
}

// sbaCheckAttachments sends auras on an illegal host (or none) to the
// graveyard, and detaches equipment on an illegal host.
func (d *Duel) sbaCheckAttachments() bool {
	gs := d.State
	changed := false
	var auraFail []*CardInstance
	for _, ci := range gs.Battlefield {
		if ci.Card.HasSubtype(SubtypeAura) {
			if ci.AttachedTo == nil || !d.isLegalAttachHost(ci, ci.AttachedTo) {
				auraFail = append(auraFail, ci)
			}
			continue
		}
		if ci.Card.HasSubtype(SubtypeEquipment) {
			if ci.AttachedTo != nil && !d.isLegalAttachHost(ci, ci.AttachedTo) {
				d.detachPermanent(ci, "illegal host")
				changed = true
			}
		}
	}
	for _, aura := range auraFail {
		d.destroyPermanent(aura, "attached to illegal host")
		changed = true
	}
	return changed
}

// sbaCheckPlayers applies the life-total loss rule. The empty-library
// loss is applied at draw time by drawCardOrLose.
func (d *Duel) sbaCheckPlayers() bool {
	gs := d.State
	changed := false
	for _, p := range gs.Players {
		if p.HasLost {
			continue
		}
		if p.Life <= 0 {
			p.HasLost = true
			p.LossReason = "life total at or below zero"
			d.log(log.NewPlayerLosesGameEvent(gs.Turn, gs.Phase.String(), p.ID, p.LossReason))
			changed = true
		}
	}
	return changed
}

// sbaCheckTokens removes tokens that ended up off the battlefield from
// existence rather than letting them sit in a hidden zone.
func (d *Duel) sbaCheckTokens() bool {
	gs := d.State
	changed := false
	for _, p := range gs.Players {
		kept := p.Graveyard[:0:0]
		for _, ci := range p.Graveyard {
			if ci.IsToken {
				changed = true
				continue
			}
			kept = append(kept, ci)
		}
		p.Graveyard = kept
	}
	return changed
}

// destroyPermanent moves a permanent from the battlefield to its owner's
// graveyard (or removes it from existence if it is a token), stripping
// attachments and modifiers it contributed to others.
func (d *Duel) destroyPermanent(ci *CardInstance, reason string) {
	gs := d.State
	d.detachAllFrom(ci)
	d.collectTriggers(log.GameEvent{Type: log.EventPermanentLeavesBattlefield, Card: ci.Card.Name, Player: ci.Controller})
	gs.RemoveFromBattlefield(ci)
	for _, other := range gs.Battlefield {
		other.RemoveModifiersBySource(ci.ID)
	}
	d.log(log.NewDestroyEvent(gs.Turn, gs.Phase.String(), ci.Controller, ci.Card.Name, reason))

	if ci.IsToken {
		return
	}
	ci.ID = gs.NextID()
	gs.Players[ci.Owner].SendToGraveyard(ci)
	d.collectTriggers(log.GameEvent{Type: log.EventDestroy, Card: ci.Card.Name, Player: ci.Owner})
}

// exilePermanent moves a permanent from the battlefield to exile instead of
// the graveyard, stripping attachments and modifiers it contributed to
// others. Tokens cease to exist rather than entering exile.
func (d *Duel) exilePermanent(ci *CardInstance, reason string) {
	gs := d.State
	d.detachAllFrom(ci)
	d.collectTriggers(log.GameEvent{Type: log.EventPermanentLeavesBattlefield, Card: ci.Card.Name, Player: ci.Controller})
	gs.RemoveFromBattlefield(ci)
	for _, other := range gs.Battlefield {
		other.RemoveModifiersBySource(ci.ID)
	}
	d.log(log.NewExileEvent(gs.Turn, gs.Phase.String(), ci.Controller, ci.Card.Name, reason))

	if ci.IsToken {
		return
	}
	ci.ID = gs.NextID()
	ci.Zone = ZoneExile
	ci.Controller = ci.Owner
	ci.AttachedTo = nil
	gs.Exile = append(gs.Exile, ci)
}
