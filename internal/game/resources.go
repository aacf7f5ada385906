package game

import "github.com/arcanum-dev/arcanum-engine/internal/log"

// gainLife increases a player's life total and logs it.
func (d *Duel) gainLife(player int, amount int) {
	if amount <= 0 {
		return
	}
	gs := d.State
	gs.Players[player].Life += amount
	d.log(log.NewGainLifeEvent(gs.Turn, gs.Phase.String(), player, amount))
	d.collectTriggers(log.GameEvent{Type: log.EventGainLife, Player: player})
}

// loseLife decreases a player's life total (may go negative pre-SBA) and
// logs the reason. Also fires YOU_LOSE_LIFE triggers.
func (d *Duel) loseLife(player int, amount int, reason string) {
	if amount <= 0 {
		return
	}
	gs := d.State
	gs.Players[player].Life -= amount
	d.log(log.NewLoseLifeEvent(gs.Turn, gs.Phase.String(), player, amount, reason))
	d.collectTriggers(log.GameEvent{Type: log.EventLoseLife, Player: player, Details: reason})
}

// dealDamageToPlayer applies noncombat damage from a spell/ability.
func (d *Duel) dealDamageToPlayer(source *CardInstance, player int, amount int) {
	if amount <= 0 {
		return
	}
	gs := d.State
	d.loseLife(player, amount, "damage from "+source.Card.Name)
	d.log(log.NewDamageDealtEvent(gs.Turn, gs.Phase.String(), source.Controller, amount, source.Card.Name, playerLabel(player)))
	d.collectTriggers(log.GameEvent{Type: log.EventDamageDealt, Card: source.Card.Name, Player: source.Controller})
}

// dealDamageToPermanent applies noncombat damage from a spell/ability,
// marking deathtouch where applicable. SBAs check lethal damage
// separately; this just marks the damage and lets the next SBA pass
// apply destruction.
func (d *Duel) dealDamageToPermanent(source *CardInstance, target *CardInstance, amount int, deathtouch bool) {
	if amount <= 0 {
		return
	}
	gs := d.State
	target.DamageMarked += amount
	if deathtouch {
		target.MarkedForDeath = true
	}
	d.log(log.NewDamageDealtEvent(gs.Turn, gs.Phase.String(), source.Controller, amount, source.Card.Name, target.Card.Name))
	d.collectTriggers(log.GameEvent{Type: log.EventDamageDealt, Card: source.Card.Name, Player: source.Controller})
	d.collectTriggers(log.GameEvent{Type: log.EventDealtDamage, Card: target.Card.Name, Player: target.Controller})
}

// drawCardOrLose draws a card for player; if their library is empty, the
// attempt to draw from an empty library is itself the state-based loss
// condition.
func (d *Duel) drawCardOrLose(player int) {
	gs := d.State
	p := gs.Players[player]
	if len(p.Library) == 0 {
		if !p.HasLost {
			p.HasLost = true
			p.LossReason = "attempted to draw from an empty library"
			d.log(log.NewPlayerLosesGameEvent(gs.Turn, gs.Phase.String(), player, p.LossReason))
			gs.CheckWinCondition()
		}
		return
	}
	card := p.DrawCard()
	d.log(log.NewDrawEvent(gs.Turn, gs.Phase.String(), player, card.Card.Name))
	d.collectTriggers(log.GameEvent{Type: log.EventDraw, Card: card.Card.Name, Player: player})
}
