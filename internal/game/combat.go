package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// canAttack reports whether a permanent may legally be declared as an
// attacker: a creature on the battlefield, untapped, not summoning sick
// unless it has haste, and not a defender. Goad is not checked here.
func (d *Duel) canAttack(ci *CardInstance) bool {
	if ci.Card.CardType != CardTypeCreature || ci.Zone != ZoneBattlefield {
		return false
	}
	if ci.Tapped {
		return false
	}
	kw := ci.CurrentKeywords()
	if ci.SummoningSick && !kw.Has(KeywordHaste) {
		return false
	}
	if kw.Has(KeywordDefender) {
		return false
	}
	return true
}

// executeDeclareAttackers validates and applies an atomic attacker
// declaration: either every requested attacker is legal, or none of them
// are declared.
func (d *Duel) executeDeclareAttackers(actor int, attackerIDs []int) error {
	gs := d.State
	if actor != gs.ActivePlayer {
		return errNotYourPriority("only the active player declares attackers")
	}
	defender := gs.DefendingPlayer()

	var attackers []*CardInstance
	for _, id := range attackerIDs {
		ci := gs.FindOnBattlefield(id)
		if ci == nil || ci.Controller != actor {
			return errUnknownObject("attacker %d not found under your control", id)
		}
		if !d.canAttack(ci) {
			return errIllegalTiming("%s cannot attack", ci.Card.Name)
		}
		if len(ci.GoadedBy) > 0 {
			// Nothing is checked per goaded attacker; the rule that every
			// goaded, able creature attacks is enforced below.
		}
		attackers = append(attackers, ci)
	}

	// Every goaded, able-to-attack creature the active player controls
	// must be included.
	for _, ci := range gs.Battlefield {
		if ci.Controller != actor || len(ci.GoadedBy) == 0 {
			continue
		}
		if !d.canAttack(ci) {
			continue
		}
		found := false
		for _, a := range attackers {
			if a.ID == ci.ID {
				found = true
				break
			}
		}
		if !found {
			return errIllegalTiming("%s is goaded and must attack", ci.Card.Name)
		}
	}

	var names []string
	for _, ci := range attackers {
		ci.Attacking = true
		ci.AttackTarget = defender
		ci.BlockedBy = nil
		if !ci.CurrentKeywords().Has(KeywordVigilance) {
			ci.Tapped = true
		}
		names = append(names, ci.Card.Name)
	}
	d.log(log.NewDeclareAttackersEvent(gs.Turn, actor, fmt.Sprintf("%s attack with %s", playerLabel(actor), strings.Join(names, ", "))))

	for _, ci := range attackers {
		d.collectTriggers(log.GameEvent{Type: log.EventDeclareAttackers, Card: ci.Card.Name, Player: actor})
	}

	gs.Step = StepDeclareBlockers
	return nil
}

// canBlock reports whether a would-be blocker is eligible against a
// specific attacker: an untapped creature able to block given the
// attacker's evasion keywords. The caller checks that the blocker is
// controlled by the defending player.
func (d *Duel) canBlock(blocker, attacker *CardInstance) bool {
	if blocker.Card.CardType != CardTypeCreature || blocker.Zone != ZoneBattlefield {
		return false
	}
	if blocker.Tapped {
		return false
	}
	akw := attacker.CurrentKeywords()
	if akw.Has(KeywordFlying) {
		bkw := blocker.CurrentKeywords()
		if !bkw.Has(KeywordFlying) && !bkw.Has(KeywordReach) {
			return false
		}
	}
	return true
}

// executeDeclareBlockers validates and applies an atomic blocker
// assignment, then runs combat damage.
func (d *Duel) executeDeclareBlockers(actor int, assignment map[int][]int) error {
	gs := d.State
	if actor != gs.DefendingPlayer() {
		return errNotYourPriority("only the defending player declares blockers")
	}

	usedBlockers := map[int]bool{}
	parsed := map[int][]*CardInstance{}
	for attackerID, blockerIDs := range assignment {
		attacker := gs.FindOnBattlefield(attackerID)
		if attacker == nil || !attacker.Attacking {
			return errUnknownObject("attacker %d is not attacking", attackerID)
		}
		if attacker.CurrentKeywords().Has(KeywordMenace) && len(blockerIDs) != 0 && len(blockerIDs) < 2 {
			return errIllegalTiming("%s has menace and must be blocked by two or more creatures", attacker.Card.Name)
		}
		var blockers []*CardInstance
		for _, bid := range blockerIDs {
			blocker := gs.FindOnBattlefield(bid)
			if blocker == nil || blocker.Controller != actor {
				return errUnknownObject("blocker %d not found under your control", bid)
			}
			if usedBlockers[bid] {
				return errIllegalTiming("%s cannot block more than one attacker", blocker.Card.Name)
			}
			if !d.canBlock(blocker, attacker) {
				return errIllegalTiming("%s cannot block %s", blocker.Card.Name, attacker.Card.Name)
			}
			usedBlockers[bid] = true
			blockers = append(blockers, blocker)
		}
		parsed[attackerID] = blockers
	}

	for attackerID, blockers := range parsed {
		attacker := gs.FindOnBattlefield(attackerID)
		attacker.BlockedBy = blockers
		for _, b := range blockers {
			b.Blocking = append(b.Blocking, attacker)
		}
	}

	d.log(log.NewDeclareBlockersEvent(gs.Turn, actor, "blockers declared"))
	for attackerID := range parsed {
		attacker := gs.FindOnBattlefield(attackerID)
		d.collectTriggers(log.GameEvent{Type: log.EventDeclareBlockers, Card: attacker.Card.Name, Player: attacker.Controller})
	}

	d.resolveCombatDamage()
	gs.Step = StepDamage
	return nil
}

// attackingCreatures returns every permanent currently marked Attacking.
func (d *Duel) attackingCreatures() []*CardInstance {
	gs := d.State
	var out []*CardInstance
	for _, ci := range gs.Battlefield {
		if ci.Attacking {
			out = append(out, ci)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// resolveCombatDamage runs the two-substep damage model: a first-strike
// pass (only creatures with first/double strike deal damage) followed by
// a normal pass (everyone else, plus double-strikers again), with no
// priority window in between.
func (d *Duel) resolveCombatDamage() {
	gs := d.State
	attackers := d.attackingCreatures()

	anyFirstStrike := false
	for _, ci := range attackers {
		kw := ci.CurrentKeywords()
		if kw.Has(KeywordFirstStrike) || kw.Has(KeywordDoubleStrike) {
			anyFirstStrike = true
		}
		for _, b := range ci.BlockedBy {
			bkw := b.CurrentKeywords()
			if bkw.Has(KeywordFirstStrike) || bkw.Has(KeywordDoubleStrike) {
				anyFirstStrike = true
			}
		}
	}

	if anyFirstStrike {
		d.combatDamagePass(func(kw Keyword) bool {
			return kw.Has(KeywordFirstStrike) || kw.Has(KeywordDoubleStrike)
		})
		d.recomputeDerivedBattlefield()
		d.runStateBasedActions()
	}

	d.combatDamagePass(func(kw Keyword) bool {
		return !kw.Has(KeywordFirstStrike) || kw.Has(KeywordDoubleStrike)
	})
	d.recomputeDerivedBattlefield()
	d.runStateBasedActions()

	for _, ci := range gs.Battlefield {
		ci.Attacking = false
		ci.AttackTarget = 0
		ci.BlockedBy = nil
		ci.Blocking = nil
	}
}

// combatDamagePass deals damage for every attacker/blocker eligible under
// the given strike-step predicate.
func (d *Duel) combatDamagePass(eligible func(Keyword) bool) {
	gs := d.State
	for _, attacker := range d.attackingCreatures() {
		if attacker.Zone != ZoneBattlefield || attacker.DamageMarked >= attacker.CurrentToughness() {
			continue
		}
		if !eligible(attacker.CurrentKeywords()) {
			continue
		}
		d.assignAndDealAttackerDamage(attacker)
	}
	for _, ci := range gs.Battlefield {
		if ci.Card.CardType != CardTypeCreature || len(ci.Blocking) == 0 {
			continue
		}
		if !eligible(ci.CurrentKeywords()) {
			continue
		}
		for _, attacker := range ci.Blocking {
			if attacker.Zone != ZoneBattlefield || attacker.DamageMarked >= attacker.CurrentToughness() {
				continue
			}
			d.dealCombatDamage(ci, attacker, ci.CurrentPower())
		}
	}
}

// assignAndDealAttackerDamage assigns and deals one attacker's combat
// damage to its blockers (in declaration order, each brought to lethal
// before moving on) and, for unblocked attackers or trample overflow, to
// the defending player.
func (d *Duel) assignAndDealAttackerDamage(attacker *CardInstance) {
	gs := d.State
	remaining := attacker.CurrentPower()
	deathtouch := attacker.CurrentKeywords().Has(KeywordDeathtouch)
	trample := attacker.CurrentKeywords().Has(KeywordTrample)

	if len(attacker.BlockedBy) == 0 || attacker.AssignDamageAsUnblocked {
		if remaining > 0 {
			d.dealCombatDamageToPlayer(attacker, attacker.AttackTarget, remaining)
		}
		return
	}

	for _, blocker := range attacker.BlockedBy {
		if remaining <= 0 {
			break
		}
		if blocker.Zone != ZoneBattlefield {
			continue
		}
		lethal := blocker.CurrentToughness() - blocker.DamageMarked
		if deathtouch && lethal > 1 {
			lethal = 1
		}
		if lethal < 0 {
			lethal = 0
		}
		assign := remaining
		if !trample || blocker != attacker.BlockedBy[len(attacker.BlockedBy)-1] {
			if assign > lethal {
				assign = lethal
			}
		} else if assign > lethal {
			assign = lethal
		}
		d.dealCombatDamage(attacker, blocker, assign)
		remaining -= assign
	}

	if trample && remaining > 0 {
		d.dealCombatDamageToPlayer(attacker, attacker.AttackTarget, remaining)
	}
}

// dealCombatDamage marks damage on a permanent target, applying
// deathtouch and lifelink, unless combat damage is currently prevented.
func (d *Duel) dealCombatDamage(source, target *CardInstance, amount int) {
	if amount <= 0 {
		return
	}
	gs := d.State
	if gs.CombatDamagePrevented {
		d.log(log.NewCombatDamageEvent(gs.Turn, source.Controller,
			fmt.Sprintf("combat damage from %s to %s prevented", source.Card.Name, target.Card.Name)))
		return
	}
	target.DamageMarked += amount
	if source.CurrentKeywords().Has(KeywordDeathtouch) {
		target.MarkedForDeath = true
	}
	if source.CurrentKeywords().Has(KeywordLifelink) {
		d.gainLife(source.Controller, amount)
	}
	d.log(log.NewCombatDamageEvent(gs.Turn, source.Controller,
		fmt.Sprintf("%s deals %d combat damage to %s", source.Card.Name, amount, target.Card.Name)))
	d.collectTriggers(log.GameEvent{Type: log.EventCombatDamage, Card: source.Card.Name, Player: source.Controller})
}

// dealCombatDamageToPlayer deals combat damage to a defending player
// (unblocked attacker, or trample overflow), respecting
// prevent-combat-damage flags and lifelink.
func (d *Duel) dealCombatDamageToPlayer(source *CardInstance, playerID int, amount int) {
	if amount <= 0 {
		return
	}
	gs := d.State
	if gs.CombatDamagePrevented {
		d.log(log.NewCombatDamageEvent(gs.Turn, source.Controller,
			fmt.Sprintf("combat damage from %s to %s prevented", source.Card.Name, playerLabel(playerID))))
		return
	}
	if source.CurrentKeywords().Has(KeywordLifelink) {
		d.gainLife(source.Controller, amount)
	}
	d.loseLife(playerID, amount, fmt.Sprintf("combat damage from %s", source.Card.Name))
	d.log(log.NewCombatDamageEvent(gs.Turn, source.Controller,
		fmt.Sprintf("%s deals %d combat damage to %s", source.Card.Name, amount, playerLabel(playerID))))
	d.collectTriggers(log.GameEvent{Type: log.EventCombatDamageToPlayer, Card: source.Card.Name, Player: source.Controller})
}

func playerLabel(id int) string { return fmt.Sprintf("P%d", id+1) }
