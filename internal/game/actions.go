package game

import (
	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// legalActions enumerates every action a player may currently submit. A
// pending decision, if any, restricts the set to RESOLVE_DECISION alone.
func (d *Duel) legalActions(player int) []Action {
	gs := d.State

	if gs.Pending != nil {
		if gs.Pending.Actor != player {
			return nil
		}
		return []Action{{Type: ActionResolveDecision, Actor: player}}
	}

	actions := []Action{{Type: ActionPassPriority, Actor: player}}

	sorcerySpeed := player == gs.ActivePlayer &&
		(gs.Phase == PhaseMain1 || gs.Phase == PhaseMain2) &&
		gs.Step == StepNone && len(gs.Stack) == 0

	if sorcerySpeed {
		p := gs.Players[player]
		if p.LandsPlayedThisTurn < 1 {
			for _, ci := range p.Hand {
				if ci.Card.CardType == CardTypeLand {
					actions = append(actions, Action{Type: ActionPlayLand, Actor: player, Object: ci.ID})
				}
			}
		}
	}

	for _, ci := range gs.Battlefield {
		if ci.Controller != player || ci.Tapped {
			continue
		}
		if ci.Card.CardType == CardTypeLand && ci.Card.LandProduces.Total() > 0 {
			actions = append(actions, Action{Type: ActionTapForMana, Actor: player, Object: ci.ID})
		}
	}

	for _, ci := range gs.Players[player].Hand {
		if ci.Card.CardType == CardTypeLand {
			continue
		}
		if d.canCastNow(player, ci, sorcerySpeed) {
			actions = append(actions, Action{Type: ActionCastSpell, Actor: player, Object: ci.ID})
		}
	}
	for _, ci := range gs.Players[player].Graveyard {
		if ci.Card.FlashbackCost != nil && d.canCastNow(player, ci, sorcerySpeed) {
			actions = append(actions, Action{Type: ActionCastSpell, Actor: player, Object: ci.ID, XValue: -1})
		}
	}

	for _, ci := range gs.Battlefield {
		if ci.Controller != player {
			continue
		}
		for idx, eff := range ci.Card.Effects {
			if eff.EffectType != EffectActivated && eff.EffectType != EffectManaAbility {
				continue
			}
			if eff.Timing == TimingSorcerySpeed && !sorcerySpeed {
				continue
			}
			if eff.CanActivate != nil && !eff.CanActivate(d, ci, player) {
				continue
			}
			actions = append(actions, Action{Type: ActionActivateAbility, Actor: player, Object: ci.ID, AbilityIndex: idx})
		}
	}

	if player == gs.ActivePlayer && gs.Phase == PhaseMain1 && gs.Step == StepNone && len(gs.Stack) == 0 && !gs.CombatSkipped {
		actions = append(actions, Action{Type: ActionSkipCombat, Actor: player})
	}
	if player == gs.ActivePlayer && gs.Phase == PhaseCombat && gs.Step == StepDeclareAttackers && len(gs.Stack) == 0 {
		var attackers []int
		for _, ci := range gs.Battlefield {
			if ci.Controller == player && d.canAttack(ci) {
				attackers = append(attackers, ci.ID)
			}
		}
		if len(attackers) > 0 {
			actions = append(actions, Action{Type: ActionDeclareAttackers, Actor: player, Attackers: attackers})
		}
	}
	if player == gs.DefendingPlayer() && gs.Phase == PhaseCombat && gs.Step == StepDeclareBlockers && len(gs.Stack) == 0 {
		actions = append(actions, Action{Type: ActionDeclareBlockers, Actor: player})
	}
	if player == gs.ActivePlayer && gs.Phase == PhaseMain2 && gs.Step == StepNone && len(gs.Stack) == 0 && !gs.Main2Skipped {
		actions = append(actions, Action{Type: ActionSkipMain2, Actor: player})
	}

	actions = append(actions, Action{Type: ActionScoop, Actor: player})
	return actions
}

// canCastNow checks only the timing restriction (sorcery-speed cards need
// an empty stack on the caster's own main phase); mana and target legality
// are re-validated in executeAction.
func (d *Duel) canCastNow(player int, ci *CardInstance, sorcerySpeed bool) bool {
	gs := d.State
	instantSpeed := ci.Card.CardType == CardTypeInstant || ci.Card.Flash
	if instantSpeed {
		return true
	}
	return sorcerySpeed && player == gs.ActivePlayer && len(gs.Stack) == 0
}

// executeAction validates and applies a chosen action, mutating state only
// on success.
func (d *Duel) executeAction(actor int, action Action) error {
	gs := d.State

	if gs.GameOver {
		return errGameOver("the game has already ended")
	}

	if gs.Pending != nil {
		if action.Type != ActionResolveDecision {
			return errPendingDecisionPreempts("a decision is pending for P%d", gs.Pending.Actor+1)
		}
		return d.resolvePendingDecision(actor, action)
	}

	switch action.Type {
	case ActionPlayLand:
		return d.executePlayLand(actor, action)
	case ActionTapForMana:
		return d.executeTapForMana(actor, action)
	case ActionCastSpell:
		return d.executeCastSpell(actor, action)
	case ActionActivateAbility:
		return d.executeActivateAbility(actor, action)
	case ActionDeclareAttackers:
		return d.executeDeclareAttackers(actor, action.Attackers)
	case ActionDeclareBlockers:
		return d.executeDeclareBlockers(actor, action.BlockAssignment)
	case ActionSkipCombat:
		if actor != gs.ActivePlayer || gs.Phase != PhaseMain1 || gs.Step != StepNone || len(gs.Stack) != 0 {
			return errIllegalTiming("cannot skip combat right now")
		}
		gs.CombatSkipped = true
		return nil
	case ActionSkipMain2:
		if actor != gs.ActivePlayer || gs.Phase != PhaseMain2 || gs.Step != StepNone || len(gs.Stack) != 0 {
			return errIllegalTiming("cannot skip second main phase right now")
		}
		gs.Main2Skipped = true
		return nil
	case ActionScoop:
		p := gs.Players[actor]
		p.HasLost = true
		p.LossReason = "conceded"
		d.log(log.NewScoopEvent(gs.Turn, gs.Phase.String(), actor))
		gs.CheckWinCondition()
		return nil
	default:
		return errIllegalTiming("unrecognized action")
	}
}

func (d *Duel) executePlayLand(actor int, action Action) error {
	gs := d.State
	if actor != gs.ActivePlayer || (gs.Phase != PhaseMain1 && gs.Phase != PhaseMain2) || gs.Step != StepNone || len(gs.Stack) != 0 {
		return errIllegalTiming("lands may only be played during your main phase with an empty stack")
	}
	p := gs.Players[actor]
	if p.LandsPlayedThisTurn >= 1 {
		return errIllegalTiming("you have already played a land this turn")
	}
	ci := gs.FindInHand(actor, action.Object)
	if ci == nil || ci.Card.CardType != CardTypeLand {
		return errUnknownObject("no land %d in hand", action.Object)
	}
	p.RemoveFromHand(ci)
	ci.Zone = ZoneBattlefield
	ci.Controller = actor
	ci.EnteredThisTurn = true
	gs.Battlefield = append(gs.Battlefield, ci)
	p.LandsPlayedThisTurn++
	d.log(log.NewPlayLandEvent(gs.Turn, gs.Phase.String(), actor, ci.Card.Name))
	d.collectTriggers(log.GameEvent{Type: log.EventPlayLand, Card: ci.Card.Name, Player: actor})
	d.recomputeDerivedBattlefield()
	d.runStateBasedActions()
	return nil
}

func (d *Duel) executeTapForMana(actor int, action Action) error {
	gs := d.State
	ci := gs.FindOnBattlefield(action.Object)
	if ci == nil || ci.Controller != actor {
		return errUnknownObject("no permanent %d under your control", action.Object)
	}
	if ci.Tapped {
		return errIllegalTiming("%s is already tapped", ci.Card.Name)
	}
	if ci.Card.LandProduces.Total() == 0 {
		return errIllegalTiming("%s does not produce mana", ci.Card.Name)
	}
	ci.Tapped = true
	gs.Players[actor].ManaPool.Add(ci.Card.LandProduces)
	d.log(log.NewTapForManaEvent(gs.Turn, gs.Phase.String(), actor, ci.Card.Name, manaString(ci.Card.LandProduces)))
	d.collectTriggers(log.GameEvent{Type: log.EventTapForMana, Card: ci.Card.Name, Player: actor})
	return nil
}

// executeCastSpell casts a card from hand (or, when action.XValue == -1
// signals flashback, from the graveyard): pays the mana cost, validates
// and locks targets, then puts the spell on the stack.
func (d *Duel) executeCastSpell(actor int, action Action) error {
	gs := d.State
	p := gs.Players[actor]

	flashback := action.XValue == -1
	var ci *CardInstance
	if flashback {
		for _, c := range p.Graveyard {
			if c.ID == action.Object {
				ci = c
				break
			}
		}
		if ci == nil || ci.Card.FlashbackCost == nil {
			return errUnknownObject("no flashback-eligible card %d in graveyard", action.Object)
		}
	} else {
		ci = gs.FindInHand(actor, action.Object)
		if ci == nil {
			return errUnknownObject("no card %d in hand", action.Object)
		}
	}

	sorcerySpeed := actor == gs.ActivePlayer && (gs.Phase == PhaseMain1 || gs.Phase == PhaseMain2) &&
		gs.Step == StepNone && len(gs.Stack) == 0
	if !d.canCastNow(actor, ci, sorcerySpeed) {
		return errIllegalTiming("%s cannot be cast right now", ci.Card.Name)
	}

	x := 0
	if action.XValue > 0 {
		x = action.XValue
	}
	cost := ci.Card.Cost
	if flashback {
		cost = *ci.Card.FlashbackCost
	}
	totalCost := manaCostWithX(cost, x)
	if !canPayManaCost(p.ManaPool, totalCost) {
		return errCannotPayCost("cannot pay %s's mana cost", ci.Card.Name)
	}

	targets, err := d.validateTargets(ci.Card.TargetSpec, actor, action.Targets)
	if err != nil {
		return err
	}

	payManaCost(&p.ManaPool, totalCost)
	ci.XValue = x

	if flashback {
		p.Graveyard = removeInstance(p.Graveyard, ci)
	} else {
		p.RemoveFromHand(ci)
	}
	ci.Zone = ZoneStack
	ci.Controller = actor

	d.log(log.NewCastSpellEvent(gs.Turn, gs.Phase.String(), actor, ci.Card.Name))
	d.collectTriggers(log.GameEvent{Type: log.EventCastSpell, Card: ci.Card.Name, Player: actor})
	d.announceTargets(ci, targets)

	d.pushStack(&StackItem{
		Source: ci, Effect: ci.Card.SpellEffect, Controller: actor,
		Targets: targets, XValue: x, IsSpell: true, Flashback: flashback,
	})
	return nil
}

func (d *Duel) executeActivateAbility(actor int, action Action) error {
	gs := d.State
	ci := gs.FindOnBattlefield(action.Object)
	if ci == nil || ci.Controller != actor {
		return errUnknownObject("no permanent %d under your control", action.Object)
	}
	if action.AbilityIndex < 0 || action.AbilityIndex >= len(ci.Card.Effects) {
		return errUnknownObject("no ability %d on %s", action.AbilityIndex, ci.Card.Name)
	}
	eff := ci.Card.Effects[action.AbilityIndex]
	if eff.EffectType != EffectActivated && eff.EffectType != EffectManaAbility {
		return errIllegalTiming("that is not an activated ability")
	}
	if eff.Timing == TimingSorcerySpeed {
		sorcerySpeed := actor == gs.ActivePlayer && (gs.Phase == PhaseMain1 || gs.Phase == PhaseMain2) &&
			gs.Step == StepNone && len(gs.Stack) == 0
		if !sorcerySpeed {
			return errIllegalTiming("%s can only be activated at sorcery speed", eff.Name)
		}
	}
	if eff.CanActivate != nil && !eff.CanActivate(d, ci, actor) {
		return errIllegalTiming("%s cannot be activated right now", eff.Name)
	}

	targets, err := d.validateTargets(eff.TargetSpec, actor, action.Targets)
	if err != nil {
		return err
	}

	if eff.Cost != nil {
		ok, err := eff.Cost(d, ci, actor)
		if err != nil {
			return err
		}
		if !ok {
			return errCannotPayCost("could not pay the cost of %s", eff.Name)
		}
	}

	d.log(log.NewActivateAbilityEvent(gs.Turn, gs.Phase.String(), actor, ci.Card.Name))
	d.collectTriggers(log.GameEvent{Type: log.EventActivateAbility, Card: ci.Card.Name, Player: actor})
	d.announceTargets(ci, targets)

	if eff.ManaProduced != nil {
		gs.Players[actor].ManaPool.Add(eff.ManaProduced(d, ci))
		return nil
	}

	d.pushStack(&StackItem{Source: ci, Effect: eff, Controller: actor, Targets: targets, IsSpell: false})
	return nil
}

// resolvePendingDecision applies a player's answer to a suspended choice
// and resumes the effect that raised it.
func (d *Duel) resolvePendingDecision(actor int, action Action) error {
	gs := d.State
	pd := gs.Pending
	if pd == nil || pd.Actor != actor {
		return errPendingDecisionPreempts("no decision pending for you")
	}
	if len(action.Choice) < pd.Min || len(action.Choice) > pd.Max {
		return errInvalidTarget("choice must select between %d and %d options", pd.Min, pd.Max)
	}
	gs.Pending = nil
	if pd.Continuation != nil && pd.Continuation.Resume != nil {
		return pd.Continuation.Resume(d, action.Choice)
	}
	return nil
}

func removeInstance(list []*CardInstance, ci *CardInstance) []*CardInstance {
	for i, c := range list {
		if c.ID == ci.ID {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func manaString(m Mana) string {
	s := ""
	add := func(n int, sym string) {
		for i := 0; i < n; i++ {
			s += sym
		}
	}
	add(m.W, "W")
	add(m.U, "U")
	add(m.B, "B")
	add(m.R, "R")
	add(m.G, "G")
	add(m.C, "C")
	if s == "" {
		return "nothing"
	}
	return s
}
