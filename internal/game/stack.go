package game

import (
	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// StackItem is a single spell or ability waiting to resolve. The stack is
// a plain LIFO list; unlike a chain of responses, MTG resolves one item
// at a time and reopens a priority window after each resolution.
type StackItem struct {
	Source     *CardInstance // the spell's CardInstance, or the ability's source permanent
	Effect     *CardEffect
	Controller int
	Targets    []*CardInstance
	XValue     int
	IsSpell    bool // false for activated/triggered abilities (Source stays on battlefield)

	// Flashback marks a spell cast from the graveyard: it is exiled on
	// resolution instead of returning to the graveyard.
	Flashback bool
}

// pushStack appends a new item to the top of the stack and logs it.
func (d *Duel) pushStack(item *StackItem) {
	gs := d.State
	gs.Stack = append(gs.Stack, item)
	d.log(log.NewChainLinkEvent(gs.Turn, gs.Phase.String(), item.Controller, item.Source.Card.Name, len(gs.Stack)))
}

// resolveTopOfStack resolves and removes the top stack item. Targets are
// rechecked; if all have become illegal the item is countered: removed
// from the stack with no effect, costs already spent remain spent.
func (d *Duel) resolveTopOfStack() error {
	gs := d.State
	if len(gs.Stack) == 0 {
		return nil
	}
	item := gs.Stack[len(gs.Stack)-1]
	gs.RemoveFromStack(item)

	d.log(log.NewChainResolveEvent(gs.Turn, gs.Phase.String(), item.Controller, item.Source.Card.Name, len(gs.Stack)+1))

	if !d.anyTargetLegal(item) {
		d.counterStackItem(item)
		return nil
	}

	if item.IsSpell {
		if item.Source.Card.CardType.IsPermanent() {
			if err := d.resolvePermanentSpell(item); err != nil {
				return err
			}
		} else if err := d.resolveNonPermanentSpell(item); err != nil {
			return err
		}
	} else {
		if item.Effect.Resolve != nil {
			if err := item.Effect.Resolve(d, item.Source, item.Controller, item.Targets); err != nil {
				return err
			}
		}
	}

	d.recomputeDerivedBattlefield()
	d.runStateBasedActions()
	d.collectTriggers(log.GameEvent{Type: log.EventResolveStackItem, Card: item.Source.Card.Name, Player: item.Controller})
	return nil
}

// anyTargetLegal reports whether at least one locked target is still
// legal. An empty target list (untargeted effect) is always legal.
func (d *Duel) anyTargetLegal(item *StackItem) bool {
	if len(item.Targets) == 0 {
		return true
	}
	for _, t := range item.Targets {
		if d.isTargetStillLegal(item, t) {
			return true
		}
	}
	return false
}

func (d *Duel) isTargetStillLegal(item *StackItem, t *CardInstance) bool {
	if t.Zone != ZoneBattlefield {
		return false
	}
	if t.CurrentKeywords().Has(KeywordHexproof) && t.Controller != item.Controller {
		return false
	}
	return true
}

// counterStackItem records a spell/ability as countered. It only logs:
// the caller removes the item from the stack, its effect never applies,
// a permanent spell never enters the battlefield, and costs paid remain
// paid. The countered card is not moved to a graveyard.
func (d *Duel) counterStackItem(item *StackItem) {
	gs := d.State
	d.log(log.NewDestroyEvent(gs.Turn, gs.Phase.String(), item.Controller, item.Source.Card.Name, "countered: no legal targets"))
}

// resolvePermanentSpell puts a resolved creature/artifact/enchantment/
// land-like spell onto the battlefield.
func (d *Duel) resolvePermanentSpell(item *StackItem) error {
	gs := d.State
	perm := item.Source
	perm.Zone = ZoneBattlefield
	perm.Controller = item.Controller
	perm.EnteredThisTurn = true
	perm.SummoningSick = true
	gs.Battlefield = append(gs.Battlefield, perm)

	if perm.Card.HasSubtype(SubtypeAura) || perm.Card.HasSubtype(SubtypeEquipment) {
		if len(item.Targets) == 1 && d.isTargetStillLegal(item, item.Targets[0]) {
			d.attachPermanent(perm, item.Targets[0])
		} else if perm.Card.HasSubtype(SubtypeAura) {
			gs.RemoveFromBattlefield(perm)
			gs.Players[perm.Owner].SendToGraveyard(perm)
			return nil
		}
	}

	d.log(log.NewPermanentEntersBattlefieldEvent(gs.Turn, gs.Phase.String(), item.Controller, perm.Card.Name))
	d.collectTriggers(log.GameEvent{Type: log.EventPermanentEntersBattlefield, Card: perm.Card.Name, Player: item.Controller})

	if item.Effect != nil && item.Effect.Resolve != nil {
		return item.Effect.Resolve(d, perm, item.Controller, item.Targets)
	}
	return nil
}

// resolveNonPermanentSpell resolves an instant/sorcery: apply its effect,
// then move the spell to its owner's graveyard.
func (d *Duel) resolveNonPermanentSpell(item *StackItem) error {
	gs := d.State
	spell := item.Source
	var err error
	if item.Effect != nil && item.Effect.Resolve != nil {
		err = item.Effect.Resolve(d, spell, item.Controller, item.Targets)
	}
	if item.Flashback {
		spell.Zone = ZoneExile
		gs.Exile = append(gs.Exile, spell)
	} else {
		spell.Zone = ZoneGraveyard
		gs.Players[spell.Owner].Graveyard = append(gs.Players[spell.Owner].Graveyard, spell)
	}
	return err
}
