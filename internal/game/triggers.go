package game

import (
	"sort"

	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// collectTriggers runs after every state mutation: it scans every
// triggered ability source and evaluates each trigger's condition
// predicate against the event that just occurred, appending matches to
// the pending-triggers list. Triggers do not go on the stack immediately
// — they wait until the next priority window opens (§4.8).
func (d *Duel) collectTriggers(event log.GameEvent) {
	gs := d.State
	if gs.GameOver {
		return
	}

	var matched []*PendingTrigger
	for _, source := range gs.Battlefield {
		for _, eff := range source.Card.Effects {
			if eff.EffectType != EffectTriggered {
				continue
			}
			if eff.TriggerFilter == nil || !eff.TriggerFilter(d, source, event) {
				continue
			}
			matched = append(matched, &PendingTrigger{
				Source:     source,
				Controller: source.Controller,
				Effect:     eff,
				Event:      event,
			})
		}
	}

	if len(matched) == 0 {
		return
	}

	active := gs.ActivePlayer
	sort.SliceStable(matched, func(i, j int) bool {
		ci, cj := matched[i].Controller, matched[j].Controller
		if ci != cj {
			return ci == active
		}
		return matched[i].Source.ID < matched[j].Source.ID
	})

	for _, pt := range matched {
		d.log(log.NewTriggerQueuedEvent(gs.Turn, gs.Phase.String(), pt.Controller, pt.Source.Card.Name))
	}
	gs.PendingTriggers = append(gs.PendingTriggers, matched...)
}

// placePendingTriggersOnStack moves every queued trigger onto the stack
// in collection order, immediately before a priority window opens. Each
// trigger locks its targets (if any) at this point, same as a cast spell
// would.
func (d *Duel) placePendingTriggersOnStack() {
	gs := d.State
	if len(gs.PendingTriggers) == 0 {
		return
	}
	pending := gs.PendingTriggers
	gs.PendingTriggers = nil

	for _, pt := range pending {
		if gs.GameOver {
			return
		}
		var targets []*CardInstance
		if pt.Effect.Target != nil {
			chosen, err := pt.Effect.Target(d, pt.Source, pt.Controller)
			if err != nil {
				continue
			}
			targets = chosen
		}
		d.pushStack(&StackItem{
			Source:     pt.Source,
			Effect:     pt.Effect,
			Controller: pt.Controller,
			Targets:    targets,
			IsSpell:    false,
		})
	}
}
