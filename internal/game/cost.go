package game

import "github.com/arcanum-dev/arcanum-engine/internal/log"

// manaCostWithX returns the total mana cost for a spell/ability given the
// X value chosen at cast time (added to the printed generic cost).
func manaCostWithX(cost ManaCost, x int) ManaCost {
	out := cost
	if cost.X {
		out.Generic += x
	}
	return out
}

// canPayManaCost reports whether a player's mana pool can cover cost
// without mutating the pool.
func canPayManaCost(pool Mana, cost ManaCost) bool {
	w, u, b, r, g := pool.W, pool.U, pool.B, pool.R, pool.G
	if w < cost.W || u < cost.U || b < cost.B || r < cost.R || g < cost.G {
		return false
	}
	leftover := (w - cost.W) + (u - cost.U) + (b - cost.B) + (r - cost.R) + (g - cost.G) + pool.C
	return leftover >= cost.Generic
}

// payManaCost deducts cost from the player's mana pool, using leftover
// colored mana (after colored pips are paid) and colorless to cover the
// generic/X amount, colorless first.
func payManaCost(pool *Mana, cost ManaCost) {
	pool.W -= cost.W
	pool.U -= cost.U
	pool.B -= cost.B
	pool.R -= cost.R
	pool.G -= cost.G

	generic := cost.Generic
	take := func(avail *int) {
		if generic == 0 || *avail == 0 {
			return
		}
		n := *avail
		if n > generic {
			n = generic
		}
		*avail -= n
		generic -= n
	}
	take(&pool.C)
	take(&pool.W)
	take(&pool.U)
	take(&pool.B)
	take(&pool.R)
	take(&pool.G)

	if generic > 0 || pool.W < 0 || pool.U < 0 || pool.B < 0 || pool.R < 0 || pool.G < 0 || pool.C < 0 {
		panicInvariant("mana pool went negative paying a cost already validated by canPayManaCost")
	}
}

// validateTargets checks a chosen targets payload against a TargetSpec:
// group count must match, each group's cardinality and selector must be
// satisfied, and multi-target groups must be distinct instances.
func (d *Duel) validateTargets(spec *TargetSpec, controller int, chosen [][]TargetRef) ([]*CardInstance, error) {
	if spec == nil || len(spec.Groups) == 0 {
		if len(chosen) != 0 {
			return nil, errInvalidTarget("this spell/ability does not take targets")
		}
		return nil, nil
	}
	if len(chosen) != len(spec.Groups) {
		return nil, errInvalidTarget("expected %d target group(s), got %d", len(spec.Groups), len(chosen))
	}

	var all []*CardInstance
	seen := map[int]bool{}
	for gi, group := range spec.Groups {
		refs := chosen[gi]
		if len(refs) < group.Min || len(refs) > group.Max {
			return nil, errInvalidTarget("target group %d needs %d-%d targets, got %d", gi, group.Min, group.Max, len(refs))
		}
		for _, ref := range refs {
			if ref.IsPlayer {
				if !group.AllowPlayers {
					return nil, errInvalidTarget("target group %d does not allow player targets", gi)
				}
				continue
			}
			if seen[ref.InstanceID] {
				return nil, errInvalidTarget("target %d chosen more than once", ref.InstanceID)
			}
			ci := d.State.FindOnBattlefield(ref.InstanceID)
			if ci == nil {
				return nil, errUnknownObject("target instance %d not on the battlefield", ref.InstanceID)
			}
			if group.Selector != nil && !group.Selector(d, controller, ci) {
				return nil, errInvalidTarget("%s is not a legal target", ci.Card.Name)
			}
			seen[ref.InstanceID] = true
			all = append(all, ci)
		}
	}
	return all, nil
}

// notHexproofForOpponents is a common selector building block: rejects a
// candidate if it has hexproof and is controlled by someone other than
// the caster.
func notHexproofForOpponents(controller int, ci *CardInstance) bool {
	if ci.Controller == controller {
		return true
	}
	return !ci.CurrentKeywords().Has(KeywordHexproof)
}

// announceTargets fires BECOMES_TARGET triggers for every chosen target.
func (d *Duel) announceTargets(source *CardInstance, targets []*CardInstance) {
	for _, t := range targets {
		d.collectTriggers(log.GameEvent{Type: log.EventBecomesTarget, Card: t.Card.Name, Player: t.Controller, Details: source.Card.Name})
	}
}
