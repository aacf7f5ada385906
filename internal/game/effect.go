package game

import "github.com/arcanum-dev/arcanum-engine/internal/log"

// EffectType tags the kind of effect a CardEffect implements. Behaviour
// lives in the CardEffect's closures: the engine only checks the
// ability-shape tags (triggered, activated, mana ability), and no load
// step validates the tags.
type EffectType int

const (
	EffectNone EffectType = iota

	// One-shot effects, resolved when a spell/ability leaves the stack.
	EffectDealDamage
	EffectDestroy
	EffectExile
	EffectReturnToZone
	EffectCounterSpell
	EffectCopySpell
	EffectDrawCards
	EffectDiscardCards
	EffectGainLife
	EffectLoseLife
	EffectAddMana
	EffectCreateToken
	EffectSearchLibrary
	EffectScry
	EffectReveal
	EffectPutOnBottom
	EffectGrantExtraTurn
	EffectGoad
	EffectAssignDamageAsUnblocked
	EffectPreventCombatDamage
	EffectAttach

	// Continuous effects, applied by the derived battlefield pass.
	EffectAddKeyword
	EffectRemoveKeyword
	EffectPTModify
	EffectAddSubtype
	EffectCostReduction
	EffectLord

	// Ability-shape tags (how the effect reaches the stack), orthogonal
	// to the one-shot/continuous kinds above.
	EffectTriggered
	EffectActivated
	EffectStatic
	EffectManaAbility
)

// AbilityTiming says when an activated ability may be put on the stack.
type AbilityTiming int

const (
	TimingInstantSpeed AbilityTiming = iota
	TimingSorcerySpeed
)

// CardEffect represents a single spell effect, triggered ability,
// activated ability, or static ability on a card.
type CardEffect struct {
	Name       string
	EffectType EffectType
	Timing     AbilityTiming

	// CanActivate checks whether an activated ability can currently be
	// activated (timing plus any additional condition).
	CanActivate func(d *Duel, card *CardInstance, player int) bool

	// Cost pays any additional costs beyond the printed mana cost
	// (tap, sacrifice, discard, pay-life). Returns false if cancelled.
	Cost func(d *Duel, card *CardInstance, player int) (bool, error)

	// Target selects and locks a triggered ability's targets when it is
	// put on the stack; casting and activation use TargetSpec instead.
	Target func(d *Duel, card *CardInstance, player int) ([]*CardInstance, error)

	// Resolve applies the effect when the stack item resolves. Targets
	// are re-checked by the caller before Resolve runs.
	Resolve func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error

	// TargetSpec describes target-group cardinality for schema
	// enumeration and validation; nil means no targets.
	TargetSpec *TargetSpec

	// Trigger fields.
	IsMandatory   bool
	TriggerKind   TriggerKind
	TriggerFilter func(d *Duel, card *CardInstance, event log.GameEvent) bool

	// StaticApply is called by the derived battlefield pass to apply a
	// continuous modifier. Stripped and reapplied on every recomputation.
	StaticApply func(d *Duel, card *CardInstance, player int)

	// ManaProduced is set for mana abilities, which resolve immediately
	// without using the stack.
	ManaProduced func(d *Duel, card *CardInstance) Mana
}

// TargetGroup describes one group of targets a card effect needs.
type TargetGroup struct {
	Min, Max int
	Selector func(d *Duel, controller int, candidate *CardInstance) bool
	// AllowPlayers, if true, lets this group target a player id instead
	// of a permanent. A player target is accepted without calling
	// Selector and is not passed to Resolve.
	AllowPlayers bool
}

// TargetSpec is the full target declaration for an effect, one group per
// slot in the Action's Targets field.
type TargetSpec struct {
	Groups []TargetGroup
}

// TriggerKind enumerates the supported trigger condition kinds.
type TriggerKind int

const (
	TriggerETB TriggerKind = iota
	TriggerDies
	TriggerAttacks
	TriggerAttacksOrBlocks
	TriggerEquippedCreatureAttacks
	TriggerCombatDamageToPlayer
	TriggerDealtDamage
	TriggerBecomesTarget
	TriggerUpkeep
	TriggerYouLoseLife
	TriggerCastSpell
	TriggerCreatureEnters
	TriggerOtherFriendlyDies
	TriggerOtherDiesDuringYourTurn
)
