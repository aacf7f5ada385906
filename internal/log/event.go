package log

// EventType enumerates every kind of GameEvent the engine can emit. The
// trigger collector matches against these when scanning for fired
// triggered abilities.
type EventType int

const (
	EventPhaseChange EventType = iota
	EventNewTurn
	EventUpkeep
	EventDraw
	EventShuffle
	EventPlayLand
	EventTapForMana
	EventCastSpell
	EventActivateAbility
	EventChainLink
	EventChainResolve
	EventResolveStackItem
	EventCounterSpell
	EventPermanentEntersBattlefield
	EventPermanentLeavesBattlefield
	EventDestroy
	EventExile
	EventReturnToHand
	EventDiscard
	EventAddToHand
	EventGainLife
	EventLoseLife
	EventDamageDealt
	EventDealtDamage
	EventCombatDamage
	EventCombatDamageToPlayer
	EventDeclareAttackers
	EventDeclareBlockers
	EventAttackStopped
	EventBecomesTarget
	EventStateBasedActionApplied
	EventChangeControl
	EventAttach
	EventDetach
	EventCreateToken
	EventTriggerQueued
	EventHandSizeDiscard
	EventExtraTurnGranted
	EventPlayerLosesGame
	EventWin
	EventScoop
)

func (t EventType) String() string {
	switch t {
	case EventPhaseChange:
		return "PhaseChange"
	case EventNewTurn:
		return "NewTurn"
	case EventUpkeep:
		return "Upkeep"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventPlayLand:
		return "PlayLand"
	case EventTapForMana:
		return "TapForMana"
	case EventCastSpell:
		return "CastSpell"
	case EventActivateAbility:
		return "ActivateAbility"
	case EventChainLink:
		return "StackPush"
	case EventChainResolve:
		return "StackResolve"
	case EventResolveStackItem:
		return "ResolveStackItem"
	case EventCounterSpell:
		return "CounterSpell"
	case EventPermanentEntersBattlefield:
		return "PermanentEntersBattlefield"
	case EventPermanentLeavesBattlefield:
		return "PermanentLeavesBattlefield"
	case EventDestroy:
		return "Destroy"
	case EventExile:
		return "Exile"
	case EventReturnToHand:
		return "ReturnToHand"
	case EventDiscard:
		return "Discard"
	case EventAddToHand:
		return "AddToHand"
	case EventGainLife:
		return "GainLife"
	case EventLoseLife:
		return "LoseLife"
	case EventDamageDealt:
		return "DamageDealt"
	case EventDealtDamage:
		return "DealtDamage"
	case EventCombatDamage:
		return "CombatDamage"
	case EventCombatDamageToPlayer:
		return "CombatDamageToPlayer"
	case EventDeclareAttackers:
		return "DeclareAttackers"
	case EventDeclareBlockers:
		return "DeclareBlockers"
	case EventAttackStopped:
		return "AttackStopped"
	case EventBecomesTarget:
		return "BecomesTarget"
	case EventStateBasedActionApplied:
		return "StateBasedActionApplied"
	case EventChangeControl:
		return "ChangeControl"
	case EventAttach:
		return "Attach"
	case EventDetach:
		return "Detach"
	case EventCreateToken:
		return "CreateToken"
	case EventTriggerQueued:
		return "TriggerQueued"
	case EventHandSizeDiscard:
		return "HandSizeDiscard"
	case EventExtraTurnGranted:
		return "ExtraTurnGranted"
	case EventPlayerLosesGame:
		return "PlayerLosesGame"
	case EventWin:
		return "Win"
	case EventScoop:
		return "Scoop"
	default:
		return "Unknown"
	}
}

// GameEvent is a single journal entry. Seq is assigned by the logger on
// append; Turn/Phase/Player/Card/Details are supplied by the caller.
type GameEvent struct {
	Seq     int
	Turn    int
	Phase   string
	Player  int
	Type    EventType
	Card    string
	Details string
}
