package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events. MemoryLogger
// doubles as the append-only game journal: its full Events() slice is
// sufficient, together with the action sequence, to replay a game.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions and journaling ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	if phase == "" {
		phase = "          "
	}
	for len(phase) < 20 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewPhaseChangeEvent(turn int, phase string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Type: EventPhaseChange, Details: fmt.Sprintf("Phase → %s", phase)}
}

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: "Beginning Phase", Player: player, Type: EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewDrawEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventDraw, Card: cardName,
		Details: fmt.Sprintf("%s draws %s", playerName(player), cardName),
	}
}

func NewShuffleEvent(turn int, phase string, player int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventShuffle,
		Details: fmt.Sprintf("%s shuffles their library", playerName(player)),
	}
}

func NewPlayLandEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventPlayLand, Card: cardName,
		Details: fmt.Sprintf("%s plays %s", playerName(player), cardName),
	}
}

func NewTapForManaEvent(turn int, phase string, player int, cardName string, mana string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventTapForMana, Card: cardName,
		Details: fmt.Sprintf("%s taps %s for %s", playerName(player), cardName, mana),
	}
}

func NewCastSpellEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventCastSpell, Card: cardName,
		Details: fmt.Sprintf("%s casts %s", playerName(player), cardName),
	}
}

func NewActivateAbilityEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventActivateAbility, Card: cardName,
		Details: fmt.Sprintf("%s activates an ability of %s", playerName(player), cardName),
	}
}

func NewChainLinkEvent(turn int, phase string, player int, cardName string, index int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventChainLink, Card: cardName,
		Details: fmt.Sprintf("Stack (%d): %s puts %s on the stack", index, playerName(player), cardName),
	}
}

func NewChainResolveEvent(turn int, phase string, player int, cardName string, index int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventChainResolve, Card: cardName,
		Details: fmt.Sprintf("Stack (%d) resolves: %s", index, cardName),
	}
}

func NewPermanentEntersBattlefieldEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventPermanentEntersBattlefield, Card: cardName,
		Details: fmt.Sprintf("%s enters the battlefield under %s's control", cardName, playerName(player)),
	}
}

func NewDestroyEvent(turn int, phase string, player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventDestroy, Card: cardName,
		Details: fmt.Sprintf("%s is destroyed (%s)", cardName, reason),
	}
}

func NewExileEvent(turn int, phase string, player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventExile, Card: cardName,
		Details: fmt.Sprintf("%s is exiled (%s)", cardName, reason),
	}
}

func NewReturnToHandEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventReturnToHand, Card: cardName,
		Details: fmt.Sprintf("%s returns to %s's hand", cardName, playerName(player)),
	}
}

func NewDiscardEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventDiscard, Card: cardName,
		Details: fmt.Sprintf("%s discards %s", playerName(player), cardName),
	}
}

func NewAddToHandEvent(turn int, phase string, player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventAddToHand, Card: cardName,
		Details: fmt.Sprintf("%s is added to %s's hand (%s)", cardName, playerName(player), reason),
	}
}

func NewGainLifeEvent(turn int, phase string, player int, amount int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventGainLife,
		Details: fmt.Sprintf("%s gains %d life", playerName(player), amount),
	}
}

func NewLoseLifeEvent(turn int, phase string, player int, amount int, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventLoseLife,
		Details: fmt.Sprintf("%s loses %d life (%s)", playerName(player), amount, reason),
	}
}

func NewDamageDealtEvent(turn int, phase string, player int, amount int, source string, target string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventDamageDealt, Card: source,
		Details: fmt.Sprintf("%s deals %d damage to %s", source, amount, target),
	}
}

func NewCombatDamageEvent(turn int, player int, details string) GameEvent {
	return GameEvent{Turn: turn, Phase: "Combat Phase", Player: player, Type: EventCombatDamage, Details: details}
}

func NewDeclareAttackersEvent(turn int, player int, details string) GameEvent {
	return GameEvent{Turn: turn, Phase: "Combat Phase", Player: player, Type: EventDeclareAttackers, Details: details}
}

func NewDeclareBlockersEvent(turn int, player int, details string) GameEvent {
	return GameEvent{Turn: turn, Phase: "Combat Phase", Player: player, Type: EventDeclareBlockers, Details: details}
}

func NewAttackStoppedEvent(turn int, player int, attackerName string, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: "Combat Phase", Player: player, Type: EventAttackStopped, Card: attackerName,
		Details: fmt.Sprintf("%s is removed from combat (%s)", attackerName, reason),
	}
}

func NewStateBasedActionEvent(turn int, phase string, player int, details string) GameEvent {
	return GameEvent{Turn: turn, Phase: phase, Player: player, Type: EventStateBasedActionApplied, Details: details}
}

func NewChangeControlEvent(turn int, phase string, player int, cardName string, newController int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventChangeControl, Card: cardName,
		Details: fmt.Sprintf("control of %s changes to %s", cardName, playerName(newController)),
	}
}

func NewAttachEvent(turn int, phase string, player int, cardName string, hostName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventAttach, Card: cardName,
		Details: fmt.Sprintf("%s attaches to %s", cardName, hostName),
	}
}

func NewDetachEvent(turn int, phase string, player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventDetach, Card: cardName,
		Details: fmt.Sprintf("%s detaches (%s)", cardName, reason),
	}
}

func NewCreateTokenEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventCreateToken, Card: cardName,
		Details: fmt.Sprintf("%s creates a %s token", playerName(player), cardName),
	}
}

func NewTriggerQueuedEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventTriggerQueued, Card: cardName,
		Details: fmt.Sprintf("%s's ability triggers", cardName),
	}
}

func NewHandSizeDiscardEvent(turn int, phase string, player int, cardName string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventHandSizeDiscard, Card: cardName,
		Details: fmt.Sprintf("%s discards %s to hand size", playerName(player), cardName),
	}
}

func NewExtraTurnGrantedEvent(turn int, phase string, player int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventExtraTurnGranted,
		Details: fmt.Sprintf("%s takes an additional turn", playerName(player)),
	}
}

func NewPlayerLosesGameEvent(turn int, phase string, player int, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventPlayerLosesGame,
		Details: fmt.Sprintf("%s loses the game (%s)", playerName(player), reason),
	}
}

func NewWinEvent(turn int, phase string, winner int, reason string) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: winner, Type: EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", playerName(winner), reason),
	}
}

func NewScoopEvent(turn int, phase string, player int) GameEvent {
	return GameEvent{
		Turn: turn, Phase: phase, Player: player, Type: EventScoop,
		Details: fmt.Sprintf("%s concedes the game", playerName(player)),
	}
}
