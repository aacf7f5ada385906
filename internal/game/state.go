package game

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

const (
	StartingLife     = 20
	InitialHandSize  = 7
	DefaultHandSize  = 7 // cleanup discard-to-hand-size
)

// Player holds one player's life total, zones, and per-turn flags.
type Player struct {
	ID        int
	Life      int
	HasLost   bool
	LossReason string

	ManaPool Mana

	LandsPlayedThisTurn int

	Library   []*CardInstance
	Hand      []*CardInstance
	Graveyard []*CardInstance
}

func NewPlayer(id int) *Player {
	return &Player{ID: id, Life: StartingLife}
}

func (p *Player) DrawCard() *CardInstance {
	if len(p.Library) == 0 {
		return nil
	}
	top := p.Library[len(p.Library)-1]
	p.Library = p.Library[:len(p.Library)-1]
	top.Zone = ZoneHand
	top.Controller = p.ID
	p.Hand = append(p.Hand, top)
	return top
}

func (p *Player) RemoveFromHand(ci *CardInstance) {
	for i, c := range p.Hand {
		if c.ID == ci.ID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

func (p *Player) AddToHand(ci *CardInstance) {
	ci.Zone = ZoneHand
	ci.Controller = p.ID
	p.Hand = append(p.Hand, ci)
}

func (p *Player) SendToGraveyard(ci *CardInstance) {
	ci.Zone = ZoneGraveyard
	ci.Controller = ci.Owner
	ci.AttachedTo = nil
	p.Graveyard = append(p.Graveyard, ci)
}

// ShuffleDeck shuffles the library using the game's seeded RNG so replays
// from the action journal remain deterministic.
func (p *Player) ShuffleDeck(rng *rand.Rand) {
	rng.Shuffle(len(p.Library), func(i, j int) {
		p.Library[i], p.Library[j] = p.Library[j], p.Library[i]
	})
}

// PendingDecisionKind enumerates the shapes of choice the engine may ask
// a player to resolve mid-action.
type PendingDecisionKind int

const (
	DecisionChooseCards PendingDecisionKind = iota
	DecisionYesNo
	DecisionChooseMode
	DecisionChooseOrder
)

// PendingDecision is the engine-held slot for a suspended choice. While
// non-nil, the only legal action for Actor is RESOLVE_DECISION.
type PendingDecision struct {
	Kind    PendingDecisionKind
	Actor   int
	Prompt  string
	Options []TargetRef
	Min     int
	Max     int

	// Continuation identifies what resolution this decision belongs to,
	// so the effect can resume with the player's choice.
	Continuation *decisionContinuation
}

// decisionContinuation carries enough state for an in-progress effect
// resolution to resume after RESOLVE_DECISION, without modelling the
// effect as a coroutine.
type decisionContinuation struct {
	EffectSource *CardInstance
	Controller   int
	Step         int
	Targets      []*CardInstance
	Resume       func(d *Duel, choice []int) error
}

// ExtraTurn is a queued additional turn for a player.
type ExtraTurn struct {
	Player int
}

// GameState is the single shared mutable state the engine operates on.
type GameState struct {
	// GameID identifies this duel for the persisted journal; stamped once
	// at construction and never reused across replays.
	GameID string

	Turn   int
	Phase  Phase
	Step   Step

	ActivePlayer   int
	PriorityHolder int // -1 during untap/cleanup with no pending trigger round

	Players [2]*Player

	Battlefield []*CardInstance
	Stack       []*StackItem // SPELL/ABILITY stack items, top = last
	Exile       []*CardInstance

	Pending *PendingDecision

	ExtraTurns []ExtraTurn

	PendingTriggers []*PendingTrigger

	GameOver    bool
	Winner      int
	WinReason   string

	nextID int
	rng    *rand.Rand

	// FirstTurn marks the game's very first draw step, which is skipped
	// for the player on the play.
	FirstTurn bool

	// LandsPlayedThisTurn duplicated per-player lives on Player; this flag
	// tracks whether combat was skipped this turn (SKIP_COMBAT).
	CombatSkipped bool
	Main2Skipped  bool

	// CombatDamagePrevented is set by a resolved EffectPreventCombatDamage
	// effect and lasts until the next ResetTurnFlags; while set, no combat
	// damage is marked or dealt to players.
	CombatDamagePrevented bool
}

// PendingTrigger is a trigger matched by the collector, awaiting
// placement on the stack at the next priority window.
type PendingTrigger struct {
	Source     *CardInstance
	Controller int
	Effect     *CardEffect
	Event      log.GameEvent
}

func NewGameState(seed int64) *GameState {
	gs := &GameState{
		GameID:         uuid.NewString(),
		Players:        [2]*Player{NewPlayer(0), NewPlayer(1)},
		PriorityHolder: -1,
		rng:            rand.New(rand.NewSource(seed)),
		FirstTurn:      true,
	}
	return gs
}

func (gs *GameState) NextID() int {
	gs.nextID++
	return gs.nextID
}

func (gs *GameState) RNG() *rand.Rand {
	return gs.rng
}

func (gs *GameState) Opponent(player int) int {
	return 1 - player
}

func (gs *GameState) ActivePlayerState() *Player {
	return gs.Players[gs.ActivePlayer]
}

func (gs *GameState) DefendingPlayer() int {
	return gs.Opponent(gs.ActivePlayer)
}

// CreateCardInstance allocates a fresh instance for a card definition,
// owned and controlled by the given player, starting in the given zone.
func (gs *GameState) CreateCardInstance(card *Card, owner int, zone ZoneType) *CardInstance {
	return &CardInstance{
		ID:         gs.NextID(),
		Card:       card,
		Owner:      owner,
		Controller: owner,
		Zone:       zone,
		Counters:   map[string]int{},
	}
}

// FindOnBattlefield looks up a permanent by instance id.
func (gs *GameState) FindOnBattlefield(id int) *CardInstance {
	for _, ci := range gs.Battlefield {
		if ci.ID == id {
			return ci
		}
	}
	return nil
}

// FindInHand looks up a card in a player's hand by instance id.
func (gs *GameState) FindInHand(player int, id int) *CardInstance {
	for _, ci := range gs.Players[player].Hand {
		if ci.ID == id {
			return ci
		}
	}
	return nil
}

// FindInLibrary looks up a card in a player's library by instance id, used
// by search-library and scry effects that need to address cards that
// aren't on the battlefield.
func (gs *GameState) FindInLibrary(player int, id int) *CardInstance {
	for _, ci := range gs.Players[player].Library {
		if ci.ID == id {
			return ci
		}
	}
	return nil
}

// FindOnStack looks up a stack item by its source instance id.
func (gs *GameState) FindOnStack(id int) *StackItem {
	for _, si := range gs.Stack {
		if si.Source.ID == id {
			return si
		}
	}
	return nil
}

// RemoveFromBattlefield removes a permanent from the shared battlefield.
func (gs *GameState) RemoveFromBattlefield(ci *CardInstance) {
	for i, c := range gs.Battlefield {
		if c.ID == ci.ID {
			gs.Battlefield = append(gs.Battlefield[:i], gs.Battlefield[i+1:]...)
			return
		}
	}
}

// RemoveFromStack removes a stack item (on resolution or on counter).
func (gs *GameState) RemoveFromStack(si *StackItem) {
	for i, c := range gs.Stack {
		if c == si {
			gs.Stack = append(gs.Stack[:i], gs.Stack[i+1:]...)
			return
		}
	}
}

// ClearManaPools empties both players' mana pools. Called at the close of
// every step and phase; mana does not carry over between them.
func (gs *GameState) ClearManaPools() {
	gs.Players[0].ManaPool = Mana{}
	gs.Players[1].ManaPool = Mana{}
}

// ResetTurnFlags clears per-turn counters at the start of a new turn.
func (gs *GameState) ResetTurnFlags() {
	for _, p := range gs.Players {
		p.LandsPlayedThisTurn = 0
	}
	gs.CombatSkipped = false
	gs.Main2Skipped = false
	gs.CombatDamagePrevented = false
}

// CheckWinCondition reports whether either player has lost and, if so,
// marks the game over.
func (gs *GameState) CheckWinCondition() {
	if gs.GameOver {
		return
	}
	for _, p := range gs.Players {
		if p.HasLost {
			gs.GameOver = true
			gs.Winner = gs.Opponent(p.ID)
			gs.WinReason = p.LossReason
			return
		}
	}
}
