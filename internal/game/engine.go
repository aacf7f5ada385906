package game

import (
	"context"

	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// PlayerController is the interface that both human (WebSocket) and AI (MCP) players implement.
type PlayerController interface {
	// ChooseAction presents available actions and waits for the player to pick one.
	ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error)

	// ChooseCards asks the player to select cards from a list (e.g., sacrifice targets).
	ChooseCards(ctx context.Context, state *GameState, prompt string, candidates []*CardInstance, min, max int) ([]*CardInstance, error)

	// ChooseYesNo asks the player a yes/no question (e.g., "activate optional effect?").
	ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// DuelConfig holds configuration for creating a new duel.
type DuelConfig struct {
	Deck0     []*Card // Player 0's deck (card definitions)
	Deck1     []*Card // Player 1's deck (card definitions)
	Logger    log.EventLogger
	Seed      int64 // RNG seed (0 for random)
	NoShuffle bool  // skip deck shuffle (for deterministic tests)
	MaxTurns  int   // stop after this many turns (0 = no limit)
	OnPlay    int   // which player takes the first turn (0 or 1)
}

// Duel orchestrates an entire duel between two players.
type Duel struct {
	State       *GameState
	Controllers [2]PlayerController
	Logger      log.EventLogger
	ctx         context.Context
	noShuffle   bool
	maxTurns    int
}

// NewDuel creates a new duel from the given config and player controllers.
// Each deck's CardInstances are allocated directly into their owner's
// library (bottom-to-top in list order) and shuffled unless NoShuffle is
// set, then both players draw their opening hand.
func NewDuel(cfg DuelConfig, p0, p1 PlayerController) *Duel {
	gs := NewGameState(cfg.Seed)

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	for _, card := range cfg.Deck0 {
		ci := gs.CreateCardInstance(card, 0, ZoneLibrary)
		gs.Players[0].Library = append(gs.Players[0].Library, ci)
	}
	for _, card := range cfg.Deck1 {
		ci := gs.CreateCardInstance(card, 1, ZoneLibrary)
		gs.Players[1].Library = append(gs.Players[1].Library, ci)
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 200 // safety limit against a runaway/degenerate simulation
	}

	d := &Duel{
		State:       gs,
		Controllers: [2]PlayerController{p0, p1},
		Logger:      logger,
		ctx:         context.Background(),
		noShuffle:   cfg.NoShuffle,
		maxTurns:    maxTurns,
	}

	if !cfg.NoShuffle {
		gs.Players[0].ShuffleDeck(gs.RNG())
		gs.Players[1].ShuffleDeck(gs.RNG())
	}

	gs.ActivePlayer = cfg.OnPlay
	for _, p := range gs.Players {
		for i := 0; i < InitialHandSize; i++ {
			p.DrawCard()
		}
	}

	return d
}

// Run executes the entire duel loop until a player loses, a turn limit is
// reached (declared a draw), or the context is cancelled. Returns the
// winning player (0 or 1), or -1 for a draw/cancellation.
func (d *Duel) Run() (int, error) {
	gs := d.State
	for i := 0; i < d.maxTurns; i++ {
		if gs.GameOver {
			return gs.Winner, nil
		}
		if err := d.runTurn(); err != nil {
			return -1, err
		}
		if gs.GameOver {
			return gs.Winner, nil
		}
	}
	return -1, nil
}

// runTurn executes one full turn: untap, upkeep, draw, main1, combat,
// main2, end, cleanup — with a priority window after every step that
// grants one (every step except untap and cleanup).
func (d *Duel) runTurn() error {
	gs := d.State

	if gs.Turn > 0 {
		if len(gs.ExtraTurns) > 0 && gs.ExtraTurns[0].Player == gs.ActivePlayer {
			gs.ExtraTurns = gs.ExtraTurns[1:]
		} else {
			gs.ActivePlayer = gs.Opponent(gs.ActivePlayer)
		}
	}
	gs.Turn++
	gs.ResetTurnFlags()

	d.log(log.NewTurnEvent(gs.Turn, gs.ActivePlayer))

	for _, step := range []Step{StepUntap, StepUpkeep, StepDraw} {
		if err := d.runStep(PhaseBegin, step); err != nil {
			return err
		}
		if gs.GameOver {
			return nil
		}
	}

	gs.Phase, gs.Step = PhaseMain1, StepNone
	d.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
	d.recomputeDerivedBattlefield()
	d.runStateBasedActions()
	if gs.GameOver {
		return nil
	}
	if err := d.openPriorityWindow(gs.ActivePlayer); err != nil {
		return err
	}
	gs.ClearManaPools()
	if gs.GameOver {
		return nil
	}

	if !gs.CombatSkipped {
		if err := d.runCombatPhase(); err != nil {
			return err
		}
		if gs.GameOver {
			return nil
		}
	}

	if !gs.Main2Skipped {
		gs.Phase, gs.Step = PhaseMain2, StepNone
		d.log(log.NewPhaseChangeEvent(gs.Turn, gs.Phase.String()))
		d.recomputeDerivedBattlefield()
		d.runStateBasedActions()
		if gs.GameOver {
			return nil
		}
		if err := d.openPriorityWindow(gs.ActivePlayer); err != nil {
			return err
		}
		gs.ClearManaPools()
		if gs.GameOver {
			return nil
		}
	}

	if err := d.runStep(PhaseEnd, StepEnd); err != nil {
		return err
	}
	if gs.GameOver {
		return nil
	}
	return d.runCleanupStep()
}

// runStep advances to the given phase/step, performs its fixed duty (if
// any), runs SBAs/triggers, and opens a priority window (every step
// except untap and cleanup, which have none).
func (d *Duel) runStep(phase Phase, step Step) error {
	gs := d.State
	gs.Phase, gs.Step = phase, step
	d.log(log.NewPhaseChangeEvent(gs.Turn, stepLabel(phase, step)))

	switch step {
	case StepUntap:
		d.runUntapStep()
		return nil // no priority window during untap
	case StepUpkeep:
		d.collectTriggers(log.GameEvent{Type: log.EventUpkeep, Player: gs.ActivePlayer})
	case StepDraw:
		if !gs.FirstTurn {
			d.drawCardOrLose(gs.ActivePlayer)
		}
		gs.FirstTurn = false
	}

	d.recomputeDerivedBattlefield()
	d.runStateBasedActions()
	if gs.GameOver {
		return nil
	}
	if err := d.openPriorityWindow(gs.ActivePlayer); err != nil {
		return err
	}
	gs.ClearManaPools()
	return nil
}

// runUntapStep untaps every permanent the active player controls and
// clears summoning sickness/this-turn flags; no player receives priority.
func (d *Duel) runUntapStep() {
	gs := d.State
	for _, ci := range gs.Battlefield {
		if ci.Controller != gs.ActivePlayer {
			continue
		}
		ci.Tapped = false
		ci.SummoningSick = false
		ci.EnteredThisTurn = false
		ci.RemoveModifiersByExpiry(ExpiryUntilNextUntap)
	}
}

// runCombatPhase drives BEGIN_COMBAT → DECLARE_ATTACKERS → (damage runs
// synchronously as part of DECLARE_BLOCKERS) → END_COMBAT, opening a
// priority window after every step.
func (d *Duel) runCombatPhase() error {
	gs := d.State
	gs.Phase = PhaseCombat

	if err := d.runStep(PhaseCombat, StepBeginCombat); err != nil {
		return err
	}
	if gs.GameOver {
		return nil
	}

	gs.Phase, gs.Step = PhaseCombat, StepDeclareAttackers
	d.log(log.NewPhaseChangeEvent(gs.Turn, stepLabel(PhaseCombat, StepDeclareAttackers)))
	hasAttackers := false
	for _, ci := range gs.Battlefield {
		if ci.Controller == gs.ActivePlayer && d.canAttack(ci) {
			hasAttackers = true
			break
		}
	}
	if hasAttackers {
		actions := d.legalActions(gs.ActivePlayer)
		var declare *Action
		for _, a := range actions {
			if a.Type == ActionDeclareAttackers {
				declare = &a
				break
			}
		}
		if declare != nil {
			chosen, err := d.Controllers[gs.ActivePlayer].ChooseAction(d.ctx, gs, []Action{*declare, {Type: ActionPassPriority, Actor: gs.ActivePlayer}})
			if err != nil {
				return err
			}
			if chosen.Type == ActionDeclareAttackers {
				if err := d.executeDeclareAttackers(gs.ActivePlayer, chosen.Attackers); err != nil {
					return err
				}
			}
		}
	}
	d.recomputeDerivedBattlefield()
	d.runStateBasedActions()
	if gs.GameOver {
		return nil
	}
	if err := d.openPriorityWindow(gs.ActivePlayer); err != nil {
		return err
	}
	gs.ClearManaPools()
	if gs.GameOver {
		return nil
	}

	anyAttacking := false
	for _, ci := range gs.Battlefield {
		if ci.Attacking {
			anyAttacking = true
			break
		}
	}
	if anyAttacking {
		gs.Phase, gs.Step = PhaseCombat, StepDeclareBlockers
		d.log(log.NewPhaseChangeEvent(gs.Turn, stepLabel(PhaseCombat, StepDeclareBlockers)))
		defender := gs.DefendingPlayer()
		chosen, err := d.Controllers[defender].ChooseAction(d.ctx, gs, []Action{{Type: ActionDeclareBlockers, Actor: defender}})
		if err != nil {
			return err
		}
		if err := d.executeDeclareBlockers(defender, chosen.BlockAssignment); err != nil {
			return err
		}
		if gs.GameOver {
			return nil
		}

		gs.Phase, gs.Step = PhaseCombat, StepDamage
		d.log(log.NewPhaseChangeEvent(gs.Turn, stepLabel(PhaseCombat, StepDamage)))
		d.recomputeDerivedBattlefield()
		d.runStateBasedActions()
		if gs.GameOver {
			return nil
		}
		if err := d.openPriorityWindow(gs.ActivePlayer); err != nil {
			return err
		}
		gs.ClearManaPools()
		if gs.GameOver {
			return nil
		}
	}

	return d.runStep(PhaseCombat, StepEndCombat)
}

// runCleanupStep discards down to the maximum hand size, clears
// end-of-turn modifiers and marked damage, and — only if a cleanup-time
// trigger or discard happened — opens one final priority window.
func (d *Duel) runCleanupStep() error {
	gs := d.State
	gs.Phase, gs.Step = PhaseEnd, StepCleanup
	d.log(log.NewPhaseChangeEvent(gs.Turn, stepLabel(PhaseEnd, StepCleanup)))

	p := gs.ActivePlayerState()
	discarded := false
	for len(p.Hand) > DefaultHandSize {
		card := p.Hand[len(p.Hand)-1]
		p.RemoveFromHand(card)
		p.SendToGraveyard(card)
		d.log(log.NewHandSizeDiscardEvent(gs.Turn, gs.Phase.String(), gs.ActivePlayer, card.Card.Name))
		discarded = true
	}

	for _, ci := range gs.Battlefield {
		ci.DamageMarked = 0
		ci.MarkedForDeath = false
		ci.AssignDamageAsUnblocked = false
		ci.RemoveModifiersByExpiry(ExpiryEndOfTurn)
		ci.RemoveModifiersByExpiry(ExpiryEndOfCombat)
		if ci.GoadedUntilTurn != 0 && ci.GoadedUntilTurn <= gs.Turn {
			ci.GoadedUntilTurn = 0
			ci.GoadedBy = nil
		}
	}

	d.recomputeDerivedBattlefield()
	d.runStateBasedActions()
	if gs.GameOver {
		return nil
	}
	if discarded || len(gs.PendingTriggers) > 0 {
		return d.openPriorityWindow(gs.ActivePlayer)
	}
	return nil
}

func stepLabel(phase Phase, step Step) string {
	if step.String() == "" {
		return phase.String()
	}
	return phase.String() + " - " + step.String()
}

// log emits a game event through the logger and notifies both players.
func (d *Duel) log(event log.GameEvent) {
	d.Logger.Log(event)
	for i := 0; i < 2; i++ {
		_ = d.Controllers[i].Notify(d.ctx, event)
	}
}
