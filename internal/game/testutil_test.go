package game

import (
	"context"
	"errors"

	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// ScriptedController is a PlayerController whose answers come from a
// queue of pre-arranged responses, for deterministic scenario tests. It
// returns an error if the script runs dry, so a test fails loudly
// instead of blocking.
type ScriptedController struct {
	Actions   []func(actions []Action) Action
	CardFn    func(candidates []*CardInstance, min, max int) []*CardInstance
	YesNoFn   func(prompt string) bool
	Notified  []log.GameEvent
}

func (c *ScriptedController) ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error) {
	if len(c.Actions) == 0 {
		return Action{}, errors.New("scripted controller ran out of actions")
	}
	next := c.Actions[0]
	c.Actions = c.Actions[1:]
	return next(actions), nil
}

func (c *ScriptedController) ChooseCards(ctx context.Context, state *GameState, prompt string, candidates []*CardInstance, min, max int) ([]*CardInstance, error) {
	if c.CardFn == nil {
		return nil, nil
	}
	return c.CardFn(candidates, min, max), nil
}

func (c *ScriptedController) ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error) {
	if c.YesNoFn == nil {
		return false, nil
	}
	return c.YesNoFn(prompt), nil
}

func (c *ScriptedController) Notify(ctx context.Context, event log.GameEvent) error {
	c.Notified = append(c.Notified, event)
	return nil
}

// passAlways always passes priority, used for a controller with nothing
// proactive to do in a given test.
func passAlways(actions []Action) Action {
	return Action{Type: ActionPassPriority}
}

// findAction picks the first action of the given type from the offered
// set, or panics (failing the test) if absent.
func findAction(actions []Action, t ActionType) Action {
	for _, a := range actions {
		if a.Type == t {
			return a
		}
	}
	panic("no action of requested type offered: " + t.String())
}

// newTestDuel builds a two-player duel with the given decks, an unshuffled
// library (so draws are deterministic) and a fixed seed.
func newTestDuel(deck0, deck1 []*Card, p0, p1 PlayerController) *Duel {
	return NewDuel(DuelConfig{
		Deck0: deck0, Deck1: deck1,
		Logger: log.NewMemoryLogger(), Seed: 1, NoShuffle: true, MaxTurns: 20,
	}, p0, p1)
}

// fillDeck pads out a short scenario deck with basic Islands so a duel
// never runs out of library mid-test.
func fillDeck(cards []func() *Card, padTo int) []*Card {
	var out []*Card
	for _, ctor := range cards {
		out = append(out, ctor())
	}
	for len(out) < padTo {
		out = append(out, Island())
	}
	return out
}

// findInHand returns the first card instance of the given name in a
// player's hand.
func findInHand(gs *GameState, player int, name string) *CardInstance {
	for _, ci := range gs.Players[player].Hand {
		if ci.Card.Name == name {
			return ci
		}
	}
	return nil
}

// findOnBattlefield returns the first permanent of the given name
// controlled by player.
func findOnBattlefield(gs *GameState, player int, name string) *CardInstance {
	for _, ci := range gs.Battlefield {
		if ci.Controller == player && ci.Card.Name == name {
			return ci
		}
	}
	return nil
}
