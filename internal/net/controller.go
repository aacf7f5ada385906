package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sort"
	"sync"

	"github.com/arcanum-dev/arcanum-engine/internal/game"
	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// NetworkController implements game.PlayerController over a TCP connection.
type NetworkController struct {
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	player int // which player this controller is (0 or 1)
	mu     sync.Mutex
}

// NewNetworkController creates a new controller for the given connection.
func NewNetworkController(conn net.Conn, player int) *NetworkController {
	return &NetworkController{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    json.NewDecoder(conn),
		player: player,
	}
}

// BuildStateView creates a StateView from the perspective of the given player.
func BuildStateView(state *game.GameState, player int) *StateView {
	me := player
	opp := state.Opponent(me)

	myPlayer := state.Players[me]
	oppPlayer := state.Players[opp]

	sv := &StateView{
		Turn:       state.Turn,
		Phase:      state.Phase.String(),
		IsYourTurn: state.ActivePlayer == me,
	}

	sv.You = playerView(state, myPlayer, me)
	for _, c := range myPlayer.Hand {
		sv.You.Hand = append(sv.You.Hand, c.Card.Name)
	}
	for _, c := range myPlayer.Graveyard {
		sv.You.Graveyard = append(sv.You.Graveyard, c.Card.Name)
	}

	sv.Opponent = playerView(state, oppPlayer, opp)
	for _, c := range oppPlayer.Graveyard {
		sv.Opponent.Graveyard = append(sv.Opponent.Graveyard, c.Card.Name)
	}

	return sv
}

// playerView builds the zone-count portion of a PlayerView shared by both
// perspectives; hand contents are filled in separately since they're only
// visible to their owner.
func playerView(state *game.GameState, p *game.Player, playerID int) PlayerView {
	pv := PlayerView{
		Life:           p.Life,
		HandCount:      len(p.Hand),
		ManaPool:       manaPoolString(p.ManaPool),
		GraveyardCount: len(p.Graveyard),
		LibraryCount:   len(p.Library),
		LandPlayed:     p.LandsPlayedThisTurn > 0,
	}

	var perms []*game.CardInstance
	for _, ci := range state.Battlefield {
		if ci.Controller == playerID {
			perms = append(perms, ci)
		}
	}
	sort.Slice(perms, func(i, j int) bool { return perms[i].ID < perms[j].ID })
	for _, ci := range perms {
		pv.Battlefield = append(pv.Battlefield, PermanentZoneView(ci))
	}
	return pv
}

// buildStateView creates a StateView from the perspective of this controller's player.
func (nc *NetworkController) buildStateView(state *game.GameState) *StateView {
	return BuildStateView(state, nc.player)
}

// PermanentZoneView renders a single battlefield permanent.
func PermanentZoneView(ci *game.CardInstance) ZoneView {
	zv := ZoneView{
		Name:          ci.Card.Name,
		Tapped:        ci.Tapped,
		SummoningSick: ci.SummoningSick,
		DamageMarked:  ci.DamageMarked,
		Keywords:      ci.CurrentKeywords().String(),
	}
	if ci.Card.CardType == game.CardTypeCreature {
		zv.Power = ci.CurrentPower()
		zv.Toughness = ci.CurrentToughness()
	}
	if ci.AttachedTo != nil {
		zv.AttachedTo = ci.AttachedTo.Card.Name
	}
	if len(ci.Counters) > 0 {
		zv.Counters = countersString(ci.Counters)
	}
	return zv
}

func countersString(counters map[string]int) string {
	var out string
	for name, n := range counters {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%d %s", n, name)
	}
	return out
}

func manaPoolString(m game.Mana) string {
	if m.Total() == 0 {
		return ""
	}
	var out string
	for _, pair := range []struct {
		n int
		s string
	}{{m.W, "W"}, {m.U, "U"}, {m.B, "B"}, {m.R, "R"}, {m.G, "G"}, {m.C, "C"}} {
		for i := 0; i < pair.n; i++ {
			out += pair.s
		}
	}
	return out
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// recv reads a client message. Must be called with mu held.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// ChooseAction implements game.PlayerController.
func (nc *NetworkController) ChooseAction(ctx context.Context, state *game.GameState, actions []game.Action) (game.Action, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	var views []ActionView
	for i, a := range actions {
		views = append(views, ActionView{Index: i, Desc: a.Type.String()})
	}

	msg := ServerMessage{
		Type:    "choose_action",
		Actions: views,
		State:   nc.buildStateView(state),
	}
	if err := nc.send(msg); err != nil {
		return game.Action{}, fmt.Errorf("send choose_action: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return game.Action{}, fmt.Errorf("recv action: %w", err)
	}

	if resp.Index < 0 || resp.Index >= len(actions) {
		return actions[0], nil // fallback to first action
	}
	return actions[resp.Index], nil
}

// ChooseCards implements game.PlayerController.
func (nc *NetworkController) ChooseCards(ctx context.Context, state *game.GameState, prompt string, candidates []*game.CardInstance, min, max int) ([]*game.CardInstance, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	var views []CardView
	for i, c := range candidates {
		cv := CardView{Index: i, Name: c.Card.Name}
		if c.Card.CardType == game.CardTypeCreature {
			cv.Power = c.CurrentPower()
			cv.Toughness = c.CurrentToughness()
		}
		views = append(views, cv)
	}

	msg := ServerMessage{
		Type:       "choose_cards",
		Prompt:     prompt,
		Candidates: views,
		Min:        min,
		Max:        max,
		State:      nc.buildStateView(state),
	}
	if err := nc.send(msg); err != nil {
		return nil, fmt.Errorf("send choose_cards: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return nil, fmt.Errorf("recv cards: %w", err)
	}

	var result []*game.CardInstance
	for _, idx := range resp.Indices {
		if idx >= 0 && idx < len(candidates) {
			result = append(result, candidates[idx])
		}
	}
	return result, nil
}

// ChooseYesNo implements game.PlayerController.
func (nc *NetworkController) ChooseYesNo(ctx context.Context, state *game.GameState, prompt string) (bool, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	msg := ServerMessage{
		Type:   "choose_yes_no",
		Prompt: prompt,
		State:  nc.buildStateView(state),
	}
	if err := nc.send(msg); err != nil {
		return false, fmt.Errorf("send choose_yes_no: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return false, fmt.Errorf("recv yes_no: %w", err)
	}

	return resp.Answer, nil
}

// SendGameOver sends a game_over message to the client.
func (nc *NetworkController) SendGameOver(winner int, result string) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "game_over", Winner: winner, Result: result})
}

// Notify implements game.PlayerController.
func (nc *NetworkController) Notify(ctx context.Context, event log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	msg := ServerMessage{
		Type: "notify",
		Event: &EventView{
			Turn:    event.Turn,
			Phase:   event.Phase,
			Player:  event.Player,
			Type:    event.Type.String(),
			Card:    event.Card,
			Details: event.Details,
		},
	}
	return nc.send(msg)
}
