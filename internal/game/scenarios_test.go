package game

import (
	"testing"

	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// --- Scenario 1: land play, tap, pass; mana empties at step end. ---

func TestLandPlayTapPassEmptiesManaPoolAtStepEnd(t *testing.T) {
	p0 := &ScriptedController{Actions: []func([]Action) Action{
		passAlways, // upkeep
		passAlways, // draw
		func(a []Action) Action { return findAction(a, ActionPlayLand) },
		func(a []Action) Action { return findAction(a, ActionTapForMana) },
		passAlways, // main1
		passAlways, // begin combat
		passAlways, // declare attackers window
		passAlways, // end combat
		passAlways, // main2
		passAlways, // end step
	}}
	p1 := &ScriptedController{Actions: []func([]Action) Action{
		passAlways, passAlways, passAlways, passAlways, passAlways, passAlways, passAlways, passAlways,
	}}

	d := newTestDuel(nil, nil, p0, p1)
	d.State.ActivePlayer = 0
	forest := d.State.CreateCardInstance(Forest(), 0, ZoneHand)
	d.State.Players[0].AddToHand(forest)

	if err := d.runTurn(); err != nil {
		t.Fatalf("runTurn: %v", err)
	}

	land := findOnBattlefield(d.State, 0, "Forest")
	if land == nil {
		t.Fatal("Forest never made it to the battlefield")
	}
	if !land.Tapped {
		t.Fatal("Forest should be tapped after TAP_FOR_MANA")
	}
	pool := d.State.Players[0].ManaPool
	if pool.Total() != 0 {
		t.Fatalf("mana pool should be empty after the turn's steps close, got %+v", pool)
	}
	if d.State.Players[0].LandsPlayedThisTurn != 1 {
		t.Fatalf("expected 1 land played, got %d", d.State.Players[0].LandsPlayedThisTurn)
	}
}

func TestSecondLandDropRejected(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseMain1, StepNone
	gs.ActivePlayer = 0

	forest := gs.CreateCardInstance(Forest(), 0, ZoneHand)
	gs.Players[0].AddToHand(forest)
	island := gs.CreateCardInstance(Island(), 0, ZoneHand)
	gs.Players[0].AddToHand(island)

	if err := d.executePlayLand(0, Action{Type: ActionPlayLand, Object: forest.ID}); err != nil {
		t.Fatalf("first land play: %v", err)
	}
	err := d.executePlayLand(0, Action{Type: ActionPlayLand, Object: island.ID})
	if err == nil {
		t.Fatal("expected second land drop to be rejected")
	}
	gerr, ok := err.(*GameError)
	if !ok || gerr.Kind != ErrIllegalTiming {
		t.Fatalf("expected IllegalTimingError, got %v", err)
	}
	if island.Zone != ZoneHand {
		t.Fatal("rejected land play must not move the card out of hand")
	}
}

// --- Scenario 2: creature ETB trigger resolves via the stack. ---

func TestCreatureETBTriggerResolvesThroughStack(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseMain1, StepNone
	gs.ActivePlayer = 0
	gs.Players[0].ManaPool = Mana{G: 1, C: 2}

	hierophant := gs.CreateCardInstance(GrassWavesHierophant(), 0, ZoneHand)
	gs.Players[0].AddToHand(hierophant)

	if err := d.executeCastSpell(0, Action{Type: ActionCastSpell, Object: hierophant.ID}); err != nil {
		t.Fatalf("cast: %v", err)
	}
	if len(gs.Stack) != 1 {
		t.Fatalf("expected the creature spell on the stack, got %d items", len(gs.Stack))
	}

	if err := d.resolveTopOfStack(); err != nil {
		t.Fatalf("resolve spell: %v", err)
	}
	if findOnBattlefield(gs, 0, "Grass-Waves Hierophant") == nil {
		t.Fatal("creature should have entered the battlefield")
	}
	if len(gs.PendingTriggers) != 1 {
		t.Fatalf("expected 1 queued ETB trigger, got %d", len(gs.PendingTriggers))
	}

	startLife := gs.Players[0].Life
	d.placePendingTriggersOnStack()
	if len(gs.Stack) != 1 {
		t.Fatalf("expected the ETB trigger on the stack, got %d items", len(gs.Stack))
	}
	if err := d.resolveTopOfStack(); err != nil {
		t.Fatalf("resolve trigger: %v", err)
	}
	if gs.Players[0].Life != startLife+2 {
		t.Fatalf("expected ETB trigger to gain 2 life, got %d -> %d", startLife, gs.Players[0].Life)
	}
	if len(gs.Stack) != 0 {
		t.Fatal("stack should be empty after the trigger resolves")
	}
}

// --- Scenario 3: hexproof rejects targeting at cast time. ---

func TestHexproofRejectsTargeting(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseMain1, StepNone
	gs.ActivePlayer = 0
	gs.Players[0].ManaPool = Mana{R: 1}

	leviathan := gs.CreateCardInstance(TidewalkerLeviathan(), 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, leviathan)

	bolt := gs.CreateCardInstance(ScorchingBolt(), 0, ZoneHand)
	gs.Players[0].AddToHand(bolt)

	err := d.executeCastSpell(0, Action{
		Type: ActionCastSpell, Object: bolt.ID,
		Targets: [][]TargetRef{{{InstanceID: leviathan.ID}}},
	})
	if err == nil {
		t.Fatal("expected casting at a hexproof creature to fail")
	}
	gerr, ok := err.(*GameError)
	if !ok || gerr.Kind != ErrInvalidTarget {
		t.Fatalf("expected InvalidTargetError, got %v", err)
	}
	if findOnBattlefield(gs, 1, "Tidewalker Leviathan") == nil {
		t.Fatal("hexproof creature must remain on the battlefield")
	}
	if gs.Players[0].ManaPool.R != 1 {
		t.Fatal("a rejected cast must not spend mana")
	}
	if findInHand(gs, 0, "Scorching Bolt") == nil {
		t.Fatal("a rejected cast must leave the card in hand")
	}
}

// --- Scenario 4: trample assigns lethal to the blocker, overflow to the player. ---

func TestTrampleOverLethalDamage(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseCombat, StepDeclareAttackers
	gs.ActivePlayer = 0

	attackerCard := &Card{Name: "Trample Test Attacker", CardType: CardTypeCreature, Power: 5, Toughness: 5, Keywords: KeywordTrample}
	attacker := gs.CreateCardInstance(attackerCard, 0, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, attacker)

	blockerCard := &Card{Name: "Vanilla Test Blocker", CardType: CardTypeCreature, Power: 2, Toughness: 2}
	blocker := gs.CreateCardInstance(blockerCard, 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, blocker)

	if err := d.executeDeclareAttackers(0, []int{attacker.ID}); err != nil {
		t.Fatalf("declare attackers: %v", err)
	}
	if err := d.executeDeclareBlockers(1, map[int][]int{attacker.ID: {blocker.ID}}); err != nil {
		t.Fatalf("declare blockers: %v", err)
	}

	if findOnBattlefield(gs, 1, "Vanilla Test Blocker") != nil {
		t.Fatal("the 2-toughness blocker should have died to 2 assigned damage")
	}
	if gs.Players[1].Life != StartingLife-3 {
		t.Fatalf("expected 3 trample damage to the player, life is %d", gs.Players[1].Life)
	}
	survivor := findOnBattlefield(gs, 0, "Trample Test Attacker")
	if survivor == nil {
		t.Fatal("the attacker should survive the blocker's 2 damage at 5 toughness")
	}
	if survivor.DamageMarked != 2 {
		t.Fatalf("expected attacker to carry 2 marked damage from the blocker, got %d", survivor.DamageMarked)
	}
}

// --- Scenario 5: first strike kills the blocker before it can swing back. ---

func TestFirstStrikeKillsBeforeNormalDamage(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseCombat, StepDeclareAttackers
	gs.ActivePlayer = 0

	attackerCard := &Card{Name: "First Strike Test Attacker", CardType: CardTypeCreature, Power: 3, Toughness: 2, Keywords: KeywordFirstStrike}
	attacker := gs.CreateCardInstance(attackerCard, 0, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, attacker)

	blockerCard := &Card{Name: "Normal Test Blocker", CardType: CardTypeCreature, Power: 2, Toughness: 2}
	blocker := gs.CreateCardInstance(blockerCard, 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, blocker)

	if err := d.executeDeclareAttackers(0, []int{attacker.ID}); err != nil {
		t.Fatalf("declare attackers: %v", err)
	}
	if err := d.executeDeclareBlockers(1, map[int][]int{attacker.ID: {blocker.ID}}); err != nil {
		t.Fatalf("declare blockers: %v", err)
	}

	if findOnBattlefield(gs, 1, "Normal Test Blocker") != nil {
		t.Fatal("the blocker should die in the first-strike damage pass")
	}
	survivor := findOnBattlefield(gs, 0, "First Strike Test Attacker")
	if survivor == nil {
		t.Fatal("the first-strike attacker should survive")
	}
	if survivor.DamageMarked != 0 {
		t.Fatalf("a dead blocker cannot deal damage in the normal pass, got %d marked", survivor.DamageMarked)
	}
	if survivor.CurrentToughness() != 2 {
		t.Fatalf("expected attacker toughness unchanged at 2, got %d", survivor.CurrentToughness())
	}
}

// --- Scenario 6: resolution-time illegal target counters the spell, costs stay paid. ---

func TestIllegalTargetAtResolutionCountersSpell(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseMain1, StepNone
	gs.ActivePlayer = 0
	gs.Players[0].ManaPool = Mana{R: 1}

	targetCard := &Card{Name: "Counter Test Target", CardType: CardTypeCreature, Power: 2, Toughness: 2}
	target := gs.CreateCardInstance(targetCard, 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, target)

	exiled := gs.CreateCardInstance(&Card{Name: "Previously Exiled Card", CardType: CardTypeCreature}, 1, ZoneExile)
	gs.Exile = append(gs.Exile, exiled)

	bolt := gs.CreateCardInstance(ScorchingBolt(), 0, ZoneHand)
	gs.Players[0].AddToHand(bolt)

	if err := d.executeCastSpell(0, Action{
		Type: ActionCastSpell, Object: bolt.ID,
		Targets: [][]TargetRef{{{InstanceID: target.ID}}},
	}); err != nil {
		t.Fatalf("cast: %v", err)
	}
	if gs.Players[0].ManaPool.R != 0 {
		t.Fatal("casting should have spent the mana")
	}
	if len(gs.Stack) != 1 {
		t.Fatalf("expected Scorching Bolt on the stack, got %d items", len(gs.Stack))
	}

	// Simulate the opponent resolving a hexproof-granting effect between
	// cast and resolution.
	target.AddModifier(StatModifier{Source: 999999, AddKeywords: KeywordHexproof})

	if err := d.resolveTopOfStack(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(gs.Stack) != 0 {
		t.Fatal("countered spell must leave the stack")
	}
	if target.DamageMarked != 0 {
		t.Fatal("a countered spell must have no effect")
	}
	if gs.Players[0].ManaPool.R != 0 {
		t.Fatal("costs already paid remain paid even when the spell is countered")
	}
	if len(gs.Exile) != 1 || gs.Exile[0] != exiled {
		t.Fatal("countering a spell must not touch cards already in exile")
	}
}

// --- Boundary: summoning sickness without haste excludes an attack. ---

func TestSummoningSicknessBlocksAttackWithoutHaste(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseCombat, StepDeclareAttackers
	gs.ActivePlayer = 0

	card := &Card{Name: "Sick Test Creature", CardType: CardTypeCreature, Power: 2, Toughness: 2}
	ci := gs.CreateCardInstance(card, 0, ZoneBattlefield)
	ci.SummoningSick = true
	gs.Battlefield = append(gs.Battlefield, ci)

	actions := d.legalActions(0)
	for _, a := range actions {
		if a.Type == ActionDeclareAttackers {
			t.Fatal("a summoning-sick creature without haste must not be offered as an attacker")
		}
	}
	if err := d.executeDeclareAttackers(0, []int{ci.ID}); err == nil {
		t.Fatal("declaring a summoning-sick attacker must be rejected even if injected directly")
	}
}

// --- Boundary: menace requires two or more blockers. ---

func TestMenaceRejectsSingleBlocker(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseCombat, StepDeclareAttackers
	gs.ActivePlayer = 0

	attackerCard := &Card{Name: "Menace Test Attacker", CardType: CardTypeCreature, Power: 2, Toughness: 2, Keywords: KeywordMenace}
	attacker := gs.CreateCardInstance(attackerCard, 0, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, attacker)

	blockerCard := &Card{Name: "Menace Test Blocker", CardType: CardTypeCreature, Power: 1, Toughness: 1}
	blocker := gs.CreateCardInstance(blockerCard, 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, blocker)

	if err := d.executeDeclareAttackers(0, []int{attacker.ID}); err != nil {
		t.Fatalf("declare attackers: %v", err)
	}
	err := d.executeDeclareBlockers(1, map[int][]int{attacker.ID: {blocker.ID}})
	if err == nil {
		t.Fatal("a single blocker must not be legal against a menace attacker")
	}
	gerr, ok := err.(*GameError)
	if !ok || gerr.Kind != ErrIllegalTiming {
		t.Fatalf("expected IllegalTimingError, got %v", err)
	}
}

// --- Boundary: sorcery-speed casting errors with a non-empty stack. ---

func TestSorcerySpeedRejectedWithNonEmptyStack(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseMain1, StepNone
	gs.ActivePlayer = 0
	gs.Players[0].ManaPool = Mana{R: 3, G: 2}

	dummySpell := gs.CreateCardInstance(&Card{Name: "Stack Filler", CardType: CardTypeInstant}, 0, ZoneStack)
	gs.Stack = append(gs.Stack, &StackItem{Source: dummySpell, Controller: 0, IsSpell: true})

	sorcery := gs.CreateCardInstance(RavagingBlast(), 0, ZoneHand)
	gs.Players[0].AddToHand(sorcery)

	creature := &Card{Name: "Irrelevant Creature", CardType: CardTypeCreature, Power: 1, Toughness: 1}
	victim := gs.CreateCardInstance(creature, 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, victim)

	err := d.executeCastSpell(0, Action{
		Type: ActionCastSpell, Object: sorcery.ID,
		Targets: [][]TargetRef{{{InstanceID: victim.ID}}},
	})
	if err == nil {
		t.Fatal("expected a sorcery-speed cast with a nonempty stack to fail")
	}
	gerr, ok := err.(*GameError)
	if !ok || gerr.Kind != ErrIllegalTiming {
		t.Fatalf("expected IllegalTimingError, got %v", err)
	}
}

// --- New effect coverage: token creation, search, scry, exile, discard. ---

func TestSkitterlingSwarmCreatesTwoTokens(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.Phase, gs.Step = PhaseMain1, StepNone
	gs.ActivePlayer = 0

	card := gs.CreateCardInstance(SkitterlingSwarm(), 0, ZoneStack)
	if err := SkitterlingSwarm().SpellEffect.Resolve(d, card, 0, nil); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	count := 0
	for _, ci := range gs.Battlefield {
		if ci.Card.Name == "Insect" && ci.Controller == 0 {
			count++
			if !ci.IsToken || ci.TokenUUID == "" {
				t.Fatal("minted Insect must be marked as a token with a stamped identity")
			}
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 Insect tokens, got %d", count)
	}
}

func TestVerdantSearchFindsLandAndShuffles(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.ActivePlayer = 0

	forest := gs.CreateCardInstance(Forest(), 0, ZoneLibrary)
	gs.Players[0].Library = append(gs.Players[0].Library, forest)
	gs.Players[0].Library = append(gs.Players[0].Library, gs.CreateCardInstance(Island(), 0, ZoneLibrary))

	card := gs.CreateCardInstance(VerdantSearch(), 0, ZoneStack)
	if err := VerdantSearch().SpellEffect.Resolve(d, card, 0, nil); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if gs.Pending == nil {
		t.Fatal("expected a pending decision for the search")
	}
	if err := gs.Pending.Continuation.Resume(d, []int{forest.ID}); err != nil {
		t.Fatalf("resume: %v", err)
	}
	gs.Pending = nil

	if findInHand(gs, 0, "Forest") == nil {
		t.Fatal("the found land should be in hand")
	}
	for _, ci := range gs.Players[0].Library {
		if ci.ID == forest.ID {
			t.Fatal("the found land must leave the library")
		}
	}
	if len(d.Logger.(*log.MemoryLogger).EventsOfType(log.EventShuffle)) != 1 {
		t.Fatal("the library should be shuffled after the search")
	}
}

func TestTidereadersScryBottomsChosenCards(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.ActivePlayer = 0

	bottomIndexCard := gs.CreateCardInstance(Island(), 0, ZoneLibrary)
	onTop := gs.CreateCardInstance(Forest(), 0, ZoneLibrary)
	// Library is a stack; last appended is on top (drawn first), so onTop
	// is what the scry actually looks at first.
	gs.Players[0].Library = append(gs.Players[0].Library, bottomIndexCard, onTop)

	card := gs.CreateCardInstance(TidereadersScry(), 0, ZoneStack)
	if err := TidereadersScry().SpellEffect.Resolve(d, card, 0, nil); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if gs.Pending == nil {
		t.Fatal("expected a pending scry decision")
	}
	// Choose to bottom the card that was on top; it should end up at
	// index 0 (the new bottom) instead of staying on top.
	if err := gs.Pending.Continuation.Resume(d, []int{onTop.ID}); err != nil {
		t.Fatalf("resume: %v", err)
	}
	gs.Pending = nil

	lib := gs.Players[0].Library
	if len(lib) != 2 {
		t.Fatalf("expected library size unchanged at 2, got %d", len(lib))
	}
	if lib[0].ID != onTop.ID {
		t.Fatal("the bottomed card should be at index 0 (library bottom)")
	}
}

func TestBanishBeyondExilesTarget(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.ActivePlayer = 0

	victim := gs.CreateCardInstance(&Card{Name: "Exile Test Creature", CardType: CardTypeCreature, Power: 1, Toughness: 1}, 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, victim)

	card := gs.CreateCardInstance(BanishBeyond(), 0, ZoneStack)
	if err := BanishBeyond().SpellEffect.Resolve(d, card, 0, []*CardInstance{victim}); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if findOnBattlefield(gs, 1, "Exile Test Creature") != nil {
		t.Fatal("the creature should have left the battlefield")
	}
	found := false
	for _, ci := range gs.Exile {
		if ci.Card.Name == "Exile Test Creature" {
			found = true
		}
	}
	if !found {
		t.Fatal("the creature should be in exile, not the graveyard")
	}
}

func TestMindShatterMakesOpponentDiscard(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.ActivePlayer = 0

	discardMe := gs.CreateCardInstance(Island(), 1, ZoneHand)
	gs.Players[1].AddToHand(discardMe)

	card := gs.CreateCardInstance(MindShatter(), 0, ZoneStack)
	if err := MindShatter().SpellEffect.Resolve(d, card, 0, nil); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if gs.Pending == nil || gs.Pending.Actor != 1 {
		t.Fatal("expected a pending discard decision for the opponent")
	}
	if err := gs.Pending.Continuation.Resume(d, []int{discardMe.ID}); err != nil {
		t.Fatalf("resume: %v", err)
	}
	gs.Pending = nil

	if len(gs.Players[1].Hand) != 0 {
		t.Fatal("the chosen card should have left the opponent's hand")
	}
	found := false
	for _, ci := range gs.Players[1].Graveyard {
		if ci.ID == discardMe.ID {
			found = true
		}
	}
	if !found {
		t.Fatal("the discarded card should be in the graveyard")
	}
}

// --- Dies trigger must fire for the dying permanent's own ability. ---

func TestDiesTriggerFiresForItsOwnSource(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.ActivePlayer = 0

	oracle := gs.CreateCardInstance(CinderveilOracle(), 0, ZoneBattlefield)
	oracle.DamageMarked = oracle.CurrentToughness()
	gs.Battlefield = append(gs.Battlefield, oracle)

	startingLife := gs.Players[1].Life

	d.runStateBasedActions()

	found := false
	for _, ci := range gs.Players[0].Graveyard {
		if ci.Card.Name == "Cinderveil Oracle" {
			found = true
		}
	}
	if !found {
		t.Fatal("Cinderveil Oracle should have died to lethal damage")
	}
	if len(gs.PendingTriggers) != 1 {
		t.Fatalf("expected the death trigger to be queued, got %d pending", len(gs.PendingTriggers))
	}

	d.placePendingTriggersOnStack()
	if len(gs.Stack) != 1 {
		t.Fatalf("expected the death trigger on the stack, got %d items", len(gs.Stack))
	}
	if err := d.resolveTopOfStack(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if gs.Players[1].Life != startingLife-2 {
		t.Fatalf("opponent should have lost 2 life, got %d (started %d)", gs.Players[1].Life, startingLife)
	}
}

// --- Prevent combat damage and assign-as-unblocked effects. ---

func TestFogPreventsAllCombatDamage(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.ActivePlayer = 0
	gs.CombatDamagePrevented = true

	attacker := gs.CreateCardInstance(&Card{Name: "Fogged Attacker", CardType: CardTypeCreature, Power: 4, Toughness: 4}, 0, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, attacker)

	startingLife := gs.Players[1].Life

	gs.Phase, gs.Step = PhaseCombat, StepBeginCombat
	if err := d.executeDeclareAttackers(0, []int{attacker.ID}); err != nil {
		t.Fatalf("declare attackers: %v", err)
	}
	if err := d.executeDeclareBlockers(1, map[int][]int{}); err != nil {
		t.Fatalf("declare blockers: %v", err)
	}

	if gs.Players[1].Life != startingLife {
		t.Fatalf("combat damage should have been prevented, life went from %d to %d", startingLife, gs.Players[1].Life)
	}
}

func TestAssignDamageAsUnblockedReachesPlayerWhenBlocked(t *testing.T) {
	p0, p1 := &ScriptedController{}, &ScriptedController{}
	d := newTestDuel(nil, nil, p0, p1)
	gs := d.State
	gs.ActivePlayer = 0

	attacker := gs.CreateCardInstance(&Card{Name: "Onslaught Attacker", CardType: CardTypeCreature, Power: 5, Toughness: 5}, 0, ZoneBattlefield)
	attacker.AssignDamageAsUnblocked = true
	blocker := gs.CreateCardInstance(&Card{Name: "Onslaught Blocker", CardType: CardTypeCreature, Power: 2, Toughness: 2}, 1, ZoneBattlefield)
	gs.Battlefield = append(gs.Battlefield, attacker, blocker)

	startingLife := gs.Players[1].Life

	gs.Phase, gs.Step = PhaseCombat, StepBeginCombat
	if err := d.executeDeclareAttackers(0, []int{attacker.ID}); err != nil {
		t.Fatalf("declare attackers: %v", err)
	}
	if err := d.executeDeclareBlockers(1, map[int][]int{attacker.ID: {blocker.ID}}); err != nil {
		t.Fatalf("declare blockers: %v", err)
	}

	if gs.Players[1].Life != startingLife-5 {
		t.Fatalf("defending player should take the full 5 damage despite the block, got life %d (started %d)", gs.Players[1].Life, startingLife)
	}
	if blocker.DamageMarked != 0 {
		t.Fatal("the blocker itself should take no damage from an assign-as-unblocked attacker")
	}
}
