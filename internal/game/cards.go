package game

import (
	"github.com/google/uuid"

	"github.com/arcanum-dev/arcanum-engine/internal/log"
)

// --- Basic lands ---

func basicLand(name string, produces Mana) func() *Card {
	return func() *Card {
		return &Card{Name: name, CardType: CardTypeLand, LandProduces: produces}
	}
}

var (
	Plains   = basicLand("Plains", Mana{W: 1})
	Island   = basicLand("Island", Mana{U: 1})
	Swamp    = basicLand("Swamp", Mana{B: 1})
	Mountain = basicLand("Mountain", Mana{R: 1})
	Forest   = basicLand("Forest", Mana{G: 1})
)

// anyTarget, anyCreature, opposingCreature and ownCreature adapt the
// package-level hexproof check to the TargetGroup.Selector signature,
// which additionally carries *Duel.
func anyTarget(d *Duel, controller int, ci *CardInstance) bool {
	return notHexproofForOpponents(controller, ci)
}

func anyCreature(d *Duel, controller int, ci *CardInstance) bool {
	return ci.Card.CardType == CardTypeCreature && notHexproofForOpponents(controller, ci)
}

func opposingCreature(d *Duel, controller int, ci *CardInstance) bool {
	return ci.Card.CardType == CardTypeCreature && ci.Controller != controller && notHexproofForOpponents(controller, ci)
}

func ownCreature(d *Duel, controller int, ci *CardInstance) bool {
	return ci.Card.CardType == CardTypeCreature && ci.Controller == controller && notHexproofForOpponents(controller, ci)
}

// insectToken is the template for the 1/1 Insect tokens Skitterling Swarm
// mints; tokens share a template but each gets its own instance identity.
func insectToken() *Card {
	return &Card{
		Name: "Insect", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Insect"}, Colors: []Color{ColorGreen},
		Power: 1, Toughness: 1,
	}
}

// createToken mints a fresh token permanent onto the battlefield under
// controller's control, stamped with an identity independent of the
// duel's monotonic instance counter.
func (d *Duel) createToken(controller int, tmpl *Card) *CardInstance {
	gs := d.State
	ci := gs.CreateCardInstance(tmpl, controller, ZoneBattlefield)
	ci.IsToken = true
	ci.TokenUUID = uuid.NewString()
	ci.EnteredThisTurn = true
	ci.SummoningSick = true
	gs.Battlefield = append(gs.Battlefield, ci)
	d.log(log.NewCreateTokenEvent(gs.Turn, gs.Phase.String(), controller, tmpl.Name))
	d.collectTriggers(log.GameEvent{Type: log.EventCreateToken, Card: tmpl.Name, Player: controller})
	return ci
}

// --- Creatures ---

// GrassWavesHierophant — 2G Creature 2/3. Whenever Grass-Waves Hierophant
// enters the battlefield, you gain 2 life.
func GrassWavesHierophant() *Card {
	return &Card{
		Name: "Grass-Waves Hierophant", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Human", "Druid"}, Cost: ManaCost{Generic: 2, G: 1},
		Power: 2, Toughness: 3,
		Effects: []*CardEffect{{
			Name: "Grass-Waves Hierophant ETB", EffectType: EffectTriggered,
			TriggerKind: TriggerETB,
			TriggerFilter: func(d *Duel, card *CardInstance, e log.GameEvent) bool {
				return e.Type == log.EventPermanentEntersBattlefield && e.Card == card.Card.Name
			},
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				d.gainLife(player, 2)
				return nil
			},
		}},
	}
}

// SkybreakWyvern — 3U Creature 3/3 Flying.
func SkybreakWyvern() *Card {
	return &Card{
		Name: "Skybreak Wyvern", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Wyvern"}, Cost: ManaCost{Generic: 3, U: 1},
		Power: 3, Toughness: 3, Keywords: KeywordFlying,
	}
}

// GraveclawReaper — 2BB Creature 4/3 Deathtouch. Whenever Graveclaw Reaper
// deals combat damage to a player, that player discards a card.
func GraveclawReaper() *Card {
	return &Card{
		Name: "Graveclaw Reaper", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Zombie", "Warrior"}, Cost: ManaCost{Generic: 2, B: 2},
		Power: 4, Toughness: 3, Keywords: KeywordDeathtouch,
		Effects: []*CardEffect{{
			Name: "Graveclaw Reaper trigger", EffectType: EffectTriggered,
			TriggerKind: TriggerCombatDamageToPlayer,
			TriggerFilter: func(d *Duel, card *CardInstance, e log.GameEvent) bool {
				return e.Type == log.EventCombatDamageToPlayer && e.Card == card.Card.Name
			},
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				gs := d.State
				opp := gs.Opponent(player)
				p := gs.Players[opp]
				if len(p.Hand) == 0 {
					return nil
				}
				discard := p.Hand[len(p.Hand)-1]
				p.RemoveFromHand(discard)
				p.SendToGraveyard(discard)
				d.log(log.NewDiscardEvent(gs.Turn, gs.Phase.String(), opp, discard.Card.Name))
				return nil
			},
		}},
	}
}

// EmberclawBerserker — 1R Creature 3/1 Haste.
func EmberclawBerserker() *Card {
	return &Card{
		Name: "Emberclaw Berserker", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Goblin", "Berserker"}, Cost: ManaCost{Generic: 1, R: 1},
		Power: 3, Toughness: 1, Keywords: KeywordHaste,
	}
}

// ThornbackCharger — 2R Creature 4/3 Trample.
func ThornbackCharger() *Card {
	return &Card{
		Name: "Thornback Charger", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Boar"}, Cost: ManaCost{Generic: 2, R: 1},
		Power: 4, Toughness: 3, Keywords: KeywordTrample,
	}
}

// SunpledgeCavalier — 1WW Creature 2/4 First Strike, Vigilance.
func SunpledgeCavalier() *Card {
	return &Card{
		Name: "Sunpledge Cavalier", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Human", "Knight"}, Cost: ManaCost{Generic: 1, W: 2},
		Power: 2, Toughness: 4, Keywords: KeywordFirstStrike | KeywordVigilance,
	}
}

// DuskbloomAssassin — 2B Creature 2/2 Double Strike, Deathtouch.
func DuskbloomAssassin() *Card {
	return &Card{
		Name: "Duskbloom Assassin", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Human", "Assassin"}, Cost: ManaCost{Generic: 2, B: 1},
		Power: 2, Toughness: 2, Keywords: KeywordDoubleStrike | KeywordDeathtouch,
	}
}

// TidewalkerLeviathan — 4UU Creature 6/6 Hexproof.
func TidewalkerLeviathan() *Card {
	return &Card{
		Name: "Tidewalker Leviathan", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Leviathan"}, Cost: ManaCost{Generic: 4, U: 2},
		Power: 6, Toughness: 6, Keywords: KeywordHexproof,
	}
}

// GreenwardenColossus — 4G Creature 5/5 Reach, Indestructible.
func GreenwardenColossus() *Card {
	return &Card{
		Name: "Greenwarden Colossus", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Elemental"}, Cost: ManaCost{Generic: 4, G: 1},
		Power: 5, Toughness: 5, Keywords: KeywordReach | KeywordIndestructible,
	}
}

// MossgateWarden — 1G Creature 1/4 Defender.
func MossgateWarden() *Card {
	return &Card{
		Name: "Mossgate Warden", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Treefolk"}, Cost: ManaCost{Generic: 1, G: 1},
		Power: 1, Toughness: 4, Keywords: KeywordDefender,
	}
}

// RivenshadeInfiltrator — 1B Creature 2/2 Menace.
func RivenshadeInfiltrator() *Card {
	return &Card{
		Name: "Rivenshade Infiltrator", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Human", "Rogue"}, Cost: ManaCost{Generic: 1, B: 1},
		Power: 2, Toughness: 2, Keywords: KeywordMenace,
	}
}

// HallowedPhysician — 1W Creature 2/2 Lifelink.
func HallowedPhysician() *Card {
	return &Card{
		Name: "Hallowed Physician", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Human", "Cleric"}, Cost: ManaCost{Generic: 1, W: 1},
		Power: 2, Toughness: 2, Keywords: KeywordLifelink,
	}
}

// EmberwatchSentinel — 3R Creature 3/2. Whenever Emberwatch Sentinel
// attacks, it deals 1 damage to the defending player.
func EmberwatchSentinel() *Card {
	return &Card{
		Name: "Emberwatch Sentinel", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Human", "Soldier"}, Cost: ManaCost{Generic: 3, R: 1},
		Power: 3, Toughness: 2,
		Effects: []*CardEffect{{
			Name: "Emberwatch Sentinel trigger", EffectType: EffectTriggered,
			TriggerKind: TriggerAttacks,
			TriggerFilter: func(d *Duel, card *CardInstance, e log.GameEvent) bool {
				return e.Type == log.EventDeclareAttackers && e.Card == card.Card.Name
			},
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				d.dealDamageToPlayer(card, d.State.Opponent(player), 1)
				return nil
			},
		}},
	}
}

// CinderveilOracle — 2B Creature 2/2. When Cinderveil Oracle dies, each
// opponent loses 2 life.
func CinderveilOracle() *Card {
	return &Card{
		Name: "Cinderveil Oracle", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Spirit", "Shaman"}, Cost: ManaCost{Generic: 2, B: 1},
		Power: 2, Toughness: 2,
		Effects: []*CardEffect{{
			Name: "Cinderveil Oracle death trigger", EffectType: EffectTriggered,
			TriggerKind: TriggerDies,
			TriggerFilter: func(d *Duel, card *CardInstance, e log.GameEvent) bool {
				return e.Type == log.EventPermanentLeavesBattlefield && e.Card == card.Card.Name
			},
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				d.loseLife(d.State.Opponent(player), 2, "Cinderveil Oracle's death trigger")
				return nil
			},
		}},
	}
}

// WardenOfTheVerdantHall — 3GG Creature 4/4. Other creatures you control
// get +1/+1.
func WardenOfTheVerdantHall() *Card {
	return &Card{
		Name: "Warden of the Verdant Hall", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Treefolk", "Druid"}, Cost: ManaCost{Generic: 3, G: 2},
		Power: 4, Toughness: 4,
		Effects: []*CardEffect{{
			Name: "Warden of the Verdant Hall lord", EffectType: EffectStatic,
			StaticApply: func(d *Duel, source *CardInstance, player int) {
				for _, ci := range d.State.Battlefield {
					if ci.ID == source.ID || ci.Controller != player || ci.Card.CardType != CardTypeCreature {
						continue
					}
					ci.AddModifier(StatModifier{Source: source.ID, PowerMod: 1, ToughnessMod: 1, Static: true})
				}
			},
		}},
	}
}

// --- Artifacts ---

// ArcaneCatalyst — 2 Artifact. T: Add one colorless mana.
func ArcaneCatalyst() *Card {
	return &Card{
		Name: "Arcane Catalyst", CardType: CardTypeArtifact,
		Subtypes: []Subtype{"Relic"}, Cost: ManaCost{Generic: 2},
		Effects: []*CardEffect{{
			Name: "Arcane Catalyst mana ability", EffectType: EffectManaAbility,
			Timing: TimingInstantSpeed,
			CanActivate: func(d *Duel, card *CardInstance, player int) bool {
				return !card.Tapped
			},
			Cost: func(d *Duel, card *CardInstance, player int) (bool, error) {
				card.Tapped = true
				return true, nil
			},
			ManaProduced: func(d *Duel, card *CardInstance) Mana {
				return Mana{C: 1}
			},
		}},
	}
}

// IronboundGolem — 5 Artifact Creature 4/4. A card carries a single
// CardType, so it is typed as a creature.
func IronboundGolem() *Card {
	return &Card{
		Name: "Ironbound Golem", CardType: CardTypeCreature,
		Subtypes: []Subtype{"Golem"}, Cost: ManaCost{Generic: 5},
		Power: 4, Toughness: 4,
	}
}

// --- Equipment / Auras ---

// GildedWarblade — 2 Equipment. Equipped creature gets +2/+0. Equip 2.
func GildedWarblade() *Card {
	return &Card{
		Name: "Gilded Warblade", CardType: CardTypeArtifact,
		Subtypes: []Subtype{SubtypeEquipment}, Cost: ManaCost{Generic: 2},
		AttachSpec: func(d *Duel, host *CardInstance) bool {
			return host.Card.CardType == CardTypeCreature
		},
		Effects: []*CardEffect{
			{
				Name: "Gilded Warblade bonus", EffectType: EffectStatic,
				StaticApply: func(d *Duel, source *CardInstance, player int) {
					if source.AttachedTo == nil {
						return
					}
					source.AttachedTo.AddModifier(StatModifier{Source: source.ID, PowerMod: 2, Static: true})
				},
			},
			{
				Name: "Equip", EffectType: EffectActivated, Timing: TimingSorcerySpeed,
				TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: ownCreature}}},
				CanActivate: func(d *Duel, card *CardInstance, player int) bool {
					return card.Zone == ZoneBattlefield
				},
				Cost: func(d *Duel, card *CardInstance, player int) (bool, error) {
					cost := ManaCost{Generic: 2}
					pool := &d.State.Players[player].ManaPool
					if !canPayManaCost(*pool, cost) {
						return false, nil
					}
					payManaCost(pool, cost)
					return true, nil
				},
				Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
					if len(targets) != 1 {
						return nil
					}
					d.attachPermanent(card, targets[0])
					d.recomputeDerivedBattlefield()
					return nil
				},
			},
		},
	}
}

// BindingTendrils — 1G Aura. Enchant creature. Enchanted creature gets
// -2/-0 and loses flying.
func BindingTendrils() *Card {
	return &Card{
		Name: "Binding Tendrils", CardType: CardTypeEnchantment,
		Subtypes: []Subtype{SubtypeAura}, Cost: ManaCost{Generic: 1, G: 1},
		AttachSpec: func(d *Duel, host *CardInstance) bool {
			return host.Card.CardType == CardTypeCreature
		},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: anyCreature}}},
		Effects: []*CardEffect{{
			Name: "Binding Tendrils debuff", EffectType: EffectStatic,
			StaticApply: func(d *Duel, source *CardInstance, player int) {
				if source.AttachedTo == nil {
					return
				}
				source.AttachedTo.AddModifier(StatModifier{Source: source.ID, PowerMod: -2, RemoveKeywords: KeywordFlying, Static: true})
			},
		}},
	}
}

// RadiantBlessing — 2W Aura. Enchant creature you control. Enchanted
// creature gets +2/+2 and has lifelink.
func RadiantBlessing() *Card {
	return &Card{
		Name: "Radiant Blessing", CardType: CardTypeEnchantment,
		Subtypes: []Subtype{SubtypeAura}, Cost: ManaCost{Generic: 2, W: 1},
		AttachSpec: func(d *Duel, host *CardInstance) bool {
			return host.Card.CardType == CardTypeCreature
		},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: ownCreature}}},
		Effects: []*CardEffect{{
			Name: "Radiant Blessing buff", EffectType: EffectStatic,
			StaticApply: func(d *Duel, source *CardInstance, player int) {
				if source.AttachedTo == nil {
					return
				}
				source.AttachedTo.AddModifier(StatModifier{Source: source.ID, PowerMod: 2, ToughnessMod: 2, AddKeywords: KeywordLifelink, Static: true})
			},
		}},
	}
}

// --- Instants ---

// ScorchingBolt — R Instant. Deal 3 damage to any target.
func ScorchingBolt() *Card {
	return &Card{
		Name: "Scorching Bolt", CardType: CardTypeInstant, Cost: ManaCost{R: 1},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, AllowPlayers: true, Selector: anyTarget}}},
		SpellEffect: &CardEffect{
			Name: "Scorching Bolt", EffectType: EffectDealDamage,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) != 1 {
					return nil
				}
				t := targets[0]
				if t.Zone == ZoneBattlefield {
					d.dealDamageToPermanent(card, t, 3, false)
				}
				return nil
			},
		},
	}
}

// WavebreakCounter — 1UU Instant. Counter target spell.
func WavebreakCounter() *Card {
	return &Card{
		Name: "Wavebreak Counter", CardType: CardTypeInstant, Cost: ManaCost{Generic: 1, U: 2},
		SpellEffect: &CardEffect{
			Name: "Wavebreak Counter", EffectType: EffectCounterSpell,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				gs := d.State
				for i := len(gs.Stack) - 1; i >= 0; i-- {
					if gs.Stack[i].IsSpell {
						d.counterStackItem(gs.Stack[i])
						gs.Stack = append(gs.Stack[:i], gs.Stack[i+1:]...)
						break
					}
				}
				return nil
			},
		},
	}
}

// TidalRecall — 2U Instant. Return target creature to its owner's hand.
func TidalRecall() *Card {
	return &Card{
		Name: "Tidal Recall", CardType: CardTypeInstant, Cost: ManaCost{Generic: 2, U: 1},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: anyCreature}}},
		SpellEffect: &CardEffect{
			Name: "Tidal Recall", EffectType: EffectReturnToZone,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) != 1 || targets[0].Zone != ZoneBattlefield {
					return nil
				}
				t := targets[0]
				d.detachAllFrom(t)
				d.State.RemoveFromBattlefield(t)
				t.ID = d.State.NextID()
				t.Modifiers = nil
				t.DamageMarked = 0
				d.State.Players[t.Owner].AddToHand(t)
				d.log(log.NewReturnToHandEvent(d.State.Turn, d.State.Phase.String(), t.Owner, t.Card.Name))
				return nil
			},
		},
	}
}

// VitalSurge — G Instant. Flashback 2G. Target creature gets +3/+3 until
// end of turn.
func VitalSurge() *Card {
	flashback := ManaCost{Generic: 2, G: 1}
	return &Card{
		Name: "Vital Surge", CardType: CardTypeInstant, Cost: ManaCost{G: 1},
		FlashbackCost: &flashback,
		TargetSpec:    &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: anyCreature}}},
		SpellEffect: &CardEffect{
			Name: "Vital Surge", EffectType: EffectPTModify,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) != 1 {
					return nil
				}
				targets[0].AddModifier(StatModifier{Source: card.ID, PowerMod: 3, ToughnessMod: 3, Expiry: ExpiryEndOfTurn})
				return nil
			},
		},
	}
}

// --- Sorceries ---

// ArchiveDredge — 2U Sorcery. Draw 2 cards.
func ArchiveDredge() *Card {
	return &Card{
		Name: "Archive Dredge", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 2, U: 1},
		SpellEffect: &CardEffect{
			Name: "Archive Dredge", EffectType: EffectDrawCards,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				d.drawCardOrLose(player)
				d.drawCardOrLose(player)
				return nil
			},
		},
	}
}

// RavagingBlast — 3R Sorcery. Deal 4 damage to target creature.
func RavagingBlast() *Card {
	return &Card{
		Name: "Ravaging Blast", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 3, R: 1},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: anyCreature}}},
		SpellEffect: &CardEffect{
			Name: "Ravaging Blast", EffectType: EffectDealDamage,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) == 1 && targets[0].Zone == ZoneBattlefield {
					d.dealDamageToPermanent(card, targets[0], 4, false)
				}
				return nil
			},
		},
	}
}

// UnyieldingCrusade — 4WW Sorcery. Destroy target creature.
func UnyieldingCrusade() *Card {
	return &Card{
		Name: "Unyielding Crusade", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 4, W: 2},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: anyCreature}}},
		SpellEffect: &CardEffect{
			Name: "Unyielding Crusade", EffectType: EffectDestroy,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) == 1 && targets[0].Zone == ZoneBattlefield {
					d.destroyPermanent(targets[0], "destroyed by Unyielding Crusade")
				}
				return nil
			},
		},
	}
}

// IncitedRiot — 2R Sorcery. Target creature an opponent controls becomes
// goaded.
func IncitedRiot() *Card {
	return &Card{
		Name: "Incited Riot", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 2, R: 1},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: opposingCreature}}},
		SpellEffect: &CardEffect{
			Name: "Incited Riot", EffectType: EffectGoad,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) != 1 {
					return nil
				}
				t := targets[0]
				t.GoadedUntilTurn = d.State.Turn + 2
				t.GoadedBy = append(t.GoadedBy, player)
				return nil
			},
		},
	}
}

// TimeStitcher — 4UU Sorcery. Take an extra turn after this one.
func TimeStitcher() *Card {
	return &Card{
		Name: "Time Stitcher", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 4, U: 2},
		SpellEffect: &CardEffect{
			Name: "Time Stitcher", EffectType: EffectGrantExtraTurn,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				d.State.ExtraTurns = append(d.State.ExtraTurns, ExtraTurn{Player: player})
				d.log(log.NewExtraTurnGrantedEvent(d.State.Turn, d.State.Phase.String(), player))
				return nil
			},
		},
	}
}

// SkitterlingSwarm — 2G Sorcery. Create two 1/1 green Insect creature tokens.
func SkitterlingSwarm() *Card {
	return &Card{
		Name: "Skitterling Swarm", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 2, G: 1},
		SpellEffect: &CardEffect{
			Name: "Skitterling Swarm", EffectType: EffectCreateToken,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				d.createToken(player, insectToken())
				d.createToken(player, insectToken())
				return nil
			},
		},
	}
}

// VerdantSearch — 1G Sorcery. Search your library for a land card, reveal
// it, put it into your hand, then shuffle.
func VerdantSearch() *Card {
	return &Card{
		Name: "Verdant Search", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 1, G: 1},
		SpellEffect: &CardEffect{
			Name: "Verdant Search", EffectType: EffectSearchLibrary,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				gs := d.State
				var opts []TargetRef
				for _, ci := range gs.Players[player].Library {
					if ci.Card.CardType == CardTypeLand {
						opts = append(opts, TargetRef{InstanceID: ci.ID})
					}
				}
				if len(opts) == 0 {
					return nil
				}
				gs.Pending = &PendingDecision{
					Kind: DecisionChooseCards, Actor: player,
					Prompt: "Search your library for a land card",
					Options: opts, Min: 0, Max: 1,
					Continuation: &decisionContinuation{
						EffectSource: card, Controller: player,
						Resume: func(d *Duel, choice []int) error {
							gs := d.State
							p := gs.Players[player]
							for _, id := range choice {
								ci := gs.FindInLibrary(player, id)
								if ci == nil {
									continue
								}
								p.Library = removeInstance(p.Library, ci)
								p.AddToHand(ci)
								d.log(log.NewAddToHandEvent(gs.Turn, gs.Phase.String(), player, ci.Card.Name, "found by Verdant Search"))
								break
							}
							p.ShuffleDeck(gs.RNG())
							d.log(log.NewShuffleEvent(gs.Turn, gs.Phase.String(), player))
							return nil
						},
					},
				}
				return nil
			},
		},
	}
}

// TidereadersScry — U Instant. Scry 2: look at the top two cards of your
// library, then put any number of them on the bottom in any order.
func TidereadersScry() *Card {
	return &Card{
		Name: "Tidereader's Scry", CardType: CardTypeInstant, Cost: ManaCost{U: 1},
		SpellEffect: &CardEffect{
			Name: "Tidereader's Scry", EffectType: EffectScry,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				gs := d.State
				lib := gs.Players[player].Library
				n := 2
				if len(lib) < n {
					n = len(lib)
				}
				if n == 0 {
					return nil
				}
				top := lib[len(lib)-n:]
				var opts []TargetRef
				for _, ci := range top {
					opts = append(opts, TargetRef{InstanceID: ci.ID})
				}
				gs.Pending = &PendingDecision{
					Kind: DecisionChooseCards, Actor: player,
					Prompt: "Scry 2: choose cards to put on the bottom of your library",
					Options: opts, Min: 0, Max: n,
					Continuation: &decisionContinuation{
						EffectSource: card, Controller: player,
						Resume: func(d *Duel, choice []int) error {
							gs := d.State
							p := gs.Players[player]
							for _, id := range choice {
								ci := gs.FindInLibrary(player, id)
								if ci == nil {
									continue
								}
								p.Library = removeInstance(p.Library, ci)
								p.Library = append([]*CardInstance{ci}, p.Library...)
							}
							return nil
						},
					},
				}
				return nil
			},
		},
	}
}

// BanishBeyond — 2W Instant. Exile target creature.
func BanishBeyond() *Card {
	return &Card{
		Name: "Banish Beyond", CardType: CardTypeInstant, Cost: ManaCost{Generic: 2, W: 1},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: anyCreature}}},
		SpellEffect: &CardEffect{
			Name: "Banish Beyond", EffectType: EffectExile,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) != 1 || targets[0].Zone != ZoneBattlefield {
					return nil
				}
				d.exilePermanent(targets[0], "exiled by Banish Beyond")
				return nil
			},
		},
	}
}

// MindShatter — 1B Sorcery. Target opponent discards a card of their
// choice.
func MindShatter() *Card {
	return &Card{
		Name: "Mind Shatter", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 1, B: 1},
		SpellEffect: &CardEffect{
			Name: "Mind Shatter", EffectType: EffectDiscardCards,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				gs := d.State
				opp := gs.Opponent(player)
				hand := gs.Players[opp].Hand
				if len(hand) == 0 {
					return nil
				}
				var opts []TargetRef
				for _, ci := range hand {
					opts = append(opts, TargetRef{InstanceID: ci.ID})
				}
				gs.Pending = &PendingDecision{
					Kind: DecisionChooseCards, Actor: opp,
					Prompt: "Mind Shatter: choose a card to discard",
					Options: opts, Min: 1, Max: 1,
					Continuation: &decisionContinuation{
						EffectSource: card, Controller: player,
						Resume: func(d *Duel, choice []int) error {
							gs := d.State
							p := gs.Players[opp]
							for _, id := range choice {
								ci := gs.FindInHand(opp, id)
								if ci == nil {
									continue
								}
								p.RemoveFromHand(ci)
								p.SendToGraveyard(ci)
								d.log(log.NewDiscardEvent(gs.Turn, gs.Phase.String(), opp, ci.Card.Name))
								break
							}
							return nil
						},
					},
				}
				return nil
			},
		},
	}
}

// FogOfTheHollow — 1G Instant. Prevent all combat damage that would be
// dealt this turn.
func FogOfTheHollow() *Card {
	return &Card{
		Name: "Fog of the Hollow", CardType: CardTypeInstant, Cost: ManaCost{Generic: 1, G: 1},
		SpellEffect: &CardEffect{
			Name: "Fog of the Hollow", EffectType: EffectPreventCombatDamage,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				d.State.CombatDamagePrevented = true
				return nil
			},
		},
	}
}

// RecklessOnslaught — 2R Sorcery. Target creature you control assigns its
// combat damage this turn as though it weren't blocked.
func RecklessOnslaught() *Card {
	return &Card{
		Name: "Reckless Onslaught", CardType: CardTypeSorcery, Cost: ManaCost{Generic: 2, R: 1},
		TargetSpec: &TargetSpec{Groups: []TargetGroup{{Min: 1, Max: 1, Selector: ownCreature}}},
		SpellEffect: &CardEffect{
			Name: "Reckless Onslaught", EffectType: EffectAssignDamageAsUnblocked,
			Resolve: func(d *Duel, card *CardInstance, player int, targets []*CardInstance) error {
				if len(targets) != 1 || targets[0].Zone != ZoneBattlefield {
					return nil
				}
				targets[0].AssignDamageAsUnblocked = true
				return nil
			},
		},
	}
}
