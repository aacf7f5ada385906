package game

import "fmt"

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Plains":   Plains,
	"Island":   Island,
	"Swamp":    Swamp,
	"Mountain": Mountain,
	"Forest":   Forest,

	"Grass-Waves Hierophant":   GrassWavesHierophant,
	"Skybreak Wyvern":          SkybreakWyvern,
	"Graveclaw Reaper":         GraveclawReaper,
	"Emberclaw Berserker":      EmberclawBerserker,
	"Thornback Charger":        ThornbackCharger,
	"Sunpledge Cavalier":       SunpledgeCavalier,
	"Duskbloom Assassin":       DuskbloomAssassin,
	"Tidewalker Leviathan":     TidewalkerLeviathan,
	"Greenwarden Colossus":     GreenwardenColossus,
	"Mossgate Warden":          MossgateWarden,
	"Rivenshade Infiltrator":   RivenshadeInfiltrator,
	"Hallowed Physician":       HallowedPhysician,
	"Emberwatch Sentinel":      EmberwatchSentinel,
	"Cinderveil Oracle":        CinderveilOracle,
	"Warden of the Verdant Hall": WardenOfTheVerdantHall,

	"Arcane Catalyst": ArcaneCatalyst,
	"Ironbound Golem": IronboundGolem,

	"Gilded Warblade":  GildedWarblade,
	"Binding Tendrils": BindingTendrils,
	"Radiant Blessing": RadiantBlessing,

	"Scorching Bolt":   ScorchingBolt,
	"Wavebreak Counter": WavebreakCounter,
	"Tidal Recall":     TidalRecall,
	"Vital Surge":      VitalSurge,

	"Archive Dredge":      ArchiveDredge,
	"Ravaging Blast":      RavagingBlast,
	"Unyielding Crusade":  UnyieldingCrusade,
	"Incited Riot":        IncitedRiot,
	"Time Stitcher":       TimeStitcher,

	"Skitterling Swarm":  SkitterlingSwarm,
	"Verdant Search":     VerdantSearch,
	"Tidereader's Scry":  TidereadersScry,
	"Banish Beyond":      BanishBeyond,
	"Mind Shatter":       MindShatter,

	"Fog of the Hollow":  FogOfTheHollow,
	"Reckless Onslaught": RecklessOnslaught,
}

// LookupCard looks up a card by name and returns a new instance.
// Panics if the card is not found.
func LookupCard(name string) *Card {
	ctor, ok := CardRegistry[name]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", name))
	}
	return ctor()
}
