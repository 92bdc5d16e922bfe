// Package iotesting provides shared test utilities: a small synthetic
// corpus and a matching configuration.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"github.com/gnames/gnpokedex/pkg/config"
	"github.com/gnames/gnpokedex/pkg/corpus"
)

// Language ids of the synthetic corpus.
const (
	Japanese = 1
	French   = 5
	German   = 6
	English  = 9
	Klingon  = 10
)

// Species of the synthetic corpus:
//
//	1 -> 2 -> 3          chain 1, Bulbasaur line
//	10 -> {20, 11}       chain 5, 20 precedes 11 in corpus order
//	132                  chain 66, single node
//	151                  no chain
//	40, 41               chain 9, two roots
//	50                   form 50 misses the speed stat
//	60                   no forms
//	70 -> 71             chain 12, 71 has no forms
//	80; 81 -> 82         chain 13, 81 and 82 are unreachable from root 80
func Tables() *corpus.Tables {
	return &corpus.Tables{
		Species: []corpus.Species{
			{ID: 1, Identifier: "bulbasaur", EvolutionChainID: 1},
			{ID: 2, Identifier: "ivysaur", EvolvesFromSpeciesID: ptr(1), EvolutionChainID: 1},
			{ID: 3, Identifier: "venusaur", EvolvesFromSpeciesID: ptr(2), EvolutionChainID: 1},
			{ID: 10, Identifier: "tenmon", EvolutionChainID: 5},
			{ID: 20, Identifier: "twentymon", EvolvesFromSpeciesID: ptr(10), EvolutionChainID: 5},
			{ID: 11, Identifier: "elevenmon", EvolvesFromSpeciesID: ptr(10), EvolutionChainID: 5},
			{ID: 132, Identifier: "ditto", EvolutionChainID: 66},
			{ID: 151, Identifier: "mew"},
			{ID: 40, Identifier: "rootmon-a", EvolutionChainID: 9},
			{ID: 41, Identifier: "rootmon-b", EvolutionChainID: 9},
			{ID: 50, Identifier: "glitchmon"},
			{ID: 60, Identifier: "formless"},
			{ID: 70, Identifier: "shellmon", EvolutionChainID: 12},
			{ID: 71, Identifier: "ghostmon", EvolvesFromSpeciesID: ptr(70), EvolutionChainID: 12},
			{ID: 80, Identifier: "lonemon", EvolutionChainID: 13},
			{ID: 81, Identifier: "strandedmon", EvolvesFromSpeciesID: ptr(999), EvolutionChainID: 13},
			{ID: 82, Identifier: "driftmon", EvolvesFromSpeciesID: ptr(81), EvolutionChainID: 13},
		},
		Pokemon: []corpus.Pokemon{
			{ID: 1, Identifier: "bulbasaur", SpeciesID: 1},
			{ID: 2, Identifier: "ivysaur", SpeciesID: 2},
			{ID: 3, Identifier: "venusaur", SpeciesID: 3},
			{ID: 10033, Identifier: "venusaur-mega", SpeciesID: 3},
			{ID: 10195, Identifier: "venusaur-gmax", SpeciesID: 3},
			{ID: 10, Identifier: "tenmon", SpeciesID: 10},
			{ID: 11, Identifier: "elevenmon", SpeciesID: 11},
			{ID: 20, Identifier: "twentymon", SpeciesID: 20},
			{ID: 132, Identifier: "ditto", SpeciesID: 132},
			{ID: 151, Identifier: "mew", SpeciesID: 151},
			{ID: 40, Identifier: "rootmon-a", SpeciesID: 40},
			{ID: 41, Identifier: "rootmon-b", SpeciesID: 41},
			{ID: 50, Identifier: "glitchmon", SpeciesID: 50},
			{ID: 70, Identifier: "shellmon", SpeciesID: 70},
			{ID: 80, Identifier: "lonemon", SpeciesID: 80},
			{ID: 81, Identifier: "strandedmon", SpeciesID: 81},
			{ID: 82, Identifier: "driftmon", SpeciesID: 82},
		},
		PokemonTypes: append([]corpus.PokemonType{
			{PokemonID: 1, TypeID: 12, Slot: 1},
			{PokemonID: 1, TypeID: 4, Slot: 2},
			{PokemonID: 2, TypeID: 12, Slot: 1},
			{PokemonID: 2, TypeID: 4, Slot: 2},
			{PokemonID: 3, TypeID: 12, Slot: 1},
			{PokemonID: 3, TypeID: 4, Slot: 2},
			{PokemonID: 10033, TypeID: 12, Slot: 1},
			{PokemonID: 10033, TypeID: 4, Slot: 2},
			{PokemonID: 10195, TypeID: 12, Slot: 1},
			{PokemonID: 10195, TypeID: 4, Slot: 2},
			{PokemonID: 50, TypeID: 999, Slot: 1},
			{PokemonID: 50, TypeID: 1, Slot: 2},
		}, normalTypes(10, 11, 20, 132, 151, 40, 41, 70, 80, 81, 82)...),
		Types: []corpus.Type{
			{ID: 1, Identifier: "normal"},
			{ID: 4, Identifier: "poison"},
			{ID: 12, Identifier: "grass"},
		},
		PokemonStats: append(
			append(
				stats(1, 45, 49, 49, 65, 65, 45),
				stats(3, 80, 82, 83, 100, 100, 80)...,
			),
			append(
				stats(50, 1, 2, 3, 4, 5, 6)[:5],
				flatStats(2, 2, 10033, 10195, 10, 11, 20, 132, 151, 40, 41, 70, 80, 81, 82)...,
			)...,
		),
		SpeciesNames: []corpus.SpeciesName{
			{SpeciesID: 1, LanguageID: English, Name: "Bulbasaur", Genus: "Seed Pokémon"},
			{SpeciesID: 1, LanguageID: French, Name: "Bulbizarre", Genus: "Pokémon Graine"},
			{SpeciesID: 1, LanguageID: Japanese, Name: "フシギダネ"},
			{SpeciesID: 2, LanguageID: English, Name: "Ivysaur"},
			{SpeciesID: 2, LanguageID: French, Name: "Herbizarre"},
			{SpeciesID: 3, LanguageID: English, Name: "Venusaur"},
			{SpeciesID: 3, LanguageID: French, Name: "Florizarre"},
			{SpeciesID: 10, LanguageID: English, Name: "Tenmon"},
			{SpeciesID: 11, LanguageID: English, Name: "Elevenmon"},
			{SpeciesID: 20, LanguageID: English, Name: "Twentymon"},
			{SpeciesID: 20, LanguageID: German, Name: "Doppel"},
			{SpeciesID: 11, LanguageID: German, Name: "Doppel"},
			{SpeciesID: 132, LanguageID: English, Name: "Ditto"},
			{SpeciesID: 132, LanguageID: French, Name: "Métamorph"},
		},
		FlavorTexts: []corpus.FlavorText{
			{SpeciesID: 1, VersionID: 1, LanguageID: English,
				Text: "A strange seed was\nplanted on its\fback at birth."},
			{SpeciesID: 1, VersionID: 2, LanguageID: English,
				Text: "It can go for days\r\nwithout eating a single morsel."},
			{SpeciesID: 1, VersionID: 1, LanguageID: French,
				Text: "Au matin de sa vie,\nla graine sur son dos."},
			{SpeciesID: 132, VersionID: 1, LanguageID: English, Text: "Text A"},
			{SpeciesID: 132, VersionID: 1, LanguageID: English, Text: "Text B"},
			{SpeciesID: 132, VersionID: 2, LanguageID: English, Text: "Text C"},
			{SpeciesID: 151, VersionID: 99, LanguageID: English, Text: "Lost text"},
			{SpeciesID: 151, VersionID: 3, LanguageID: English, Text: "  So rare.\n"},
		},
		Versions: []corpus.Version{
			{ID: 1, Identifier: "red"},
			{ID: 2, Identifier: "blue"},
			{ID: 3, Identifier: "yellow"},
		},
		Languages: []corpus.Language{
			{ID: English, ISO639: "en", Identifier: "en", Official: true, Order: 7},
			{ID: Japanese, ISO639: "ja", Identifier: "ja-Hrkt", Official: true, Order: 1},
			{ID: French, ISO639: "fr", Identifier: "fr", Official: true, Order: 5},
			{ID: German, ISO639: "de", Identifier: "de", Official: true, Order: 6},
			{ID: Klingon, ISO639: "tlh", Identifier: "tlh", Official: false, Order: 2},
		},
		LanguageNames: []corpus.LanguageName{
			{LanguageID: English, LocalLanguageID: English, Name: "English"},
			{LanguageID: French, LocalLanguageID: French, Name: "Français"},
			{LanguageID: French, LocalLanguageID: English, Name: "French"},
			{LanguageID: Japanese, LocalLanguageID: English, Name: "Japanese"},
		},
		TypeNames: []corpus.TypeName{
			{TypeID: 12, LanguageID: English, Name: "Grass"},
			{TypeID: 12, LanguageID: French, Name: "Plante"},
			{TypeID: 4, LanguageID: English, Name: "Poison"},
		},
		VersionNames: []corpus.VersionName{
			{VersionID: 1, LanguageID: English, Name: "Red"},
			{VersionID: 2, LanguageID: English, Name: "Blue"},
		},
	}
}

// Config returns a configuration with short asset paths, suitable for
// comparing card fields in tests.
func Config() *config.Config {
	cfg := config.New()
	opts := []config.Option{
		config.OptAssetsSpritesDir("sprites"),
		config.OptAssetsCriesDir("cries"),
		config.OptCacheSize(16),
	}
	cfg.Update(opts)
	return cfg
}

func ptr(i int) *int {
	return &i
}

func normalTypes(ids ...int) []corpus.PokemonType {
	res := make([]corpus.PokemonType, len(ids))
	for i, id := range ids {
		res[i] = corpus.PokemonType{PokemonID: id, TypeID: 1, Slot: 1}
	}
	return res
}

func stats(formID int, vals ...int) []corpus.PokemonStat {
	res := make([]corpus.PokemonStat, len(vals))
	for i, v := range vals {
		res[i] = corpus.PokemonStat{PokemonID: formID, StatID: i + 1, BaseStat: v}
	}
	return res
}

func flatStats(val int, formIDs ...int) []corpus.PokemonStat {
	var res []corpus.PokemonStat
	for _, id := range formIDs {
		res = append(res, stats(id, val, val, val, val, val, val)...)
	}
	return res
}
