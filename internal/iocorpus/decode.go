package iocorpus

import (
	"github.com/gnames/gnpokedex/pkg/corpus"
)

// columns lists required columns of every table. Other columns are
// ignored.
var columns = map[string][]string{
	corpus.SpeciesTable: {
		"id", "identifier", "evolves_from_species_id", "evolution_chain_id",
	},
	corpus.PokemonTable:      {"id", "identifier", "species_id"},
	corpus.PokemonTypesTable: {"pokemon_id", "type_id", "slot"},
	corpus.TypesTable:        {"id", "identifier"},
	corpus.PokemonStatsTable: {"pokemon_id", "stat_id", "base_stat"},
	corpus.SpeciesNamesTable: {"pokemon_species_id", "local_language_id", "name"},
	corpus.FlavorTextTable: {
		"species_id", "version_id", "language_id", "flavor_text",
	},
	corpus.VersionsTable:      {"id", "identifier"},
	corpus.LanguagesTable:     {"id", "iso639", "identifier", "official", "order"},
	corpus.LanguageNamesTable: {"language_id", "local_language_id", "name"},
	corpus.TypeNamesTable:     {"type_id", "local_language_id", "name"},
	corpus.VersionNamesTable:  {"version_id", "local_language_id", "name"},
}

func decodeSpecies(r *record) (corpus.Species, error) {
	var res corpus.Species
	id, err := r.int("id")
	if err != nil {
		return res, err
	}
	parent, err := r.nullInt("evolves_from_species_id")
	if err != nil {
		return res, err
	}
	chain, err := r.optInt("evolution_chain_id")
	if err != nil {
		return res, err
	}
	res = corpus.Species{
		ID:                   id,
		Identifier:           r.str("identifier"),
		EvolvesFromSpeciesID: parent,
		EvolutionChainID:     chain,
	}
	return res, nil
}

func decodePokemon(r *record) (corpus.Pokemon, error) {
	ids, err := r.ints("id", "species_id")
	if err != nil {
		return corpus.Pokemon{}, err
	}
	return corpus.Pokemon{
		ID:         ids[0],
		Identifier: r.str("identifier"),
		SpeciesID:  ids[1],
	}, nil
}

func decodePokemonType(r *record) (corpus.PokemonType, error) {
	ids, err := r.ints("pokemon_id", "type_id")
	if err != nil {
		return corpus.PokemonType{}, err
	}
	slot, err := r.optInt("slot")
	if err != nil {
		return corpus.PokemonType{}, err
	}
	return corpus.PokemonType{PokemonID: ids[0], TypeID: ids[1], Slot: slot}, nil
}

func decodeType(r *record) (corpus.Type, error) {
	id, err := r.int("id")
	if err != nil {
		return corpus.Type{}, err
	}
	return corpus.Type{ID: id, Identifier: r.str("identifier")}, nil
}

func decodePokemonStat(r *record) (corpus.PokemonStat, error) {
	vals, err := r.ints("pokemon_id", "stat_id", "base_stat")
	if err != nil {
		return corpus.PokemonStat{}, err
	}
	return corpus.PokemonStat{
		PokemonID: vals[0],
		StatID:    vals[1],
		BaseStat:  vals[2],
	}, nil
}

func decodeSpeciesName(r *record) (corpus.SpeciesName, error) {
	ids, err := r.ints("pokemon_species_id", "local_language_id")
	if err != nil {
		return corpus.SpeciesName{}, err
	}
	return corpus.SpeciesName{
		SpeciesID:  ids[0],
		LanguageID: ids[1],
		Name:       r.str("name"),
		Genus:      r.str("genus"),
	}, nil
}

func decodeFlavorText(r *record) (corpus.FlavorText, error) {
	ids, err := r.ints("species_id", "version_id", "language_id")
	if err != nil {
		return corpus.FlavorText{}, err
	}
	return corpus.FlavorText{
		SpeciesID:  ids[0],
		VersionID:  ids[1],
		LanguageID: ids[2],
		Text:       r.text("flavor_text"),
	}, nil
}

func decodeVersion(r *record) (corpus.Version, error) {
	id, err := r.int("id")
	if err != nil {
		return corpus.Version{}, err
	}
	return corpus.Version{ID: id, Identifier: r.str("identifier")}, nil
}

func decodeLanguage(r *record) (corpus.Language, error) {
	var res corpus.Language
	id, err := r.int("id")
	if err != nil {
		return res, err
	}
	official, err := r.bool("official")
	if err != nil {
		return res, err
	}
	order, err := r.optInt("order")
	if err != nil {
		return res, err
	}
	res = corpus.Language{
		ID:         id,
		ISO639:     r.str("iso639"),
		Identifier: r.str("identifier"),
		Official:   official,
		Order:      order,
	}
	return res, nil
}

func decodeLanguageName(r *record) (corpus.LanguageName, error) {
	ids, err := r.ints("language_id", "local_language_id")
	if err != nil {
		return corpus.LanguageName{}, err
	}
	return corpus.LanguageName{
		LanguageID:      ids[0],
		LocalLanguageID: ids[1],
		Name:            r.str("name"),
	}, nil
}

func decodeTypeName(r *record) (corpus.TypeName, error) {
	ids, err := r.ints("type_id", "local_language_id")
	if err != nil {
		return corpus.TypeName{}, err
	}
	return corpus.TypeName{TypeID: ids[0], LanguageID: ids[1], Name: r.str("name")}, nil
}

func decodeVersionName(r *record) (corpus.VersionName, error) {
	ids, err := r.ints("version_id", "local_language_id")
	if err != nil {
		return corpus.VersionName{}, err
	}
	return corpus.VersionName{
		VersionID:  ids[0],
		LanguageID: ids[1],
		Name:       r.str("name"),
	}, nil
}
