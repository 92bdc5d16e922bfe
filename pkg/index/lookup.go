package index

import (
	"slices"

	"github.com/gnames/gnpokedex/pkg/corpus"
)

// Species returns a species by its dex number.
func (idx *Index) Species(id int) (*corpus.Species, bool) {
	sp, ok := idx.species[id]
	return sp, ok
}

// SpeciesByName finds a species by its identifier, case-insensitively.
func (idx *Index) SpeciesByName(name string) (int, bool) {
	id, ok := idx.speciesByName[Normalize(name)]
	return id, ok
}

// SpeciesByLocalName finds a species by a localized name in any
// language. When several species share the name, the lowest id wins.
func (idx *Index) SpeciesByLocalName(name string) (int, bool) {
	id, ok := idx.speciesByLocal[Normalize(name)]
	return id, ok
}

// ChainMembers returns ids of species of an evolution chain in corpus
// order.
func (idx *Index) ChainMembers(chainID int) []int {
	return slices.Clone(idx.chains[chainID])
}

// Children returns ids of species that evolve from the given species,
// sorted ascending.
func (idx *Index) Children(speciesID int) []int {
	return slices.Clone(idx.children[speciesID])
}

// Form returns a pokemon form by its id.
func (idx *Index) Form(id int) (*corpus.Pokemon, bool) {
	f, ok := idx.forms[id]
	return f, ok
}

// FormByName finds a form by its identifier, case-insensitively.
func (idx *Index) FormByName(name string) (int, bool) {
	id, ok := idx.formsByName[Normalize(name)]
	return id, ok
}

// Forms returns all forms of a species in corpus order.
func (idx *Index) Forms(speciesID int) []*corpus.Pokemon {
	return slices.Clone(idx.speciesForms[speciesID])
}

// FormTypes returns type ids of a form in corpus order.
func (idx *Index) FormTypes(formID int) []int {
	return slices.Clone(idx.formTypes[formID])
}

// FormStat returns the base value of a stat of a form.
func (idx *Index) FormStat(formID, statID int) (int, bool) {
	val, ok := idx.formStats[formID][statID]
	return val, ok
}

// Type returns a type by its id.
func (idx *Index) Type(id int) (*corpus.Type, bool) {
	tp, ok := idx.types[id]
	return tp, ok
}

// Name returns the localized name of an entity. For LanguageName the id
// is the named language and lang is the language the name is written in.
func (idx *Index) Name(kind NameKind, id, lang int) (string, bool) {
	name, ok := idx.names[kind][key{id: id, lang: lang}]
	return name, ok
}

// Genus returns the localized genus of a species, e.g. "Seed Pokémon".
func (idx *Index) Genus(speciesID, lang int) (string, bool) {
	genus, ok := idx.genera[key{id: speciesID, lang: lang}]
	return genus, ok
}

// Flavor returns flavor text rows of a species in a language, in corpus
// order.
func (idx *Index) Flavor(speciesID, lang int) []*corpus.FlavorText {
	return slices.Clone(idx.flavors[key{id: speciesID, lang: lang}])
}

// Version returns a game version by its id.
func (idx *Index) Version(id int) (*corpus.Version, bool) {
	v, ok := idx.versions[id]
	return v, ok
}

// VersionByName finds a version by its identifier, case-insensitively.
func (idx *Index) VersionByName(name string) (int, bool) {
	id, ok := idx.versionsByName[Normalize(name)]
	return id, ok
}

// Language returns a language by its id.
func (idx *Index) Language(id int) (*corpus.Language, bool) {
	l, ok := idx.languages[id]
	return l, ok
}

// LanguageByName finds a language by its identifier or iso639 code,
// case-insensitively.
func (idx *Index) LanguageByName(name string) (int, bool) {
	id, ok := idx.languagesByName[Normalize(name)]
	return id, ok
}

// Languages returns all languages sorted by display order.
func (idx *Index) Languages() []*corpus.Language {
	return slices.Clone(idx.languageOrder)
}

// Stats is a summary of the index size.
type Stats struct {
	Species   int `json:"species"`
	Forms     int `json:"forms"`
	Chains    int `json:"chains"`
	Types     int `json:"types"`
	Versions  int `json:"versions"`
	Languages int `json:"languages"`
}

// Stats returns sizes of the main maps of the index.
func (idx *Index) Stats() Stats {
	return Stats{
		Species:   len(idx.species),
		Forms:     len(idx.forms),
		Chains:    len(idx.chains),
		Types:     len(idx.types),
		Versions:  len(idx.versions),
		Languages: len(idx.languages),
	}
}
