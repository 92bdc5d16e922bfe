// Package index builds the Dataset Index: an immutable in-memory view of
// the Pokédex corpus with id maps, case-insensitive name maps and
// foreign-key adjacency. The index is built once and is safe for
// concurrent reads afterwards.
//
// Accessors that return rows return pointers into the index. The rows
// must be treated as read-only.
package index

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnpokedex/pkg/corpus"
)

// NameKind selects a family of localized names.
type NameKind int

const (
	SpeciesName NameKind = iota
	TypeName
	VersionName
	LanguageName
)

// key addresses a localized value: an entity id and a language id.
type key struct {
	id   int
	lang int
}

// Index is the read-only index of a corpus.
type Index struct {
	species        map[int]*corpus.Species
	speciesByName  map[string]int
	speciesByLocal map[string]int
	chains         map[int][]int
	children       map[int][]int

	forms        map[int]*corpus.Pokemon
	formsByName  map[string]int
	speciesForms map[int][]*corpus.Pokemon
	formTypes    map[int][]int
	formStats    map[int]map[int]int

	types map[int]*corpus.Type

	names   map[NameKind]map[key]string
	genera  map[key]string
	flavors map[key][]*corpus.FlavorText

	versions       map[int]*corpus.Version
	versionsByName map[string]int

	languages       map[int]*corpus.Language
	languagesByName map[string]int
	languageOrder   []*corpus.Language
}

// New indexes the tables. It fails with LoadError on duplicate primary
// ids and duplicate stat values. The index keeps pointers into t, the
// tables must not be modified afterwards.
func New(t *corpus.Tables) (*Index, error) {
	if t == nil {
		return nil, LoadError("all", errors.New("corpus has no tables"))
	}

	res := &Index{
		species:         make(map[int]*corpus.Species, len(t.Species)),
		speciesByName:   make(map[string]int, len(t.Species)),
		speciesByLocal:  make(map[string]int),
		chains:          make(map[int][]int),
		children:        make(map[int][]int),
		forms:           make(map[int]*corpus.Pokemon, len(t.Pokemon)),
		formsByName:     make(map[string]int, len(t.Pokemon)),
		speciesForms:    make(map[int][]*corpus.Pokemon),
		formTypes:       make(map[int][]int),
		formStats:       make(map[int]map[int]int),
		types:           make(map[int]*corpus.Type, len(t.Types)),
		names:           make(map[NameKind]map[key]string),
		genera:          make(map[key]string),
		flavors:         make(map[key][]*corpus.FlavorText),
		versions:        make(map[int]*corpus.Version, len(t.Versions)),
		versionsByName:  make(map[string]int),
		languages:       make(map[int]*corpus.Language, len(t.Languages)),
		languagesByName: make(map[string]int),
	}
	for _, kind := range []NameKind{SpeciesName, TypeName, VersionName, LanguageName} {
		res.names[kind] = make(map[key]string)
	}

	steps := []func(*corpus.Tables) error{
		res.addSpecies,
		res.addForms,
		res.addTypes,
		res.addStats,
		res.addVersions,
		res.addLanguages,
		res.addNames,
		res.addFlavors,
	}
	for _, step := range steps {
		if err := step(t); err != nil {
			return nil, err
		}
	}

	res.logStats()
	return res, nil
}

func (idx *Index) addSpecies(t *corpus.Tables) error {
	for i := range t.Species {
		sp := &t.Species[i]
		if _, ok := idx.species[sp.ID]; ok {
			return LoadError(corpus.SpeciesTable, duplicateErr(sp.ID))
		}
		idx.species[sp.ID] = sp

		name := Normalize(sp.Identifier)
		if _, ok := idx.speciesByName[name]; !ok && name != "" {
			idx.speciesByName[name] = sp.ID
		}

		if sp.EvolutionChainID != 0 {
			idx.chains[sp.EvolutionChainID] = append(
				idx.chains[sp.EvolutionChainID], sp.ID,
			)
		}

		if sp.EvolvesFromSpeciesID != nil {
			parent := *sp.EvolvesFromSpeciesID
			idx.children[parent] = append(idx.children[parent], sp.ID)
		}
	}

	for _, ch := range idx.children {
		slices.Sort(ch)
	}
	return nil
}

func (idx *Index) addForms(t *corpus.Tables) error {
	for i := range t.Pokemon {
		f := &t.Pokemon[i]
		if _, ok := idx.forms[f.ID]; ok {
			return LoadError(corpus.PokemonTable, duplicateErr(f.ID))
		}
		idx.forms[f.ID] = f
		idx.speciesForms[f.SpeciesID] = append(idx.speciesForms[f.SpeciesID], f)

		name := Normalize(f.Identifier)
		if _, ok := idx.formsByName[name]; !ok && name != "" {
			idx.formsByName[name] = f.ID
		}
	}
	return nil
}

func (idx *Index) addTypes(t *corpus.Tables) error {
	for i := range t.Types {
		tp := &t.Types[i]
		if _, ok := idx.types[tp.ID]; ok {
			return LoadError(corpus.TypesTable, duplicateErr(tp.ID))
		}
		idx.types[tp.ID] = tp
	}

	slots := make(map[int][]corpus.PokemonType)
	for _, pt := range t.PokemonTypes {
		slots[pt.PokemonID] = append(slots[pt.PokemonID], pt)
	}
	// primary type first; rows with equal slots keep corpus order
	for id, pts := range slots {
		slices.SortStableFunc(pts, func(a, b corpus.PokemonType) int {
			return cmp.Compare(a.Slot, b.Slot)
		})
		ids := make([]int, len(pts))
		for i := range pts {
			ids[i] = pts[i].TypeID
		}
		idx.formTypes[id] = ids
	}
	return nil
}

func (idx *Index) addStats(t *corpus.Tables) error {
	for _, st := range t.PokemonStats {
		stats, ok := idx.formStats[st.PokemonID]
		if !ok {
			stats = make(map[int]int, 8)
			idx.formStats[st.PokemonID] = stats
		}
		if _, ok := stats[st.StatID]; ok {
			err := fmt.Errorf(
				"duplicate value of stat %d for pokemon %d", st.StatID, st.PokemonID,
			)
			return LoadError(corpus.PokemonStatsTable, err)
		}
		stats[st.StatID] = st.BaseStat
	}
	return nil
}

func (idx *Index) addVersions(t *corpus.Tables) error {
	for i := range t.Versions {
		v := &t.Versions[i]
		if _, ok := idx.versions[v.ID]; ok {
			return LoadError(corpus.VersionsTable, duplicateErr(v.ID))
		}
		idx.versions[v.ID] = v

		name := Normalize(v.Identifier)
		if _, ok := idx.versionsByName[name]; !ok && name != "" {
			idx.versionsByName[name] = v.ID
		}
	}
	return nil
}

func (idx *Index) addLanguages(t *corpus.Tables) error {
	for i := range t.Languages {
		l := &t.Languages[i]
		if _, ok := idx.languages[l.ID]; ok {
			return LoadError(corpus.LanguagesTable, duplicateErr(l.ID))
		}
		idx.languages[l.ID] = l
		idx.languageOrder = append(idx.languageOrder, l)

		for _, s := range []string{l.Identifier, l.ISO639} {
			name := Normalize(s)
			if _, ok := idx.languagesByName[name]; !ok && name != "" {
				idx.languagesByName[name] = l.ID
			}
		}
	}

	slices.SortStableFunc(idx.languageOrder, func(a, b *corpus.Language) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return nil
}

// addNames keeps the first row of every (entity, language) pair.
func (idx *Index) addNames(t *corpus.Tables) error {
	add := func(kind NameKind, id, lang int, name string) {
		k := key{id: id, lang: lang}
		if _, ok := idx.names[kind][k]; !ok && name != "" {
			idx.names[kind][k] = name
		}
	}

	for _, sn := range t.SpeciesNames {
		add(SpeciesName, sn.SpeciesID, sn.LanguageID, sn.Name)

		k := key{id: sn.SpeciesID, lang: sn.LanguageID}
		if _, ok := idx.genera[k]; !ok && sn.Genus != "" {
			idx.genera[k] = sn.Genus
		}

		name := Normalize(sn.Name)
		if name == "" {
			continue
		}
		if id, ok := idx.speciesByLocal[name]; !ok || sn.SpeciesID < id {
			idx.speciesByLocal[name] = sn.SpeciesID
		}
	}

	for _, tn := range t.TypeNames {
		add(TypeName, tn.TypeID, tn.LanguageID, tn.Name)
	}
	for _, vn := range t.VersionNames {
		add(VersionName, vn.VersionID, vn.LanguageID, vn.Name)
	}
	for _, ln := range t.LanguageNames {
		add(LanguageName, ln.LanguageID, ln.LocalLanguageID, ln.Name)
	}
	return nil
}

func (idx *Index) addFlavors(t *corpus.Tables) error {
	for i := range t.FlavorTexts {
		ft := &t.FlavorTexts[i]
		k := key{id: ft.SpeciesID, lang: ft.LanguageID}
		idx.flavors[k] = append(idx.flavors[k], ft)
	}
	return nil
}

func (idx *Index) logStats() {
	slog.Info("Corpus indexed",
		"species", humanize.Comma(int64(len(idx.species))),
		"forms", humanize.Comma(int64(len(idx.forms))),
		"chains", humanize.Comma(int64(len(idx.chains))),
		"languages", humanize.Comma(int64(len(idx.languages))),
		"flavor_keys", humanize.Comma(int64(len(idx.flavors))),
	)
}

func duplicateErr(id int) error {
	return fmt.Errorf("duplicate id %d", id)
}
