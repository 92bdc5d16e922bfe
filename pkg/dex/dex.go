// Package dex resolves Pokédex species and assembles species cards from
// an immutable corpus index. All operations are synchronous in-memory
// computations and are safe for concurrent use.
package dex

import (
	"log/slog"

	"github.com/gnames/gnpokedex/pkg/config"
	"github.com/gnames/gnpokedex/pkg/corpus"
	"github.com/gnames/gnpokedex/pkg/index"
)

// Pokedex is the resolution engine used by the CLI and the HTTP
// surface.
type Pokedex interface {
	// Resolve finds a form by a species identifier (dex number, species
	// identifier, localized species name or form identifier) and an
	// optional form identifier. An empty form selects the default form.
	Resolve(identifier, form string) (*corpus.Pokemon, error)

	// JoinAttributes collects types, base stats and sibling forms of a
	// form. Type labels are localized to languageID.
	JoinAttributes(form *corpus.Pokemon, languageID int) (Attributes, error)

	// BuildChain returns the evolution line of a chain in breadth-first
	// order, siblings sorted by ascending species id.
	BuildChain(chainID, languageID int) ([]ChainEntry, error)

	// EvolutionLine returns the evolution line of a species. A species
	// outside of any chain forms a line of its own.
	EvolutionLine(speciesID, languageID int) ([]ChainEntry, error)

	// LocalizeName returns the name of a species in a language, or its
	// capitalized identifier.
	LocalizeName(speciesID, languageID int) string

	// Autonym returns the name of a language for the language selector.
	Autonym(languageID int) string

	// Languages returns official languages in display order.
	Languages() []LanguageOption

	// ParseLanguage converts a language id, identifier or ISO code to a
	// language id.
	ParseLanguage(s string) (int, error)

	// Flavor returns Pokédex entries of a species in a language.
	Flavor(speciesID, languageID int) []FlavorEntry

	// FlavorForVersion returns the Pokédex entry of one game version.
	FlavorForVersion(speciesID, languageID int, version string) (FlavorEntry, error)

	// Assemble builds a species card.
	Assemble(q Query) (*Card, error)
}

type dex struct {
	idx   *index.Index
	cfg   *config.Config
	cache *cardCache
}

// New creates a Pokedex on top of a built index. Assembled cards are
// cached when cfg.Cache.Size is positive.
func New(idx *index.Index, cfg *config.Config) Pokedex {
	res := &dex{idx: idx, cfg: cfg}
	if cfg.Cache.Size > 0 {
		cache, err := newCardCache(cfg.Cache.Size)
		if err != nil {
			slog.Warn("Card cache is disabled", "error", err)
		}
		res.cache = cache
	}
	return res
}
