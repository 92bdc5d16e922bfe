package corpus

// Table names of the corpus.
const (
	SpeciesTable       = "pokemon_species"
	PokemonTable       = "pokemon"
	PokemonTypesTable  = "pokemon_types"
	TypesTable         = "types"
	PokemonStatsTable  = "pokemon_stats"
	SpeciesNamesTable  = "pokemon_species_names"
	FlavorTextTable    = "pokemon_species_flavor_text"
	VersionsTable      = "versions"
	LanguagesTable     = "languages"
	LanguageNamesTable = "language_names"
	TypeNamesTable     = "type_names"
	VersionNamesTable  = "version_names"
)

// RequiredTables must be present for the corpus to load. Other tables
// enrich cards with localized labels when present.
var RequiredTables = []string{
	SpeciesTable,
	PokemonTable,
	PokemonTypesTable,
	TypesTable,
	PokemonStatsTable,
	SpeciesNamesTable,
	FlavorTextTable,
	VersionsTable,
	LanguagesTable,
}

// Tables holds all rows of a corpus in corpus order.
type Tables struct {
	Species       []Species
	Pokemon       []Pokemon
	PokemonTypes  []PokemonType
	Types         []Type
	PokemonStats  []PokemonStat
	SpeciesNames  []SpeciesName
	FlavorTexts   []FlavorText
	Versions      []Version
	Languages     []Language
	LanguageNames []LanguageName
	TypeNames     []TypeName
	VersionNames  []VersionName
}

// Models returns pointers to zero values of every model, in the order
// tables are created in a snapshot.
func Models() []any {
	return []any{
		&Species{},
		&Pokemon{},
		&PokemonType{},
		&Type{},
		&PokemonStat{},
		&SpeciesName{},
		&FlavorText{},
		&Version{},
		&Language{},
		&LanguageName{},
		&TypeName{},
		&VersionName{},
	}
}

// RowCount returns the total number of rows in all tables.
func (t *Tables) RowCount() int {
	return len(t.Species) + len(t.Pokemon) + len(t.PokemonTypes) +
		len(t.Types) + len(t.PokemonStats) + len(t.SpeciesNames) +
		len(t.FlavorTexts) + len(t.Versions) + len(t.Languages) +
		len(t.LanguageNames) + len(t.TypeNames) + len(t.VersionNames)
}
