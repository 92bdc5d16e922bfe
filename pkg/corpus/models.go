// Package corpus provides row models of the read-only Pokédex corpus.
// Models follow the veekun table layout; gorm tags are used when a
// corpus is converted into a SQLite snapshot.
package corpus

// Ordered keeps the position of a row in its table. It is filled only
// when a corpus is written into a snapshot, so the snapshot can be read
// back in corpus order whatever its primary keys are.
type Ordered struct {
	RowOrder int `gorm:"column:row_order;index" json:"-" yaml:"-"`
}

// SetRowOrder sets the 1-based position of a row.
func (o *Ordered) SetRowOrder(n int) { o.RowOrder = n }

// Species is a row of the pokemon_species table: a canonical taxon
// identified by its national dex number.
type Species struct {
	Ordered

	// ID is the national dex number.
	ID int `gorm:"column:id;primaryKey;autoIncrement:false"`

	// Identifier is the species slug, e.g. "bulbasaur".
	Identifier string `gorm:"column:identifier;type:varchar(100);index"`

	// EvolvesFromSpeciesID is the parent species. Nil marks a chain root.
	EvolvesFromSpeciesID *int `gorm:"column:evolves_from_species_id"`

	// EvolutionChainID groups species of one evolution tree.
	EvolutionChainID int `gorm:"column:evolution_chain_id;index"`
}

func (Species) TableName() string { return "pokemon_species" }

// Pokemon is a row of the pokemon table, a concrete form of a species.
type Pokemon struct {
	Ordered

	// ID is the form-level identity, used for sprites and cries.
	ID int `gorm:"column:id;primaryKey;autoIncrement:false"`

	// Identifier is the form name. The base form shares the species
	// identifier.
	Identifier string `gorm:"column:identifier;type:varchar(100);index"`

	// SpeciesID refers back to Species.
	SpeciesID int `gorm:"column:species_id;index"`
}

func (Pokemon) TableName() string { return "pokemon" }

// PokemonType links a form to one of its types.
type PokemonType struct {
	Ordered

	PokemonID int `gorm:"column:pokemon_id;index"`
	TypeID    int `gorm:"column:type_id"`
	Slot      int `gorm:"column:slot"`
}

func (PokemonType) TableName() string { return "pokemon_types" }

// Type is a row of the types table.
type Type struct {
	Ordered

	ID         int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Identifier string `gorm:"column:identifier;type:varchar(50)"`
}

func (Type) TableName() string { return "types" }

// PokemonStat is the base value of one stat of a form.
type PokemonStat struct {
	Ordered

	PokemonID int `gorm:"column:pokemon_id;index"`
	StatID    int `gorm:"column:stat_id"`
	BaseStat  int `gorm:"column:base_stat"`
}

func (PokemonStat) TableName() string { return "pokemon_stats" }

// SpeciesName is a localized species name.
type SpeciesName struct {
	Ordered

	SpeciesID  int    `gorm:"column:pokemon_species_id;index"`
	LanguageID int    `gorm:"column:local_language_id"`
	Name       string `gorm:"column:name;type:varchar(100)"`
	// Genus is the localized category, e.g. "Seed Pokémon". Can be empty.
	Genus string `gorm:"column:genus;type:varchar(100)"`
}

func (SpeciesName) TableName() string { return "pokemon_species_names" }

// FlavorText is a Pokédex entry of a species for one version and language.
type FlavorText struct {
	Ordered

	SpeciesID  int    `gorm:"column:species_id;index"`
	VersionID  int    `gorm:"column:version_id"`
	LanguageID int    `gorm:"column:language_id"`
	Text       string `gorm:"column:flavor_text"`
}

func (FlavorText) TableName() string { return "pokemon_species_flavor_text" }

// Version is a game release that flavor text is attached to.
type Version struct {
	Ordered

	ID         int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Identifier string `gorm:"column:identifier;type:varchar(50)"`
}

func (Version) TableName() string { return "versions" }

// Language is a language of the corpus.
type Language struct {
	Ordered

	ID         int    `gorm:"column:id;primaryKey;autoIncrement:false"`
	ISO639     string `gorm:"column:iso639;type:varchar(10)"`
	Identifier string `gorm:"column:identifier;type:varchar(50)"`
	Official   bool   `gorm:"column:official"`
	// Order is the display order of selectable languages.
	Order int `gorm:"column:order"`
}

func (Language) TableName() string { return "languages" }

// LanguageName is the name of a language written in some language.
type LanguageName struct {
	Ordered

	LanguageID      int    `gorm:"column:language_id;index"`
	LocalLanguageID int    `gorm:"column:local_language_id"`
	Name            string `gorm:"column:name;type:varchar(100)"`
}

func (LanguageName) TableName() string { return "language_names" }

// TypeName is a localized type name.
type TypeName struct {
	Ordered

	TypeID     int    `gorm:"column:type_id;index"`
	LanguageID int    `gorm:"column:local_language_id"`
	Name       string `gorm:"column:name;type:varchar(50)"`
}

func (TypeName) TableName() string { return "type_names" }

// VersionName is a localized version name.
type VersionName struct {
	Ordered

	VersionID  int    `gorm:"column:version_id;index"`
	LanguageID int    `gorm:"column:local_language_id"`
	Name       string `gorm:"column:name;type:varchar(50)"`
}

func (VersionName) TableName() string { return "version_names" }
