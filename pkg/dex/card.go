package dex

import "slices"

// Query describes a species card request.
type Query struct {
	// Identifier is a dex number, species identifier, localized species
	// name or form identifier.
	Identifier string

	// Form is an optional form identifier of the species.
	Form string

	// LanguageID selects localized names. Zero means the configured
	// default language.
	LanguageID int

	// WithFlavor adds Pokédex entries to the card.
	WithFlavor bool
}

// Card is the aggregate view of one species form. A card is built per
// call and owned by the caller.
type Card struct {
	Name          string        `json:"name" yaml:"name"`
	Genus         string        `json:"genus,omitempty" yaml:"genus,omitempty"`
	DexNumber     int           `json:"dexNumber" yaml:"dex_number"`
	FormID        int           `json:"formId" yaml:"form_id"`
	Form          string        `json:"form" yaml:"form"`
	Image         string        `json:"image" yaml:"image"`
	Cries         []string      `json:"cries" yaml:"cries"`
	Types         []string      `json:"types" yaml:"types"`
	TypeNames     []string      `json:"typeNames" yaml:"type_names"`
	BaseStats     BaseStats     `json:"baseStats" yaml:"base_stats"`
	EvolutionLine []ChainEntry  `json:"evolutionLine" yaml:"evolution_line"`
	Forms         []string      `json:"forms" yaml:"forms"`
	Flavor        []FlavorEntry `json:"flavor,omitempty" yaml:"flavor,omitempty"`
}

// BaseStats are the six base stats of a form.
type BaseStats struct {
	HP        int `json:"hp" yaml:"hp"`
	Attack    int `json:"atk" yaml:"atk"`
	Defense   int `json:"def" yaml:"def"`
	SpAttack  int `json:"spa" yaml:"spa"`
	SpDefense int `json:"spd" yaml:"spd"`
	Speed     int `json:"spe" yaml:"spe"`
}

// Total is the sum of all base stats.
func (bs BaseStats) Total() int {
	return bs.HP + bs.Attack + bs.Defense + bs.SpAttack + bs.SpDefense + bs.Speed
}

// Attributes are the joined attributes of a form.
type Attributes struct {
	// Types are canonical type identifiers, primary type first.
	Types []string
	// TypeNames are localized labels of Types.
	TypeNames []string
	Stats     BaseStats
	// Forms are identifiers of all forms of the species.
	Forms []string
}

// ChainEntry is one member of an evolution line.
type ChainEntry struct {
	Name      string `json:"name" yaml:"name"`
	Image     string `json:"image" yaml:"image"`
	DexNumber int    `json:"dexNumber" yaml:"dex_number"`
	SpeciesID int    `json:"speciesId" yaml:"species_id"`
	FormID    int    `json:"formId" yaml:"form_id"`
}

// FlavorEntry is a Pokédex entry of one game version.
type FlavorEntry struct {
	Version     string `json:"version" yaml:"version"`
	VersionName string `json:"versionName" yaml:"version_name"`
	Text        string `json:"text" yaml:"text"`
}

// LanguageOption is an entry of the language selector.
type LanguageOption struct {
	ID         int    `json:"id" yaml:"id"`
	ISO639     string `json:"iso639" yaml:"iso639"`
	Identifier string `json:"identifier" yaml:"identifier"`
	Name       string `json:"name" yaml:"name"`
}

// Clone returns a deep copy of the card.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	res := *c
	res.Cries = slices.Clone(c.Cries)
	res.Types = slices.Clone(c.Types)
	res.TypeNames = slices.Clone(c.TypeNames)
	res.EvolutionLine = slices.Clone(c.EvolutionLine)
	res.Forms = slices.Clone(c.Forms)
	res.Flavor = slices.Clone(c.Flavor)
	return &res
}
