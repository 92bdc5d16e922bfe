package dex

import (
	"strconv"

	"github.com/gnames/gnpokedex/pkg/corpus"
	"github.com/gnames/gnpokedex/pkg/index"
)

// Stat ids of the corpus in card order.
const (
	statHP = iota + 1
	statAttack
	statDefense
	statSpAttack
	statSpDefense
	statSpeed
)

var statNames = map[int]string{
	statHP:        "hp",
	statAttack:    "attack",
	statDefense:   "defense",
	statSpAttack:  "special-attack",
	statSpDefense: "special-defense",
	statSpeed:     "speed",
}

func (d *dex) JoinAttributes(
	form *corpus.Pokemon,
	languageID int,
) (Attributes, error) {
	var res Attributes

	for _, typeID := range d.idx.FormTypes(form.ID) {
		tp, ok := d.idx.Type(typeID)
		if !ok {
			continue
		}
		res.Types = append(res.Types, tp.Identifier)
		res.TypeNames = append(res.TypeNames, d.typeLabel(tp, languageID))
	}

	stats, err := d.baseStats(form)
	if err != nil {
		return res, err
	}
	res.Stats = stats

	res.Forms = d.formNames(form.SpeciesID)
	return res, nil
}

func (d *dex) baseStats(form *corpus.Pokemon) (BaseStats, error) {
	var res BaseStats
	fields := []*int{
		&res.HP, &res.Attack, &res.Defense,
		&res.SpAttack, &res.SpDefense, &res.Speed,
	}
	for i, field := range fields {
		statID := i + 1
		val, ok := d.idx.FormStat(form.ID, statID)
		if !ok {
			name := form.Identifier
			if name == "" {
				name = strconv.Itoa(form.ID)
			}
			return BaseStats{}, MissingStatError(name, statNames[statID])
		}
		*field = val
	}
	return res, nil
}

// formNames returns identifiers of forms of a species without empty or
// repeated values.
func (d *dex) formNames(speciesID int) []string {
	forms := d.idx.Forms(speciesID)
	res := make([]string, 0, len(forms))
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		if f.Identifier == "" {
			continue
		}
		if _, ok := seen[f.Identifier]; ok {
			continue
		}
		seen[f.Identifier] = struct{}{}
		res = append(res, f.Identifier)
	}
	return res
}

func (d *dex) typeLabel(tp *corpus.Type, languageID int) string {
	if name, ok := d.idx.Name(index.TypeName, tp.ID, languageID); ok {
		return name
	}
	return capitalize(tp.Identifier)
}
