package dex

import (
	"strconv"
	"strings"

	"github.com/gnames/gnpokedex/pkg/corpus"
	"github.com/gnames/gnpokedex/pkg/index"
)

func (d *dex) Resolve(identifier, form string) (*corpus.Pokemon, error) {
	speciesID, formID, ok := d.lookup(identifier)
	if !ok {
		return nil, NotFoundError("species", identifier)
	}

	forms := d.idx.Forms(speciesID)
	if form == "" {
		if formID != 0 {
			f, _ := d.idx.Form(formID)
			return f, nil
		}
		if len(forms) == 0 {
			return nil, NotFoundError("forms of species", identifier)
		}
		return forms[0], nil
	}

	key := index.Normalize(form)
	for _, f := range forms {
		if index.Normalize(f.Identifier) == key {
			return f, nil
		}
	}
	return nil, NotFoundError("form", form)
}

// lookup finds a species for an identifier. Numeric ids take
// precedence, then species identifiers, localized species names and
// form identifiers. For a form identifier the form id is returned too.
func (d *dex) lookup(identifier string) (speciesID, formID int, ok bool) {
	s := strings.TrimSpace(identifier)
	if s == "" {
		return 0, 0, false
	}

	if id, err := strconv.Atoi(s); err == nil {
		if _, ok = d.idx.Species(id); ok && id > 0 {
			return id, 0, true
		}
		return 0, 0, false
	}

	if id, ok := d.idx.SpeciesByName(s); ok {
		return id, 0, true
	}

	if id, ok := d.idx.SpeciesByLocalName(s); ok {
		return id, 0, true
	}

	if id, ok := d.idx.FormByName(s); ok {
		f, _ := d.idx.Form(id)
		if _, ok := d.idx.Species(f.SpeciesID); ok {
			return f.SpeciesID, f.ID, true
		}
	}
	return 0, 0, false
}

// isDefaultForm checks if a form is the first form of its species.
func (d *dex) isDefaultForm(form *corpus.Pokemon) bool {
	forms := d.idx.Forms(form.SpeciesID)
	return len(forms) > 0 && forms[0].ID == form.ID
}

// defaultForm returns the first form of a species.
func (d *dex) defaultForm(speciesID int) (*corpus.Pokemon, bool) {
	forms := d.idx.Forms(speciesID)
	if len(forms) == 0 {
		return nil, false
	}
	return forms[0], true
}
