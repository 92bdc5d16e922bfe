package dex

import (
	"github.com/gnames/gnpokedex/pkg/corpus"
	"golang.org/x/sync/errgroup"
)

func (d *dex) Assemble(q Query) (*Card, error) {
	lang := q.LanguageID
	if lang == 0 {
		lang = d.cfg.Language.DefaultID
	}

	form, err := d.Resolve(q.Identifier, q.Form)
	if err != nil {
		return nil, err
	}

	if d.cache == nil {
		return d.assemble(form, lang, q.WithFlavor)
	}

	key := cacheKey{formID: form.ID, languageID: lang, withFlavor: q.WithFlavor}
	return d.cache.get(key, func() (*Card, error) {
		return d.assemble(form, lang, q.WithFlavor)
	})
}

// assemble builds a card of a resolved form. Joined attributes, the
// evolution line and flavor texts are independent and are collected
// concurrently. Any error discards the whole card.
func (d *dex) assemble(
	form *corpus.Pokemon,
	languageID int,
	withFlavor bool,
) (*Card, error) {
	sp, ok := d.idx.Species(form.SpeciesID)
	if !ok {
		return nil, NotFoundError("species of form", form.Identifier)
	}

	res := &Card{
		Name:      d.formName(sp, form, languageID),
		DexNumber: sp.ID,
		FormID:    form.ID,
		Form:      form.Identifier,
		Image:     d.spritePath(form.ID),
		Cries:     d.cryPaths(form.ID),
	}
	if genus, ok := d.idx.Genus(sp.ID, languageID); ok {
		res.Genus = genus
	}

	var g errgroup.Group

	g.Go(func() error {
		attrs, err := d.JoinAttributes(form, languageID)
		if err != nil {
			return err
		}
		res.Types = attrs.Types
		res.TypeNames = attrs.TypeNames
		res.BaseStats = attrs.Stats
		res.Forms = attrs.Forms
		return nil
	})

	g.Go(func() error {
		line, err := d.evolutionLine(sp, languageID)
		if err != nil {
			return err
		}
		res.EvolutionLine = line
		return nil
	})

	if withFlavor {
		g.Go(func() error {
			res.Flavor = d.Flavor(sp.ID, languageID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

