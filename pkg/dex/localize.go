package dex

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gnfmt/gnlang"
	"github.com/gnames/gnpokedex/pkg/corpus"
	"github.com/gnames/gnpokedex/pkg/index"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (d *dex) LocalizeName(speciesID, languageID int) string {
	var fallback string
	if sp, ok := d.idx.Species(speciesID); ok {
		fallback = sp.Identifier
	}
	return d.localizeName(speciesID, languageID, fallback)
}

// localizeName returns the localized species name or the capitalized
// fallback identifier.
func (d *dex) localizeName(speciesID, languageID int, fallback string) string {
	if name, ok := d.idx.Name(index.SpeciesName, speciesID, languageID); ok {
		return name
	}
	return capitalize(fallback)
}

// formName is the card title of a form. Non-default forms fall back to
// their own identifier.
func (d *dex) formName(sp *corpus.Species, form *corpus.Pokemon, languageID int) string {
	fallback := sp.Identifier
	if !d.isDefaultForm(form) && form.Identifier != "" {
		fallback = form.Identifier
	}
	return d.localizeName(sp.ID, languageID, fallback)
}

func (d *dex) Autonym(languageID int) string {
	if name, ok := d.idx.Name(index.LanguageName, languageID, languageID); ok {
		return name
	}
	display := d.cfg.Language.DisplayID
	if name, ok := d.idx.Name(index.LanguageName, languageID, display); ok {
		return name
	}
	return strconv.Itoa(languageID)
}

func (d *dex) Languages() []LanguageOption {
	var res []LanguageOption
	for _, l := range d.idx.Languages() {
		if !l.Official {
			continue
		}
		res = append(res, LanguageOption{
			ID:         l.ID,
			ISO639:     l.ISO639,
			Identifier: l.Identifier,
			Name:       d.Autonym(l.ID),
		})
	}
	return res
}

func (d *dex) ParseLanguage(s string) (int, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		if _, ok := d.idx.Language(id); ok {
			return id, nil
		}
		return 0, NotFoundError("language", s)
	}

	if id, ok := d.idx.LanguageByName(s); ok {
		return id, nil
	}

	// ISO 639-2/3 codes and English names of languages.
	code3 := strings.ToLower(s)
	if utf8.RuneCountInString(code3) != 3 {
		code3 = gnlang.LangCode(s)
	}
	if code3 != "" {
		if code2, err := gnlang.LangCode3To2Letters(code3); err == nil {
			if id, ok := d.idx.LanguageByName(code2); ok {
				return id, nil
			}
		}
	}
	return 0, NotFoundError("language", s)
}

func (d *dex) versionLabel(v *corpus.Version, languageID int) string {
	if name, ok := d.idx.Name(index.VersionName, v.ID, languageID); ok {
		return name
	}
	return capitalize(v.Identifier)
}

// capitalize makes the first letter upper case and the rest lower case.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	head := cases.Upper(language.Und).String(s[:size])
	return head + cases.Lower(language.Und).String(s[size:])
}
