package dex

import (
	"strconv"
	"strings"

	"github.com/gnames/gnpokedex/pkg/corpus"
)

// Flavor pairs the referenced versions with texts by position. When a
// version has several texts the lists differ in length and the result is
// truncated to the shorter one.
func (d *dex) Flavor(speciesID, languageID int) []FlavorEntry {
	rows := d.idx.Flavor(speciesID, languageID)

	texts := make([]string, 0, len(rows))
	versions := make([]*corpus.Version, 0, len(rows))
	seen := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		texts = append(texts, normalizeFlavor(row.Text))

		if _, ok := seen[row.VersionID]; ok {
			continue
		}
		seen[row.VersionID] = struct{}{}
		if v, ok := d.idx.Version(row.VersionID); ok {
			versions = append(versions, v)
		}
	}

	n := min(len(texts), len(versions))
	res := make([]FlavorEntry, n)
	for i := range n {
		res[i] = FlavorEntry{
			Version:     versions[i].Identifier,
			VersionName: d.versionLabel(versions[i], languageID),
			Text:        texts[i],
		}
	}
	return res
}

// FlavorForVersion returns the first text of the version. The version
// is a version identifier or id.
func (d *dex) FlavorForVersion(
	speciesID, languageID int,
	version string,
) (FlavorEntry, error) {
	v, ok := d.findVersion(version)
	if !ok {
		return FlavorEntry{}, NotFoundError("version", version)
	}

	for _, row := range d.idx.Flavor(speciesID, languageID) {
		if row.VersionID != v.ID {
			continue
		}
		return FlavorEntry{
			Version:     v.Identifier,
			VersionName: d.versionLabel(v, languageID),
			Text:        normalizeFlavor(row.Text),
		}, nil
	}
	return FlavorEntry{}, NotFoundError("flavor text for version", v.Identifier)
}

func (d *dex) findVersion(s string) (*corpus.Version, bool) {
	s = strings.TrimSpace(s)
	id, err := strconv.Atoi(s)
	if err != nil {
		var ok bool
		if id, ok = d.idx.VersionByName(s); !ok {
			return nil, false
		}
	}
	return d.idx.Version(id)
}

// normalizeFlavor replaces every run of line and page breaks with one
// space and trims the result.
func normalizeFlavor(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inBreak := false
	for _, r := range s {
		if isBreak(r) {
			if !inBreak {
				sb.WriteByte(' ')
			}
			inBreak = true
			continue
		}
		inBreak = false
		sb.WriteRune(r)
	}
	return strings.TrimSpace(sb.String())
}

func isBreak(r rune) bool {
	switch r {
	case '\r', '\n', '\f', '\v', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
