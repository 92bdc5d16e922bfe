package dex

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gnames/gnpokedex/pkg/corpus"
)

func (d *dex) BuildChain(chainID, languageID int) ([]ChainEntry, error) {
	members := d.idx.ChainMembers(chainID)
	if len(members) == 0 {
		return nil, MalformedChainError(chainID, "chain has no members")
	}

	inChain := make(map[int]struct{}, len(members))
	var roots []int
	for _, id := range members {
		inChain[id] = struct{}{}
		sp, _ := d.idx.Species(id)
		if sp.EvolvesFromSpeciesID == nil {
			roots = append(roots, id)
		}
	}

	switch len(roots) {
	case 1:
	case 0:
		return nil, MalformedChainError(chainID, "chain has no root")
	default:
		reason := fmt.Sprintf("chain has %d roots", len(roots))
		return nil, MalformedChainError(chainID, reason)
	}

	// breadth-first walk with an explicit FIFO queue
	order := make([]int, 0, len(members))
	seen := map[int]struct{}{roots[0]: {}}
	queue := []int{roots[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		for _, child := range d.idx.Children(cur) {
			if _, ok := inChain[child]; !ok {
				continue
			}
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			queue = append(queue, child)
		}
	}

	res := make([]ChainEntry, 0, len(order))
	for _, id := range order {
		sp, _ := d.idx.Species(id)
		if entry, ok := d.chainEntry(sp, languageID); ok {
			res = append(res, entry)
		}
	}
	return res, nil
}

func (d *dex) EvolutionLine(speciesID, languageID int) ([]ChainEntry, error) {
	sp, ok := d.idx.Species(speciesID)
	if !ok {
		return nil, NotFoundError("species", strconv.Itoa(speciesID))
	}
	return d.evolutionLine(sp, languageID)
}

func (d *dex) evolutionLine(sp *corpus.Species, languageID int) ([]ChainEntry, error) {
	if sp.EvolutionChainID == 0 {
		res := make([]ChainEntry, 0, 1)
		if entry, ok := d.chainEntry(sp, languageID); ok {
			res = append(res, entry)
		}
		return res, nil
	}
	return d.BuildChain(sp.EvolutionChainID, languageID)
}

func (d *dex) chainEntry(sp *corpus.Species, languageID int) (ChainEntry, bool) {
	form, ok := d.defaultForm(sp.ID)
	if !ok {
		return ChainEntry{}, false
	}
	return ChainEntry{
		Name:      d.LocalizeName(sp.ID, languageID),
		Image:     d.spritePath(form.ID),
		DexNumber: sp.ID,
		SpeciesID: sp.ID,
		FormID:    form.ID,
	}, true
}

func (d *dex) spritePath(formID int) string {
	return filepath.Join(d.cfg.Assets.SpritesDir, strconv.Itoa(formID)+".png")
}

func (d *dex) cryPaths(formID int) []string {
	file := strconv.Itoa(formID) + ".ogg"
	return []string{
		filepath.Join(d.cfg.Assets.CriesDir, "latest", file),
		filepath.Join(d.cfg.Assets.CriesDir, "legacy", file),
	}
}
