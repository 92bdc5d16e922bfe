package dex

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

type cacheKey struct {
	formID     int
	languageID int
	withFlavor bool
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%d|%d|%t", k.formID, k.languageID, k.withFlavor)
}

// cardCache keeps assembled cards. Concurrent requests for a missing
// card share one computation. Errors are not cached.
type cardCache struct {
	cards *lru.Cache[cacheKey, *Card]
	group singleflight.Group
}

func newCardCache(size int) (*cardCache, error) {
	cards, err := lru.New[cacheKey, *Card](size)
	if err != nil {
		return nil, err
	}
	return &cardCache{cards: cards}, nil
}

// get returns a copy of a cached card or builds and caches a new one.
func (c *cardCache) get(key cacheKey, build func() (*Card, error)) (*Card, error) {
	if card, ok := c.cards.Get(key); ok {
		return card.Clone(), nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		if card, ok := c.cards.Get(key); ok {
			return card, nil
		}
		card, err := build()
		if err != nil {
			return nil, err
		}
		c.cards.Add(key, card)
		return card, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Card).Clone(), nil
}

func (c *cardCache) len() int {
	return c.cards.Len()
}
