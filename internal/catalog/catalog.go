package catalog

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"

	"kelaskata/internal/models"
	"kelaskata/internal/scoring"
)

// SessionSize is the number of items a drill session is dealt, pool
// permitting.
const SessionSize = 30

// Catalog is an immutable, in-process vocabulary lookup table partitioned by
// tier, with the scoring rules that apply to its items.
type Catalog struct {
	Key   string
	Name  string
	Tiers []models.Tier // ordered easiest first
	Rules scoring.Rules

	items  []models.VocabItem
	byID   map[string]models.VocabItem
	byTier map[models.Tier][]models.VocabItem
}

var catalogs = make(map[string]*Catalog)

func register(c *Catalog) *Catalog {
	c.byID = make(map[string]models.VocabItem, len(c.items))
	c.byTier = make(map[models.Tier][]models.VocabItem)
	for _, item := range c.items {
		c.byID[item.ID] = item
		c.byTier[item.Tier] = append(c.byTier[item.Tier], item)
	}
	catalogs[c.Key] = c
	return c
}

// Get returns the catalog registered under key.
func Get(key string) (*Catalog, bool) {
	c, ok := catalogs[key]
	return c, ok
}

// All returns every registered catalog, ordered by key.
func All() []*Catalog {
	keys := make([]string, 0, len(catalogs))
	for k := range catalogs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*Catalog, 0, len(keys))
	for _, k := range keys {
		out = append(out, catalogs[k])
	}
	return out
}

// ValidTier reports whether tier names one of the catalog's tiers or "all".
func (c *Catalog) ValidTier(tier string) bool {
	if tier == models.TierAll {
		return true
	}
	_, ok := c.byTier[models.Tier(tier)]
	return ok
}

// ByTier returns the items of one tier, or the whole catalog for "all".
func (c *Catalog) ByTier(tier string) []models.VocabItem {
	if tier == models.TierAll {
		out := make([]models.VocabItem, len(c.items))
		copy(out, c.items)
		return out
	}
	pool := c.byTier[models.Tier(tier)]
	out := make([]models.VocabItem, len(pool))
	copy(out, pool)
	return out
}

// Lookup finds an item by id.
func (c *Catalog) Lookup(id string) (models.VocabItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Resolve maps ids back to items, preserving order and skipping ids the
// catalog no longer knows.
func (c *Catalog) Resolve(ids []string) []models.VocabItem {
	out := make([]models.VocabItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

// Counts returns the number of items per tier plus a total under "all".
func (c *Catalog) Counts() map[string]int {
	counts := make(map[string]int, len(c.Tiers)+1)
	for _, tier := range c.Tiers {
		counts[string(tier)] = len(c.byTier[tier])
	}
	counts[models.TierAll] = len(c.items)
	return counts
}

// SampleSession deals the item sequence for a new session. A single tier is
// shuffled and the first min(pool, SessionSize) items taken. For "all", each
// tier pool is shuffled independently, a fixed per-tier count is taken so the
// total lands at SessionSize, and the concatenation is shuffled again so tier
// order is not recoverable from position.
func (c *Catalog) SampleSession(tier string) ([]models.VocabItem, error) {
	if !c.ValidTier(tier) {
		return nil, models.ErrInvalidTier
	}

	if tier != models.TierAll {
		pool := c.ByTier(tier)
		if err := shuffle(pool); err != nil {
			return nil, err
		}
		if len(pool) > SessionSize {
			pool = pool[:SessionSize]
		}
		return pool, nil
	}

	perTier := SessionSize / len(c.Tiers)
	combined := make([]models.VocabItem, 0, SessionSize)
	for _, t := range c.Tiers {
		pool := c.ByTier(string(t))
		if err := shuffle(pool); err != nil {
			return nil, err
		}
		if len(pool) > perTier {
			pool = pool[:perTier]
		}
		combined = append(combined, pool...)
	}
	if err := shuffle(combined); err != nil {
		return nil, err
	}
	return combined, nil
}

// shuffle permutes items in place with a Fisher-Yates walk over crypto/rand
// indices, so every permutation is equally likely.
func shuffle(items []models.VocabItem) error {
	for i := len(items) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("failed to draw shuffle index: %w", err)
		}
		j := n.Int64()
		items[i], items[j] = items[j], items[i]
	}
	return nil
}
