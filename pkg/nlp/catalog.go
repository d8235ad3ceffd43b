package nlp

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Intent is one row of the administrative intent table, read-only to the
// engine.
type Intent struct {
	Name     string
	Category string
	Response string
	Keywords []string
	Priority int
	Active   bool
}

// Catalog is an immutable point-in-time snapshot of the active intents,
// ordered by priority descending. Resolution code takes one snapshot per
// call and never sees a half-replaced table.
type Catalog struct {
	intents  []Intent
	byName   map[string]int
	loadedAt time.Time
}

func NewCatalog(intents []Intent) *Catalog {
	active := make([]Intent, 0, len(intents))
	for _, it := range intents {
		if it.Active {
			active = append(active, it)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})

	byName := make(map[string]int, len(active))
	for i, it := range active {
		if _, seen := byName[it.Name]; !seen {
			byName[it.Name] = i
		}
	}

	return &Catalog{intents: active, byName: byName, loadedAt: time.Now()}
}

func (c *Catalog) Intents() []Intent { return c.intents }

func (c *Catalog) Len() int { return len(c.intents) }

func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

func (c *Catalog) Lookup(name string) (Intent, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Intent{}, false
	}
	return c.intents[i], true
}

// Handle holds the current catalog snapshot behind an atomic pointer.
// Reload replaces the snapshot wholesale; concurrent readers keep the
// snapshot they already took.
type Handle struct {
	source  CatalogSource
	log     *logrus.Logger
	current atomic.Pointer[Catalog]
}

func NewHandle(source CatalogSource, log *logrus.Logger) *Handle {
	h := &Handle{source: source, log: log}
	h.current.Store(NewCatalog(nil))
	return h
}

// Snapshot returns the current catalog. The result is never nil.
func (h *Handle) Snapshot() *Catalog {
	return h.current.Load()
}

// Reload fetches all active intents from the source and swaps the
// snapshot in one step. On fetch failure the previous snapshot stays in
// place.
func (h *Handle) Reload(ctx context.Context) error {
	intents, err := h.source.FetchActive(ctx)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to reload intent catalog, keeping previous snapshot")
		return err
	}

	catalog := NewCatalog(intents)
	h.current.Store(catalog)

	h.log.WithFields(logrus.Fields{
		"intents": catalog.Len(),
	}).Info("Intent catalog reloaded")

	return nil
}
