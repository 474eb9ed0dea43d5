package ships

import (
	"strconv"
	"strings"

	"github.com/agentstation/shipyard/pkg/errors"
)

// Catalog is an ordered, read-only snapshot of ships. The zero value is an
// empty catalog.
type Catalog struct {
	ships []*Ship
}

// NewCatalog returns a catalog over a copy of list. Nil entries are dropped.
func NewCatalog(list []*Ship) Catalog {
	out := make([]*Ship, 0, len(list))
	for _, s := range list {
		if s != nil {
			out = append(out, s)
		}
	}
	return Catalog{ships: out}
}

// Len returns the number of ships.
func (c Catalog) Len() int {
	return len(c.ships)
}

// List returns the ships in catalog order.
func (c Catalog) List() []*Ship {
	return append([]*Ship(nil), c.ships...)
}

// Get returns the ship at index i.
func (c Catalog) Get(i int) (*Ship, bool) {
	if i < 0 || i >= len(c.ships) {
		return nil, false
	}
	return c.ships[i], true
}

// Find returns the first ship whose name matches, ignoring case.
func (c Catalog) Find(name string) (*Ship, error) {
	for _, s := range c.ships {
		if strings.EqualFold(s.Name(), name) {
			return s, nil
		}
	}
	return nil, errors.NewNotFoundError("ship", name)
}

// Lookup resolves ref as a ship name first and then as a zero-based index.
func (c Catalog) Lookup(ref string) (*Ship, error) {
	if s, err := c.Find(ref); err == nil {
		return s, nil
	}
	if i, err := strconv.Atoi(ref); err == nil {
		if s, ok := c.Get(i); ok {
			return s, nil
		}
	}
	return nil, errors.NewNotFoundError("ship", ref)
}

// Search returns ships whose name or any tag contains term, ignoring case.
// An empty term matches everything.
func (c Catalog) Search(term string) []*Ship {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.List()
	}
	var out []*Ship
	for _, s := range c.ships {
		if matches(s, term) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s *Ship, term string) bool {
	if strings.Contains(strings.ToLower(s.Name()), term) {
		return true
	}
	for _, tag := range s.metadata.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
