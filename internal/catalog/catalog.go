package catalog

import (
	"fmt"
	"sort"
	"strconv"
)

// Groups lists the database files a catalog is split across, in the
// order pipeline stages and persistence visit them.
var Groups = []string{
	"asteroids",
	"comets",
	"jovian_satellites",
	"saturnian_satellites",
	"other_satellites",
	"major_bodies",
	"artificial",
}

// Irregular satellites carry five-digit Horizons ids outside the
// per-planet hundreds ranges, so the primaries they belong to are
// spelled out.
var (
	jovianExtra = map[int]bool{
		55060: true, 55061: true, 55062: true, 55064: true, 55065: true,
		55066: true, 55068: true, 55070: true, 55071: true, 55074: true,
	}
	saturnianExtra = map[int]bool{
		65035: true, 65040: true, 65041: true, 65045: true, 65048: true,
		65050: true, 65055: true, 65056: true, 65065: true, 65066: true,
		65067: true, 65068: true, 65069: true, 65070: true, 65071: true,
		65073: true, 65074: true, 65075: true, 65076: true, 65077: true,
		65078: true,
	}
)

// GroupFor maps a body id to its database group.  Numeric ids denote
// major bodies and natural satellites, "a"- and "c"-prefixed ids
// asteroids and comets.
func GroupFor(id string) (string, error) {
	if n, err := strconv.Atoi(id); err == nil {
		switch {
		case n <= 10 || n > 100 && (n+1)%100 == 0:
			return "major_bodies", nil
		case n > 500 && n < 599 || n > 55500 && n < 55510 || jovianExtra[n]:
			return "jovian_satellites", nil
		case n > 600 && n < 700 || saturnianExtra[n]:
			return "saturnian_satellites", nil
		case n > 700 && n < 999 || n == 301 || n == 401 || n == 402:
			return "other_satellites", nil
		}
		return "", fmt.Errorf("catalog: unexpected body id %q", id)
	}
	switch {
	case id == "":
		return "", fmt.Errorf("catalog: empty body id")
	case id[0] == 'a':
		return "asteroids", nil
	case id[0] == 'c':
		return "comets", nil
	}
	return "", fmt.Errorf("catalog: unexpected body id %q", id)
}

// TypeFor maps a body id to its body type.
func TypeFor(id string) (BodyType, error) {
	if n, err := strconv.Atoi(id); err == nil {
		switch {
		case n < 10:
			return Barycenter, nil
		case n == 10:
			return Star, nil
		case n > 100 && (n+1)%100 == 0:
			return Planet, nil
		case n > 100:
			return Satellite, nil
		}
		return "", fmt.Errorf("catalog: unexpected body id %q", id)
	}
	switch {
	case id == "":
		return "", fmt.Errorf("catalog: empty body id")
	case id[0] == 'a':
		return Asteroid, nil
	case id[0] == 'c':
		return Comet, nil
	}
	return "", fmt.Errorf("catalog: unexpected body id %q", id)
}

// Catalog is the whole-database object threaded through the pipeline
// stages.  Each stage mutates a well defined part of it; nothing else
// touches it during a build.
type Catalog struct {
	groups map[string]map[string]*Body
}

func New() *Catalog {
	return &Catalog{groups: make(map[string]map[string]*Body)}
}

// Ensure returns the body with the given id, creating it with its
// classified type in its classified group on first mention.
func (c *Catalog) Ensure(id string) (*Body, error) {
	if b := c.Body(id); b != nil {
		return b, nil
	}
	group, err := GroupFor(id)
	if err != nil {
		return nil, err
	}
	typ, err := TypeFor(id)
	if err != nil {
		return nil, err
	}
	b := &Body{ID: id, Type: typ}
	c.Put(group, b)
	return b, nil
}

// Put stores a body in a group, replacing any body with the same id.
func (c *Catalog) Put(group string, b *Body) {
	g := c.groups[group]
	if g == nil {
		g = make(map[string]*Body)
		c.groups[group] = g
	}
	g[b.ID] = b
}

// Body returns the body with the given id, or nil.
func (c *Catalog) Body(id string) *Body {
	for _, g := range c.groups {
		if b, ok := g[id]; ok {
			return b
		}
	}
	return nil
}

// ByName returns the first body with the given name, or nil.  Search
// order is deterministic: group order, then id order within a group.
func (c *Catalog) ByName(name string) *Body {
	for _, b := range c.Bodies() {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Group returns the bodies of one group keyed by id.  The map is the
// catalog's own storage; callers must not add or remove entries.
func (c *Catalog) Group(group string) map[string]*Body {
	return c.groups[group]
}

// Bodies returns every body in deterministic order: groups in Groups
// order, ids within a group in numeric-aware order.
func (c *Catalog) Bodies() []*Body {
	var all []*Body
	for _, group := range Groups {
		g := c.groups[group]
		for _, id := range SortIDs(keys(g)) {
			all = append(all, g[id])
		}
	}
	return all
}

// Len returns the number of bodies in the catalog.
func (c *Catalog) Len() int {
	n := 0
	for _, g := range c.groups {
		n += len(g)
	}
	return n
}

func keys(g map[string]*Body) []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	return ids
}

// SortIDs orders body ids numerically where both parse as numbers
// ("2" before "10"), lexically otherwise, numeric ids first.  The
// database files are written in this order.
func SortIDs(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool {
		a, aErr := strconv.ParseFloat(ids[i], 64)
		b, bErr := strconv.ParseFloat(ids[j], 64)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		}
		return ids[i] < ids[j]
	})
	return ids
}
