// Package shapes turns the configured shape catalog into core shapes and
// deals them into the player's tray.
package shapes

import (
	"fmt"

	"github.com/vovakirdan/tui-edges/internal/config"
	"github.com/vovakirdan/tui-edges/internal/games/edges/core"
)

// Entry is one catalog shape ready for play.
type Entry struct {
	Name   string
	Shape  core.Shape
	Weight int
}

// Catalog is the ordered list of shapes the tray can deal.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// FromConfig converts a loaded catalog, rejecting unknown kinds, unknown
// directions and fixed shapes without edges.
func FromConfig(c config.ShapeCatalog) (*Catalog, error) {
	cat := &Catalog{byName: make(map[string]int, len(c.Shapes))}
	for i, def := range c.Shapes {
		e, err := entryFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("shapes: entry %d (%q): %w", i, def.Name, err)
		}
		if _, dup := cat.byName[e.Name]; dup {
			return nil, fmt.Errorf("shapes: duplicate name %q", e.Name)
		}
		cat.byName[e.Name] = len(cat.entries)
		cat.entries = append(cat.entries, e)
	}
	if len(cat.entries) == 0 {
		return nil, fmt.Errorf("shapes: catalog is empty")
	}
	return cat, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	cat, err := FromConfig(config.DefaultShapeCatalog())
	if err != nil {
		panic(err)
	}
	return cat
}

func entryFromDef(def config.ShapeDef) (Entry, error) {
	kind, ok := core.ParseKind(def.Kind)
	if !ok {
		return Entry{}, fmt.Errorf("unknown kind %q", def.Kind)
	}
	s := core.Shape{Kind: kind}
	if kind == core.Fixed {
		for _, name := range def.Edges {
			d, ok := core.ParseDirection(name)
			if !ok {
				return Entry{}, fmt.Errorf("unknown direction %q", name)
			}
			s.Edges = s.Edges.Add(d)
		}
	}
	if err := s.Validate(); err != nil {
		return Entry{}, err
	}

	name := def.Name
	if name == "" {
		name = s.String()
	}
	w := def.Weight
	if w <= 0 {
		w = 1
	}
	return Entry{Name: name, Shape: s, Weight: w}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry with the given name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// EdgeCount returns how many edges a shape claims once placed.
func EdgeCount(s core.Shape) int {
	if s.Kind == core.Fixed {
		return s.Edges.Len()
	}
	return 1
}
