package domain

import (
	"fmt"
	"sync"
)

// GadgetCollection is the authoritative store of gadgets per layout panel
// for one exploration. It is the sole writer of that data: edit sessions
// stage drafts and hand finalized gadgets here on commit.
// Safe for concurrent use.
type GadgetCollection struct {
	mu     sync.RWMutex
	panels map[string][]*Gadget
}

// NewGadgetCollection creates an empty collection.
func NewGadgetCollection() *GadgetCollection {
	return &GadgetCollection{
		panels: make(map[string][]*Gadget),
	}
}

// AddGadget inserts a finalized gadget into the given panel.
// Returns ErrInvalidPanel for unknown panels and ErrDuplicateGadgetName if
// the name is already taken anywhere in the collection.
func (c *GadgetCollection) AddGadget(g *Gadget, panel string) error {
	if !IsValidPanel(panel) {
		return fmt.Errorf("%w: %s", ErrInvalidPanel, panel)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.findLocked(g.Name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateGadgetName, g.Name)
	}

	stored := g.Clone()
	stored.normalizeVisibility()
	c.panels[panel] = append(c.panels[panel], stored)
	return nil
}

// UpdateGadget replaces the gadget currently stored under name with the
// given finalized gadget, moving it to panel if needed. The replacement may
// carry a new name, as long as it does not collide with another gadget.
// Returns ErrGadgetNotFound if name is absent; no mutation occurs on error.
func (c *GadgetCollection) UpdateGadget(name string, g *Gadget, panel string) error {
	if !IsValidPanel(panel) {
		return fmt.Errorf("%w: %s", ErrInvalidPanel, panel)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing := c.findLocked(name)
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrGadgetNotFound, name)
	}
	if g.Name != name && c.findLocked(g.Name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateGadgetName, g.Name)
	}

	c.deleteLocked(name)
	stored := g.Clone()
	stored.normalizeVisibility()
	c.panels[panel] = append(c.panels[panel], stored)
	return nil
}

// DeleteGadget removes a gadget by name.
// Returns ErrGadgetNotFound if the name is absent. The error is deliberate
// (rather than a silent no-op): a stale name indicates a caller bug.
func (c *GadgetCollection) DeleteGadget(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.findLocked(name) == nil {
		return fmt.Errorf("%w: %s", ErrGadgetNotFound, name)
	}
	c.deleteLocked(name)
	return nil
}

// Gadget returns a copy of the named gadget and the panel holding it.
func (c *GadgetCollection) Gadget(name string) (*Gadget, string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, panel := range Panels() {
		for _, g := range c.panels[panel] {
			if g.Name == name {
				return g.Clone(), panel, nil
			}
		}
	}
	return nil, "", fmt.Errorf("%w: %s", ErrGadgetNotFound, name)
}

// Gadgets returns copies of all gadgets in panel display order.
func (c *GadgetCollection) Gadgets() []*Gadget {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*Gadget
	for _, panel := range Panels() {
		for _, g := range c.panels[panel] {
			out = append(out, g.Clone())
		}
	}
	return out
}

// ByPanel returns a copy of the panel layout: panel name to gadget copies.
func (c *GadgetCollection) ByPanel() map[string][]*Gadget {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string][]*Gadget, len(c.panels))
	for panel, gadgets := range c.panels {
		copies := make([]*Gadget, len(gadgets))
		for i, g := range gadgets {
			copies[i] = g.Clone()
		}
		out[panel] = copies
	}
	return out
}

// Names returns the names of all gadgets in panel display order.
func (c *GadgetCollection) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	for _, panel := range Panels() {
		for _, g := range c.panels[panel] {
			names = append(names, g.Name)
		}
	}
	return names
}

// Has reports whether a gadget with the given name exists.
func (c *GadgetCollection) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.findLocked(name) != nil
}

// RewriteStateName updates every visibility reference to a renamed state.
// Called by Exploration.RenameState so gadget visibility never points at a
// stale state name.
func (c *GadgetCollection) RewriteStateName(oldName, newName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, gadgets := range c.panels {
		for _, g := range gadgets {
			for i, s := range g.VisibleInStates {
				if s == oldName {
					g.VisibleInStates[i] = newName
				}
			}
			g.normalizeVisibility()
		}
	}
}

// DropStateName removes a deleted state from every gadget's visibility set.
func (c *GadgetCollection) DropStateName(stateName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, gadgets := range c.panels {
		for _, g := range gadgets {
			kept := g.VisibleInStates[:0]
			for _, s := range g.VisibleInStates {
				if s != stateName {
					kept = append(kept, s)
				}
			}
			g.VisibleInStates = kept
		}
	}
}

// clone returns a deep copy of the collection.
func (c *GadgetCollection) clone() *GadgetCollection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := NewGadgetCollection()
	for panel, gadgets := range c.panels {
		copies := make([]*Gadget, len(gadgets))
		for i, g := range gadgets {
			copies[i] = g.Clone()
		}
		out.panels[panel] = copies
	}
	return out
}

func (c *GadgetCollection) findLocked(name string) *Gadget {
	for _, gadgets := range c.panels {
		for _, g := range gadgets {
			if g.Name == name {
				return g
			}
		}
	}
	return nil
}

func (c *GadgetCollection) deleteLocked(name string) {
	for panel, gadgets := range c.panels {
		for i, g := range gadgets {
			if g.Name == name {
				c.panels[panel] = append(gadgets[:i], gadgets[i+1:]...)
				return
			}
		}
	}
}
