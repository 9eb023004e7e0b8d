package domain

import (
	"fmt"
	"sort"
	"sync"
)

// Exploration is a branching lesson: a graph of named states whose rule
// specs reference each other by state name, plus the gadgets docked to its
// layout panels.
//
// The exploration is the only component allowed to change a state's name,
// because it alone can rewrite every dest reference atomically.
// Safe for concurrent use; all mutation goes through its own methods.
type Exploration struct {
	mu sync.RWMutex

	title         string
	objective     string
	initStateName string
	states        map[string]*State
	gadgets       *GadgetCollection
}

// NewExploration creates an exploration with a single initial state.
func NewExploration(initStateName string) *Exploration {
	e := &Exploration{
		initStateName: initStateName,
		states:        map[string]*State{initStateName: NewState(initStateName)},
		gadgets:       NewGadgetCollection(),
	}
	return e
}

// Title returns the exploration title.
func (e *Exploration) Title() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.title
}

// SetTitle updates the exploration title.
func (e *Exploration) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.title = title
}

// Objective returns the learning objective.
func (e *Exploration) Objective() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.objective
}

// SetObjective updates the learning objective.
func (e *Exploration) SetObjective(objective string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.objective = objective
}

// InitStateName returns the name of the state a learner starts in.
func (e *Exploration) InitStateName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.initStateName
}

// Gadgets returns the exploration's gadget collection.
func (e *Exploration) Gadgets() *GadgetCollection {
	return e.gadgets
}

// AddStates creates one blank state per name.
// Fails with ErrDuplicateStateName (or a validation error for an empty
// name) before any state is added; the call is all-or-nothing.
func (e *Exploration) AddStates(names ...string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("state name must not be empty")
		}
		if _, ok := e.states[name]; ok || seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateStateName, name)
		}
		seen[name] = true
	}

	for _, name := range names {
		e.states[name] = NewState(name)
	}
	return nil
}

// DeleteState removes a state and drops it from every gadget's visibility.
// Rule specs that pointed at the deleted state are left untouched; the
// author resolves those via the dangling-reference report of Validate.
// Fails with ErrUnknownState if absent, ErrInitialState for the start state.
func (e *Exploration) DeleteState(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.states[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, name)
	}
	if name == e.initStateName {
		return fmt.Errorf("%w: %s", ErrInitialState, name)
	}

	delete(e.states, name)
	e.gadgets.DropStateName(name)
	return nil
}

// RenameState atomically re-keys a state and rewrites every reference to
// its old name: rule dests in all states (including the renamed state's own
// outgoing rules and self-references), gadget visibility entries, and the
// initial-state pointer.
//
// The old name must exist (ErrUnknownState) and the new name must be free
// (ErrDuplicateStateName). Callers are expected to have validated newName
// already, but uniqueness is re-checked here: the graph does not trust
// callers with its integrity. No mutation occurs on error.
func (e *Exploration) RenameState(oldName, newName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	st, ok := e.states[oldName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, oldName)
	}
	if _, taken := e.states[newName]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateStateName, newName)
	}
	if newName == "" {
		return fmt.Errorf("state name must not be empty")
	}

	delete(e.states, oldName)
	st.name = newName
	e.states[newName] = st

	for _, s := range e.states {
		for _, rs := range s.ruleSpecs() {
			if rs.Dest == oldName {
				rs.Dest = newName
			}
		}
	}
	e.gadgets.RewriteStateName(oldName, newName)

	if e.initStateName == oldName {
		e.initStateName = newName
	}
	return nil
}

// GetState returns the named state, or ErrUnknownState.
// The returned pointer is live: content and interaction edits through it
// are visible to the exploration, but the name must never be changed except
// via RenameState.
func (e *Exploration) GetState(name string) (*State, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st, ok := e.states[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, name)
	}
	return st, nil
}

// HasState reports whether a state with the given name exists.
func (e *Exploration) HasState(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.states[name]
	return ok
}

// StateNames returns all state names in sorted order.
func (e *Exploration) StateNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.states))
	for name := range e.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// States returns the states keyed by name.
func (e *Exploration) States() map[string]*State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(map[string]*State, len(e.states))
	for name, st := range e.states {
		out[name] = st
	}
	return out
}

// Clone returns a deep copy of the exploration.
func (e *Exploration) Clone() *Exploration {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c := &Exploration{
		title:         e.title,
		objective:     e.objective,
		initStateName: e.initStateName,
		states:        make(map[string]*State, len(e.states)),
		gadgets:       e.gadgets.clone(),
	}
	for name, st := range e.states {
		c.states[name] = st.Clone()
	}
	return c
}

// Validate checks the referential integrity of the whole document: the
// initial state exists, every rule dest resolves to a state, every gadget
// sits in a known panel and is visible only in existing states.
func (e *Exploration) Validate() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var problems []string

	if _, ok := e.states[e.initStateName]; !ok {
		problems = append(problems, fmt.Sprintf("initial state %q does not exist", e.initStateName))
	}

	names := make([]string, 0, len(e.states))
	for name := range e.states {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, rs := range e.states[name].ruleSpecs() {
			if rs.Dest == "" {
				continue
			}
			if _, ok := e.states[rs.Dest]; !ok {
				problems = append(problems, fmt.Sprintf(
					"state %q has a rule pointing at missing state %q", name, rs.Dest))
			}
		}
	}

	for panel, gadgets := range e.gadgets.ByPanel() {
		if !IsValidPanel(panel) {
			problems = append(problems, fmt.Sprintf("unknown panel %q", panel))
		}
		for _, g := range gadgets {
			for _, s := range g.VisibleInStates {
				if _, ok := e.states[s]; !ok {
					problems = append(problems, fmt.Sprintf(
						"gadget %q is visible in missing state %q", g.Name, s))
				}
			}
		}
	}

	if len(problems) > 0 {
		msg := problems[0]
		for _, p := range problems[1:] {
			msg += "; " + p
		}
		return fmt.Errorf("exploration is inconsistent: %s", msg)
	}
	return nil
}
