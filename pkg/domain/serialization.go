package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// explorationDoc is the wire shape of an exploration. States are keyed by
// name, so State itself carries no name field on the wire.
type explorationDoc struct {
	Title         string               `json:"title,omitempty" yaml:"title,omitempty"`
	Objective     string               `json:"objective,omitempty" yaml:"objective,omitempty"`
	InitStateName string               `json:"init_state_name" yaml:"init_state_name"`
	States        map[string]*State    `json:"states" yaml:"states"`
	Gadgets       map[string][]*Gadget `json:"gadgets,omitempty" yaml:"gadgets,omitempty"`
}

func (e *Exploration) doc() *explorationDoc {
	e.mu.RLock()
	defer e.mu.RUnlock()

	states := make(map[string]*State, len(e.states))
	for name, st := range e.states {
		states[name] = st.Clone()
	}
	gadgets := e.gadgets.ByPanel()
	if len(gadgets) == 0 {
		gadgets = nil
	}
	return &explorationDoc{
		Title:         e.title,
		Objective:     e.objective,
		InitStateName: e.initStateName,
		States:        states,
		Gadgets:       gadgets,
	}
}

func fromDoc(doc *explorationDoc) (*Exploration, error) {
	if doc.InitStateName == "" {
		return nil, fmt.Errorf("document has no init_state_name")
	}
	if len(doc.States) == 0 {
		return nil, fmt.Errorf("document has no states")
	}

	e := &Exploration{
		title:         doc.Title,
		objective:     doc.Objective,
		initStateName: doc.InitStateName,
		states:        make(map[string]*State, len(doc.States)),
		gadgets:       NewGadgetCollection(),
	}
	for name, st := range doc.States {
		if st == nil {
			st = NewState(name)
		}
		st.name = name
		e.states[name] = st
	}
	for panel, gadgets := range doc.Gadgets {
		for _, g := range gadgets {
			if err := e.gadgets.AddGadget(g, panel); err != nil {
				return nil, fmt.Errorf("gadget %q: %w", g.Name, err)
			}
		}
	}
	return e, nil
}

// MarshalJSON serializes the exploration as a name-keyed document.
func (e *Exploration) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc())
}

// UnmarshalJSON replaces the exploration's content with the decoded document.
func (e *Exploration) UnmarshalJSON(data []byte) error {
	var doc explorationDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded, err := fromDoc(&doc)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.title = decoded.title
	e.objective = decoded.objective
	e.initStateName = decoded.initStateName
	e.states = decoded.states
	e.gadgets = decoded.gadgets
	return nil
}

// ToYAML serializes the exploration as a YAML document.
func (e *Exploration) ToYAML() ([]byte, error) {
	return yaml.Marshal(e.doc())
}

// LoadExplorationYAML decodes an exploration from a YAML document.
// The result is structurally decoded but not semantically validated; call
// Validate to check referential integrity.
func LoadExplorationYAML(data []byte) (*Exploration, error) {
	var doc explorationDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse exploration: %w", err)
	}
	return fromDoc(&doc)
}

// LoadExplorationJSON decodes an exploration from a JSON document.
func LoadExplorationJSON(data []byte) (*Exploration, error) {
	var doc explorationDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse exploration: %w", err)
	}
	return fromDoc(&doc)
}
