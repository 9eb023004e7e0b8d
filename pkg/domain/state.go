package domain

// RuleTypeDefault marks the fallback rule of a handler. It always matches
// when no other rule does.
const RuleTypeDefault = "default"

// Content is a single block of authored state content.
type Content struct {
	Type  string `json:"type" yaml:"type"` // e.g., "text"
	Value string `json:"value" yaml:"value"`
}

// RuleSpec describes one answer-classification rule and where it sends the
// learner. Dest holds a state name by value, which is why renames must go
// through Exploration.RenameState.
type RuleSpec struct {
	Definition map[string]any `json:"definition" yaml:"definition"`
	Dest       string         `json:"dest" yaml:"dest"`
	Feedback   []string       `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}

// Handler groups the rule specs evaluated for one kind of learner event
// (normally "submit").
type Handler struct {
	Name      string      `json:"name" yaml:"name"`
	RuleSpecs []*RuleSpec `json:"rule_specs" yaml:"rule_specs"`
}

// Interaction is the input widget attached to a state, together with the
// rules that route each answer.
type Interaction struct {
	ID                string         `json:"id,omitempty" yaml:"id,omitempty"`
	CustomizationArgs map[string]any `json:"customization_args,omitempty" yaml:"customization_args,omitempty"`
	Handlers          []*Handler     `json:"handlers" yaml:"handlers"`
}

// State is one named node of an exploration.
//
// The name is deliberately unexported: a state's name participates in the
// graph's reference integrity (rule dests point at it by value), so only
// Exploration.RenameState may change it.
type State struct {
	Content     []Content   `json:"content" yaml:"content"`
	Interaction Interaction `json:"interaction" yaml:"interaction"`

	name string
}

// NewState creates a blank state. Its default rule loops back to the state
// itself; callers that wire the state into a flow retarget that dest.
func NewState(name string) *State {
	return &State{
		name:    name,
		Content: []Content{{Type: "text", Value: ""}},
		Interaction: Interaction{
			Handlers: []*Handler{{
				Name: "submit",
				RuleSpecs: []*RuleSpec{{
					Definition: map[string]any{"rule_type": RuleTypeDefault},
					Dest:       name,
				}},
			}},
		},
	}
}

// Name returns the state's current name.
func (s *State) Name() string { return s.name }

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := &State{
		name:    s.name,
		Content: make([]Content, len(s.Content)),
		Interaction: Interaction{
			ID:                s.Interaction.ID,
			CustomizationArgs: copyAnyMap(s.Interaction.CustomizationArgs),
		},
	}
	copy(c.Content, s.Content)

	for _, h := range s.Interaction.Handlers {
		hc := &Handler{Name: h.Name}
		for _, rs := range h.RuleSpecs {
			hc.RuleSpecs = append(hc.RuleSpecs, &RuleSpec{
				Definition: copyAnyMap(rs.Definition),
				Dest:       rs.Dest,
				Feedback:   append([]string(nil), rs.Feedback...),
			})
		}
		c.Interaction.Handlers = append(c.Interaction.Handlers, hc)
	}
	return c
}

// ruleSpecs iterates every rule spec of the state, across all handlers.
func (s *State) ruleSpecs() []*RuleSpec {
	var specs []*RuleSpec
	for _, h := range s.Interaction.Handlers {
		specs = append(specs, h.RuleSpecs...)
	}
	return specs
}
